// Package spectrum provides helpers over FFT output bins.
//
// It reads [fft.Complex] spectra produced by package fft and extracts
// magnitudes, power, phase and the dominant bin. ToneLevel evaluates a single
// frequency directly from time-domain samples without a full transform.
package spectrum
