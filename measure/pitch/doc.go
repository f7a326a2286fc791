// Package pitch estimates the fundamental frequency of monophonic audio.
//
// The estimator implements YIN (de Cheveigné and Kawahara, 2002) in the time
// domain:
//
//  1. difference function d(τ) over lags τ in [0, N/2)
//  2. cumulative mean normalized difference (CMNDF), with cmndf[0] = 1
//  3. absolute threshold: the first lag whose CMNDF drops below the
//     threshold, followed down to the bottom of that dip
//  4. parabolic interpolation of the selected lag
//
// The frequency is sampleRate / interpolated lag and the probability is
// 1 - cmndf[τ]. When no lag falls below the threshold the result has
// Found == false; this is a normal outcome for noisy, aperiodic or too short
// signals and is not reported as an error.
//
// The difference stage is O(N²) and uses the algo-vecmath block kernels.
// Estimators hold no mutable state and are safe for concurrent use.
package pitch
