// Command yininfo synthesizes test tones and prints the YIN pitch estimate
// next to an FFT peak estimate for each one.
//
// Usage:
//
//	yininfo [flags] [frequency-hz ...]
//
// Without arguments it analyzes a small set of reference tones.
//
// Examples:
//
//	yininfo 220 330
//	yininfo -periods 1.5 -phase 0.2 220
//	yininfo -noise 0.05 -threshold 0.1 440
//	yininfo -strategy plan -v 110 220 440
//	yininfo -bench 1000 -frame 2048
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-pitch/dsp/core"
	"github.com/cwbudde/algo-pitch/dsp/fft"
	"github.com/cwbudde/algo-pitch/dsp/signal"
	"github.com/cwbudde/algo-pitch/dsp/spectrum"
	"github.com/cwbudde/algo-pitch/measure/pitch"
)

var defaultTones = []float64{110, 220, 330, 440, 880}

type settings struct {
	rate      int
	threshold float64
	periods   float64
	phase     float64
	noise     float64
	seed      int64
	strategy  fft.Strategy
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("yininfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	rate := fs.Int("rate", pitch.DefaultSampleRate, "sample rate in Hz")
	threshold := fs.Float64("threshold", pitch.DefaultThreshold, "YIN absolute threshold in (0,1)")
	periods := fs.Float64("periods", 4, "number of cycles to synthesize per tone")
	phase := fs.Float64("phase", 0, "phase offset as a fraction of one cycle")
	noise := fs.Float64("noise", 0, "uniform noise amplitude added to each tone")
	seed := fs.Int64("seed", 1, "noise seed")
	strategyName := fs.String("strategy", fft.StrategyRecursive.String(), "FFT strategy: recursive, iterative or plan")
	bench := fs.Int("bench", 0, "time N estimates on random samples instead of analyzing tones")
	frame := fs.Int("frame", 1024, "benchmark frame size in samples")
	verbose := fs.Bool("v", false, "log diagnostics to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: yininfo [flags] [frequency-hz ...]\n\n")
		fmt.Fprintf(stderr, "Synthesizes cosine tones and compares YIN and FFT-peak estimates.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  yininfo 220 330\n")
		fmt.Fprintf(stderr, "  yininfo -periods 1.5 -phase 0.2 220\n")
		fmt.Fprintf(stderr, "  yininfo -bench 1000\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(logrus.WarnLevel)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	strategy, err := fft.ParseStrategy(*strategyName)
	if err != nil {
		log.WithFields(logrus.Fields{"strategy": *strategyName}).Error(err)
		return 2
	}

	if *rate <= 0 {
		log.WithFields(logrus.Fields{"rate": *rate}).Error(pitch.ErrInvalidSampleRate)
		return 2
	}
	proc := core.ApplyProcessorOptions(
		core.WithSampleRate(float64(*rate)),
		core.WithFrameSize(*frame),
	)
	opts, err := pitch.NewOptions(pitch.WithProcessorConfig(proc), pitch.WithThreshold(*threshold))
	if err != nil {
		log.WithFields(logrus.Fields{
			"rate":      *rate,
			"threshold": *threshold,
		}).Error(err)
		return 2
	}
	yin, err := pitch.NewYin(opts)
	if err != nil {
		log.Error(err)
		return 1
	}

	if *bench > 0 {
		return runBench(yin, *bench, proc, *seed, stdout, log)
	}

	tones, err := parseTones(fs.Args())
	if err != nil {
		log.Error(err)
		return 2
	}

	cfg := settings{
		rate:      *rate,
		threshold: *threshold,
		periods:   *periods,
		phase:     *phase,
		noise:     *noise,
		seed:      *seed,
		strategy:  strategy,
	}
	if err := printAnalysis(stdout, yin, tones, cfg, log); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}

func parseTones(args []string) ([]float64, error) {
	if len(args) == 0 {
		return defaultTones, nil
	}
	tones := make([]float64, 0, len(args))
	for _, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("invalid frequency %q", a)
		}
		tones = append(tones, f)
	}
	return tones, nil
}

type row struct {
	freq    float64
	samples int
	result  pitch.Result
	fftPeak float64
	level   float64
}

func analyze(yin *pitch.Yin, freq float64, cfg settings, log *logrus.Logger) (row, error) {
	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(float64(cfg.rate))},
		signal.WithSeed(cfg.seed),
	)
	n, err := gen.SamplesForPeriods(freq, cfg.periods)
	if err != nil {
		return row{}, err
	}
	if n < pitch.MinSignalLength {
		return row{}, fmt.Errorf("%.2f Hz over %.2f periods yields only %d samples", freq, cfg.periods, n)
	}

	x, err := gen.Cosine(freq, 1, cfg.phase, n)
	if err != nil {
		return row{}, err
	}
	if cfg.noise > 0 {
		noise, err := gen.WhiteNoise(cfg.noise, n)
		if err != nil {
			return row{}, err
		}
		if x, err = signal.Mix(x, noise); err != nil {
			return row{}, err
		}
	}

	start := time.Now()
	res, err := yin.ExtractFundamentalFrequency(x)
	if err != nil {
		return row{}, err
	}
	log.WithFields(logrus.Fields{
		"freq":    freq,
		"samples": n,
		"found":   res.Found,
		"elapsed": time.Since(start),
	}).Debug("yin estimate")

	peak, err := spectrum.DominantFrequency(signal.ToFloat32(x), float64(cfg.rate), fft.WithStrategy(cfg.strategy))
	if err != nil {
		return row{}, err
	}

	r := row{freq: freq, samples: n, result: res, fftPeak: peak}
	if res.Found && res.Frequency <= float64(cfg.rate)/2 {
		if r.level, err = spectrum.ToneLevel(x, res.Frequency, float64(cfg.rate)); err != nil {
			return row{}, err
		}
	} else if !res.Found {
		log.WithFields(logrus.Fields{
			"freq":    freq,
			"periods": cfg.periods,
		}).Warn("no pitch found")
	}
	return r, nil
}

func printAnalysis(w io.Writer, yin *pitch.Yin, tones []float64, cfg settings, log *logrus.Logger) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Tone [Hz]\tSamples\tYIN [Hz]\tProbability\tError [%%]\tFFT Peak [Hz]\tLevel [dB]\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "---------\t-------\t--------\t-----------\t---------\t-------------\t----------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, f := range tones {
		r, err := analyze(yin, f, cfg, log)
		if err != nil {
			return fmt.Errorf("analyze %.2f Hz: %w", f, err)
		}

		yinCol, probCol, errCol, levelCol := "-", "-", "-", "-"
		if r.result.Found {
			yinCol = fmt.Sprintf("%.2f", r.result.Frequency)
			probCol = fmt.Sprintf("%.3f", r.result.Probability)
			errCol = fmt.Sprintf("%.2f", 100*math.Abs(r.result.Frequency-f)/f)
			levelCol = fmt.Sprintf("%.1f", core.LinearToDB(r.level))
		}
		if _, err := fmt.Fprintf(tw, "%.2f\t%d\t%s\t%s\t%s\t%.2f\t%s\n",
			f, r.samples, yinCol, probCol, errCol, r.fftPeak, levelCol,
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func runBench(yin *pitch.Yin, iterations int, proc core.ProcessorConfig, seed int64, w io.Writer, log *logrus.Logger) int {
	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(proc.SampleRate)},
		signal.WithSeed(seed),
	)
	x, err := gen.WhiteNoise(1, proc.FrameSize)
	if err != nil {
		log.Error(err)
		return 1
	}

	start := time.Now()
	for range iterations {
		if _, err := yin.ExtractFundamentalFrequency(x); err != nil {
			log.Error(err)
			return 1
		}
	}
	elapsed := time.Since(start)
	log.WithFields(logrus.Fields{
		"iterations": iterations,
		"elapsed":    elapsed,
	}).Debug("benchmark done")

	if _, err := fmt.Fprintf(w, "%d estimates on %d samples: %v total, %v/op\n",
		iterations, proc.FrameSize, elapsed, elapsed/time.Duration(iterations)); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}
