// Command sgrender builds a signal graph from a preset, renders it and
// reports the result.
//
// Usage:
//
//	sgrender [flags]
//
// Examples:
//
//	sgrender -preset fm -out fm.wav
//	sgrender -preset sine -kind triangle -freq 220 -duration 2
//	sgrender -preset sum -preview 5
//	sgrender -list
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-synthgraph/dsp/core"
	"github.com/cwbudde/algo-synthgraph/dsp/patch"
	"github.com/cwbudde/algo-synthgraph/dsp/render"
	"github.com/cwbudde/algo-synthgraph/dsp/signal"
	"github.com/cwbudde/algo-synthgraph/dsp/wavio"
	"github.com/cwbudde/algo-synthgraph/measure/tone"
)

func main() {
	defaults := core.DefaultProcessorConfig()

	presetName := flag.String("preset", "sine", "patch preset (see -list)")
	kindName := flag.String("kind", "sine", "generator kind used by the sine and sum presets")
	freq := flag.Float64("freq", signal.DefaultFrequency, "base frequency in Hz")
	amp := flag.Float64("amp", signal.DefaultAmplitude, "base amplitude")
	rate := flag.Float64("rate", defaults.SampleRate, "sample rate in Hz")
	duration := flag.Float64("duration", defaults.Duration, "render length in seconds")
	out := flag.String("out", "", "write the render to this WAV file")
	bits := flag.Int("bits", 32, "WAV bit depth (16, 24 or 32)")
	normalize := flag.Float64("normalize", 0, "normalize to this peak before export (0 disables)")
	preview := flag.Int("preview", 0, "print this many animated preview frames")
	list := flag.Bool("list", false, "list presets and node kinds")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sgrender [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Builds a signal graph from a preset, renders it and prints an analysis.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sgrender -preset fm -out fm.wav\n")
		fmt.Fprintf(os.Stderr, "  sgrender -preset sine -kind triangle -freq 220 -duration 2\n")
		fmt.Fprintf(os.Stderr, "  sgrender -preset sum -preview 5\n")
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *list {
		printList()
		return
	}

	kind, err := signal.ParseKind(*kindName)
	if err != nil || !kind.IsGenerator() {
		fatal(logger, "invalid -kind", "kind", *kindName, "err", err)
	}

	p, err := lookupPreset(strings.ToLower(*presetName))
	if err != nil {
		fatal(logger, "invalid -preset", "err", err)
	}

	g := patch.New(core.WithSampleRate(*rate), core.WithDuration(*duration))
	cfg := g.Config()

	outID, err := p.build(g, voice{kind: kind, freq: *freq, amp: *amp})
	if err != nil {
		fatal(logger, "build patch", "preset", p.name, "err", err)
	}
	logger.Debug("patch built", "preset", p.name, "nodes", len(g.Nodes()), "links", len(g.Links()))

	if *preview > 0 {
		if err := printPreview(g, outID, *preview); err != nil {
			fatal(logger, "preview", "err", err)
		}
	}

	logger.Info("rendering", "samples", cfg.Samples(), "sampleRate", cfg.SampleRate)
	data, err := g.RenderOutput(outID)
	if err != nil {
		fatal(logger, "render", "err", err)
	}

	if *normalize > 0 {
		data, err = render.Normalize(data, *normalize)
		if err != nil {
			fatal(logger, "normalize", "err", err)
		}
		logger.Debug("normalized", "peak", *normalize)
	}

	res, err := tone.Analyze(data, cfg.SampleRate)
	if err != nil {
		fatal(logger, "analyze", "err", err)
	}
	printResult(p.name, cfg, res)

	if *out != "" {
		if err := wavio.WriteFile(*out, data, int(math.Round(cfg.SampleRate)), *bits); err != nil {
			fatal(logger, "write wav", "path", *out, "err", err)
		}
		logger.Info("wrote wav", "path", *out, "bits", *bits)
	}
}

func fatal(logger *slog.Logger, msg string, args ...any) {
	logger.Error(msg, args...)
	os.Exit(1)
}

func printList() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Preset\tDescription\n")
	fmt.Fprintf(tw, "------\t-----------\n")
	for _, p := range presets {
		fmt.Fprintf(tw, "%s\t%s\n", p.name, p.about)
	}
	fmt.Fprintf(tw, "\nGenerators\t%s\n", joinKinds(signal.GeneratorKinds()))
	fmt.Fprintf(tw, "Combinators\t%s\n", joinKinds(signal.CombinatorKinds()))
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func joinKinds(kinds []signal.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

func printPreview(g *patch.Graph, id patch.NodeID, frames int) error {
	anim := render.NewAnimator()
	buf := make([]float64, g.Renderer().PreviewSamples())

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frame\tAngle [rad]\tFirst\tPeak\n")
	fmt.Fprintf(tw, "-----\t-----------\t-----\t----\n")

	for i := range frames {
		var err error
		buf, err = g.Preview(id, buf, anim.Frame()...)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%d\t%.2f\t%+.4f\t%.4f\n", i, anim.Angle(), buf[0], render.Peak(buf))
	}
	fmt.Fprintln(tw)

	return tw.Flush()
}

func printResult(name string, cfg core.ProcessorConfig, res tone.Result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Preset\tSamples\tRate [Hz]\tPeak\tRMS\tPeak Freq [Hz]\tLevel [dBFS]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t-------\t---------\t----\t---\t--------------\t------------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "%s\t%d\t%.0f\t%.4f\t%.4f\t%.2f\t%.2f\n",
		name,
		cfg.Samples(),
		cfg.SampleRate,
		res.Peak,
		res.RMS,
		res.PeakFrequency,
		res.PeakLevelDB,
	); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
		return
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
