package render

import "github.com/cwbudde/algo-synthgraph/dsp/signal"

type previewConfig struct {
	animate bool
	angle   float64
}

// PreviewOption configures a single Preview call.
type PreviewOption func(*previewConfig)

// WithAnimationAngle offsets the phase of the previewed generator(s) by angle
// radians for the duration of the preview.
func WithAnimationAngle(angle float64) PreviewOption {
	return func(c *previewConfig) {
		c.animate = true
		c.angle = angle
	}
}

// Preview samples n into dst for display. If dst is nil a buffer of
// PreviewSamples length is allocated. With WithAnimationAngle the phase slot
// of n (or, for a combinator, of its generator children) is replaced by
// Sum(original, Constant(angle)) while sampling and restored afterwards, so
// the graph is left exactly as it was. Only the accumulator of a frequency
// modulator carries state out of a preview.
func (r *Renderer) Preview(n signal.Node, dst []float64, opts ...PreviewOption) ([]float64, error) {
	if err := check(n); err != nil {
		return dst, err
	}
	if dst == nil {
		dst = make([]float64, r.previewSamples)
	}

	var cfg previewConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.animate {
		restore := overridePhase(n, cfg.angle)
		defer restore()
	}

	sweep(n, dst, 0)
	return dst, nil
}

// overridePhase installs the animated phase on every target and returns the
// function that puts the original handles back.
func overridePhase(n signal.Node, angle float64) func() {
	targets := phaseTargets(n)
	offset := signal.NewSlot(signal.NewConstant(angle))

	saved := make([]*signal.Slot, len(targets))
	for i, g := range targets {
		d := g.Params()
		saved[i] = d.Phase
		d.Phase = signal.NewSlot(signal.NewSum(saved[i], offset))
	}

	return func() {
		for i := len(targets) - 1; i >= 0; i-- {
			targets[i].Params().Phase = saved[i]
		}
	}
}

func phaseTargets(n signal.Node) []signal.Generator {
	if g, ok := n.(signal.Generator); ok {
		return []signal.Generator{g}
	}

	c, ok := n.(signal.Combinator)
	if !ok {
		return nil
	}

	var out []signal.Generator
	for _, s := range []*signal.Slot{c.Left(), c.Right()} {
		g, ok := s.Node().(signal.Generator)
		if !ok {
			continue
		}
		if len(out) == 1 && out[0] == g {
			continue
		}
		out = append(out, g)
	}
	return out
}
