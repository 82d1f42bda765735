package render

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-synthgraph/dsp/core"
	"github.com/cwbudde/algo-synthgraph/dsp/signal"
)

// DefaultPreviewSamples is the display buffer length used by Preview when the
// caller does not supply one.
const DefaultPreviewSamples = 1000

// Errors returned by the renderer.
var (
	ErrNilNode      = errors.New("render: node must not be nil")
	ErrInvalidGraph = errors.New("render: graph has unwired slots")
	ErrNilCallback  = errors.New("render: block callback must not be nil")
)

// Renderer samples expression graphs using a shared configuration.
type Renderer struct {
	cfg            core.ProcessorConfig
	previewSamples int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPreviewSamples sets the default preview buffer length.
func WithPreviewSamples(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.previewSamples = n
		}
	}
}

// NewRenderer creates a renderer from processor options.
func NewRenderer(opts ...core.ProcessorOption) *Renderer {
	return NewRendererWithOptions(opts)
}

// NewRendererWithOptions creates a renderer with processor and
// renderer-specific options.
func NewRendererWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Renderer {
	r := &Renderer{
		cfg:            core.ApplyProcessorOptions(coreOpts...),
		previewSamples: DefaultPreviewSamples,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Config returns the processor configuration.
func (r *Renderer) Config() core.ProcessorConfig {
	return r.cfg
}

// Samples returns the length of a full render.
func (r *Renderer) Samples() int {
	return r.cfg.Samples()
}

// PreviewSamples returns the default preview buffer length.
func (r *Renderer) PreviewSamples() int {
	return r.previewSamples
}

func check(n signal.Node) error {
	if n == nil {
		return ErrNilNode
	}
	if !n.Valid() {
		return fmt.Errorf("%w: %s node", ErrInvalidGraph, n.Kind())
	}
	return nil
}

// Render fills dst with n evaluated at x = 0..len(dst)-1. The graph is
// validated once up front; an invalid graph leaves dst untouched.
func (r *Renderer) Render(n signal.Node, dst []float64) error {
	if err := check(n); err != nil {
		return err
	}
	sweep(n, dst, 0)
	return nil
}

// RenderAll returns a full-length render of n.
func (r *Renderer) RenderAll(n signal.Node) ([]float64, error) {
	return r.RenderInto(nil, n)
}

// RenderInto renders the full length into buf, reusing its capacity.
func (r *Renderer) RenderInto(buf []float64, n signal.Node) ([]float64, error) {
	if err := check(n); err != nil {
		return buf, err
	}
	buf = core.EnsureLen(buf, r.Samples())
	sweep(n, buf, 0)
	return buf, nil
}

// Stream renders total samples in blocks of the configured block size and
// hands each block to fn together with the index of its first sample. The
// block slice is reused between calls. Returning an error from fn stops the
// sweep.
func (r *Renderer) Stream(n signal.Node, total int, fn func(offset int, block []float64) error) error {
	if err := check(n); err != nil {
		return err
	}
	if fn == nil {
		return ErrNilCallback
	}

	block := make([]float64, r.cfg.BlockSize)
	for offset := 0; offset < total; offset += len(block) {
		if rest := total - offset; rest < len(block) {
			block = block[:rest]
		}
		sweep(n, block, offset)
		if err := fn(offset, block); err != nil {
			return err
		}
	}
	return nil
}

func sweep(n signal.Node, dst []float64, offset int) {
	for i := range dst {
		dst[i] = n.Eval(float64(offset + i))
	}
}
