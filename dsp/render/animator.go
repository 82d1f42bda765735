package render

// DefaultAnimationSpeed is the phase advance per preview frame in radians.
const DefaultAnimationSpeed = 0.01

// Animator tracks the phase offset of an animated preview. Each frame the
// caller asks for the options to pass to Preview; when enabled the angle
// advances by Speed first.
type Animator struct {
	Speed   float64
	Enabled bool
	angle   float64
}

// NewAnimator returns an enabled animator at angle zero.
func NewAnimator() *Animator {
	return &Animator{Speed: DefaultAnimationSpeed, Enabled: true}
}

// Angle returns the current phase offset.
func (a *Animator) Angle() float64 {
	return a.angle
}

// Frame advances the animation and returns the preview options for this
// frame. A disabled animator returns no options and keeps its angle.
func (a *Animator) Frame() []PreviewOption {
	if !a.Enabled {
		return nil
	}
	a.angle += a.Speed
	return []PreviewOption{WithAnimationAngle(a.angle)}
}
