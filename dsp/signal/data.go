package signal

import "fmt"

// Param names one of the five SignalData slots.
type Param int

const (
	ParamAmplitude Param = iota
	ParamFrequency
	ParamTimeBase
	ParamPhase
	ParamDuty
)

var paramNames = [...]string{
	ParamAmplitude: "amplitude",
	ParamFrequency: "frequency",
	ParamTimeBase:  "timebase",
	ParamPhase:     "phase",
	ParamDuty:      "duty",
}

func (p Param) String() string {
	if p < 0 || int(p) >= len(paramNames) {
		return fmt.Sprintf("Param(%d)", int(p))
	}
	return paramNames[p]
}

// Params lists all parameters in slot order.
func Params() []Param {
	return []Param{ParamAmplitude, ParamFrequency, ParamTimeBase, ParamPhase, ParamDuty}
}

// Default generator parameters.
const (
	DefaultAmplitude = 0.5
	DefaultFrequency = 440.0
	DefaultPhase     = 0.0
	DefaultDuty      = 0.5
)

// SignalData holds the five parameter slots every generator owns.
// Fields may be rebound at any time; evaluation reads them on every call.
type SignalData struct {
	Amplitude *Slot
	Frequency *Slot
	TimeBase  *Slot
	Phase     *Slot
	Duty      *Slot
}

// NewSignalData returns the default parameter set with the time base fixed to
// sampleRate.
func NewSignalData(sampleRate float64) *SignalData {
	return NewSignalDataWith(sampleRate, DefaultAmplitude, DefaultFrequency, DefaultPhase, DefaultDuty)
}

// NewSignalDataWith returns a parameter set where every slot is a fresh handle
// around a Constant.
func NewSignalDataWith(sampleRate, amplitude, frequency, phase, duty float64) *SignalData {
	return &SignalData{
		Amplitude: NewSlot(NewConstant(amplitude)),
		Frequency: NewSlot(NewConstant(frequency)),
		TimeBase:  NewSlot(NewConstant(sampleRate)),
		Phase:     NewSlot(NewConstant(phase)),
		Duty:      NewSlot(NewConstant(duty)),
	}
}

func (d *SignalData) ref(p Param) (**Slot, error) {
	switch p {
	case ParamAmplitude:
		return &d.Amplitude, nil
	case ParamFrequency:
		return &d.Frequency, nil
	case ParamTimeBase:
		return &d.TimeBase, nil
	case ParamPhase:
		return &d.Phase, nil
	case ParamDuty:
		return &d.Duty, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownParam, p)
	}
}

// Slot returns the handle currently bound to p.
func (d *SignalData) Slot(p Param) (*Slot, error) {
	r, err := d.ref(p)
	if err != nil {
		return nil, err
	}
	return *r, nil
}

// Bind replaces the handle for p with s, sharing s with its other holders.
func (d *SignalData) Bind(p Param, s *Slot) error {
	if s == nil {
		return ErrNilSlot
	}
	r, err := d.ref(p)
	if err != nil {
		return err
	}
	*r = s
	return nil
}

// Slots returns the five handles in Param order.
func (d *SignalData) Slots() []*Slot {
	return []*Slot{d.Amplitude, d.Frequency, d.TimeBase, d.Phase, d.Duty}
}

// Valid reports whether all five slots are bound to valid nodes.
func (d *SignalData) Valid() bool {
	if d == nil {
		return false
	}
	for _, s := range d.Slots() {
		if !s.Valid() {
			return false
		}
	}
	return true
}

// Clone deep-copies every slot into a new handle.
func (d *SignalData) Clone() *SignalData {
	return &SignalData{
		Amplitude: d.Amplitude.Clone(),
		Frequency: d.Frequency.Clone(),
		TimeBase:  d.TimeBase.Clone(),
		Phase:     d.Phase.Clone(),
		Duty:      d.Duty.Clone(),
	}
}
