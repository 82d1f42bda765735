package patch

import (
	"fmt"

	"github.com/cwbudde/algo-synthgraph/dsp/signal"
)

// Port is a symbolic port identifier. Values in [0x0001, 0x0100) are
// outputs, values in [0x0100, 0x1000) are inputs.
type Port uint16

const (
	PortOut Port = 0x0001

	PortAmplitude Port = 0x0101
	PortFrequency Port = 0x0102
	PortPhase     Port = 0x0103
	PortDuty      Port = 0x0104
	PortLeft      Port = 0x0105
	PortRight     Port = 0x0106
	PortSignal    Port = 0x0107
)

const (
	firstOutputPort Port = 0x0001
	firstInputPort  Port = 0x0100
	endInputPort    Port = 0x1000
)

// IsOutput reports whether p is in the output range.
func (p Port) IsOutput() bool { return p >= firstOutputPort && p < firstInputPort }

// IsInput reports whether p is in the input range.
func (p Port) IsInput() bool { return p >= firstInputPort && p < endInputPort }

var portNames = map[Port]string{
	PortOut:       "out",
	PortAmplitude: "amplitude",
	PortFrequency: "frequency",
	PortPhase:     "phase",
	PortDuty:      "duty",
	PortLeft:      "left",
	PortRight:     "right",
	PortSignal:    "signal",
}

func (p Port) String() string {
	if name, ok := portNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Port(%#04x)", uint16(p))
}

// ParsePort resolves a port by name.
func ParsePort(name string) (Port, error) {
	for p, n := range portNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrPortUnavailable, name)
}

// param maps a generator input port to its SignalData slot.
func (p Port) param() (signal.Param, bool) {
	switch p {
	case PortAmplitude:
		return signal.ParamAmplitude, true
	case PortFrequency:
		return signal.ParamFrequency, true
	case PortPhase:
		return signal.ParamPhase, true
	case PortDuty:
		return signal.ParamDuty, true
	default:
		return 0, false
	}
}

// Attribute ids pack a node id in the low 16 bits and a port in the high 16
// bits, the form node editors use to identify pins.
const (
	NodeIDMask uint32 = 0x0000FFFF
	PortMask   uint32 = 0xFFFF0000
)

// Attr packs id and p into an attribute id.
func Attr(id NodeID, p Port) uint32 {
	return uint32(p)<<16 | uint32(id)
}

// SplitAttr unpacks an attribute id.
func SplitAttr(attr uint32) (NodeID, Port) {
	return NodeID(attr & NodeIDMask), Port((attr & PortMask) >> 16)
}
