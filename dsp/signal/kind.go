package signal

import (
	"fmt"
	"strings"
)

// Kind identifies a node variant.
type Kind int

const (
	KindConstant Kind = iota
	KindSine
	KindCosine
	KindTriangle
	KindSawtooth
	KindPulse
	KindNoise
	KindSum
	KindProduct
	KindFreqModulator
)

var kindNames = [...]string{
	KindConstant:      "constant",
	KindSine:          "sine",
	KindCosine:        "cosine",
	KindTriangle:      "triangle",
	KindSawtooth:      "sawtooth",
	KindPulse:         "pulse",
	KindNoise:         "noise",
	KindSum:           "sum",
	KindProduct:       "product",
	KindFreqModulator: "fm",
}

var kindAliases = map[string]Kind{
	"sin":                 KindSine,
	"cos":                 KindCosine,
	"tri":                 KindTriangle,
	"saw":                 KindSawtooth,
	"square":              KindPulse,
	"add":                 KindSum,
	"mul":                 KindProduct,
	"freq-modulator":      KindFreqModulator,
	"frequency-modulator": KindFreqModulator,
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsGenerator reports whether k is a periodic generator or noise.
func (k Kind) IsGenerator() bool {
	return k >= KindSine && k <= KindNoise
}

// IsCombinator reports whether k is a two-input combinator.
func (k Kind) IsCombinator() bool {
	return k >= KindSum && k <= KindFreqModulator
}

// ParseKind resolves a kind name such as "sine", "saw" or "fm".
func ParseKind(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == key {
			return Kind(k), nil
		}
	}
	if k, ok := kindAliases[key]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// GeneratorKinds lists the generator kinds in editor order.
func GeneratorKinds() []Kind {
	return []Kind{KindSine, KindCosine, KindPulse, KindSawtooth, KindTriangle, KindNoise}
}

// CombinatorKinds lists the combinator kinds in editor order.
func CombinatorKinds() []Kind {
	return []Kind{KindSum, KindProduct, KindFreqModulator}
}

func wrapKind(k Kind, want string) error {
	return fmt.Errorf("%w: %v is not a %s", ErrUnknownKind, k, want)
}
