package signal

// binary holds the left and right child slots of a combinator.
type binary struct {
	left  *Slot
	right *Slot
}

func newBinary(left, right *Slot) binary {
	if left == nil {
		left = &Slot{}
	}
	if right == nil {
		right = &Slot{}
	}
	return binary{left: left, right: right}
}

// Left returns the left child handle.
func (b *binary) Left() *Slot { return b.left }

// Right returns the right child handle.
func (b *binary) Right() *Slot { return b.right }

// SetLeft replaces the left child handle with s.
func (b *binary) SetLeft(s *Slot) error {
	if s == nil {
		return ErrNilSlot
	}
	b.left = s
	return nil
}

// SetRight replaces the right child handle with s.
func (b *binary) SetRight(s *Slot) error {
	if s == nil {
		return ErrNilSlot
	}
	b.right = s
	return nil
}

// Valid guards against half-wired combinators: both children must be bound
// and individually valid.
func (b *binary) Valid() bool {
	return b.left.Valid() && b.right.Valid()
}

func (b *binary) clone() binary {
	return binary{left: b.left.Clone(), right: b.right.Clone()}
}

// Sum evaluates left(x) + right(x).
type Sum struct{ binary }

// NewSum returns a Sum over the given handles. A nil handle is replaced by an
// empty slot awaiting wiring.
func NewSum(left, right *Slot) *Sum { return &Sum{newBinary(left, right)} }

func (s *Sum) Eval(x float64) float64 { return s.left.Eval(x) + s.right.Eval(x) }

func (s *Sum) Clone() Node { return &Sum{s.clone()} }

func (s *Sum) Kind() Kind { return KindSum }

// Product evaluates left(x) · right(x).
type Product struct{ binary }

// NewProduct returns a Product over the given handles. A nil handle is
// replaced by an empty slot awaiting wiring.
func NewProduct(left, right *Slot) *Product { return &Product{newBinary(left, right)} }

func (p *Product) Eval(x float64) float64 { return p.left.Eval(x) * p.right.Eval(x) }

func (p *Product) Clone() Node { return &Product{p.clone()} }

func (p *Product) Kind() Kind { return KindProduct }

// NewCombinator builds a combinator of the given kind over left and right.
// Switching the kind of a live combinator passes its existing handles so the
// wiring survives. sampleRate is only used by KindFreqModulator.
func NewCombinator(kind Kind, left, right *Slot, sampleRate float64) (Combinator, error) {
	switch kind {
	case KindSum:
		return NewSum(left, right), nil
	case KindProduct:
		return NewProduct(left, right), nil
	case KindFreqModulator:
		return NewFreqModulator(left, right, sampleRate), nil
	default:
		return nil, wrapKind(kind, "combinator")
	}
}
