package hardware

import "context"

// EnvelopeSlot is the simulated deposit slot. It always reports that the
// envelope was received; only a real driver behind the DepositSlot
// interface can produce a false or an error.
type EnvelopeSlot struct{}

// NewEnvelopeSlot creates a simulated deposit slot.
func NewEnvelopeSlot() *EnvelopeSlot {
	return &EnvelopeSlot{}
}

// EnvelopeReceived always reports true.
func (s *EnvelopeSlot) EnvelopeReceived(ctx context.Context) (bool, error) {
	return true, nil
}

var _ DepositSlot = (*EnvelopeSlot)(nil)
