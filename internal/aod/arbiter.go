package aod

// Observation is one beacon's contribution toward a position fix: the
// beacon that produced it, and the resulting local direction cosines
// transformed into the global frame.
type Observation struct {
	BeaconMAC       MAC
	GlobalDirection Vec3
	TimestampMS     int64
}

// Arbiter decides, given a new pipeline observation, whether it pairs
// with a previously offered one from a distinct beacon. A pair is
// handed to a Locator; an unpaired observation is simply held. This is
// intentionally a small interface: the default PreviousFrameArbiter
// keeps only the single most recent observation, but a richer policy
// (per-MAC freshest buffer, time-windowed matching) can be substituted
// without changing anything upstream or downstream of it.
type Arbiter interface {
	Offer(obs Observation) (pos Position, ok bool, err error)
}

// PreviousFrameArbiter is the default Arbiter: it remembers exactly one
// prior observation and pairs it with the next one from a different
// beacon MAC.
type PreviousFrameArbiter struct {
	registry *Registry
	locator  *Locator

	held  Observation
	valid bool
}

// NewArbiter returns a PreviousFrameArbiter that resolves beacon
// positions from registry and feeds completed pairs to locator.
func NewArbiter(registry *Registry, locator *Locator) *PreviousFrameArbiter {
	return &PreviousFrameArbiter{registry: registry, locator: locator}
}

// Offer presents a new observation. If it completes a pair with the
// previously held observation (a different beacon), Offer invokes the
// locator and returns the resulting position. Otherwise it becomes the
// held observation and ok is false.
func (a *PreviousFrameArbiter) Offer(obs Observation) (pos Position, ok bool, err error) {
	if !a.valid || a.held.BeaconMAC.Equal(obs.BeaconMAC) {
		a.held = obs
		a.valid = true
		return Position{}, false, nil
	}

	b1, err := a.registry.Get(a.held.BeaconMAC)
	if err != nil {
		a.held = obs
		return Position{}, false, err
	}
	b2, err := a.registry.Get(obs.BeaconMAC)
	if err != nil {
		a.held = obs
		return Position{}, false, err
	}

	pos, err = a.locator.EstimateFromSkewLines(
		obs.TimestampMS,
		b1.Position(), a.held.GlobalDirection,
		b2.Position(), obs.GlobalDirection,
	)

	a.held = obs
	if err != nil {
		return Position{}, false, err
	}
	return pos, true, nil
}

var _ Arbiter = (*PreviousFrameArbiter)(nil)
