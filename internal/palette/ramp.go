package palette

import "fmt"

// Stop anchors a color at a position along a ramp.
type Stop struct {
	Position float64 `json:"position" yaml:"position"`
	Color    RGBA    `json:"color" yaml:"color"`
}

// Ramp is an ordered list of color stops sampled by linear interpolation.
// Stop positions must be strictly increasing. A single-stop ramp is legal
// and samples to that stop's color everywhere. Callers are expected to
// validate ramps once (NewRamp or Validate) before sampling.
type Ramp struct {
	Stops []Stop `json:"stops" yaml:"stops"`
}

// InvalidRampError reports a ramp that cannot be sampled.
type InvalidRampError struct {
	Reason string
}

func (e *InvalidRampError) Error() string {
	return fmt.Sprintf("invalid ramp: %s", e.Reason)
}

// NewRamp builds a ramp from the given stops and validates it.
func NewRamp(stops ...Stop) (Ramp, error) {
	r := Ramp{Stops: stops}
	if err := r.Validate(); err != nil {
		return Ramp{}, err
	}
	return r, nil
}

// MustRamp is NewRamp for static ramp definitions. Panics on invalid input.
func MustRamp(stops ...Stop) Ramp {
	r, err := NewRamp(stops...)
	if err != nil {
		panic(err)
	}
	return r
}

// Validate checks that the ramp has at least one stop and that stop
// positions are strictly increasing.
func (r Ramp) Validate() error {
	if len(r.Stops) == 0 {
		return &InvalidRampError{Reason: "ramp has no stops"}
	}
	for i := 1; i < len(r.Stops); i++ {
		if r.Stops[i].Position <= r.Stops[i-1].Position {
			return &InvalidRampError{Reason: fmt.Sprintf(
				"stop %d position %g is not above previous position %g",
				i, r.Stops[i].Position, r.Stops[i-1].Position)}
		}
	}
	return nil
}

// Sample returns the ramp color at t. t is clamped to [0,1]; values at or
// outside the first/last stop position return that stop's color unmodified.
func (r Ramp) Sample(t float64) RGBA {
	t = Clamp01(t)

	first := r.Stops[0]
	if t <= first.Position {
		return first.Color
	}
	last := r.Stops[len(r.Stops)-1]
	if t >= last.Position {
		return last.Color
	}

	// find the bracketing stop pair
	i := 0
	for r.Stops[i+1].Position < t {
		i++
	}
	lo, hi := r.Stops[i], r.Stops[i+1]

	frac := (t - lo.Position) / (hi.Position - lo.Position)
	return Lerp(lo.Color, hi.Color, frac)
}
