package entities

import (
	"errors"
	"fmt"
)

// DialCount is the number of dials on the restart timer (hours, minutes, seconds).
const DialCount = 3

// DialBank is the restart timer: independent single digits that wrap around.
// There is no carry between dials.
type DialBank [DialCount]int

// ErrDialIndex is returned for a dial index outside 0..DialCount-1.
var ErrDialIndex = fmt.Errorf("dial index must be between 0 and %d", DialCount-1)

// ErrDialDelta is returned for a step other than +1 or -1.
var ErrDialDelta = errors.New("dial delta must be +1 or -1")

// Step turns one dial by delta (+1 or -1) and returns its new value.
func (d *DialBank) Step(index, delta int) (int, error) {
	if index < 0 || index >= DialCount {
		return 0, fmt.Errorf("%w: got %d", ErrDialIndex, index)
	}
	switch delta {
	case 1:
		d[index] = (d[index] + 1) % 10
	case -1:
		d[index] = (d[index] + 9) % 10
	default:
		return 0, fmt.Errorf("%w: got %d", ErrDialDelta, delta)
	}
	return d[index], nil
}

// Reset sets every dial back to 0.
func (d *DialBank) Reset() {
	*d = DialBank{}
}

// Matches reports whether the dials show want, element by element.
func (d DialBank) Matches(want [DialCount]int) bool {
	return [DialCount]int(d) == want
}
