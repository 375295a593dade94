package entities

import (
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// SequenceLength is the number of presses the restart panel records.
const SequenceLength = 3

// ButtonPanel is the restart panel. It knows its buttons; the recorded presses
// live in the caller's progress.
type ButtonPanel struct {
	labels mapset.Set[string]
}

// NewButtonPanel creates a panel with the given button labels.
func NewButtonPanel(labels []string) *ButtonPanel {
	set := mapset.New[string]()
	for _, label := range labels {
		set.Put(NormalizeLabel(label))
	}
	return &ButtonPanel{labels: set}
}

// NormalizeLabel trims and upper-cases a button label.
func NormalizeLabel(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}

// HasButton reports whether the panel has a button with this label.
func (p *ButtonPanel) HasButton(label string) bool {
	return p.labels.Has(NormalizeLabel(label))
}

// Press appends label to seq. The press is ignored (false) once seq is full or
// when the panel has no such button.
func (p *ButtonPanel) Press(seq []string, label string) ([]string, bool) {
	if len(seq) >= SequenceLength || !p.HasButton(label) {
		return seq, false
	}
	return append(seq, NormalizeLabel(label)), true
}

// SequenceMatches reports whether exactly SequenceLength presses were made in the
// order of want.
func SequenceMatches(seq []string, want [SequenceLength]string) bool {
	if len(seq) != SequenceLength {
		return false
	}
	for i, label := range seq {
		if label != NormalizeLabel(want[i]) {
			return false
		}
	}
	return true
}

// FormatSequence renders presses as "A → B → C", or "—" when nothing was pressed.
func FormatSequence(seq []string) string {
	if len(seq) == 0 {
		return "—"
	}
	return strings.Join(seq, " → ")
}
