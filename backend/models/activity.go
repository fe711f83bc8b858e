package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidActivityID = errors.New("invalid activity id")

// ActivityID addresses one activity of the curriculum. The string form
// p<phase>-d<day>-a<index> is only used on the wire and in storage.
type ActivityID struct {
	PhaseID       int
	DayID         int
	ActivityIndex int
}

func NewActivityID(phaseID, dayID, activityIndex int) ActivityID {
	return ActivityID{PhaseID: phaseID, DayID: dayID, ActivityIndex: activityIndex}
}

func (id ActivityID) String() string {
	return fmt.Sprintf("p%d-d%d-a%d", id.PhaseID, id.DayID, id.ActivityIndex)
}

// Less orders identifiers by phase, then day, then activity index.
func (id ActivityID) Less(other ActivityID) bool {
	if id.PhaseID != other.PhaseID {
		return id.PhaseID < other.PhaseID
	}
	if id.DayID != other.DayID {
		return id.DayID < other.DayID
	}
	return id.ActivityIndex < other.ActivityIndex
}

func ParseActivityID(s string) (ActivityID, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return ActivityID{}, fmt.Errorf("%w: %q", ErrInvalidActivityID, s)
	}

	phaseID, err := parseIDPart(parts[0], "p")
	if err != nil {
		return ActivityID{}, fmt.Errorf("%w: %q: %v", ErrInvalidActivityID, s, err)
	}
	dayID, err := parseIDPart(parts[1], "d")
	if err != nil {
		return ActivityID{}, fmt.Errorf("%w: %q: %v", ErrInvalidActivityID, s, err)
	}
	index, err := parseIDPart(parts[2], "a")
	if err != nil {
		return ActivityID{}, fmt.Errorf("%w: %q: %v", ErrInvalidActivityID, s, err)
	}
	if index < 0 {
		return ActivityID{}, fmt.Errorf("%w: %q: negative activity index", ErrInvalidActivityID, s)
	}

	return NewActivityID(phaseID, dayID, index), nil
}

func parseIDPart(part, prefix string) (int, error) {
	digits, ok := strings.CutPrefix(part, prefix)
	if !ok || digits == "" {
		return 0, fmt.Errorf("expected %s<number>, got %q", prefix, part)
	}
	// Atoi would accept a sign, the canonical form never carries one.
	if digits[0] == '+' || digits[0] == '-' {
		return 0, fmt.Errorf("unexpected sign in %q", part)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("expected %s<number>, got %q", prefix, part)
	}
	return n, nil
}

func (id ActivityID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ActivityID) UnmarshalText(text []byte) error {
	parsed, err := ParseActivityID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
