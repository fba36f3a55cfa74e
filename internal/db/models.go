package db

import (
	"fmt"
	"strings"
)

// Status is a quest's progress state.
type Status int64

const (
	Pending Status = iota
	Ongoing
	Completed
	Waiting
	Abandoned
)

var statusNames = [...]string{"Pending", "Ongoing", "Completed", "Waiting", "Abandoned"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int64(s))
	}
	return statusNames[s]
}

// StatusFromInt decodes a stored status integer. Out-of-range values mean the
// stored data is corrupt, not that the caller made a bad request.
func StatusFromInt(v int64) (Status, error) {
	if v < 0 || int(v) >= len(statusNames) {
		return 0, &InvalidEncodingError{Field: "status", Value: v}
	}
	return Status(v), nil
}

// ParseStatus parses a case-insensitive status name, as given on the command line.
func ParseStatus(name string) (Status, error) {
	for i, n := range statusNames {
		if strings.EqualFold(name, n) {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("unknown status %q (expected one of %s)",
		name, strings.ToLower(strings.Join(statusNames[:], ", ")))
}

// Tier is a quest's difficulty or importance rank.
type Tier int64

const (
	Common Tier = iota
	Rare
	Epic
	Legendary
)

var tierNames = [...]string{"Common", "Rare", "Epic", "Legendary"}

// TierGlyph prefixes every rendered tier.
const TierGlyph = "✦"

func (t Tier) String() string {
	if t < 0 || int(t) >= len(tierNames) {
		return fmt.Sprintf("Tier(%d)", int64(t))
	}
	return tierNames[t]
}

// Display returns the tier with its leading glyph, e.g. "✦ Epic".
func (t Tier) Display() string {
	return TierGlyph + " " + t.String()
}

// TierFromInt decodes a stored tier integer.
func TierFromInt(v int64) (Tier, error) {
	if v < 0 || int(v) >= len(tierNames) {
		return 0, &InvalidEncodingError{Field: "tier", Value: v}
	}
	return Tier(v), nil
}

// ParseTier parses a case-insensitive tier name, as given on the command line.
func ParseTier(name string) (Tier, error) {
	for i, n := range tierNames {
		if strings.EqualFold(name, n) {
			return Tier(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tier %q (expected one of %s)",
		name, strings.ToLower(strings.Join(tierNames[:], ", ")))
}

// Quest is one row of the quest table. ChainID points at the parent quest of a
// chain; nil means the quest is a root. Parents always have smaller ids than
// their children because a child can only be created against an existing parent.
type Quest struct {
	ID        int64
	ChainID   *int64
	Objective string
	Status    Status
	Tier      Tier
}

// NewQuest constructs a quest that has not been persisted yet. The real id is
// assigned by the store on Add.
func NewQuest(objective string, status Status, tier Tier, chainID *int64) Quest {
	return Quest{
		ID:        uninitializedID,
		ChainID:   chainID,
		Objective: objective,
		Status:    status,
		Tier:      tier,
	}
}

const uninitializedID int64 = -1
