package course

import (
	"fmt"
	"math"
)

// Empirical review thresholds. The values have no deeper rationale than
// matching decks the heuristics were originally tuned on, which is why they
// stay named and overridable instead of being buried in the logic.
const (
	// DefaultCognitiveLoadMinutes flags courses too long for one sitting.
	DefaultCognitiveLoadMinutes = 180
	// DefaultDurationDriftTolerance is allowed relative mismatch between the
	// declared course duration and the sum of unit durations.
	DefaultDurationDriftTolerance = 0.2
)

// Audit reviews course pacing and returns human readable findings. Findings
// never block generation, callers log them and move on.
func Audit(c *Course, cognitiveLoadMinutes int, driftTolerance float64) []string {
	if cognitiveLoadMinutes <= 0 {
		cognitiveLoadMinutes = DefaultCognitiveLoadMinutes
	}
	if driftTolerance <= 0 {
		driftTolerance = DefaultDurationDriftTolerance
	}

	var findings []string

	total := 0
	for i := range c.Units {
		total += c.Units[i].Duration
	}

	if total > cognitiveLoadMinutes {
		findings = append(findings, fmt.Sprintf("combined unit duration %d min exceeds cognitive load budget of %d min", total, cognitiveLoadMinutes))
	}

	if c.Duration > 0 && total > 0 {
		drift := math.Abs(float64(total)-float64(c.Duration)) / float64(c.Duration)
		if drift > driftTolerance {
			findings = append(findings, fmt.Sprintf("unit durations add up to %d min while course declares %d min (drift %.0f%%)", total, c.Duration, drift*100))
		}
	}

	for i := range c.Units {
		u := &c.Units[i]
		if len(u.Content) == 0 && u.Resource(ResourceVisualSpec) == "" {
			findings = append(findings, fmt.Sprintf("unit %s has no visible content, slide falls back to purpose text", u.ID))
		}
	}
	return findings
}
