package storyboard

import (
	"strings"

	"sbc/course"
	"sbc/spec"
)

// DefaultActivityTextCutoff is the visible-text length (runes are not worth
// the trouble here, bytes track the tuned value closely enough) above which a
// unit without stronger signals renders as a step-by-step activity slide.
const DefaultActivityTextCutoff = 700

// Vocabulary that marks a unit as describing a step sequence.
var stepVocabulary = []string{"paso", "proceso", "etapa", "fases", "secuencia", "timeline"}

// Vocabulary that marks a unit as contrasting alternatives.
var contrastVocabulary = []string{"versus", "vs.", "compar", "diferencia", "ventajas", "desventajas"}

// ResolveMode picks the rendering strategy for one unit. Explicit authoring
// intent wins, content heuristics break the tie, image support is the final
// default. First match wins, in this order: declared mode, infographic,
// comparison, activity, image support.
func ResolveMode(u *course.Unit, vs *spec.VisualSpec, is *spec.InfographicSpec, activityCutoff int) spec.Mode {
	if vs.Mode != spec.ModeAuto {
		return vs.Mode
	}
	if activityCutoff <= 0 {
		activityCutoff = DefaultActivityTextCutoff
	}

	visible := course.Fold(u.VisibleText())

	if (is != nil && is.Requires) || (vs.LayoutDeclared && vs.Layout == spec.LayoutTimeline) || containsAny(visible, stepVocabulary) {
		return spec.ModeInfographic
	}
	if containsAny(visible, contrastVocabulary) || (vs.LayoutDeclared && vs.Layout == spec.LayoutCards) {
		return spec.ModeComparison
	}
	if len(u.VisibleText()) > activityCutoff {
		return spec.ModeActivity
	}
	return spec.ModeImageSupport
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
