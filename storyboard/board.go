// Package storyboard turns a parsed course document into a fully planned
// deck model: per-unit parsed specs, resolved visual modes and the global
// slide/hyperlink plan. Everything here is pure computation - no I/O, no
// drawing - which is what makes the plan-then-render split testable.
package storyboard

import (
	"go.uber.org/zap"

	"sbc/course"
	"sbc/spec"
)

// UnitBoard is one unit with everything derived from it.
type UnitBoard struct {
	Unit   *course.Unit
	Visual *spec.VisualSpec
	Info   *spec.InfographicSpec // nil when the unit carries no infographic resource
	Mode   spec.Mode             // resolved, never ModeAuto
}

// Board is the complete deck model handed to the renderer.
type Board struct {
	Course *course.Course
	Units  []UnitBoard
	Plan   *Plan
}

// Build derives specs and modes for every unit and computes the slide plan.
// activityCutoff <= 0 selects the default.
func Build(c *course.Course, activityCutoff int, log *zap.Logger) *Board {
	b := &Board{Course: c, Units: make([]UnitBoard, len(c.Units))}

	popupCounts := make([]int, len(c.Units))
	for i := range c.Units {
		u := &c.Units[i]

		vs := spec.ParseVisual(u.Resource(course.ResourceVisualSpec), u.Title, u.Content)

		var is *spec.InfographicSpec
		if text := u.Resource(course.ResourceInfographic); text != "" {
			is = spec.ParseInfographic(text, u.Title)
		}

		mode := ResolveMode(u, vs, is, activityCutoff)
		log.Debug("Resolved unit visual",
			zap.String("unit", u.ID),
			zap.Stringer("mode", mode),
			zap.Stringer("layout", vs.Layout),
			zap.Int("items", len(vs.Items)),
			zap.Int("popups", len(vs.Popups)))

		b.Units[i] = UnitBoard{Unit: u, Visual: vs, Info: is, Mode: mode}
		popupCounts[i] = len(vs.Popups)
	}

	b.Plan = NewPlan(popupCounts)
	return b
}
