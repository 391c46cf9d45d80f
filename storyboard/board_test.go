package storyboard

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"sbc/course"
	"sbc/spec"
)

func testCourse() *course.Course {
	return &course.Course{
		Name:  "demo",
		Title: "Curso demo",
		Units: []course.Unit{
			{
				ID:      "unit_1",
				Title:   "Primera unidad",
				Content: []string{"texto corto y neutral"},
				Resources: []course.Resource{
					{Type: "visual_spec", Content: "layout: cards\nbuttons: Ver ejemplo, Tip\n"},
				},
			},
			{
				ID:      "unit_2",
				Title:   "Segunda unidad",
				Content: []string{"otro texto corto"},
				Resources: []course.Resource{
					{Type: "infografia_tecnica", Content: "tema: Ciclo\nrequiere_infografia: sí\n"},
				},
			},
			{
				ID:      "unit_3",
				Title:   "Tercera unidad",
				Content: []string{"cierre breve"},
			},
		},
	}
}

func TestBuild(t *testing.T) {
	log := zaptest.NewLogger(t)
	b := Build(testCourse(), 0, log)

	if len(b.Units) != 3 {
		t.Fatalf("units = %d", len(b.Units))
	}
	for i, ub := range b.Units {
		if ub.Unit == nil || ub.Visual == nil {
			t.Fatalf("unit %d not populated: %+v", i, ub)
		}
		if ub.Mode == spec.ModeAuto {
			t.Errorf("unit %d mode left unresolved", i)
		}
	}

	// declared spec pieces flow through
	if b.Units[0].Visual.Layout != spec.LayoutCards {
		t.Errorf("unit 0 layout = %v", b.Units[0].Visual.Layout)
	}
	if b.Units[0].Mode != spec.ModeComparison {
		t.Errorf("unit 0 mode = %v", b.Units[0].Mode)
	}
	if b.Units[1].Info == nil || !b.Units[1].Info.Requires {
		t.Errorf("unit 1 infographic = %+v", b.Units[1].Info)
	}
	if b.Units[1].Mode != spec.ModeInfographic {
		t.Errorf("unit 1 mode = %v", b.Units[1].Mode)
	}
	if b.Units[2].Info != nil {
		t.Errorf("unit 2 infographic = %+v, want nil", b.Units[2].Info)
	}
	if b.Units[2].Mode != spec.ModeImageSupport {
		t.Errorf("unit 2 mode = %v", b.Units[2].Mode)
	}
}

func TestBuildPlanMatchesPopups(t *testing.T) {
	log := zaptest.NewLogger(t)
	b := Build(testCourse(), 0, log)

	if b.Plan == nil {
		t.Fatal("plan not computed")
	}
	want := 2 // cover and menu
	want += len(b.Units)
	for i, ub := range b.Units {
		if got := b.Plan.PopupCount(i); got != len(ub.Visual.Popups) {
			t.Errorf("plan popup count %d = %d, spec has %d", i, got, len(ub.Visual.Popups))
		}
		want += len(ub.Visual.Popups)
	}
	if b.Plan.Total() != want {
		t.Errorf("Total() = %d, want %d", b.Plan.Total(), want)
	}
	// unit 0 authored buttons only, popups are synthesized to match
	if b.Plan.PopupCount(0) != 2 {
		t.Errorf("unit 0 popups = %d, want 2 synthesized", b.Plan.PopupCount(0))
	}
}

func TestBuildEmptyCourse(t *testing.T) {
	log := zaptest.NewLogger(t)
	b := Build(&course.Course{Title: "vacío"}, 0, log)
	if len(b.Units) != 0 {
		t.Errorf("units = %v", b.Units)
	}
	if b.Plan.Total() != 2 {
		t.Errorf("Total() = %d", b.Plan.Total())
	}
}
