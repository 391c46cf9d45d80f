package storyboard

import (
	"strings"
	"testing"

	"sbc/course"
	"sbc/spec"
)

func TestResolveModeDeclaredWins(t *testing.T) {
	u := &course.Unit{Content: []string{"compara las ventajas del proceso paso a paso"}}
	vs := &spec.VisualSpec{Mode: spec.ModeImageSupport}
	if got := ResolveMode(u, vs, nil, 0); got != spec.ModeImageSupport {
		t.Errorf("ResolveMode() = %v, declared mode must win", got)
	}
}

func TestResolveModeInfographic(t *testing.T) {
	cases := []struct {
		name string
		u    *course.Unit
		vs   *spec.VisualSpec
		is   *spec.InfographicSpec
	}{
		{"required by resource", &course.Unit{}, &spec.VisualSpec{}, &spec.InfographicSpec{Requires: true}},
		{"timeline layout", &course.Unit{}, &spec.VisualSpec{Layout: spec.LayoutTimeline, LayoutDeclared: true}, nil},
		{"step vocabulary", &course.Unit{Content: []string{"El Proceso tiene tres etapas"}}, &spec.VisualSpec{}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveMode(tc.u, tc.vs, tc.is, 0); got != spec.ModeInfographic {
				t.Errorf("ResolveMode() = %v, want infographic", got)
			}
		})
	}
}

func TestResolveModeComparison(t *testing.T) {
	u := &course.Unit{Content: []string{"ventajas y desventajas de cada enfoque"}}
	if got := ResolveMode(u, &spec.VisualSpec{}, nil, 0); got != spec.ModeComparison {
		t.Errorf("ResolveMode() = %v, want comparison", got)
	}

	u = &course.Unit{Content: []string{"nada especial"}}
	vs := &spec.VisualSpec{Layout: spec.LayoutCards, LayoutDeclared: true}
	if got := ResolveMode(u, vs, nil, 0); got != spec.ModeComparison {
		t.Errorf("ResolveMode(cards) = %v, want comparison", got)
	}

	// cards derived from fallback content carry no comparison intent
	vs = &spec.VisualSpec{Layout: spec.LayoutCards}
	if got := ResolveMode(u, vs, nil, 0); got != spec.ModeImageSupport {
		t.Errorf("ResolveMode(fallback cards) = %v, want image support", got)
	}
}

func TestResolveModeActivity(t *testing.T) {
	long := strings.Repeat("texto neutral sin vocabulario marcado ", 30)
	u := &course.Unit{Content: []string{long}}
	if got := ResolveMode(u, &spec.VisualSpec{}, nil, 0); got != spec.ModeActivity {
		t.Errorf("ResolveMode(long) = %v, want activity", got)
	}
	// cutoff is configurable
	if got := ResolveMode(u, &spec.VisualSpec{}, nil, len(long)+10); got != spec.ModeImageSupport {
		t.Errorf("ResolveMode(raised cutoff) = %v, want image support", got)
	}
}

func TestResolveModeDefault(t *testing.T) {
	u := &course.Unit{Content: []string{"texto corto y neutral"}}
	if got := ResolveMode(u, &spec.VisualSpec{}, nil, 0); got != spec.ModeImageSupport {
		t.Errorf("ResolveMode() = %v, want image support", got)
	}
}
