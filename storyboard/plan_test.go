package storyboard

import "testing"

func TestPlanLayout(t *testing.T) {
	// three units with 2, 0 and 1 popups
	p := NewPlan([]int{2, 0, 1})

	if p.Cover != 1 || p.Menu != 2 {
		t.Errorf("Cover = %d, Menu = %d", p.Cover, p.Menu)
	}
	if p.Total() != 8 {
		t.Errorf("Total() = %d, want 8", p.Total())
	}
	if p.Units() != 3 {
		t.Errorf("Units() = %d, want 3", p.Units())
	}

	wantUnits := []int{3, 4, 5}
	for i, want := range wantUnits {
		if got := p.UnitSlide(i); got != want {
			t.Errorf("UnitSlide(%d) = %d, want %d", i, got, want)
		}
	}

	if got := p.PopupSlide(0, 0); got != 6 {
		t.Errorf("PopupSlide(0,0) = %d, want 6", got)
	}
	if got := p.PopupSlide(0, 1); got != 7 {
		t.Errorf("PopupSlide(0,1) = %d, want 7", got)
	}
	if got := p.PopupSlide(2, 0); got != 8 {
		t.Errorf("PopupSlide(2,0) = %d, want 8", got)
	}
	if got := p.PopupCount(1); got != 0 {
		t.Errorf("PopupCount(1) = %d, want 0", got)
	}
}

func TestPlanNavigation(t *testing.T) {
	p := NewPlan([]int{0, 0, 0})

	if got := p.PrevTarget(0); got != p.Menu {
		t.Errorf("PrevTarget(first) = %d, want menu %d", got, p.Menu)
	}
	if got := p.NextTarget(2); got != p.Menu {
		t.Errorf("NextTarget(last) = %d, want menu %d", got, p.Menu)
	}
	if got := p.PrevTarget(1); got != 3 {
		t.Errorf("PrevTarget(1) = %d, want 3", got)
	}
	if got := p.NextTarget(1); got != 5 {
		t.Errorf("NextTarget(1) = %d, want 5", got)
	}
}

func TestPlanSingleUnit(t *testing.T) {
	p := NewPlan([]int{0})
	if p.Total() != 3 {
		t.Errorf("Total() = %d, want 3", p.Total())
	}
	// both directions wrap to the menu
	if p.PrevTarget(0) != p.Menu || p.NextTarget(0) != p.Menu {
		t.Error("single unit navigation must wrap to menu")
	}
}

func TestPlanNoUnits(t *testing.T) {
	p := NewPlan(nil)
	if p.Total() != 2 {
		t.Errorf("Total() = %d, want cover and menu only", p.Total())
	}
}

func TestPlanAssertViolation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-plan target")
		}
	}()
	p := NewPlan([]int{0})
	p.assert(99)
}
