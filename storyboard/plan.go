package storyboard

import "fmt"

// Plan fixes every slide number and therefore every hyperlink target before
// any drawing starts. Slide numbers are 1-based and contiguous: cover, menu,
// unit slides in document order, then popup slides grouped by unit in
// document order. Computed exactly once per run, read-only afterwards.
//
// Renderers embed hyperlinks by slide number, so the full plan must exist
// first - this is a deliberate two-phase protocol, not an optimization.
type Plan struct {
	Cover int
	Menu  int

	unitSlides  []int
	popupSlides [][]int
	total       int
}

// NewPlan lays out slide numbers for the given per-unit popup counts.
func NewPlan(popupCounts []int) *Plan {
	p := &Plan{Cover: 1, Menu: 2}

	n := len(popupCounts)
	p.unitSlides = make([]int, n)
	for i := range n {
		p.unitSlides[i] = 3 + i
	}

	next := 3 + n
	p.popupSlides = make([][]int, n)
	for i, count := range popupCounts {
		p.popupSlides[i] = make([]int, count)
		for j := range count {
			p.popupSlides[i][j] = next
			next++
		}
	}
	p.total = next - 1
	return p
}

// Total returns the number of slides in the deck.
func (p *Plan) Total() int {
	return p.total
}

// Units returns the number of planned units.
func (p *Plan) Units() int {
	return len(p.unitSlides)
}

// UnitSlide returns slide number of the unit's main slide.
func (p *Plan) UnitSlide(unit int) int {
	return p.assert(p.unitSlides[unit])
}

// PopupCount returns how many popup slides the unit owns.
func (p *Plan) PopupCount(unit int) int {
	return len(p.popupSlides[unit])
}

// PopupSlide returns slide number of the unit's popup in parse order.
func (p *Plan) PopupSlide(unit, popup int) int {
	return p.assert(p.popupSlides[unit][popup])
}

// PrevTarget returns where the unit's "previous" link goes, wrapping to the
// menu at the first unit.
func (p *Plan) PrevTarget(unit int) int {
	if unit == 0 {
		return p.Menu
	}
	return p.assert(p.unitSlides[unit-1])
}

// NextTarget returns where the unit's "next" link goes, wrapping to the menu
// at the last unit.
func (p *Plan) NextTarget(unit int) int {
	if unit == len(p.unitSlides)-1 {
		return p.Menu
	}
	return p.assert(p.unitSlides[unit+1])
}

// assert guards the plan invariant: a link target outside the final slide
// count is a planning bug, not bad input, and must fail loudly.
func (p *Plan) assert(slide int) int {
	if slide < 1 || slide > p.total {
		panic(fmt.Sprintf("slide plan violation: target %d outside deck of %d slides", slide, p.total))
	}
	return slide
}
