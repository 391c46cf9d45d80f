package pptx

import (
	"fmt"

	"sbc/convert/text"
	"sbc/mermaid"
	"sbc/spec"
	"sbc/storyboard"
)

// Canvas regions in EMU. The content region sits between the title band and
// the button strip at the bottom.
const (
	marginX = 685800
	marginY = 274638

	contentY = 1200000
	contentH = 4700000

	buttonRowY = 6096000
	buttonH    = 457200
	navW       = 914400
)

func contentRect() Rect {
	return Rect{X: marginX, Y: contentY, W: SlideWidth - 2*marginX, H: contentH}
}

// renderContent draws the unit body using the resolved visual mode. media is
// the registered media target for the unit image, empty when resolution
// degraded to text-only.
func (d *deck) renderContent(s *slide, ub *storyboard.UnitBoard, media string) {
	region := contentRect()

	switch ub.Mode {
	case spec.ModeInfographic:
		d.renderInfographic(s, region, ub)
	case spec.ModeComparison:
		d.renderComparison(s, region, ub.Visual)
	case spec.ModeActivity:
		d.renderActivity(s, region, ub)
	case spec.ModeImageSupport:
		if media != "" {
			left := region
			left.W = region.W * 58 / 100
			right := Rect{X: left.X + left.W + 228600, Y: region.Y, W: region.W - left.W - 228600, H: region.H}
			d.renderLayout(s, left, ub.Visual)
			s.addImage(media, right)
			break
		}
		d.renderLayout(s, region, ub.Visual)
	default:
		d.renderLayout(s, region, ub.Visual)
	}
}

// renderLayout dispatches the declared slide layout over a region.
func (d *deck) renderLayout(s *slide, region Rect, vs *spec.VisualSpec) {
	switch vs.Layout {
	case spec.LayoutProcessSteps:
		d.renderProcessSteps(s, region, vs.Items)
	case spec.LayoutCards:
		d.renderCards(s, region, vs.Items)
	case spec.LayoutTimeline:
		d.renderTimeline(s, region, vs.Items)
	default:
		d.renderBullets(s, region, vs.Items)
	}
}

func itemParas(s *slide, it spec.Item, titleSize, bodySize int) []para {
	var out []para
	if it.Title != "" {
		out = append(out, para{runs: []run{{
			text: it.Title, size: titleSize, bold: true,
			color: s.theme.TitleColor, font: s.theme.TitleFont,
		}}})
	}
	if it.Body != "" {
		out = append(out, para{runs: []run{{text: it.Body, size: bodySize}}})
	}
	if len(out) == 0 && it.Label != "" {
		out = append(out, para{runs: []run{{text: it.Label, size: titleSize, bold: true}}})
	}
	return out
}

// renderBullets is the fallback layout: a single surface with one bulleted
// paragraph per item.
func (d *deck) renderBullets(s *slide, region Rect, items []spec.Item) {
	sp := s.addShape(region, shapeOpts{name: "Bullets", geom: "roundRect", fill: s.theme.Surface, shadow: true})

	var paras []para
	for _, it := range items {
		p := para{bullet: true, space: 8}
		if it.Title != "" {
			p.runs = append(p.runs, run{text: it.Title, size: 18, bold: true, color: s.theme.TitleColor, font: s.theme.TitleFont})
		}
		if it.Body != "" {
			txt := it.Body
			if it.Title != "" {
				txt = " - " + txt
			}
			p.runs = append(p.runs, run{text: txt, size: 16})
		}
		if len(p.runs) == 0 {
			p.runs = append(p.runs, run{text: it.Label, size: 18})
		}
		paras = append(paras, p)
	}
	s.setText(sp, "ctr", paras)
}

// renderProcessSteps stacks numbered cards with connectors between them.
func (d *deck) renderProcessSteps(s *slide, region Rect, items []spec.Item) {
	n := len(items)
	if n == 0 {
		return
	}
	const gap = 182880
	stepH := (region.H - int64(n-1)*gap) / int64(n)
	accents := s.theme.Accents()

	for i, it := range items {
		y := region.Y + int64(i)*(stepH+gap)
		accent := accents[i%len(accents)]

		badge := Rect{X: region.X, Y: y, W: stepH, H: stepH}
		bsp := s.addShape(badge, shapeOpts{name: fmt.Sprintf("Step badge %d", i+1), geom: "ellipse", fill: accent})
		s.setText(bsp, "ctr", []para{{align: "ctr", runs: []run{{
			text: fmt.Sprintf("%d", i+1), size: 20, bold: true, color: s.theme.Surface,
		}}}})

		card := Rect{X: region.X + stepH + gap, Y: y, W: region.W - stepH - gap, H: stepH}
		csp := s.addShape(card, shapeOpts{name: fmt.Sprintf("Step %d", i+1), geom: "roundRect", fill: s.theme.Surface, shadow: true})
		s.setText(csp, "ctr", itemParas(s, it, 16, 13))

		if i > 0 {
			cx := region.X + stepH/2
			s.addConnector(cx, y-gap, cx, y, accent, 28575)
		}
	}
}

// renderCards lays items out on a two-column grid, each card with an accent
// stripe on top.
func (d *deck) renderCards(s *slide, region Rect, items []spec.Item) {
	n := len(items)
	if n == 0 {
		return
	}
	cols := 2
	if n == 1 {
		cols = 1
	}
	rows := (n + cols - 1) / cols
	const gap = 228600
	cardW := (region.W - int64(cols-1)*gap) / int64(cols)
	cardH := (region.H - int64(rows-1)*gap) / int64(rows)
	accents := s.theme.Accents()

	for i, it := range items {
		col, row := i%cols, i/cols
		x := region.X + int64(col)*(cardW+gap)
		y := region.Y + int64(row)*(cardH+gap)

		s.addShape(Rect{X: x, Y: y, W: cardW, H: cardH},
			shapeOpts{name: fmt.Sprintf("Card %d", i+1), geom: "roundRect", fill: s.theme.Surface, shadow: true})
		s.addShape(Rect{X: x, Y: y, W: cardW, H: 91440},
			shapeOpts{name: fmt.Sprintf("Card stripe %d", i+1), fill: accents[i%len(accents)]})

		body := Rect{X: x + 137160, Y: y + 137160, W: cardW - 2*137160, H: cardH - 2*137160}
		s.addTextBox(body, "t", itemParas(s, it, 16, 13))
	}
}

// renderTimeline draws milestones along a vertical rule.
func (d *deck) renderTimeline(s *slide, region Rect, items []spec.Item) {
	n := len(items)
	if n == 0 {
		return
	}
	railX := region.X + 457200
	s.addConnector(railX, region.Y, railX, region.Y+region.H, s.theme.Accent, 38100)

	slotH := region.H / int64(n)
	accents := s.theme.Accents()
	for i, it := range items {
		cy := region.Y + int64(i)*slotH + slotH/2

		const dot = 137160
		s.addShape(Rect{X: railX - dot/2, Y: cy - dot/2, W: dot, H: dot},
			shapeOpts{name: fmt.Sprintf("Milestone %d", i+1), geom: "ellipse", fill: accents[i%len(accents)]})

		label := Rect{X: railX + 228600, Y: cy - slotH/2 + 22860, W: region.X + region.W - railX - 228600, H: slotH - 45720}
		s.addTextBox(label, "ctr", itemParas(s, it, 15, 12))
	}
}

// renderComparison puts items side by side, one column each. Fewer than two
// items cannot be contrasted, those fall back to the declared layout.
func (d *deck) renderComparison(s *slide, region Rect, vs *spec.VisualSpec) {
	items := vs.Items
	n := len(items)
	if n < 2 {
		d.renderLayout(s, region, vs)
		return
	}
	if n > 3 {
		items, n = items[:3], 3
	}
	const gap = 228600
	colW := (region.W - int64(n-1)*gap) / int64(n)
	accents := s.theme.Accents()

	for i, it := range items {
		x := region.X + int64(i)*(colW+gap)
		col := Rect{X: x, Y: region.Y, W: colW, H: region.H}
		s.addShape(col, shapeOpts{name: fmt.Sprintf("Compare %d", i+1), geom: "roundRect", fill: s.theme.Surface, shadow: true})

		head := Rect{X: x, Y: region.Y, W: colW, H: 548640}
		hsp := s.addShape(head, shapeOpts{name: fmt.Sprintf("Compare head %d", i+1), geom: "roundRect", fill: accents[i%len(accents)]})
		title := it.Title
		if title == "" {
			title = it.Label
		}
		s.setText(hsp, "ctr", []para{{align: "ctr", runs: []run{{
			text: title, size: 16, bold: true, color: s.theme.Surface, font: s.theme.TitleFont,
		}}}})

		body := Rect{X: x + 137160, Y: region.Y + 640080, W: colW - 2*137160, H: region.H - 777240}
		s.addTextBox(body, "t", []para{{runs: []run{{text: it.Body, size: 13}}}})
	}
}

// renderActivity numbers instruction rows split from the unit's activity
// text, falling back to spec items when the unit declares no activities.
func (d *deck) renderActivity(s *slide, region Rect, ub *storyboard.UnitBoard) {
	steps := text.SplitSteps(ub.Unit.ActivityText(), spec.MaxItems)
	if len(steps) == 0 {
		d.renderLayout(s, region, ub.Visual)
		return
	}

	items := make([]spec.Item, len(steps))
	for i, step := range steps {
		items[i] = spec.Item{Body: step}
	}

	n := len(items)
	const gap = 137160
	rowH := (region.H - int64(n-1)*gap) / int64(n)
	for i, it := range items {
		y := region.Y + int64(i)*(rowH+gap)

		badge := Rect{X: region.X, Y: y, W: rowH, H: rowH}
		bsp := s.addShape(badge, shapeOpts{name: fmt.Sprintf("Activity badge %d", i+1), geom: "ellipse", fill: s.theme.Accent2})
		s.setText(bsp, "ctr", []para{{align: "ctr", runs: []run{{
			text: fmt.Sprintf("%d", i+1), size: 16, bold: true, color: s.theme.Surface,
		}}}})

		row := Rect{X: region.X + rowH + gap, Y: y, W: region.W - rowH - gap, H: rowH}
		rsp := s.addShape(row, shapeOpts{name: fmt.Sprintf("Activity %d", i+1), geom: "roundRect", fill: s.theme.Surface})
		s.setText(rsp, "ctr", []para{{runs: []run{{text: it.Body, size: 14}}}})
	}
}

// renderInfographic combines the declared layout with a diagram inset when
// the unit asks for one. Graph synthesis happens for any infographic
// resource, so the inset is drawn only when the resource requires it.
// Without a graph the layout gets the whole region.
func (d *deck) renderInfographic(s *slide, region Rect, ub *storyboard.UnitBoard) {
	var g *mermaid.Graph
	if ub.Info != nil && ub.Info.Requires {
		g = ub.Info.Graph()
	}
	if g == nil {
		d.renderLayout(s, region, ub.Visual)
		return
	}

	left := region
	left.W = region.W * 55 / 100
	inset := Rect{X: left.X + left.W + 228600, Y: region.Y, W: region.W - left.W - 228600, H: region.H}
	d.renderLayout(s, left, ub.Visual)
	d.renderMermaid(s, inset, g)
}

// renderMermaid draws the ordered node walk as connected boxes inside the
// inset, honoring graph direction.
func (d *deck) renderMermaid(s *slide, region Rect, g *mermaid.Graph) {
	s.addShape(region, shapeOpts{name: "Diagram", geom: "roundRect", fill: s.theme.Surface, line: s.theme.Accent, lineW: 19050})

	nodes := g.OrderNodes()
	n := len(nodes)
	if n == 0 {
		return
	}

	inner := Rect{X: region.X + 137160, Y: region.Y + 137160, W: region.W - 2*137160, H: region.H - 2*137160}
	const gap = 137160
	accents := s.theme.Accents()

	if g.Direction == mermaid.TopToBottom {
		boxH := (inner.H - int64(n-1)*gap) / int64(n)
		for i, node := range nodes {
			y := inner.Y + int64(i)*(boxH+gap)
			box := Rect{X: inner.X, Y: y, W: inner.W, H: boxH}
			sp := s.addShape(box, shapeOpts{name: "Node " + node.ID, geom: "roundRect", fill: accents[i%len(accents)]})
			s.setText(sp, "ctr", []para{{align: "ctr", runs: []run{{
				text: node.Label, size: 12, bold: true, color: s.theme.Surface,
			}}}})
			if i > 0 {
				cx := inner.X + inner.W/2
				s.addConnector(cx, y-gap, cx, y, s.theme.BodyColor, 19050)
			}
		}
		return
	}

	boxW := (inner.W - int64(n-1)*gap) / int64(n)
	boxH := inner.H / 3
	cy := inner.Y + inner.H/2 - boxH/2
	for i, node := range nodes {
		x := inner.X + int64(i)*(boxW+gap)
		box := Rect{X: x, Y: cy, W: boxW, H: boxH}
		sp := s.addShape(box, shapeOpts{name: "Node " + node.ID, geom: "roundRect", fill: accents[i%len(accents)]})
		s.setText(sp, "ctr", []para{{align: "ctr", runs: []run{{
			text: node.Label, size: 11, bold: true, color: s.theme.Surface,
		}}}})
		if i > 0 {
			s.addConnector(x-gap, cy+boxH/2, x, cy+boxH/2, s.theme.BodyColor, 19050)
		}
	}
}
