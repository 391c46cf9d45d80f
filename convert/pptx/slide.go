package pptx

import (
	"fmt"

	"github.com/beevik/etree"

	"sbc/css"
)

// Rect positions a shape on the slide canvas, in EMU.
type Rect struct {
	X, Y, W, H int64
}

// run is one formatted text fragment.
type run struct {
	text   string
	size   int // points
	bold   bool
	italic bool
	color  string // RRGGBB, empty means theme body color
	font   string // empty means theme body font
}

// para is one paragraph of runs.
type para struct {
	runs   []run
	align  string // "l", "ctr", "r"
	bullet bool
	space  int // points before paragraph
}

// shapeOpts styles an addShape call.
type shapeOpts struct {
	name   string
	geom   string // preset geometry, defaults to "rect"
	fill   string // RRGGBB, empty means no fill
	line   string // RRGGBB, empty means no outline
	lineW  int64  // EMU, used when line is set
	linkTo int    // deck slide number, 0 means no hyperlink
	shadow bool
}

// slide accumulates shapes, relationships and speaker notes for one deck
// position. Relationship rId1 is always the layout.
type slide struct {
	num     int
	theme   *css.Theme
	doc     *etree.Document
	spTree  *etree.Element
	rels    []relationship
	notes   []string
	shapeID int
}

func newSlide(num int, theme *css.Theme) *slide {
	doc := newXMLDoc()
	root := doc.CreateElement("p:sld")
	root.CreateAttr("xmlns:a", nsA)
	root.CreateAttr("xmlns:r", nsR)
	root.CreateAttr("xmlns:p", nsP)

	cSld := root.CreateElement("p:cSld")
	tree := emptySpTree(cSld)
	root.CreateElement("p:clrMapOvr").CreateElement("a:masterClrMapping")

	return &slide{
		num:     num,
		theme:   theme,
		doc:     doc,
		spTree:  tree,
		rels:    []relationship{{id: "rId1", typ: relSlideLayout, target: "../slideLayouts/slideLayout1.xml"}},
		shapeID: 1,
	}
}

func (s *slide) addRel(typ, target string) string {
	id := fmt.Sprintf("rId%d", len(s.rels)+1)
	s.rels = append(s.rels, relationship{id: id, typ: typ, target: target})
	return id
}

func (s *slide) nextShapeID() int {
	s.shapeID++
	return s.shapeID
}

func (s *slide) addNote(lines ...string) {
	s.notes = append(s.notes, lines...)
}

func xfrm(parent *etree.Element, r Rect) {
	x := parent.CreateElement("a:xfrm")
	off := x.CreateElement("a:off")
	off.CreateAttr("x", fmt.Sprintf("%d", r.X))
	off.CreateAttr("y", fmt.Sprintf("%d", r.Y))
	ext := x.CreateElement("a:ext")
	ext.CreateAttr("cx", fmt.Sprintf("%d", r.W))
	ext.CreateAttr("cy", fmt.Sprintf("%d", r.H))
}

// addShape appends a preset-geometry shape and returns its sp element so the
// caller can attach a text body.
func (s *slide) addShape(r Rect, opts shapeOpts) *etree.Element {
	sp := s.spTree.CreateElement("p:sp")

	nv := sp.CreateElement("p:nvSpPr")
	cnv := nv.CreateElement("p:cNvPr")
	cnv.CreateAttr("id", fmt.Sprintf("%d", s.nextShapeID()))
	name := opts.name
	if name == "" {
		name = fmt.Sprintf("Shape %d", s.shapeID)
	}
	cnv.CreateAttr("name", name)
	if opts.linkTo > 0 {
		relID := s.addRel(relSlide, fmt.Sprintf("slide%d.xml", opts.linkTo))
		link := cnv.CreateElement("a:hlinkClick")
		link.CreateAttr("r:id", relID)
		link.CreateAttr("action", hlinkSlideJump)
	}
	nv.CreateElement("p:cNvSpPr")
	nv.CreateElement("p:nvPr")

	spPr := sp.CreateElement("p:spPr")
	xfrm(spPr, r)
	geom := opts.geom
	if geom == "" {
		geom = "rect"
	}
	prst := spPr.CreateElement("a:prstGeom")
	prst.CreateAttr("prst", geom)
	prst.CreateElement("a:avLst")
	if opts.fill != "" {
		spPr.CreateElement("a:solidFill").CreateElement("a:srgbClr").CreateAttr("val", opts.fill)
	} else {
		spPr.CreateElement("a:noFill")
	}
	if opts.line != "" {
		w := opts.lineW
		if w == 0 {
			w = 12700
		}
		ln := spPr.CreateElement("a:ln")
		ln.CreateAttr("w", fmt.Sprintf("%d", w))
		ln.CreateElement("a:solidFill").CreateElement("a:srgbClr").CreateAttr("val", opts.line)
	}
	if opts.shadow {
		sh := spPr.CreateElement("a:effectLst").CreateElement("a:outerShdw")
		sh.CreateAttr("blurRad", "50800")
		sh.CreateAttr("dist", "25400")
		sh.CreateAttr("dir", "5400000")
		sh.CreateAttr("rotWithShape", "0")
		c := sh.CreateElement("a:srgbClr")
		c.CreateAttr("val", "000000")
		c.CreateElement("a:alpha").CreateAttr("val", "25000")
	}
	return sp
}

// setText attaches a text body to a shape. anchor is the vertical anchor:
// "t", "ctr" or "b".
func (s *slide) setText(sp *etree.Element, anchor string, paras []para) {
	body := sp.CreateElement("p:txBody")
	bodyPr := body.CreateElement("a:bodyPr")
	bodyPr.CreateAttr("wrap", "square")
	if anchor != "" {
		bodyPr.CreateAttr("anchor", anchor)
	}
	bodyPr.CreateElement("a:normAutofit")
	body.CreateElement("a:lstStyle")

	for _, p := range paras {
		pe := body.CreateElement("a:p")
		pPr := pe.CreateElement("a:pPr")
		if p.align != "" {
			pPr.CreateAttr("algn", p.align)
		}
		if p.space > 0 {
			pPr.CreateElement("a:spcBef").CreateElement("a:spcPts").
				CreateAttr("val", fmt.Sprintf("%d", p.space*100))
		}
		if p.bullet {
			pPr.CreateElement("a:buChar").CreateAttr("char", "•")
		} else {
			pPr.CreateElement("a:buNone")
		}
		for _, r := range p.runs {
			re := pe.CreateElement("a:r")
			rPr := re.CreateElement("a:rPr")
			rPr.CreateAttr("lang", "es-ES")
			if r.size > 0 {
				rPr.CreateAttr("sz", fmt.Sprintf("%d", r.size*100))
			}
			if r.bold {
				rPr.CreateAttr("b", "1")
			}
			if r.italic {
				rPr.CreateAttr("i", "1")
			}
			rPr.CreateAttr("dirty", "0")
			color := r.color
			if color == "" {
				color = s.theme.BodyColor
			}
			rPr.CreateElement("a:solidFill").CreateElement("a:srgbClr").CreateAttr("val", color)
			font := r.font
			if font == "" {
				font = s.theme.BodyFont
			}
			rPr.CreateElement("a:latin").CreateAttr("typeface", font)
			re.CreateElement("a:t").SetText(r.text)
		}
		if len(p.runs) == 0 {
			pe.CreateElement("a:endParaRPr").CreateAttr("lang", "es-ES")
		}
	}
}

// addTextBox is the common case: an invisible shape holding text.
func (s *slide) addTextBox(r Rect, anchor string, paras []para) {
	sp := s.addShape(r, shapeOpts{name: "TextBox"})
	s.setText(sp, anchor, paras)
}

// addImage places an already registered media part on the slide.
func (s *slide) addImage(mediaTarget string, r Rect) {
	relID := s.addRel(relImage, mediaTarget)

	pic := s.spTree.CreateElement("p:pic")
	nv := pic.CreateElement("p:nvPicPr")
	cnv := nv.CreateElement("p:cNvPr")
	cnv.CreateAttr("id", fmt.Sprintf("%d", s.nextShapeID()))
	cnv.CreateAttr("name", fmt.Sprintf("Picture %d", s.shapeID))
	nv.CreateElement("p:cNvPicPr").CreateElement("a:picLocks").CreateAttr("noChangeAspect", "1")
	nv.CreateElement("p:nvPr")

	blipFill := pic.CreateElement("p:blipFill")
	blipFill.CreateElement("a:blip").CreateAttr("r:embed", relID)
	stretch := blipFill.CreateElement("a:stretch")
	stretch.CreateElement("a:fillRect")

	spPr := pic.CreateElement("p:spPr")
	xfrm(spPr, r)
	prst := spPr.CreateElement("a:prstGeom")
	prst.CreateAttr("prst", "rect")
	prst.CreateElement("a:avLst")
}

// addConnector draws a straight line between two points.
func (s *slide) addConnector(x1, y1, x2, y2 int64, color string, width int64) {
	cxn := s.spTree.CreateElement("p:cxnSp")
	nv := cxn.CreateElement("p:nvCxnSpPr")
	cnv := nv.CreateElement("p:cNvPr")
	cnv.CreateAttr("id", fmt.Sprintf("%d", s.nextShapeID()))
	cnv.CreateAttr("name", fmt.Sprintf("Connector %d", s.shapeID))
	nv.CreateElement("p:cNvCxnSpPr")
	nv.CreateElement("p:nvPr")

	spPr := cxn.CreateElement("p:spPr")
	x := spPr.CreateElement("a:xfrm")
	if x2 < x1 {
		x.CreateAttr("flipH", "1")
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		x.CreateAttr("flipV", "1")
		y1, y2 = y2, y1
	}
	off := x.CreateElement("a:off")
	off.CreateAttr("x", fmt.Sprintf("%d", x1))
	off.CreateAttr("y", fmt.Sprintf("%d", y1))
	ext := x.CreateElement("a:ext")
	ext.CreateAttr("cx", fmt.Sprintf("%d", x2-x1))
	ext.CreateAttr("cy", fmt.Sprintf("%d", y2-y1))

	prst := spPr.CreateElement("a:prstGeom")
	prst.CreateAttr("prst", "line")
	prst.CreateElement("a:avLst")
	ln := spPr.CreateElement("a:ln")
	ln.CreateAttr("w", fmt.Sprintf("%d", width))
	ln.CreateElement("a:solidFill").CreateElement("a:srgbClr").CreateAttr("val", color)
}

// addButton renders a rounded rectangle that jumps to target on click.
func (s *slide) addButton(r Rect, label string, fill string, target int) {
	sp := s.addShape(r, shapeOpts{
		name:   "Button",
		geom:   "roundRect",
		fill:   fill,
		linkTo: target,
		shadow: true,
	})
	s.setText(sp, "ctr", []para{{
		align: "ctr",
		runs:  []run{{text: label, size: 14, bold: true, color: s.theme.Surface}},
	}})
}

// addTitle renders the standard slide header band.
func (s *slide) addTitle(text string) {
	s.addTextBox(Rect{X: 685800, Y: 274638, W: SlideWidth - 2*685800, H: 720000}, "ctr", []para{{
		runs: []run{{text: text, size: 28, bold: true, color: s.theme.TitleColor, font: s.theme.TitleFont}},
	}})
}
