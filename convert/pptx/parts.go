package pptx

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"sbc/css"
	"sbc/misc"
)

// OOXML namespaces and relationship types used by the container.
const (
	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"

	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relNotesSlide     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide"
	relNotesMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster"
	relTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relImage          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
)

// Slide canvas in EMU, 16:9.
const (
	SlideWidth  int64 = 12192000
	SlideHeight int64 = 6858000

	NotesWidth  int64 = 6858000
	NotesHeight int64 = 9144000
)

// action URI for internal slide jumps
const hlinkSlideJump = "ppaction://hlinksldjump"

func newXMLDoc() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return doc
}

// relationship is one entry of a part's .rels file.
type relationship struct {
	id     string
	typ    string
	target string
}

func relationshipsDoc(rels []relationship) *etree.Document {
	doc := newXMLDoc()
	root := doc.CreateElement("Relationships")
	root.CreateAttr("xmlns", "http://schemas.openxmlformats.org/package/2006/relationships")
	for _, r := range rels {
		e := root.CreateElement("Relationship")
		e.CreateAttr("Id", r.id)
		e.CreateAttr("Type", r.typ)
		e.CreateAttr("Target", r.target)
	}
	return doc
}

// contentTypesDoc lists every part of the package. hasPNG/hasJPG track which
// media defaults are needed.
func contentTypesDoc(slideCount int, hasPNG, hasJPG bool) *etree.Document {
	doc := newXMLDoc()
	root := doc.CreateElement("Types")
	root.CreateAttr("xmlns", "http://schemas.openxmlformats.org/package/2006/content-types")

	def := func(ext, ct string) {
		e := root.CreateElement("Default")
		e.CreateAttr("Extension", ext)
		e.CreateAttr("ContentType", ct)
	}
	override := func(part, ct string) {
		e := root.CreateElement("Override")
		e.CreateAttr("PartName", part)
		e.CreateAttr("ContentType", ct)
	}

	def("rels", "application/vnd.openxmlformats-package.relationships+xml")
	def("xml", "application/xml")
	if hasPNG {
		def("png", "image/png")
	}
	if hasJPG {
		def("jpg", "image/jpeg")
	}

	override("/ppt/presentation.xml", "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml")
	override("/ppt/slideMasters/slideMaster1.xml", "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml")
	override("/ppt/slideLayouts/slideLayout1.xml", "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml")
	override("/ppt/notesMasters/notesMaster1.xml", "application/vnd.openxmlformats-officedocument.presentationml.notesMaster+xml")
	override("/ppt/theme/theme1.xml", "application/vnd.openxmlformats-officedocument.theme+xml")
	for i := 1; i <= slideCount; i++ {
		override(fmt.Sprintf("/ppt/slides/slide%d.xml", i), "application/vnd.openxmlformats-officedocument.presentationml.slide+xml")
		override(fmt.Sprintf("/ppt/notesSlides/notesSlide%d.xml", i), "application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml")
	}
	override("/docProps/core.xml", "application/vnd.openxmlformats-package.core-properties+xml")
	override("/docProps/app.xml", "application/vnd.openxmlformats-officedocument.extended-properties+xml")
	return doc
}

func corePropsDoc(title, identifier string, now time.Time) *etree.Document {
	doc := newXMLDoc()
	root := doc.CreateElement("cp:coreProperties")
	root.CreateAttr("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties")
	root.CreateAttr("xmlns:dc", "http://purl.org/dc/elements/1.1/")
	root.CreateAttr("xmlns:dcterms", "http://purl.org/dc/terms/")
	root.CreateAttr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")

	root.CreateElement("dc:title").SetText(title)
	root.CreateElement("dc:creator").SetText(misc.GetAppName())
	root.CreateElement("dc:identifier").SetText(identifier)
	created := root.CreateElement("dcterms:created")
	created.CreateAttr("xsi:type", "dcterms:W3CDTF")
	created.SetText(now.UTC().Format(time.RFC3339))
	return doc
}

func appPropsDoc(slideCount int) *etree.Document {
	doc := newXMLDoc()
	root := doc.CreateElement("Properties")
	root.CreateAttr("xmlns", "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties")
	root.CreateElement("Application").SetText(misc.GetAppName() + " " + misc.GetVersion())
	root.CreateElement("Slides").SetText(fmt.Sprintf("%d", slideCount))
	return doc
}

// presentationDoc references masters and every slide in deck order. Slide
// relationship ids start after the two masters.
func presentationDoc(slideCount int) (*etree.Document, []relationship) {
	rels := []relationship{
		{id: "rId1", typ: relSlideMaster, target: "slideMasters/slideMaster1.xml"},
		{id: "rId2", typ: relNotesMaster, target: "notesMasters/notesMaster1.xml"},
	}

	doc := newXMLDoc()
	root := doc.CreateElement("p:presentation")
	root.CreateAttr("xmlns:a", nsA)
	root.CreateAttr("xmlns:r", nsR)
	root.CreateAttr("xmlns:p", nsP)

	masters := root.CreateElement("p:sldMasterIdLst")
	m := masters.CreateElement("p:sldMasterId")
	m.CreateAttr("id", "2147483648")
	m.CreateAttr("r:id", "rId1")

	notes := root.CreateElement("p:notesMasterIdLst")
	notes.CreateElement("p:notesMasterId").CreateAttr("r:id", "rId2")

	slides := root.CreateElement("p:sldIdLst")
	for i := 1; i <= slideCount; i++ {
		relID := fmt.Sprintf("rId%d", 2+i)
		rels = append(rels, relationship{id: relID, typ: relSlide, target: fmt.Sprintf("slides/slide%d.xml", i)})
		s := slides.CreateElement("p:sldId")
		s.CreateAttr("id", fmt.Sprintf("%d", 256+i))
		s.CreateAttr("r:id", relID)
	}

	size := root.CreateElement("p:sldSz")
	size.CreateAttr("cx", fmt.Sprintf("%d", SlideWidth))
	size.CreateAttr("cy", fmt.Sprintf("%d", SlideHeight))

	nsz := root.CreateElement("p:notesSz")
	nsz.CreateAttr("cx", fmt.Sprintf("%d", NotesWidth))
	nsz.CreateAttr("cy", fmt.Sprintf("%d", NotesHeight))
	return doc, rels
}

// emptySpTree creates the mandatory shape-tree boilerplate of any cSld.
func emptySpTree(parent *etree.Element) *etree.Element {
	tree := parent.CreateElement("p:spTree")

	nv := tree.CreateElement("p:nvGrpSpPr")
	cnv := nv.CreateElement("p:cNvPr")
	cnv.CreateAttr("id", "1")
	cnv.CreateAttr("name", "")
	nv.CreateElement("p:cNvGrpSpPr")
	nv.CreateElement("p:nvPr")

	grp := tree.CreateElement("p:grpSpPr")
	xfrm := grp.CreateElement("a:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", "0")
	off.CreateAttr("y", "0")
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", "0")
	ext.CreateAttr("cy", "0")
	choff := xfrm.CreateElement("a:chOff")
	choff.CreateAttr("x", "0")
	choff.CreateAttr("y", "0")
	chext := xfrm.CreateElement("a:chExt")
	chext.CreateAttr("cx", "0")
	chext.CreateAttr("cy", "0")
	return tree
}

func createClrMap(parent *etree.Element, tag string) {
	m := parent.CreateElement(tag)
	m.CreateAttr("bg1", "lt1")
	m.CreateAttr("tx1", "dk1")
	m.CreateAttr("bg2", "lt2")
	m.CreateAttr("tx2", "dk2")
	for i := 1; i <= 6; i++ {
		m.CreateAttr(fmt.Sprintf("accent%d", i), fmt.Sprintf("accent%d", i))
	}
	m.CreateAttr("hlink", "hlink")
	m.CreateAttr("folHlink", "folHlink")
}

func slideMasterDoc(theme *css.Theme) (*etree.Document, []relationship) {
	doc := newXMLDoc()
	root := doc.CreateElement("p:sldMaster")
	root.CreateAttr("xmlns:a", nsA)
	root.CreateAttr("xmlns:r", nsR)
	root.CreateAttr("xmlns:p", nsP)

	cSld := root.CreateElement("p:cSld")
	bg := cSld.CreateElement("p:bg").CreateElement("p:bgPr")
	bg.CreateElement("a:solidFill").CreateElement("a:srgbClr").CreateAttr("val", theme.Background)
	bg.CreateElement("a:effectLst")
	emptySpTree(cSld)

	createClrMap(root, "p:clrMap")

	layouts := root.CreateElement("p:sldLayoutIdLst")
	l := layouts.CreateElement("p:sldLayoutId")
	l.CreateAttr("id", "2147483649")
	l.CreateAttr("r:id", "rId1")

	rels := []relationship{
		{id: "rId1", typ: relSlideLayout, target: "../slideLayouts/slideLayout1.xml"},
		{id: "rId2", typ: relTheme, target: "../theme/theme1.xml"},
	}
	return doc, rels
}

func slideLayoutDoc() (*etree.Document, []relationship) {
	doc := newXMLDoc()
	root := doc.CreateElement("p:sldLayout")
	root.CreateAttr("xmlns:a", nsA)
	root.CreateAttr("xmlns:r", nsR)
	root.CreateAttr("xmlns:p", nsP)
	root.CreateAttr("type", "blank")

	cSld := root.CreateElement("p:cSld")
	emptySpTree(cSld)
	root.CreateElement("p:clrMapOvr").CreateElement("a:masterClrMapping")

	rels := []relationship{{id: "rId1", typ: relSlideMaster, target: "../slideMasters/slideMaster1.xml"}}
	return doc, rels
}

func notesMasterDoc(theme *css.Theme) (*etree.Document, []relationship) {
	doc := newXMLDoc()
	root := doc.CreateElement("p:notesMaster")
	root.CreateAttr("xmlns:a", nsA)
	root.CreateAttr("xmlns:r", nsR)
	root.CreateAttr("xmlns:p", nsP)

	cSld := root.CreateElement("p:cSld")
	bg := cSld.CreateElement("p:bg").CreateElement("p:bgPr")
	bg.CreateElement("a:solidFill").CreateElement("a:srgbClr").CreateAttr("val", "FFFFFF")
	bg.CreateElement("a:effectLst")
	emptySpTree(cSld)

	createClrMap(root, "p:clrMap")

	rels := []relationship{{id: "rId1", typ: relTheme, target: "../theme/theme1.xml"}}
	return doc, rels
}

// themeDoc maps deck theme onto the drawingml color and font scheme. The
// format scheme is mandatory boilerplate - three entries per style list.
func themeDoc(theme *css.Theme) *etree.Document {
	doc := newXMLDoc()
	root := doc.CreateElement("a:theme")
	root.CreateAttr("xmlns:a", nsA)
	root.CreateAttr("name", "Storyboard")

	elems := root.CreateElement("a:themeElements")

	clr := elems.CreateElement("a:clrScheme")
	clr.CreateAttr("name", "Storyboard")
	srgb := func(tag, val string) {
		clr.CreateElement(tag).CreateElement("a:srgbClr").CreateAttr("val", val)
	}
	srgb("a:dk1", theme.TitleColor)
	srgb("a:lt1", theme.Surface)
	srgb("a:dk2", theme.BodyColor)
	srgb("a:lt2", theme.Background)
	accents := theme.Accents()
	for i := 0; i < 6; i++ {
		srgb(fmt.Sprintf("a:accent%d", i+1), accents[i%len(accents)])
	}
	srgb("a:hlink", theme.Accent)
	srgb("a:folHlink", theme.Accent3)

	fonts := elems.CreateElement("a:fontScheme")
	fonts.CreateAttr("name", "Storyboard")
	for tag, face := range map[string]string{"a:majorFont": theme.TitleFont, "a:minorFont": theme.BodyFont} {
		f := fonts.CreateElement(tag)
		latin := f.CreateElement("a:latin")
		latin.CreateAttr("typeface", face)
		f.CreateElement("a:ea").CreateAttr("typeface", "")
		f.CreateElement("a:cs").CreateAttr("typeface", "")
	}

	fmtScheme := elems.CreateElement("a:fmtScheme")
	fmtScheme.CreateAttr("name", "Storyboard")

	fills := fmtScheme.CreateElement("a:fillStyleLst")
	for i := 0; i < 3; i++ {
		fills.CreateElement("a:solidFill").CreateElement("a:schemeClr").CreateAttr("val", "phClr")
	}
	lines := fmtScheme.CreateElement("a:lnStyleLst")
	for _, w := range []string{"6350", "12700", "19050"} {
		ln := lines.CreateElement("a:ln")
		ln.CreateAttr("w", w)
		ln.CreateElement("a:solidFill").CreateElement("a:schemeClr").CreateAttr("val", "phClr")
	}
	effects := fmtScheme.CreateElement("a:effectStyleLst")
	for i := 0; i < 3; i++ {
		effects.CreateElement("a:effectStyle").CreateElement("a:effectLst")
	}
	bgFills := fmtScheme.CreateElement("a:bgFillStyleLst")
	for i := 0; i < 3; i++ {
		bgFills.CreateElement("a:solidFill").CreateElement("a:schemeClr").CreateAttr("val", "phClr")
	}

	return doc
}
