// Package pptx renders a planned storyboard into a PowerPoint package: one
// OOXML part per slide, relationship-based internal hyperlinks and speaker
// notes carrying everything the canvas had to truncate. All slide numbers
// come from the precomputed plan - nothing here invents a link target.
package pptx

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	fixzip "github.com/hidez8891/zip"
	"go.uber.org/zap"

	"sbc/assets"
	"sbc/config"
	"sbc/course"
	"sbc/css"
	"sbc/spec"
	"sbc/storyboard"
)

type mediaPart struct {
	name string // media/imageN.ext
	data []byte
}

type deck struct {
	board    *storyboard.Board
	resolved []*assets.Resolved // indexed by unit, entries may be nil
	theme    *css.Theme
	log      *zap.Logger

	slides      []*slide
	media       []mediaPart
	mediaByPath map[string]string
	hasPNG      bool
	hasJPG      bool
}

// Generate renders the board into a .pptx file at outputPath. resolved holds
// one asset per unit in unit order, nil entries mean the unit renders without
// an image.
func Generate(ctx context.Context, board *storyboard.Board, resolved []*assets.Resolved, outputPath string, cfg *config.DocumentConfig, theme *css.Theme, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(resolved) != len(board.Units) {
		return fmt.Errorf("asset list does not match plan: %d assets for %d units", len(resolved), len(board.Units))
	}

	log.Info("Generating deck",
		zap.String("output", outputPath),
		zap.Int("units", board.Plan.Units()),
		zap.Int("slides", board.Plan.Total()))

	d := &deck{
		board:       board,
		resolved:    resolved,
		theme:       theme,
		log:         log,
		mediaByPath: make(map[string]string),
	}

	d.buildCover()
	d.buildMenu()
	for i := range board.Units {
		d.buildUnit(i)
	}
	for i := range board.Units {
		for j := 0; j < board.Plan.PopupCount(i); j++ {
			d.buildPopup(i, j)
		}
	}
	if len(d.slides) != board.Plan.Total() {
		panic(fmt.Sprintf("slide plan violation: built %d slides, planned %d", len(d.slides), board.Plan.Total()))
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	tmpName := filepath.Join(filepath.Dir(outputPath), "."+uuid.New().String()+".pptx")
	if err := d.writeArchive(tmpName); err != nil {
		return err
	}
	defer os.Remove(tmpName)

	if cfg.FixZip {
		return copyZipWithoutDataDescriptors(tmpName, outputPath)
	}
	return copyFile(tmpName, outputPath)
}

func (d *deck) newSlide() *slide {
	s := newSlide(len(d.slides)+1, d.theme)
	d.slides = append(d.slides, s)
	return s
}

// registerMedia embeds the prepared asset file once and returns its
// slide-relative target. Identical source paths share one media part.
func (d *deck) registerMedia(path string) string {
	if target, ok := d.mediaByPath[path]; ok {
		return target
	}
	data, err := os.ReadFile(path)
	if err != nil {
		d.log.Warn("Unable to read cached asset, rendering without image", zap.String("path", path), zap.Error(err))
		return ""
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "png":
		d.hasPNG = true
	case "jpg", "jpeg":
		ext = "jpg"
		d.hasJPG = true
	default:
		d.log.Warn("Unsupported asset format, rendering without image", zap.String("path", path))
		return ""
	}
	name := fmt.Sprintf("media/image%d.%s", len(d.media)+1, ext)
	d.media = append(d.media, mediaPart{name: name, data: data})
	target := "../" + name
	d.mediaByPath[path] = target
	return target
}

func (d *deck) buildCover() {
	s := d.newSlide()
	c := d.board.Course

	title := c.Title
	if title == "" {
		title = c.Name
	}
	s.addTextBox(Rect{X: marginX, Y: 1828800, W: SlideWidth - 2*marginX, H: 1371600}, "b", []para{{
		align: "ctr",
		runs: []run{{
			text: course.Truncate(title, 2*spec.MaxTitleLen),
			size: 44, bold: true, color: d.theme.TitleColor, font: d.theme.TitleFont,
		}},
	}})

	if c.Description != "" {
		s.addTextBox(Rect{X: marginX + 914400, Y: 3383280, W: SlideWidth - 2*(marginX+914400), H: 914400}, "t", []para{{
			align: "ctr",
			runs:  []run{{text: course.Truncate(c.Description, spec.MaxPopupBodyLen), size: 18}},
		}})
	}

	var meta []string
	if c.Audience != "" {
		meta = append(meta, c.Audience)
	}
	if c.Duration > 0 {
		meta = append(meta, fmt.Sprintf("%d min", c.Duration))
	}
	if len(meta) > 0 {
		s.addTextBox(Rect{X: marginX, Y: 4389120, W: SlideWidth - 2*marginX, H: 457200}, "t", []para{{
			align: "ctr",
			runs:  []run{{text: strings.Join(meta, "  ·  "), size: 14, italic: true}},
		}})
	}

	s.addButton(Rect{X: (SlideWidth - 2286000) / 2, Y: 5303520, W: 2286000, H: 548640},
		"Comenzar", d.theme.Accent, d.board.Plan.Menu)

	s.addNote(coverNotes(c)...)
}

func (d *deck) buildMenu() {
	s := d.newSlide()
	s.addTitle("Contenido")

	n := len(d.board.Units)
	if n == 0 {
		return
	}
	region := contentRect()
	cols := 1
	if n > 4 {
		cols = 2
	}
	rows := (n + cols - 1) / cols
	const gap = 182880
	btnW := (region.W - int64(cols-1)*gap) / int64(cols)
	btnH := (region.H - int64(rows-1)*gap) / int64(rows)
	if btnH > 731520 {
		btnH = 731520
	}
	accents := d.theme.Accents()

	for i, ub := range d.board.Units {
		col, row := i%cols, i/cols
		r := Rect{
			X: region.X + int64(col)*(btnW+gap),
			Y: region.Y + int64(row)*(btnH+gap),
			W: btnW, H: btnH,
		}
		label := fmt.Sprintf("%d. %s", i+1, course.Truncate(ub.Unit.Title, spec.MaxTitleLen))
		s.addButton(r, label, accents[i%len(accents)], d.board.Plan.UnitSlide(i))
	}

	for i, ub := range d.board.Units {
		s.addNote(fmt.Sprintf("Unidad %d (%s) -> diapositiva %d", i+1, ub.Unit.Title, d.board.Plan.UnitSlide(i)))
	}
}

func (d *deck) buildUnit(unit int) {
	s := d.newSlide()
	ub := &d.board.Units[unit]
	plan := d.board.Plan

	s.addTitle(course.Truncate(ub.Unit.Title, spec.MaxTitleLen))

	var media string
	if res := d.resolved[unit]; res != nil {
		media = d.registerMedia(res.Path)
	}
	d.renderContent(s, ub, media)

	// popup buttons row
	if nb := len(ub.Visual.Buttons); nb > 0 {
		const gap = 182880
		btnW := (SlideWidth - 2*marginX - 3*navW - int64(nb)*gap) / int64(nb)
		for j, label := range ub.Visual.Buttons {
			r := Rect{X: marginX + int64(j)*(btnW+gap), Y: buttonRowY, W: btnW, H: buttonH}
			s.addButton(r, label, d.theme.Accent2, plan.PopupSlide(unit, j))
		}
	}

	// navigation corner
	navY := int64(buttonRowY)
	s.addButton(Rect{X: SlideWidth - marginX - 3*navW, Y: navY, W: navW - 45720, H: buttonH}, "‹", d.theme.Accent, plan.PrevTarget(unit))
	s.addButton(Rect{X: SlideWidth - marginX - 2*navW, Y: navY, W: navW - 45720, H: buttonH}, "Menú", d.theme.Accent, plan.Menu)
	s.addButton(Rect{X: SlideWidth - marginX - navW, Y: navY, W: navW - 45720, H: buttonH}, "›", d.theme.Accent, plan.NextTarget(unit))

	var attribution []string
	if res := d.resolved[unit]; res != nil {
		attribution = res.Attribution
	}
	s.addNote(unitNotes(ub, plan, unit, attribution)...)
}

func (d *deck) buildPopup(unit, popup int) {
	s := d.newSlide()
	ub := &d.board.Units[unit]
	p := ub.Visual.Popups[popup]

	s.addTitle(course.Truncate(ub.Unit.Title, spec.MaxTitleLen))

	card := Rect{X: marginX + 914400, Y: contentY + 228600, W: SlideWidth - 2*(marginX+914400), H: contentH - 457200}
	sp := s.addShape(card, shapeOpts{name: "Popup", geom: "roundRect", fill: d.theme.Surface, line: d.theme.Accent2, lineW: 28575, shadow: true})
	var paras []para
	if p.Title != "" {
		paras = append(paras, para{align: "ctr", runs: []run{{
			text: p.Title, size: 22, bold: true, color: d.theme.TitleColor, font: d.theme.TitleFont,
		}}})
	}
	paras = append(paras, para{align: "ctr", space: 12, runs: []run{{text: p.Body, size: 16}}})
	s.setText(sp, "ctr", paras)

	s.addButton(Rect{X: (SlideWidth - 1828800) / 2, Y: buttonRowY, W: 1828800, H: buttonH},
		"Volver", d.theme.Accent3, d.board.Plan.UnitSlide(unit))

	s.addNote(popupNotes(&p)...)
}

// writeArchive lays the package out into a zip file. Parts are written in
// reference order so readers that stream see the manifest first.
func (d *deck) writeArchive(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	defer zw.Close()

	now := time.Now()
	storeDoc := func(name string, doc *etree.Document) error {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: now})
		if err != nil {
			return fmt.Errorf("unable to create archive entry %s: %w", name, err)
		}
		doc.Indent(1)
		if _, err := doc.WriteTo(w); err != nil {
			return fmt.Errorf("unable to write archive entry %s: %w", name, err)
		}
		return nil
	}

	count := len(d.slides)
	if err := storeDoc("[Content_Types].xml", contentTypesDoc(count, d.hasPNG, d.hasJPG)); err != nil {
		return err
	}
	if err := storeDoc("_rels/.rels", relationshipsDoc([]relationship{
		{id: "rId1", typ: relOfficeDocument, target: "ppt/presentation.xml"},
		{id: "rId2", typ: relCoreProps, target: "docProps/core.xml"},
		{id: "rId3", typ: relExtendedProps, target: "docProps/app.xml"},
	})); err != nil {
		return err
	}

	title := d.board.Course.Title
	if title == "" {
		title = d.board.Course.Name
	}
	if err := storeDoc("docProps/core.xml", corePropsDoc(title, uuid.New().String(), now)); err != nil {
		return err
	}
	if err := storeDoc("docProps/app.xml", appPropsDoc(count)); err != nil {
		return err
	}

	presDoc, presRels := presentationDoc(count)
	if err := storeDoc("ppt/presentation.xml", presDoc); err != nil {
		return err
	}
	if err := storeDoc("ppt/_rels/presentation.xml.rels", relationshipsDoc(presRels)); err != nil {
		return err
	}

	masterDoc, masterRels := slideMasterDoc(d.theme)
	if err := storeDoc("ppt/slideMasters/slideMaster1.xml", masterDoc); err != nil {
		return err
	}
	if err := storeDoc("ppt/slideMasters/_rels/slideMaster1.xml.rels", relationshipsDoc(masterRels)); err != nil {
		return err
	}

	layoutDoc, layoutRels := slideLayoutDoc()
	if err := storeDoc("ppt/slideLayouts/slideLayout1.xml", layoutDoc); err != nil {
		return err
	}
	if err := storeDoc("ppt/slideLayouts/_rels/slideLayout1.xml.rels", relationshipsDoc(layoutRels)); err != nil {
		return err
	}

	notesMaster, notesMasterRels := notesMasterDoc(d.theme)
	if err := storeDoc("ppt/notesMasters/notesMaster1.xml", notesMaster); err != nil {
		return err
	}
	if err := storeDoc("ppt/notesMasters/_rels/notesMaster1.xml.rels", relationshipsDoc(notesMasterRels)); err != nil {
		return err
	}

	if err := storeDoc("ppt/theme/theme1.xml", themeDoc(d.theme)); err != nil {
		return err
	}

	for _, s := range d.slides {
		// the notes part rel is added here so slide rel ids stay stable
		// during building
		s.addRel(relNotesSlide, fmt.Sprintf("../notesSlides/notesSlide%d.xml", s.num))

		if err := storeDoc(fmt.Sprintf("ppt/slides/slide%d.xml", s.num), s.doc); err != nil {
			return err
		}
		if err := storeDoc(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", s.num), relationshipsDoc(s.rels)); err != nil {
			return err
		}
		if err := storeDoc(fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", s.num), notesSlideDoc(s)); err != nil {
			return err
		}
		if err := storeDoc(fmt.Sprintf("ppt/notesSlides/_rels/notesSlide%d.xml.rels", s.num), relationshipsDoc(notesSlideRels(s))); err != nil {
			return err
		}
	}

	for _, m := range d.media {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: "ppt/" + m.name, Method: zip.Store, Modified: now})
		if err != nil {
			return fmt.Errorf("unable to create media entry %s: %w", m.name, err)
		}
		if _, err := w.Write(m.data); err != nil {
			return fmt.Errorf("unable to write media entry %s: %w", m.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("unable to finalize archive: %w", err)
	}
	return f.Close()
}

// Some LMS importers choke on streamed zip entries with data descriptors, the
// rewrite gives every entry a fully populated local header.
func copyZipWithoutDataDescriptors(from, to string) error {
	out, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("unable to create target file (%s): %w", to, err)
	}
	defer out.Close()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return fmt.Errorf("unable to read archive file (%s): %w", from, err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)
	defer w.Close()

	for _, file := range r.File {
		file.Flags &= ^fixzip.FlagDataDescriptor

		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to write target file (%s): %w", to, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer sourceFile.Close()

	destinationFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer destinationFile.Close()

	if _, err = io.Copy(destinationFile, sourceFile); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	if err = destinationFile.Close(); err != nil {
		return fmt.Errorf("failed to close destination file: %w", err)
	}
	return nil
}
