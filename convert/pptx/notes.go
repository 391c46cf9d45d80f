package pptx

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"sbc/course"
	"sbc/spec"
	"sbc/storyboard"
)

// Speaker notes are the durable home of everything the canvas truncates:
// full unit text, audio scripts, construction notes and image attribution.

func notesSlideDoc(s *slide) *etree.Document {
	doc := newXMLDoc()
	root := doc.CreateElement("p:notes")
	root.CreateAttr("xmlns:a", nsA)
	root.CreateAttr("xmlns:r", nsR)
	root.CreateAttr("xmlns:p", nsP)

	cSld := root.CreateElement("p:cSld")
	tree := emptySpTree(cSld)
	root.CreateElement("p:clrMapOvr").CreateElement("a:masterClrMapping")

	sp := tree.CreateElement("p:sp")
	nv := sp.CreateElement("p:nvSpPr")
	cnv := nv.CreateElement("p:cNvPr")
	cnv.CreateAttr("id", "2")
	cnv.CreateAttr("name", "Notes Placeholder")
	nv.CreateElement("p:cNvSpPr")
	ph := nv.CreateElement("p:nvPr").CreateElement("p:ph")
	ph.CreateAttr("type", "body")
	ph.CreateAttr("idx", "1")
	sp.CreateElement("p:spPr")

	body := sp.CreateElement("p:txBody")
	body.CreateElement("a:bodyPr")
	body.CreateElement("a:lstStyle")
	lines := s.notes
	if len(lines) == 0 {
		lines = []string{""}
	}
	for _, line := range lines {
		p := body.CreateElement("a:p")
		if line == "" {
			p.CreateElement("a:endParaRPr").CreateAttr("lang", "es-ES")
			continue
		}
		r := p.CreateElement("a:r")
		r.CreateElement("a:rPr").CreateAttr("lang", "es-ES")
		r.CreateElement("a:t").SetText(line)
	}
	return doc
}

func notesSlideRels(s *slide) []relationship {
	return []relationship{
		{id: "rId1", typ: relSlide, target: fmt.Sprintf("../slides/slide%d.xml", s.num)},
		{id: "rId2", typ: relNotesMaster, target: "../notesMasters/notesMaster1.xml"},
	}
}

func coverNotes(c *course.Course) []string {
	var out []string
	if c.Description != "" {
		out = append(out, c.Description, "")
	}
	if len(c.Outcomes) > 0 {
		out = append(out, "Resultados de aprendizaje:")
		for _, o := range c.Outcomes {
			out = append(out, fmt.Sprintf("- %s: %s", o.ID, o.Text))
		}
	}
	return out
}

func unitNotes(ub *storyboard.UnitBoard, plan *storyboard.Plan, unit int, attribution []string) []string {
	u := ub.Unit
	var out []string

	if u.Purpose != "" {
		out = append(out, "Propósito: "+u.Purpose)
	}
	out = append(out, u.Content...)

	if len(u.Activities) > 0 {
		out = append(out, "", "Actividades:")
		for _, a := range u.Activities {
			out = append(out, "- "+a)
		}
	}
	if len(u.Assessments) > 0 {
		out = append(out, "", "Evaluación:")
		for _, a := range u.Assessments {
			out = append(out, "- "+a)
		}
	}

	if script := u.Resource(course.ResourceAudioScript); script != "" {
		out = append(out, "", "Guion de audio:")
		out = append(out, rawLines(script)...)
	}
	if notes := u.Resource(course.ResourceBuildNotes); notes != "" {
		out = append(out, "", "Notas de construcción:")
		out = append(out, rawLines(notes)...)
	}
	for _, res := range u.GenericResources() {
		title := res.Title
		if title == "" {
			title = res.Type
		}
		out = append(out, "", "Recurso ("+title+"):")
		out = append(out, rawLines(res.Content)...)
	}

	if clipped := clippedItemText(ub.Visual.Items); len(clipped) > 0 {
		out = append(out, "", "Texto completo del lienzo:")
		out = append(out, clipped...)
	}

	if ub.Visual.HasInteractivity() {
		out = append(out, "", "Interactividad:")
		for j, btn := range ub.Visual.Buttons {
			out = append(out, fmt.Sprintf("- Botón \"%s\" -> diapositiva %d", btn, plan.PopupSlide(unit, j)))
		}
	}

	if len(attribution) > 0 {
		out = append(out, "")
		out = append(out, attribution...)
	}
	return out
}

// clippedItemText lists the untruncated original of every item the canvas
// had to cut.
func clippedItemText(items []spec.Item) []string {
	var out []string
	for _, it := range items {
		if it.FullTitle == it.Title && it.FullBody == it.Body {
			continue
		}
		line := it.FullTitle
		if it.FullBody != "" {
			if line != "" {
				line += ": "
			}
			line += it.FullBody
		}
		out = append(out, "- "+line)
	}
	return out
}

func popupNotes(p *spec.Popup) []string {
	title, body := p.Title, p.Body
	if p.FullTitle != "" {
		title = p.FullTitle
	}
	if p.FullBody != "" {
		body = p.FullBody
	}
	var out []string
	if title != "" {
		out = append(out, title)
	}
	out = append(out, body)
	return out
}

// rawLines preserves resource text verbatim, only breaking it into the
// paragraph-per-line shape notes bodies want.
func rawLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = append(out, strings.TrimRight(line, " \t\r"))
	}
	return out
}
