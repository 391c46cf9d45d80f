// Package spec parses the two embedded authoring mini-languages the upstream
// service plants into unit resources. Both are tolerant line-oriented
// key/value formats with bulleted sections - malformed input is never an
// error, every field has a documented fallback so a slide can always be
// rendered from any structurally valid document.
package spec

import (
	"strings"

	"sbc/course"
)

// Canvas text limits. Untruncated originals always survive in speaker notes.
const (
	MaxTitleLen     = 46
	MaxBodyLen      = 120
	MaxPopupBodyLen = 240
	MaxLabelLen     = 18

	MaxItems   = 5
	MaxButtons = 4
	MaxPopups  = 3
)

// Item is one structured content element of a slide. FullTitle and FullBody
// keep the untruncated originals for speaker notes.
type Item struct {
	Label string
	Title string
	Body  string

	FullTitle string
	FullBody  string
}

// Popup is an in-place modal simulated by a secondary slide, reachable only
// through its button on the owning unit slide. FullTitle and FullBody keep
// the untruncated originals for speaker notes.
type Popup struct {
	Button string
	Title  string
	Body   string

	FullTitle string
	FullBody  string
}

// VisualSpec is the parsed visual_spec resource.
// Invariant: len(Buttons) == len(Popups), both at most MaxPopups when any
// interactivity is present.
type VisualSpec struct {
	Layout Layout
	// LayoutDeclared distinguishes an authored layout from the fallback
	// derivation. Only authored layouts carry intent for mode resolution.
	LayoutDeclared bool
	Mode           Mode
	Items          []Item
	Buttons        []string
	Popups         []Popup
}

type section int

const (
	sectionNone section = iota
	sectionItems
	sectionButtons
	sectionPopups
)

// ParseVisual parses visual spec text. When the text yields no items they are
// derived from the fallback content lines, so the result is always drawable.
func ParseVisual(text, fallbackTitle string, fallbackContent []string) *VisualSpec {
	vs := &VisualSpec{Layout: LayoutBullets, Mode: ModeAuto}

	current := sectionNone

	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if bullet, ok := bulletText(line); ok {
			vs.addBulleted(current, bullet)
			continue
		}
		current = sectionNone

		key, value, ok := splitKey(line)
		if !ok {
			continue
		}
		switch key {
		case "layout", "diseno":
			vs.Layout = fuzzyLayout(value)
			vs.LayoutDeclared = true
		case "visual_mode", "tipo_visual":
			vs.Mode = fuzzyMode(value)
		case "items", "elementos":
			current = sectionItems
			// inline comma list is accepted too
			for _, v := range splitList(value) {
				vs.addBulleted(sectionItems, v)
			}
		case "buttons", "botones":
			current = sectionButtons
			for _, v := range splitList(value) {
				vs.addBulleted(sectionButtons, v)
			}
		case "popups", "capas", "layers":
			current = sectionPopups
		}
	}

	if len(vs.Items) == 0 && len(fallbackContent) > 0 {
		for _, line := range course.CleanLines(fallbackContent, 4) {
			vs.Items = append(vs.Items, Item{Title: line})
		}
		if !vs.LayoutDeclared {
			if len(vs.Items) >= 3 {
				vs.Layout = LayoutProcessSteps
			} else {
				vs.Layout = LayoutCards
			}
		}
	}
	if len(vs.Items) == 0 && fallbackTitle != "" {
		vs.Items = []Item{{Title: fallbackTitle}}
	}

	vs.normalize()
	return vs
}

// addBulleted routes one bulleted line into the section the scanner is in.
func (vs *VisualSpec) addBulleted(current section, text string) {
	text = course.CleanText(text)
	if text == "" {
		return
	}
	switch current {
	case sectionItems:
		if len(vs.Items) == MaxItems {
			return
		}
		parts := splitSegments(text)
		item := Item{}
		switch len(parts) {
		case 1:
			item.Title = parts[0]
		case 2:
			item.Title, item.Body = parts[0], parts[1]
		default:
			item.Label, item.Title, item.Body = parts[0], parts[1], strings.Join(parts[2:], " | ")
		}
		vs.Items = append(vs.Items, item)
	case sectionButtons:
		if len(vs.Buttons) == MaxButtons {
			return
		}
		vs.Buttons = append(vs.Buttons, text)
	case sectionPopups:
		if len(vs.Popups) == MaxPopups {
			return
		}
		parts := splitSegments(text)
		popup := Popup{}
		switch len(parts) {
		case 1:
			popup.Title = parts[0]
		case 2:
			popup.Title, popup.Body = parts[0], parts[1]
		default:
			popup.Button, popup.Title, popup.Body = parts[0], parts[1], strings.Join(parts[2:], " | ")
		}
		vs.Popups = append(vs.Popups, popup)
	}
}

// normalize applies canvas truncation and makes interactivity coherent:
// every button leads to exactly one popup and every popup has a button.
func (vs *VisualSpec) normalize() {
	for i := range vs.Items {
		it := &vs.Items[i]
		it.FullTitle, it.FullBody = it.Title, it.Body
		it.Label = course.Truncate(it.Label, MaxLabelLen)
		it.Title = course.Truncate(it.Title, MaxTitleLen)
		it.Body = course.Truncate(it.Body, MaxBodyLen)
	}
	for i := range vs.Buttons {
		vs.Buttons[i] = course.Truncate(vs.Buttons[i], MaxLabelLen)
	}

	if len(vs.Popups) == 0 && len(vs.Buttons) > 0 {
		// synthesize one popup per button pairing item bodies round-robin
		for i, b := range vs.Buttons {
			if len(vs.Popups) == MaxPopups {
				break
			}
			p := Popup{Button: b, Title: b}
			if len(vs.Items) > 0 {
				it := vs.Items[i%len(vs.Items)]
				p.Body = it.FullBody
				if p.Body == "" {
					p.Body = it.FullTitle
				}
			}
			vs.Popups = append(vs.Popups, p)
		}
	}
	if len(vs.Buttons) == 0 && len(vs.Popups) > 0 {
		// authored popups without buttons would be unreachable
		for _, p := range vs.Popups {
			label := p.Button
			if label == "" {
				label = p.Title
			}
			vs.Buttons = append(vs.Buttons, course.Truncate(label, MaxLabelLen))
		}
	}
	if len(vs.Buttons) > len(vs.Popups) {
		vs.Buttons = vs.Buttons[:len(vs.Popups)]
	} else if len(vs.Popups) > len(vs.Buttons) {
		vs.Popups = vs.Popups[:len(vs.Buttons)]
	}

	for i := range vs.Popups {
		p := &vs.Popups[i]
		if p.Button == "" {
			p.Button = vs.Buttons[i]
		}
		p.Button = course.Truncate(p.Button, MaxLabelLen)
		if p.Title == "" {
			p.Title = p.Button
		}
		p.FullTitle, p.FullBody = p.Title, p.Body
		p.Title = course.Truncate(p.Title, MaxTitleLen)
		p.Body = course.Truncate(p.Body, MaxPopupBodyLen)
	}
}

// HasInteractivity reports whether the unit slide needs popup buttons.
func (vs *VisualSpec) HasInteractivity() bool {
	return len(vs.Buttons) > 0
}

func bulletText(line string) (string, bool) {
	for _, prefix := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(line[len(prefix):]), true
		}
	}
	if line == "-" || line == "*" {
		return "", true
	}
	return "", false
}

func splitKey(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}
	raw := strings.TrimSpace(line[:idx])
	if len(raw) > 32 {
		// prose with a colon in it, not a key
		return "", "", false
	}
	key = strings.Map(func(sym rune) rune {
		if sym == ' ' || sym == '-' {
			return '_'
		}
		return sym
	}, course.Fold(raw))
	return key, strings.TrimSpace(line[idx+1:]), true
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitSegments(text string) []string {
	parts := strings.Split(text, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func fuzzyLayout(value string) Layout {
	v := course.Fold(value)
	switch {
	case strings.Contains(v, "process") || strings.Contains(v, "proceso") || strings.Contains(v, "paso"):
		return LayoutProcessSteps
	case strings.Contains(v, "card") || strings.Contains(v, "tarjeta"):
		return LayoutCards
	case strings.Contains(v, "time") || strings.Contains(v, "cronolog") || strings.Contains(v, "linea"):
		return LayoutTimeline
	default:
		return LayoutBullets
	}
}

func fuzzyMode(value string) Mode {
	v := course.Fold(value)
	switch {
	case strings.Contains(v, "infograf"):
		return ModeInfographic
	case strings.Contains(v, "compar"):
		return ModeComparison
	case strings.Contains(v, "activ"):
		return ModeActivity
	case strings.Contains(v, "imagen") || strings.Contains(v, "image"):
		return ModeImageSupport
	default:
		return ModeAuto
	}
}
