package course

import (
	"strings"
)

// Type definitions for the instructional-design document supplied by the
// upstream generation service. The document is validated upstream, we only
// defend against missing or malformed text inside otherwise valid fields.

// Course is the root of the design document.
type Course struct {
	Name        string    `yaml:"name" json:"name"`
	Title       string    `yaml:"title" json:"title"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Audience    string    `yaml:"audience,omitempty" json:"audience,omitempty"`
	Duration    int       `yaml:"duration_minutes,omitempty" json:"duration_minutes,omitempty"`
	Outcomes    []Outcome `yaml:"outcomes,omitempty" json:"outcomes,omitempty"`
	Units       []Unit    `yaml:"units" json:"units"`
}

// Outcome is a single learning outcome referenced by units.
type Outcome struct {
	ID   string `yaml:"id" json:"id"`
	Text string `yaml:"text" json:"text"`
}

// Unit is one structured section of the document, rendered as one primary
// slide plus optional popup slides. Immutable once parsed.
type Unit struct {
	ID          string     `yaml:"id" json:"id"`
	Title       string     `yaml:"title" json:"title"`
	Purpose     string     `yaml:"purpose,omitempty" json:"purpose,omitempty"`
	Duration    int        `yaml:"duration_minutes,omitempty" json:"duration_minutes,omitempty"`
	OutcomeRefs []string   `yaml:"outcome_refs,omitempty" json:"outcome_refs,omitempty"`
	Content     []string   `yaml:"content,omitempty" json:"content,omitempty"`
	Activities  []string   `yaml:"activities,omitempty" json:"activities,omitempty"`
	Assessments []string   `yaml:"assessments,omitempty" json:"assessments,omitempty"`
	Resources   []Resource `yaml:"resources,omitempty" json:"resources,omitempty"`
}

// Resource is a free-typed attachment produced by the upstream service.
// Type is matched case and accent insensitively against recognized kinds,
// anything else is a generic displayable resource.
type Resource struct {
	Type    string `yaml:"type" json:"type"`
	Title   string `yaml:"title,omitempty" json:"title,omitempty"`
	Content string `yaml:"content" json:"content"`
}

// ResourceKind classifies recognized special resource types.
type ResourceKind int

const (
	ResourceGeneric ResourceKind = iota
	ResourceAudioScript
	ResourceBuildNotes
	ResourceImageQuery
	ResourceIconQuery
	ResourceVisualSpec
	ResourceInfographic
)

var resourceKinds = map[string]ResourceKind{
	"guion_audio":        ResourceAudioScript,
	"notas_construccion": ResourceBuildNotes,
	"imagen_query":       ResourceImageQuery,
	"icon_query":         ResourceIconQuery,
	"visual_spec":        ResourceVisualSpec,
	"infografia_tecnica": ResourceInfographic,
}

// Kind returns recognized resource kind for the free-text type.
func (r *Resource) Kind() ResourceKind {
	key := strings.Map(func(sym rune) rune {
		if sym == ' ' || sym == '-' {
			return '_'
		}
		return sym
	}, Fold(strings.TrimSpace(r.Type)))
	if k, ok := resourceKinds[key]; ok {
		return k
	}
	return ResourceGeneric
}

// Resource returns content of the first resource of the requested kind or
// empty string when the unit carries none.
func (u *Unit) Resource(kind ResourceKind) string {
	for i := range u.Resources {
		if u.Resources[i].Kind() == kind {
			return u.Resources[i].Content
		}
	}
	return ""
}

// GenericResources returns all resources not recognized as special kinds, in
// document order.
func (u *Unit) GenericResources() []Resource {
	var out []Resource
	for i := range u.Resources {
		if u.Resources[i].Kind() == ResourceGeneric {
			out = append(out, u.Resources[i])
		}
	}
	return out
}

// VisibleText returns unit content joined into a single searchable string.
func (u *Unit) VisibleText() string {
	return strings.Join(u.Content, "\n")
}

// ActivityText returns combined activity and assessment text in document order.
func (u *Unit) ActivityText() string {
	parts := make([]string, 0, len(u.Activities)+len(u.Assessments))
	parts = append(parts, u.Activities...)
	parts = append(parts, u.Assessments...)
	return strings.Join(parts, "\n")
}
