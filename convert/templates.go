package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"sbc/config"
	"sbc/course"
)

// Values holds variables we make available for template expansion.
type Values struct {
	Context    string
	Name       string
	Title      string
	Audience   string
	Duration   int
	Units      int
	Outcomes   []string
	SourceFile string
}

func buildOutcomes(outcomes []course.Outcome) []string {
	result := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		result = append(result, o.Text)
	}
	return result
}

func expandTemplate(c *course.Course, src string, name config.TemplateFieldName, field string) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		Name:       c.Name,
		Title:      c.Title,
		Audience:   c.Audience,
		Duration:   c.Duration,
		Units:      len(c.Units),
		Outcomes:   buildOutcomes(c.Outcomes),
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
