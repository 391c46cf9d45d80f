package course

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"
)

// Parse reads course design document from r. Both JSON (upstream service
// output) and YAML (hand-edited exports) are accepted, selected by the first
// meaningful byte. Structural validity is the upstream responsibility, here we
// only normalize text fields and make sure units are addressable.
func Parse(r io.Reader, srcName string, log *zap.Logger) (*Course, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read course document %q: %w", srcName, err)
	}

	var c Course
	if looksLikeJSON(data) {
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("unable to decode course document %q: %w", srcName, err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("unable to decode course document %q: %w", srcName, err)
		}
	}

	if len(c.Units) == 0 {
		return nil, errors.New("course document has no units")
	}

	c.normalize(log)
	return &c, nil
}

func looksLikeJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{', '[':
			return true
		default:
			return false
		}
	}
	return false
}

// normalize cleans visible text and assigns stable unit identifiers where the
// document left them empty.
func (c *Course) normalize(log *zap.Logger) {
	c.Name = CleanText(c.Name)
	c.Title = CleanText(c.Title)
	if c.Name == "" {
		c.Name = c.Title
	}
	if c.Name == "" {
		c.Name = "course"
	}
	c.Description = CleanText(c.Description)

	for i := range c.Units {
		u := &c.Units[i]
		if u.ID = CleanText(u.ID); u.ID == "" {
			u.ID = fmt.Sprintf("unit_%d", i+1)
			log.Debug("Assigned fallback unit id", zap.String("id", u.ID))
		}
		if u.Title = CleanText(u.Title); u.Title == "" {
			u.Title = fmt.Sprintf("Unidad %d", i+1)
		}
		u.Purpose = CleanText(u.Purpose)
		u.Content = CleanLines(u.Content, 0)
		u.Activities = CleanLines(u.Activities, 0)
		u.Assessments = CleanLines(u.Assessments, 0)
		for j := range u.Resources {
			u.Resources[j].Type = strings.TrimSpace(u.Resources[j].Type)
			u.Resources[j].Title = CleanText(u.Resources[j].Title)
			// resource content is kept verbatim - mini-language parsers and
			// speaker notes need the original lines
		}
	}
}
