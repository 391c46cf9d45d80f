// Package text derives instruction steps from free-form activity prose.
package text

import (
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

var (
	tokenizerOnce sync.Once
	tokenizer     *sentences.DefaultSentenceTokenizer
)

// The English training data handles sentence boundaries of Spanish course
// text well enough - boundary punctuation is shared, only abbreviation sets
// differ and those we do not depend on.
func getTokenizer() *sentences.DefaultSentenceTokenizer {
	tokenizerOnce.Do(func() {
		t, err := english.NewSentenceTokenizer(nil)
		if err == nil {
			tokenizer = t
		}
	})
	return tokenizer
}

// SplitSteps breaks activity prose into at most max instruction rows, one
// sentence each. Lines already separated by newlines stay separate. Falls
// back to naive period splitting when the tokenizer is unavailable.
func SplitSteps(s string, max int) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, sent := range splitSentences(line) {
			sent = strings.TrimSpace(sent)
			if sent == "" {
				continue
			}
			if max > 0 && len(out) == max {
				return out
			}
			out = append(out, sent)
		}
	}
	return out
}

func splitSentences(line string) []string {
	if t := getTokenizer(); t != nil {
		raw := t.Tokenize(line)
		out := make([]string, 0, len(raw))
		for _, s := range raw {
			out = append(out, s.Text)
		}
		return out
	}
	return strings.SplitAfter(line, ". ")
}
