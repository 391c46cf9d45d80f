// Package css reads the deck theme stylesheet. Only a flat subset is needed:
// class selectors with color/font declarations - no media queries, no
// nesting, no cascade. Unknown constructs are skipped with a debug note.
package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Rule is one flat ruleset: selector plus declarations.
type Rule struct {
	Selector   string
	Properties map[string]string
}

// Stylesheet is the parsed theme source.
type Stylesheet struct {
	Rules []Rule
}

// Parser parses CSS text into flat rules.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css")}
}

// Parse parses stylesheet data. Parse errors terminate the scan but whatever
// was read up to that point stays usable.
func (p *Parser) Parse(data []byte) *Stylesheet {
	sheet := &Stylesheet{}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	var selectors []string
	var props map[string]string

	flush := func() {
		for _, sel := range selectors {
			sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Properties: props})
		}
		selectors, props = nil, nil
	}

	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(err))
			}
			flush()
			return sheet

		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			flush()
			selectors = parseSelectors(data, parser.Values())
			props = make(map[string]string)

		case css.DeclarationGrammar:
			if props != nil {
				props[strings.ToLower(string(data))] = valuesText(parser.Values())
			}

		case css.EndRulesetGrammar:
			flush()

		case css.BeginAtRuleGrammar, css.AtRuleGrammar:
			p.log.Debug("Skipping at-rule in theme stylesheet", zap.String("rule", string(data)))
		}
	}
}

func parseSelectors(data []byte, values []css.Token) []string {
	var b strings.Builder
	b.Write(data)
	for _, t := range values {
		b.Write(t.Data)
	}
	var out []string
	for _, s := range strings.Split(b.String(), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// valuesText flattens declaration value tokens. The parser swallows
// whitespace tokens, so list separators are restored after each comma.
func valuesText(values []css.Token) string {
	var b strings.Builder
	for _, t := range values {
		b.Write(t.Data)
		if t.TokenType == css.CommaToken {
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(b.String())
}
