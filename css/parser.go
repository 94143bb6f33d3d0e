package css

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser verifies CSS syntax of generated documents. It does not build a
// model, only an outline of what was found.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Outline lists top-level selectors and @keyframes names in source order.
type Outline struct {
	Selectors    []string
	Keyframes    []string
	Declarations int
}

// Has reports whether outline contains top-level rule for the selector.
func (o *Outline) Has(selector string) bool {
	for _, s := range o.Selectors {
		if s == selector {
			return true
		}
	}
	return false
}

// HasKeyframes reports whether outline contains @keyframes with the name.
func (o *Outline) HasKeyframes(name string) bool {
	for _, k := range o.Keyframes {
		if k == name {
			return true
		}
	}
	return false
}

// Check parses CSS text and reports first syntax problem.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Check(data []byte, source ...string) (*Outline, error) {
	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Checking CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	out := &Outline{}
	depth := 0
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return out, fmt.Errorf("css syntax: %w", err)
			}
			if depth != 0 {
				return out, fmt.Errorf("css syntax: %d unterminated blocks", depth)
			}
			p.log.Debug("CSS checked", zap.Int("rules", len(out.Selectors)), zap.Int("keyframes", len(out.Keyframes)))
			return out, nil

		case css.BeginAtRuleGrammar:
			if strings.EqualFold(string(data), "@keyframes") {
				name := strings.TrimSpace(tokensText(nil, parser.Values()))
				if name == "" {
					return out, errors.New("css syntax: @keyframes without name")
				}
				out.Keyframes = append(out.Keyframes, name)
			}
			depth++

		case css.EndAtRuleGrammar:
			depth--

		case css.BeginRulesetGrammar:
			if depth == 0 {
				out.Selectors = append(out.Selectors, strings.TrimSpace(tokensText(data, parser.Values())))
			}

		case css.DeclarationGrammar:
			if len(parser.Values()) == 0 {
				return out, fmt.Errorf("css syntax: property %q has no value", string(data))
			}
			out.Declarations++
		}
	}
}

func tokensText(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	return sb.String()
}
