// Package theme styles the overlay panels from a small CSS subset.
//
// Selectors are .class or #id with no combinators. Declarations are
// "key: value". Later rules override earlier ones for the same property.
package theme

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Rule is a single CSS rule: one selector and its raw property values.
type Rule struct {
	Selector string            // e.g. ".zoom" or "#splash"
	Props    map[string]string // e.g. "background" -> "#333"
}

// Stylesheet is a list of rules; order matters.
type Stylesheet struct {
	Rules []Rule
}

//go:embed default.css
var defaultCSS []byte

// Default returns the built-in overlay stylesheet.
func Default() *Stylesheet {
	sheet, err := Parse(bytes.NewReader(defaultCSS))
	if err != nil {
		panic(err)
	}
	return sheet
}

// Load reads a stylesheet from path. An empty path returns Default.
func Load(path string) (*Stylesheet, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sheet, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sheet, nil
}

// Parse tokenizes r with the tdewolff CSS parser. Rules whose selector is not
// a single .class or #id, and at-rules, are skipped.
func Parse(r io.Reader) (*Stylesheet, error) {
	p := css.NewParser(parse.NewInput(r), false)
	sheet := &Stylesheet{}
	var cur *Rule
	atDepth := 0
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != io.EOF {
				return nil, fmt.Errorf("theme: %w", err)
			}
			return sheet, nil
		case css.BeginAtRuleGrammar:
			atDepth++
		case css.EndAtRuleGrammar:
			atDepth--
		case css.BeginRulesetGrammar:
			sel := strings.TrimSpace(string(data) + joinValues(p.Values()))
			if atDepth == 0 && validSelector(sel) {
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: map[string]string{}})
				cur = &sheet.Rules[len(sheet.Rules)-1]
			} else {
				cur = nil
			}
		case css.DeclarationGrammar:
			if cur != nil {
				key := strings.ToLower(strings.TrimSpace(string(data)))
				cur.Props[key] = strings.TrimSpace(joinValues(p.Values()))
			}
		case css.EndRulesetGrammar:
			cur = nil
		}
	}
}

func joinValues(vals []css.Token) string {
	var b strings.Builder
	for _, v := range vals {
		b.Write(v.Data)
	}
	return b.String()
}

func validSelector(sel string) bool {
	if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
		return false
	}
	return !strings.ContainsAny(sel[1:], " .#>+~,:[")
}

// Props returns the merged properties of every rule matching class or id.
func (s *Stylesheet) Props(class, id string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, rule := range s.Rules {
		sel := rule.Selector
		if (sel[0] == '.' && class != "" && sel[1:] == class) || (sel[0] == '#' && id != "" && sel[1:] == id) {
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	return merged
}
