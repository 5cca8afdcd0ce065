package svgvector

import (
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/go-logr/logr"
	"golang.org/x/net/html"
)

// presentationAttrs are the attributes that double as style properties.
var presentationAttrs = []string{
	"fill", "fill-opacity", "fill-rule",
	"stroke", "stroke-opacity", "stroke-width", "stroke-linecap",
	"stroke-linejoin", "stroke-miterlimit",
	"opacity", "display", "visibility", "color",
	"clip-path", "clip-rule", "stop-color", "stop-opacity",
	"mask", "filter", "marker", "marker-start", "marker-mid", "marker-end",
}

// Declarations from the different origins are ranked so that later ranks
// override earlier ones.
const (
	rankAttribute = iota
	rankSheet
	rankInline
	rankSheetImportant
	rankInlineImportant
)

type sheetRule struct {
	selector cascadia.Sel
	order    int
	decls    []*css.Declaration
}

// cascade fills props for every element of the document from its
// presentation attributes, the matching rules of all <style> sheets, and
// its style attribute. Nothing is inherited from the parent.
func (d *document) cascade(shadowRoot *html.Node, log logr.Logger) error {
	rules, err := d.sheetRules(log)
	if err != nil {
		return err
	}
	matched := map[*html.Node][]*sheetRule{}
	for _, r := range rules {
		for _, n := range cascadia.QueryAll(shadowRoot, r.selector) {
			matched[n] = append(matched[n], r)
		}
	}

	var cascadeErr error
	d.root.walk(func(el *element) {
		if cascadeErr != nil {
			return
		}
		ranks := map[string]int{}
		el.props = map[string]string{}
		set := func(k, v string, rank int) {
			k = strings.ToLower(strings.TrimSpace(k))
			if r, ok := ranks[k]; ok && r > rank {
				return
			}
			ranks[k] = rank
			el.props[k] = strings.TrimSpace(v)
		}
		for _, k := range presentationAttrs {
			if v, ok := el.Attrs[k]; ok {
				set(k, v, rankAttribute)
			}
		}
		rs := matched[el.shadow]
		sort.SliceStable(rs, func(i, j int) bool {
			si, sj := rs[i].selector.Specificity(), rs[j].selector.Specificity()
			if si != sj {
				return si.Less(sj)
			}
			return rs[i].order < rs[j].order
		})
		for _, r := range rs {
			for _, decl := range r.decls {
				rank := rankSheet
				if decl.Important {
					rank = rankSheetImportant
				}
				set(decl.Property, decl.Value, rank)
			}
		}
		if style, ok := el.Attrs["style"]; ok && strings.TrimSpace(style) != "" {
			decls, err := parseInlineStyle(style)
			if err != nil {
				cascadeErr = wrapElement(el, invalid("style", style))
				return
			}
			for _, decl := range decls {
				rank := rankInline
				if decl.Important {
					rank = rankInlineImportant
				}
				set(decl.Property, decl.Value, rank)
			}
		}
	})
	return cascadeErr
}

// sheetRules collects the rules of every <style> element in document
// order. Selectors the matcher cannot parse are logged and dropped.
func (d *document) sheetRules(log logr.Logger) ([]*sheetRule, error) {
	var rules []*sheetRule
	var sheetErr error
	d.root.walk(func(el *element) {
		if sheetErr != nil || el.Name.Local != "style" || el.foreign() {
			return
		}
		if t, ok := el.Attrs["type"]; ok && t != "" && t != "text/css" {
			return
		}
		sheet, err := parser.Parse(el.Text)
		if err != nil {
			sheetErr = wrapElement(el, invalid("style", err.Error()))
			return
		}
		for _, r := range sheet.Rules {
			if r.Kind == css.AtRule {
				continue
			}
			for _, s := range r.Selectors {
				sel, err := cascadia.Parse(s)
				if err != nil {
					log.V(1).Info("dropping style rule", "selector", s, "reason", err.Error())
					continue
				}
				rules = append(rules, &sheetRule{
					selector: sel,
					order:    len(rules),
					decls:    r.Declarations,
				})
			}
		}
	})
	return rules, sheetErr
}

// parseInlineStyle reads the declarations of a style attribute. The parser
// leaves the last value empty unless it is terminated, so a missing final
// semicolon is supplied.
func parseInlineStyle(style string) ([]*css.Declaration, error) {
	style = strings.TrimSpace(style)
	if !strings.HasSuffix(style, ";") {
		style += ";"
	}
	return parser.ParseDeclarations(style)
}
