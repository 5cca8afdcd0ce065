// Copyright 2017 The oksvg Authors. All rights reserved.
// created: 2/12/2017 by S.R.Wiley

package svgvector

import (
	"encoding/xml"
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/go-logr/logr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

const (
	svgNS   = "http://www.w3.org/2000/svg"
	xlinkNS = "http://www.w3.org/1999/xlink"
)

// element is one node of the parsed document. Only attributes in the SVG
// or xlink namespaces are kept; xlink:href is stored as href unless the
// element also has a plain href.
type element struct {
	Name     xml.Name
	Attrs    map[string]string
	Children []*element
	Text     string
	parent   *element

	// props holds the properties the element declares itself, from
	// presentation attributes, style sheets and the style attribute.
	props map[string]string
	// shadow mirrors the element for selector matching.
	shadow *html.Node
}

type document struct {
	root *element
	ids  map[string]*element
}

func (el *element) ID() string {
	return el.Attrs["id"]
}

func (el *element) attr(name string) (string, bool) {
	v, ok := el.Attrs[name]
	return v, ok
}

// prop returns the locally declared value of a property. Values that only
// ask for inheritance are treated as not declared.
func (el *element) prop(name string) (string, bool) {
	v, ok := el.props[name]
	if !ok || v == "inherit" {
		return "", false
	}
	return v, true
}

// foreign reports whether the element lives outside the SVG namespace,
// like sodipodi:namedview or rdf:RDF.
func (el *element) foreign() bool {
	return el.Name.Space != "" && el.Name.Space != svgNS
}

var entityDecl = regexp.MustCompile(`<!ENTITY\s+([^\s%]+)\s+(?:"([^"]*)"|'([^']*)')\s*>`)

// readDocument decodes r into an element tree. Entities declared in the
// internal DTD subset are expanded, a feature common in files written by
// Illustrator. Style rules the selector engine rejects are reported to log.
func readDocument(r io.Reader, log logr.Logger) (*document, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	decoder.Entity = map[string]string{}
	for k, v := range xml.HTMLEntity {
		decoder.Entity[k] = v
	}

	doc := &document{ids: map[string]*element{}}
	var cur *element
	shadowRoot := &html.Node{Type: html.DocumentNode}
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			el := &element{Name: se.Name, Attrs: map[string]string{}, parent: cur}
			for _, attr := range se.Attr {
				switch attr.Name.Space {
				case "", svgNS:
					el.Attrs[attr.Name.Local] = attr.Value
				case xlinkNS, "xlink":
					if attr.Name.Local == "href" {
						if _, ok := el.Attrs["href"]; !ok {
							el.Attrs["href"] = attr.Value
						}
					}
				}
			}
			// selectors compare tag and attribute names in lower case
			el.shadow = &html.Node{Type: html.ElementNode, Data: strings.ToLower(se.Name.Local)}
			for k, v := range el.Attrs {
				el.shadow.Attr = append(el.shadow.Attr, html.Attribute{Key: strings.ToLower(k), Val: v})
			}
			if cur == nil {
				if doc.root != nil {
					return nil, errors.New("multiple root elements")
				}
				doc.root = el
				shadowRoot.AppendChild(el.shadow)
			} else {
				cur.Children = append(cur.Children, el)
				cur.shadow.AppendChild(el.shadow)
			}
			if id := el.ID(); id != "" && !el.foreign() {
				// first definition wins
				if _, ok := doc.ids[id]; !ok {
					doc.ids[id] = el
				}
			}
			cur = el
		case xml.EndElement:
			if cur != nil {
				cur = cur.parent
			}
		case xml.CharData:
			if cur != nil {
				cur.Text += string(se)
			}
		case xml.Directive:
			for _, m := range entityDecl.FindAllStringSubmatch(string(se), -1) {
				decoder.Entity[m[1]] = m[2] + m[3]
			}
		}
	}
	if doc.root == nil {
		return nil, errors.New("no root element")
	}
	if doc.root.Name.Local != "svg" {
		return nil, &ElementError{Tag: doc.root.Name.Local, Err: invalid("root", doc.root.Name.Local)}
	}
	if err := doc.cascade(shadowRoot, log); err != nil {
		return nil, err
	}
	return doc, nil
}

// lookup resolves a local IRI reference like "#id".
func (d *document) lookup(ref string) (*element, bool) {
	ref = strings.TrimSpace(ref)
	if !strings.HasPrefix(ref, "#") {
		return nil, false
	}
	el, ok := d.ids[ref[1:]]
	return el, ok
}

// walk visits el and its descendants in document order.
func (el *element) walk(fn func(*element)) {
	fn(el)
	for _, c := range el.Children {
		c.walk(fn)
	}
}
