package metadata

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/arloliu/e57/format"
)

// Element is one element of a metadata document.
type Element struct {
	node *xmlquery.Node
}

// Name returns the local name of the element.
func (e *Element) Name() string {
	return e.node.Data
}

// Namespace returns the namespace URI of the element.
func (e *Element) Namespace() string {
	return e.node.NamespaceURI
}

// Type returns the E57 element type from the "type" attribute.
func (e *Element) Type() format.ElementType {
	v, _ := e.Attr("type")
	return format.ParseElementType(v)
}

// Attr returns the value of an unqualified attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Name.Local == name && a.Name.Space == "" {
			return a.Value, true
		}
	}

	return "", false
}

// Text returns the element's text content with surrounding space removed.
func (e *Element) Text() string {
	return strings.TrimSpace(e.node.InnerText())
}

// Children returns the child elements in the E57 namespace.
func (e *Element) Children() []*Element {
	var out []*Element
	for n := e.node.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode && n.NamespaceURI == Namespace {
			out = append(out, &Element{node: n})
		}
	}

	return out
}

// Path returns the E57 path of the element, e.g. "/data3D/0/points". Children
// of Vector elements are addressed by their index, other children by name.
func (e *Element) Path() string {
	var segments []string
	for n := e.node; n != nil && n.Type == xmlquery.ElementNode; n = n.Parent {
		parent := n.Parent
		if parent == nil || parent.Type != xmlquery.ElementNode {
			break // n is the root
		}

		pe := &Element{node: parent}
		if pe.Type() == format.ElementVector {
			segments = append(segments, strconv.Itoa(pe.indexOf(n)))
		} else {
			segments = append(segments, n.Data)
		}
	}

	var sb strings.Builder
	for i := len(segments) - 1; i >= 0; i-- {
		sb.WriteByte('/')
		sb.WriteString(segments[i])
	}
	if sb.Len() == 0 {
		return "/"
	}

	return sb.String()
}

func (e *Element) indexOf(child *xmlquery.Node) int {
	for i, c := range e.Children() {
		if c.node == child {
			return i
		}
	}

	return -1
}

// parent returns the enclosing element, or nil at the root.
func (e *Element) parent() *Element {
	p := e.node.Parent
	if p == nil || p.Type != xmlquery.ElementNode {
		return nil
	}

	return &Element{node: p}
}
