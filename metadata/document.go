package metadata

import (
	"fmt"
	"strings"
	"sync"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/arloliu/e57/errs"
)

const (
	// Namespace is the namespace of every E57 element.
	Namespace = "http://www.astm.org/COMMIT/E57/2010-e57-v1.0"
	// RootElement is the local name of the document element.
	RootElement = "e57Root"

	nsPrefix = "e57"
)

// Document is a parsed E57 metadata document.
type Document struct {
	root *xmlquery.Node

	mu    sync.Mutex
	exprs map[string]*xpath.Expr
}

// Parse parses metadata text.
//
// Returns:
//   - *Document: the parsed document
//   - error: ErrMetadata for malformed XML, a missing root element or a root
//     outside the E57 namespace
func Parse(text string) (*Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty document", errs.ErrMetadata)
	}

	top, err := xmlquery.Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrMetadata, err)
	}

	var root *xmlquery.Node
	for n := top.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			root = n
			break
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", errs.ErrMetadata)
	}

	if root.Data != RootElement || root.NamespaceURI != Namespace {
		return nil, fmt.Errorf("%w: root element {%s}%s, want {%s}%s",
			errs.ErrMetadata, root.NamespaceURI, root.Data, Namespace, RootElement)
	}

	return &Document{root: root, exprs: make(map[string]*xpath.Expr)}, nil
}

// Root returns the <e57Root> element.
func (d *Document) Root() *Element {
	return &Element{node: d.root}
}

// FindFirst returns the first element, in document order, with the given
// local name in the E57 namespace, or nil when there is none.
func (d *Document) FindFirst(name string) (*Element, error) {
	return d.queryFirst(d.root, "descendant-or-self::"+nsPrefix+":"+name)
}

// FindAll returns every element with the given local name in the E57
// namespace, in document order.
func (d *Document) FindAll(name string) ([]*Element, error) {
	return d.queryAll(d.root, "descendant-or-self::"+nsPrefix+":"+name)
}

// FindChild returns the first child of parent with the given local name in
// the E57 namespace, or nil when there is none.
func (d *Document) FindChild(parent *Element, name string) (*Element, error) {
	return d.queryFirst(parent.node, nsPrefix+":"+name)
}

func (d *Document) queryFirst(from *xmlquery.Node, query string) (*Element, error) {
	expr, err := d.compile(query)
	if err != nil {
		return nil, err
	}

	n := xmlquery.QuerySelector(from, expr)
	if n == nil {
		return nil, nil
	}

	return &Element{node: n}, nil
}

func (d *Document) queryAll(from *xmlquery.Node, query string) ([]*Element, error) {
	expr, err := d.compile(query)
	if err != nil {
		return nil, err
	}

	nodes := xmlquery.QuerySelectorAll(from, expr)
	out := make([]*Element, len(nodes))
	for i, n := range nodes {
		out[i] = &Element{node: n}
	}

	return out, nil
}

// compile returns the cached compiled form of a query. The e57 prefix is bound
// to the E57 namespace.
func (d *Document) compile(query string) (*xpath.Expr, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if expr, ok := d.exprs[query]; ok {
		return expr, nil
	}

	expr, err := xpath.CompileWithNS(query, map[string]string{nsPrefix: Namespace})
	if err != nil {
		return nil, fmt.Errorf("%w: query %q: %w", errs.ErrMetadata, query, err)
	}
	d.exprs[query] = expr

	return expr, nil
}
