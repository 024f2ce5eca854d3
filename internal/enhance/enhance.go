package enhance

import (
	_ "embed"
	"errors"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// ErrNoDocument is returned when there is no tree to enhance.
	ErrNoDocument = errors.New("enhance: no document")
	// ErrNoRoot is returned when the document lacks an <html> element to
	// hold a head.
	ErrNoRoot = errors.New("enhance: no html element")
)

// DefaultStylesheet keeps code blocks, images and tables readable once the
// page's own CSS is gone.
//
//go:embed style.css
var DefaultStylesheet string

// Enhancer injects presentation rules into a document head.
type Enhancer struct {
	Stylesheet string
}

// New returns an Enhancer using css, or DefaultStylesheet when css is empty.
func New(css string) Enhancer {
	if css == "" {
		css = DefaultStylesheet
	}
	return Enhancer{Stylesheet: css}
}

// Enhance appends a <style> element to the head of doc, creating the head as
// the first child of <html> when it is missing.
func (e Enhancer) Enhance(doc *html.Node) (*html.Node, error) {
	if doc == nil {
		return nil, ErrNoDocument
	}
	css := e.Stylesheet
	if css == "" {
		css = DefaultStylesheet
	}
	style := &html.Node{Type: html.ElementNode, DataAtom: atom.Style, Data: "style"}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: css})

	if head := findElement(doc, atom.Head); head != nil {
		head.AppendChild(style)
		return doc, nil
	}
	root := findElement(doc, atom.Html)
	if root == nil {
		return nil, ErrNoRoot
	}
	head := &html.Node{Type: html.ElementNode, DataAtom: atom.Head, Data: "head"}
	head.AppendChild(style)
	root.InsertBefore(head, root.FirstChild)
	return doc, nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}
