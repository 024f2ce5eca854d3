package sanitize

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// ErrNoDocument is returned when there is no tree to sanitize.
var ErrNoDocument = errors.New("sanitize: no document")

// NoiseTags are element kinds that never carry main content.
var NoiseTags = []string{"script", "style", "iframe", "nav", "footer", "aside"}

var noiseSelector = strings.Join(NoiseTags, ", ")

// Parse decodes r to UTF-8, using contentType or <meta> sniffing to pick the
// charset, and parses it leniently. Malformed markup is repaired by the
// parser; only read errors surface.
func Parse(r io.Reader, contentType string) (*html.Node, error) {
	if r == nil {
		return nil, ErrNoDocument
	}
	utf8Reader, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, fmt.Errorf("sanitize: read: %w", err)
	}
	doc, err := html.Parse(utf8Reader)
	if err != nil {
		return nil, fmt.Errorf("sanitize: read: %w", err)
	}
	return doc, nil
}

// Clean detaches every noise element together with its subtree and reports
// how many elements were removed. A second pass over the same tree removes
// nothing.
func Clean(doc *html.Node) (*html.Node, int, error) {
	if doc == nil {
		return nil, 0, ErrNoDocument
	}
	noise := goquery.NewDocumentFromNode(doc).Find(noiseSelector)
	removed := noise.Length()
	noise.Remove()
	return doc, removed, nil
}

// Sanitize parses raw HTML and strips noise elements.
func Sanitize(r io.Reader, contentType string) (*html.Node, error) {
	doc, err := Parse(r, contentType)
	if err != nil {
		return nil, err
	}
	doc, removed, err := Clean(doc)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("removed", removed).Msg("sanitized document")
	return doc, nil
}
