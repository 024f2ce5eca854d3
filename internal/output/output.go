package output

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ErrNoDocument is returned when there is nothing to write.
var ErrNoDocument = errors.New("output: no document")

// MaxNameLength caps derived file names, in runes, before the extension.
const MaxNameLength = 50

// Extension is appended to derived file names.
const Extension = ".html"

// WriteError reports a filesystem failure while saving.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("write %s: %v", e.Path, e.Err) }

func (e *WriteError) Unwrap() error { return e.Err }

// Title returns the trimmed text of the first <title> in doc, or the host of
// rawURL when doc has none.
func Title(doc *html.Node, rawURL string) string {
	if doc != nil {
		if t := goquery.NewDocumentFromNode(doc).Find("title").First(); t.Length() > 0 {
			return strings.TrimSpace(t.Text())
		}
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// SafeName keeps letters, digits, spaces, hyphens and underscores, replaces
// every other rune with '_' and truncates to MaxNameLength runes. Runes are
// taken as given; combining marks are not letters and become '_'.
func SafeName(title string) string {
	var b strings.Builder
	n := 0
	for _, r := range title {
		if n == MaxNameLength {
			break
		}
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
		n++
	}
	return b.String()
}

// Path returns explicit verbatim when set, otherwise a name derived from the
// document title or URL host.
func Path(doc *html.Node, rawURL, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return SafeName(Title(doc, rawURL)) + Extension
}

// Write serializes doc to the chosen path, replacing any existing file, and
// returns the path written.
func Write(doc *html.Node, rawURL, explicit string) (string, error) {
	if doc == nil {
		return "", ErrNoDocument
	}
	path := Path(doc, rawURL, explicit)
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", &WriteError{Path: path, Err: fmt.Errorf("render: %w", err)}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	return path, nil
}
