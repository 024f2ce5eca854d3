package extract

import (
    "errors"
    "sort"
    "strings"

    "golang.org/x/net/html"
    "golang.org/x/net/html/atom"
)

var (
    // ErrNoDocument is returned when there is no tree to extract from.
    ErrNoDocument = errors.New("extract: no document")
    // ErrNoContent is returned when no candidate scored and the document
    // has no <body> to fall back to.
    ErrNoContent = errors.New("extract: no content found")
)

// Keywords mark an id or class as likely main content.
var Keywords = []string{"content", "main", "article", "post", "entry"}

const (
    // IDScore is awarded when the id contains a keyword.
    IDScore = 3
    // ClassScore is awarded when the joined class tokens contain a keyword.
    ClassScore = 2
)

// Candidate is one scored match. An element matching both the id and class
// checks yields two candidates.
type Candidate struct {
    Node   *html.Node
    Score  int
    Reason string
}

// Score walks root in document order and scores every <main>, <article> and
// <div>. It does not modify the tree.
func Score(root *html.Node) []Candidate {
    var out []Candidate
    var walk func(*html.Node)
    walk = func(n *html.Node) {
        if n.Type == html.ElementNode && isContainer(n) {
            if id := getAttr(n, "id"); id != "" && containsAny(strings.ToLower(id), Keywords) {
                out = append(out, Candidate{Node: n, Score: IDScore, Reason: "id"})
            }
            if class := getAttr(n, "class"); class != "" {
                joined := strings.ToLower(strings.Join(strings.Fields(class), " "))
                if containsAny(joined, Keywords) {
                    out = append(out, Candidate{Node: n, Score: ClassScore, Reason: "class"})
                }
            }
        }
        for c := n.FirstChild; c != nil; c = c.NextSibling {
            walk(c)
        }
    }
    if root != nil {
        walk(root)
    }
    return out
}

// Best returns the node of the highest-scoring candidate. Ties go to the
// earliest entry. Returns nil for an empty list.
func Best(cands []Candidate) *html.Node {
    if len(cands) == 0 {
        return nil
    }
    sorted := make([]Candidate, len(cands))
    copy(sorted, cands)
    sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })
    return sorted[0].Node
}

// Select picks the main content node, falling back to <body>.
func Select(doc *html.Node) (*html.Node, error) {
    if doc == nil {
        return nil, ErrNoDocument
    }
    if n := Best(Score(doc)); n != nil {
        return n, nil
    }
    if body := findFirst(doc, "body"); body != nil {
        return body, nil
    }
    return nil, ErrNoContent
}

// Extract selects the main content of doc and moves it into a fresh
// html/head/body skeleton. doc loses the moved subtree.
func Extract(doc *html.Node) (*html.Node, error) {
    content, err := Select(doc)
    if err != nil {
        return nil, err
    }
    out, body := NewSkeleton()
    if content.Parent != nil {
        content.Parent.RemoveChild(content)
    }
    body.AppendChild(content)
    return out, nil
}

// NewSkeleton builds <html><head><meta charset="utf-8"></head><body></body></html>
// and returns the document node and its body.
func NewSkeleton() (*html.Node, *html.Node) {
    doc := &html.Node{Type: html.DocumentNode}
    root := element(atom.Html)
    head := element(atom.Head)
    meta := element(atom.Meta)
    meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
    body := element(atom.Body)
    head.AppendChild(meta)
    root.AppendChild(head)
    root.AppendChild(body)
    doc.AppendChild(root)
    return doc, body
}

func element(a atom.Atom) *html.Node {
    return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func isContainer(n *html.Node) bool {
    switch strings.ToLower(n.Data) {
    case "main", "article", "div":
        return true
    }
    return false
}

func getAttr(n *html.Node, key string) string {
    for _, attr := range n.Attr {
        if strings.EqualFold(attr.Key, key) {
            return attr.Val
        }
    }
    return ""
}

func findFirst(n *html.Node, tag string) *html.Node {
    var res *html.Node
    var dfs func(*html.Node)
    dfs = func(cur *html.Node) {
        if res != nil {
            return
        }
        if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
            res = cur
            return
        }
        for c := cur.FirstChild; c != nil; c = c.NextSibling {
            dfs(c)
            if res != nil {
                return
            }
        }
    }
    dfs(n)
    return res
}

func containsAny(s string, needles []string) bool {
    for _, n := range needles {
        if strings.Contains(s, n) {
            return true
        }
    }
    return false
}
