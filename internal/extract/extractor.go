package extract

import (
    "github.com/rs/zerolog"
    "github.com/rs/zerolog/log"
    "golang.org/x/net/html"
)

// Extractor defines a minimal interface for content extraction strategies.
// Implementations can swap selection tactics without changing callers.
type Extractor interface {
    // Extract moves the main content of doc into a new minimal document.
    Extract(doc *html.Node) (*html.Node, error)
}

// KeywordExtractor scores containers by id/class keywords and falls back
// to <body>.
type KeywordExtractor struct{}

func (KeywordExtractor) Extract(doc *html.Node) (*html.Node, error) {
    if zerolog.GlobalLevel() <= zerolog.DebugLevel {
        for _, c := range Score(doc) {
            log.Debug().
                Str("tag", c.Node.Data).
                Str("id", getAttr(c.Node, "id")).
                Int("score", c.Score).
                Str("reason", c.Reason).
                Msg("content candidate")
        }
    }
    return Extract(doc)
}
