// Package extract turns a scraped page into download candidates: it walks the
// document's image elements, keeps the ones living under the hinted folder
// paths, and derives a display name and slug id for each.
package extract

import (
	"bytes"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// Candidate is one image element that passed the folder-hint filter.
type Candidate struct {
	ID        string
	Name      string
	SourceURL string
}

// Extractor selects image elements by folder-hint substrings.
type Extractor struct {
	Hints []string
	Log   zerolog.Logger
}

// FromHTML parses the page body and returns candidates in document order.
// Elements without a usable source, outside the hinted folders, or without a
// derivable name are dropped with a log line; nothing aborts the walk.
func (e *Extractor) FromHTML(pageURL string, body []byte) ([]Candidate, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page url: %w", err)
	}

	var out []Candidate
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok || strings.TrimSpace(src) == "" {
			e.Log.Debug().Msg("skipping img without src")
			return
		}
		if !e.matchesHint(src) {
			e.Log.Debug().Str("src", src).Msg("skipping img outside hinted folders")
			return
		}
		ref, err := url.Parse(src)
		if err != nil {
			e.Log.Warn().Str("src", src).Err(err).Msg("unparsable img src, skipping")
			return
		}
		name := imageName(sel, ref.Path)
		if name == "" {
			e.Log.Warn().Str("src", src).Msg("no name for img, skipping")
			return
		}
		out = append(out, Candidate{
			ID:        Slug(name),
			Name:      name,
			SourceURL: base.ResolveReference(ref).String(),
		})
	})
	return out, nil
}

func (e *Extractor) matchesHint(src string) bool {
	for _, h := range e.Hints {
		if h != "" && strings.Contains(src, h) {
			return true
		}
	}
	return false
}

// imageName derives a display name with the precedence title attribute, then
// alt attribute, then the filename stem of the source path. Empty string
// means no name could be derived.
func imageName(sel *goquery.Selection, srcPath string) string {
	if title, ok := sel.Attr("title"); ok && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title)
	}
	if alt, ok := sel.Attr("alt"); ok && strings.TrimSpace(alt) != "" {
		return strings.TrimSpace(alt)
	}
	stem := path.Base(srcPath)
	stem = strings.TrimSuffix(stem, path.Ext(stem))
	if stem == "." || stem == "/" {
		return ""
	}
	return stem
}
