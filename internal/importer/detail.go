package importer

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/gocolly/colly/v2"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
)

var errNoTitle = errors.New("page has no title")

type pageMeta struct {
	Title       string
	Description string
}

// fetchDetail extracts the title (og:title, then <title>, then the first h1)
// and description (og:description, then meta description) of one page.
func fetchDetail(ctx context.Context, link string) (pageMeta, error) {
	c := newCollector(link)

	var ogTitle, docTitle, h1, ogDesc, metaDesc string
	c.OnHTML(`meta[property="og:title"]`, func(e *colly.HTMLElement) {
		ogTitle = firstNonEmpty(ogTitle, e.Attr("content"))
	})
	c.OnHTML("title", func(e *colly.HTMLElement) {
		docTitle = firstNonEmpty(docTitle, e.Text)
	})
	c.OnHTML("h1", func(e *colly.HTMLElement) {
		h1 = firstNonEmpty(h1, e.Text)
	})
	c.OnHTML(`meta[property="og:description"]`, func(e *colly.HTMLElement) {
		ogDesc = firstNonEmpty(ogDesc, e.Attr("content"))
	})
	c.OnHTML(`meta[name="description"]`, func(e *colly.HTMLElement) {
		metaDesc = firstNonEmpty(metaDesc, e.Attr("content"))
	})

	var reqErr error
	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if err := ctx.Err(); err != nil {
		return pageMeta{}, err
	}
	if err := c.Visit(link); err != nil {
		return pageMeta{}, err
	}
	c.Wait()
	if reqErr != nil {
		return pageMeta{}, reqErr
	}

	meta := pageMeta{
		Title:       clip(firstNonEmpty(ogTitle, docTitle, h1), maxTitleLen),
		Description: clip(firstNonEmpty(ogDesc, metaDesc), maxDescriptionLen),
	}
	if meta.Title == "" {
		return pageMeta{}, errNoTitle
	}
	return meta, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.Join(strings.Fields(v), " "); v != "" {
			return v
		}
	}
	return ""
}

func clip(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:max-1])) + "…"
}
