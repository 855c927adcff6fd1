package importer

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/gocolly/colly/v2"
)

const (
	userAgent      = "UPathResourceImporter/1.0"
	requestTimeout = 20 * time.Second
	headlessWait   = 1500 * time.Millisecond
)

var errNoLinks = errors.New("no links found")

// LinkCollector returns the candidate detail links on one listing page.
type LinkCollector func(ctx context.Context, src Source, pageURL string) ([]string, error)

func newCollector(rawURL string) *colly.Collector {
	opts := []colly.CollectorOption{colly.UserAgent(userAgent)}
	if host := hostFromURL(rawURL); host != "" {
		opts = append(opts, colly.AllowedDomains(host))
	}
	c := colly.NewCollector(opts...)
	c.SetRequestTimeout(requestTimeout)
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept-Language", "en-US,en;q=0.9")
	})
	return c
}

// collectLinks reads anchors from a server-rendered listing page.
func collectLinks(ctx context.Context, src Source, pageURL string) ([]string, error) {
	c := newCollector(pageURL)

	var hrefs []string
	c.OnHTML(src.LinkSelector, func(e *colly.HTMLElement) {
		if href := strings.TrimSpace(e.Attr("href")); href != "" {
			hrefs = append(hrefs, e.Request.AbsoluteURL(href))
		}
	})

	var reqErr error
	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.Visit(pageURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}
	return filterLinks(hrefs, src.LinkContains, pageURL), nil
}

// collectLinksHeadless renders the listing in headless Chrome for sites that
// build their listings client side.
func collectLinksHeadless(ctx context.Context, src Source, pageURL string) ([]string, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(userAgent),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 2*requestTimeout)
	defer reqCancel()

	var hrefs []string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(headlessWait),
		chromedp.EvaluateAsDevTools(`Array.from(document.querySelectorAll('a[href]')).map(a => a.href)`, &hrefs),
	)
	if err != nil {
		return nil, err
	}

	links := filterLinks(hrefs, src.LinkContains, pageURL)
	if len(links) == 0 {
		return nil, errNoLinks
	}
	return links, nil
}

// filterLinks keeps absolute http(s) links on the listing's host that
// contain the marker, dropping fragments and duplicates.
func filterLinks(hrefs []string, contains, pageURL string) []string {
	host := hostFromURL(pageURL)
	seen := make(map[string]bool, len(hrefs))
	out := make([]string, 0, len(hrefs))
	for _, h := range hrefs {
		u, err := url.Parse(strings.TrimSpace(h))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			continue
		}
		if host != "" && u.Hostname() != host {
			continue
		}
		u.Fragment = ""
		link := u.String()
		if link == pageURL || seen[link] {
			continue
		}
		if contains != "" && !strings.Contains(link, contains) {
			continue
		}
		seen[link] = true
		out = append(out, link)
	}
	return out
}

func hostFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(u.Host); err == nil {
		return h
	}
	return u.Host
}
