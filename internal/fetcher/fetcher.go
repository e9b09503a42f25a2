// Package fetcher pulls the readable text out of an interview-experience
// page so the AI extractor can turn it into a structured review.
package fetcher

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const maxContentLen = 20000

type Result struct {
	Title   string
	URL     string
	Content string
}

type Fetcher struct {
	http *http.Client
}

func New() *Fetcher {
	return &Fetcher{http: &http.Client{Timeout: 20 * time.Second}}
}

// Fetch downloads the page and extracts its title and main text.
func (f *Fetcher) Fetch(rawURL, userAgent string) (*Result, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported url scheme: %q", u.Scheme)
	}

	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch failed: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	res := extract(doc)
	res.URL = rawURL
	if res.Content == "" {
		return nil, fmt.Errorf("no readable content at %s", rawURL)
	}
	return res, nil
}

func extract(doc *goquery.Document) *Result {
	doc.Find("script, style, nav, header, footer, aside, form").Remove()

	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	// Prefer the article body; fall back to every paragraph on the page.
	root := doc.Find("article, main, div.post-content, div.entry-content").First()
	if root.Length() == 0 {
		root = doc.Find("body").First()
	}

	var parts []string
	root.Find("p, li, h2, h3").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	content := strings.Join(parts, "\n")
	if len(content) > maxContentLen {
		content = content[:maxContentLen]
	}

	return &Result{Title: title, Content: content}
}
