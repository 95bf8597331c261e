// Package scrape pulls headline links from a handful of public
// sustainability pages to freshen up the static recommendation lists.
// Results are best-effort: any failure degrades to an empty slice.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout bounds one outbound fetch.
const DefaultTimeout = 4 * time.Second

const maxLinks = 5

type Link struct {
	Title string `json:"title"`
	URL   string `json:"link"`
}

type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{httpClient: &http.Client{Timeout: timeout}}
}

// FetchLinks downloads url and extracts up to maxLinks absolute anchors.
func (c *Client) FetchLinks(ctx context.Context, url string) ([]Link, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, res.StatusCode)
	}
	return ExtractLinks(res.Body)
}

// ExtractLinks returns anchors with non-empty text and absolute
// http(s) hrefs, capped at maxLinks.
func ExtractLinks(r io.Reader) ([]Link, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	links := make([]Link, 0, maxLinks)
	doc.Find("a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		href, ok := sel.Attr("href")
		if ok && text != "" && strings.HasPrefix(href, "http") {
			links = append(links, Link{Title: text, URL: href})
		}
		return len(links) < maxLinks
	})
	return links, nil
}
