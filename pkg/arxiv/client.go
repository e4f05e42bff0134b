package arxiv

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/mmcdole/gofeed"
)

// DefaultBaseURL is the arXiv API query endpoint, the API speaks Atom
const DefaultBaseURL = "https://export.arxiv.org/api/query"

// Paper is a single arXiv result. Records are ephemeral, built per poll
// cycle and discarded after the dedup check.
type Paper struct {
	ID         string // bare identifier, e.g. 2101.00001v1
	Title      string
	Summary    string
	Authors    []string
	Link       string
	Updated    time.Time
	Annotation string // "<category>: <query>", assigned by the caller
}

// Request describes a single category/query search
type Request struct {
	Category   string
	Query      string
	SortBy     string // relevance, lastUpdatedDate or submittedDate
	MaxResults int
}

// Client queries the arXiv API
type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewClient creates an arXiv API client. Empty baseURL uses the public
// endpoint.
func NewClient(baseURL string, timeout time.Duration, userAgent string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL:   baseURL,
		userAgent: userAgent,
	}
}

// Search fetches up to req.MaxResults papers for the category/query pair,
// ordered by the requested sort criterion. Transient fetch failures are
// retried with backoff before giving up.
func (c *Client) Search(ctx context.Context, req Request) ([]Paper, error) {
	query := url.Values{}
	query.Set("search_query", fmt.Sprintf("cat:%s AND all:%s", req.Category, req.Query))
	query.Set("sortBy", req.SortBy)
	query.Set("sortOrder", "descending")
	query.Set("start", "0")
	query.Set("max_results", strconv.Itoa(req.MaxResults))
	reqURL := c.baseURL + "?" + query.Encode()

	var body []byte
	retrier := repeater.NewBackoff(3, 500*time.Millisecond, repeater.WithMaxDelay(3*time.Second))
	err := retrier.Do(ctx, func() error {
		var ferr error
		body, ferr = c.fetch(ctx, reqURL)
		return ferr
	})
	if err != nil {
		return nil, fmt.Errorf("fetch arxiv results: %w", err)
	}

	feed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse arxiv feed: %w", err)
	}

	papers := make([]Paper, 0, len(feed.Items))
	for _, item := range feed.Items {
		papers = append(papers, itemToPaper(item))
	}
	return papers, nil
}

// fetch retrieves the raw Atom response
func (c *Client) fetch(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// itemToPaper converts an Atom entry to a Paper
func itemToPaper(item *gofeed.Item) Paper {
	p := Paper{
		Title:   item.Title,
		Summary: item.Description,
		Link:    item.Link,
	}
	if p.Summary == "" {
		p.Summary = item.Content
	}

	// entry id looks like https://arxiv.org/abs/2101.00001v1, the bare
	// identifier is the last path segment
	guid := item.GUID
	if guid == "" {
		guid = item.Link
	}
	if i := strings.LastIndex(guid, "/"); i >= 0 {
		p.ID = guid[i+1:]
	} else {
		p.ID = guid
	}

	// prefer the pdf link when present
	for _, l := range item.Links {
		if strings.Contains(l, "/pdf/") {
			p.Link = l
			break
		}
	}

	for _, a := range item.Authors {
		if a != nil && a.Name != "" {
			p.Authors = append(p.Authors, a.Name)
		}
	}

	if item.UpdatedParsed != nil {
		p.Updated = *item.UpdatedParsed
	} else if item.PublishedParsed != nil {
		p.Updated = *item.PublishedParsed
	}
	return p
}
