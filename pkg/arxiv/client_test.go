package arxiv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>ArXiv Query: search_query=cat:cs.AI AND all:transformers</title>
  <entry>
    <id>http://arxiv.org/abs/2101.00001v1</id>
    <updated>2021-01-02T10:00:00Z</updated>
    <published>2021-01-01T10:00:00Z</published>
    <title>Attention Variants Revisited</title>
    <summary>We revisit attention variants and show they are all the same.</summary>
    <author><name>Alice Smith</name></author>
    <author><name>Bob Jones</name></author>
    <link href="http://arxiv.org/abs/2101.00001v1" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/2101.00001v1" rel="related" type="application/pdf"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2101.00002v3</id>
    <published>2021-01-03T10:00:00Z</published>
    <title>Second Paper</title>
    <summary>Another abstract.</summary>
    <author><name>Carol White</name></author>
    <link href="http://arxiv.org/abs/2101.00002v3" rel="alternate" type="text/html"/>
  </entry>
</feed>`

func TestClient_Search(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "arxivbot/test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/atom+xml")
		_, err := w.Write([]byte(testFeed))
		require.NoError(t, err)
	}))
	defer ts.Close()

	client := NewClient(ts.URL, time.Second, "arxivbot/test")
	papers, err := client.Search(context.Background(), Request{
		Category:   "cs.AI",
		Query:      "transformers",
		SortBy:     "relevance",
		MaxResults: 3,
	})
	require.NoError(t, err)
	require.Len(t, papers, 2)

	assert.Contains(t, gotQuery, "search_query=cat%3Acs.AI+AND+all%3Atransformers")
	assert.Contains(t, gotQuery, "sortBy=relevance")
	assert.Contains(t, gotQuery, "sortOrder=descending")
	assert.Contains(t, gotQuery, "max_results=3")

	first := papers[0]
	assert.Equal(t, "2101.00001v1", first.ID)
	assert.Equal(t, "Attention Variants Revisited", first.Title)
	assert.Equal(t, "We revisit attention variants and show they are all the same.", first.Summary)
	assert.Equal(t, []string{"Alice Smith", "Bob Jones"}, first.Authors)
	assert.Equal(t, "http://arxiv.org/pdf/2101.00001v1", first.Link, "pdf link preferred")
	assert.Equal(t, time.Date(2021, 1, 2, 10, 0, 0, 0, time.UTC), first.Updated.UTC())

	second := papers[1]
	assert.Equal(t, "2101.00002v3", second.ID)
	assert.Equal(t, "http://arxiv.org/abs/2101.00002v3", second.Link, "no pdf link, alternate kept")
	assert.Equal(t, time.Date(2021, 1, 3, 10, 0, 0, 0, time.UTC), second.Updated.UTC(), "published used when updated absent")
}

func TestClient_SearchFailed(t *testing.T) {
	t.Run("server error retried then reported", func(t *testing.T) {
		attempts := 0
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			attempts++
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		client := NewClient(ts.URL, time.Second, "arxivbot/test")
		_, err := client.Search(context.Background(), Request{Category: "cs.AI", Query: "q", SortBy: "relevance", MaxResults: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch arxiv results")
		assert.Equal(t, 3, attempts)
	})

	t.Run("bad feed body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("this is not atom"))
		}))
		defer ts.Close()

		client := NewClient(ts.URL, time.Second, "arxivbot/test")
		_, err := client.Search(context.Background(), Request{Category: "cs.AI", Query: "q", SortBy: "relevance", MaxResults: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse arxiv feed")
	})
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	client := NewClient("", time.Second, "ua")
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}
