package fetcher

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<html><head><title>Fallback Title</title>
<script>var junk = 1;</script></head>
<body>
<nav><a href="/">home</a></nav>
<article>
<h1>My Amazon SDE Interview</h1>
<p>I interviewed at Amazon last month.</p>
<p>There were four rounds in total.</p>
<ul><li>Two sum variant</li><li>Design a parking lot</li></ul>
</article>
<footer>copyright</footer>
</body></html>`

func TestExtract(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(samplePage))
	require.NoError(t, err)

	res := extract(doc)
	assert.Equal(t, "My Amazon SDE Interview", res.Title)
	assert.Contains(t, res.Content, "four rounds")
	assert.Contains(t, res.Content, "Two sum variant")
	assert.NotContains(t, res.Content, "var junk")
	assert.NotContains(t, res.Content, "home")
}

func TestExtractTitleFallback(t *testing.T) {
	page := `<html><head><title>Page Title</title></head><body><p>body text</p></body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	res := extract(doc)
	assert.Equal(t, "Page Title", res.Title)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	res, err := New().Fetch(srv.URL, "test-agent")
	require.NoError(t, err)
	assert.Equal(t, "My Amazon SDE Interview", res.Title)
	assert.Equal(t, srv.URL, res.URL)
}

func TestFetchRejectsBadScheme(t *testing.T) {
	_, err := New().Fetch("ftp://example.com/x", "ua")
	assert.Error(t, err)
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New().Fetch(srv.URL, "ua")
	assert.Error(t, err)
}
