package extract

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageURL = "https://example.com/ashtanga"

var mockPage = []byte(`
<html>
  <body>
    <img src="https://example.com/uploads/2019/07/test-asana.png"
         alt="Test Asana"
         title="Test Asana Title"/>
    <img src="/uploads/2019/07/another-asana.png"
         alt="Another Asana"/>
    <img src="https://example.com/not-an-asana.png"
         alt="Not an Asana"/>
    <img alt="No source at all"/>
    <img src="https://example.com/uploads/2019/07/nameless-pose.png"/>
  </body>
</html>`)

func newExtractor(hints ...string) *Extractor {
	if len(hints) == 0 {
		hints = []string{"uploads/2019/07/"}
	}
	return &Extractor{Hints: hints, Log: zerolog.Nop()}
}

func TestFromHTML_FiltersAndNames(t *testing.T) {
	got, err := newExtractor().FromHTML(pageURL, mockPage)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// title wins over alt
	assert.Equal(t, "Test Asana Title", got[0].Name)
	assert.Equal(t, "test-asana-title", got[0].ID)
	assert.Equal(t, "https://example.com/uploads/2019/07/test-asana.png", got[0].SourceURL)

	// alt when no title; relative src resolves against the page URL
	assert.Equal(t, "Another Asana", got[1].Name)
	assert.Equal(t, "https://example.com/uploads/2019/07/another-asana.png", got[1].SourceURL)

	// filename stem when neither title nor alt
	assert.Equal(t, "nameless-pose", got[2].Name)
	assert.Equal(t, "nameless-pose", got[2].ID)
}

func TestFromHTML_HintFilterExcludesRegardlessOfAttributes(t *testing.T) {
	got, err := newExtractor().FromHTML(pageURL, mockPage)
	require.NoError(t, err)
	for _, c := range got {
		assert.Contains(t, c.SourceURL, "uploads/2019/07/")
	}
}

func TestFromHTML_MultipleHints(t *testing.T) {
	got, err := newExtractor("uploads/2019/07/", "not-an-asana").FromHTML(pageURL, mockPage)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "Not an Asana", got[2].Name)
}

func TestFromHTML_NoHintsMatchesNothing(t *testing.T) {
	got, err := newExtractor("somewhere/else/").FromHTML(pageURL, mockPage)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFromHTML_BadPageURL(t *testing.T) {
	_, err := newExtractor().FromHTML("://not a url", mockPage)
	assert.Error(t, err)
}

func TestFromHTML_StemIgnoresQueryString(t *testing.T) {
	page := []byte(`<html><body><img src="/uploads/2019/07/scaled-pose.png?w=300"/></body></html>`)
	got, err := newExtractor().FromHTML(pageURL, page)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "scaled-pose", got[0].Name)
	assert.Equal(t, "https://example.com/uploads/2019/07/scaled-pose.png?w=300", got[0].SourceURL)
}

func TestSlug(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Test Asana", "test-asana"},
		{"Test@#$Asana", "testasana"},
		{"Test_Asana_1", "test_asana_1"},
		{"  Test  Asana  ", "test-asana"},
		{"Śavāsana", "savasana"},
		{"Ūrdhva Mukha Śvānāsana", "urdhva-mukha-svanasana"},
		{"-- trim-me --", "trim-me"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Slug(c.in), "Slug(%q)", c.in)
	}
}
