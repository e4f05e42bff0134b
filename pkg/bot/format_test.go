package bot

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mbwhitestone/arxivbot/pkg/arxiv"
	"github.com/mbwhitestone/arxivbot/pkg/notify"
)

func TestChop(t *testing.T) {
	t.Run("short string unchanged", func(t *testing.T) {
		assert.Equal(t, "short", Chop("short", 1024))
	})

	t.Run("exactly at limit unchanged", func(t *testing.T) {
		s := strings.Repeat("a", 1024)
		assert.Equal(t, s, Chop(s, 1024))
	})

	t.Run("long string chopped with ellipsis", func(t *testing.T) {
		got := Chop(strings.Repeat("a", 2000), 1024)
		runes := []rune(got)
		assert.Len(t, runes, 1024)
		assert.Equal(t, '…', runes[1023])
	})

	t.Run("newlines and tabs collapsed", func(t *testing.T) {
		assert.Equal(t, "a b c d", Chop("a\nb\tc\nd", 1024))
	})

	t.Run("multibyte runes counted, not bytes", func(t *testing.T) {
		got := Chop(strings.Repeat("日", 100), 10)
		assert.Len(t, []rune(got), 10)
	})

	t.Run("zero limit hides the text", func(t *testing.T) {
		assert.Equal(t, "", Chop("some abstract", 0))
		assert.Equal(t, "", Chop("", 0))
	})

	t.Run("limit of one is a bare ellipsis", func(t *testing.T) {
		assert.Equal(t, "…", Chop("some abstract", 1))
	})
}

func TestChopMultiline(t *testing.T) {
	s := "line one\nline two\nline three"
	assert.Equal(t, s, ChopMultiline(s, 1024), "newlines preserved when under limit")

	got := ChopMultiline(s, 10)
	assert.Len(t, []rune(got), 10)
	assert.Equal(t, "line one\n…", got)
}

func TestAnnotationColor(t *testing.T) {
	c1 := AnnotationColor("cs.AI: transformers")
	c2 := AnnotationColor("cs.AI: transformers")
	c3 := AnnotationColor("cs.AI: attention")

	assert.Equal(t, c1, c2, "same annotation, same color")
	assert.NotEqual(t, c1, c3)
	assert.GreaterOrEqual(t, c1, 0)
	assert.Less(t, c1, 0xffffff)
}

func TestRenderPaper(t *testing.T) {
	paper := arxiv.Paper{
		ID:         "2101.00001v1",
		Title:      "Attention Variants Revisited",
		Summary:    "We <b>revisit</b> attention\nvariants.",
		Authors:    []string{"Alice Smith", "Bob Jones"},
		Link:       "http://arxiv.org/pdf/2101.00001v1",
		Updated:    time.Date(2021, 1, 2, 10, 0, 0, 0, time.UTC),
		Annotation: "cs.AI: transformers",
	}

	t.Run("derived color", func(t *testing.T) {
		e := RenderPaper(paper, 1024, nil)
		assert.Equal(t, "Attention Variants Revisited", e.Title)
		assert.Equal(t, "We revisit attention variants.", e.Description, "markup stripped, newlines collapsed")
		assert.Equal(t, "http://arxiv.org/pdf/2101.00001v1", e.URL)
		assert.Equal(t, "cs.AI: transformers", e.Footer)
		assert.Equal(t, "Alice Smith, Bob Jones", e.Author)
		assert.Equal(t, paper.Updated, e.Timestamp)
		assert.Equal(t, AnnotationColor(paper.Annotation), e.Color)
	})

	t.Run("fixed color", func(t *testing.T) {
		color := 0xff0000
		e := RenderPaper(paper, 1024, &color)
		assert.Equal(t, 0xff0000, e.Color)
	})

	t.Run("summary bounded by configured length", func(t *testing.T) {
		p := paper
		p.Summary = strings.Repeat("x", 600)
		e := RenderPaper(p, 512, nil)
		assert.Len(t, []rune(e.Description), 512)
	})

	t.Run("zero summary length drops the description", func(t *testing.T) {
		var e notify.Embed
		assert.NotPanics(t, func() { e = RenderPaper(paper, 0, nil) })
		assert.Equal(t, "", e.Description)
		assert.Equal(t, "Attention Variants Revisited", e.Title, "other fields unaffected")
	})
}

func TestFormatPaperIDs(t *testing.T) {
	assert.Equal(t, "[]", formatPaperIDs(nil))
	assert.Equal(t, "[2101.00001v1]", formatPaperIDs([]string{"2101.00001v1"}))
	assert.Equal(t, "[a, b, c]", formatPaperIDs([]string{"a", "b", "c"}))
}
