package bot

import (
	"fmt"
	"hash/adler32"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/mbwhitestone/arxivbot/pkg/arxiv"
	"github.com/mbwhitestone/arxivbot/pkg/notify"
)

// colorRange is the Discord embed color space
const colorRange = 0xffffff

// strict policy strips any markup arXiv sneaks into abstracts
var sanitizer = bluemonday.StrictPolicy()

// Chop shortens s to at most limit runes, collapsing newlines and tabs to
// spaces first. A shortened string ends with a single ellipsis rune and is
// exactly limit runes long.
func Chop(s string, limit int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return ChopMultiline(s, limit)
}

// ChopMultiline is Chop without the whitespace collapse. A zero or
// negative limit hides the text entirely.
func ChopMultiline(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

// AnnotationColor derives a stable display color from the paper annotation,
// so the same category/query pair always renders the same
func AnnotationColor(annotation string) int {
	return int(adler32.Checksum([]byte(annotation))) % colorRange
}

// RenderPaper builds the announcement embed for a paper. Field limits
// follow the platform embed limits, the summary is bounded by the
// configured length. When color is nil it is derived from the annotation.
func RenderPaper(p arxiv.Paper, summaryLen int, color *int) notify.Embed {
	col := 0
	if color != nil {
		col = *color
	} else {
		col = AnnotationColor(p.Annotation)
	}

	return notify.Embed{
		Title:       Chop(p.Title, 256),
		Description: Chop(sanitizer.Sanitize(p.Summary), summaryLen),
		URL:         Chop(p.Link, 1024),
		Timestamp:   p.Updated,
		Color:       col,
		Footer:      Chop(p.Annotation, 1024),
		Author:      Chop(strings.Join(p.Authors, ", "), 256),
	}
}

// formatPaperIDs renders the known-paper registry as an inline list
func formatPaperIDs(ids []string) string {
	return fmt.Sprintf("[%s]", strings.Join(ids, ", "))
}
