package application

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

const maxSnippetLength = 200

// MarkdownProcessingResult holds a post's content rendered to HTML and the
// plain first paragraph used in post listings.
type MarkdownProcessingResult struct {
	Snippet     string
	HTMLContent []byte
}

// MarkdownRenderer converts post content to HTML.
type MarkdownRenderer interface {
	Render(markdown []byte) (*MarkdownProcessingResult, error)
}

type MarkdownRendererImpl struct {
	renderer goldmark.Markdown
}

// NewMarkdownRenderer returns a GFM renderer. Raw HTML in content is dropped.
func NewMarkdownRenderer() MarkdownRenderer {
	renderer := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Table,
			extension.Strikethrough,
			extension.TaskList,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	return &MarkdownRendererImpl{
		renderer: renderer,
	}
}

func (r *MarkdownRendererImpl) Render(markdown []byte) (*MarkdownProcessingResult, error) {
	doc := r.renderer.Parser().Parse(text.NewReader(markdown))

	var buf bytes.Buffer
	if err := r.renderer.Renderer().Render(&buf, markdown, doc); err != nil {
		return nil, fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}

	return &MarkdownProcessingResult{
		Snippet:     extractSnippet(doc, markdown),
		HTMLContent: buf.Bytes(),
	}, nil
}

// extractSnippet returns the source of the first top-level paragraph on one
// line, cut at a word boundary when it is longer than maxSnippetLength.
func extractSnippet(doc ast.Node, source []byte) string {
	var para *ast.Paragraph
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if p, ok := n.(*ast.Paragraph); ok {
			para = p
			break
		}
	}
	if para == nil {
		return ""
	}

	lines := para.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if line := strings.TrimSpace(string(seg.Value(source))); line != "" {
			parts = append(parts, line)
		}
	}

	snippet := strings.Join(parts, " ")
	if len(snippet) <= maxSnippetLength {
		return snippet
	}

	snippet = truncateAtRune(snippet, maxSnippetLength)
	if lastSpace := strings.LastIndexAny(snippet, " \t"); lastSpace > 0 {
		snippet = snippet[:lastSpace]
	}
	return snippet + "..."
}

// truncateAtRune cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncateAtRune(s string, n int) string {
	cut := 0
	for i := range s {
		if i > n {
			break
		}
		cut = i
	}
	return s[:cut]
}
