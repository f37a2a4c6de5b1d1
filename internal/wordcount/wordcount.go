// Package wordcount computes prose word counts from markdown source.
package wordcount

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Counter counts the words of markdown documents using goldmark AST parsing,
// so formatting marks, link targets, and table plumbing do not inflate the
// number a writer sees.
type Counter struct {
	parser goldmark.Markdown
}

// NewCounter creates a new Counter.
func NewCounter() *Counter {
	return &Counter{
		parser: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

// Count parses content as markdown and returns the number of words in its
// visible text. Empty or whitespace-only content counts as zero.
func (c *Counter) Count(content string) int {
	if strings.TrimSpace(content) == "" {
		return 0
	}

	source := []byte(content)
	reader := text.NewReader(source)
	doc := c.parser.Parser().Parse(reader)

	var builder strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			segment := node.Segment
			builder.Write(segment.Value(source))
			builder.WriteByte(' ')
		case *ast.String:
			builder.Write(node.Value)
			builder.WriteByte(' ')
		case *ast.CodeBlock:
			writeBlockLines(&builder, node, source)
		case *ast.FencedCodeBlock:
			writeBlockLines(&builder, node, source)
		}
		return ast.WalkContinue, nil
	})

	return len(strings.Fields(builder.String()))
}

// writeBlockLines appends the raw lines of a code block; goldmark does not
// expose them as child text nodes.
func writeBlockLines(builder *strings.Builder, node ast.Node, source []byte) {
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		builder.Write(line.Value(source))
	}
	builder.WriteByte(' ')
}
