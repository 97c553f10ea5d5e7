// Package htmltomarkdown renders located content blocks as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/fwojciec/newsprint"
)

// Ensure Formatter implements newsprint.ContentFormatter at compile time.
var _ newsprint.ContentFormatter = (*Formatter)(nil)

// Formatter wraps html-to-markdown to render a record's content block
// as Markdown.
type Formatter struct {
	conv *converter.Converter
}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Formatter{conv: conv}
}

// Format transforms the content block HTML into Markdown.
func (f *Formatter) Format(contentHTML string) (string, error) {
	if strings.TrimSpace(contentHTML) == "" {
		return "", newsprint.Errorf(newsprint.EINVALID, "Empty content block.")
	}

	result, err := f.conv.ConvertString(contentHTML)
	if err != nil {
		return "", err
	}

	return result, nil
}
