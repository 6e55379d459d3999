package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/mehil/internal/deadline"
	"github.com/alexanderramin/mehil/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ExportFormat selects the agenda export rendering.
type ExportFormat string

const (
	ExportMarkdown ExportFormat = "md"
	ExportHTML     ExportFormat = "html"
)

var ErrUnknownExportFormat = errors.New("unknown export format")

// ParseExportFormat accepts md, markdown or html.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "md", "markdown":
		return ExportMarkdown, nil
	case "html":
		return ExportHTML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownExportFormat, s)
	}
}

var markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

func writeAgenda(w io.Writer, entries []*domain.SavedDeadline, format ExportFormat) error {
	md := renderAgendaMarkdown(entries)
	switch format {
	case ExportMarkdown:
		_, err := io.WriteString(w, md)
		return err
	case ExportHTML:
		var buf bytes.Buffer
		if err := markdownRenderer.Convert([]byte(md), &buf); err != nil {
			return fmt.Errorf("rendering agenda html: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownExportFormat, string(format))
	}
}

func renderAgendaMarkdown(entries []*domain.SavedDeadline) string {
	var b strings.Builder
	b.WriteString("# Süre Ajandası\n\n")
	if len(entries) == 0 {
		b.WriteString("_Kayıtlı süre yok._\n")
		return b.String()
	}

	b.WriteString("| ID | Başlık | Tebliğ Tarihi | Süre | Son Gün | Adli Tatil |\n")
	b.WriteString("|----|--------|---------------|------|---------|------------|\n")
	for _, e := range entries {
		recess := "Hayır"
		if e.RecessTriggered {
			recess = "Evet"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			e.DisplayID(),
			escapeCell(e.Title),
			deadline.FormatShort(e.ReferenceDate),
			deadline.FormatDuration(e.DurationValue, e.DurationUnit),
			e.DateLabel,
			recess,
		)
	}
	return b.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
