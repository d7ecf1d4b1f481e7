// Package diagnostics renders compiler diagnostics for terminals and logs.
package diagnostics

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/tsrun/internal/ui/style"
)

// Formatter renders diagnostics with file names relative to a working directory.
type Formatter struct {
	cwd     string
	pretty  bool
	profile termenv.Profile
}

// NewFormatter creates a formatter. Pretty output adds source context and colors from profile;
// plain output is one compiler-style line per diagnostic.
func NewFormatter(cwd string, pretty bool, profile termenv.Profile) *Formatter {
	return &Formatter{cwd: cwd, pretty: pretty, profile: profile}
}

// Format renders diags.
func (f *Formatter) Format(diags []domain.Diagnostic) string {
	var b strings.Builder
	for _, d := range diags {
		if f.pretty {
			f.writePretty(&b, d)
		} else {
			f.writePlain(&b, d)
		}
	}
	if f.pretty && len(diags) > 0 {
		b.WriteString(summary(diags))
	}
	return b.String()
}

func (f *Formatter) writePlain(b *strings.Builder, d domain.Diagnostic) {
	if d.File != "" {
		b.WriteString(f.relative(d.File))
		if d.Line > 0 {
			fmt.Fprintf(b, "(%d,%d)", d.Line, d.Column)
		}
		b.WriteString(": ")
	}
	fmt.Fprintf(b, "%s TS%d: %s\n", d.Category, d.Code, d.Message)
}

func (f *Formatter) writePretty(b *strings.Builder, d domain.Diagnostic) {
	if d.File != "" {
		loc := f.relative(d.File)
		if d.Line > 0 {
			loc += ":" + strconv.Itoa(d.Line) + ":" + strconv.Itoa(d.Column)
		}
		b.WriteString(f.paint(loc, style.Iris))
		b.WriteString(" - ")
	}
	b.WriteString(f.paint(d.Category.String(), categoryColor(d.Category)))
	b.WriteString(f.paint(" TS"+strconv.Itoa(d.Code)+": ", style.Slate))
	b.WriteString(d.Message)
	b.WriteString("\n")

	if d.LineText != "" && d.Line > 0 {
		gutter := strconv.Itoa(d.Line)
		b.WriteString("\n")
		b.WriteString(f.paint(gutter, style.Slate) + " " + d.LineText + "\n")
		pad := strings.Repeat(" ", len(gutter)+max(d.Column, 1))
		b.WriteString(pad + f.paint(style.Tilde, categoryColor(d.Category)) + "\n")
	}
	b.WriteString("\n")
}

func (f *Formatter) paint(s string, color lipgloss.Color) string {
	return f.profile.String(s).Foreground(f.profile.Color(string(color))).String()
}

func (f *Formatter) relative(path string) string {
	if f.cwd == "" {
		return path
	}
	rel, err := filepath.Rel(f.cwd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

func categoryColor(c domain.Category) lipgloss.Color {
	switch c {
	case domain.CategoryError:
		return style.Red
	case domain.CategoryWarning:
		return style.Yellow
	default:
		return style.Slate
	}
}

func summary(diags []domain.Diagnostic) string {
	errs := 0
	for _, d := range diags {
		if d.IsError() {
			errs++
		}
	}
	switch errs {
	case 0:
		return ""
	case 1:
		return "Found 1 error.\n"
	default:
		return fmt.Sprintf("Found %d errors.\n", errs)
	}
}
