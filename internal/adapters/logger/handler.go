// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/muesli/termenv"
	"go.trai.ch/tsrun/internal/ui/output"
	"go.trai.ch/tsrun/internal/ui/style"
)

// HandlerOptions configure a PrettyHandler.
type HandlerOptions struct {
	// Level is the minimum level written. It is read for every record.
	Level slog.Leveler

	// Dir is stripped from absolute paths below it, in messages and string attributes.
	Dir string
}

// PrettyHandler writes one colored entry per record. Continuation lines of multi-line
// messages, such as error chains, are indented under the level glyph.
type PrettyHandler struct {
	out    *termenv.Output
	mu     *sync.Mutex
	level  slog.Leveler
	prefix string
	attrs  []slog.Attr
	group  string
}

// NewPrettyHandler creates a handler writing to w, or to stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts.Level != nil {
		level = opts.Level
	}

	var prefix string
	if opts.Dir != "" {
		prefix = filepath.Clean(opts.Dir) + string(filepath.Separator)
	}

	return &PrettyHandler{
		out:    output.New(w),
		mu:     &sync.Mutex{},
		level:  level,
		prefix: prefix,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	glyph, color := levelStyle(r.Level)

	var b strings.Builder
	if glyph != "" {
		b.WriteString(glyph + " ")
	}
	b.WriteString(h.shorten(r.Message))

	for _, attr := range h.attrs {
		b.WriteString(" " + h.formatAttr(h.group, attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		b.WriteString(" " + h.formatAttr(h.group, attr))
		return true
	})

	entry := b.String()
	if glyph != "" {
		indent := strings.Repeat(" ", utf8.RuneCountInString(glyph)+1)
		entry = strings.ReplaceAll(entry, "\n", "\n"+indent)
	}

	styled := h.out.String(entry).Foreground(color).String()

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.WriteString(styled + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)
	return &c
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.group = name
	return &c
}

func levelStyle(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning, termenv.RGBColor(string(style.Yellow))
	case level >= slog.LevelInfo:
		return "", termenv.RGBColor(string(style.Slate))
	default:
		return style.Dot, termenv.RGBColor(string(style.Slate))
	}
}

// shorten makes absolute paths below the handler's directory relative.
func (h *PrettyHandler) shorten(s string) string {
	if h.prefix == "" {
		return s
	}
	return strings.ReplaceAll(s, h.prefix, "")
}

// formatAttr renders key=value, prefixing the key with the group and flattening nested groups.
func (h *PrettyHandler) formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}

	value := attr.Value.Resolve()
	switch value.Kind() {
	case slog.KindGroup:
		parts := make([]string, 0, len(value.Group()))
		for _, a := range value.Group() {
			parts = append(parts, h.formatAttr(key, a))
		}
		return strings.Join(parts, " ")
	case slog.KindString:
		return key + "=" + h.shorten(value.String())
	default:
		return key + "=" + value.String()
	}
}
