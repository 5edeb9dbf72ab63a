package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// consoleHandler renders compact single-line records for terminals:
// timestamp, padded level, message, then key=value attributes.
type consoleHandler struct {
	mu     *sync.Mutex
	out    io.Writer
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

func newConsoleHandler(out io.Writer, level slog.Leveler) slog.Handler {
	return &consoleHandler{
		mu:    &sync.Mutex{},
		out:   out,
		level: level,
	}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Time.Format("15:04:05"))
	b.WriteByte(' ')
	b.WriteString(fmt.Sprintf("%-5s", levelLabel(record.Level)))
	b.WriteByte(' ')
	b.WriteString(record.Message)

	// Stored attrs were qualified when added, record attrs get the
	// current group path.
	for _, attr := range h.attrs {
		h.appendAttr(&b, attr, nil)
	}
	record.Attrs(func(attr slog.Attr) bool {
		h.appendAttr(&b, attr, h.groups)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *consoleHandler) appendAttr(b *strings.Builder, attr slog.Attr, groups []string) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	if attr.Value.Kind() == slog.KindGroup {
		inner := groups
		if attr.Key != "" {
			inner = append(inner, attr.Key)
		}
		for _, nested := range attr.Value.Group() {
			h.appendAttr(b, nested, inner)
		}
		return
	}

	key := attr.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	value := attr.Value.String()
	if strings.ContainsAny(value, " \t") {
		value = fmt.Sprintf("%q", value)
	}
	b.WriteString(value)
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, attr := range attrs {
		if len(h.groups) > 0 {
			attr.Key = strings.Join(h.groups, ".") + "." + attr.Key
		}
		clone.attrs = append(clone.attrs, attr)
	}
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = make([]string, 0, len(h.groups)+1)
	clone.groups = append(clone.groups, h.groups...)
	clone.groups = append(clone.groups, name)
	return &clone
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
