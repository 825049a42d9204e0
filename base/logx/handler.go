// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes human-readable, optionally
// colored records, one per line. It is safe for concurrent use.
type Handler struct {
	opts   slog.HandlerOptions
	out    *termenv.Output
	groups []string
	attrs  string
	mu     *sync.Mutex
	w      io.Writer
}

// NewHandler returns a new [Handler] writing to the given writer.
// If opts is nil, the handler uses [UserLevel] as its level.
func NewHandler(w io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{
		out: termenv.NewOutput(w),
		mu:  &sync.Mutex{},
		w:   w,
	}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.opts.Level != nil {
		return level >= h.opts.Level.Level()
	}
	return level >= UserLevel
}

func (h *Handler) levelTag(level slog.Level) string {
	s := fmt.Sprintf("%-5s", level.String())
	var c termenv.Color
	switch {
	case level >= slog.LevelError:
		c = termenv.ANSIRed
	case level >= slog.LevelWarn:
		c = termenv.ANSIYellow
	case level >= slog.LevelInfo:
		c = termenv.ANSIBlue
	default:
		c = termenv.ANSIBrightBlack
	}
	return h.out.String(s).Foreground(c).Bold().String()
}

func (h *Handler) appendAttr(b *strings.Builder, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if len(h.groups) > 0 {
		key = strings.Join(h.groups, ".") + "." + key
	}
	fmt.Fprintf(b, " %s=%v", h.out.String(key).Faint(), a.Value)
}

// Handle formats and writes the given record.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	b := &strings.Builder{}
	if !r.Time.IsZero() {
		b.WriteString(h.out.String(r.Time.Format("15:04:05.000")).Faint().String())
		b.WriteString(" ")
	}
	b.WriteString(h.levelTag(r.Level))
	b.WriteString(" ")
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(b, a)
		return true
	})
	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// WithAttrs returns a new handler whose records all include the given attrs.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	b := &strings.Builder{}
	b.WriteString(h.attrs)
	for _, a := range attrs {
		nh.appendAttr(b, a)
	}
	nh.attrs = b.String()
	return &nh
}

// WithGroup returns a new handler that qualifies subsequent attr keys
// with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}
