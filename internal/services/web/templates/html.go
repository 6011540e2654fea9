package templates

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// html accumulates markup and keeps the first write error.
type html struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTML(ctx context.Context, w io.Writer) *html {
	return &html{ctx: ctx, w: w}
}

func (h *html) raw(parts ...string) {
	for _, part := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, part)
	}
}

func (h *html) text(value string) {
	h.raw(templ.EscapeString(value))
}

// open writes a start tag. attrs alternate name and value; an attribute whose
// name ends in "?" is written bare when its value is non-empty.
func (h *html) open(tag string, attrs ...string) {
	h.raw("<", tag)
	h.attrs(attrs...)
	h.raw(">")
}

func (h *html) void(tag string, attrs ...string) {
	h.open(tag, attrs...)
}

func (h *html) close(tag string) {
	h.raw("</", tag, ">")
}

// el writes a complete element with escaped text content.
func (h *html) el(tag string, content string, attrs ...string) {
	h.open(tag, attrs...)
	h.text(content)
	h.close(tag)
}

func (h *html) attrs(attrs ...string) {
	for idx := 0; idx+1 < len(attrs); idx += 2 {
		name, value := attrs[idx], attrs[idx+1]
		if flag, ok := strings.CutSuffix(name, "?"); ok {
			if value != "" {
				h.raw(" ", flag)
			}
			continue
		}
		h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
	}
}

func (h *html) component(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

func (h *html) children() {
	h.component(templ.GetChildren(h.ctx))
}

// safeURL sanitizes a link target the way templ does for href attributes.
func safeURL(raw string) string {
	return string(templ.URL(raw))
}

func flag(on bool) string {
	if on {
		return "true"
	}
	return ""
}

func itoa(value int) string {
	return strconv.Itoa(value)
}

func ftoa(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func component(render func(h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		render(h)
		return h.err
	})
}
