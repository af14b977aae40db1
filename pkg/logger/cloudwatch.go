package logger

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"
)

// CloudWatchHandler implements slog.Handler, emitting one JSON object per
// line on stdout so CloudWatch Logs can index the level and message fields.
type CloudWatchHandler struct {
	level slog.Level
}

func NewCloudWatchHandler(level slog.Level) slog.Handler {
	return &CloudWatchHandler{level: level}
}

func (h *CloudWatchHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

func (h *CloudWatchHandler) Handle(_ context.Context, r slog.Record) error {
	event := map[string]any{
		"level":   r.Level.String(),
		"message": r.Message,
		"time":    r.Time.Format(time.RFC3339Nano),
	}

	if r.NumAttrs() > 0 {
		data := make(map[string]any)
		r.Attrs(func(a slog.Attr) bool {
			data[a.Key] = a.Value.Any()
			return true
		})
		event["data"] = data
	}

	b, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(append(b, '\n'))
	return err
}

func (h *CloudWatchHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := *h
	return &withAttrsHandler{handler: &newH, attrs: attrs}
}

func (h *CloudWatchHandler) WithGroup(_ string) slog.Handler {
	// flat format, groups not supported
	return h
}

// wrapper that injects static attrs
type withAttrsHandler struct {
	handler *CloudWatchHandler
	attrs   []slog.Attr
}

func (h *withAttrsHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.handler.Enabled(ctx, l)
}

func (h *withAttrsHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, a := range h.attrs {
		r.AddAttrs(a)
	}
	return h.handler.Handle(ctx, r)
}

func (h *withAttrsHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	all := append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &withAttrsHandler{handler: h.handler, attrs: all}
}

func (h *withAttrsHandler) WithGroup(name string) slog.Handler {
	return h
}
