package logger

import (
	"context"
	"fmt"
	"go/build"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
)

// RequestIDFunc extracts the request id carried by ctx, or "" when there is none.
type RequestIDFunc func(ctx context.Context) string

// ParseLevel maps LOG_LEVEL values onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return lvl, nil
}

// New builds a logger writing text or json records to w. File paths in the source
// attribute are trimmed of rootPath (or GOPATH) and the request id found in the
// record's context is attached as request_id.
func New(w io.Writer, lvl slog.Level, format, rootPath string, requestID RequestIDFunc) (*slog.Logger, error) {
	ho := slog.HandlerOptions{
		Level: lvl,
	}

	var h slog.Handler
	switch format {
	case "json":
		h = slog.NewJSONHandler(w, &ho)
	case "text", "":
		h = slog.NewTextHandler(w, &ho)
	default:
		return nil, fmt.Errorf("log format must be json or text, got %q", format)
	}

	gopath := os.Getenv("GOPATH")
	if gopath == "" {
		gopath = build.Default.GOPATH
	}

	return slog.New(&handler{
		baseHandler: h,
		rootPath:    strings.TrimSuffix(rootPath, "/") + "/",
		goPath:      strings.TrimSuffix(gopath, "/") + "/",
		requestID:   requestID,
	}), nil
}

type handler struct {
	baseHandler slog.Handler
	rootPath    string
	goPath      string
	requestID   RequestIDFunc
}

func (e *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return e.baseHandler.Enabled(ctx, level)
}

func (e *handler) Handle(ctx context.Context, record slog.Record) error {
	record = record.Clone()

	if record.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{record.PC})
		f, _ := fs.Next()
		record.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: f.Function,
			File:     e.trimPath(f.File),
			Line:     f.Line,
		}))
	}

	if e.requestID != nil && ctx != nil {
		if id := e.requestID(ctx); id != "" {
			record.AddAttrs(slog.String("request_id", id))
		}
	}

	return e.baseHandler.Handle(ctx, record)
}

func (e *handler) trimPath(file string) string {
	if strings.HasPrefix(file, e.rootPath) {
		return file[len(e.rootPath):]
	}
	if strings.HasPrefix(file, e.goPath) {
		return file[len(e.goPath):]
	}
	return file
}

func (e *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *e
	c.baseHandler = e.baseHandler.WithAttrs(attrs)
	return &c
}

func (e *handler) WithGroup(name string) slog.Handler {
	c := *e
	c.baseHandler = e.baseHandler.WithGroup(name)
	return &c
}
