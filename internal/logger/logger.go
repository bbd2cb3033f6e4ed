// Package logger provides the colored slog handler used by every component of the bot.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

const componentKey = "component"

var (
	debugColor = color.New(color.FgHiBlack)
	infoColor  = color.New(color.FgHiWhite)
	warnColor  = color.New(color.FgHiYellow)
	errorColor = color.New(color.FgHiRed)

	componentColors = map[string]*color.Color{
		"DATABASE":   color.New(color.FgHiBlack),
		"HTTP":       color.New(color.FgHiCyan),
		"REMINDER":   color.New(color.FgHiMagenta),
		"SYNC":       color.New(color.FgHiBlue),
		"SCHEDULER":  color.New(color.FgHiGreen),
		"SUBSCRIBE":  color.New(color.FgCyan),
		"COMMAND":    color.New(color.FgHiCyan),
		"MODAL":      color.New(color.FgHiCyan),
		"COMPONENTS": color.New(color.FgHiCyan),
	}
)

type Options struct {
	Debug  bool
	Silent bool
}

// New builds a logger writing "15:04:05 [LEVEL] [COMPONENT] message key=value" lines to w.
func New(w io.Writer, opts Options) *slog.Logger {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	return slog.New(NewHandler(w, &HandlerOptions{Level: level, Silent: opts.Silent}))
}

// Init installs a stdout logger as the slog default and returns it.
func Init(opts Options) *slog.Logger {
	l := New(os.Stdout, opts)
	slog.SetDefault(l)
	return l
}

// Component returns l tagged with a component name, which selects the line color.
func Component(l *slog.Logger, name string) *slog.Logger {
	return l.With(slog.String(componentKey, name))
}

type HandlerOptions struct {
	Level  slog.Leveler
	Silent bool
}

type Handler struct {
	w     io.Writer
	opts  *HandlerOptions
	mu    *sync.Mutex
	attrs []slog.Attr
	group string
}

func NewHandler(w io.Writer, opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{Level: slog.LevelInfo}
	}
	if opts.Level == nil {
		opts.Level = slog.LevelInfo
	}
	return &Handler{w: w, opts: opts, mu: &sync.Mutex{}}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	if h.opts.Silent {
		return false
	}
	return level >= h.opts.Level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	if h.opts.Silent {
		return nil
	}

	levelStr, levelColor := levelTag(r.Level)

	component := ""
	var extra []string
	collect := func(a slog.Attr) bool {
		if a.Key == componentKey {
			component = strings.ToUpper(a.Value.String())
			return true
		}
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		extra = append(extra, fmt.Sprintf("%s=%v", key, a.Value.Any()))
		return true
	}
	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(collect)

	msg := r.Message
	if len(extra) > 0 {
		msg += " " + strings.Join(extra, " ")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	fmt.Fprint(h.w, ts.Format("15:04:05"))

	if component == "" {
		_, err := fmt.Fprintf(h.w, " %s\n", levelColor.Sprintf("[%s] %s", levelStr, msg))
		return err
	}

	if levelStr != "INFO" {
		fmt.Fprintf(h.w, " %s", levelColor.Sprintf("[%s]", levelStr))
	}
	compColor, ok := componentColors[component]
	if !ok {
		compColor = infoColor
	}
	_, err := fmt.Fprintf(h.w, " %s\n", compColor.Sprintf("[%s] %s", component, msg))
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	clone := *h
	if clone.group != "" {
		name = clone.group + "." + name
	}
	clone.group = name
	return &clone
}

func levelTag(level slog.Level) (string, *color.Color) {
	switch {
	case level >= slog.LevelError:
		return "ERROR", errorColor
	case level >= slog.LevelWarn:
		return "WARN", warnColor
	case level >= slog.LevelInfo:
		return "INFO", infoColor
	default:
		return "DEBUG", debugColor
	}
}
