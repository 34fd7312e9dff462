// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/TylerBrock/colorjson"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	// ErrMarshalAttribute is returned when an error occurs while marshaling an attribute.
	ErrMarshalAttribute = errors.New("error when marshaling attribute")
	// ErrIoWrite is returned when an error occurs while writing to the output.
	ErrIoWrite = errors.New("error when writing to output")
)

const (
	// TimeFormat is the format used for timestamps in log messages.
	TimeFormat = "[15:04:05.000]"
)

var jsonFormatter = colorjson.NewFormatter()

func init() {
	jsonFormatter.Indent = 2
	jsonFormatter.DisabledColor = !term.IsTerminal(int(os.Stderr.Fd()))
}

// styles holds the lipgloss styles used by the pretty handler, one per
// record level plus the fixed parts of the line.
type styles struct {
	Timestamp lipgloss.Style
	Message   lipgloss.Style
	Attrs     lipgloss.Style
	Debug     lipgloss.Style
	Info      lipgloss.Style
	Notice    lipgloss.Style
	Warn      lipgloss.Style
	Error     lipgloss.Style
	Fatal     lipgloss.Style
}

func newStyles() styles {
	return styles{
		Timestamp: lipgloss.NewStyle().Faint(true),
		Message:   lipgloss.NewStyle().Bold(true),
		Attrs:     lipgloss.NewStyle().Faint(true),
		Debug:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Fatal:     lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	}
}

// PrettyHandler is a custom slog handler that formats log messages to the console in a pretty way.
type PrettyHandler struct {
	h                slog.Handler
	r                func([]string, slog.Attr) slog.Attr
	b                *bytes.Buffer
	m                *sync.Mutex
	writer           io.Writer
	styles           styles
	colour           bool
	outputEmptyAttrs bool
}

// Enabled checks if the handler is enabled for the given level.
func (h *PrettyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

// WithAttrs creates a new handler with the given attributes.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PrettyHandler{
		h: h.h.WithAttrs(attrs), b: h.b, r: h.r, m: h.m,
		writer: h.writer, styles: h.styles, colour: h.colour,
	}
}

// WithGroup creates a new handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		h: h.h.WithGroup(name), b: h.b, r: h.r, m: h.m,
		writer: h.writer, styles: h.styles, colour: h.colour,
	}
}

func (h *PrettyHandler) computeAttrs(
	ctx context.Context,
	r slog.Record,
) (map[string]any, error) {
	h.m.Lock()
	defer func() {
		h.b.Reset()
		h.m.Unlock()
	}()

	if err := h.h.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any

	err := json.Unmarshal(h.b.Bytes(), &attrs)
	if err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}

	return attrs, nil
}

// render applies style to s when colour output is enabled.
func (h *PrettyHandler) render(style lipgloss.Style, s string) string {
	if !h.colour {
		return s
	}

	return style.Render(s)
}

func (h *PrettyHandler) levelStyle(level slog.Level) lipgloss.Style {
	switch {
	case level <= slog.LevelDebug:
		return h.styles.Debug
	case level <= slog.LevelInfo:
		return h.styles.Info
	case level < slog.LevelWarn:
		return h.styles.Notice
	case level < slog.LevelError:
		return h.styles.Warn
	case level <= slog.LevelError+1:
		return h.styles.Error
	default: // level > slog.LevelError+1
		return h.styles.Fatal
	}
}

// Handle implements the slog.Handler interface for PrettyHandler.
func (h *PrettyHandler) Handle(ctx context.Context, r slog.Record) error {
	var level string

	levelAttr := slog.Attr{
		Key:   slog.LevelKey,
		Value: slog.AnyValue(r.Level),
	}
	if h.r != nil {
		levelAttr = h.r([]string{}, levelAttr)
	}

	if !levelAttr.Equal(slog.Attr{}) {
		level = h.render(h.levelStyle(r.Level), levelAttr.Value.String()+":")
	}

	var timestamp string

	timeAttr := slog.Attr{
		Key:   slog.TimeKey,
		Value: slog.StringValue(r.Time.Format(TimeFormat)),
	}
	if h.r != nil {
		timeAttr = h.r([]string{}, timeAttr)
	}

	if !timeAttr.Equal(slog.Attr{}) {
		timestamp = h.render(h.styles.Timestamp, timeAttr.Value.String())
	}

	var msg string

	msgAttr := slog.Attr{
		Key:   slog.MessageKey,
		Value: slog.StringValue(r.Message),
	}
	if h.r != nil {
		msgAttr = h.r([]string{}, msgAttr)
	}

	if !msgAttr.Equal(slog.Attr{}) {
		msg = h.render(h.styles.Message, msgAttr.Value.String())
	}

	attrs, err := h.computeAttrs(ctx, r)
	if err != nil {
		return err
	}

	var attrsAsBytes []byte

	if h.outputEmptyAttrs || len(attrs) > 0 {
		attrsAsBytes, err = jsonFormatter.Marshal(attrs)
		if err != nil {
			return errors.Join(ErrMarshalAttribute, err)
		}
	}

	out := strings.Builder{}
	if len(timestamp) > 0 {
		out.WriteString(timestamp)
		out.WriteString(" ")
	}

	if len(level) > 0 {
		out.WriteString(level)
		out.WriteString(" ")
	}

	if len(msg) > 0 {
		out.WriteString(msg)
		out.WriteString(" ")
	}

	if len(attrsAsBytes) > 0 {
		out.WriteString(h.render(h.styles.Attrs, string(attrsAsBytes)))
	}

	out.WriteString("\n")

	_, err = io.WriteString(h.writer, out.String())
	if err != nil {
		return errors.Join(ErrIoWrite, err)
	}

	return nil
}

func suppressDefaults(next func([]string, slog.Attr) slog.Attr,
) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey ||
			a.Key == slog.LevelKey ||
			a.Key == slog.MessageKey {
			return slog.Attr{}
		}

		if next == nil {
			return a
		}

		return next(groups, a)
	}
}

// NewPrettyHandler creates a new PrettyHandler with the given options.
func NewPrettyHandler(handlerOptions *slog.HandlerOptions, options ...Option) *PrettyHandler {
	if handlerOptions == nil {
		handlerOptions = &slog.HandlerOptions{}
	}

	buf := &bytes.Buffer{}
	handler := &PrettyHandler{
		b: buf,
		h: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       handlerOptions.Level,
			AddSource:   handlerOptions.AddSource,
			ReplaceAttr: suppressDefaults(handlerOptions.ReplaceAttr),
		}),
		r:      handlerOptions.ReplaceAttr,
		m:      &sync.Mutex{},
		styles: newStyles(),
	}

	for _, opt := range options {
		opt(handler)
	}

	return handler
}

// Option implements a functional options pattern for PrettyHandler.
type Option func(h *PrettyHandler)

// WithDestinationWriter sets the destination writer for the PrettyHandler.
func WithDestinationWriter(writer io.Writer) Option {
	return func(h *PrettyHandler) {
		h.writer = writer
	}
}

// WithColour enables colour output for the PrettyHandler.
func WithColour() Option {
	return func(h *PrettyHandler) {
		h.colour = true
	}
}

// WithAutoColour enables colour output when stderr is a terminal, honoring
// the NO_COLOR and FORCE_COLOR environment variables.
func WithAutoColour() Option {
	return func(h *PrettyHandler) {
		if os.Getenv("FORCE_COLOR") != "" {
			h.colour = true
			return
		}

		if os.Getenv("NO_COLOR") != "" {
			h.colour = false
			return
		}

		h.colour = term.IsTerminal(int(os.Stderr.Fd()))
	}
}

// WithOutputEmptyAttrs enables output of empty attributes for the PrettyHandler.
func WithOutputEmptyAttrs() Option {
	return func(h *PrettyHandler) {
		h.outputEmptyAttrs = true
	}
}
