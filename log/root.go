// Copyright 2019 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package log

import (
	"context"
	"os"
	"sync/atomic"

	"golang.org/x/exp/slog"
)

// Lvl mirrors go-ethereum's five-level severity scale.
type Lvl int

const (
	LvlCrit Lvl = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

func (l Lvl) slogLevel() slog.Level {
	switch l {
	case LvlCrit, LvlError:
		return slog.LevelError
	case LvlWarn:
		return slog.LevelWarn
	case LvlInfo:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Logger writes structured key/value records, the same surface
// core/vm uses throughout the teacher ("msg", "key", val, ...).
type Logger interface {
	Trace(msg string, ctx ...any)
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
	Crit(msg string, ctx ...any)
	With(ctx ...any) Logger
}

type logger struct {
	inner *slog.Logger
}

func (l *logger) Trace(msg string, ctx ...any) { l.inner.Debug(msg, ctx...) }
func (l *logger) Debug(msg string, ctx ...any) { l.inner.Debug(msg, ctx...) }
func (l *logger) Info(msg string, ctx ...any)  { l.inner.Info(msg, ctx...) }
func (l *logger) Warn(msg string, ctx ...any)  { l.inner.Warn(msg, ctx...) }
func (l *logger) Error(msg string, ctx ...any) { l.inner.Error(msg, ctx...) }
func (l *logger) Crit(msg string, ctx ...any) {
	l.inner.Error(msg, ctx...)
	os.Exit(1)
}
func (l *logger) With(ctx ...any) Logger {
	return &logger{inner: l.inner.With(ctx...)}
}

// New returns a Logger writing text-handler records to stderr at the
// given level, in the teacher's terminal-handler style.
func New(lvl Lvl) Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl.slogLevel()})
	return &logger{inner: slog.New(h)}
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	var l Logger = &logger{inner: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))}
	defaultLogger.Store(&l)
}

// SetDefault installs l as the package-level logger used by the
// top-level Trace/Debug/Info/Warn/Error/Crit functions below.
func SetDefault(l Logger) {
	defaultLogger.Store(&l)
}

// SetLevel adjusts the package-level logger's minimum severity, wired to
// the CLI's --verbosity flag the same way cmd/geth wires it.
func SetLevel(lvl Lvl) {
	SetDefault(New(lvl))
}

func root() Logger { return *defaultLogger.Load() }

// Root returns the package-level default Logger, mirroring go-ethereum's
// log.Root().
func Root() Logger { return root() }

func Trace(msg string, ctx ...any) { root().Trace(msg, ctx...) }
func Debug(msg string, ctx ...any) { root().Debug(msg, ctx...) }
func Info(msg string, ctx ...any)  { root().Info(msg, ctx...) }
func Warn(msg string, ctx ...any)  { root().Warn(msg, ctx...) }
func Error(msg string, ctx ...any) { root().Error(msg, ctx...) }
func Crit(msg string, ctx ...any)  { root().Crit(msg, ctx...) }

// NewContext attaches a logger to ctx, for call paths (e.g. the CLI
// command handlers) that thread a context.Context through.
func NewContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

type ctxKey struct{}

// FromContext retrieves a logger previously attached with NewContext,
// falling back to the package-level default.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(ctxKey{}).(Logger); ok {
		return l
	}
	return root()
}
