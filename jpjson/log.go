// Copyright (c) 2024 The jpjson Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package jpjson

import "go.uber.org/zap"

// Logger is the level-filtered logging sink a Sink may expose through its
// Logger method. Implementations are expected to drop calls below their
// configured level themselves; the parser never checks LogLevel before
// calling through.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

// nopLogger discards everything. It backs BaseSink when no other Logger
// has been installed.
type nopLogger struct{}

func (nopLogger) Debug(string, ...zap.Field) {}
func (nopLogger) Info(string, ...zap.Field)  {}
func (nopLogger) Warn(string, ...zap.Field)  {}
func (nopLogger) Error(string, ...zap.Field) {}

// NopLogger returns a Logger that discards every call.
func NopLogger() Logger { return nopLogger{} }

// zapLogger adapts a *zap.Logger to Logger, filtering calls below level.
type zapLogger struct {
	level LogLevel
	z     *zap.Logger
}

// NewZapLogger builds a Logger backed by zap's structured logger, filtered
// to level. LogLevelNone returns NopLogger instead of constructing zap at
// all.
func NewZapLogger(level LogLevel) Logger {
	if level == LogLevelNone {
		return NopLogger()
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	z, err := zcfg.Build()
	if err != nil {
		return NopLogger()
	}
	return &zapLogger{level: level, z: z}
}

func (l *zapLogger) Debug(msg string, fields ...zap.Field) {
	if l.level <= LogLevelDebug {
		l.z.Debug(msg, fields...)
	}
}

func (l *zapLogger) Info(msg string, fields ...zap.Field) {
	if l.level <= LogLevelInfo {
		l.z.Info(msg, fields...)
	}
}

func (l *zapLogger) Warn(msg string, fields ...zap.Field) {
	if l.level <= LogLevelWarning {
		l.z.Warn(msg, fields...)
	}
}

func (l *zapLogger) Error(msg string, fields ...zap.Field) {
	if l.level <= LogLevelError {
		l.z.Error(msg, fields...)
	}
}
