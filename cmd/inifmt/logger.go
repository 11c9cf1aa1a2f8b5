// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"io"
	"strings"
	"sync"

	"zombiezen.com/go/log"
)

// logger writes log entries to w, one line per entry.
type logger struct {
	mu        sync.Mutex
	w         io.Writer
	buf       []byte
	showDebug bool
}

func (l *logger) Log(ctx context.Context, entry log.Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf = append(l.buf[:0], "inifmt: "...)
	switch {
	case entry.Level >= log.Error:
		l.buf = append(l.buf, "error: "...)
	case entry.Level >= log.Warn:
		l.buf = append(l.buf, "warning: "...)
	case entry.Level < log.Info:
		l.buf = append(l.buf, "debug: "...)
	}
	l.buf = append(l.buf, strings.TrimSuffix(entry.Msg, "\n")...)
	l.buf = append(l.buf, '\n')
	l.w.Write(l.buf)
}

func (l *logger) LogEnabled(entry log.Entry) bool {
	return l.showDebug || entry.Level >= log.Info
}
