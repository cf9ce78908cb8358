// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Wrench Mod Tools

package wad

import (
	"io"
	"log/slog"
)

// discardLogger is used whenever an options struct's Logger field is nil, so
// call sites never need a separate nil check.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// loggerOrDiscard returns l, or a no-op logger if l is nil.
func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return discardLogger
	}

	return l
}
