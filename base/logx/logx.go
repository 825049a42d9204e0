// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package logx provides leveled, colored terminal logging on top of the
standard library [log/slog] package. Libraries in this module log
through the slog default logger; applications can install the logx
handler to get readable colored output and a single user-facing
verbosity knob.
*/
package logx

import (
	"log/slog"
	"os"
)

// UserLevel is the verbosity level that the user has selected for
// the application. It is used by [Handler.Enabled] when no explicit
// level is configured in the handler options. Defaults to [slog.LevelInfo].
var UserLevel = slog.LevelInfo

// SetDefaultLogger installs a [Handler] writing to [os.Stderr] as the
// slog default logger. Applications typically call this once at startup,
// after setting [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, nil)))
}
