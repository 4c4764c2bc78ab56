// Copyright (c) 2017 Alexander Eichhorn
//
// Licensed under the Apache License, Version 2.0 (the "License"): you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package timecode

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// pkgLogger is disabled by default (zerolog.Disabled level): the core is
// pure computation and stays silent unless a caller opts in.
var (
	pkgLoggerMu sync.RWMutex
	pkgLogger   = zerolog.New(io.Discard).Level(zerolog.Disabled).With().Str("pkg", "vtc").Logger()
)

// SetLogger installs l as the package-wide logger, used to trace which
// string parser matched an ambiguous input (see ParseString). Pass
// zerolog.Nop() to silence it again.
func SetLogger(l zerolog.Logger) {
	pkgLoggerMu.Lock()
	defer pkgLoggerMu.Unlock()
	pkgLogger = l
}

// Logger returns the currently installed package logger.
func Logger() zerolog.Logger {
	pkgLoggerMu.RLock()
	defer pkgLoggerMu.RUnlock()
	return pkgLogger
}
