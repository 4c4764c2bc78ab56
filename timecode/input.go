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

import "math/big"

// Input is the tagged-variant input to WithSeconds/WithFrames: the
// source library dispatched on a per-type protocol (int, float,
// rational, string, and two parse-pinning wrapper types); this
// generalizes that dispatch into a sealed interface with one concrete
// type per representation.
type Input interface {
	isInput()
}

// Frames is a bare integer frame count.
type Frames int64

func (Frames) isInput() {}

// Seconds is an exact rational number of real-time seconds.
type Seconds struct{ Rational }

func (Seconds) isInput() {}

// SecondsFloat wraps a float64, converted via its decimal representation
// before use.
type SecondsFloat float64

func (SecondsFloat) isInput() {}

// Timecode pins the string entry point to the SMPTE timecode parser,
// bypassing the SMPTE-then-feet-and-frames fallback.
type Timecode string

func (Timecode) isInput() {}

// Runtime pins the string entry point to the runtime ("HH:MM:SS.fff")
// parser.
type Runtime string

func (Runtime) isInput() {}

// TimecodeString is an unpinned string: the parser tries SMPTE first,
// then feet-and-frames, unless the SMPTE attempt failed
// specifically with ErrBadDropFrames, which is a definitive rejection
// rather than an ambiguous shape.
type TimecodeString string

func (TimecodeString) isInput() {}

// FeetFrames pins the string entry point to the feet-and-frames parser,
// with an explicit film format. A zero Format means FF35mm4Perf.
type FeetFrames struct {
	S      string
	Format FilmFormat
}

func (FeetFrames) isInput() {}

// PremiereTicks is a bare Adobe Premiere tick count (254,016,000,000 per
// second).
type PremiereTicks int64

func (PremiereTicks) isInput() {}

// BigFrames is an arbitrary-precision frame count, for callers operating
// beyond int64 range.
type BigFrames struct{ N *big.Int }

func (BigFrames) isInput() {}
