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
	"fmt"
	"math/big"
	"strings"
)

// Numeric constants used throughout the formatters.
const (
	SecondsPerMinute   = 60
	SecondsPerHour     = 3600
	PPROTicksPerSecond = 254_016_000_000
)

// framesAt rounds seconds*playback to an integer using mode, returning
// the frame count. RoundOff is rejected with ErrInvalidArgument unless
// allowPartial is true, in which case the caller promises seconds is
// already frame-aligned and an exact truncation is safe.
func framesAt(op string, seconds Rational, rate Framerate, mode Round, allowPartial bool) (int64, error) {
	if mode == RoundOff && !allowPartial {
		return 0, errInvalidArgument(op, "round mode Off requires allow_partial_frames")
	}
	scaled := seconds.Mul(rate.Playback())
	return scaled.Round(mode).Int64(), nil
}

// formatTimecode renders seconds at rate as an SMPTE string, using the
// drop-frame-aware decomposition in Sections and the rate's current
// NtscKind to choose the final separator: the separator always follows
// the formatter's rate, never a separator baked in from a prior rate.
func formatTimecode(seconds Rational, rate Framerate, mode Round) (string, error) {
	const op = "vtc: formatting timecode"
	frames, err := framesAt(op, seconds, rate, mode, false)
	if err != nil {
		return "", err
	}
	s := FromFrames(frames, rate)
	sep := ":"
	if rate.IsDrop() {
		sep = ";"
	}
	sign := ""
	if s.Negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%02d:%02d:%02d%s%02d", sign, s.Hours, s.Minutes, s.Seconds, sep, s.Frames), nil
}

// RuntimeFormatOptions configures RuntimeString.
type RuntimeFormatOptions struct {
	Precision int
	TrimZeros bool
}

// DefaultRuntimeFormatOptions uses 9 fractional
// digits, trailing zeros trimmed.
func DefaultRuntimeFormatOptions() RuntimeFormatOptions {
	return RuntimeFormatOptions{Precision: 9, TrimZeros: true}
}

// formatRuntime renders seconds as "[-]HH:MM:SS[.fractional]".
func formatRuntime(seconds Rational, opts RuntimeFormatOptions) string {
	negative := seconds.Sign() < 0
	mag := seconds.Abs()

	totalWhole := new(big.Int).Quo(mag.Num(), mag.Denom())
	hh := new(big.Int).Quo(totalWhole, big.NewInt(SecondsPerHour))
	rem := new(big.Int).Rem(totalWhole, big.NewInt(SecondsPerHour))
	mm := new(big.Int).Quo(rem, big.NewInt(SecondsPerMinute))
	ss := new(big.Int).Rem(rem, big.NewInt(SecondsPerMinute))

	fracWhole := NewRationalBigInt(totalWhole)
	frac := mag.Sub(fracWhole)

	precision := opts.Precision
	if precision <= 0 {
		precision = 9
	}
	fracStr := frac.DecimalString(precision)
	// big.Rat.FloatString renders "0.xxxxxxxxx"; keep only the fraction.
	if i := strings.IndexByte(fracStr, '.'); i >= 0 {
		fracStr = fracStr[i+1:]
	} else {
		fracStr = strings.Repeat("0", precision)
	}

	if opts.TrimZeros {
		fracStr = strings.TrimRight(fracStr, "0")
		if fracStr == "" {
			fracStr = "0"
		}
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%02d:%02d:%02d.%s", sign, hh.Int64(), mm.Int64(), ss.Int64(), fracStr)
}

// formatPremiereTicks renders seconds as an Adobe Premiere tick count.
func formatPremiereTicks(seconds Rational, mode Round) (int64, error) {
	const op = "vtc: formatting premiere ticks"
	if mode == RoundOff {
		return 0, errInvalidArgument(op, "round mode Off requires an aligned tick value")
	}
	ticksPerSecond := NewRationalInt(PPROTicksPerSecond)
	scaled := seconds.Mul(ticksPerSecond)
	return scaled.Round(mode).Int64(), nil
}

// formatFeetAndFrames renders seconds as a FeetAndFrames value.
func formatFeetAndFrames(seconds Rational, rate Framerate, format FilmFormat, mode Round) (FeetAndFrames, error) {
	const op = "vtc: formatting feet and frames"
	frames, err := framesAt(op, seconds, rate, mode, false)
	if err != nil {
		return FeetAndFrames{}, err
	}
	return NewFeetAndFrames(frames, format), nil
}
