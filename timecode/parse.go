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
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// smpteRe matches an anchored SMPTE-shaped string: optional sign, 1 to 4
// digit segments separated freely by ':' or ';'. Segments fill from the
// least-significant end: a bare "04" is 4 frames, "03:04" is
// 3 seconds 4 frames.
var smpteRe = regexp.MustCompile(`^(-)?\d+([:;]\d+){0,3}$`)

// runtimeRe matches an anchored runtime-shaped string: optional sign, 0
// to 2 leading integer segments, and a final segment that may carry a
// decimal fraction.
var runtimeRe = regexp.MustCompile(`^(-)?(\d+[:;])?(\d+[:;])?\d+(\.\d+)?$`)

// feetFramesRe matches an anchored feet-and-frames string: optional
// sign, feet, '+', frames.
var feetFramesRe = regexp.MustCompile(`^(-)?(\d+)\+(\d+)$`)

func splitSign(s string) (negative bool, rest string) {
	if strings.HasPrefix(s, "-") {
		return true, s[1:]
	}
	return false, s
}

var sectionSepRe = regexp.MustCompile(`[:;]`)

func splitSections(s string) []string {
	return sectionSepRe.Split(s, -1)
}

// ParseSMPTE parses an SMPTE timecode string ("01:00:00:00",
// "01:00:00;00") into Sections, without reference to any rate, and so
// without drop-frame validation (that requires a rate; see
// ParseTimecode).
func ParseSMPTE(s string) (Sections, error) {
	const op = "vtc: parsing smpte timecode"
	neg, rest := splitSign(s)
	if !smpteRe.MatchString(s) {
		return Sections{}, errUnrecognizedFormat(op)
	}
	parts := splitSections(rest)
	vals := make([]int64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return Sections{}, errUnrecognizedFormat(op)
		}
		vals[i] = v
	}
	var hh, mm, ss, ff int64
	idx := len(vals) - 1
	ff = vals[idx]
	idx--
	if idx >= 0 {
		ss = vals[idx]
		idx--
	}
	if idx >= 0 {
		mm = vals[idx]
		idx--
	}
	if idx >= 0 {
		hh = vals[idx]
	}
	return Sections{Negative: neg, Hours: hh, Minutes: mm, Seconds: ss, Frames: ff}, nil
}

// ParseTimecode parses an SMPTE timecode string at rate into a
// Timestamp, validating the drop-frame dropped-minute rule
// when rate is drop-frame.
func ParseTimecode(s string, rate Framerate) (Timestamp, error) {
	const op = "vtc: parsing timecode"
	sections, err := ParseSMPTE(s)
	if err != nil {
		return Timestamp{}, wrapError(ErrUnrecognizedFormat, op, err)
	}
	if err := sections.ValidateDropFrame(rate); err != nil {
		return Timestamp{}, err
	}
	frames := sections.ToFrames(rate)
	return newFrameAlignedTimestamp(frames, rate), nil
}

// ParseRuntime parses a runtime string ("01:00:03.6", "3.6") at rate
// into a Timestamp, rounding to the nearest frame boundary (RoundClosest).
func ParseRuntime(s string, rate Framerate) (Timestamp, error) {
	return ParseRuntimeRound(s, rate, RoundClosest)
}

// ParseRuntimeRound is ParseRuntime with an explicit rounding mode,
// applied when the parsed seconds value does not land exactly on a
// frame boundary.
func ParseRuntimeRound(s string, rate Framerate, round Round) (Timestamp, error) {
	const op = "vtc: parsing runtime"
	seconds, err := parseRuntimeSeconds(s)
	if err != nil {
		return Timestamp{}, wrapError(ErrUnrecognizedFormat, op, err)
	}
	return WithSeconds(Seconds{seconds}, rate, WithRound(round), WithAllowPartialFrames(true))
}

func parseRuntimeSeconds(s string) (Rational, error) {
	const op = "vtc: parsing runtime"
	neg, rest := splitSign(s)
	if !runtimeRe.MatchString(s) {
		return Rational{}, errUnrecognizedFormat(op)
	}
	parts := splitSections(rest)

	var hh, mm int64
	secIdx := len(parts) - 1
	if secIdx > 0 {
		v, err := strconv.ParseInt(parts[secIdx-1], 10, 64)
		if err != nil {
			return Rational{}, errUnrecognizedFormat(op)
		}
		mm = v
	}
	if secIdx > 1 {
		v, err := strconv.ParseInt(parts[secIdx-2], 10, 64)
		if err != nil {
			return Rational{}, errUnrecognizedFormat(op)
		}
		hh = v
	}

	secDecimal, err := decimal.NewFromString(parts[secIdx])
	if err != nil {
		return Rational{}, errUnrecognizedFormat(op)
	}
	secRat := rationalFromDecimal(secDecimal)

	total := NewRationalInt(hh * 3600).Add(NewRationalInt(mm * 60)).Add(secRat)
	if neg {
		total = total.Neg()
	}
	return total, nil
}

// ParseFeetAndFrames parses a feet-and-frames string ("5400+00") at rate
// and film format into a Timestamp.
func ParseFeetAndFrames(s string, format FilmFormat, rate Framerate) (Timestamp, error) {
	const op = "vtc: parsing feet and frames"
	ff, err := ParseFeetAndFramesValue(s, format)
	if err != nil {
		return Timestamp{}, wrapError(ErrUnrecognizedFormat, op, err)
	}
	return WithFrames(Frames(ff.ToFrames()), rate)
}

// ParseString is the unified string entry point for frame-like inputs
// it attempts SMPTE first, then feet-and-frames, unless the
// SMPTE attempt failed specifically with ErrBadDropFrames — a definitive
// rejection rather than an ambiguous shape that should fall through.
func ParseString(s string, rate Framerate, format FilmFormat) (Timestamp, error) {
	const op = "vtc: parsing string"

	ts, err := ParseTimecode(s, rate)
	if err == nil {
		Logger().Debug().Str("op", op).Str("input", s).Str("matched", "smpte").Send()
		return ts, nil
	}
	if e, ok := err.(*Error); ok && e.Kind == ErrBadDropFrames {
		Logger().Debug().Str("op", op).Str("input", s).Str("matched", "smpte-rejected").Send()
		return Timestamp{}, err
	}

	ts, ffErr := ParseFeetAndFrames(s, format, rate)
	if ffErr == nil {
		Logger().Debug().Str("op", op).Str("input", s).Str("matched", "feet-and-frames").Send()
		return ts, nil
	}

	Logger().Debug().Str("op", op).Str("input", s).Str("matched", "none").Send()
	return Timestamp{}, errUnrecognizedFormat(op)
}

// ParsePremiereTicks converts a raw Adobe Premiere tick count into exact
// rational seconds.
func ParsePremiereTicks(ticks int64) Rational {
	return premiereTicksToSeconds(ticks)
}

func premiereTicksToSeconds(ticks int64) Rational {
	r, _ := NewRationalBig(big.NewInt(ticks), big.NewInt(PPROTicksPerSecond))
	return r
}
