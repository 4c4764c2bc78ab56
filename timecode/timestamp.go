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
	"database/sql/driver"
	"strings"
	"time"
)

// Timestamp is the core value of this package: an exact rational number
// of seconds, anchored to a Framerate. Unless constructed with
// allow_partial_frames, seconds*rate.Playback() is always an integer.
//
// Equality is structural on both fields; Compare (and Eq/Lt/...) compare
// seconds only, ignoring rate.
type Timestamp struct {
	seconds Rational
	rate    Framerate
}

// tsOptions collects WithFrames/WithSeconds constructor options.
type tsOptions struct {
	round              Round
	allowPartialFrames bool
	filmFormat         FilmFormat
}

// TimestampOption configures a Timestamp constructor call.
type TimestampOption func(*tsOptions)

// WithRound selects the rounding mode used to snap a constructed value
// to a frame boundary. Default is RoundClosest.
func WithRound(r Round) TimestampOption {
	return func(o *tsOptions) { o.round = r }
}

// WithAllowPartialFrames allows WithSeconds to store an exact,
// non-frame-aligned seconds value when combined with WithRound(RoundOff).
// Without it, a non-aligned seconds value with RoundOff fails with
// ErrPartialFrame.
func WithAllowPartialFrames(allow bool) TimestampOption {
	return func(o *tsOptions) { o.allowPartialFrames = allow }
}

// WithFilmFormat selects the FilmFormat used when WithFrames parses a
// TimecodeString that falls back to feet-and-frames. Default is
// FF35mm4Perf. FeetFrames inputs use their own Format, and the
// FeetAndFrames output method takes its format as an argument.
func WithFilmFormat(f FilmFormat) TimestampOption {
	return func(o *tsOptions) { o.filmFormat = f }
}

func resolveTsOptions(opts []TimestampOption) tsOptions {
	o := tsOptions{round: RoundClosest, filmFormat: FF35mm4Perf}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// newFrameAlignedTimestamp builds a Timestamp directly from a frame
// count, which is always exactly representable as seconds = frames /
// playback.
func newFrameAlignedTimestamp(frames int64, rate Framerate) Timestamp {
	seconds, _ := NewRationalInt(frames).Quo(rate.Playback())
	return Timestamp{seconds: seconds, rate: rate}
}

// ZeroAt returns the zero-duration Timestamp at rate.
func ZeroAt(rate Framerate) Timestamp {
	return Timestamp{seconds: RationalZero, rate: rate}
}

// WithFrames builds a Timestamp from a frame count or frame-like string
// seconds = frames / playback, exactly.
func WithFrames(in Input, rate Framerate, opts ...TimestampOption) (Timestamp, error) {
	const op = "vtc: with_frames"
	o := resolveTsOptions(opts)

	switch v := in.(type) {
	case Frames:
		return newFrameAlignedTimestamp(int64(v), rate), nil
	case BigFrames:
		seconds, err := NewRationalBigInt(v.N).Quo(rate.Playback())
		if err != nil {
			return Timestamp{}, wrapError(ErrInvalidFramerate, op, err)
		}
		return Timestamp{seconds: seconds, rate: rate}, nil
	case Timecode:
		return ParseTimecode(string(v), rate)
	case TimecodeString:
		return ParseString(string(v), rate, o.filmFormat)
	case FeetFrames:
		format := v.Format
		return ParseFeetAndFrames(v.S, format, rate)
	case PremiereTicks:
		seconds := premiereTicksToSeconds(int64(v))
		return timestampFromSeconds(op, seconds, rate, o)
	default:
		return Timestamp{}, errUnrecognizedFormat(op)
	}
}

// WithSeconds builds a Timestamp from a seconds-like input:
// by default, rounds to the nearest frame boundary (RoundClosest). If
// WithAllowPartialFrames(true) and WithRound(RoundOff) are both given,
// the exact seconds value is kept even when not frame-aligned; RoundOff
// without WithAllowPartialFrames fails with ErrPartialFrame on
// non-aligned input.
func WithSeconds(in Input, rate Framerate, opts ...TimestampOption) (Timestamp, error) {
	const op = "vtc: with_seconds"
	o := resolveTsOptions(opts)

	var seconds Rational
	switch v := in.(type) {
	case Seconds:
		seconds = v.Rational
	case SecondsFloat:
		seconds = RationalFromFloat(float64(v))
	case Runtime:
		parsed, err := parseRuntimeSeconds(string(v))
		if err != nil {
			return Timestamp{}, wrapError(ErrUnrecognizedFormat, op, err)
		}
		seconds = parsed
	default:
		return Timestamp{}, errUnrecognizedFormat(op)
	}
	return timestampFromSeconds(op, seconds, rate, o)
}

// timestampFromSeconds applies the frame-alignment/rounding contract
// shared by WithSeconds and the PremiereTicks arm of WithFrames.
func timestampFromSeconds(op string, seconds Rational, rate Framerate, o tsOptions) (Timestamp, error) {
	aligned := seconds.Mul(rate.Playback())
	isAligned := isWholeRational(aligned)

	if isAligned {
		return Timestamp{seconds: seconds, rate: rate}, nil
	}

	if o.round == RoundOff {
		if !o.allowPartialFrames {
			return Timestamp{}, errPartialFrame(op)
		}
		return Timestamp{seconds: seconds, rate: rate}, nil
	}

	frames := aligned.Round(o.round)
	snapped, _ := NewRationalBigInt(frames).Quo(rate.Playback())
	return Timestamp{seconds: snapped, rate: rate}, nil
}

// MustWithFrames panics instead of returning an error.
func MustWithFrames(in Input, rate Framerate, opts ...TimestampOption) Timestamp {
	ts, err := WithFrames(in, rate, opts...)
	mustNoError(err)
	return ts
}

// MustWithSeconds panics instead of returning an error.
func MustWithSeconds(in Input, rate Framerate, opts ...TimestampOption) Timestamp {
	ts, err := WithSeconds(in, rate, opts...)
	mustNoError(err)
	return ts
}

// Rate returns the Timestamp's Framerate.
func (t Timestamp) Rate() Framerate {
	return t.rate
}

// RawSeconds returns the exact underlying rational number of seconds.
func (t Timestamp) RawSeconds() Rational {
	return t.seconds
}

// Frames returns the integer frame count, rounded using mode.
func (t Timestamp) Frames(mode Round) (int64, error) {
	return framesAt("vtc: frames", t.seconds, t.rate, mode, false)
}

// FramesClosest is Frames(RoundClosest), which never fails.
func (t Timestamp) FramesClosest() int64 {
	f, _ := t.Frames(RoundClosest)
	return f
}

// Timecode renders t as an SMPTE string using mode (default RoundClosest
// at the package level via TimecodeClosest).
func (t Timestamp) Timecode(mode Round) (string, error) {
	return formatTimecode(t.seconds, t.rate, mode)
}

// TimecodeClosest is Timecode(RoundClosest), which never fails.
func (t Timestamp) TimecodeClosest() string {
	s, _ := t.Timecode(RoundClosest)
	return s
}

// Runtime renders t as a runtime string with the given options.
func (t Timestamp) Runtime(opts RuntimeFormatOptions) string {
	return formatRuntime(t.seconds, opts)
}

// RuntimeDefault renders t with DefaultRuntimeFormatOptions().
func (t Timestamp) RuntimeDefault() string {
	return t.Runtime(DefaultRuntimeFormatOptions())
}

// PremiereTicks renders t as an Adobe Premiere tick count using mode.
func (t Timestamp) PremiereTicks(mode Round) (int64, error) {
	return formatPremiereTicks(t.seconds, mode)
}

// FeetAndFrames renders t as a FeetAndFrames value at format, using mode.
func (t Timestamp) FeetAndFrames(format FilmFormat, mode Round) (FeetAndFrames, error) {
	return formatFeetAndFrames(t.seconds, t.rate, format, mode)
}

// Compare reports -1, 0 or 1 as a's real seconds are less than, equal
// to, or greater than b's, ignoring rate.
func Compare(a, b Timestamp) int {
	return a.seconds.Cmp(b.seconds)
}

// Eq, Lt, Lte, Gt, Gte are derived from Compare.
func Eq(a, b Timestamp) bool  { return Compare(a, b) == 0 }
func Lt(a, b Timestamp) bool  { return Compare(a, b) < 0 }
func Lte(a, b Timestamp) bool { return Compare(a, b) <= 0 }
func Gt(a, b Timestamp) bool  { return Compare(a, b) > 0 }
func Gte(a, b Timestamp) bool { return Compare(a, b) >= 0 }

// Equal is a method form of Eq for convenience in table-driven tests.
func (t Timestamp) Equal(other Timestamp) bool {
	return Eq(t, other)
}

// Add returns a+b with a's rate, rounded to a frame boundary using mode.
// b's seconds are added exactly even when b is at a different rate.
func Add(a, b Timestamp, mode Round) (Timestamp, error) {
	sum := a.seconds.Add(b.seconds)
	return timestampFromSeconds("vtc: add", sum, a.rate, tsOptions{round: mode})
}

// AddClosest is Add(a, b, RoundClosest), which never fails.
func AddClosest(a, b Timestamp) Timestamp {
	ts, _ := Add(a, b, RoundClosest)
	return ts
}

// Sub returns a-b with a's rate, rounded to a frame boundary using mode.
func Sub(a, b Timestamp, mode Round) (Timestamp, error) {
	diff := a.seconds.Sub(b.seconds)
	return timestampFromSeconds("vtc: sub", diff, a.rate, tsOptions{round: mode})
}

// SubClosest is Sub(a, b, RoundClosest), which never fails.
func SubClosest(a, b Timestamp) Timestamp {
	ts, _ := Sub(a, b, RoundClosest)
	return ts
}

// Negate flips the sign of t's seconds.
func (t Timestamp) Negate() Timestamp {
	return Timestamp{seconds: t.seconds.Neg(), rate: t.rate}
}

// Abs returns the absolute value of t's seconds.
func (t Timestamp) Abs() Timestamp {
	return Timestamp{seconds: t.seconds.Abs(), rate: t.rate}
}

// Scalar is an arithmetic scalar (int64, Rational or float64-via-decimal)
// that converts itself to a Rational: a scalar may be an integer,
// rational, or (decimal-interpreted) float.
type Scalar interface {
	toRational() Rational
}

// IntScalar is a plain integer multiplier/divisor.
type IntScalar int64

func (s IntScalar) toRational() Rational { return NewRationalInt(int64(s)) }

// RationalScalar is an exact rational multiplier/divisor.
type RationalScalar struct{ Rational }

func (s RationalScalar) toRational() Rational { return s.Rational }

// FloatScalar is a float64 multiplier/divisor, converted via decimal
// representation rather than its binary bit pattern.
type FloatScalar float64

func (s FloatScalar) toRational() Rational { return RationalFromFloat(float64(s)) }

// Mult returns a*scalar, rounded to a frame boundary using mode.
func Mult(a Timestamp, scalar Scalar, mode Round) (Timestamp, error) {
	product := a.seconds.Mul(scalar.toRational())
	return timestampFromSeconds("vtc: mult", product, a.rate, tsOptions{round: mode})
}

// Div returns a/scalar. Default rounding for Div is RoundFloor (spec
// §4.7: "matches integer-division intuition"), so callers that want a
// different mode must pass it explicitly via DivRound.
func Div(a Timestamp, scalar Scalar) (Timestamp, error) {
	return DivRound(a, scalar, RoundFloor)
}

// DivRound is Div with an explicit rounding mode.
func DivRound(a Timestamp, scalar Scalar, mode Round) (Timestamp, error) {
	const op = "vtc: div"
	divisor := scalar.toRational()
	if divisor.IsZero() {
		return Timestamp{}, errDivisionByZero(op)
	}
	quotient, err := a.seconds.Quo(divisor)
	if err != nil {
		return Timestamp{}, wrapError(ErrDivisionByZero, op, err)
	}
	return timestampFromSeconds(op, quotient, a.rate, tsOptions{round: mode})
}

// DivRem returns (quotient, remainder) such that quotient is a/scalar
// rounded to a frame boundary with roundFrames and remainder is the
// leftover Timestamp at a's rate. Both rounding modes must be non-Off;
// either being RoundOff fails with ErrInvalidArgument.
func DivRem(a Timestamp, scalar Scalar, roundFrames, roundRemainder Round) (Timestamp, Timestamp, error) {
	const op = "vtc: divrem"
	if roundFrames == RoundOff || roundRemainder == RoundOff {
		return Timestamp{}, Timestamp{}, errInvalidArgument(op, "round mode Off is not allowed for divrem")
	}
	divisor := scalar.toRational()
	if divisor.IsZero() {
		return Timestamp{}, Timestamp{}, errDivisionByZero(op)
	}

	quotient, err := DivRound(a, scalar, roundFrames)
	if err != nil {
		return Timestamp{}, Timestamp{}, err
	}
	scaledBack := quotient.seconds.Mul(divisor)
	remSeconds := a.seconds.Sub(scaledBack)
	remainder, err := timestampFromSeconds(op, remSeconds, a.rate, tsOptions{round: roundRemainder})
	if err != nil {
		return Timestamp{}, Timestamp{}, err
	}
	return quotient, remainder, nil
}

// Rem returns just the remainder from DivRem.
func Rem(a Timestamp, scalar Scalar, roundFrames, roundRemainder Round) (Timestamp, error) {
	_, r, err := DivRem(a, scalar, roundFrames, roundRemainder)
	return r, err
}

// Rebase keeps t's frame count and recomputes seconds at newRate:
// seconds = frames / newRate.Playback(). This round-trips losslessly
// back to t's original rate iff no frame-count truncation occurs.
func Rebase(t Timestamp, newRate Framerate) (Timestamp, error) {
	frames, err := t.Frames(RoundClosest)
	if err != nil {
		return Timestamp{}, err
	}
	return newFrameAlignedTimestamp(frames, newRate), nil
}

// durationSecond is the number of time.Duration units (nanoseconds) in
// one second.
const durationSecond = int64(time.Second)

// FromDuration builds a frame-aligned Timestamp from a time.Duration,
// rounding to the nearest frame boundary at rate.
func FromDuration(d time.Duration, rate Framerate) (Timestamp, error) {
	seconds, err := NewRational(int64(d), durationSecond)
	if err != nil {
		return Timestamp{}, err
	}
	return timestampFromSeconds("vtc: from_duration", seconds, rate, tsOptions{round: RoundClosest})
}

// Duration converts t's exact seconds to a time.Duration, losing
// precision beyond nanoseconds.
func (t Timestamp) Duration() time.Duration {
	nanos := t.seconds.Mul(NewRationalInt(durationSecond))
	return time.Duration(nanos.Round(RoundClosest).Int64())
}

// String implements fmt.Stringer, rendering the debug form
// "<HH:MM:SS[:|;]FF <RATE_LABEL>>".
func (t Timestamp) String() string {
	tc := t.TimecodeClosest()
	return "<" + tc + " <" + t.rate.Label() + ">>"
}

// MarshalText implements encoding.TextMarshaler, rendering t as its
// SMPTE timecode string appended with its exact rate after a separating
// '@', so UnmarshalText can reconstruct t without an external rate.
func (t Timestamp) MarshalText() ([]byte, error) {
	tc, err := t.Timecode(RoundClosest)
	if err != nil {
		return nil, err
	}
	rateText, err := t.rate.MarshalText()
	if err != nil {
		return nil, err
	}
	return []byte(tc + "@" + string(rateText)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, the inverse of
// MarshalText.
func (t *Timestamp) UnmarshalText(data []byte) error {
	const op = "vtc: unmarshaling timestamp"
	s := string(data)
	idx := strings.LastIndexByte(s, '@')
	if idx < 0 {
		return errUnrecognizedFormat(op)
	}
	rate, err := ParseFramerateString(s[idx+1:])
	if err != nil {
		return err
	}
	ts, err := ParseTimecode(s[:idx], rate)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}

// Scan implements sql.Scanner, so Timestamp can be read directly from a
// database column holding the text produced by Value.
func (t *Timestamp) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = Timestamp{}
		return nil
	case string:
		return t.UnmarshalText([]byte(v))
	case []byte:
		return t.UnmarshalText(v)
	default:
		return errUnrecognizedFormat("vtc: scanning timestamp")
	}
}

// Value implements driver.Valuer, the inverse of Scan.
func (t Timestamp) Value() (driver.Value, error) {
	text, err := t.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}
