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
	"strconv"
	"strings"
)

// NtscKind distinguishes whole/arbitrary rates from the two NTSC
// fractional labeling conventions.
type NtscKind int

const (
	// NtscNone is a true whole or arbitrary rational rate.
	NtscNone NtscKind = iota
	// NtscNonDrop is an NTSC-fractional rate (playback * 1000/1001) using
	// non-drop SMPTE labeling.
	NtscNonDrop
	// NtscDrop is an NTSC-fractional rate using drop-frame SMPTE labeling.
	// Only legal when the nominal rate is a multiple of 30.
	NtscDrop
)

func (k NtscKind) String() string {
	switch k {
	case NtscNonDrop:
		return "NDF"
	case NtscDrop:
		return "DF"
	default:
		return "None"
	}
}

var (
	ratio1000 = NewRationalInt(1000)
	ratio1001 = NewRationalInt(1001)
	// ntscFactor is the 1000/1001 scalar applied to a nominal whole rate
	// to derive its NTSC-fractional playback rate.
	ntscFactor = mustRatio(ratio1000, ratio1001)
	// ntscInverse inverts ntscFactor, used to recover the nominal rate.
	ntscInverse = mustRatio(ratio1001, ratio1000)
)

func mustRatio(a, b Rational) Rational {
	r, err := a.Quo(b)
	mustNoError(err)
	return r
}

// Framerate is a validated playback rate: an exact rational number of
// frames per second of real time, tagged with its NTSC labeling
// convention.
type Framerate struct {
	playback Rational
	ntsc     NtscKind
}

// frOptions collects the Framerate constructor options.
type frOptions struct {
	ntsc       NtscKind
	coerceNtsc bool
}

// FramerateOption configures a Framerate constructor call.
type FramerateOption func(*frOptions)

// WithNTSC tags the constructed rate with the given NtscKind. Default is
// NtscNone.
func WithNTSC(k NtscKind) FramerateOption {
	return func(o *frOptions) { o.ntsc = k }
}

// WithCoerceNTSC, combined with WithNTSC(NtscNonDrop|NtscDrop), multiplies
// a whole-number input by 1000/1001 before validation (non-whole inputs
// are validated as given), so callers can write NewFramerateInt(24, WithNTSC(NtscNonDrop),
// WithCoerceNTSC()) instead of supplying 24000/1001 by hand.
func WithCoerceNTSC() FramerateOption {
	return func(o *frOptions) { o.coerceNtsc = true }
}

func resolveOptions(opts []FramerateOption) frOptions {
	var o frOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewFramerate builds a Framerate from an exact playback rational,
// validating its invariants.
func NewFramerate(playback Rational, opts ...FramerateOption) (Framerate, error) {
	const op = "vtc: new framerate"
	o := resolveOptions(opts)

	if playback.Sign() <= 0 {
		return Framerate{}, errInvalidFramerate(op, "playback rate must be positive")
	}

	if o.ntsc != NtscNone && o.coerceNtsc && isWholeRational(playback) {
		playback = playback.Mul(ntscFactor)
	}

	if o.ntsc != NtscNone {
		nominal, ok := nominalRateOf(playback)
		if !ok {
			return Framerate{}, errInvalidFramerate(op,
				"ntsc rate must equal N*1000/1001 for some positive integer N")
		}
		if o.ntsc == NtscDrop {
			n := new(big.Int).Mod(nominal, big.NewInt(30))
			if n.Sign() != 0 {
				return Framerate{}, errDropFrameNotAllowed(op)
			}
		}
	}

	return Framerate{playback: playback, ntsc: o.ntsc}, nil
}

// NewFramerateInt builds a Framerate from a whole-number rate.
func NewFramerateInt(n int64, opts ...FramerateOption) (Framerate, error) {
	return NewFramerate(NewRationalInt(n), opts...)
}

// NewFramerateRatio builds a Framerate from an explicit numerator and
// denominator.
func NewFramerateRatio(num, denom int64, opts ...FramerateOption) (Framerate, error) {
	r, err := NewRational(num, denom)
	if err != nil {
		return Framerate{}, err
	}
	return NewFramerate(r, opts...)
}

// NewFramerateDecimalString builds a Framerate from an exact decimal
// string such as "23.976" or "29.97".
func NewFramerateDecimalString(s string, opts ...FramerateOption) (Framerate, error) {
	r, err := RationalFromDecimalString(s)
	if err != nil {
		return Framerate{}, err
	}
	return NewFramerate(r, opts...)
}

// NewFramerateFloat builds a Framerate from a float64, converted via its
// decimal representation rather than its raw binary bit pattern.
func NewFramerateFloat(f float64, opts ...FramerateOption) (Framerate, error) {
	return NewFramerate(RationalFromFloat(f), opts...)
}

// MustNewFramerate panics instead of returning an error. Prefer
// NewFramerate in library code; this exists for pre-validated call sites
// (package-level rate tables, tests).
func MustNewFramerate(playback Rational, opts ...FramerateOption) Framerate {
	r, err := NewFramerate(playback, opts...)
	mustNoError(err)
	return r
}

// isWholeRational reports whether r has denominator 1.
func isWholeRational(r Rational) bool {
	return r.Denom().Cmp(big.NewInt(1)) == 0
}

// nominalRateOf returns N such that playback == N*1000/1001, and whether
// playback is exactly of that shape.
func nominalRateOf(playback Rational) (*big.Int, bool) {
	n := playback.Mul(ntscInverse)
	if !isWholeRational(n) {
		return nil, false
	}
	if n.Sign() <= 0 {
		return nil, false
	}
	return n.Num(), true
}

// Playback returns the exact seconds-per-second playback scalar.
func (r Framerate) Playback() Rational {
	return r.playback
}

// NTSC returns the rate's NtscKind.
func (r Framerate) NTSC() NtscKind {
	return r.ntsc
}

// IsDrop reports whether the rate uses drop-frame labeling.
func (r Framerate) IsDrop() bool {
	return r.ntsc == NtscDrop
}

// IsNtsc reports whether the rate is NTSC-fractional (drop or non-drop).
func (r Framerate) IsNtsc() bool {
	return r.ntsc != NtscNone
}

// Timebase returns the integer frames-per-second label used when
// formatting SMPTE strings (e.g. 24 for 23.976, 30 for 29.97).
func (r Framerate) Timebase() int64 {
	return r.playback.Round(RoundClosest).Int64()
}

// SmpteTimebase is an alias for Timebase: the source library exposed two
// helpers computing the same value.
func (r Framerate) SmpteTimebase() int64 {
	return r.Timebase()
}

// NominalRate returns N for NTSC rates (playback == N*1000/1001), or the
// Timebase for non-NTSC rates.
func (r Framerate) NominalRate() int64 {
	if r.ntsc == NtscNone {
		return r.Timebase()
	}
	n, _ := nominalRateOf(r.playback)
	return n.Int64()
}

// FrameDuration returns the real-time duration of one frame at this rate.
func (r Framerate) FrameDuration() Rational {
	one, _ := NewRational(1, 1)
	d, _ := one.Quo(r.playback)
	return d
}

// DropPerMinute returns the number of frame labels skipped at the top of
// each non-tenth minute, for drop-frame rates (2 for 30-family, 4 for
// 60-family). Zero for non-drop rates.
func (r Framerate) DropPerMinute() int64 {
	if r.ntsc != NtscDrop {
		return 0
	}
	return r.NominalRate() / 15
}

// Label renders the rate's display label as used in Timestamp's debug
// String(), e.g. "23.98 NTSC", "29.97 NTSC DF", "29.97 NTSC NDF", "24".
// The DF/NDF suffix only appears for 30/60-family rates, where drop-frame
// is a legal competing labeling choice; 24/48-family NTSC rates (drop
// never legal) render bare "NTSC" with no suffix.
func (r Framerate) Label() string {
	f := r.playback.Float64()
	switch r.ntsc {
	case NtscDrop:
		return fmt.Sprintf("%.2f NTSC DF", f)
	case NtscNonDrop:
		if r.NominalRate()%30 == 0 {
			return fmt.Sprintf("%.2f NTSC NDF", f)
		}
		return fmt.Sprintf("%.2f NTSC", f)
	default:
		s := r.playback.DecimalString(2)
		return trimTrailingZeros(s)
	}
}

func trimTrailingZeros(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i--
	}
	return s[:i]
}

// Equal reports whether two rates have identical playback and NTSC kind.
func (r Framerate) Equal(other Framerate) bool {
	return r.ntsc == other.ntsc && r.playback.Equal(other.playback)
}

// String implements fmt.Stringer.
func (r Framerate) String() string {
	return r.Label()
}

// RationalString renders r's playback rate as "num/den", exact and
// independent of NtscKind.
func (r Framerate) RationalString() string {
	return r.playback.Num().String() + "/" + r.playback.Denom().String()
}

// MarshalText implements encoding.TextMarshaler, rendering r as an exact
// "num/den[:ndf|:df]" string that UnmarshalText inverts losslessly.
func (r Framerate) MarshalText() ([]byte, error) {
	s := r.RationalString()
	switch r.ntsc {
	case NtscNonDrop:
		s += ":ndf"
	case NtscDrop:
		s += ":df"
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, the inverse of
// MarshalText.
func (r *Framerate) UnmarshalText(data []byte) error {
	parsed, err := ParseFramerateString(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseFramerateString parses the "num/den[:ndf|:df]" form produced by
// Framerate.MarshalText.
func ParseFramerateString(s string) (Framerate, error) {
	const op = "vtc: parsing framerate"
	ntsc := NtscNone
	body := s
	if idx := strings.LastIndexByte(s, ':'); idx >= 0 {
		switch s[idx+1:] {
		case "ndf":
			ntsc = NtscNonDrop
			body = s[:idx]
		case "df":
			ntsc = NtscDrop
			body = s[:idx]
		}
	}
	fields := strings.Split(body, "/")
	if len(fields) != 2 {
		return Framerate{}, errUnrecognizedFormat(op)
	}
	num, errNum := strconv.ParseInt(fields[0], 10, 64)
	den, errDen := strconv.ParseInt(fields[1], 10, 64)
	if errNum != nil || errDen != nil {
		return Framerate{}, errUnrecognizedFormat(op)
	}
	playback, err := NewRational(num, den)
	if err != nil {
		return Framerate{}, err
	}
	if ntsc == NtscNone {
		return NewFramerate(playback)
	}
	return NewFramerate(playback, WithNTSC(ntsc))
}
