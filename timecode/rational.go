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

	"github.com/shopspring/decimal"
)

// Round selects how a Rational is snapped to an integer.
type Round int

const (
	// RoundClosest rounds half away from zero: 1/2 -> 1, -1/2 -> -1.
	RoundClosest Round = iota
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundCeil rounds toward positive infinity.
	RoundCeil
	// RoundOff (aka "trunc") truncates toward zero. In contexts that
	// require an integer result (frame counts, ticks, feet-and-frames,
	// either slot of DivRem/Rem) RoundOff is rejected with
	// ErrInvalidArgument.
	RoundOff
	// RoundUp rounds away from zero.
	RoundUp
)

// Rational is an exact ratio of arbitrary-precision integers, always
// normalized: gcd(num, denom) = 1 and denom > 0.
type Rational struct {
	r *big.Rat
}

// RationalZero is the additive identity.
var RationalZero = NewRationalInt(0)

// NewRationalInt builds a Rational from a single integer.
func NewRationalInt(n int64) Rational {
	return Rational{r: new(big.Rat).SetInt64(n)}
}

// NewRationalBigInt builds a Rational from an arbitrary-precision integer.
func NewRationalBigInt(n *big.Int) Rational {
	return Rational{r: new(big.Rat).SetInt(n)}
}

// NewRational builds a Rational from a numerator and denominator, which
// are normalized on construction. Fails with ErrDivisionByZero if denom
// is zero.
func NewRational(num, denom int64) (Rational, error) {
	if denom == 0 {
		return Rational{}, errDivisionByZero("vtc: new rational")
	}
	return Rational{r: new(big.Rat).SetFrac64(num, denom)}, nil
}

// NewRationalBig builds a Rational from arbitrary-precision num/denom.
func NewRationalBig(num, denom *big.Int) (Rational, error) {
	if denom.Sign() == 0 {
		return Rational{}, errDivisionByZero("vtc: new rational")
	}
	return Rational{r: new(big.Rat).SetFrac(num, denom)}, nil
}

// RationalFromDecimalString parses an exact decimal string ("23.976",
// "-0.5", "1001") into a Rational. Unlike a binary float64 parse, this
// preserves the caller's decimal intent exactly: 0.1 is stored as 1/10,
// not as the nearest IEEE-754 double.
func RationalFromDecimalString(s string) (Rational, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rational{}, errUnrecognizedFormat("vtc: parsing decimal \"" + s + "\"")
	}
	return rationalFromDecimal(d), nil
}

// RationalFromFloat converts f to a Rational via its shortest decimal
// representation rather than its raw binary bit pattern, so that 23.98
// becomes exactly 2398/100 rather than the nearest double to 23.98.
func RationalFromFloat(f float64) Rational {
	d := decimal.NewFromFloat(f)
	return rationalFromDecimal(d)
}

func rationalFromDecimal(d decimal.Decimal) Rational {
	coeff := d.Coefficient()
	exp := d.Exponent()
	num := new(big.Int).Set(coeff)
	denom := big.NewInt(1)
	if exp >= 0 {
		pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
		num.Mul(num, pow)
	} else {
		denom = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-exp)), nil)
	}
	r, _ := NewRationalBig(num, denom)
	return r
}

// IsZero reports whether r is exactly zero.
func (r Rational) IsZero() bool {
	return r.ratOrZero().Sign() == 0
}

// Sign returns -1, 0 or 1.
func (r Rational) Sign() int {
	return r.ratOrZero().Sign()
}

func (r Rational) ratOrZero() *big.Rat {
	if r.r == nil {
		return new(big.Rat)
	}
	return r.r
}

// Num and Denom return the normalized numerator and denominator.
func (r Rational) Num() *big.Int   { return r.ratOrZero().Num() }
func (r Rational) Denom() *big.Int { return r.ratOrZero().Denom() }

// Add returns r + other.
func (r Rational) Add(other Rational) Rational {
	return Rational{r: new(big.Rat).Add(r.ratOrZero(), other.ratOrZero())}
}

// Sub returns r - other.
func (r Rational) Sub(other Rational) Rational {
	return Rational{r: new(big.Rat).Sub(r.ratOrZero(), other.ratOrZero())}
}

// Mul returns r * other.
func (r Rational) Mul(other Rational) Rational {
	return Rational{r: new(big.Rat).Mul(r.ratOrZero(), other.ratOrZero())}
}

// Quo returns r / other. Fails with ErrDivisionByZero if other is zero.
func (r Rational) Quo(other Rational) (Rational, error) {
	if other.IsZero() {
		return Rational{}, errDivisionByZero("vtc: rational division")
	}
	return Rational{r: new(big.Rat).Quo(r.ratOrZero(), other.ratOrZero())}, nil
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{r: new(big.Rat).Neg(r.ratOrZero())}
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	return Rational{r: new(big.Rat).Abs(r.ratOrZero())}
}

// Cmp returns -1, 0 or 1 as r is less than, equal to, or greater than other.
func (r Rational) Cmp(other Rational) int {
	return r.ratOrZero().Cmp(other.ratOrZero())
}

// Equal reports whether r and other are numerically equal.
func (r Rational) Equal(other Rational) bool {
	return r.Cmp(other) == 0
}

// Float64 returns the nearest float64 approximation of r.
func (r Rational) Float64() float64 {
	f, _ := r.ratOrZero().Float64()
	return f
}

// String renders r as "num/denom" (or "num" when denom is 1).
func (r Rational) String() string {
	rat := r.ratOrZero()
	if rat.IsInt() {
		return rat.Num().String()
	}
	return rat.RatString()
}

// DecimalString renders r as a decimal with exactly prec fractional
// digits (the last digit rounded, halves away from zero); trailing
// zeros are kept.
func (r Rational) DecimalString(prec int) string {
	rat := r.ratOrZero()
	return rat.FloatString(prec)
}

// Round rounds r to the nearest integer using mode. RoundOff returns the
// truncated integer (discarding the fraction) just like the other modes;
// callers that must preserve a non-aligned fractional value should test
// IsZero() on the DivRem remainder instead of calling Round with RoundOff.
func (r Rational) Round(mode Round) *big.Int {
	q, rem := r.quoRem()
	return roundQuoRem(q, rem, r.Denom(), mode)
}

// quoRem returns the truncated (toward zero) integer quotient of r and
// the signed remainder numerator implied by r - quo, both against a
// common denominator of r.Denom().
func (r Rational) quoRem() (*big.Int, *big.Int) {
	num := r.Num()
	denom := r.Denom()
	q := new(big.Int)
	rem := new(big.Int)
	q.QuoRem(num, denom, rem)
	return q, rem
}

// roundQuoRem applies a rounding mode to a truncated quotient/remainder
// pair (as produced by big.Int.QuoRem, so rem shares num's sign and
// |rem| < denom).
func roundQuoRem(q, rem, denom *big.Int, mode Round) *big.Int {
	result := new(big.Int).Set(q)
	if rem.Sign() == 0 {
		return result
	}
	switch mode {
	case RoundOff:
		return result
	case RoundFloor:
		if rem.Sign() < 0 {
			result.Sub(result, big.NewInt(1))
		}
		return result
	case RoundCeil:
		if rem.Sign() > 0 {
			result.Add(result, big.NewInt(1))
		}
		return result
	case RoundUp:
		if rem.Sign() > 0 {
			result.Add(result, big.NewInt(1))
		} else {
			result.Sub(result, big.NewInt(1))
		}
		return result
	default: // RoundClosest: half away from zero, ties via exact comparison
		twice := new(big.Int).Mul(rem, big.NewInt(2))
		twice.Abs(twice)
		cmp := twice.Cmp(denom)
		if cmp > 0 || (cmp == 0) {
			if rem.Sign() > 0 {
				result.Add(result, big.NewInt(1))
			} else {
				result.Sub(result, big.NewInt(1))
			}
		}
		return result
	}
}

// DivRem divides r by divisor and returns (quotient, remainder) such
// that quotient = Round(r/divisor, mode) and remainder = r - quotient*divisor
// exactly. Fails with ErrDivisionByZero if divisor is zero.
func (r Rational) DivRem(divisor Rational, mode Round) (*big.Int, Rational, error) {
	if divisor.IsZero() {
		return nil, Rational{}, errDivisionByZero("vtc: rational divrem")
	}
	quoRat, err := r.Quo(divisor)
	if err != nil {
		return nil, Rational{}, err
	}
	q := quoRat.Round(mode)
	qRat := NewRationalBigInt(q)
	rem := r.Sub(qRat.Mul(divisor))
	return q, rem, nil
}
