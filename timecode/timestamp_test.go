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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithFramesAndScenarioOne(t *testing.T) {
	ts, err := WithFrames(Frames(86400), NTSC23_976)
	require.NoError(t, err)
	assert.Equal(t, int64(86400), ts.FramesClosest())
	assert.Equal(t, "01:00:00:00", ts.TimecodeClosest())
	assert.Equal(t, "01:00:03.6", ts.RuntimeDefault())
	ticks, err := ts.PremiereTicks(RoundClosest)
	require.NoError(t, err)
	assert.Equal(t, int64(915372057600000), ticks)
	ff, err := ts.FeetAndFrames(FF35mm4Perf, RoundClosest)
	require.NoError(t, err)
	assert.Equal(t, "5400+00", ff.String())
}

func TestWithFramesStringForms(t *testing.T) {
	ts, err := WithFrames(TimecodeString("01:00:00:00"), NTSC23_976)
	require.NoError(t, err)
	assert.Equal(t, int64(86400), ts.FramesClosest())

	ts, err = WithFrames(Timecode("01:00:00:00"), NTSC23_976)
	require.NoError(t, err)
	assert.Equal(t, int64(86400), ts.FramesClosest())

	ts, err = WithFrames(FeetFrames{S: "5400+00"}, NTSC23_976)
	require.NoError(t, err)
	assert.Equal(t, int64(86400), ts.FramesClosest())
}

func TestWithSecondsRounding(t *testing.T) {
	_, err := WithSeconds(SecondsFloat(3.6), NTSC23_976, WithRound(RoundOff))
	assert.Error(t, err, "non-aligned seconds with RoundOff must fail without allow_partial_frames")

	ts, err := WithSeconds(SecondsFloat(3.6), NTSC23_976, WithRound(RoundOff), WithAllowPartialFrames(true))
	require.NoError(t, err)
	want, _ := NewRational(18, 5)
	assert.True(t, ts.RawSeconds().Equal(want))

	ts, err = WithSeconds(SecondsFloat(3.6), NTSC23_976)
	require.NoError(t, err)
	assert.Equal(t, int64(86), ts.FramesClosest())
}

func TestCompareAndOrdering(t *testing.T) {
	a := newFrameAlignedTimestamp(10, Film24)
	b := newFrameAlignedTimestamp(20, Film24)
	assert.Equal(t, -1, Compare(a, b))
	assert.Equal(t, 1, Compare(b, a))
	assert.Equal(t, 0, Compare(a, a))
	assert.True(t, Lt(a, b))
	assert.True(t, Lte(a, a))
	assert.True(t, Gt(b, a))
	assert.True(t, Gte(b, b))
	assert.True(t, Eq(a, a))
	assert.True(t, a.Equal(a))
}

func TestAddSubSymmetry(t *testing.T) {
	a := newFrameAlignedTimestamp(24, Film24)
	b := newFrameAlignedTimestamp(10, Film24)

	sum := AddClosest(a, b)
	assert.Equal(t, int64(34), sum.FramesClosest())

	back := SubClosest(sum, b)
	assert.Equal(t, a.FramesClosest(), back.FramesClosest())

	diff := SubClosest(a, b)
	assert.Equal(t, int64(14), diff.FramesClosest())
}

func TestNegateInvolution(t *testing.T) {
	a := newFrameAlignedTimestamp(48, Film24)
	assert.Equal(t, a.FramesClosest(), a.Negate().Negate().FramesClosest())
	assert.Equal(t, int64(-48), a.Negate().FramesClosest())
	assert.Equal(t, int64(48), a.Negate().Abs().FramesClosest())
}

func TestMultIdentity(t *testing.T) {
	a := newFrameAlignedTimestamp(48, Film24)
	product, err := Mult(a, IntScalar(1), RoundClosest)
	require.NoError(t, err)
	assert.Equal(t, a.FramesClosest(), product.FramesClosest())

	doubled, err := Mult(a, IntScalar(2), RoundClosest)
	require.NoError(t, err)
	assert.Equal(t, int64(96), doubled.FramesClosest())
}

func TestDivRemConsistency(t *testing.T) {
	a, err := WithFrames(Timecode("01:00:00:01"), Film24)
	require.NoError(t, err)

	q, r, err := DivRem(a, IntScalar(2), RoundFloor, RoundFloor)
	require.NoError(t, err)
	assert.Equal(t, "00:30:00:00", q.TimecodeClosest())
	assert.Equal(t, "00:00:00:01", r.TimecodeClosest())

	_, _, err = DivRem(a, IntScalar(2), RoundOff, RoundFloor)
	assert.Error(t, err, "RoundOff is not allowed in divrem")

	_, _, err = DivRem(a, IntScalar(0), RoundFloor, RoundFloor)
	assert.Error(t, err)
}

func TestDivDefaultsToFloor(t *testing.T) {
	a := newFrameAlignedTimestamp(49, Film24)
	q, err := Div(a, IntScalar(2))
	require.NoError(t, err)
	assert.Equal(t, int64(24), q.FramesClosest())
}

func TestRebaseLosslessAndRate(t *testing.T) {
	a := newFrameAlignedTimestamp(48, Film24)
	b, err := Rebase(a, PAL25)
	require.NoError(t, err)
	assert.Equal(t, int64(48), b.FramesClosest())
	assert.Equal(t, PAL25, b.Rate())

	back, err := Rebase(b, Film24)
	require.NoError(t, err)
	assert.Equal(t, a.FramesClosest(), back.FramesClosest())
}

func TestFrameAlignmentInvariant(t *testing.T) {
	ts := newFrameAlignedTimestamp(123, NTSC29_97DF)
	aligned := ts.RawSeconds().Mul(ts.Rate().Playback())
	assert.True(t, isWholeRational(aligned))
}

func TestDurationRoundTrip(t *testing.T) {
	ts, err := FromDuration(time.Second, Film24)
	require.NoError(t, err)
	assert.Equal(t, int64(24), ts.FramesClosest())
	assert.Equal(t, time.Second, ts.Duration())

	ts = newFrameAlignedTimestamp(12, Film24)
	assert.Equal(t, 500*time.Millisecond, ts.Duration())
}

func TestTimestampDebugString(t *testing.T) {
	ts := newFrameAlignedTimestamp(1800, NTSC29_97DF)
	assert.Equal(t, "<00:01:00;02 <29.97 NTSC DF>>", ts.String())
}

func TestMustWithFramesPanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		MustWithFrames(TimecodeString("garbage!!"), Film24)
	})
}

func TestTimestampTextRoundTrip(t *testing.T) {
	ts := newFrameAlignedTimestamp(86400, NTSC23_976)
	text, err := ts.MarshalText()
	require.NoError(t, err)

	var back Timestamp
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, ts.FramesClosest(), back.FramesClosest())
	assert.True(t, back.Rate().Equal(NTSC23_976))
}

func TestTimestampSQLValueScan(t *testing.T) {
	ts := newFrameAlignedTimestamp(1800, NTSC29_97DF)
	v, err := ts.Value()
	require.NoError(t, err)

	var back Timestamp
	require.NoError(t, back.Scan(v))
	assert.Equal(t, ts.FramesClosest(), back.FramesClosest())
	assert.True(t, back.Rate().Equal(NTSC29_97DF))

	require.NoError(t, back.Scan(nil))
	assert.True(t, back.RawSeconds().IsZero())
}

func TestZeroAt(t *testing.T) {
	z := ZeroAt(Film24)
	assert.True(t, z.RawSeconds().IsZero())
	assert.Equal(t, "00:00:00:00", z.TimecodeClosest())
}
