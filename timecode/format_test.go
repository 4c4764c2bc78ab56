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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimecode(t *testing.T) {
	ts := newFrameAlignedTimestamp(86400, NTSC23_976)
	tc, err := ts.Timecode(RoundClosest)
	require.NoError(t, err)
	assert.Equal(t, "01:00:00:00", tc)

	ts = newFrameAlignedTimestamp(1800, NTSC29_97DF)
	tc, err = ts.Timecode(RoundClosest)
	require.NoError(t, err)
	assert.Equal(t, "00:01:00;02", tc)

	neg := newFrameAlignedTimestamp(-48, Film24)
	tc, err = neg.Timecode(RoundClosest)
	require.NoError(t, err)
	assert.Equal(t, "-00:00:02:00", tc)
}

func TestFormatRuntime(t *testing.T) {
	ts := newFrameAlignedTimestamp(86400, NTSC23_976)
	s := ts.Runtime(DefaultRuntimeFormatOptions())
	assert.Equal(t, "01:00:03.6", s)

	ts = ZeroAt(Film24)
	s = ts.Runtime(DefaultRuntimeFormatOptions())
	assert.Equal(t, "00:00:00.0", s)
}

func TestFormatPremiereTicks(t *testing.T) {
	ts := newFrameAlignedTimestamp(86400, NTSC23_976)
	ticks, err := ts.PremiereTicks(RoundClosest)
	require.NoError(t, err)
	assert.Equal(t, int64(915372057600000), ticks)
}

func TestFormatFeetAndFrames(t *testing.T) {
	ts := newFrameAlignedTimestamp(86400, NTSC23_976)
	ff, err := ts.FeetAndFrames(FF35mm4Perf, RoundClosest)
	require.NoError(t, err)
	assert.Equal(t, "5400+00", ff.String())
}

func TestFramesAtRejectsBareRoundOff(t *testing.T) {
	_, err := framesAt("test", NewRationalInt(1), Film24, RoundOff, false)
	assert.Error(t, err)
}

func TestTimecodeRejectsBareRoundOff(t *testing.T) {
	ts := newFrameAlignedTimestamp(86400, NTSC23_976)
	_, err := ts.Timecode(RoundOff)
	require.Error(t, err)
	var vtcErr *Error
	require.True(t, errors.As(err, &vtcErr))
	assert.Equal(t, ErrInvalidArgument, vtcErr.Kind)
}

func TestFeetAndFramesRejectsBareRoundOff(t *testing.T) {
	ts := newFrameAlignedTimestamp(86400, NTSC23_976)
	_, err := ts.FeetAndFrames(FF35mm4Perf, RoundOff)
	require.Error(t, err)
	var vtcErr *Error
	require.True(t, errors.As(err, &vtcErr))
	assert.Equal(t, ErrInvalidArgument, vtcErr.Kind)
}
