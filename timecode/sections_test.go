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

	"github.com/stretchr/testify/assert"
)

func TestSectionsToFramesNonDrop(t *testing.T) {
	cases := []struct {
		id     string
		s      Sections
		rate   Framerate
		frames int64
	}{
		{"zero", FromLabel(0, 0, 0, 0, false), Film24, 0},
		{"one-frame", FromLabel(0, 0, 0, 1, false), Film24, 1},
		{"one-second", FromLabel(0, 0, 1, 0, false), Film24, 24},
		{"one-minute", FromLabel(0, 1, 0, 0, false), Film24, 1440},
		{"one-hour", FromLabel(1, 0, 0, 0, false), Film24, 86400},
		{"negative", FromLabel(0, 0, 0, 1, true), Film24, -1},
	}
	for _, c := range cases {
		got := c.s.ToFrames(c.rate)
		assert.Equal(t, c.frames, got, c.id)
	}
}

func TestSectionsRoundTripNonDrop(t *testing.T) {
	for _, frames := range []int64{0, 1, 23, 24, 1440, 86399, 86400, 12345} {
		s := FromFrames(frames, Film24)
		got := s.ToFrames(Film24)
		assert.Equal(t, frames, got, "frames=%d", frames)
	}
}

func TestSectionsDropFrameAdjustment(t *testing.T) {
	// Scenario from spec worked examples: 00:01:00;02 is the first legal
	// label after the drop at the top of minute 1.
	s := FromLabel(0, 1, 0, 2, false)
	frames := s.ToFrames(NTSC29_97DF)
	assert.Equal(t, int64(1800), frames)

	// 00:10:00;00 is untouched: tenth minutes are never dropped.
	s = FromLabel(0, 10, 0, 0, false)
	frames = s.ToFrames(NTSC29_97DF)
	assert.Equal(t, int64(17982), frames)
}

func TestSectionsValidateDropFrame(t *testing.T) {
	bad := FromLabel(0, 1, 0, 0, false)
	assert.Error(t, bad.ValidateDropFrame(NTSC29_97DF))

	bad = FromLabel(0, 1, 0, 1, false)
	assert.Error(t, bad.ValidateDropFrame(NTSC29_97DF))

	good := FromLabel(0, 1, 0, 2, false)
	assert.NoError(t, good.ValidateDropFrame(NTSC29_97DF))

	tenth := FromLabel(0, 10, 0, 0, false)
	assert.NoError(t, tenth.ValidateDropFrame(NTSC29_97DF))

	assert.NoError(t, bad.ValidateDropFrame(Film24), "non-drop rates never reject a label")
}

func TestSectionsDropFrameRoundTrip(t *testing.T) {
	labels := []Sections{
		FromLabel(0, 0, 0, 0, false),
		FromLabel(0, 0, 0, 29, false),
		FromLabel(0, 1, 0, 2, false),
		FromLabel(0, 9, 59, 29, false),
		FromLabel(0, 10, 0, 0, false),
		FromLabel(1, 0, 0, 0, false),
	}
	for _, want := range labels {
		frames := want.ToFrames(NTSC29_97DF)
		got := FromFrames(frames, NTSC29_97DF)
		assert.Equal(t, want, got, "label=%+v frames=%d", want, frames)
	}
}

func TestMaxFrames24HourWraparound(t *testing.T) {
	total := MaxFrames(NTSC29_97DF)
	assert.Equal(t, int64(2589408), total)

	s := FromFrames(total, NTSC29_97DF)
	assert.Equal(t, Sections{Hours: 24, Minutes: 0, Seconds: 0, Frames: 0}, s)
}

func TestSectionsNormalize(t *testing.T) {
	s := Sections{Seconds: 120}
	got := s.Normalize(30)
	assert.Equal(t, Sections{Minutes: 2}, got)

	s = Sections{Frames: 59}
	got = s.Normalize(30)
	assert.Equal(t, Sections{Seconds: 1, Frames: 29}, got)
}

func TestSMPTEWordRoundTrip(t *testing.T) {
	s := FromLabel(1, 2, 3, 4, false)
	word := s.SMPTEWord(Film24)
	assert.False(t, IsDropBitSet(word))

	got := SectionsFromSMPTEWord(word)
	assert.Equal(t, s.Hours, got.Hours)
	assert.Equal(t, s.Minutes, got.Minutes)
	assert.Equal(t, s.Seconds, got.Seconds)
	assert.Equal(t, s.Frames, got.Frames)

	dfWord := s.SMPTEWord(NTSC29_97DF)
	assert.True(t, IsDropBitSet(dfWord))
}
