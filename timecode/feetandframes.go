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
	"strconv"
)

// FilmFormat enumerates the film gauges/perforation layouts whose
// frames-per-foot differ.
type FilmFormat int

const (
	// FF35mm4Perf is 35mm 4-perforation film: 16 frames per foot. This is
	// the default film format.
	FF35mm4Perf FilmFormat = iota
	// FF35mm2Perf is 35mm 2-perforation film: 32 frames per foot.
	FF35mm2Perf
	// FF16mm is 16mm film: 40 frames per foot.
	FF16mm
)

// FramesPerFoot returns the number of frames in one foot of film for f.
func (f FilmFormat) FramesPerFoot() int64 {
	switch f {
	case FF35mm2Perf:
		return 32
	case FF16mm:
		return 40
	default:
		return 16
	}
}

func (f FilmFormat) String() string {
	switch f {
	case FF35mm2Perf:
		return "35mm-2perf"
	case FF16mm:
		return "16mm"
	default:
		return "35mm-4perf"
	}
}

// FeetAndFrames is a film-length value: feet and frames share the same
// sign.
type FeetAndFrames struct {
	Feet   int64
	Frames int64
	Format FilmFormat
}

// NewFeetAndFrames builds a FeetAndFrames from a total (possibly
// negative) frame count, carrying overflow into feet.
func NewFeetAndFrames(totalFrames int64, format FilmFormat) FeetAndFrames {
	perFoot := format.FramesPerFoot()
	negative := totalFrames < 0
	mag := totalFrames
	if negative {
		mag = -mag
	}
	feet := mag / perFoot
	frames := mag % perFoot
	if negative {
		feet = -feet
		frames = -frames
	}
	return FeetAndFrames{Feet: feet, Frames: frames, Format: format}
}

// ToFrames returns the total signed frame count represented by ff.
func (ff FeetAndFrames) ToFrames() int64 {
	perFoot := ff.Format.FramesPerFoot()
	total := ff.Feet*perFoot + ff.Frames
	return total
}

// String renders ff as "[-]FEET+FF", zero-padding the frames component
// to two digits and prepending '-' for negative values (feet and frames
// magnitudes share the sign).
func (ff FeetAndFrames) String() string {
	feet := ff.Feet
	frames := ff.Frames
	negative := feet < 0 || frames < 0
	if feet < 0 {
		feet = -feet
	}
	if frames < 0 {
		frames = -frames
	}
	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%d+%02d", sign, feet, frames)
}

// ffOptions collects ParseFeetAndFramesValue's options.
type ffOptions struct {
	carryOverflow bool
}

// FeetAndFramesOption configures ParseFeetAndFramesValue.
type FeetAndFramesOption func(*ffOptions)

// WithOverflowCarry makes ParseFeetAndFramesValue accept a frames
// component equal to or above format's FramesPerFoot(), carrying the
// overflow into Feet via NewFeetAndFrames instead of rejecting the
// string outright. Off by default.
func WithOverflowCarry() FeetAndFramesOption {
	return func(o *ffOptions) { o.carryOverflow = true }
}

// ParseFeetAndFramesValue parses a feet-and-frames string ("5400+00",
// "-12+05") into a FeetAndFrames. By default the frames component must
// be less than format's FramesPerFoot(); values equal to or above it are
// rejected as unrecognized rather than silently carried into feet, since
// a well-formed string never produces that shape. Pass WithOverflowCarry
// to accept such strings and re-normalize the overflow into Feet
// instead.
func ParseFeetAndFramesValue(s string, format FilmFormat, opts ...FeetAndFramesOption) (FeetAndFrames, error) {
	const op = "vtc: parsing feet and frames"
	var o ffOptions
	for _, opt := range opts {
		opt(&o)
	}

	m := feetFramesRe.FindStringSubmatch(s)
	if m == nil {
		return FeetAndFrames{}, errUnrecognizedFormat(op)
	}
	negative := m[1] == "-"
	feet, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return FeetAndFrames{}, errUnrecognizedFormat(op)
	}
	frames, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return FeetAndFrames{}, errUnrecognizedFormat(op)
	}

	perFoot := format.FramesPerFoot()
	if frames >= perFoot {
		if !o.carryOverflow {
			return FeetAndFrames{}, errUnrecognizedFormat(op)
		}
		total := feet*perFoot + frames
		if negative {
			total = -total
		}
		return NewFeetAndFrames(total, format), nil
	}

	if negative {
		feet = -feet
		frames = -frames
	}
	return FeetAndFrames{Feet: feet, Frames: frames, Format: format}, nil
}
