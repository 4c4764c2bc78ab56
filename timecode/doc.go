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

// SMPTE ST 12-1-2014
// SMPTE ST 331-2011, value 81h
//
// see also
// http://andrewduncan.net/timecodes/
// http://www.bodenzord.com/archives/79
//
// TODO
// - support the SMPTE 24h bit in SMPTEWord/SectionsFromSMPTEWord

// Package timecode provides exact rational-number primitives for SMPTE
// timecode, NTSC/drop-frame framerates, film feet-and-frames, Adobe
// Premiere ticks and real-world runtime strings.
//
// Every point in time is stored as an exact ratio of arbitrary-precision
// integers (Rational) anchored to a validated Framerate, so arithmetic
// never drifts the way a float64 seconds count would over long
// timelines. Timestamp is the core value type; Framerate and Rational
// are usually only constructed directly when building a Timestamp or a
// custom edit rate.
//
// Parsing is exposed two ways: pinned entry points (ParseTimecode,
// ParseRuntime, ParseFeetAndFrames) for callers who already know their
// input's shape, and a unified WithFrames/WithSeconds pair taking a
// tagged Input value for callers who don't.
package timecode // import "trimmer.io/vtc/timecode"
