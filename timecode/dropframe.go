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

// dropAdjustment computes the frame-count adjustment to add when
// converting a drop-frame SMPTE label to a frame count. The adjustment
// is always <= 0: dropped labels don't exist, so their absence reduces
// the frame count relative to a naive non-drop reading.
func dropAdjustment(s Sections, rate Framerate) int64 {
	dropPerMinute := rate.DropPerMinute()
	if dropPerMinute == 0 {
		return 0
	}
	totalMinutes := s.Hours*60 + s.Minutes
	tenthMinutes := totalMinutes / 10
	skipped := (totalMinutes - tenthMinutes) * dropPerMinute
	return -skipped
}

// validateDropFrameLabel rejects labels naming a dropped frame: at
// second 0 of a non-tenth minute, frame numbers below dropPerMinute
// don't exist.
func validateDropFrameLabel(s Sections, rate Framerate) error {
	dropPerMinute := rate.DropPerMinute()
	if dropPerMinute == 0 {
		return nil
	}
	if s.Seconds == 0 && s.Minutes%10 != 0 && s.Frames < dropPerMinute {
		return errBadDropFrames("vtc: validating drop-frame timecode")
	}
	return nil
}

// framesToDropSections converts a non-negative real frame count to hours/
// minutes/seconds/frames under drop-frame labeling: it inverts
// dropAdjustment by advancing labels at nominal*60 per real minute except
// that only nominal*60 - dropPerMinute frames are actually consumed on
// non-tenth minutes.
func framesToDropSections(frames int64, rate Framerate) Sections {
	nominal := rate.NominalRate()
	dropPerMinute := rate.DropPerMinute()
	framesPer10Min := nominal*600 - dropPerMinute*9

	tenMinGroups := frames / framesPer10Min
	framesRemainder := frames % framesPer10Min

	var minuteInGroup int64
	if framesRemainder < nominal*60 {
		minuteInGroup = 0
	} else {
		minuteInGroup = 1 + (framesRemainder-nominal*60)/(nominal*60-dropPerMinute)
	}

	labelFrames := frames + 9*dropPerMinute*tenMinGroups
	if minuteInGroup > 0 {
		labelFrames += dropPerMinute * minuteInGroup
	}

	totalSeconds := labelFrames / nominal
	ff := labelFrames % nominal
	hh := totalSeconds / 3600
	mm := totalSeconds / 60 % 60
	ss := totalSeconds % 60

	return Sections{Hours: hh, Minutes: mm, Seconds: ss, Frames: ff}
}

// maxFrames returns the real frame count at the 24-hour drop-frame
// wraparound label "24:00:00;00" for the given drop rate.
func maxFrames(rate Framerate) int64 {
	s := Sections{Hours: 24, Minutes: 0, Seconds: 0, Frames: 0}
	return s.ToFrames(rate)
}
