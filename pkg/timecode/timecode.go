// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

// Package timecode SMPTE时码值，以及根据每帧时长推断帧率
package timecode

import (
	"fmt"
	"math"
)

type FrameRate uint8

const (
	FrameRateUnknown FrameRate = iota
	FrameRate24
	FrameRate25
	FrameRate30
)

// 实测帧率和标称帧率的最大相对误差
const frameRateTolerance = 0.03

var knownFrameRates = []FrameRate{FrameRate24, FrameRate25, FrameRate30}

// Fps 未知时返回0
func (fr FrameRate) Fps() int {
	switch fr {
	case FrameRate24:
		return 24
	case FrameRate25:
		return 25
	case FrameRate30:
		return 30
	}
	return 0
}

func (fr FrameRate) String() string {
	if fr == FrameRateUnknown {
		return "unknown"
	}
	return fmt.Sprintf("%dfps", fr.Fps())
}

// FrameRateFromDuration 取最接近的标称帧率，误差超过3%时返回 FrameRateUnknown
//
// @param secondsPerFrame: 一帧的时长，单位秒
func FrameRateFromDuration(secondsPerFrame float64) FrameRate {
	if secondsPerFrame <= 0 || math.IsNaN(secondsPerFrame) || math.IsInf(secondsPerFrame, 0) {
		return FrameRateUnknown
	}
	fps := 1 / secondsPerFrame

	best := FrameRateUnknown
	bestDiff := math.MaxFloat64
	for _, fr := range knownFrameRates {
		nominal := float64(fr.Fps())
		diff := math.Abs(fps-nominal) / nominal
		if diff < bestDiff {
			best, bestDiff = fr, diff
		}
	}
	if bestDiff > frameRateTolerance {
		return FrameRateUnknown
	}
	return best
}

type Timecode struct {
	Hours     uint8
	Minutes   uint8
	Seconds   uint8
	Frames    uint8
	FrameRate FrameRate
}

func New(hours, minutes, seconds, frames uint8, frameRate FrameRate) Timecode {
	return Timecode{
		Hours:     hours,
		Minutes:   minutes,
		Seconds:   seconds,
		Frames:    frames,
		FrameRate: frameRate,
	}
}

// NewFromDuration
//
// @param secondsPerFrame: 一帧（不含同步字的那个采样）的时长，由采样计数除以采样率得到
func NewFromDuration(hours, minutes, seconds, frames uint8, secondsPerFrame float64) Timecode {
	return New(hours, minutes, seconds, frames, FrameRateFromDuration(secondsPerFrame))
}

// String e.g. 01:02:03:04
func (tc Timecode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", tc.Hours, tc.Minutes, tc.Seconds, tc.Frames)
}

// Valid 帧率未知时不检查帧号
func (tc Timecode) Valid() bool {
	if tc.Hours >= 24 || tc.Minutes >= 60 || tc.Seconds >= 60 {
		return false
	}
	if fps := tc.FrameRate.Fps(); fps != 0 && int(tc.Frames) >= fps {
		return false
	}
	return true
}

// TotalFrames 从00:00:00:00开始的帧数，帧率未知时返回0
func (tc Timecode) TotalFrames() int {
	fps := tc.FrameRate.Fps()
	if fps == 0 {
		return 0
	}
	return ((int(tc.Hours)*60+int(tc.Minutes))*60+int(tc.Seconds))*fps + int(tc.Frames)
}

// Next 下一帧的时码，24小时后回到00:00:00:00
//
// @return ok: 帧率未知时无法进位，返回false
func (tc Timecode) Next() (Timecode, bool) {
	fps := tc.FrameRate.Fps()
	if fps == 0 {
		return tc, false
	}
	next := tc
	next.Frames++
	if int(next.Frames) < fps {
		return next, true
	}
	next.Frames = 0
	next.Seconds++
	if next.Seconds < 60 {
		return next, true
	}
	next.Seconds = 0
	next.Minutes++
	if next.Minutes < 60 {
		return next, true
	}
	next.Minutes = 0
	next.Hours = (next.Hours + 1) % 24
	return next, true
}

// Follows tc是否紧接在prev之后，帧率未知或者不一致时返回false
func (tc Timecode) Follows(prev Timecode) bool {
	if tc.FrameRate != prev.FrameRate {
		return false
	}
	next, ok := prev.Next()
	return ok && next == tc
}
