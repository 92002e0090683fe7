// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package innertest

import (
	"github.com/q191201771/ltc/pkg/biphase"
	"github.com/q191201771/ltc/pkg/ltc"
	"github.com/q191201771/ltc/pkg/timecode"
)

// Synthesizer 在 biphase.Modulator 之上按时码生成LTC音频，只给测试用
type Synthesizer struct {
	*biphase.Modulator
}

func NewSynthesizer(sampleRate int, fps float64) *Synthesizer {
	return &Synthesizer{
		Modulator: biphase.NewModulator(sampleRate, fps),
	}
}

func (s *Synthesizer) AppendFrame(out []int16, tc timecode.Timecode) []int16 {
	return s.AppendBits(out, FrameBits(tc))
}

// AppendFrames 从start开始连续count帧
func (s *Synthesizer) AppendFrames(out []int16, start timecode.Timecode, count int) []int16 {
	tc := start
	for i := 0; i < count; i++ {
		out = s.AppendFrame(out, tc)
		tc, _ = tc.Next()
	}
	return out
}

// FrameBits 一个LTC帧的80个bit，按发送顺序
func FrameBits(tc timecode.Timecode) []bool {
	ret := make([]bool, 0, ltc.FrameBits)
	ltc.ForEachBit(ltc.PackFrame(tc.Hours, tc.Minutes, tc.Seconds, tc.Frames), func(bit bool) {
		ret = append(ret, bit)
	})
	return ret
}
