// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package biphase

// Modulator 把bit流编码成biphase mark方波，是 Demodulator 的逆过程
//
// 每个bit开头翻转电平，bit 1在中间再翻转一次。支持非整数的半bit采样数，误差累积到下一个半bit上
type Modulator struct {
	Amplitude int16

	halfBit float64 // 半个bit周期的采样数
	pos     float64
	level   bool
}

func NewModulator(sampleRate int, fps float64) *Modulator {
	return &Modulator{
		Amplitude: 8000,
		halfBit:   float64(sampleRate) / (fps * bitsPerFrame * 2),
	}
}

func (m *Modulator) AppendBits(out []int16, bits []bool) []int16 {
	for _, b := range bits {
		m.level = !m.level
		out = m.appendHalf(out)
		if b {
			m.level = !m.level
		}
		out = m.appendHalf(out)
	}
	return out
}

// AppendSilence 保持0值，不产生翻转
func (m *Modulator) AppendSilence(out []int16, n int) []int16 {
	for i := 0; i < n; i++ {
		out = append(out, 0)
	}
	return out
}

func (m *Modulator) appendHalf(out []int16) []int16 {
	end := m.pos + m.halfBit
	n := int(end) - int(m.pos)
	m.pos = end
	v := -m.Amplitude
	if m.level {
		v = m.Amplitude
	}
	for i := 0; i < n; i++ {
		out = append(out, v)
	}
	return out
}
