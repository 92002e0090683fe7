// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package biphase_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/q191201771/ltc/pkg/biphase"
	"github.com/q191201771/naza/pkg/assert"
)

func randomBits(seed int64, n int) []bool {
	r := rand.New(rand.NewSource(seed))
	ret := make([]bool, n)
	for i := range ret {
		ret[i] = r.Intn(2) == 1
	}
	return ret
}

func demodulate(d *biphase.Demodulator, samples []int16) []bool {
	var ret []bool
	for _, s := range samples {
		if bit, ok := d.Feed(s); ok {
			ret = append(ret, bit)
		}
	}
	return ret
}

func TestDemodulator(t *testing.T) {
	golden := []struct {
		sampleRate int
		fps        float64
	}{
		{48000, 24},
		{48000, 25},
		{48000, 30},
		{44100, 25},
		{44100, 29.97},
	}
	for i, item := range golden {
		bits := randomBits(int64(i), 800)
		s := biphase.NewModulator(item.sampleRate, item.fps)
		samples := s.AppendBits(nil, bits)

		d := biphase.NewDemodulator(item.sampleRate)
		out := demodulate(d, samples)
		// 最后一个bit没有结束翻转，不会输出
		assert.Equal(t, bits[:len(bits)-1], out)

		expectedPeriod := float64(item.sampleRate) / (item.fps * 80)
		if math.Abs(d.BitPeriod()-expectedPeriod) > 1.5 {
			t.Fatalf("period mismatch. expected=%f, actual=%f", expectedPeriod, d.BitPeriod())
		}
		if math.Abs(d.EstimatedFps()-item.fps) > 2.5 {
			t.Fatalf("fps mismatch. expected=%f, actual=%f", item.fps, d.EstimatedFps())
		}
	}
}

func TestDemodulator_Threshold(t *testing.T) {
	bits := randomBits(10, 300)
	samples := biphase.NewModulator(48000, 25).AppendBits(nil, bits)

	// 每次电平变化后的第一个采样落在迟滞区间内，翻转被推迟一个采样，间隔不变
	slow := make([]int16, len(samples))
	copy(slow, samples)
	for i := 1; i < len(samples); i++ {
		if samples[i] != samples[i-1] {
			slow[i] = 50
		}
	}
	out := demodulate(biphase.NewDemodulator(48000), slow)
	assert.Equal(t, bits[:len(bits)-1], out)

	// 门限之下的噪声被忽略
	quiet := make([]int16, 2000)
	for i := range quiet {
		quiet[i] = int16(200 - (i%5)*100)
	}
	assert.Equal(t, 0, len(demodulate(biphase.NewDemodulator(48000), quiet)))
}

func TestDemodulator_Silence(t *testing.T) {
	a := randomBits(20, 200)
	b := append([]bool{false, false, false, false}, randomBits(21, 200)...)

	s := biphase.NewModulator(48000, 30)
	samples := s.AppendBits(nil, a)
	samples = s.AppendSilence(samples, 1000)
	samples = s.AppendBits(samples, b)

	out := demodulate(biphase.NewDemodulator(48000), samples)
	// 静音前的最后一个bit的结束翻转出现在静音之后，间隔太长被丢弃
	expected := append(append([]bool{}, a[:len(a)-1]...), b[:len(b)-1]...)
	assert.Equal(t, expected, out)
}

func TestDemodulator_FeedFloat(t *testing.T) {
	bits := randomBits(30, 300)
	s := biphase.NewModulator(48000, 24)
	s.Amplitude = 16000
	samples := s.AppendBits(nil, bits)

	d := biphase.NewDemodulator(48000)
	var out []bool
	for _, v := range samples {
		if bit, ok := d.FeedFloat(float32(v) / 32768); ok {
			out = append(out, bit)
		}
	}
	assert.Equal(t, bits[:len(bits)-1], out)

	// 超出范围的值被截断，不会溢出
	d.Reset()
	d.FeedFloat(2)
	_, ok := d.FeedFloat(-2)
	assert.Equal(t, false, ok)
}

func TestDemodulator_Option(t *testing.T) {
	d := biphase.NewDemodulator(48000)
	assert.Equal(t, float64(24), d.BitPeriod())

	d = biphase.NewDemodulator(48000, func(option *biphase.Option) {
		option.InitialFps = 30
		option.Threshold = 1000
	})
	assert.Equal(t, float64(20), d.BitPeriod())

	samples := biphase.NewModulator(48000, 30).AppendBits(nil, []bool{true, false, true})
	for i := range samples {
		samples[i] /= 10
	}
	// 幅度低于门限，无法解调
	assert.Equal(t, 0, len(demodulate(d, samples)))

	d.Reset()
	assert.Equal(t, float64(20), d.BitPeriod())
}
