// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package ltc_test

import (
	"math/rand"
	"testing"

	"github.com/q191201771/ltc/pkg/ltc"
	"github.com/q191201771/naza/pkg/assert"
)

func frameBits(hours, minutes, seconds, frames uint8) []bool {
	var ret []bool
	ltc.ForEachBit(ltc.PackFrame(hours, minutes, seconds, frames), func(bit bool) {
		ret = append(ret, bit)
	})
	return ret
}

// feedWithSamplesPerBit 每个bit持续samplesPerBit个采样，bit在最后一个采样时插入
func feedWithSamplesPerBit(ft *ltc.FrameTracker, bits []bool, samplesPerBit int) []ltc.DecodedFrame {
	var ret []ltc.DecodedFrame
	for _, b := range bits {
		for s := 0; s < samplesPerBit; s++ {
			ft.OnSample()
			if s != samplesPerBit-1 {
				continue
			}
			ft.InsertBit(b)
			if frame, ok := ft.TryGetFrame(); ok {
				ret = append(ret, frame)
			}
		}
	}
	return ret
}

func TestFrameTracker_RoundTrip(t *testing.T) {
	ft := ltc.NewFrameTracker()
	bits := frameBits(1, 2, 3, 4)
	for i, b := range bits {
		frame, ok := ft.Push(b)
		if i != len(bits)-1 {
			assert.Equal(t, false, ok)
			continue
		}
		assert.Equal(t, true, ok)
		assert.Equal(t, uint8(1), frame.Hours)
		assert.Equal(t, uint8(2), frame.Minutes)
		assert.Equal(t, uint8(3), frame.Seconds)
		assert.Equal(t, uint8(4), frame.Frames)
		assert.Equal(t, ltc.FrameBits, frame.SampleCount)
		assert.Equal(t, "01:02:03:04", frame.String())
	}
}

func TestFrameTracker_TryGetFrameOnlyAtBoundary(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	var ft ltc.FrameTracker
	n := 0
	for i := 0; i < 50; i++ {
		var bits []bool
		if i%3 == 0 {
			bits = randomBits(r, r.Intn(120))
		}
		bits = append(bits, frameBits(uint8(i%24), uint8(i), uint8(i), uint8(i%30))...)
		for _, b := range bits {
			frame, ok := ft.Push(b)
			data := ft.Data()
			assert.Equal(t, data.IsFrameBoundary(), ok)
			if ok {
				n++
				assert.Equal(t, data.Hours(), frame.Hours)
				assert.Equal(t, data.Frames(), frame.Frames)
				assert.Equal(t, true, frame.Data.Equal(&data))
			} else {
				assert.Equal(t, ltc.DecodedFrame{}, frame)
			}
		}
	}
	assert.Equal(t, true, n > 30)
}

func TestFrameTracker_SampleCount(t *testing.T) {
	// 48kHz下，24/25/30fps每个bit分别为25/24/20个采样
	golden := []struct {
		fps           int
		samplesPerBit int
		expected      int
	}{
		{24, 25, 1999},
		{25, 24, 1919},
		{30, 20, 1599},
	}
	for _, item := range golden {
		var ft ltc.FrameTracker
		var bits []bool
		for i := 0; i < 4; i++ {
			bits = append(bits, frameBits(10, 0, 0, uint8(i))...)
		}
		frames := feedWithSamplesPerBit(&ft, bits, item.samplesPerBit)
		assert.Equal(t, 4, len(frames))

		// 第一帧之前没有同步字，计数从流的开头算起
		assert.Equal(t, 80*item.samplesPerBit, frames[0].SampleCount)
		for i := 1; i < len(frames); i++ {
			assert.Equal(t, item.expected, frames[i].SampleCount)
			assert.Equal(t, uint8(i), frames[i].Frames)

			fps := 1 / frames[i].SecondsPerFrame(48000)
			if fps < float64(item.fps)-0.1 || fps > float64(item.fps)+0.1 {
				t.Fatalf("fps mismatch. expected=%d, actual=%f", item.fps, fps)
			}
		}
	}
}

func TestFrameTracker_StartupResync(t *testing.T) {
	var ft ltc.FrameTracker
	for i := 0; i < 37; i++ {
		_, ok := ft.Push(false)
		assert.Equal(t, false, ok)
	}

	// 相位不对，同步字出现在position 37
	for _, b := range frameBits(1, 2, 3, 4) {
		_, ok := ft.Push(b)
		assert.Equal(t, false, ok)
	}
	assert.Equal(t, uint8(37), ft.Position())
	assert.Equal(t, 117, ft.SampleCount())

	bits := frameBits(1, 2, 3, 5)
	outOfPhase := ft.OnSample()
	assert.Equal(t, true, outOfPhase)
	assert.Equal(t, 0, ft.SampleCount())
	assert.Equal(t, uint8(0), ft.Position())

	ft.InsertBit(bits[0])
	_, ok := ft.TryGetFrame()
	assert.Equal(t, false, ok)

	var frames []ltc.DecodedFrame
	for _, b := range bits[1:] {
		if frame, ok := ft.Push(b); ok {
			frames = append(frames, frame)
		}
	}
	assert.Equal(t, 1, len(frames))
	assert.Equal(t, "01:02:03:05", frames[0].String())
	assert.Equal(t, 79, frames[0].SampleCount)
}

func TestFrameTracker_CorruptedStream(t *testing.T) {
	var ft ltc.FrameTracker
	for _, b := range frameBits(2, 0, 0, 0) {
		ft.Push(b)
	}

	// 下一帧只收到了30个bit，然后出现了一个未对齐的同步字
	var corrupted []bool
	corrupted = append(corrupted, frameBits(2, 0, 0, 1)[:30]...)
	ltc.ForEachBit([]byte{0x3F, 0xFD}, func(bit bool) {
		corrupted = append(corrupted, bit)
	})
	for _, b := range corrupted {
		_, ok := ft.Push(b)
		assert.Equal(t, false, ok)
	}
	assert.Equal(t, uint8(46), ft.Position())
	// 第一个采样遇到上一帧对齐的同步字，计数从0开始
	assert.Equal(t, 45, ft.SampleCount())

	assert.Equal(t, true, ft.OnSample())
	assert.Equal(t, 0, ft.SampleCount())
	assert.Equal(t, uint8(0), ft.Position())
	data := ft.Data()
	hi, lo := data.Raw()
	assert.Equal(t, uint16(0), hi)
	assert.Equal(t, uint64(0), lo)

	bits := frameBits(2, 0, 0, 2)
	ft.InsertBit(bits[0])
	var frames []ltc.DecodedFrame
	for _, b := range bits[1:] {
		if frame, ok := ft.Push(b); ok {
			frames = append(frames, frame)
		}
	}
	assert.Equal(t, 1, len(frames))
	assert.Equal(t, uint8(2), frames[0].Frames)
	assert.Equal(t, 79, frames[0].SampleCount)
}

func TestFrameTracker_AlignedSyncIsNotOutOfPhase(t *testing.T) {
	var ft ltc.FrameTracker
	for _, b := range frameBits(0, 0, 0, 1) {
		assert.Equal(t, false, ft.OnSample())
		ft.InsertBit(b)
	}
	_, ok := ft.TryGetFrame()
	assert.Equal(t, true, ok)

	// 帧结束后的第一个采样，同步字位于对齐位置，正常清零
	assert.Equal(t, false, ft.OnSample())
	assert.Equal(t, 0, ft.SampleCount())
	assert.Equal(t, uint8(0), ft.Position())
}

func TestFrameTracker_Invalidate(t *testing.T) {
	var ft ltc.FrameTracker
	for _, b := range frameBits(0, 0, 0, 1)[:50] {
		ft.Push(b)
	}
	assert.Equal(t, 50, ft.SampleCount())
	ft.Invalidate()
	assert.Equal(t, 0, ft.SampleCount())
	assert.Equal(t, uint8(0), ft.Position())
	_, ok := ft.TryGetFrame()
	assert.Equal(t, false, ok)
}

func TestDecodedFrame_SecondsPerFrame(t *testing.T) {
	df := ltc.DecodedFrame{SampleCount: 1920}
	assert.Equal(t, 0.04, df.SecondsPerFrame(48000))
	assert.Equal(t, float64(0), df.SecondsPerFrame(0))
}
