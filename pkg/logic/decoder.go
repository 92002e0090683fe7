// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package logic

import (
	"github.com/q191201771/ltc/pkg/base"
	"github.com/q191201771/ltc/pkg/biphase"
	"github.com/q191201771/ltc/pkg/ltc"
	"github.com/q191201771/ltc/pkg/timecode"
	"github.com/q191201771/naza/pkg/nazalog"
)

type OnTimecode func(tc timecode.Timecode, frame ltc.DecodedFrame)

type DecoderOption struct {
	Threshold  int16
	InitialFps float64

	// OnTimecode 每解出一个对齐的帧回调一次，在 FeedSample 的调用协程中同步执行
	OnTimecode OnTimecode

	// DumpFrameMaxNum debug日志级别下打印帧位图的最大次数，小于0表示不限次数
	DumpFrameMaxNum int

	// Stat 不为nil时同步更新prometheus指标
	Stat *Stat
}

var defaultDecoderOption = DecoderOption{
	Threshold:       defaultBiphaseThreshold,
	InitialFps:      defaultInitialFps,
	DumpFrameMaxNum: base.LogicDumpFrameMaxNumDefault,
}

type ModDecoderOption func(option *DecoderOption)

type DecoderStat struct {
	Samples         uint64
	Bits            uint64
	Frames          uint64
	InvalidFrames   uint64
	Resyncs         uint64
	Discontinuities uint64
}

// Decoder 音频采样 -> biphase解调 -> 帧跟踪 -> 时码
//
// 非协程安全，一个声道一个Decoder
type Decoder struct {
	option     DecoderOption
	sampleRate int

	demod   *biphase.Demodulator
	tracker *ltc.FrameTracker
	dump    base.LogDump

	stat    DecoderStat
	prev    timecode.Timecode
	hasPrev bool
}

func NewDecoder(sampleRate int, modOptions ...ModDecoderOption) *Decoder {
	option := defaultDecoderOption
	for _, fn := range modOptions {
		fn(&option)
	}

	return &Decoder{
		option:     option,
		sampleRate: sampleRate,
		demod: biphase.NewDemodulator(sampleRate, func(o *biphase.Option) {
			o.Threshold = option.Threshold
			o.InitialFps = option.InitialFps
		}),
		tracker: ltc.NewFrameTracker(),
		dump:    base.NewLogDump(nazalog.GetGlobalLogger(), option.DumpFrameMaxNum),
	}
}

func (d *Decoder) FeedSamples(samples []int16) {
	for _, s := range samples {
		d.FeedSample(s)
	}
}

func (d *Decoder) FeedSample(sample int16) {
	d.stat.Samples++
	if d.option.Stat != nil {
		d.option.Stat.Samples.Inc()
	}

	if d.tracker.OnSample() {
		d.stat.Resyncs++
		if d.option.Stat != nil {
			d.option.Stat.Resyncs.Inc()
		}
		nazalog.Debugf("out of phase sync word, resync. samples=%d", d.stat.Samples)
	}

	bit, ok := d.demod.Feed(sample)
	if !ok {
		return
	}
	d.stat.Bits++
	if d.option.Stat != nil {
		d.option.Stat.Bits.Inc()
	}
	d.tracker.InsertBit(bit)

	frame, ok := d.tracker.TryGetFrame()
	if !ok {
		return
	}
	d.onFrame(frame)
}

func (d *Decoder) Stat() DecoderStat {
	return d.stat
}

// Reset 输入流不连续时调用（比如seek），丢弃解调和帧跟踪状态，统计保留
func (d *Decoder) Reset() {
	d.demod.Reset()
	d.tracker.Invalidate()
	d.hasPrev = false
}

func (d *Decoder) onFrame(frame ltc.DecodedFrame) {
	secondsPerFrame := frame.SecondsPerFrame(d.sampleRate)
	tc := timecode.NewFromDuration(frame.Hours, frame.Minutes, frame.Seconds, frame.Frames, secondsPerFrame)

	d.stat.Frames++
	if d.option.Stat != nil {
		d.option.Stat.Frames.Inc()
		d.option.Stat.SamplesPerFrame.Observe(float64(frame.SampleCount))
		if secondsPerFrame > 0 {
			d.option.Stat.Fps.Set(1 / secondsPerFrame)
		}
	}

	if !tc.Valid() {
		d.stat.InvalidFrames++
		if d.option.Stat != nil {
			d.option.Stat.InvalidFrames.Inc()
		}
		nazalog.Warnf("invalid timecode. tc=%s, frame=%s", tc.String(), frame.DebugString())
	}

	// 上一帧帧率未知时（比如开头有静音，第一帧的采样计数偏大）无法判断是否连续
	if d.hasPrev && d.prev.FrameRate != timecode.FrameRateUnknown && !tc.Follows(d.prev) {
		d.stat.Discontinuities++
		if d.option.Stat != nil {
			d.option.Stat.Discontinuities.Inc()
		}
		nazalog.Warnf("timecode discontinuity. prev=%s(%s), curr=%s(%s)",
			d.prev.String(), d.prev.FrameRate.String(), tc.String(), tc.FrameRate.String())
	}
	d.prev = tc
	d.hasPrev = true

	if d.dump.ShouldDump() {
		d.dump.Outf("frame=%s", frame.DebugString())
	}

	if d.option.OnTimecode != nil {
		d.option.OnTimecode(tc, frame)
	}
}
