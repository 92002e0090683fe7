// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

// Package biphase 将biphase mark编码的音频采样解调为bit
//
// biphase mark: 每个bit的开头电平必定翻转，bit 1在中间还会再翻转一次。
// 所以两次翻转之间的间隔要么是一个bit周期（bit 0），要么是半个bit周期（两个连续的半周期组成bit 1）。
package biphase

import "math"

const (
	// LTC每帧80 bit
	bitsPerFrame = 80

	// 间隔小于bit周期估计值的3/4时认为是半个周期
	shortRatio = 0.75
	// 间隔超过bit周期估计值的1.5倍时认为信号中断（静音、丢失），不输出bit
	longRatio = 1.5

	// bit周期估计值的跟踪范围，对应20fps到35fps
	minFps = 20
	maxFps = 35
)

type Option struct {
	// Threshold 迟滞门限，采样绝对值超过该值才参与极性判断，用于过滤底噪
	Threshold int16

	// InitialFps 用于计算初始的bit周期估计值，之后会跟随信号自适应
	InitialFps float64
}

var defaultOption = Option{
	Threshold:  256,
	InitialFps: 25,
}

type ModOption func(option *Option)

// Demodulator 非协程安全
type Demodulator struct {
	option     Option
	sampleRate int
	minPeriod  float64
	maxPeriod  float64

	level       bool
	levelKnown  bool
	interval    int     // 距离上一次电平翻转的采样数
	period      float64 // bit周期估计值，单位为采样数
	halfPending bool    // 已经收到了bit 1的前半个周期
}

func NewDemodulator(sampleRate int, modOptions ...ModOption) *Demodulator {
	opt := defaultOption
	for _, fn := range modOptions {
		fn(&opt)
	}
	if opt.InitialFps <= 0 {
		opt.InitialFps = defaultOption.InitialFps
	}
	if opt.Threshold < 0 {
		opt.Threshold = 0
	}

	d := &Demodulator{
		option:     opt,
		sampleRate: sampleRate,
		minPeriod:  float64(sampleRate) / (bitsPerFrame * maxFps),
		maxPeriod:  float64(sampleRate) / (bitsPerFrame * minFps),
	}
	d.Reset()
	return d
}

// Feed 每个采样调用一次
//
// @return ok: 该采样上结束了一个bit时为true
func (d *Demodulator) Feed(sample int16) (bit bool, ok bool) {
	d.interval++

	var level bool
	switch {
	case int(sample) > int(d.option.Threshold):
		level = true
	case int(sample) < -int(d.option.Threshold):
		level = false
	default:
		return false, false
	}

	if !d.levelKnown {
		d.levelKnown = true
		d.level = level
		d.interval = 0
		return false, false
	}
	if level == d.level {
		return false, false
	}

	d.level = level
	interval := float64(d.interval)
	d.interval = 0
	return d.onTransition(interval)
}

// FeedFloat 采样取值范围[-1, 1]
func (d *Demodulator) FeedFloat(sample float32) (bit bool, ok bool) {
	v := math.Round(float64(sample) * math.MaxInt16)
	if v > math.MaxInt16 {
		v = math.MaxInt16
	} else if v < math.MinInt16 {
		v = math.MinInt16
	}
	return d.Feed(int16(v))
}

func (d *Demodulator) onTransition(interval float64) (bool, bool) {
	if interval > d.period*longRatio {
		d.halfPending = false
		return false, false
	}

	if interval < d.period*shortRatio {
		d.adapt(interval * 2)
		if d.halfPending {
			d.halfPending = false
			return true, true
		}
		d.halfPending = true
		return false, false
	}

	// 半个周期之后直接出现了完整周期，说明前面那半个周期是干扰，丢弃
	d.halfPending = false
	d.adapt(interval)
	return false, true
}

func (d *Demodulator) adapt(period float64) {
	d.period += (period - d.period) / 4
	if d.period < d.minPeriod {
		d.period = d.minPeriod
	} else if d.period > d.maxPeriod {
		d.period = d.maxPeriod
	}
}

// Reset 丢弃电平和bit周期的跟踪状态
func (d *Demodulator) Reset() {
	d.level = false
	d.levelKnown = false
	d.interval = 0
	d.halfPending = false
	d.period = float64(d.sampleRate) / (bitsPerFrame * d.option.InitialFps)
}

// BitPeriod bit周期估计值，单位为采样数
func (d *Demodulator) BitPeriod() float64 {
	return d.period
}

// EstimatedFps 根据bit周期估计值换算的帧率
func (d *Demodulator) EstimatedFps() float64 {
	if d.period <= 0 {
		return 0
	}
	return float64(d.sampleRate) / (bitsPerFrame * d.period)
}
