// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package ltc

// DecodedFrame 帧边界时的快照
type DecodedFrame struct {
	Hours   uint8
	Minutes uint8
	Seconds uint8
	Frames  uint8

	// SampleCount 两次同步字之间经过的采样数（不含同步字所在的那个采样）
	// 采样率除以该值即为帧率
	SampleCount int

	Data FrameData
}

// SecondsPerFrame
//
// @param sampleRate: 输入音频的采样率
func (df DecodedFrame) SecondsPerFrame(sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return float64(df.SampleCount) / float64(sampleRate)
}

// FrameTracker 在 FrameData 之上维护采样计数，处理失步重同步，只在对齐的同步字出现时输出帧
//
// 零值可以直接使用。非协程安全，每个解码会话独占一个。
//
// 每个采样按如下顺序调用：
//  1. OnSample
//  2. InsertBit （解调器输出了一个bit时）
//  3. TryGetFrame
type FrameTracker struct {
	data                 FrameData
	frameDataSampleCount int
}

func NewFrameTracker() *FrameTracker {
	return &FrameTracker{}
}

// OnSample 每个采样调用一次，需要在插入该采样的bit之前调用
//
// 如果寄存器中已经存在同步字（新bit插入之前），说明上一帧已经结束或者出现了相位不对的同步字，
// 计数和寄存器都清零；否则计数加1。
//
// @return outOfPhase: 同步字出现在了未对齐的位置，寄存器中的数据被丢弃
func (ft *FrameTracker) OnSample() (outOfPhase bool) {
	if ft.data.PeekSyncPattern() {
		outOfPhase = ft.data.Position() != 0
		ft.frameDataSampleCount = 0
		ft.data.Reset()
		return outOfPhase
	}
	ft.frameDataSampleCount++
	return false
}

func (ft *FrameTracker) InsertBit(bit bool) {
	ft.data.InsertBit(bit)
}

// TryGetFrame 只有收到了完整对齐的80 bit时才返回帧，否则返回false
func (ft *FrameTracker) TryGetFrame() (DecodedFrame, bool) {
	if !ft.data.IsFrameBoundary() {
		return DecodedFrame{}, false
	}
	return DecodedFrame{
		Hours:       ft.data.Hours(),
		Minutes:     ft.data.Minutes(),
		Seconds:     ft.data.Seconds(),
		Frames:      ft.data.Frames(),
		SampleCount: ft.frameDataSampleCount,
		Data:        ft.data,
	}, true
}

// Push 适用于每个bit只对应一个采样的调用方，依次执行 OnSample, InsertBit, TryGetFrame
func (ft *FrameTracker) Push(bit bool) (DecodedFrame, bool) {
	ft.OnSample()
	ft.InsertBit(bit)
	return ft.TryGetFrame()
}

// Invalidate 丢弃当前所有状态
func (ft *FrameTracker) Invalidate() {
	ft.data.Reset()
	ft.frameDataSampleCount = 0
}

func (ft *FrameTracker) SampleCount() int {
	return ft.frameDataSampleCount
}

func (ft *FrameTracker) Position() uint8 {
	return ft.data.Position()
}

// Data 寄存器当前内容的拷贝
func (ft *FrameTracker) Data() FrameData {
	return ft.data
}
