// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

// Package ltc 将解调后的LTC(Linear Timecode)比特流组装成SMPTE时码帧
//
// 只负责比特层面的帧同步和字段提取，不做音频解调（见pkg/biphase），也不构造最终的时码值（见pkg/timecode）。
// 所有操作都是同步的、不会失败的，热路径上不申请内存。
//
// 典型用法，每个音频采样调用一次：
//
//	var ft ltc.FrameTracker
//	ft.OnSample()
//	if bit, ok := demod.Feed(sample); ok {
//	    ft.InsertBit(bit)
//	    if frame, ok := ft.TryGetFrame(); ok {
//	        // frame.Hours, frame.Minutes, frame.Seconds, frame.Frames, frame.SampleCount
//	    }
//	}
package ltc

// <SMPTE ST 12-1>
// 一个LTC帧80个bit，按bit 0到bit 79的顺序发送
// -----------------------------------------------
// 0-3    frame units        [4b]
// 8-9    frame tens         [2b]
// 16-19  seconds units      [4b]
// 24-26  seconds tens       [3b]
// 32-35  minutes units      [4b]
// 40-42  minutes tens       [3b]
// 48-51  hours units        [4b]
// 56-57  hours tens         [2b]
// 64-79  sync word          [16b] '0011 1111 1111 1101'
// 其余为user bits和标志位，这里不解析

const (
	FrameBits  = 80
	FrameBytes = FrameBits / 8

	// SyncWord 帧边界时，位于寄存器最低的16个bit
	SyncWord uint16 = 0b0011_1111_1111_1101

	syncBits = 16
)
