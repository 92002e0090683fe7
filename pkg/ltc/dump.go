// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package ltc

import (
	"fmt"
	"strings"
)

// 调试用的格式化输出，解码逻辑不依赖本文件

// String e.g. 01:02:03:04
func (fd *FrameData) String() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", fd.Hours(), fd.Minutes(), fd.Seconds(), fd.Frames())
}

// DebugString 同步字是否有效、时码，以及寄存器全部20组4 bit的二进制，高位在前
//
// e.g. sync: true, 01:02:03:04 0b_0010_0000_...._1101
func (fd *FrameData) DebugString() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("sync: %t, %s 0b", fd.PeekSyncPattern(), fd.String()))
	for i := FrameBits/4 - 1; i >= 0; i-- {
		sb.WriteString(fmt.Sprintf("_%04b", fd.nibble(i)))
	}
	return sb.String()
}

func (df DecodedFrame) String() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", df.Hours, df.Minutes, df.Seconds, df.Frames)
}

func (df DecodedFrame) DebugString() string {
	return fmt.Sprintf("%s, sampleCount: %d", df.Data.DebugString(), df.SampleCount)
}
