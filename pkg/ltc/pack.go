// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package ltc

import "github.com/q191201771/naza/pkg/nazabits"

// PackFrame 按发送顺序构造一个80 bit的LTC帧，user bits和标志位都为0，末尾为同步字
//
// 超出字段表示范围的值会被截断到字段能表示的最大值
//
// @return 内存块为独立新申请，bit 0在第0个字节的最高位
func PackFrame(hours, minutes, seconds, frames uint8) []byte {
	var bits [FrameBits]uint8
	packField(&bits, FieldFrames, frames)
	packField(&bits, FieldSeconds, seconds)
	packField(&bits, FieldMinutes, minutes)
	packField(&bits, FieldHours, hours)

	out := make([]byte, FrameBytes)
	bw := nazabits.NewBitWriter(out)
	for i := 0; i < FrameBits-syncBits; i++ {
		bw.WriteBit(bits[i])
	}
	bw.WriteBits16(syncBits, SyncWord)
	return out
}

func packField(bits *[FrameBits]uint8, f Field, v uint8) {
	if m := f.MaxValue(); v > m {
		v = m
	}
	// 权重从大到小贪心分配，两位BCD的个位不会超过9，所以结果和BCD编码一致
	indexes := f.indexes()
	for i := len(indexes) - 1; i >= 0; i-- {
		bi := indexes[i]
		if v >= bi.Weight {
			v -= bi.Weight
			bits[bi.StandardIndex()] = 1
		}
	}
}

// ForEachBit 按发送顺序（每个字节高位在前）遍历b中的每个bit
func ForEachBit(b []byte, fn func(bit bool)) {
	br := nazabits.NewBitReader(b)
	for i := 0; i < len(b)*8; i++ {
		v, err := br.ReadBits8(1)
		if err != nil {
			return
		}
		fn(v == 1)
	}
}
