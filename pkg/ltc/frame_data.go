// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package ltc

import "github.com/q191201771/naza/pkg/bele"

// FrameData 80 bit的滑动窗口寄存器，以及模80的插入计数
//
// bit 0是最近一次插入的bit。零值可以直接使用。
type FrameData struct {
	lo    uint64 // bit 0..63
	hi    uint16 // bit 64..79
	count uint8  // [0, 79]
}

// InsertBit 整体左移一位，超出80 bit的部分丢弃，新的bit放在bit 0
func (fd *FrameData) InsertBit(bit bool) {
	// hi只有16位，左移时bit 79自然被丢弃
	fd.hi = fd.hi<<1 | uint16(fd.lo>>63)
	fd.lo <<= 1
	if bit {
		fd.lo |= 1
	}
	fd.count++
	fd.count %= FrameBits
}

// Bit
//
// @param index: 0为最近插入的bit，超出[0, 79]范围时返回false
func (fd *FrameData) Bit(index uint8) bool {
	if index < 64 {
		return (fd.lo>>index)&1 == 1
	}
	if index < FrameBits {
		return (fd.hi>>(index-64))&1 == 1
	}
	return false
}

// DecodeField 字段中为1的bit的权重之和，字段以外的bit不参与计算
func (fd *FrameData) DecodeField(f Field) uint8 {
	var v uint8
	for _, bi := range f.indexes() {
		if fd.Bit(bi.Index) {
			v += bi.Weight
		}
	}
	return v
}

func (fd *FrameData) Frames() uint8 {
	return fd.DecodeField(FieldFrames)
}

func (fd *FrameData) Seconds() uint8 {
	return fd.DecodeField(FieldSeconds)
}

func (fd *FrameData) Minutes() uint8 {
	return fd.DecodeField(FieldMinutes)
}

func (fd *FrameData) Hours() uint8 {
	return fd.DecodeField(FieldHours)
}

// SyncWord 最低的16个bit
func (fd *FrameData) SyncWord() uint16 {
	return uint16(fd.lo)
}

// PeekSyncPattern 只看最低16 bit是否等于同步字，不关心对齐
//
// 用于发现出现在非预期位置的同步字（相位不对的数据）
func (fd *FrameData) PeekSyncPattern() bool {
	return fd.SyncWord() == SyncWord
}

// IsFrameBoundary 严格检查：刚好凑齐80 bit，并且同步字匹配
func (fd *FrameData) IsFrameBoundary() bool {
	return fd.count == 0 && fd.PeekSyncPattern()
}

// Position 自上次Reset以来插入的bit数，模80
func (fd *FrameData) Position() uint8 {
	return fd.count
}

// Reset 寄存器和计数都清零，发现数据不对齐时调用，保证之后不会把残缺的帧当成有效帧
func (fd *FrameData) Reset() {
	fd.lo = 0
	fd.hi = 0
	fd.count = 0
}

// Raw 寄存器原始内容，hi为bit 64..79，lo为bit 0..63
func (fd *FrameData) Raw() (hi uint16, lo uint64) {
	return fd.hi, fd.lo
}

// Equal 只比较寄存器内容，不比较计数
func (fd *FrameData) Equal(other *FrameData) bool {
	return fd.hi == other.hi && fd.lo == other.lo
}

// Bytes 按发送顺序（最早到达的bit在前，每个字节高位在前）输出80 bit
//
// @return 内存块为独立新申请
func (fd *FrameData) Bytes() []byte {
	out := make([]byte, FrameBytes)
	bele.BePutUint16(out, fd.hi)
	bele.BePutUint64(out[2:], fd.lo)
	return out
}

// nibble 第i组4 bit，i取值[0, 19]，第0组为bit 0..3
func (fd *FrameData) nibble(i int) uint8 {
	if i < 16 {
		return uint8(fd.lo>>(uint(i)*4)) & 0xF
	}
	return uint8(fd.hi>>(uint(i-16)*4)) & 0xF
}
