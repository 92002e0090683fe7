// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package ltc

// BitIndex 一个bit在寄存器中的位置以及它的权重
type BitIndex struct {
	Index  uint8 // 距离最近一次插入的bit的距离，0为最新的bit
	Weight uint8
}

// newBitIndex
//
// @param standardIndex: 标准文档中的bit序号
//
// bit按标准序号从小到大到达，最先到达的bit在寄存器的最高位，所以需要做 79 - standardIndex 的转换
func newBitIndex(standardIndex uint8, weight uint8) BitIndex {
	return BitIndex{
		Index:  FrameBits - 1 - standardIndex,
		Weight: weight,
	}
}

// StandardIndex 还原为标准文档中的bit序号
func (bi BitIndex) StandardIndex() uint8 {
	return FrameBits - 1 - bi.Index
}

// Field 时码中的四个字段
type Field uint8

const (
	FieldFrames Field = iota
	FieldSeconds
	FieldMinutes
	FieldHours
)

// 两位BCD：个位使用权重1/2/4/8，十位使用权重10/20/(40)
var (
	bitIndexFrames = [...]BitIndex{
		newBitIndex(0, 1),
		newBitIndex(1, 2),
		newBitIndex(2, 4),
		newBitIndex(3, 8),
		newBitIndex(8, 10),
		newBitIndex(9, 20),
	}
	bitIndexSeconds = [...]BitIndex{
		newBitIndex(16, 1),
		newBitIndex(17, 2),
		newBitIndex(18, 4),
		newBitIndex(19, 8),
		newBitIndex(24, 10),
		newBitIndex(25, 20),
		newBitIndex(26, 40),
	}
	bitIndexMinutes = [...]BitIndex{
		newBitIndex(32, 1),
		newBitIndex(33, 2),
		newBitIndex(34, 4),
		newBitIndex(35, 8),
		newBitIndex(40, 10),
		newBitIndex(41, 20),
		newBitIndex(42, 40),
	}
	bitIndexHours = [...]BitIndex{
		newBitIndex(48, 1),
		newBitIndex(49, 2),
		newBitIndex(50, 4),
		newBitIndex(51, 8),
		newBitIndex(56, 10),
		newBitIndex(57, 20),
	}
)

// indexes 内部使用，不拷贝，调用方不能修改返回值
func (f Field) indexes() []BitIndex {
	switch f {
	case FieldFrames:
		return bitIndexFrames[:]
	case FieldSeconds:
		return bitIndexSeconds[:]
	case FieldMinutes:
		return bitIndexMinutes[:]
	case FieldHours:
		return bitIndexHours[:]
	}
	return nil
}

// BitIndexes 字段对应的 (位置, 权重) 列表
//
// @return 内存块为独立新申请
func (f Field) BitIndexes() []BitIndex {
	src := f.indexes()
	ret := make([]BitIndex, len(src))
	copy(ret, src)
	return ret
}

// MaxValue 字段所有bit都为1时的值
func (f Field) MaxValue() uint8 {
	var v uint8
	for _, bi := range f.indexes() {
		v += bi.Weight
	}
	return v
}

func (f Field) String() string {
	switch f {
	case FieldFrames:
		return "frames"
	case FieldSeconds:
		return "seconds"
	case FieldMinutes:
		return "minutes"
	case FieldHours:
		return "hours"
	}
	return "unknown"
}
