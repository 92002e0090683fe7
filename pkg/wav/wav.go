// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

// Package wav 读写RIFF/WAVE格式的PCM音频，只支持8 bit和16 bit整型采样
package wav

import (
	"fmt"
	"os"

	"github.com/q191201771/ltc/pkg/base"
	"github.com/q191201771/naza/pkg/bele"
)

// <RIFF WAVE>
// ---------------------------------
// "RIFF"          [4B]
// riff size       [4B] le
// "WAVE"          [4B]
// chunk id        [4B] e.g. "fmt " "LIST" "data"
// chunk size      [4B] le，奇数长度时后面有1字节填充
// chunk body
// ...
//
// fmt chunk body
// ---------------------------------
// audio format    [2B] 1=PCM 0xFFFE=WAVE_FORMAT_EXTENSIBLE
// channels        [2B]
// sample rate     [4B]
// byte rate       [4B]
// block align     [2B]
// bits per sample [2B]

const (
	headerLength    = 12
	chunkHeadLength = 8
	minFmtLength    = 16

	// Encode 输出的文件头长度
	CanonicalHeaderLength = 44

	FormatPcm        = 1
	FormatExtensible = 0xFFFE
)

type Audio struct {
	SampleRate    int
	Channels      int
	BitsPerSample int

	// Samples 多声道时交错存放，8 bit采样被放大到16 bit
	Samples []int16
}

// FrameNum 每个声道的采样数
func (a *Audio) FrameNum() int {
	if a.Channels <= 0 {
		return 0
	}
	return len(a.Samples) / a.Channels
}

// Duration 单位秒
func (a *Audio) Duration() float64 {
	if a.SampleRate <= 0 {
		return 0
	}
	return float64(a.FrameNum()) / float64(a.SampleRate)
}

// Channel 单个声道的采样
//
// @return 内存块为独立新申请，index越界时返回nil
func (a *Audio) Channel(index int) []int16 {
	if index < 0 || index >= a.Channels {
		return nil
	}
	ret := make([]int16, a.FrameNum())
	for i := range ret {
		ret[i] = a.Samples[i*a.Channels+index]
	}
	return ret
}

func ReadFile(filename string) (*Audio, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w. file=%s", base.ErrFileNotExist, filename)
		}
		return nil, err
	}
	return Decode(data)
}

// Decode
//
// @param data: 函数调用结束后，内部不持有该内存块
func Decode(data []byte) (*Audio, error) {
	if len(data) < headerLength || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, base.ErrWav
	}

	var (
		fmtBody  []byte
		dataBody []byte
	)
	pos := headerLength
	for pos+chunkHeadLength <= len(data) {
		id := string(data[pos : pos+4])
		size := int(bele.LeUint32(data[pos+4:]))
		begin := pos + chunkHeadLength
		end := begin + size
		if end > len(data) || end < begin {
			// 有些录音设备在写完之前就被中断了，data chunk的长度字段不可信
			end = len(data)
		}
		switch id {
		case "fmt ":
			fmtBody = data[begin:end]
		case "data":
			dataBody = data[begin:end]
		default:
			base.Log.Debugf("wav skip chunk. id=%s, size=%d", id, size)
		}
		pos = end + size%2
	}

	if len(fmtBody) < minFmtLength {
		return nil, base.NewErrWavFormat(-1, -1)
	}
	// 两个2字节的字段合在一个le uint32中读取
	w := bele.LeUint32(fmtBody)
	audioFormat := int(w & 0xFFFF)
	channels := int(w >> 16)
	sampleRate := int(bele.LeUint32(fmtBody[4:]))
	w = bele.LeUint32(fmtBody[12:])
	bitsPerSample := int(w >> 16)

	if (audioFormat != FormatPcm && audioFormat != FormatExtensible) ||
		(bitsPerSample != 8 && bitsPerSample != 16) ||
		channels == 0 || sampleRate == 0 {
		return nil, base.NewErrWavFormat(audioFormat, bitsPerSample)
	}
	if dataBody == nil {
		return nil, base.ErrWavNoData
	}

	a := &Audio{
		SampleRate:    sampleRate,
		Channels:      channels,
		BitsPerSample: bitsPerSample,
	}
	bytesPerSample := bitsPerSample / 8
	n := len(dataBody) / bytesPerSample
	n -= n % channels
	a.Samples = make([]int16, n)
	for i := 0; i < n; i++ {
		if bytesPerSample == 1 {
			a.Samples[i] = int16(int(dataBody[i])-128) << 8
		} else {
			a.Samples[i] = int16(uint16(dataBody[2*i]) | uint16(dataBody[2*i+1])<<8)
		}
	}
	return a, nil
}

// Encode 生成16 bit PCM的wav文件
//
// @param samples: 多声道时交错存放
//
// @return 内存块为独立新申请
func Encode(samples []int16, sampleRate int, channels int) []byte {
	dataSize := len(samples) * 2
	out := make([]byte, CanonicalHeaderLength+dataSize)
	blockAlign := channels * 2

	copy(out[0:], "RIFF")
	bele.LePutUint32(out[4:], uint32(CanonicalHeaderLength-8+dataSize))
	copy(out[8:], "WAVE")
	copy(out[12:], "fmt ")
	bele.LePutUint32(out[16:], minFmtLength)
	bele.LePutUint32(out[20:], uint32(channels)<<16|FormatPcm)
	bele.LePutUint32(out[24:], uint32(sampleRate))
	bele.LePutUint32(out[28:], uint32(sampleRate*blockAlign))
	bele.LePutUint32(out[32:], 16<<16|uint32(blockAlign))
	copy(out[36:], "data")
	bele.LePutUint32(out[40:], uint32(dataSize))

	for i, s := range samples {
		out[CanonicalHeaderLength+2*i] = byte(uint16(s))
		out[CanonicalHeaderLength+2*i+1] = byte(uint16(s) >> 8)
	}
	return out
}
