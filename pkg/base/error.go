// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package base

import (
	"errors"
	"fmt"
)

// ----- 通用的 ---------------------------------------------------------------------------------------------------------

var (
	ErrFileNotExist = errors.New("ltc: file not exist")
	ErrDumpFile     = errors.New("ltc: invalid dump file")
)

// ----- pkg/wav -------------------------------------------------------------------------------------------------------

var (
	ErrWav       = errors.New("ltc.wav: not a riff wave file")
	ErrWavFormat = errors.New("ltc.wav: unsupported format")
	ErrWavNoData = errors.New("ltc.wav: data chunk not found")
)

func NewErrWavFormat(audioFormat, bitsPerSample int) error {
	return fmt.Errorf("%w. audioFormat=%d, bitsPerSample=%d", ErrWavFormat, audioFormat, bitsPerSample)
}

// ----- pkg/logic -----------------------------------------------------------------------------------------------------

var (
	ErrConfig       = errors.New("ltc.logic: invalid config")
	ErrLtcNoInput   = errors.New("ltc.logic: input file not specified")
	ErrLtcNoChannel = errors.New("ltc.logic: channel out of range")
)

func NewErrLtcNoChannel(channel, channels int) error {
	return fmt.Errorf("%w. channel=%d, channels=%d", ErrLtcNoChannel, channel, channels)
}

// ---------------------------------------------------------------------------------------------------------------------
