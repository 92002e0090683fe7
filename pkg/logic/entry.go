// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package logic

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/q191201771/ltc/pkg/base"
	"github.com/q191201771/ltc/pkg/ltc"
	"github.com/q191201771/ltc/pkg/timecode"
	"github.com/q191201771/ltc/pkg/wav"
	"github.com/q191201771/naza/pkg/nazaerrors"
	"github.com/q191201771/naza/pkg/nazalog"
)

// Entry 命令行程序的入口
//
// @param inputFile: 不为空时覆盖配置文件中的 ltc.input_file
func Entry(confFile string, inputFile string) error {
	config, err := LoadConfAndInitLog(confFile)
	if err != nil {
		return err
	}
	if inputFile != "" {
		config.LtcConfig.InputFile = inputFile
	}

	base.LogoutStartInfo()

	stat, err := Run(config)
	if err != nil {
		nazalog.Errorf("decode failed. err=%+v", err)
		return err
	}
	nazalog.Infof("decode done. stat=%+v", stat)
	return nil
}

// Run 解码 config.LtcConfig.InputFile 中的一个声道，每个时码输出一行
//
// 行格式为 `<帧结束位置，单位秒> <时码> <帧率>`
func Run(config *Config) (DecoderStat, error) {
	if config.LtcConfig.InputFile == "" {
		return DecoderStat{}, base.ErrLtcNoInput
	}

	audio, err := wav.ReadFile(config.LtcConfig.InputFile)
	if err != nil {
		return DecoderStat{}, nazaerrors.Wrap(err)
	}
	if config.LtcConfig.Channel < 0 || config.LtcConfig.Channel >= audio.Channels {
		return DecoderStat{}, base.NewErrLtcNoChannel(config.LtcConfig.Channel, audio.Channels)
	}
	nazalog.Infof("open input. file=%s, sampleRate=%d, channels=%d, bitsPerSample=%d, duration=%.3fs",
		config.LtcConfig.InputFile, audio.SampleRate, audio.Channels, audio.BitsPerSample, audio.Duration())

	var out io.Writer = os.Stdout
	var outFp *os.File
	if config.LtcConfig.OutputFile != "" {
		if outFp, err = createFile(config.LtcConfig.OutputFile); err != nil {
			return DecoderStat{}, nazaerrors.Wrap(err)
		}
		out = outFp
	}
	w := bufio.NewWriter(out)

	var dumpFile *base.DumpFile
	if config.LtcConfig.DumpFile != "" {
		dumpFile = base.NewDumpFile()
		if err = dumpFile.OpenToWrite(config.LtcConfig.DumpFile); err != nil {
			_ = w.Flush()
			if outFp != nil {
				_ = outFp.Close()
			}
			return DecoderStat{}, nazaerrors.Wrap(err)
		}
	}

	var stat *Stat
	if config.StatConfig.Enable {
		stat = NewStat()
	}

	var samplePos int
	var writeErr error
	decoder := NewDecoder(audio.SampleRate, func(option *DecoderOption) {
		option.Threshold = config.BiphaseConfig.Threshold
		option.InitialFps = config.BiphaseConfig.InitialFps
		option.DumpFrameMaxNum = config.LtcConfig.DumpFrameMaxNum
		option.Stat = stat
		option.OnTimecode = func(tc timecode.Timecode, frame ltc.DecodedFrame) {
			if writeErr != nil {
				return
			}
			_, writeErr = fmt.Fprintf(w, "%.6f %s %s\n",
				float64(samplePos)/float64(audio.SampleRate), tc.String(), tc.FrameRate.String())
			if writeErr == nil && dumpFile != nil {
				writeErr = dumpFile.WriteWithType(frame.Data.Bytes(), base.DumpTypeLtcFrame, uint32(samplePos))
			}
		}
	})

	for _, sample := range audio.Channel(config.LtcConfig.Channel) {
		samplePos++
		decoder.FeedSample(sample)
	}

	// 多个收尾步骤都执行，返回第一个错误
	err = writeErr
	if flushErr := w.Flush(); err == nil {
		err = flushErr
	}
	if outFp != nil {
		if closeErr := outFp.Close(); err == nil {
			err = closeErr
		}
	}
	if dumpFile != nil {
		if closeErr := dumpFile.Close(); err == nil {
			err = closeErr
		}
	}
	if stat != nil {
		if statErr := writeTextfile(stat, config.StatConfig.Textfile); err == nil {
			err = statErr
		}
	}
	return decoder.Stat(), err
}

func writeTextfile(stat *Stat, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0777); err != nil {
		return err
	}
	if err := stat.WriteTextfile(filename); err != nil {
		return err
	}
	nazalog.Infof("write stat textfile. file=%s", filename)
	return nil
}

func createFile(filename string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0777); err != nil {
		return nil, err
	}
	return os.Create(filename)
}
