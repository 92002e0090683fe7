// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package innertest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/q191201771/ltc/pkg/base"
	"github.com/q191201771/ltc/pkg/logic"
	"github.com/q191201771/ltc/pkg/ltc"
	"github.com/q191201771/ltc/pkg/timecode"
	"github.com/q191201771/ltc/pkg/wav"
	"github.com/q191201771/naza/pkg/assert"
)

// 生成一个双声道的wav文件，声道0为静音，声道1为从10:00:00:00开始的LTC
// 写配置文件，走一遍 logic.Entry 的完整流程
// 检查输出的时码文件以及prometheus textfile

var (
	sampleRate = 48000
	fps        = 25.0
	frameNum   = 60
	start      = timecode.New(10, 0, 0, 0, timecode.FrameRate25)
)

func InnerTestEntry(t *testing.T) {
	dir := t.TempDir()
	inputFile := filepath.Join(dir, "ltc.wav")
	outputFile := filepath.Join(dir, "out", "timecode.txt")
	textfile := filepath.Join(dir, "out", "ltcdecoder.prom")
	dumpFile := filepath.Join(dir, "out", "frame.ltcdump")
	confFile := filepath.Join(dir, "ltcdecoder.conf.json")

	s := NewSynthesizer(sampleRate, fps)
	// 开头不加静音，否则第一帧的采样计数偏大，帧率识别不出来
	ltcSamples := s.AppendFrames(nil, start, frameNum)
	ltcSamples = s.AppendBits(ltcSamples, []bool{false})
	ltcSamples = s.AppendSilence(ltcSamples, 480)

	interleaved := make([]int16, 0, len(ltcSamples)*2)
	for _, v := range ltcSamples {
		interleaved = append(interleaved, 0, v)
	}
	err := os.WriteFile(inputFile, wav.Encode(interleaved, sampleRate, 2), 0666)
	assert.Equal(t, nil, err)

	conf := fmt.Sprintf(`{
  "ltc": {
    "input_file": %q,
    "channel": 1,
    "output_file": %q,
    "dump_file": %q,
    "dump_frame_max_num": 4
  },
  "stat": {
    "enable": true,
    "textfile": %q
  },
  "log": {
    "level": 3,
    "filename": "",
    "is_to_stdout": true
  }
}`, inputFile, outputFile, dumpFile, textfile)
	err = os.WriteFile(confFile, []byte(conf), 0666)
	assert.Equal(t, nil, err)

	err = logic.Entry(confFile, "")
	assert.Equal(t, nil, err)

	content, err := os.ReadFile(outputFile)
	assert.Equal(t, nil, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Equal(t, frameNum, len(lines))
	tc := start
	for _, line := range lines {
		fields := strings.Fields(line)
		assert.Equal(t, 3, len(fields))
		if len(fields) != 3 {
			return
		}
		assert.Equal(t, tc.String(), fields[1])
		assert.Equal(t, "25fps", fields[2])
		tc, _ = tc.Next()
	}

	df := base.NewDumpFile()
	err = df.OpenToRead(dumpFile)
	assert.Equal(t, nil, err)
	var prevTimestamp uint32
	for i := 0; i < frameNum; i++ {
		m, err := df.ReadOneMessage()
		assert.Equal(t, nil, err)
		assert.Equal(t, uint32(base.DumpTypeLtcFrame), m.Typ)
		if i == 0 {
			assert.Equal(t, ltc.PackFrame(start.Hours, start.Minutes, start.Seconds, start.Frames), m.Body)
		} else {
			// 一帧80 bit，每个bit 24个采样
			assert.Equal(t, uint32(1920), m.Timestamp-prevTimestamp)
		}
		prevTimestamp = m.Timestamp
	}
	_, err = df.ReadOneMessage()
	assert.Equal(t, io.EOF, err)
	_ = df.Close()

	prom, err := os.ReadFile(textfile)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(string(prom), fmt.Sprintf("ltc_frames_total %d", frameNum)))
	assert.Equal(t, true, strings.Contains(string(prom), "ltc_resyncs_total 0"))

	// 输入文件由命令行参数覆盖，声道0只有静音
	conf = strings.Replace(conf, `"channel": 1`, `"channel": 0`, 1)
	err = os.WriteFile(confFile, []byte(conf), 0666)
	assert.Equal(t, nil, err)
	err = logic.Entry(confFile, inputFile)
	assert.Equal(t, nil, err)
	content, err = os.ReadFile(outputFile)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(content))
}
