// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package logic

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/q191201771/ltc/pkg/base"
	"github.com/q191201771/naza/pkg/assert"
	"github.com/q191201771/naza/pkg/nazalog"
)

func TestLoadConf(t *testing.T) {
	config, err := LoadConf([]byte("{}"))
	assert.Equal(t, nil, err)
	assert.Equal(t, "", config.LtcConfig.InputFile)
	assert.Equal(t, 0, config.LtcConfig.Channel)
	assert.Equal(t, base.LogicDumpFrameMaxNumDefault, config.LtcConfig.DumpFrameMaxNum)
	assert.Equal(t, int16(256), config.BiphaseConfig.Threshold)
	assert.Equal(t, 25.0, config.BiphaseConfig.InitialFps)
	assert.Equal(t, false, config.StatConfig.Enable)
	assert.Equal(t, defaultStatTextfile, config.StatConfig.Textfile)
	assert.Equal(t, nazalog.LevelInfo, config.LogConfig.Level)
	assert.Equal(t, defaultLogFilename, config.LogConfig.Filename)
	assert.Equal(t, true, config.LogConfig.IsToStdout)

	config, err = LoadConf([]byte(`{
  "ltc": {"input_file": "a.wav", "channel": 1, "output_file": "a.txt", "dump_frame_max_num": -1},
  "biphase": {"threshold": 0, "initial_fps": 30},
  "stat": {"enable": true, "textfile": "a.prom"},
  "log": {"level": 1, "filename": ""}
}`))
	assert.Equal(t, nil, err)
	assert.Equal(t, "a.wav", config.LtcConfig.InputFile)
	assert.Equal(t, 1, config.LtcConfig.Channel)
	assert.Equal(t, "a.txt", config.LtcConfig.OutputFile)
	assert.Equal(t, -1, config.LtcConfig.DumpFrameMaxNum)
	assert.Equal(t, int16(0), config.BiphaseConfig.Threshold)
	assert.Equal(t, 30.0, config.BiphaseConfig.InitialFps)
	assert.Equal(t, true, config.StatConfig.Enable)
	assert.Equal(t, "a.prom", config.StatConfig.Textfile)
	assert.Equal(t, nazalog.LevelDebug, config.LogConfig.Level)
	assert.Equal(t, "", config.LogConfig.Filename)
}

func TestLoadConf_Invalid(t *testing.T) {
	for _, raw := range []string{
		"",
		"{",
		`{"ltc": {"channel": -1}}`,
		`{"biphase": {"initial_fps": 0}}`,
	} {
		_, err := LoadConf([]byte(raw))
		assert.Equal(t, true, errors.Is(err, base.ErrConfig), raw)
	}
}

func TestLoadConfAndInitLog(t *testing.T) {
	_, err := LoadConfAndInitLog(filepath.Join(t.TempDir(), "notexist.conf.json"))
	assert.IsNotNil(t, err)

	confFile := filepath.Join(t.TempDir(), "ltcdecoder.conf.json")
	err = os.WriteFile(confFile, []byte(`{"ltc": {"input_file": "a.wav"}, "log": {"level": 2, "filename": ""}}`), 0666)
	assert.Equal(t, nil, err)
	config, err := LoadConfAndInitLog(confFile)
	assert.Equal(t, nil, err)
	assert.Equal(t, "a.wav", config.LtcConfig.InputFile)
	assert.Equal(t, nazalog.LevelInfo, base.Log.GetOption().Level)
}
