// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package logic

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/q191201771/ltc/pkg/base"
	"github.com/q191201771/naza/pkg/nazajson"
	"github.com/q191201771/naza/pkg/nazalog"
)

type Config struct {
	LtcConfig     LtcConfig      `json:"ltc"`
	BiphaseConfig BiphaseConfig  `json:"biphase"`
	StatConfig    StatConfig     `json:"stat"`
	LogConfig     nazalog.Option `json:"log"`
}

type LtcConfig struct {
	InputFile       string `json:"input_file"`
	Channel         int    `json:"channel"`
	OutputFile      string `json:"output_file"` // 为空时输出到stdout
	DumpFile        string `json:"dump_file"`   // 不为空时把原始帧保存为二进制文件
	DumpFrameMaxNum int    `json:"dump_frame_max_num"`
}

type BiphaseConfig struct {
	Threshold  int16   `json:"threshold"`
	InitialFps float64 `json:"initial_fps"`
}

type StatConfig struct {
	Enable   bool   `json:"enable"`
	Textfile string `json:"textfile"`
}

// LoadConf 解析配置内容，不存在的配置项使用默认值
func LoadConf(rawContent []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(rawContent, &config); err != nil {
		return nil, fmt.Errorf("%w. err=%+v", base.ErrConfig, err)
	}

	j, err := nazajson.New(rawContent)
	if err != nil {
		return nil, fmt.Errorf("%w. err=%+v", base.ErrConfig, err)
	}

	if !j.Exist("ltc.dump_frame_max_num") {
		config.LtcConfig.DumpFrameMaxNum = base.LogicDumpFrameMaxNumDefault
	}
	if !j.Exist("biphase.threshold") {
		config.BiphaseConfig.Threshold = defaultBiphaseThreshold
	}
	if !j.Exist("biphase.initial_fps") {
		config.BiphaseConfig.InitialFps = defaultInitialFps
	}
	if !j.Exist("stat.textfile") {
		config.StatConfig.Textfile = defaultStatTextfile
	}

	// 日志配置项不存在时，设置默认值
	if !j.Exist("log.level") {
		config.LogConfig.Level = nazalog.LevelInfo
	}
	if !j.Exist("log.filename") {
		config.LogConfig.Filename = defaultLogFilename
	}
	if !j.Exist("log.is_to_stdout") {
		config.LogConfig.IsToStdout = true
	}
	if !j.Exist("log.is_rotate_daily") {
		config.LogConfig.IsRotateDaily = false
	}
	if !j.Exist("log.short_file_flag") {
		config.LogConfig.ShortFileFlag = true
	}
	if !j.Exist("log.assert_behavior") {
		config.LogConfig.AssertBehavior = nazalog.AssertError
	}

	if config.LtcConfig.Channel < 0 {
		return nil, fmt.Errorf("%w. channel=%d", base.ErrConfig, config.LtcConfig.Channel)
	}
	if config.BiphaseConfig.InitialFps <= 0 {
		return nil, fmt.Errorf("%w. initial_fps=%f", base.ErrConfig, config.BiphaseConfig.InitialFps)
	}

	return &config, nil
}

// LoadConfAndInitLog 读取配置文件，并使用其中的日志配置初始化全局日志
func LoadConfAndInitLog(confFile string) (*Config, error) {
	rawContent, err := os.ReadFile(confFile)
	if err != nil {
		return nil, err
	}
	config, err := LoadConf(rawContent)
	if err != nil {
		return nil, err
	}

	// 初始化日志，这一步尽量提前，使得后续的日志内容按配置输出
	if err = nazalog.Init(func(option *nazalog.Option) {
		*option = config.LogConfig
	}); err != nil {
		return nil, err
	}
	base.Log = nazalog.GetGlobalLogger()
	return config, nil
}
