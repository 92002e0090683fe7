// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package base

import (
	"fmt"

	"github.com/q191201771/naza/pkg/nazalog"
)

// LogDump 控制高频内容（比如每个LTC帧的寄存器位图）的打印次数
//
// trace级别不限次数，debug级别最多打印debugMaxNum次，其他级别不打印
type LogDump struct {
	log         nazalog.Logger
	debugMaxNum int

	debugCount int
	dumpCount  int
}

// NewLogDump
//
// @param debugMaxNum: 日志最小级别为debug时，使用debug打印日志次数的阈值。小于0表示不限次数
func NewLogDump(log nazalog.Logger, debugMaxNum int) LogDump {
	return LogDump{
		log:         log,
		debugMaxNum: debugMaxNum,
	}
}

func (ld *LogDump) ShouldDump() bool {
	switch ld.log.GetOption().Level {
	case nazalog.LevelTrace:
		return true
	case nazalog.LevelDebug:
		if ld.debugMaxNum >= 0 && ld.debugCount >= ld.debugMaxNum {
			return false
		}
		ld.debugCount++
		return true
	}
	return false
}

// Outf
//
// 调用之前需调用 ShouldDump ，避免不需要打印时构造实参的开销，比如
// ld.Outf("frame=%s", frame.DebugString())
func (ld *LogDump) Outf(format string, v ...interface{}) {
	ld.dumpCount++
	ld.log.Out(ld.log.GetOption().Level, 3, fmt.Sprintf(format, v...))
}

// DumpCount 已经打印的次数
func (ld *LogDump) DumpCount() int {
	return ld.dumpCount
}
