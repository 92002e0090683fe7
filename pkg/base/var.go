// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package base

import "github.com/q191201771/naza/pkg/nazalog"

var Log = nazalog.GetGlobalLogger()

// ----- logic --------------------
var (
	// LogicDumpFrameMaxNumDefault 日志级别为debug时，最多打印多少个LTC帧的详细内容
	LogicDumpFrameMaxNumDefault = 16
)
