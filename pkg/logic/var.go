// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package logic

// 解码器默认参数，配置文件中不存在对应配置项时使用
var (
	defaultBiphaseThreshold int16 = 256
	defaultInitialFps             = 25.0

	defaultStatTextfile = "./logs/ltcdecoder.prom"
	defaultLogFilename  = "./logs/ltcdecoder.log"
)
