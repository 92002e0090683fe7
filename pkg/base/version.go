// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package base

// 版本信息相关
// 一部分版本信息使用了naza.bininfo，另外一些信息在本文件提供，并打入可执行文件和日志中

// 版本，该变量由外部脚本修改维护
const LtcVersion = "v0.3.0"

var (
	LtcLibraryName = "ltc"
	LtcGithubRepo  = "github.com/q191201771/ltc"
	LtcGithubSite  = "https://github.com/q191201771/ltc"

	// e.g. ltc v0.3.0 (github.com/q191201771/ltc)
	LtcFullInfo = LtcLibraryName + " " + LtcVersion + " (" + LtcGithubRepo + ")"
)
