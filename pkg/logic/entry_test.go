// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package logic_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/q191201771/ltc/pkg/base"
	"github.com/q191201771/ltc/pkg/innertest"
	"github.com/q191201771/ltc/pkg/logic"
	"github.com/q191201771/ltc/pkg/wav"
	"github.com/q191201771/naza/pkg/assert"
)

func TestEntry(t *testing.T) {
	innertest.InnerTestEntry(t)
}

func TestRun_Error(t *testing.T) {
	config, err := logic.LoadConf([]byte(`{"log": {"filename": ""}}`))
	assert.Equal(t, nil, err)

	_, err = logic.Run(config)
	assert.Equal(t, base.ErrLtcNoInput, err)

	dir := t.TempDir()
	config.LtcConfig.InputFile = filepath.Join(dir, "notexist.wav")
	_, err = logic.Run(config)
	assert.IsNotNil(t, err)

	config.LtcConfig.InputFile = filepath.Join(dir, "mono.wav")
	err = os.WriteFile(config.LtcConfig.InputFile, wav.Encode(make([]int16, 100), 48000, 1), 0666)
	assert.Equal(t, nil, err)
	config.LtcConfig.Channel = 1
	_, err = logic.Run(config)
	assert.Equal(t, true, errors.Is(err, base.ErrLtcNoChannel))
}
