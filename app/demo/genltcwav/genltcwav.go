// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/q191201771/ltc/pkg/base"
	"github.com/q191201771/ltc/pkg/biphase"
	"github.com/q191201771/ltc/pkg/ltc"
	"github.com/q191201771/ltc/pkg/timecode"
	"github.com/q191201771/ltc/pkg/wav"
	"github.com/q191201771/naza/pkg/nazalog"
)

// 生成一个单声道的LTC wav文件，用于测试ltcdecoder
//
// Usage:
// ./bin/genltcwav -o /tmp/ltc.wav -s 10:00:00:00 -f 25 -n 250

func main() {
	_ = nazalog.Init(func(option *nazalog.Option) {
		option.AssertBehavior = nazalog.AssertFatal
	})
	defer nazalog.Sync()
	base.LogoutStartInfo()

	outFileName, start, fps, sampleRate, frameNum := parseFlag()

	m := biphase.NewModulator(sampleRate, float64(fps))
	var samples []int16
	tc := start
	for i := 0; i < frameNum; i++ {
		ltc.ForEachBit(ltc.PackFrame(tc.Hours, tc.Minutes, tc.Seconds, tc.Frames), func(bit bool) {
			samples = m.AppendBits(samples, []bool{bit})
		})
		tc, _ = tc.Next()
	}
	// 最后一帧的最后一个bit需要一次翻转来结束
	samples = m.AppendBits(samples, []bool{false})

	err := os.WriteFile(outFileName, wav.Encode(samples, sampleRate, 1), 0666)
	nazalog.Assert(nil, err)
	nazalog.Infof("write wav done. file=%s, start=%s, fps=%d, frames=%d, samples=%d",
		outFileName, start.String(), fps, frameNum, len(samples))
}

func parseFlag() (outFileName string, start timecode.Timecode, fps int, sampleRate int, frameNum int) {
	o := flag.String("o", "", "specify output wav file")
	s := flag.String("s", "00:00:00:00", "specify start timecode, HH:MM:SS:FF")
	f := flag.Int("f", 25, "specify fps, 24, 25 or 30")
	r := flag.Int("r", 48000, "specify sample rate")
	n := flag.Int("n", 250, "specify number of frames")
	flag.Parse()
	if *o == "" {
		flag.Usage()
		_, _ = fmt.Fprintf(os.Stderr, `
Example:
  ./bin/genltcwav -o /tmp/ltc.wav -s 10:00:00:00 -f 25 -n 250
`)
		os.Exit(1)
	}

	frameRate := timecode.FrameRateFromDuration(1 / float64(*f))
	var h, m, sec, fr uint8
	if _, err := fmt.Sscanf(*s, "%d:%d:%d:%d", &h, &m, &sec, &fr); err != nil {
		nazalog.Fatalf("invalid start timecode. s=%s, err=%+v", *s, err)
	}
	start = timecode.New(h, m, sec, fr, frameRate)
	if frameRate == timecode.FrameRateUnknown || !start.Valid() {
		nazalog.Fatalf("invalid start timecode or fps. s=%s, f=%d", *s, *f)
	}
	return *o, start, *f, *r, *n
}
