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
	"github.com/q191201771/ltc/pkg/logic"
	"github.com/q191201771/naza/pkg/bininfo"
)

func main() {
	confFile, inputFile := parseFlag()
	if err := logic.Entry(confFile, inputFile); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "decode failed. err=%+v\n", err)
		os.Exit(1)
	}
}

func parseFlag() (string, string) {
	binInfoFlag := flag.Bool("v", false, "show bin info")
	cf := flag.String("c", "", "specify conf file")
	i := flag.String("i", "", "specify input wav file, override ltc.input_file in conf file")
	flag.Parse()
	if *binInfoFlag {
		_, _ = fmt.Fprint(os.Stderr, bininfo.StringifyMultiLine())
		_, _ = fmt.Fprintln(os.Stderr, base.LtcFullInfo)
		os.Exit(0)
	}
	if *cf == "" {
		flag.Usage()
		_, _ = fmt.Fprintf(os.Stderr, `
Example:
  ./bin/ltcdecoder -c ./conf/ltcdecoder.conf.json
  ./bin/ltcdecoder -c ./conf/ltcdecoder.conf.json -i /tmp/ltc.wav
`)
		os.Exit(1)
	}
	return *cf, *i
}
