// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package base

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/q191201771/naza/pkg/bele"
	"github.com/q191201771/naza/pkg/nazabytes"
)

// DumpFile 二进制格式保存解出来的原始帧，用于离线分析
//
// 每条消息为16字节头加消息体，头部字段均为大端：
//
//	Ver(4) Typ(4) Len(4) Timestamp(4)
//
// Timestamp 为帧结束时在输入音频中的采样位置
type DumpFile struct {
	file *os.File
}

const (
	DumpFileVersion = 1

	DumpTypeLtcFrame = 1 // 消息体为10字节的LTC帧，按位号从小到大排列

	dumpFileHeaderLength = 16
)

type DumpFileMessage struct {
	Ver       uint32
	Typ       uint32
	Len       uint32
	Timestamp uint32
	Body      []byte
}

func NewDumpFile() *DumpFile {
	return &DumpFile{}
}

func (d *DumpFile) OpenToWrite(filename string) (err error) {
	dir := filepath.Dir(filename)
	if err = os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	d.file, err = os.Create(filename)
	return
}

func (d *DumpFile) OpenToRead(filename string) (err error) {
	d.file, err = os.Open(filename)
	return
}

func (d *DumpFile) WriteWithType(b []byte, typ uint32, timestamp uint32) error {
	_, err := d.file.Write(d.pack(b, typ, timestamp))
	return err
}

// ReadOneMessage 读到文件结尾时返回 io.EOF
func (d *DumpFile) ReadOneMessage() (m DumpFileMessage, err error) {
	m.Ver, err = bele.ReadBeUint32(d.file)
	if err != nil {
		return
	}
	if m.Ver != DumpFileVersion {
		err = fmt.Errorf("%w. ver=%d", ErrDumpFile, m.Ver)
		return
	}
	m.Typ, err = bele.ReadBeUint32(d.file)
	if err != nil {
		return
	}
	m.Len, err = bele.ReadBeUint32(d.file)
	if err != nil {
		return
	}
	m.Timestamp, err = bele.ReadBeUint32(d.file)
	if err != nil {
		return
	}
	m.Body = make([]byte, m.Len)
	if _, err = io.ReadFull(d.file, m.Body); err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return
}

func (d *DumpFile) Close() error {
	if d.file == nil {
		return nil
	}
	return d.file.Close()
}

// ---------------------------------------------------------------------------------------------------------------------

func (m *DumpFileMessage) DebugString() string {
	return fmt.Sprintf("ver: %d, typ: %d, len: %d, timestamp: %d, hex: %s",
		m.Ver, m.Typ, m.Len, m.Timestamp, hex.EncodeToString(nazabytes.Prefix(m.Body, 16)))
}

// ---------------------------------------------------------------------------------------------------------------------

func (d *DumpFile) pack(b []byte, typ uint32, timestamp uint32) []byte {
	ret := make([]byte, len(b)+dumpFileHeaderLength)
	bele.BePutUint32(ret, DumpFileVersion)
	bele.BePutUint32(ret[4:], typ)
	bele.BePutUint32(ret[8:], uint32(len(b)))
	bele.BePutUint32(ret[12:], timestamp)
	copy(ret[16:], b)
	return ret
}
