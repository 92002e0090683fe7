// Copyright 2026, Chef.  All rights reserved.
// https://github.com/q191201771/ltc
//
// Use of this source code is governed by a MIT-style license
// that can be found in the License file.
//
// Author: Chef (191201771@qq.com)

package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stat 解码过程的prometheus指标
//
// 使用独立的registry，多个解码会话之间互不影响。不开监听端口，以textfile的形式落盘，
// 由node_exporter的textfile collector采集
type Stat struct {
	registry *prometheus.Registry

	Samples         prometheus.Counter
	Bits            prometheus.Counter
	Frames          prometheus.Counter
	InvalidFrames   prometheus.Counter
	Resyncs         prometheus.Counter
	Discontinuities prometheus.Counter

	Fps             prometheus.Gauge
	SamplesPerFrame prometheus.Histogram
}

func NewStat() *Stat {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Stat{
		registry: registry,
		Samples: factory.NewCounter(prometheus.CounterOpts{
			Name: "ltc_samples_total",
			Help: "Total number of audio samples fed to the decoder",
		}),
		Bits: factory.NewCounter(prometheus.CounterOpts{
			Name: "ltc_bits_total",
			Help: "Total number of bits recovered by the biphase demodulator",
		}),
		Frames: factory.NewCounter(prometheus.CounterOpts{
			Name: "ltc_frames_total",
			Help: "Total number of aligned frames decoded",
		}),
		InvalidFrames: factory.NewCounter(prometheus.CounterOpts{
			Name: "ltc_invalid_frames_total",
			Help: "Total number of decoded frames whose fields are out of range",
		}),
		Resyncs: factory.NewCounter(prometheus.CounterOpts{
			Name: "ltc_resyncs_total",
			Help: "Total number of out of phase sync words that discarded the register",
		}),
		Discontinuities: factory.NewCounter(prometheus.CounterOpts{
			Name: "ltc_discontinuities_total",
			Help: "Total number of frames not following the previous timecode",
		}),
		Fps: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ltc_fps",
			Help: "Frame rate measured from the sample count of the last frame",
		}),
		SamplesPerFrame: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ltc_samples_per_frame",
			Help:    "Number of samples between two sync words",
			Buckets: prometheus.LinearBuckets(1000, 250, 12), // 1000 to 3750
		}),
	}
}

func (s *Stat) Registry() *prometheus.Registry {
	return s.registry
}

// WriteTextfile 写入prometheus text exposition格式的文件，内部先写临时文件再rename
func (s *Stat) WriteTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, s.registry)
}
