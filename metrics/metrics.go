// Copyright 2026 The backupctl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type commands struct {
	executedVec *prometheus.CounterVec
	errorsVec   *prometheus.CounterVec
}

func (c commands) Executed(command string) prometheus.Counter {
	return c.executedVec.WithLabelValues(command)
}

func (c commands) Errors(command, kind string) prometheus.Counter {
	return c.errorsVec.WithLabelValues(command, kind)
}

type infoCache struct {
	Hits   prometheus.Counter
	Misses prometheus.Counter
	Puts   prometheus.Counter
}

var (
	Commands = commands{
		executedVec: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "backupctl",
			Subsystem: "commands",
			Name:      "executed_total",
			Help:      "Number of command invocations.",
		}, []string{"command"}),
		errorsVec: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "backupctl",
			Subsystem: "commands",
			Name:      "errors_total",
			Help:      "Number of command invocations that failed.",
		}, []string{"command", "kind"}),
	}

	InfoCache = infoCache{
		Hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "backupctl",
			Subsystem: "infocache",
			Name:      "get_hits_total",
			Help:      "Number of backup info reads served from the local cache.",
		}),
		Misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "backupctl",
			Subsystem: "infocache",
			Name:      "get_misses_total",
			Help:      "Number of backup info reads that went to the metadata store.",
		}),
		Puts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "backupctl",
			Subsystem: "infocache",
			Name:      "puts_total",
			Help:      "Number of backup info records written to the local cache.",
		}),
	}
)

func SetupPrometheus(listenAddress, telemetryPath string) {
	if listenAddress == "" {
		return
	}
	go func() {
		http.Handle(telemetryPath, promhttp.Handler())
		err := http.ListenAndServe(listenAddress, nil)
		zap.S().Fatalw("metrics_listen_error", "err", err)
	}()
}

func init() {
	prometheus.MustRegister(Commands.executedVec)
	prometheus.MustRegister(Commands.errorsVec)

	prometheus.MustRegister(InfoCache.Hits)
	prometheus.MustRegister(InfoCache.Misses)
	prometheus.MustRegister(InfoCache.Puts)
}
