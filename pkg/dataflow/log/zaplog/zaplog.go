// Licensed to the Apache Software Foundation (ASF) under one or more
// contributor license agreements.  See the NOTICE file distributed with
// this work for additional information regarding copyright ownership.
// The ASF licenses this file to You under the Apache License, Version 2.0
// (the "License"); you may not use this file except in compliance with
// the License.  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package zaplog bridges the context-aware log package to a zap logger,
// giving pipelines leveled, structured output without changing call sites.
package zaplog

import (
	"context"

	"go.uber.org/zap"

	"github.com/CSberger/DataflowPythonSDK/pkg/dataflow/log"
)

// logger adapts a zap.SugaredLogger to the log.Logger interface.
type logger struct {
	zl *zap.SugaredLogger
}

// New returns a log.Logger backed by the given zap logger.
func New(zl *zap.Logger) log.Logger {
	// AddCallerSkip covers the log package frames so the caller location
	// points at user code.
	return &logger{zl: zl.WithOptions(zap.AddCallerSkip(3)).Sugar()}
}

// Use installs a zap-backed logger as the global logging backend.
func Use(zl *zap.Logger) {
	log.SetLogger(New(zl))
}

func (l *logger) Log(ctx context.Context, sev log.Severity, calldepth int, msg string) {
	switch sev {
	case log.SevDebug:
		l.zl.Debug(msg)
	case log.SevWarn:
		l.zl.Warn(msg)
	case log.SevError:
		l.zl.Error(msg)
	case log.SevFatal:
		// The log package panics or exits itself after logging.
		l.zl.Error(msg)
	default:
		l.zl.Info(msg)
	}
}
