// Copyright 2024 The Cayley Authors. All rights reserved.
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

// Package clog provides a logging interface for catalogqa packages.
//
// Packages log through the functions of this package only. A backend is
// selected by importing it for side effects, e.g. clog/glog.
package clog

import (
	"log"
	"os"
	"sync/atomic"
)

// Logger is the clog logging interface.
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// Verbosity is implemented by backends that manage their own verbosity level.
type Verbosity interface {
	V(level int) bool
	SetV(level int)
}

var logger Logger = stdlog{l: log.New(os.Stderr, "catalogqa: ", log.LstdFlags)}

// SetLogger sets the clog logging implementation. A nil logger disables logging.
func SetLogger(l Logger) { logger = l }

var verbosity int32

// V returns whether the current clog verbosity is above the specified level.
func V(level int) bool {
	if v, ok := logger.(Verbosity); ok {
		return v.V(level)
	}
	return int(atomic.LoadInt32(&verbosity)) >= level
}

// SetV sets the clog verbosity level.
func SetV(level int) {
	if v, ok := logger.(Verbosity); ok {
		v.SetV(level)
		return
	}
	atomic.StoreInt32(&verbosity, int32(level))
}

// Infof logs information level messages.
func Infof(format string, args ...interface{}) {
	if logger != nil {
		logger.Infof(format, args...)
	}
}

// Warningf logs warning level messages.
func Warningf(format string, args ...interface{}) {
	if logger != nil {
		logger.Warningf(format, args...)
	}
}

// Errorf logs error level messages.
func Errorf(format string, args ...interface{}) {
	if logger != nil {
		logger.Errorf(format, args...)
	}
}

// Fatalf logs fatal messages and terminates the program.
func Fatalf(format string, args ...interface{}) {
	if logger != nil {
		logger.Fatalf(format, args...)
	}
}

// stdlog wraps the standard library logger.
type stdlog struct {
	l *log.Logger
}

func (s stdlog) Infof(format string, args ...interface{}) { s.l.Printf(format, args...) }
func (s stdlog) Warningf(format string, args ...interface{}) {
	s.l.Printf("WARN: "+format, args...)
}
func (s stdlog) Errorf(format string, args ...interface{}) { s.l.Printf("ERROR: "+format, args...) }
func (s stdlog) Fatalf(format string, args ...interface{}) { s.l.Fatalf("FATAL: "+format, args...) }
