/*
 * log.go, part of gocesmd.
 *
 * Copyright 2026 The gocesmd authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package log holds the process-wide zap logger used by the converter.
// The cesmd package itself never logs.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var sugar *zap.SugaredLogger
var base *zap.Logger

// Init builds the logger. Debug mode uses zap's development settings.
func Init(debug bool) error {
	var l *zap.Logger
	var err error
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}
	Set(l)
	return nil
}

// Set replaces the logger, tests use it to install zaptest or observer loggers.
func Set(l *zap.Logger) {
	base = l
	sugar = l.Sugar()
}

// Logger returns the base logger, building a production one if Init was never called.
func Logger() *zap.Logger {
	if base == nil {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		Set(l)
	}
	return base
}

// Sugared returns the sugared logger.
func Sugared() *zap.SugaredLogger {
	Logger()
	return sugar
}

// Sync flushes buffered entries.
func Sync() {
	if base != nil {
		base.Sync()
	}
}

func Debugw(msg string, keysAndValues ...any) {
	Sugared().Debugw(msg, keysAndValues...)
}

func Infof(template string, args ...any) {
	Sugared().Infof(template, args...)
}

func Infow(msg string, keysAndValues ...any) {
	Sugared().Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...any) {
	Sugared().Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...any) {
	Sugared().Errorw(msg, keysAndValues...)
}
