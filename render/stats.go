// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/raycast"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var statsPrinter = message.NewPrinter(language.English)

// StatsLines formats the trigonometric readout, one line per ratio,
// in the order cos, sin, tan.
func StatsLines(trig raycast.Trig) [3]string {
	return [3]string{
		statsPrinter.Sprintf("cos = %f", trig.Cos),
		statsPrinter.Sprintf("sin = %f", trig.Sin),
		statsPrinter.Sprintf("tan = %f", trig.Tan),
	}
}
