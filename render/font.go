// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// OverlayFontSize is the point size of the readout text.
const OverlayFontSize = 20

// NewFontSource loads the embedded Go Regular font.
// The source is heavyweight; create it once and close it when done.
func NewFontSource() (*text.FontSource, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: load overlay font: %w", err)
	}
	return src, nil
}
