// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"fmt"
	"image/color"
)

// Qualitative palettes from Color Brewer.
var Set1_9 = []color.Color{color.RGBA{228, 26, 28, 255}, color.RGBA{55, 126, 184, 255}, color.RGBA{77, 175, 74, 255}, color.RGBA{152, 78, 163, 255}, color.RGBA{255, 127, 0, 255}, color.RGBA{255, 255, 51, 255}, color.RGBA{166, 86, 40, 255}, color.RGBA{247, 129, 191, 255}, color.RGBA{153, 153, 153, 255}}

// barColor is the fill of every bar.
var barColor = Set1_9[1]

func svgColor(c color.Color) string {
	c2 := color.NRGBAModel.Convert(c).(color.NRGBA)
	if c2.A == 255 {
		return fmt.Sprintf("rgb(%d,%d,%d)", c2.R, c2.G, c2.B)
	} else {
		return fmt.Sprintf("rgba(%d,%d,%d,%f)", c2.R, c2.G, c2.B, float64(c2.A)/255)
	}
}
