package chat

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/labtrail/labtrail/pkg/models"
)

const (
	thumbWidth    = 160
	thumbHeight   = 90
	renderScale   = 4 // draw at 4x, downscale for smooth edges
	maxThumbBars  = 40
	thumbBarColor = 0x4a // mid gray, the client recolors
)

// renderThumbnail draws a tiny bar preview of the first numeric column and
// returns it as a base64 PNG. Empty string when the data has no numeric
// series worth previewing.
func renderThumbnail(data *models.QueryResult, _ string) string {
	series := numericSeries(data)
	if len(series) < 2 {
		return ""
	}
	if len(series) > maxThumbBars {
		series = series[:maxThumbBars]
	}

	minV, maxV := series[0], series[0]
	for _, v := range series[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	span := maxV - minV
	if span == 0 {
		span = 1
	}

	w, h := thumbWidth*renderScale, thumbHeight*renderScale
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	barW := w / len(series)
	if barW < 1 {
		barW = 1
	}
	fill := color.RGBA{thumbBarColor, thumbBarColor, thumbBarColor, 0xff}
	for i, v := range series {
		barH := int(float64(h-2) * (v - minV + span*0.05) / (span * 1.05))
		x0 := i * barW
		for x := x0; x < x0+barW-renderScale && x < w; x++ {
			for y := h - barH; y < h; y++ {
				canvas.SetRGBA(x, y, fill)
			}
		}
	}

	thumb := image.NewRGBA(image.Rect(0, 0, thumbWidth, thumbHeight))
	xdraw.BiLinear.Scale(thumb, thumb.Bounds(), canvas, canvas.Bounds(), xdraw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// numericSeries picks the first column whose values are predominantly
// numeric and returns them in row order.
func numericSeries(data *models.QueryResult) []float64 {
	if data == nil {
		return nil
	}
	for _, col := range data.Columns {
		var series []float64
		numeric := 0
		for _, row := range data.Rows {
			if v, ok := asFloat(row[col]); ok {
				series = append(series, v)
				numeric++
			}
		}
		if numeric >= len(data.Rows)/2 && numeric >= 2 {
			return series
		}
	}
	return nil
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
