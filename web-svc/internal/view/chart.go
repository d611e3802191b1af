package view

import (
	"bytes"
	"fmt"
	"strconv"

	"overcooked-simplified/web-svc/internal/domain"
	"overcooked-simplified/web-svc/internal/service"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var barColors = [5]string{"ef4444", "f97316", "eab308", "22c55e", "3b82f6"}

// BarChart draws the rating distribution as an SVG bar chart.
type BarChart struct {
	Width    int
	Height   int
	BarWidth int
}

func NewBarChart() *BarChart {
	return &BarChart{Width: 640, Height: 320, BarWidth: 60}
}

func (c *BarChart) RenderDistribution(dist domain.RatingDistribution) ([]byte, error) {
	top := 1
	for _, v := range dist {
		if v > top {
			top = v
		}
	}

	bars := make([]chart.Value, 0, len(dist))
	for i, v := range dist {
		color := drawing.ColorFromHex(barColors[i])
		bars = append(bars, chart.Value{
			Value: float64(v),
			Label: service.RatingLabel(i + 1),
			Style: chart.Style{FillColor: color, StrokeColor: color},
		})
	}

	graph := chart.BarChart{
		Width:      c.Width,
		Height:     c.Height,
		BarWidth:   c.BarWidth,
		BarSpacing: 40,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(top)},
			Ticks: integerTicks(top),
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render rating chart: %w", err)
	}
	return buf.Bytes(), nil
}

// integerTicks labels the y axis with whole review counts, at most about ten.
func integerTicks(top int) []chart.Tick {
	step := 1
	for top/step > 10 {
		step *= 2
	}
	ticks := make([]chart.Tick, 0, top/step+2)
	for v := 0; v <= top; v += step {
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}
	if last := ticks[len(ticks)-1]; int(last.Value) != top {
		ticks = append(ticks, chart.Tick{Value: float64(top), Label: strconv.Itoa(top)})
	}
	return ticks
}
