package launchpad

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TotalSupply is the illustrative token supply shown beside the charts.
const TotalSupply = 10_000_000

// Allocation is one slice of the token distribution.
type Allocation struct {
	Name       string
	Percentage float64
	Color      string
}

// Series is one release-schedule legend entry.
type Series struct {
	Name  string
	Color string
}

// Distribution is the static token allocation table.
var Distribution = []Allocation{
	{Name: "Ignition Sale", Percentage: 10, Color: "#60a5fa"},
	{Name: "Wide Liquidity", Percentage: 22.5, Color: "#3b82f6"},
	{Name: "Concentrated Liquidity", Percentage: 15, Color: "#2563eb"},
	{Name: "Treasury", Percentage: 45, Color: "#1d4ed8"},
	{Name: "Bio Protocol Call Option", Percentage: 2.5, Color: "#1e40af"},
	{Name: "veBIO Airdrop", Percentage: 5, Color: "#38bdf8"},
}

// ReleaseSchedule is the release chart legend, bottom layer first.
var ReleaseSchedule = []Series{
	{Name: "Ignition Sale (20% liquid)", Color: "#60a5fa"},
	{Name: "Wide Liquidity", Color: "#3b82f6"},
	{Name: "Concentrated Liquidity", Color: "#2563eb"},
	{Name: "Bio Protocol Call Option", Color: "#1e40af"},
	{Name: "Ignition Sale (80% vesting)", Color: "#22c55e"},
	{Name: "Treasury", Color: "#6b7280"},
	{Name: "veBIO Airdrop", Color: "#a855f7"},
}

// ValidateDistribution checks that allocations are positive and sum to 100.
func ValidateDistribution(allocations []Allocation) error {
	if len(allocations) == 0 {
		return fmt.Errorf("distribution is empty")
	}
	total := 0.0
	for _, allocation := range allocations {
		if allocation.Percentage <= 0 {
			return fmt.Errorf("allocation %q has non-positive percentage %v", allocation.Name, allocation.Percentage)
		}
		total += allocation.Percentage
	}
	if math.Abs(total-100) > 1e-9 {
		return fmt.Errorf("distribution sums to %v, want 100", total)
	}
	return nil
}

// PieSlice is one rendered sector of the distribution chart.
type PieSlice struct {
	Allocation
	StartAngle float64
	EndAngle   float64
	Path       string
}

// Pie chart geometry.
const (
	PieSize   = 200
	PieRadius = 80
)

// PieSlices converts allocations to SVG sector paths. Angles accumulate
// clockwise from the top of the circle.
func PieSlices(allocations []Allocation, size, radius float64) []PieSlice {
	center := size / 2
	slices := make([]PieSlice, 0, len(allocations))
	cumulative := 0.0
	for _, allocation := range allocations {
		start := cumulative / 100 * 360
		cumulative += allocation.Percentage
		end := cumulative / 100 * 360

		x1, y1 := polar(center, radius, start)
		x2, y2 := polar(center, radius, end)
		largeArc := 0
		if allocation.Percentage > 50 {
			largeArc = 1
		}
		path := strings.Join([]string{
			"M " + svgNumber(center) + " " + svgNumber(center),
			"L " + svgNumber(x1) + " " + svgNumber(y1),
			fmt.Sprintf("A %s %s 0 %d 1 %s %s", svgNumber(radius), svgNumber(radius), largeArc, svgNumber(x2), svgNumber(y2)),
			"Z",
		}, " ")
		slices = append(slices, PieSlice{
			Allocation: allocation,
			StartAngle: start,
			EndAngle:   end,
			Path:       path,
		})
	}
	return slices
}

func polar(center, radius, angle float64) (float64, float64) {
	rad := (angle - 90) * math.Pi / 180
	return center + radius*math.Cos(rad), center + radius*math.Sin(rad)
}

// Release chart geometry.
const (
	ReleaseWidth         = 600
	ReleaseHeight        = 300
	ReleasePaddingTop    = 40
	ReleasePaddingRight  = 20
	ReleasePaddingBottom = 40
	ReleasePaddingLeft   = 50
	ReleaseMaxMillions   = 10
)

// ReleasePlotWidth and ReleasePlotHeight are the drawable area inside the
// padding.
const (
	ReleasePlotWidth  = ReleaseWidth - ReleasePaddingLeft - ReleasePaddingRight
	ReleasePlotHeight = ReleaseHeight - ReleasePaddingTop - ReleasePaddingBottom
)

// point is a position expressed as fractions of the plot area.
type point struct{ x, y float64 }

// ReleaseLayer is one stacked area of the release illustration.
type ReleaseLayer struct {
	Series
	GradientID string
	Path       string
}

type layerShape struct {
	series   int
	gradient string
	points   []point
}

// The unlock cliff sits between 8% and 12% of the timeline.
var releaseShapes = []layerShape{
	{series: 6, gradient: "vebioGradient", points: []point{
		{0, 0.5}, {0.08, 0.5}, {0.12, 0.05}, {1, 0.05}, {1, 0.1}, {0.12, 0.1}, {0.08, 0.55}, {0, 0.55},
	}},
	{series: 5, gradient: "treasuryGradient", points: []point{
		{0, 0.55}, {0.08, 0.55}, {0.12, 0.1}, {1, 0.1}, {1, 0.55}, {0.12, 0.55}, {0.08, 0.6}, {0, 0.6},
	}},
	{series: 4, gradient: "ignitionVestingGradient", points: []point{
		{0, 0.6}, {0.08, 0.6}, {0.12, 0.55}, {1, 0.55}, {1, 0.6}, {0.12, 0.6}, {0.08, 0.65}, {0, 0.65},
	}},
	{series: 2, gradient: "concentratedGradient", points: []point{
		{0, 0.65}, {1, 0.6}, {1, 0.75}, {0, 0.8},
	}},
	{series: 1, gradient: "wideLiquidityGradient", points: []point{
		{0, 0.8}, {1, 0.75}, {1, 0.85}, {0, 0.88},
	}},
	{series: 0, gradient: "ignitionLiquidGradient", points: []point{
		{0, 0.88}, {1, 0.85}, {1, 0.92}, {0, 0.94},
	}},
	{series: 3, gradient: "bioProtocolGradient", points: []point{
		{0, 0.94}, {1, 0.92}, {1, 1}, {0, 1},
	}},
}

// ReleaseLayers returns the stacked-area layers in paint order, top layer
// first.
func ReleaseLayers() []ReleaseLayer {
	layers := make([]ReleaseLayer, 0, len(releaseShapes))
	for _, shape := range releaseShapes {
		var path strings.Builder
		for idx, p := range shape.points {
			if idx == 0 {
				path.WriteString("M ")
			} else {
				path.WriteString(" L ")
			}
			path.WriteString(svgNumber(ReleasePaddingLeft + ReleasePlotWidth*p.x))
			path.WriteString(" ")
			path.WriteString(svgNumber(ReleasePaddingTop + ReleasePlotHeight*p.y))
		}
		path.WriteString(" Z")
		layers = append(layers, ReleaseLayer{
			Series:     ReleaseSchedule[shape.series],
			GradientID: shape.gradient,
			Path:       path.String(),
		})
	}
	return layers
}

// ReleaseTick is a horizontal grid line of the release chart.
type ReleaseTick struct {
	Y     float64
	Label string
}

// ReleaseTicks returns one grid line per million tokens, bottom first.
func ReleaseTicks() []ReleaseTick {
	ticks := make([]ReleaseTick, 0, ReleaseMaxMillions+1)
	for label := 0; label <= ReleaseMaxMillions; label++ {
		y := float64(ReleasePaddingTop+ReleasePlotHeight) - float64(label)/ReleaseMaxMillions*ReleasePlotHeight
		ticks = append(ticks, ReleaseTick{Y: y, Label: strconv.Itoa(label) + "M"})
	}
	return ticks
}

// svgNumber prints coordinates compactly with enough precision for SVG.
func svgNumber(value float64) string {
	rounded := math.Round(value*1000) / 1000
	if rounded == 0 {
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
