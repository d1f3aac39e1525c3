package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/lixenwraith/starglyph/animation"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Padding(1, 0)
)

// Curves are the effect progress values sampled at a fixed step from mount
type Curves struct {
	Step      float64
	Formation []float64
	Collapse  []float64
	Burst     []float64

	// Edge times in seconds, -1 when the edge never fired
	FormedAt   float64
	CollapseAt float64
	BurstAt    float64
}

// Sample runs the state machine from mount, pressing the trigger once at triggerAt (negative disables it)
func Sample(timing animation.Timing, duration, step, triggerAt float64) Curves {
	c := Curves{Step: step, FormedAt: -1, CollapseAt: -1, BurstAt: -1}
	if step <= 0 || duration <= 0 {
		return c
	}

	var s animation.State
	triggered := triggerAt < 0
	n := int(duration/step) + 1
	for i := 0; i < n; i++ {
		in := animation.Inputs{TextChanged: i == 0}
		dt := step
		if i == 0 {
			dt = 0
		}
		if !triggered && s.Clock+dt >= triggerAt {
			in.Trigger = true
			triggered = true
		}

		var ev animation.Events
		s, ev = animation.Advance(s, dt, in, timing)
		if ev.Formed {
			c.FormedAt = s.Clock
		}
		if ev.CollapseStarted {
			c.CollapseAt = s.Clock
		}
		if ev.BurstStarted {
			c.BurstAt = s.Clock
		}

		c.Formation = append(c.Formation, s.Formation)
		c.Collapse = append(c.Collapse, s.Collapse)
		c.Burst = append(c.Burst, s.Burst)
	}
	return c
}

func edge(t float64) string {
	if t < 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fs", t)
}

// Render formats the curves as one chart with a legend and an edge summary
func Render(c Curves, width, height int) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("starglyph effect curves") + "\n")

	if len(c.Formation) == 0 {
		sb.WriteString(valueStyle.Render("no samples") + "\n")
		return sb.String()
	}

	chart := asciigraph.PlotMany(
		[][]float64{c.Formation, c.Collapse, c.Burst},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red, asciigraph.Yellow),
		asciigraph.SeriesLegends("formation", "collapse", "burst"),
		asciigraph.Caption(fmt.Sprintf("%d samples, %.3fs step", len(c.Formation), c.Step)),
	)
	sb.WriteString(graphStyle.Render(chart) + "\n")

	sb.WriteString(labelStyle.Render("formed") + valueStyle.Render(edge(c.FormedAt)) + "\n")
	sb.WriteString(labelStyle.Render("collapse") + valueStyle.Render(edge(c.CollapseAt)) + "\n")
	sb.WriteString(labelStyle.Render("burst") + valueStyle.Render(edge(c.BurstAt)) + "\n")
	return sb.String()
}

func main() {
	timing := animation.DefaultTiming()

	duration := flag.Float64("duration", 8, "Seconds to sample from mount")
	step := flag.Float64("step", 1.0/30, "Sample step in seconds")
	triggerAt := flag.Float64("trigger", 5, "Trigger time in seconds, negative to disable")
	width := flag.Int("width", 72, "Chart width in columns")
	height := flag.Int("height", 12, "Chart height in rows")
	flag.Float64Var(&timing.FormationDuration, "formation", timing.FormationDuration, "Formation duration")
	flag.Float64Var(&timing.CollapseWindow, "collapse", timing.CollapseWindow, "Collapse window")
	flag.Float64Var(&timing.BurstDelay, "burst-delay", timing.BurstDelay, "Delay from trigger to burst")
	flag.Float64Var(&timing.BurstWindow, "burst", timing.BurstWindow, "Burst window")
	flag.Parse()

	if *step <= 0 || *duration <= 0 {
		fmt.Fprintln(os.Stderr, "duration and step must be positive")
		os.Exit(2)
	}

	fmt.Print(Render(Sample(timing, *duration, *step, *triggerAt), *width, *height))
}
