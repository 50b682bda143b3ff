package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(18)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

// row formats one label/value line
func row(label, format string, args ...any) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render(label),
		valueStyle.Render(fmt.Sprintf(format, args...)),
	)
}

// render lays out the summary panels and the population history chart
func render(r result, width, height int) string {
	sn := r.Snapshot

	setup := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Setup"),
		row("model", "%s", sn.Model),
		row("pattern", "%s", sn.Pattern),
		row("policy", "%s", sn.Policy),
		row("black hole", "(%.2f, %.2f)", sn.Position.X, sn.Position.Y),
		row("mass / radius", "%.3f / %.3f", sn.Mass, sn.Radius),
		row("gravity", "x%.2f cap %.1f exp %.2f", sn.GravityMultiplier, sn.MaxForce, sn.ForceExponent),
		row("speed", "%.3f", sn.Speed),
	))

	totals := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Run"),
		row("frames", "%d x %.4fs", r.Frames, r.DT),
		row("simulated", "%.1fs", sn.Elapsed),
		row("wall", "%s", r.Wall.Round(1e6)),
		row("ray steps/s", "%.0f", r.StepsPerSecond()),
		row("absorptions", "%d", r.Absorptions),
		row("recycled", "%d", r.Recycled),
		row("culled / spawned", "%d / %d", r.Culled, r.Spawned),
		row("peak active", "%d", r.PeakActive),
	))

	panels := lipgloss.JoinHorizontal(lipgloss.Top, setup, " ", totals)
	if r.Frames == 0 {
		return panels
	}

	chart := asciigraph.PlotMany(
		[][]float64{
			downsample(r.Active, width),
			downsample(r.Absorbed, width),
			downsample(r.Orbiting, width),
		},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red, asciigraph.Yellow),
		asciigraph.SeriesLegends("active", "absorbed", "orbiting"),
		asciigraph.Caption("rays per frame"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, panels, graphStyle.Render(chart))
}
