package ui

import "github.com/charmbracelet/lipgloss"

var (
	violet = lipgloss.Color("#7C3AED")
	amber  = lipgloss.Color("#F59E0B")
	red    = lipgloss.Color("#EF4444")
	light  = lipgloss.Color("#E5E7EB")
	muted  = lipgloss.Color("#9CA3AF")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(violet).Padding(1, 2).MarginBottom(1)
	subtitleStyle = lipgloss.NewStyle().Foreground(muted).Padding(0, 2)
	itemStyle     = lipgloss.NewStyle().Foreground(light).Padding(0, 2)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(amber).Padding(0, 2)
	helpStyle     = lipgloss.NewStyle().Foreground(muted).Padding(1, 2)
	errorStyle    = lipgloss.NewStyle().Foreground(red).Padding(0, 2)
	noticeStyle   = lipgloss.NewStyle().Foreground(amber).Padding(0, 2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(1, 2).
			Width(60)
	activeCardStyle = cardStyle.BorderForeground(violet)

	teamStyle    = lipgloss.NewStyle().Foreground(light).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(muted)
	liveStyle    = lipgloss.NewStyle().Foreground(red).Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(amber)
	columnStyle  = lipgloss.NewStyle().Bold(true).Foreground(violet)
)
