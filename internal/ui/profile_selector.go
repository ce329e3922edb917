package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	pkgtypes "github.com/vietdv277/vpcfinder/pkg/types"
)

const (
	profileListHeight = 10
	minWidth          = 60
	maxWidth          = 100
)

// ErrSelectionCancelled is returned when the user leaves the selector
// without choosing.
var ErrSelectionCancelled = errors.New("selection cancelled")

// ProfileModel represents the bubbletea model for profile selection
type ProfileModel struct {
	profiles      []pkgtypes.AWSProfile
	filtered      []pkgtypes.AWSProfile
	cursor        int
	offset        int
	search        string
	selected      *pkgtypes.AWSProfile
	quitting      bool
	cancelled     bool
	contentWidth  int
	activeProfile string
}

// NewProfileModel creates a new profile selector model
func NewProfileModel(profiles []pkgtypes.AWSProfile, activeProfile string) ProfileModel {
	m := ProfileModel{
		profiles:      profiles,
		filtered:      profiles,
		activeProfile: activeProfile,
	}
	m.resize(80)

	// Start on the active profile so Enter keeps it
	for i, p := range profiles {
		if p.Name == activeProfile {
			m.cursor = i
			m.scrollToCursor()
			break
		}
	}
	return m
}

func (m *ProfileModel) resize(termWidth int) {
	m.contentWidth = min(max(termWidth-2, minWidth), maxWidth)
}

func (m *ProfileModel) scrollToCursor() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+profileListHeight {
		m.offset = m.cursor - profileListHeight + 1
	}
}

// Selected returns the chosen profile, nil until Enter is pressed
func (m ProfileModel) Selected() *pkgtypes.AWSProfile {
	return m.selected
}

// Cancelled reports whether the user quit without choosing
func (m ProfileModel) Cancelled() bool {
	return m.cancelled
}

// Init implements tea.Model
func (m ProfileModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model
func (m ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.filtered) > 0 {
				selected := m.filtered[m.cursor]
				m.selected = &selected
				m.quitting = true
				return m, tea.Quit
			}

		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
				m.scrollToCursor()
			}

		case tea.KeyDown:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				m.scrollToCursor()
			}

		case tea.KeyBackspace:
			if len(m.search) > 0 {
				m.search = m.search[:len(m.search)-1]
				m.filterProfiles()
			}

		case tea.KeyRunes:
			m.search += string(msg.Runes)
			m.filterProfiles()
		}
	}

	return m, nil
}

func (m *ProfileModel) filterProfiles() {
	m.filtered = m.profiles
	if m.search != "" {
		query := strings.ToLower(m.search)
		m.filtered = nil
		for _, p := range m.profiles {
			if strings.Contains(strings.ToLower(p.Name), query) ||
				strings.Contains(strings.ToLower(p.Region), query) {
				m.filtered = append(m.filtered, p)
			}
		}
	}
	m.cursor = min(m.cursor, max(len(m.filtered)-1, 0))
	m.offset = 0
	m.scrollToCursor()
}

// View implements tea.Model
func (m ProfileModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	w := m.contentWidth

	line := func(content string) {
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString(content)
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
	}
	rule := func(left, right string) {
		sb.WriteString(BorderStyle.Render(left + strings.Repeat(Horizontal, w) + right))
		sb.WriteString("\n")
	}

	rule(TopLeft, TopRight)
	line(HeaderStyle.Render(padToWidth(" Select AWS profile to scan", w)))
	rule(LeftT, RightT)
	line(NameStyle.Render(padToWidth(" > "+m.search, w)))
	line(strings.Repeat(" ", w))

	end := min(m.offset+profileListHeight, len(m.filtered))
	for i := m.offset; i < end; i++ {
		line(m.renderProfileRow(i))
	}
	for i := end - m.offset; i < profileListHeight; i++ {
		line(strings.Repeat(" ", w))
	}

	rule(BottomLeft, BottomRight)
	sb.WriteString(m.renderStatusBar())

	return sb.String()
}

func (m ProfileModel) renderProfileRow(idx int) string {
	profile := m.filtered[idx]

	marker := "   "
	switch {
	case idx == m.cursor:
		marker = " > "
	case profile.Name == m.activeProfile:
		marker = " ● "
	}

	name := padRight(profile.Name, 30)
	if profile.Name == m.activeProfile {
		name = RunningStyle.Render(name)
	} else {
		name = NameStyle.Render(name)
	}

	region := profile.Region
	if region == "" {
		region = "-"
	}

	// marker + name + gap + region
	plain := 3 + 30 + 2 + 20
	return marker + name + "  " + MutedStyle.Render(padRight(region, 20)) +
		strings.Repeat(" ", max(m.contentWidth-plain, 0))
}

func (m ProfileModel) renderStatusBar() string {
	countInfo := fmt.Sprintf("  %d/%d profiles", len(m.filtered), len(m.profiles))
	hints := "[Enter:select] [Esc:cancel]"

	padding := m.contentWidth + 2 - runewidth.StringWidth(countInfo) - runewidth.StringWidth(hints)
	return countInfo + strings.Repeat(" ", max(padding, 1)) + HintStyle.Render(hints) + "\n"
}

// SelectProfile displays an interactive selector for AWS profiles
func SelectProfile(profiles []pkgtypes.AWSProfile, activeProfile string) (*pkgtypes.AWSProfile, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("no profiles available")
	}

	finalModel, err := tea.NewProgram(NewProfileModel(profiles, activeProfile)).Run()
	if err != nil {
		return nil, fmt.Errorf("error running selector: %w", err)
	}

	result := finalModel.(ProfileModel)
	if result.Cancelled() || result.Selected() == nil {
		return nil, ErrSelectionCancelled
	}

	return result.Selected(), nil
}
