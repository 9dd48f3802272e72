package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/settings"
)

var classLabels = [4]string{
	"Uppercase (A-Z)",
	"Lowercase (a-z)",
	"Digits (0-9)",
	"Special (!@#$...)",
}

// submitIndex is the focus position of the Generate button. Positions
// 1..len(classLabels) are the checkboxes; 0 is the length input.
const submitIndex = len(classLabels) + 1

type formModel struct {
	settingsPath string

	focusIndex  int
	lengthInput textinput.Model
	classes     [4]bool // parallel to classLabels

	password string
	copied   bool
	errMsg   string
	warnMsg  string
}

func newFormModel(settingsPath string) formModel {
	cfg := settings.Load(settingsPath)

	input := textinput.New()
	input.Prompt = "Length: "
	input.Placeholder = "12"
	input.CharLimit = 3
	input.Width = 6
	input.Cursor.Style = focusedStyle
	input.TextStyle = focusedStyle
	input.SetValue(strconv.Itoa(cfg.Length))
	input.Focus()

	return formModel{
		settingsPath: settingsPath,
		lengthInput:  input,
		classes:      [4]bool{cfg.Uppercase, cfg.Lowercase, cfg.Digits, cfg.Special},
	}
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch s := msg.String(); s {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "enter", "up", "down":
			if s == "enter" {
				if m.focusIndex == submitIndex {
					m.generate()
					return m, nil
				}
				if m.focusIndex >= 1 && m.focusIndex < submitIndex {
					m.classes[m.focusIndex-1] = !m.classes[m.focusIndex-1]
					return m, nil
				}
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}
			if m.focusIndex > submitIndex {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = submitIndex
			}

			if m.focusIndex == 0 {
				cmd := m.lengthInput.Focus()
				m.lengthInput.TextStyle = focusedStyle
				return m, cmd
			}
			m.lengthInput.Blur()
			m.lengthInput.TextStyle = lipgloss.NewStyle()
			return m, nil

		case " ":
			if m.focusIndex >= 1 && m.focusIndex < submitIndex {
				m.classes[m.focusIndex-1] = !m.classes[m.focusIndex-1]
				return m, nil
			}

		case "c":
			// Copy only when the length input is not capturing text.
			if m.focusIndex != 0 && m.password != "" {
				if err := clipboard.WriteAll(m.password); err == nil {
					m.copied = true
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.lengthInput, cmd = m.lengthInput.Update(msg)
	return m, cmd
}

// generate validates the form, produces a password, and persists the
// settings. Nothing is saved when validation fails.
func (m *formModel) generate() {
	m.errMsg = ""
	m.warnMsg = ""

	if !(m.classes[0] || m.classes[1] || m.classes[2] || m.classes[3]) {
		m.errMsg = "select at least one character class"
		return
	}

	length, err := strconv.Atoi(strings.TrimSpace(m.lengthInput.Value()))
	if err != nil {
		m.errMsg = "length must be a number"
		return
	}
	if length < generator.MinLength || length > generator.MaxLength {
		m.errMsg = fmt.Sprintf("length must be between %d and %d", generator.MinLength, generator.MaxLength)
		return
	}

	password, err := generator.Generate(generator.Options{
		Length:    length,
		Uppercase: m.classes[0],
		Lowercase: m.classes[1],
		Digits:    m.classes[2],
		Special:   m.classes[3],
	})
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	m.password = password
	m.copied = false

	cfg := settings.Configuration{
		Length:    length,
		Uppercase: m.classes[0],
		Lowercase: m.classes[1],
		Digits:    m.classes[2],
		Special:   m.classes[3],
	}
	if err := settings.Save(m.settingsPath, cfg); err != nil {
		m.warnMsg = "settings not saved: " + err.Error()
	}
}

func (m formModel) View() string {
	var viewItems []string

	viewItems = append(viewItems, titleStyle.Render("PassForge"))
	viewItems = append(viewItems, "", m.lengthInput.View(), "")

	for i, label := range classLabels {
		mark := " "
		if m.classes[i] {
			mark = "x"
		}
		line := fmt.Sprintf("[%s] %s", mark, label)
		if m.focusIndex == i+1 {
			viewItems = append(viewItems, formSelectedItemStyle.Render(line))
		} else {
			viewItems = append(viewItems, formItemStyle.Render(line))
		}
	}

	button := formItemStyle.Render("[ Generate ]")
	if m.focusIndex == submitIndex {
		button = formSelectedItemStyle.Render("[ Generate ]")
	}
	viewItems = append(viewItems, "", button)

	if m.password != "" {
		viewItems = append(viewItems, "", passwordStyle.Render(m.password))
		if m.copied {
			viewItems = append(viewItems, successStyle.Render("copied to clipboard"))
		}
	}

	if m.errMsg != "" {
		viewItems = append(viewItems, "", errorStyle.Render("Error: "+m.errMsg))
	}
	if m.warnMsg != "" {
		viewItems = append(viewItems, "", warnStyle.Render(m.warnMsg))
	}

	viewItems = append(viewItems, "", helpStyle.Render("(tab to navigate, space to toggle, enter to generate, c to copy, esc to quit)"))

	return lipgloss.JoinVertical(lipgloss.Left, viewItems...)
}
