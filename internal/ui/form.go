package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calyptra/verdant/internal/catalog"
)

// Form field indexes. The light selector sits after the text inputs and is
// driven with left/right instead of typed input.
const (
	fieldName = iota
	fieldPrice
	fieldQuantity
	fieldCategories
	fieldDescription
	fieldImage
	fieldLight
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Name",
	"Price",
	"Quantity",
	"Categories",
	"Description",
	"Image URL",
	"Light",
}

var lightLevels = []string{catalog.LightLow, catalog.LightMedium, catalog.LightHigh}

// addForm holds the add-plant form state.
type addForm struct {
	inputs     [fieldLight]textinput.Model
	focus      int
	light      int // index into lightLevels
	err        string
	submitting bool
}

// newAddForm builds a blank form with the name field focused.
func newAddForm() addForm {
	form := addForm{light: 1} // Medium

	placeholders := [fieldLight]string{
		"Monstera Deliciosa",
		"19.99",
		"10",
		"indoor, tropical",
		"optional",
		"optional",
	}

	for i := range form.inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.Prompt = ""
		input.CharLimit = 500
		form.inputs[i] = input
	}
	form.inputs[fieldName].CharLimit = 120
	form.inputs[fieldDescription].CharLimit = 600
	form.inputs[fieldName].Focus()

	return form
}

// handleFormKey processes keyboard input for the add view.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		if m.search != nil {
			m.search.Stop()
		}
		return m, tea.Quit

	case "esc":
		m.currentView = ViewBrowse
		m.form = newAddForm()
		return m, nil

	case "tab", "down":
		m.form.setFocus((m.form.focus + 1) % fieldCount)
		return m, textinput.Blink

	case "shift+tab", "up":
		m.form.setFocus((m.form.focus + fieldCount - 1) % fieldCount)
		return m, textinput.Blink

	case "left":
		if m.form.focus == fieldLight {
			m.form.light = (m.form.light + len(lightLevels) - 1) % len(lightLevels)
			return m, nil
		}

	case "right":
		if m.form.focus == fieldLight {
			m.form.light = (m.form.light + 1) % len(lightLevels)
			return m, nil
		}

	case "enter":
		if m.form.focus < fieldLight {
			m.form.setFocus(m.form.focus + 1)
			return m, textinput.Blink
		}
		return m.submitForm()
	}

	if m.form.focus < fieldLight {
		var cmd tea.Cmd
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// submitForm validates locally and hands the payload to the server. Nothing
// in the catalog changes until the server confirms the entry.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}

	payload, problem := m.form.payload()
	if problem != "" {
		m.form.err = problem
		return m, nil
	}

	m.form.err = ""
	m.form.submitting = true
	return m, createPlantCmd(m.ctx, m.client, payload)
}

func (f *addForm) setFocus(idx int) {
	f.focus = idx
	for i := range f.inputs {
		if i == idx {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// payload converts the form into a request, returning the first validation
// problem as display text. The rules match what the server enforces so most
// rejections surface before a request is made.
func (f addForm) payload() (catalog.NewPlant, string) {
	name := strings.TrimSpace(f.inputs[fieldName].Value())
	if name == "" {
		return catalog.NewPlant{}, "Plant name is required"
	}
	if len(name) > 100 {
		return catalog.NewPlant{}, "Plant name must be less than 100 characters"
	}

	priceRaw := strings.TrimSpace(f.inputs[fieldPrice].Value())
	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil || price < 0 {
		return catalog.NewPlant{}, "Price must be a positive number"
	}

	quantityRaw := strings.TrimSpace(f.inputs[fieldQuantity].Value())
	quantity, err := strconv.Atoi(quantityRaw)
	if err != nil || quantity < 0 {
		return catalog.NewPlant{}, "Quantity must be a non-negative integer"
	}

	categories := splitCategories(f.inputs[fieldCategories].Value())
	if len(categories) == 0 {
		return catalog.NewPlant{}, "At least one category is required"
	}

	description := strings.TrimSpace(f.inputs[fieldDescription].Value())
	if len(description) > 500 {
		return catalog.NewPlant{}, "Description must be less than 500 characters"
	}

	return catalog.NewPlant{
		Name:        name,
		Price:       price,
		Quantity:    quantity,
		Categories:  categories,
		Description: description,
		Image:       strings.TrimSpace(f.inputs[fieldImage].Value()),
		Light:       lightLevels[f.light],
	}, ""
}

// renderForm renders the add-plant form.
func (m Model) renderForm() string {
	styles := m.theme.Styles()
	contentHeight := m.height - 2

	labelStyle := styles.MutedText.Width(13)
	focusedLabel := styles.AccentText.Width(13)

	var b strings.Builder
	for i := 0; i < fieldLight; i++ {
		label := labelStyle
		if m.form.focus == i {
			label = focusedLabel
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}

	// Light selector
	label := labelStyle
	if m.form.focus == fieldLight {
		label = focusedLabel
	}
	b.WriteString(label.Render(fieldLabels[fieldLight]))
	for i, level := range lightLevels {
		if i == m.form.light {
			b.WriteString(styles.AccentText.Bold(true).Render("[" + level + "]"))
		} else {
			b.WriteString(styles.FaintText.Render(" " + level + " "))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	if m.form.err != "" {
		b.WriteString(styles.DangerText.Render(m.form.err))
		b.WriteString("\n")
	}
	if m.form.submitting {
		b.WriteString(styles.WarningText.Render("Submitting..."))
		b.WriteString("\n")
	}

	b.WriteString(styles.FaintText.Render("tab next field · enter on Light submits · esc cancels"))

	width := min(m.width, 72)
	form := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Width(width - 4).
		Render(fmt.Sprintf("%s\n\n%s",
			styles.Text.Bold(true).Render("Add Plant"),
			b.String()))

	return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, form)
}
