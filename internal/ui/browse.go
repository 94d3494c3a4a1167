package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/calyptra/verdant/internal/catalog"
)

// renderBrowse renders the catalog view with split layout (list + detail).
func (m Model) renderBrowse() string {
	styles := m.theme.Styles()
	contentHeight := m.height - 3 // header + cmdbar + filter bar

	if len(m.snapshot.Plants) == 0 {
		emptyMsg := styles.MutedText.Render(m.emptyMessage())
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	// 40% list, 60% detail; wide terminals give the detail pane more room.
	var listWidth int
	if m.width >= 160 {
		listWidth = m.width * 30 / 100
	} else {
		listWidth = m.width * 40 / 100
	}
	detailWidth := m.width - listWidth

	listTitle := fmt.Sprintf("Plants (%d)", len(m.snapshot.Plants))
	listContent := m.renderPlantList(listWidth - 2)
	listPane := m.renderTitledBox(listTitle, listContent, listWidth, contentHeight)

	var detailContent string
	if plant := m.selectedPlant(); plant != nil {
		detailContent = m.renderPlantDetail(*plant, detailWidth-4)
	} else {
		detailContent = styles.MutedText.Render("Select a plant")
	}
	detailPane := m.renderTitledBox("Details", detailContent, detailWidth, contentHeight)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// emptyMessage explains why the list is empty.
func (m Model) emptyMessage() string {
	if !m.criteria.IsEmpty() {
		return "No plants match the current filters"
	}
	return "The catalog is empty"
}

// renderPlantList renders the catalog as styled rows.
func (m Model) renderPlantList(width int) string {
	bgColor := m.theme.SurfaceAlt

	var lines []string
	for i, plant := range m.snapshot.Plants {
		if i == m.selectedRow {
			content := m.formatPlantRow(plant, width, m.theme.SelectionBg, true)
			line := lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Width(width).
				Render(content)
			lines = append(lines, line)
		} else {
			content := m.formatPlantRow(plant, width, bgColor, false)
			line := lipgloss.NewStyle().
				Background(lipgloss.Color(bgColor)).
				Width(width).
				Render(content)
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}

// formatPlantRow formats a catalog row with inline colors.
// Format: "Name · $price · stock"
// When selected is true, uses SelectionText color for all text to keep contrast.
func (m Model) formatPlantRow(plant catalog.Plant, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)

	price := formatPrice(plant.Price)
	stock := formatStock(plant.Quantity)

	separatorLen := 3 // " · "
	nameWidth := max(width-len(price)-len(stock)-2*separatorLen-2, 10)

	var nameStyle, priceStyle, sepStyle, stockStyle lipgloss.Style
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		nameStyle = selText
		priceStyle = selText
		sepStyle = selText
		stockStyle = selText
	} else {
		styles := m.theme.Styles()
		nameStyle = styles.Text
		priceStyle = styles.MutedText
		sepStyle = styles.FaintText
		if plant.InStock() {
			stockStyle = styles.SuccessText.Bold(false)
		} else {
			stockStyle = styles.DangerText.Bold(false)
		}
	}

	return bg.Render(truncate(plant.Name, nameWidth), nameStyle) +
		bg.Render(" · ", sepStyle) +
		bg.Render(price, priceStyle) +
		bg.Render(" · ", sepStyle) +
		bg.Render(stock, stockStyle)
}

// renderPlantDetail renders the full record for the selected plant.
func (m Model) renderPlantDetail(plant catalog.Plant, width int) string {
	styles := m.theme.Styles()
	label := styles.MutedText

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(truncate(plant.Name, width)))
	b.WriteString("\n\n")

	b.WriteString(label.Render("Price       "))
	b.WriteString(styles.Text.Render(formatPrice(plant.Price)))
	b.WriteString("\n")

	b.WriteString(label.Render("Stock       "))
	if plant.InStock() {
		b.WriteString(styles.SuccessText.Render(formatStock(plant.Quantity)))
	} else {
		b.WriteString(styles.DangerText.Render(formatStock(plant.Quantity)))
	}
	b.WriteString("\n")

	b.WriteString(label.Render("Categories  "))
	b.WriteString(styles.Text.Render(strings.Join(plant.Categories, ", ")))
	b.WriteString("\n")

	if plant.Light != "" {
		b.WriteString(label.Render("Light       "))
		b.WriteString(styles.Text.Render(plant.Light))
		b.WriteString("\n")
	}

	if plant.Difficulty != "" {
		b.WriteString(label.Render("Difficulty  "))
		b.WriteString(styles.Text.Render(plant.Difficulty))
		b.WriteString("\n")
	}

	if plant.Description != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Text)).
			Width(width).
			Render(plant.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hint := fmt.Sprintf("enter buys %d", m.purchaseQty)
	b.WriteString(styles.FaintText.Render(hint))

	return b.String()
}

// renderFilterBar renders the active search and filter summary with the
// category toggles.
func (m Model) renderFilterBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	var parts []string

	if m.searching {
		parts = append(parts, bg.Render(m.searchInput.View(), styles.Text))
	} else if search := strings.TrimSpace(m.criteria.Search()); search != "" {
		parts = append(parts,
			bg.Render("Search:", styles.MutedText)+bg.Space()+
				bg.Render(truncate(search, 30), styles.AccentText))
	}

	parts = append(parts,
		bg.Render("Stock:", styles.MutedText)+bg.Space()+
			bg.Render(m.stockLabel(), styles.Text))

	for i, category := range m.categories {
		if i >= 9 {
			break
		}
		style := styles.MutedText
		name := category
		if m.criteria.HasCategory(category) {
			style = styles.AccentText
			name += "*"
		}
		parts = append(parts,
			bg.Render(fmt.Sprintf("[%d]", i+1), styles.FaintText)+
				bg.Render(name, style))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// renderTitledBox renders content in a box with the title embedded in the top
// border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int) string {
	borderColorStr := m.theme.Border
	bgColorStr := m.theme.SurfaceAlt

	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := width - 2
	titleLen := len(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(bgColorStr))

	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2

	var paddedLines []string
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}
