package tui

import (
	"strings"

	"github.com/MKhiriev/go-maintenance-search/internal/i18n"
	"github.com/MKhiriev/go-maintenance-search/internal/render"
	"github.com/charmbracelet/lipgloss"
)

// column widths in terminal cells
var columnWidths = []int{12, 18, 20, 12, 12, 12, 22}

func (m model) View() string {
	page := m.page()

	var b strings.Builder

	b.WriteString(titleStyle.Render(page.Labels.Title))
	b.WriteString("\n")

	for _, t := range page.Toasts {
		style, ok := toastStyles[string(t.Kind)]
		if !ok {
			style = lipgloss.NewStyle()
		}
		b.WriteString(style.Render(t.Message))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.filtersView(page))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(page.Count))
	b.WriteString("\n\n")

	switch {
	case m.confirming:
		b.WriteString(m.confirmView())
	case page.IsLoading():
		b.WriteString(m.spinner.View() + " " + page.Labels.Loading)
	case page.IsEmpty():
		b.WriteString(emptyStyle.Render(page.EmptyMessage))
	default:
		b.WriteString(m.tableView(page))
	}
	b.WriteString("\n\n")

	if m.statusLine != "" {
		b.WriteString(m.statusLine)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.printer.Sprintf(i18n.MsgKeyHelp)))

	return appStyle.Render(b.String())
}

func (m model) filtersView(page render.Page) string {
	fields := []string{
		m.field(focusClient, page.Labels.FilterClient, m.inputs[focusClient].View()),
		m.field(focusRegistration, page.Labels.FilterReg, m.inputs[focusRegistration].View()),
		m.field(focusChassis, page.Labels.FilterChassis, m.inputs[focusChassis].View()),
		m.field(focusStatus, page.Labels.FilterStatus, "◀ "+render.StatusLabel(m.printer, m.status)+" ▶"),
	}
	return strings.Join(fields, "\n")
}

func (m model) field(f focus, label, value string) string {
	style := labelStyle
	if m.focus == f {
		style = focusedStyle
	}
	return style.Width(16).Render(label) + " " + value
}

func (m model) tableView(page render.Page) string {
	l := page.Labels
	header := cells(headerStyle, l.ColumnDate, l.ColumnClient, l.ColumnReg, l.ColumnModel, l.ColumnMileage, l.ColumnStatus, l.ColumnTags)

	lines := []string{"  " + header}
	for i, row := range page.Rows {
		tags := strings.Join(row.Tags, ", ")
		if row.TagOverflow != "" {
			tags += " " + row.TagOverflow
		}

		badge, ok := badgeStyles[row.Status.Class]
		if !ok {
			badge = lipgloss.NewStyle()
		}

		line := lipgloss.JoinHorizontal(lipgloss.Top,
			cell(lipgloss.NewStyle(), 0, row.Date),
			cell(lipgloss.NewStyle(), 1, row.ClientName),
			cell(lipgloss.NewStyle(), 2, row.Registration),
			cell(lipgloss.NewStyle(), 3, row.CarModel),
			cell(lipgloss.NewStyle(), 4, row.Mileage),
			cell(badge, 5, row.Status.Label),
			cell(lipgloss.NewStyle(), 6, tags),
		)

		prefix := "  "
		if m.focus == focusTable && i == m.cursor {
			prefix = "> "
			line = selectedRowStyle.Render(line)
		}
		lines = append(lines, prefix+line)
	}

	return strings.Join(lines, "\n")
}

func (m model) confirmView() string {
	row, _ := m.selected()

	content := m.printer.Sprintf(i18n.MsgConfirmDelete) + "\n\n" +
		row.Date + "  " + row.ClientName + "  " + row.Registration + "\n\n" +
		m.printer.Sprintf(i18n.MsgConfirmHint)
	return overlayBoxStyle.Render(content)
}

func cells(style lipgloss.Style, values ...string) string {
	rendered := make([]string, 0, len(values))
	for i, v := range values {
		rendered = append(rendered, cell(style, i, v))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// cell pads or truncates v to the width of column i.
func cell(style lipgloss.Style, i int, v string) string {
	w := columnWidths[i]
	return style.Width(w).MaxWidth(w).Render(fitText(v, w-1))
}

// fitText shortens v to at most max terminal cells, marking the cut with
// an ellipsis.
func fitText(v string, max int) string {
	if max <= 0 || lipgloss.Width(v) <= max {
		return v
	}

	runes := []rune(v)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
