package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-maintenance-search/internal/i18n"
	"github.com/MKhiriev/go-maintenance-search/internal/render"
	"github.com/MKhiriev/go-maintenance-search/internal/view"
	"github.com/MKhiriev/go-maintenance-search/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/message"
)

// focus is the element receiving key input. The text filters come first,
// in the order of model.inputs.
type focus int

const (
	focusClient focus = iota
	focusRegistration
	focusChassis
	focusStatus
	focusTable

	focusCount
)

type model struct {
	ctx     context.Context
	view    *view.RecordSearchView
	locale  string
	printer *message.Printer
	copy    func(string) error

	inputs  []textinput.Model
	status  models.Status
	focus   focus
	cursor  int
	spinner spinner.Model

	loading    bool
	confirming bool
	statusLine string
}

func newModel(ctx context.Context, v *view.RecordSearchView, locale string, copyFn func(string) error) model {
	inputs := make([]textinput.Model, focusStatus)
	for i := range inputs {
		in := textinput.New()
		in.CharLimit = 200
		in.Width = 24
		inputs[i] = in
	}
	inputs[focusClient].Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	return model{
		ctx:     ctx,
		view:    v,
		locale:  locale,
		printer: v.Printer(),
		copy:    copyFn,
		inputs:  inputs,
		spinner: s,
		loading: true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load(), textinput.Blink)
}

func (m model) load() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{err: m.view.Load(m.ctx)}
	}
}

func (m model) deleteRecord(id string) tea.Cmd {
	return func() tea.Msg {
		return deletedMsg{err: m.view.Delete(m.ctx, id, view.Confirmed)}
	}
}

func expireToasts() tea.Cmd {
	return tea.Tick(view.ToastTTL, func(time.Time) tea.Msg { return toastExpiredMsg{} })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loading = false
		// Load shows the unfiltered set; keep what was typed meanwhile
		if c := m.criteria(); !c.IsBlank() {
			m.view.ApplyFilter(c)
		}
		m.clampCursor()
		return m, nil

	case deletedMsg:
		m.clampCursor()
		return m, expireToasts()

	case toastExpiredMsg:
		return m, nil

	case clearStatusMsg:
		m.statusLine = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.confirming {
		return m.updateConfirm(msg)
	}

	switch {
	case key.Matches(msg, keys.clear):
		m.clear()
		return m, nil
	case key.Matches(msg, keys.reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.load())
	case key.Matches(msg, keys.delete):
		if _, ok := m.selected(); ok {
			m.confirming = true
		}
		return m, nil
	case key.Matches(msg, keys.tab):
		cmd := m.setFocus((m.focus + 1) % focusCount)
		return m, cmd
	case key.Matches(msg, keys.backtab):
		cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, cmd
	}

	switch m.focus {
	case focusStatus:
		return m.updateStatus(msg)
	case focusTable:
		return m.updateTable(msg)
	default:
		return m.updateInput(msg)
	}
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row, ok := m.selected()

	switch {
	case key.Matches(msg, keys.yes):
		m.confirming = false
		if !ok {
			return m, nil
		}
		return m, m.deleteRecord(row.ID)
	case key.Matches(msg, keys.no):
		m.confirming = false
		if ok {
			// counted as a declined delete, never reaches the API
			_ = m.view.Delete(m.ctx, row.ID, view.Declined)
		}
	}
	return m, nil
}

func (m model) updateStatus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.right):
		m.status = m.status.Next()
	case key.Matches(msg, keys.left):
		m.status = prevStatus(m.status)
	default:
		return m, nil
	}
	m.applyFilter()
	return m, nil
}

func (m model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.page().Rows)-1 {
			m.cursor++
		}
		return m, nil
	}

	row, ok := m.selected()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.open):
		return m.navigate(m.view.OpenDetail(row.ID))
	case key.Matches(msg, keys.edit):
		return m.navigate(m.view.Edit(row.ID))
	case key.Matches(msg, keys.pdf) && row.HasAction(render.ActionPDF):
		return m.navigate(m.view.ExportPDF(row.ID))
	case key.Matches(msg, keys.customer) && row.HasAction(render.ActionCustomer):
		return m.navigate(m.view.OpenCustomerPage(row.Token))
	}
	return m, nil
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.open) {
		cmd := m.setFocus(focusTable)
		return m, cmd
	}

	i := int(m.focus)
	before := m.inputs[i].Value()

	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)

	if m.inputs[i].Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

// navigate copies the destination to the clipboard, the terminal's
// equivalent of following a link.
func (m model) navigate(nav models.Navigation) (tea.Model, tea.Cmd) {
	if err := m.copy(nav.URL); err != nil {
		m.statusLine = m.printer.Sprintf(i18n.MsgClipboardFailed, nav.URL)
	} else {
		m.statusLine = m.printer.Sprintf(i18n.MsgCopiedToClipboard, nav.URL)
	}
	return m, tea.Tick(view.ToastTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *model) setFocus(f focus) tea.Cmd {
	m.focus = f

	var cmd tea.Cmd
	for i := range m.inputs {
		if focus(i) == f {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return cmd
}

func (m *model) criteria() models.Criteria {
	return models.Criteria{
		ClientName:   m.inputs[focusClient].Value(),
		Registration: m.inputs[focusRegistration].Value(),
		Chassis:      m.inputs[focusChassis].Value(),
		Status:       m.status,
	}.Normalize()
}

func (m *model) applyFilter() {
	m.view.ApplyFilter(m.criteria())
	m.cursor = 0
}

func (m *model) clear() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.status = models.StatusAny
	m.view.Clear()
	m.cursor = 0
}

func (m *model) clampCursor() {
	n := len(m.page().Rows)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m model) page() render.Page {
	return render.NewPage(m.view.Snapshot(), m.printer, m.locale, nil)
}

func (m model) selected() (render.Row, bool) {
	rows := m.page().Rows
	if m.cursor < 0 || m.cursor >= len(rows) {
		return render.Row{}, false
	}
	return rows[m.cursor], true
}

func prevStatus(s models.Status) models.Status {
	for i, st := range models.Statuses {
		if st == s {
			return models.Statuses[(i+len(models.Statuses)-1)%len(models.Statuses)]
		}
	}
	return models.StatusAny
}
