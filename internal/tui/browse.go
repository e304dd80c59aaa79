// Package tui is an interactive terminal browser over a contact book: a search
// box that filters on every keystroke, a result list, and delete with
// confirmation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

const (
	noContacts    = "No contacts found."
	confirmPrompt = "Are you sure you want to delete this contact? [y/N]"
	deletedStatus = "Contact deleted successfully!"

	// chromeLines is the height of everything View draws besides the rows:
	// title, bordered input, two blank lines and the footer.
	chromeLines = 7
)

// Model is the bubbletea model for the browser.
type Model struct {
	book       types.Book
	input      textinput.Model
	results    []types.Contact
	cursor     int
	confirming bool
	status     string
	err        error
	width      int
	height     int
}

// New returns a browser over book showing every contact.
func New(book types.Book) Model {
	ti := textinput.New()
	ti.Placeholder = "Search name, address, email or phone"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()

	m := Model{book: book, input: ti}
	m.refresh()
	return m
}

// Run starts the browser in the terminal's alternate screen and blocks until
// the user quits.
func Run(book types.Book) error {
	_, err := tea.NewProgram(New(book), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Selected returns the highlighted contact, if any.
func (m Model) Selected() (types.Contact, bool) {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return types.Contact{}, false
	}
	return m.results[m.cursor], true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-8, 10)
		return m, nil

	case tea.KeyMsg:
		if m.confirming {
			return m.updateConfirm(msg)
		}
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil
		case "ctrl+d", "delete":
			if _, ok := m.Selected(); ok {
				m.confirming = true
				m.status = ""
				m.err = nil
			}
			return m, nil
		}
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		m.status = ""
		m.err = nil
		m.refresh()
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.confirming = false
		selected, ok := m.Selected()
		if !ok {
			return m, nil
		}
		if err := m.book.RemoveContact(selected); err != nil {
			m.err = err
			return m, nil
		}
		m.status = deletedStatus
		m.refresh()
	case "ctrl+c":
		return m, tea.Quit
	default:
		m.confirming = false
	}
	return m, nil
}

// refresh re-runs the search and keeps the cursor inside the results.
func (m *Model) refresh() {
	m.results = m.book.Search(m.input.Value())
	if m.cursor >= len(m.results) {
		m.cursor = len(m.results) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Contacts"))
	b.WriteString("\n")
	b.WriteString(InputBorderStyle.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString(EmptyStyle.Render(noContacts))
		b.WriteString("\n")
	}
	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		row := formatRow(m.results[i])
		style := RowStyle
		if i == m.cursor {
			style = SelectedRowStyle
		}
		if m.width > 0 {
			style = style.MaxWidth(m.width)
		}
		b.WriteString(style.Render(row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.confirming:
		b.WriteString(ConfirmStyle.Render(confirmPrompt))
	case m.err != nil:
		b.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
	case m.status != "":
		b.WriteString(StatusStyle.Render(m.status))
	default:
		b.WriteString(HelpStyle.Render("↑/↓ select • ctrl+d delete • esc quit"))
	}
	b.WriteString("\n")
	return b.String()
}

// visibleRange returns the slice of results that fits the window, scrolled so
// the cursor stays on screen. Before the first WindowSizeMsg every row is
// shown.
func (m Model) visibleRange() (start, end int) {
	n := len(m.results)
	if m.height <= 0 {
		return 0, n
	}
	rows := max(m.height-chromeLines, 1)
	if n <= rows {
		return 0, n
	}
	start = max(m.cursor-rows+1, 0)
	return start, start + rows
}

func formatRow(c types.Contact) string {
	return fmt.Sprintf("%-20s %-28s %-28s %s", c.Name, c.Address, c.Email, c.Phone)
}
