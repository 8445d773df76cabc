package console

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studio-site/internal/store"
)

type tab int

const (
	accountsTab tab = iota
	outboxTab
)

var tabNames = []string{"Accounts", "Outbox"}

var (
	tabStyle      = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("244"))
	activeStyle   = tabStyle.Copy().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("238"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	detailStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("129")).Padding(0, 1)
)

// Browser is the interactive store viewer.
type Browser struct {
	accounts []store.Account
	messages []store.Message
	tab      tab
	cursor   [2]int
	width    int
	height   int
	status   string
	// copy writes to the system clipboard
	copy func(string) error
}

// NewBrowser shows a snapshot of accounts and outbox messages.
func NewBrowser(accounts []store.Account, messages []store.Message) *Browser {
	return &Browser{accounts: accounts, messages: messages, copy: clipboard.WriteAll}
}

func (b *Browser) Init() tea.Cmd { return nil }

func (b *Browser) rows() int {
	if b.tab == accountsTab {
		return len(b.accounts)
	}
	return len(b.messages)
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
	case tea.KeyMsg:
		b.status = ""
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "tab", "right", "l":
			b.tab = (b.tab + 1) % 2
		case "shift+tab", "left", "h":
			b.tab = (b.tab + 1) % 2
		case "j", "down":
			if b.cursor[b.tab] < b.rows()-1 {
				b.cursor[b.tab]++
			}
		case "k", "up":
			if b.cursor[b.tab] > 0 {
				b.cursor[b.tab]--
			}
		case "g", "home":
			b.cursor[b.tab] = 0
		case "G", "end":
			b.cursor[b.tab] = max(0, b.rows()-1)
		case "y":
			b.yank()
		}
	}
	return b, nil
}

// Selected returns the email of the selected row.
func (b *Browser) Selected() string {
	i := b.cursor[b.tab]
	if b.tab == accountsTab {
		if i < len(b.accounts) {
			return b.accounts[i].Email
		}
		return ""
	}
	if i < len(b.messages) {
		return b.messages[i].Params["email"]
	}
	return ""
}

func (b *Browser) yank() {
	email := b.Selected()
	if email == "" {
		b.status = "nothing to copy"
		return
	}
	if err := b.copy(email); err != nil {
		b.status = errorStyle.Render("copy failed: " + err.Error())
		return
	}
	b.status = "copied " + email
}

func (b *Browser) View() string {
	var s strings.Builder
	for i, name := range tabNames {
		style := tabStyle
		if tab(i) == b.tab {
			style = activeStyle
		}
		s.WriteString(style.Render(fmt.Sprintf("%s (%d)", name, b.count(tab(i)))))
	}
	s.WriteString("\n\n")

	t := AccountTable(b.accounts)
	if b.tab == outboxTab {
		t = OutboxTable(b.messages)
	}
	if len(t.Rows) == 0 {
		s.WriteString(helpStyle.Render("  nothing here yet") + "\n")
	} else {
		s.WriteString(b.renderTable(t))
	}
	if b.tab == outboxTab && len(b.messages) > 0 {
		s.WriteString("\n" + detailStyle.Render(strings.TrimRight(Detail(b.messages[b.cursor[outboxTab]]), "\n")) + "\n")
	}

	s.WriteString("\n")
	if b.status != "" {
		s.WriteString(b.status + "\n")
	}
	s.WriteString(helpStyle.Render("tab switch · j/k move · y copy email · q quit"))
	return s.String()
}

func (b *Browser) count(t tab) int {
	if t == accountsTab {
		return len(b.accounts)
	}
	return len(b.messages)
}

func (b *Browser) renderTable(t Table) string {
	w := t.widths()
	cells := func(row []string) string {
		parts := make([]string, len(row))
		for i, c := range row {
			parts[i] = c + strings.Repeat(" ", w[i]-lipgloss.Width(c))
		}
		return "  " + strings.Join(parts, "  ")
	}
	var s strings.Builder
	s.WriteString(headerStyle.Render(cells(t.Headers)) + "\n")
	for i, row := range t.Rows {
		line := cells(row)
		if i == b.cursor[b.tab] {
			line = selectedStyle.Render(line)
		}
		s.WriteString(line + "\n")
	}
	return s.String()
}

var _ tea.Model = (*Browser)(nil)
