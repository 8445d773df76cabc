// Package console renders the operator views of the store: plain tables
// for pipes and an interactive browser for terminals.
package console

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"studio-site/internal/store"
)

const timeLayout = "2006-01-02 15:04"

// Table is a header row and data rows of equal length.
type Table struct {
	Headers []string
	Rows    [][]string
}

// widths returns each column's display width.
func (t Table) widths() []int {
	w := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		w[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(w) {
				w[i] = max(w[i], lipgloss.Width(cell))
			}
		}
	}
	return w
}

// Plain writes the table with space-padded columns and no styling.
func (t Table) Plain(out io.Writer) error {
	w := t.widths()
	line := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			if i == len(cells)-1 {
				parts[i] = c
				continue
			}
			parts[i] = c + strings.Repeat(" ", w[i]-lipgloss.Width(c))
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}
	if _, err := fmt.Fprintln(out, line(t.Headers)); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if _, err := fmt.Fprintln(out, line(row)); err != nil {
			return err
		}
	}
	return nil
}

// AccountTable lists accounts.
func AccountTable(accounts []store.Account) Table {
	t := Table{Headers: []string{"EMAIL", "NAME", "CREATED"}}
	for _, a := range accounts {
		t.Rows = append(t.Rows, []string{a.Email, a.Name, stamp(a.Created)})
	}
	return t
}

// OutboxTable lists relayed submissions, newest last.
func OutboxTable(msgs []store.Message) Table {
	t := Table{Headers: []string{"SEQ", "FORM", "FROM", "SENT", "STATUS"}}
	for _, m := range msgs {
		status := "sent"
		if m.Error != "" {
			status = "failed: " + m.Error
		}
		t.Rows = append(t.Rows, []string{
			fmt.Sprint(m.Seq), m.Form, from(m.Params), stamp(m.Sent), status,
		})
	}
	return t
}

// from is the sender as "name <email>".
func from(params map[string]string) string {
	name, email := params["name"], params["email"]
	switch {
	case name != "" && email != "":
		return name + " <" + email + ">"
	case email != "":
		return email
	}
	return name
}

// Detail renders a message's fields one per line, sorted by name.
func Detail(m store.Message) string {
	keys := make([]string, 0, len(m.Params))
	for k := range m.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\n", k, m.Params[k])
	}
	return b.String()
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(timeLayout)
}
