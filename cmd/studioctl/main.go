// cmd/studioctl/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"studio-site/internal/config"
	"studio-site/internal/console"
	"studio-site/internal/store"
)

const usage = `usage: studioctl [-config file] [-store file] [command]

commands:
  accounts   list registered accounts
  outbox     list relayed form submissions
  logout     end the signed-in session

With no command, studioctl opens an interactive browser on a terminal and
prints both tables otherwise.
`

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	storePath := flag.String("store", "", "database file, overrides the config")
	limit := flag.Int("n", 0, "show only the last n outbox messages")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	path := cfg.Site.StorePath
	if *storePath != "" {
		path = *storePath
	}
	st, err := store.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

	if err := run(st, flag.Arg(0), *limit); err != nil {
		log.Print(err)
		st.Close()
		os.Exit(1)
	}
}

func run(st *store.Store, cmd string, limit int) error {
	switch cmd {
	case "accounts":
		accounts, err := st.Accounts()
		if err != nil {
			return err
		}
		return console.AccountTable(accounts).Plain(os.Stdout)
	case "outbox":
		msgs, err := st.Messages(limit)
		if err != nil {
			return err
		}
		return console.OutboxTable(msgs).Plain(os.Stdout)
	case "logout":
		if err := st.ClearSession(); err != nil {
			return err
		}
		fmt.Println("signed out")
		return nil
	case "":
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}

	accounts, err := st.Accounts()
	if err != nil {
		return err
	}
	msgs, err := st.Messages(limit)
	if err != nil {
		return err
	}
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		if err := console.AccountTable(accounts).Plain(os.Stdout); err != nil {
			return err
		}
		fmt.Println()
		return console.OutboxTable(msgs).Plain(os.Stdout)
	}
	_, err = tea.NewProgram(console.NewBrowser(accounts, msgs), tea.WithAltScreen()).Run()
	return err
}
