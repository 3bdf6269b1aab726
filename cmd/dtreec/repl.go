package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/kestrelrw/rewritetree/internal/dtree"
	"github.com/kestrelrw/rewritetree/internal/rule"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively load fixtures and inspect their compiled trees",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd)
		},
	}
}

type replState struct {
	fixture string
	rules   []rule.Rule
	tree    dtree.Tree
}

func (s *replState) load(name string) error {
	rules, err := loadFixture(name)
	if err != nil {
		return err
	}
	s.fixture = name
	s.rules = rules
	s.tree = dtree.Compile(rules)
	return nil
}

func runRepl(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyFile := filepath.Join(os.TempDir(), ".dtreec_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}()

	state := &replState{}
	if err := state.load("peano"); err != nil {
		return err
	}

	fmt.Fprintln(out, bold("dtreec repl"), dim("(:help for commands, :quit to exit)"))

	for {
		input, err := line.Prompt(fmt.Sprintf("%s> ", cyan(state.fixture)))
		if err != nil {
			// EOF (Ctrl-D) or Ctrl-C abort: exit cleanly.
			fmt.Fprintln(out)
			return nil
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if err := dispatch(out, state, input); err != nil {
			if err == errQuit {
				return nil
			}
			fmt.Fprintf(out, "%s %v\n", red("error:"), err)
		}
	}
}

var errQuit = fmt.Errorf("quit")

func dispatch(out io.Writer, state *replState, input string) error {
	fields := strings.Fields(input)
	cmdName := strings.TrimPrefix(fields[0], ":")
	args := fields[1:]

	switch cmdName {
	case "quit", "exit", "q":
		return errQuit

	case "help", "h", "?":
		fmt.Fprintln(out, "commands:")
		fmt.Fprintln(out, "  :load <peano|not|and|hof>   compile and switch to a fixture")
		fmt.Fprintln(out, "  :tree                       summarize the current tree")
		fmt.Fprintln(out, "  :dot [file]                 export the current tree as DOT")
		fmt.Fprintln(out, "  :capacity                   print the capture-buffer upper bound")
		fmt.Fprintln(out, "  :quit                       exit")
		return nil

	case "load":
		if len(args) != 1 {
			return fmt.Errorf(":load needs exactly one fixture name")
		}
		if err := state.load(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s loaded %s (%d rules)\n", green("ok:"), state.fixture, len(state.rules))
		return nil

	case "tree":
		fmt.Fprintln(out, state.tree.String())
		return nil

	case "capacity":
		fmt.Fprintln(out, dtree.Capacity(state.tree))
		return nil

	case "dot":
		rendered := dtree.ExportDOT(state.tree)
		if len(args) == 0 {
			fmt.Fprint(out, rendered)
			return nil
		}
		if err := os.WriteFile(args[0], []byte(rendered), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s wrote %s\n", green("ok:"), args[0])
		return nil

	default:
		return fmt.Errorf("unknown command %q (try :help)", cmdName)
	}
}
