package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex/internal/application/handlers"
	"github.com/ersonp/dex/internal/domain/entities"
)

const followUpPrompt = `What would you like to do next?
a. See another Pokémon
b. Compare to another Pokémon
c. Quit
`

func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive lookup session (default)",
		Long:  "Prompts for names or numbers until the exit command is entered.",
		Args:  cobra.NoArgs,
		RunE:  runInteractive,
	}
}

func runInteractive(cmd *cobra.Command, args []string) error {
	return withDeps(cmd, func(d *Deps) error {
		s := newSession(d.Lookup, cmd.InOrStdin(), cmd.OutOrStdout(),
			d.Config.Interactive.Prompt, d.Config.Interactive.ExitCommand)
		return s.run()
	})
}

// session drives one interactive lookup loop over a line-oriented reader.
type session struct {
	lookup *handlers.LookupHandler
	in     *bufio.Reader
	out    io.Writer
	prompt string
	exit   string
	err    error // first read error other than end of input
}

func newSession(lookup *handlers.LookupHandler, in io.Reader, out io.Writer, prompt, exit string) *session {
	return &session{
		lookup: lookup,
		in:     bufio.NewReader(in),
		out:    out,
		prompt: prompt,
		exit:   strings.ToLower(strings.TrimSpace(exit)),
	}
}

// run loops until the exit command or end of input.
func (s *session) run() error {
	defer fmt.Fprintln(s.out, "Goodbye")

	for {
		input, ok := s.ask(s.prompt)
		if !ok || input == s.exit {
			return s.err
		}

		result := s.lookup.Handle(input)
		if !result.Found {
			displayNotFound(s.out)
			continue
		}

		displayRecord(s.out, result.Record)
		if quit := s.followUp(result.Record); quit {
			return s.err
		}
	}
}

// followUp offers the next-step menu for current. It returns true when the
// session should end.
func (s *session) followUp(current *entities.Record) bool {
	for {
		action, ok := s.ask(followUpPrompt)
		if !ok {
			return true
		}

		switch action {
		case menuAnother:
			return false
		case menuCompare:
			other, ok := s.ask(fmt.Sprintf("Enter a Pokémon name/number to compare to %s: ", current))
			if !ok {
				return true
			}
			result := s.lookup.Handle(other)
			if !result.Found {
				displayNotFound(s.out)
				continue
			}
			displayRecord(s.out, result.Record)
			displayComparison(s.out, current, result.Record)
		case menuQuit:
			return true
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please select a valid option.")
		}
	}
}

// ask prints prompt and reads one line of any length, trimmed and
// lowercased. ok is false at end of input or on a read error.
func (s *session) ask(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.err = fmt.Errorf("reading input: %w", err)
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	return strings.ToLower(strings.TrimSpace(line)), true
}
