package menu

import (
	"fmt"
	"io"
	"strings"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"golang.org/x/term"

	"go.llib.dev/slist/pkg/datastruct"
)

const ErrInvalidPrompt errorkit.Error = "invalid prompt mode"

// Command serves the interactive menu over the request body.
type Command struct {
	Prompt string `flag:"prompt" env:"SLIST_PROMPT" desc:"print the menu and the questions (default: auto, when stdin is a terminal)"`
	Items  string `flag:"items" env:"SLIST_ITEMS" desc:"comma separated items pushed to the back of the list before the menu starts"`

	// IsTerminal decides the auto prompt mode.
	// When nil, the request body is checked with golang.org/x/term.
	IsTerminal func(io.Reader) bool
}

func (cmd Command) Summary() string { return "interactive singly linked list console" }

func (cmd Command) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()

	prompt, err := cmd.prompt(r.Body)
	if err != nil {
		w.ExitCode(cli.ExitCodeBadRequest)
		fmt.Fprintln(w, err.Error())
		return
	}

	var list datastruct.LinkedList[string]
	list.Append(splitItems(cmd.Items)...)

	m := Menu{
		In:     r.Body,
		Out:    w,
		List:   &list,
		Prompt: prompt,
	}
	logger.Debug(ctx, "list menu started",
		logging.Field("prompt", m.Prompt),
		logging.Field("size", list.Len()))

	if err := m.Run(ctx); err != nil {
		logger.Error(ctx, "list menu stopped", logging.ErrField(err))
		cli.HandleError(w, r, err)
		return
	}
	w.ExitCode(cli.ExitCodeOK)
}

func (cmd Command) prompt(in io.Reader) (bool, error) {
	switch cmd.Prompt {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "", "auto":
	default:
		return false, ErrInvalidPrompt.F("%q is not one of auto, always, never", cmd.Prompt)
	}
	if cmd.IsTerminal != nil {
		return cmd.IsTerminal(in), nil
	}
	return isTerminal(in), nil
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func splitItems(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
