// Package menu is an interactive console over a datastruct.LinkedList of strings.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/slist/pkg/datastruct"
)

type Action int

const (
	PushFront Action = iota + 1
	PushBack
	PopFront
	PopBack
	Front
	Back
	IsEmpty
	Insert
	Remove
	Find
	Size
	Clear
	PrintAll
	Exit
)

var actionNames = map[Action]string{
	PushFront: "Push Front",
	PushBack:  "Push Back",
	PopFront:  "Pop Front",
	PopBack:   "Pop Back",
	Front:     "Front",
	Back:      "Back",
	IsEmpty:   "Is Empty?",
	Insert:    "Insert",
	Remove:    "Remove",
	Find:      "Find",
	Size:      "Size",
	Clear:     "Clear",
	PrintAll:  "Print Full List",
	Exit:      "Exit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Action(" + strconv.Itoa(int(a)) + ")"
}

const errInputClosed errorkit.Error = "input closed"

// Menu reads one answer per line from In and writes the results to Out.
type Menu struct {
	In   io.Reader
	Out  io.Writer
	List *datastruct.LinkedList[string]
	// Prompt enables printing the menu and the questions.
	// Results and error messages are always printed.
	Prompt bool
	// Logger is optional, the package level logger is used when it is nil.
	Logger *logging.Logger

	scanner *bufio.Scanner
}

// Run serves actions until Exit is chosen or the input is exhausted.
func (m *Menu) Run(ctx context.Context) error {
	if m.List == nil {
		m.List = &datastruct.LinkedList[string]{}
	}
	m.scanner = bufio.NewScanner(m.In)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.printMenu()
		line, err := m.readLine("Enter your choice: ")
		if err != nil {
			return m.stop(ctx, err)
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			m.println("Invalid choice. Please try again.")
			continue
		}
		action := Action(choice)
		if action == Exit {
			m.debug(ctx, "list menu exit requested")
			m.println("Exiting program.")
			return nil
		}
		if err := m.serve(ctx, action); err != nil {
			return m.stop(ctx, err)
		}
	}
}

func (m *Menu) serve(ctx context.Context, action Action) error {
	switch action {
	case PushFront:
		item, err := m.readItem("Enter item to push front: ")
		if err != nil {
			return err
		}
		m.List.PushFront(item)

	case PushBack:
		item, err := m.readItem("Enter item to push back: ")
		if err != nil {
			return err
		}
		m.List.PushBack(item)

	case PopFront:
		m.List.PopFront()

	case PopBack:
		m.List.PopBack()

	case Front:
		m.printValue(ctx, "Front", m.List.Front)

	case Back:
		m.printValue(ctx, "Back", m.List.Back)

	case IsEmpty:
		answer := "No"
		if m.List.IsEmpty() {
			answer = "Yes"
		}
		m.printf("Is Empty: %s\n", answer)

	case Insert:
		index, err := m.readIndex("Enter index to insert at: ")
		if err != nil {
			return err
		}
		item, err := m.readItem("Enter item to insert: ")
		if err != nil {
			return err
		}
		if err := m.List.Insert(index, item); err != nil {
			m.debug(ctx, "list insert rejected", logging.ErrField(err))
			m.println(message(err))
		}

	case Remove:
		index, err := m.readIndex("Enter index to remove: ")
		if err != nil {
			return err
		}
		if m.List.Remove(index) {
			m.println("Item removed successfully.")
		} else {
			m.println("Invalid index or list is empty.")
		}

	case Find:
		item, err := m.readItem("Enter item to find: ")
		if err != nil {
			return err
		}
		if pos := datastruct.Find(m.List, item); pos != m.List.Len() {
			m.printf("Item found at position %d\n", pos)
		} else {
			m.println("Item not found in the list.")
		}

	case Size:
		m.printf("Size: %d\n", m.List.Len())

	case Clear:
		m.List.Clear()
		m.println("List cleared.")

	case PrintAll:
		m.printf("Full List: %s\n", m.List.String())

	default:
		m.println("Invalid choice. Please try again.")
		return nil
	}
	m.debug(ctx, "list action served",
		logging.Field("action", action.String()),
		logging.Field("size", m.List.Len()))
	return nil
}

func (m *Menu) stop(ctx context.Context, err error) error {
	if errors.Is(err, errInputClosed) {
		m.debug(ctx, "list menu input closed")
		m.println("Exiting program.")
		return nil
	}
	return err
}

func (m *Menu) printValue(ctx context.Context, label string, get func() (string, error)) {
	v, err := get()
	if err != nil {
		m.debug(ctx, "list read rejected", logging.ErrField(err))
		m.println(message(err))
		return
	}
	m.printf("%s: %s\n", label, v)
}

// message maps the recoverable list errors to what the user sees.
func message(err error) string {
	switch {
	case errors.Is(err, datastruct.ErrEmpty):
		return "List is empty."
	case errors.Is(err, datastruct.ErrIndexOutOfRange):
		return "Invalid index."
	default:
		return err.Error()
	}
}

func (m *Menu) readLine(prompt string) (string, error) {
	if m.Prompt {
		m.printf("%s", prompt)
	}
	if !m.scanner.Scan() {
		if err := m.scanner.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return m.scanner.Text(), nil
}

func (m *Menu) readItem(prompt string) (string, error) {
	for {
		line, err := m.readLine(prompt)
		if err != nil {
			return "", err
		}
		if item := strings.TrimSpace(line); item != "" {
			return item, nil
		}
	}
}

func (m *Menu) readIndex(prompt string) (int, error) {
	for {
		line, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		index, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && 0 <= index {
			return index, nil
		}
		m.println("Invalid index. Please enter a non-negative number.")
	}
}

func (m *Menu) printMenu() {
	if !m.Prompt {
		return
	}
	m.println("Single Linked List Menu:")
	for a := PushFront; a <= Exit; a++ {
		m.printf("%d. %s\n", int(a), a)
	}
}

func (m *Menu) println(msg string) { fmt.Fprintln(m.Out, msg) }

func (m *Menu) printf(format string, a ...any) { fmt.Fprintf(m.Out, format, a...) }

func (m *Menu) debug(ctx context.Context, msg string, ds ...logging.Detail) {
	if m.Logger != nil {
		m.Logger.Debug(ctx, msg, ds...)
		return
	}
	logger.Debug(ctx, msg, ds...)
}
