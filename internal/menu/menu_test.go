package menu_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/slist/internal/menu"
	"go.llib.dev/slist/pkg/datastruct"
)

func TestMenu(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		input  = let.VarOf(s, "")
		prompt = let.VarOf(s, false)
		list   = let.Var(s, func(t *testcase.T) *datastruct.LinkedList[string] {
			return &datastruct.LinkedList[string]{}
		})
		out = let.Var(s, func(t *testcase.T) *bytes.Buffer {
			return &bytes.Buffer{}
		})
		subject = let.Var(s, func(t *testcase.T) *menu.Menu {
			l, _ := logging.Stub(t)
			return &menu.Menu{
				In:     strings.NewReader(input.Get(t)),
				Out:    out.Get(t),
				List:   list.Get(t),
				Prompt: prompt.Get(t),
				Logger: l,
			}
		})
	)
	act := let.Act(func(t *testcase.T) error {
		return subject.Get(t).Run(context.Background())
	})

	lines := func(ls ...string) string { return strings.Join(ls, "\n") + "\n" }

	s.When("exit is chosen", func(s *testcase.Spec) {
		input.LetValue(s, lines("14", "2", "ignored"))

		s.Then("the menu stops without touching the rest of the input", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.Equal(t, "Exiting program.\n", out.Get(t).String())
			assert.True(t, list.Get(t).IsEmpty())
		})
	})

	s.When("the input ends", func(s *testcase.Spec) {
		input.LetValue(s, lines("2", "a"))

		s.Then("the menu stops successfully", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.Equal(t, []string{"a"}, list.Get(t).ToSlice())
			assert.Contain(t, out.Get(t).String(), "Exiting program.")
		})
	})

	s.When("the input ends in the middle of a question", func(s *testcase.Spec) {
		input.LetValue(s, lines("8", "0"))

		s.Then("the menu stops successfully and nothing is inserted", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.True(t, list.Get(t).IsEmpty())
		})
	})

	s.When("the context is already cancelled", func(s *testcase.Spec) {
		input.LetValue(s, lines("2", "a"))

		s.Then("the cancellation is returned", func(t *testcase.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			err := subject.Get(t).Run(ctx)
			assert.True(t, errors.Is(err, context.Canceled))
			assert.True(t, list.Get(t).IsEmpty())
		})
	})

	s.When("items are pushed and inspected", func(s *testcase.Spec) {
		input.LetValue(s, lines(
			"2", "a",
			"2", "b",
			"2", "c",
			"11",
			"5",
			"6",
			"13",
			"14",
		))

		s.Then("the results are printed", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.Equal(t, lines(
				"Size: 3",
				"Front: a",
				"Back: c",
				"Full List: a b c",
				"Exiting program.",
			), out.Get(t).String())
		})
	})

	s.When("an item is inserted, found and removed", func(s *testcase.Spec) {
		list.Let(s, func(t *testcase.T) *datastruct.LinkedList[string] {
			var l datastruct.LinkedList[string]
			l.Append("a", "b", "c")
			return &l
		})
		input.LetValue(s, lines(
			"8", "1", "x",
			"10", "b",
			"9", "0",
			"13",
			"10", "a",
			"14",
		))

		s.Then("the list and the output follow the operations", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.Equal(t, []string{"x", "b", "c"}, list.Get(t).ToSlice())
			assert.Equal(t, lines(
				"Item found at position 2",
				"Item removed successfully.",
				"Full List: x b c",
				"Item not found in the list.",
				"Exiting program.",
			), out.Get(t).String())
		})
	})

	s.When("the list is empty", func(s *testcase.Spec) {
		input.LetValue(s, lines(
			"5",
			"6",
			"7",
			"9", "0",
			"3",
			"4",
			"11",
			"14",
		))

		s.Then("empty list conditions are reported without stopping", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.Equal(t, lines(
				"List is empty.",
				"List is empty.",
				"Is Empty: Yes",
				"Invalid index or list is empty.",
				"Size: 0",
				"Exiting program.",
			), out.Get(t).String())
		})
	})

	s.When("insert index is out of range", func(s *testcase.Spec) {
		input.LetValue(s, lines("8", "3", "x", "11", "14"))

		s.Then("the problem is reported and the list is unchanged", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.Equal(t, lines("Invalid index.", "Size: 0", "Exiting program."), out.Get(t).String())
		})
	})

	s.When("the choice is malformed", func(s *testcase.Spec) {
		input.LetValue(s, lines("abc", "42", "", "7", "14"))

		s.Then("the user is asked again", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.Equal(t, lines(
				"Invalid choice. Please try again.",
				"Invalid choice. Please try again.",
				"Invalid choice. Please try again.",
				"Is Empty: Yes",
				"Exiting program.",
			), out.Get(t).String())
		})
	})

	s.When("the index is malformed", func(s *testcase.Spec) {
		input.LetValue(s, lines("8", "x", "-1", "0", "a", "13", "14"))

		s.Then("the bad answers are discarded and the question is repeated", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.Equal(t, []string{"a"}, list.Get(t).ToSlice())
			assert.Equal(t, lines(
				"Invalid index. Please enter a non-negative number.",
				"Invalid index. Please enter a non-negative number.",
				"Full List: a",
				"Exiting program.",
			), out.Get(t).String())
		})
	})

	s.When("an empty item is given", func(s *testcase.Spec) {
		input.LetValue(s, lines("1", "", "  ", " z ", "5", "14"))

		s.Then("the question is repeated and the item is trimmed", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.Equal(t, lines("Front: z", "Exiting program."), out.Get(t).String())
		})
	})

	s.When("the list is cleared", func(s *testcase.Spec) {
		list.Let(s, func(t *testcase.T) *datastruct.LinkedList[string] {
			var l datastruct.LinkedList[string]
			l.Append("a", "b")
			return &l
		})
		input.LetValue(s, lines("12", "7", "1", "z", "5", "14"))

		s.Then("it can be used again", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.Equal(t, lines("List cleared.", "Is Empty: Yes", "Front: z", "Exiting program."), out.Get(t).String())
		})
	})

	s.When("pop actions are used", func(s *testcase.Spec) {
		list.Let(s, func(t *testcase.T) *datastruct.LinkedList[string] {
			var l datastruct.LinkedList[string]
			l.Append("a", "b", "c")
			return &l
		})
		input.LetValue(s, lines("3", "4", "13", "14"))

		s.Then("both ends are removed", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.Equal(t, []string{"b"}, list.Get(t).ToSlice())
		})
	})

	s.When("prompting is enabled", func(s *testcase.Spec) {
		prompt.LetValue(s, true)
		input.LetValue(s, lines("2", "a", "14"))

		s.Then("the menu and the questions are printed", func(t *testcase.T) {
			assert.NoError(t, act(t))

			got := out.Get(t).String()
			assert.Contain(t, got, "Single Linked List Menu:")
			assert.Contain(t, got, "1. Push Front\n")
			assert.Contain(t, got, "13. Print Full List\n")
			assert.Contain(t, got, "14. Exit\n")
			assert.Contain(t, got, "Enter your choice: ")
			assert.Contain(t, got, "Enter item to push back: ")
		})
	})

	s.When("list is not provided", func(s *testcase.Spec) {
		list.LetValue(s, nil)
		input.LetValue(s, lines("2", "a", "11", "14"))

		s.Then("an empty list is used", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.Equal(t, lines("Size: 1", "Exiting program."), out.Get(t).String())
		})
	})

	s.Test("served actions are logged", func(t *testcase.T) {
		l, logs := logging.Stub(t)
		m := menu.Menu{
			In:     strings.NewReader(lines("2", "a", "14")),
			Out:    &bytes.Buffer{},
			Logger: l,
		}
		assert.NoError(t, m.Run(context.Background()))
		assert.Contain(t, logs.String(), "list action served")
		assert.Contain(t, logs.String(), "Push Back")
	})
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "Push Front", menu.PushFront.String())
	assert.Equal(t, "Print Full List", menu.PrintAll.String())
	assert.Equal(t, "Exit", menu.Exit.String())
	assert.Equal(t, "Action(99)", menu.Action(99).String())
}
