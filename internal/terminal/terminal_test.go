package terminal

import (
	"strings"
	"testing"

	"paintcube/internal/commands"
	"paintcube/internal/logger"
)

func newTerminal() (*Terminal, *[]string) {
	reg := commands.NewRegistry()
	var ran []string
	reg.Register("face", "<0-5>", nil, func(args []string) error {
		ran = append(ran, strings.Join(args, " "))
		return nil
	})
	return New(logger.New(""), reg), &ran
}

func TestTyping(t *testing.T) {
	term, _ := newTerminal()
	if term.IsOpen() {
		t.Fatal("starts open")
	}
	term.Toggle()
	for _, r := range "cmd fxy\x01" {
		term.Type(r)
	}
	term.Backspace()
	term.Backspace()
	term.Paste("ace\n 3")
	if got := term.Input(); got != "cmd face 3" {
		t.Errorf("input = %q", got)
	}
	term.Toggle()
	if term.IsOpen() || term.Input() != "cmd face 3" {
		t.Error("closing dropped the input")
	}
}

func TestInputLimit(t *testing.T) {
	term, _ := newTerminal()
	term.Paste(strings.Repeat("x", maxInput+10))
	if len(term.Input()) != maxInput {
		t.Errorf("input length %d", len(term.Input()))
	}
	term.Backspace()
	if len(term.Input()) != maxInput-1 {
		t.Error("backspace failed")
	}
}

func TestSubmit(t *testing.T) {
	term, ran := newTerminal()
	term.Paste("cmd face 4")
	if err := term.Submit(); err != nil {
		t.Fatal(err)
	}
	if len(*ran) != 1 || (*ran)[0] != "4" || term.Input() != "" {
		t.Errorf("ran %q input %q", *ran, term.Input())
	}

	term.Paste("cmd nope")
	if err := term.Submit(); err == nil {
		t.Error("unknown command not reported")
	}
	term.Paste("just chatting")
	if err := term.Submit(); err != nil {
		t.Error(err)
	}
	term.Paste("cmd help")
	_ = term.Submit()

	lines := strings.Join(term.Lines(20), "\n")
	for _, want := range []string{"> cmd face 4", "error: unknown command: nope", "> just chatting", "cmd face <0-5>"} {
		if !strings.Contains(lines, want) {
			t.Errorf("log missing %q:\n%s", want, lines)
		}
	}
	if err := term.Submit(); err != nil {
		t.Error("empty submit errored")
	}
}
