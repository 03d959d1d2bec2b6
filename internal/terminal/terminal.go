package terminal

import (
	"unicode/utf8"

	"paintcube/internal/commands"
	"paintcube/internal/logger"
)

// maxInput bounds the input line in bytes.
const maxInput = 256

// Terminal is the console input bar. It starts closed. Lines starting with
// "cmd " run through the command registry; anything else is echoed to the
// log. Drawing lives in the overlay package.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
}

// New returns a closed Terminal that logs lines and runs "cmd ..." through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing keys.
func (t *Terminal) IsOpen() bool { return t.open }

// Toggle opens or closes the console. Closing keeps the pending input.
func (t *Terminal) Toggle() { t.open = !t.open }

// Close hides the console.
func (t *Terminal) Close() { t.open = false }

// Input returns the pending line.
func (t *Terminal) Input() string { return t.inputBuf }

// Type appends a printable rune to the input line.
func (t *Terminal) Type(r rune) {
	if r < 32 || r == 127 || len(t.inputBuf)+utf8.RuneLen(r) > maxInput {
		return
	}
	t.inputBuf += string(r)
}

// Paste appends text, dropping control characters.
func (t *Terminal) Paste(s string) {
	for _, r := range s {
		t.Type(r)
	}
}

// Backspace removes the last rune.
func (t *Terminal) Backspace() {
	if t.inputBuf == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(t.inputBuf)
	t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
}

// Submit logs the pending line, runs it when it is a command and clears
// the input. Command errors are logged and returned.
func (t *Terminal) Submit() error {
	line := t.inputBuf
	if line == "" {
		return nil
	}
	t.inputBuf = ""
	t.log.Log("> " + line)
	args, isCmd := commands.Parse(line)
	if !isCmd {
		return nil
	}
	if len(args) == 0 || args[0] == "help" {
		for _, h := range t.reg.Help() {
			t.log.Log(h)
		}
		return nil
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Log("error: " + err.Error())
		return err
	}
	return nil
}

// Lines returns up to n recent log lines for display.
func (t *Terminal) Lines(n int) []string { return t.log.Tail(n) }
