package app

import (
	"testing"

	"paintcube/internal/background"
	"paintcube/internal/colors"
	"paintcube/internal/face"
	"paintcube/internal/input"
)

func typeLine(a *App, line string) {
	for _, r := range line {
		a.HandleKey(input.Key(r))
	}
	a.HandleKey(input.KeyEnter)
}

func TestConsoleCapturesKeys(t *testing.T) {
	a := newApp(t, nil)
	a.HandleKey(KeyConsole)
	if !a.Status().ConsoleOpen {
		t.Fatal("console did not open")
	}
	a.HandleKey('1')
	a.HandleKey(input.KeyEscape)
	if a.ShouldQuit() || a.Status().ConsoleOpen {
		t.Error("Escape should close the console, not quit")
	}
	if a.Cube().Current().Color() != colors.White {
		t.Error("typing in the console painted the face")
	}
	if a.Console().Input() != "1" {
		t.Errorf("input = %q", a.Console().Input())
	}
}

func TestConsoleTypesNonASCII(t *testing.T) {
	a := newApp(t, nil)
	a.HandleKey(KeyConsole)
	for _, r := range "ăĀ" {
		a.HandleKey(input.Key(r))
	}
	a.HandleKey(input.KeyLeft)
	if got := a.Console().Input(); got != "ăĀ" {
		t.Errorf("input = %q", got)
	}
}

func TestConsoleCommands(t *testing.T) {
	a := newApp(t, nil)
	run := func(line string) error {
		args := splitArgs(line)
		return a.Commands().Execute(args)
	}

	steps := []struct {
		line  string
		ok    bool
		check func() bool
	}{
		{"face 4", true, func() bool { return a.Cube().Selected() == 4 }},
		{"face 9", false, func() bool { return a.Cube().Selected() == 4 }},
		{"color 0.2 0.4 0.6", true, func() bool { return a.Cube().Current().Color() == colors.RGB{R: 0.2, G: 0.4, B: 0.6} }},
		{"mix 1 0 0", true, func() bool { return a.Cube().Current().Color().R == 1 }},
		{"pattern stripes", true, func() bool { return a.Cube().Current().Pattern() == face.PatternStripes }},
		{"pattern plaid", false, nil},
		{"zoom 2", false, nil},
		{"load cat.png", true, func() bool { return a.Cube().Current().HasTexture() }},
		{"pattern dots", false, nil},
		{"zoom 2.5", true, func() bool { return a.Cube().Current().Scale() == 2.5 }},
		{"rotate -1", true, func() bool { return a.Cube().Current().Rotation() == 3 }},
		{"clear --color-only", true, func() bool { return a.Cube().Current().HasTexture() }},
		{"clear", true, func() bool { return a.Cube().Current().State() == face.Plain }},
		{"hud --show", true, func() bool { return a.HUDVisible() }},
		{"hud --hide", true, func() bool { return !a.HUDVisible() }},
		{"hud --show --hide", false, nil},
		{"background --mode math --color 2", true, func() bool {
			return a.Background().Mode() == background.MathPattern && a.Background().ColorIndex() == 2
		}},
		{"background --mode plasma", false, nil},
	}
	for _, s := range steps {
		err := run(s.line)
		if (err == nil) != s.ok {
			t.Fatalf("%q: err = %v", s.line, err)
		}
		if s.check != nil && !s.check() {
			t.Fatalf("%q: state not applied", s.line)
		}
	}
}

func TestConsoleTypedCommand(t *testing.T) {
	a := newApp(t, nil)
	a.HandleKey(KeyConsole)
	typeLine(a, "cmd face 5")
	if a.Cube().Selected() != 5 {
		t.Errorf("selected = %d", a.Cube().Selected())
	}
	if a.Console().Input() != "" {
		t.Error("input not cleared after submit")
	}
}

func splitArgs(s string) []string {
	var out []string
	cur := ""
	for _, r := range s + " " {
		if r == ' ' {
			if cur != "" {
				out = append(out, cur)
			}
			cur = ""
			continue
		}
		cur += string(r)
	}
	return out
}
