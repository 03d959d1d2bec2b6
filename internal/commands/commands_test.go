package commands

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		args []string
		ok   bool
	}{
		{"cmd face 2", []string{"face", "2"}, true},
		{"cmd   zoom   1.5 ", []string{"zoom", "1.5"}, true},
		{"cmd ", nil, true},
		{"hello", nil, false},
		{"CMD face 1", nil, false},
	}
	for _, tt := range tests {
		args, ok := Parse(tt.line)
		if ok != tt.ok || !reflect.DeepEqual(args, tt.args) {
			t.Errorf("Parse(%q) = %q, %v", tt.line, args, ok)
		}
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	var gotArgs []string
	fs := NewFlagSet("hud")
	show := fs.Bool("show", false, "")
	r.Register("hud", "--show", fs, func(args []string) error {
		gotArgs = args
		return nil
	})
	r.Register("fail", "", nil, func([]string) error { return errors.New("nope") })
	var rotated []string
	r.Register("rotate", "<n>", nil, func(args []string) error {
		rotated = args
		return nil
	})
	if err := r.Execute([]string{"rotate", "-1"}); err != nil || !reflect.DeepEqual(rotated, []string{"-1"}) {
		t.Errorf("rotate -1: args %q err %v", rotated, err)
	}

	if err := r.Execute([]string{"hud", "--show", "extra"}); err != nil {
		t.Fatal(err)
	}
	if !*show || !reflect.DeepEqual(gotArgs, []string{"extra"}) {
		t.Errorf("show %v args %q", *show, gotArgs)
	}
	if err := r.Execute([]string{"hud"}); err != nil || *show {
		t.Errorf("flag state leaked between runs: show=%v err=%v", *show, err)
	}
	if err := r.Execute([]string{"hud", "--bogus"}); err == nil || !strings.Contains(err.Error(), "hud") {
		t.Errorf("bad flag err = %v", err)
	}
	if err := r.Execute([]string{"fail"}); err == nil {
		t.Error("Run error lost")
	}
	if err := r.Execute([]string{"missing"}); err == nil {
		t.Error("unknown command accepted")
	}
	if err := r.Execute(nil); err == nil {
		t.Error("empty args accepted")
	}
	if got := r.Names(); !reflect.DeepEqual(got, []string{"fail", "hud", "rotate"}) {
		t.Errorf("Names = %q", got)
	}
	if help := r.Help(); len(help) != 3 || help[1] != "cmd hud --show" {
		t.Errorf("Help = %q", help)
	}
}
