// Package dialog asks the desktop for an image file using whichever chooser
// program is installed.
package dialog

import (
	"context"
	"errors"
	"os/exec"
	"strings"
)

var (
	// ErrNoChooser means none of the chooser programs is installed.
	ErrNoChooser = errors.New("dialog: no file chooser found (install zenity or kdialog)")
	// ErrCancelled means the user closed the chooser without a selection.
	ErrCancelled = errors.New("dialog: cancelled")
)

// Chooser is one external file chooser invocation.
type Chooser struct {
	Program string
	Args    []string
}

// Choosers are tried in order.
var Choosers = []Chooser{
	{"zenity", []string{"--file-selection", "--title=Select image",
		"--file-filter=Images | *.png *.jpg *.jpeg *.gif *.bmp *.tif *.tiff *.webp *.tga *.psd *.hdr *.ppm"}},
	{"kdialog", []string{"--getopenfilename", ".", "Images (*.png *.jpg *.jpeg *.gif *.bmp *.tif *.tiff *.webp *.tga *.psd *.hdr *.ppm)"}},
	{"osascript", []string{"-e", "POSIX path of (choose file)"}},
}

// Picker runs the first available chooser.
type Picker struct {
	Choosers []Chooser
	lookPath func(string) (string, error)
	run      func(ctx context.Context, name string, args ...string) (string, error)
}

// New returns a Picker over Choosers.
func New() *Picker {
	return &Picker{Choosers: Choosers, lookPath: exec.LookPath, run: output}
}

func output(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	return string(out), err
}

// PickImage blocks until the user picks a file and returns its path.
func (p *Picker) PickImage(ctx context.Context) (string, error) {
	for _, c := range p.Choosers {
		path, err := p.lookPath(c.Program)
		if err != nil {
			continue
		}
		out, err := p.run(ctx, path, c.Args...)
		// Choosers exit non-zero on cancel.
		if err != nil {
			var exit *exec.ExitError
			if errors.As(err, &exit) {
				return "", ErrCancelled
			}
			return "", err
		}
		sel := strings.TrimRight(out, "\r\n ")
		if sel == "" {
			return "", ErrCancelled
		}
		return sel, nil
	}
	return "", ErrNoChooser
}
