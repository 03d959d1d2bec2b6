package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"paintcube/internal/app"
	"paintcube/internal/input"
)

// specialKeys maps raylib keys that produce no character to app keys.
var specialKeys = []struct {
	rl     int32
	key    input.Key
	repeat bool
}{
	{rl.KeyEscape, input.KeyEscape, false},
	{rl.KeyEnter, input.KeyEnter, false},
	{rl.KeyKpEnter, input.KeyEnter, false},
	{rl.KeyBackspace, input.KeyBackspace, true},
	{rl.KeyDelete, input.KeyDelete, false},
	{rl.KeyUp, input.KeyUp, true},
	{rl.KeyDown, input.KeyDown, true},
	{rl.KeyLeft, input.KeyLeft, true},
	{rl.KeyRight, input.KeyRight, true},
}

// pollInput feeds this frame's characters, special keys and clicks to a.
func pollInput(a *app.App) {
	for r := rl.GetCharPressed(); r != 0; r = rl.GetCharPressed() {
		a.HandleKey(input.Key(r))
	}
	for _, sk := range specialKeys {
		if rl.IsKeyPressed(sk.rl) || (sk.repeat && rl.IsKeyPressedRepeat(sk.rl)) {
			a.HandleKey(sk.key)
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		a.HandleClick(int(rl.GetMouseX()), int(rl.GetMouseY()))
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		a.HandleRightClick(int(rl.GetMouseX()), int(rl.GetMouseY()))
	}
}
