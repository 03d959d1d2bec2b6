// Package graphics owns the raylib window and the frame loop.
package graphics

import (
	"context"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"paintcube/internal/colors"
	"paintcube/internal/logger"
	"paintcube/internal/render"
)

// Window configures the window opened by Run.
type Window struct {
	Width  int
	Height int
	Title  string
	FPS    int
	// Clear is the color the frame is cleared to before draw.
	Clear colors.RGB
}

// Run opens the window and runs the loop until update returns false or the
// window is closed. Each frame it calls update (input and state), then
// clears the screen and calls draw. init runs once after the window and GL
// context exist, before the first frame.
func Run(w Window, init func(), update func() bool, draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable | rl.FlagVsyncHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()

	// Escape is an app key, not a close request.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(w.FPS))

	if init != nil {
		init()
	}
	clear := render.Color(w.Clear, 255)
	for !rl.WindowShouldClose() {
		if !update() {
			break
		}
		rl.BeginDrawing()
		rl.ClearBackground(clear)
		draw()
		rl.EndDrawing()
	}
}

// RouteLogs sends raylib's trace output to log. Raylib info chatter is
// logged at debug level.
func RouteLogs(log *slog.Logger) {
	log = logger.Or(log)
	rl.SetTraceLogLevel(rl.LogInfo)
	rl.SetTraceLogCallback(func(level int, msg string) {
		log.Log(context.Background(), traceLevel(rl.TraceLogLevel(level)), msg, "source", "raylib")
	})
}

func traceLevel(l rl.TraceLogLevel) slog.Level {
	switch {
	case l >= rl.LogError:
		return slog.LevelError
	case l == rl.LogWarning:
		return slog.LevelWarn
	}
	return slog.LevelDebug
}
