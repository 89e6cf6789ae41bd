// Command cursorblur renders a fading motion trail behind the screen
// cursor, composited over the desktop in a borderless window.
//
// Launch options (case-insensitive, "/" or "-" prefix, value follows):
//
//	sensitivity|s  [0.001, 1.0]   speed-to-alpha compensation (default 0.03)
//	fade|f         [1, 1000] ms   fade duration (default 50)
//	alpha|a        [1, 255]       peak trail opacity (default 10)
//	color|c        hex RGB        glyph tint, optional # prefix (default FFFFFF)
//
// Malformed values fall back silently to defaults; unknown tokens are
// ignored. An optional cursorblur.toml next to the executable is read
// first, with launch options overriding it.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	hook "github.com/robotn/gohook"

	cursorblur "github.com/obieFM/CursorBlur"
	"github.com/obieFM/CursorBlur/platform"
	"github.com/obieFM/CursorBlur/platform/giowindow"
)

func main() {
	log.SetPrefix("cursorblur: ")
	log.SetFlags(0)

	cfg := cursorblur.DefaultConfig()
	if path := configPath(); path != "" {
		cfg.LoadFile(path)
	}
	cfg.ParseTokens(os.Args[1:])

	displays := platform.NewDesktopDisplays()
	vs := displays.VirtualScreen()
	presenter := giowindow.New("CursorBlur", vs.Size())

	loop, err := cursorblur.NewLoop(cfg, cursorblur.Capabilities{
		Cursor:    platform.NewDesktopCursor(cursorblur.DefaultGlyphSize),
		Displays:  displays,
		Presenter: presenter,
	})
	if err != nil {
		// Zero-chrome background tool: resource failure exits cleanly
		// with status 0, logging is the only trace.
		log.Print(err)
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// Quit paths: process signal, global hotkey, window destroyed.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	hook.Register(hook.KeyDown, []string{"ctrl", "alt", "q"}, func(e hook.Event) {
		cancel()
	})
	go func() {
		events := hook.Start()
		<-hook.Process(events)
	}()

	go func() {
		<-presenter.Done()
		cancel()
	}()

	go func() {
		defer cancel()
		if err := loop.Run(ctx); err != nil {
			log.Print(err)
		}
		if err := loop.Close(); err != nil {
			log.Print(err)
		}
		hook.End()
		_ = presenter.Close()
		os.Exit(0)
	}()

	// gio owns the main thread.
	giowindow.Main()
}

// configPath returns the optional TOML config location: cursorblur.toml
// next to the executable, falling back to the working directory.
func configPath() string {
	if exe, err := os.Executable(); err == nil {
		p := filepath.Join(filepath.Dir(exe), "cursorblur.toml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if _, err := os.Stat("cursorblur.toml"); err == nil {
		return "cursorblur.toml"
	}
	return ""
}
