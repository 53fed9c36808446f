// Command vied is the CLI entry point for the editor core: it parses
// arguments, opens the target file (or an empty scratch buffer), brings up
// the terminal, paints one frame, and tears everything back down. Grounded
// on cmd/vi-fighter/main.go's flag-parsing / logging-setup / screen-init /
// panic-recovery shape; the interactive event loop itself is out of scope
// (see spec.md's Non-goals), so this only proves the stack wires together.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/vied/config"
	"github.com/lixenwraith/vied/core"
	"github.com/lixenwraith/vied/render"
	"github.com/lixenwraith/vied/terminal"
)

const progName = "vied"

const (
	logDir      = "logs"
	logFileName = "vied.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging redirects the standard logger to a rotated file when debug
// is set, or discards it otherwise — stdout/stderr must stay clean for the
// raw-mode terminal session. Grounded on cmd/vi-fighter/main.go's
// setupLogging.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "%s: warning: failed to create log dir: %v\n", progName, err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("vied-%s.log", time.Now().Format("2006-01-02-15-04-05")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "%s: warning: failed to rotate log: %v\n", progName, err)
		}
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: warning: failed to open log file: %v\n", progName, err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Printf("=== %s started ===", progName)
	return logFile
}

func run() error {
	debug := flag.Bool("debug", false, "enable debug logging to file")
	themePath := flag.String("theme", "", "path to a TOML theme file")
	flag.Parse()

	logFile := setupLogging(*debug)
	if logFile != nil {
		defer logFile.Close()
	}

	var buf *core.Buffer
	if path := flag.Arg(0); path != "" {
		b, err := core.FromFile(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		buf = b
	} else {
		buf = core.New()
	}

	theme, err := config.LoadTheme(*themePath)
	if err != nil {
		return err
	}

	term := terminal.New()
	if err := term.Enter(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer term.Leave()
	defer terminal.RecoverAndRestore()

	width, height := term.Size()
	fb := render.NewFrameBuffer(width, height, theme.Background.ToCellColor())

	view := render.NewView()
	view.Render(fb, render.Rect{X: 0, Y: 0, W: width, H: height}, render.RenderState{
		Buffer: buf,
		Cursor: core.Position{},
		Mode:   render.ModeNormal,
		Theme:  theme,
	})

	diff := terminal.NewDiffRenderer(term.OutputBuffer())
	diff.Render(fb)
	if err := diff.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", progName, err)
		os.Exit(1)
	}
}
