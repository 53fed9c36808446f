package terminal

import (
	"errors"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lixenwraith/vied/ansi"
)

// ErrNotATTY is returned by Enter when stdin isn't connected to a terminal,
// so a caller redirecting stdin from a file or pipe gets a clear error
// instead of an opaque MakeRaw failure. Grounded on
// original_source/crates/n-term/src/terminal.rs's is_tty guard, which the
// real editor checks before ever attempting raw mode.
var ErrNotATTY = errors.New("terminal: stdin is not a tty")

// IsTTY reports whether fd refers to a terminal device.
func IsTTY(fd int) bool {
	return term.IsTerminal(fd)
}

// ResizeEvent carries a terminal's new dimensions after SIGWINCH.
// Grounded on terminal/resize_unix.go's ResizeEvent.
type ResizeEvent struct {
	Width  int
	Height int
}

// Terminal owns raw-mode entry/exit, alternate-screen and cursor state, and
// SIGWINCH-driven resize notification for a single real terminal. Grounded
// on terminal/terminal.go's Terminal/termImpl, collapsed from an interface
// with one production implementation into a single concrete struct: the
// game kept termImpl behind an interface to support test doubles, but this
// package has only one real terminal and no mock to swap in, so the
// interface added indirection without payoff.
type Terminal struct {
	in  *os.File
	out *os.File
	fd  int

	mu       sync.Mutex
	entered  bool
	oldState *term.State

	width, height int

	ob *OutputBuffer

	sigCh      chan os.Signal
	resizeCh   chan ResizeEvent
	stopResize chan struct{}
	resizeDone chan struct{}
}

var (
	globalMu   sync.Mutex
	globalTerm *Terminal
)

// New creates a Terminal bound to stdin/stdout.
func New() *Terminal {
	return &Terminal{
		in:       os.Stdin,
		out:      os.Stdout,
		fd:       int(os.Stdin.Fd()),
		sigCh:    make(chan os.Signal, 1),
		resizeCh: make(chan ResizeEvent, 1),
	}
}

// Enter installs raw mode, enters the alternate screen, hides the cursor,
// clears it, enables mouse/kitty-keyboard/paste/focus reporting, and starts
// the SIGWINCH watcher. Registers itself as the process's panic-safe-restore
// target.
func (t *Terminal) Enter() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.entered {
		return nil
	}

	if !IsTTY(t.fd) {
		return ErrNotATTY
	}

	oldState, err := term.MakeRaw(t.fd)
	if err != nil {
		return err
	}
	t.oldState = oldState

	t.width, t.height = t.querySize()
	t.ob = NewOutputBuffer(t.out)

	w := t.ob.Writer()
	ansi.AltScreenEnter(w)
	ansi.CursorHide(w)
	ansi.ClearScreen(w)
	ansi.MouseEnable(w, 1)
	ansi.KittyKeyboardEnable(w)
	ansi.PasteEnable(w)
	ansi.FocusEnable(w)
	if err := t.ob.Flush(); err != nil {
		term.Restore(t.fd, t.oldState)
		return err
	}

	t.stopResize = make(chan struct{})
	t.resizeDone = make(chan struct{})
	signal.Notify(t.sigCh, syscall.SIGWINCH)
	go t.watchResize()

	t.entered = true

	globalMu.Lock()
	globalTerm = t
	globalMu.Unlock()

	return nil
}

// Leave reverses Enter in opposite order: disables every reporting mode,
// resets SGR state and cursor shape, shows the cursor, exits the alternate
// screen, and restores the original termios. Idempotent and safe to call
// more than once.
func (t *Terminal) Leave() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.entered {
		return
	}

	signal.Stop(t.sigCh)
	close(t.stopResize)
	<-t.resizeDone

	w := t.ob.Writer()
	ansi.FocusDisable(w)
	ansi.PasteDisable(w)
	ansi.KittyKeyboardDisable(w)
	ansi.MouseDisable(w, 1)
	ansi.Reset(w)
	ansi.SetCursorShape(w, ansi.CursorBlock)
	ansi.CursorShow(w)
	ansi.AltScreenExit(w)
	t.ob.Flush()

	term.Restore(t.fd, t.oldState)
	t.entered = false

	globalMu.Lock()
	if globalTerm == t {
		globalTerm = nil
	}
	globalMu.Unlock()
}

// Size returns the last-known terminal dimensions.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

// OutputBuffer returns the Terminal's output sink, valid after Enter.
func (t *Terminal) OutputBuffer() *OutputBuffer {
	return t.ob
}

// ResizeChan reports SIGWINCH-driven size changes. Only the most recent
// unconsumed size is ever queued.
func (t *Terminal) ResizeChan() <-chan ResizeEvent {
	return t.resizeCh
}

// querySize re-queries the OS via TIOCGWINSZ, falling back to 80x24 if the
// ioctl fails (e.g. output redirected to a non-tty).
func (t *Terminal) querySize() (int, int) {
	ws, err := unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// watchResize runs until stopResize is closed, delivering the latest size
// on every SIGWINCH with non-blocking, latest-wins semantics. Grounded on
// terminal/resize_unix.go's resizeHandler.watchLoop.
func (t *Terminal) watchResize() {
	defer close(t.resizeDone)
	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
		}
	}()

	for {
		select {
		case <-t.stopResize:
			return
		case <-t.sigCh:
			w, h := t.querySize()
			t.mu.Lock()
			t.width, t.height = w, h
			t.mu.Unlock()

			select {
			case t.resizeCh <- ResizeEvent{Width: w, Height: h}:
			default:
				select {
				case <-t.resizeCh:
				default:
				}
				select {
				case t.resizeCh <- ResizeEvent{Width: w, Height: h}:
				default:
				}
			}
		}
	}
}

// EmergencyReset writes the terminal-restoring escape sequences directly,
// bypassing any OutputBuffer, for use from a panic handler where the normal
// buffered write path may be in an inconsistent state. Grounded on
// terminal/terminal.go's package-level EmergencyReset.
func EmergencyReset(w *os.File) {
	w.WriteString("\x1b[?25h")
	w.WriteString("\x1b[?1049l")
	w.WriteString("\x1b[0m")
	w.WriteString("\x1bc")
}

// RecoverAndRestore is installed via defer in main so a panic always leaves
// the terminal in a sane state before the process exits. Grounded on
// core/crash_handler_unix.go's HandleCrash: restore first, then report.
func RecoverAndRestore() {
	r := recover()
	if r == nil {
		return
	}

	globalMu.Lock()
	active := globalTerm
	globalMu.Unlock()

	if active != nil {
		active.Leave()
	} else {
		EmergencyReset(os.Stdout)
	}

	os.Stderr.WriteString("vied: panic: ")
	os.Stderr.WriteString(formatPanic(r))
	os.Stderr.WriteString("\n")
	os.Stderr.Write(debug.Stack())
	os.Exit(1)
}

func formatPanic(r any) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	if s, ok := r.(string); ok {
		return s
	}
	return "unknown panic"
}
