package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/creack/pty"
	"github.com/moby/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(f.Fd())
}

// runPTY runs cmd with a pseudo-terminal as its stdin, stdout and stderr and
// copies everything it prints to the launcher's stdout. The terminal is sized
// like the launcher's own when it has one.
func (l *Launcher) runPTY(cmd *exec.Cmd) error {
	cmd.Env = append(cmd.Env, "PYTHONUNBUFFERED=1")

	ptmx, err := pty.StartWithSize(cmd, l.windowSize())
	if err != nil {
		return fmt.Errorf("failed to start PTY: %w", err)
	}
	defer ptmx.Close()

	copied := make(chan struct{})
	go func() {
		defer close(copied)
		if _, err := io.Copy(l.stdout, ptmx); err != nil && !isPTYClosed(err) {
			log.Warn("PTY read error", "error", err)
		}
	}()

	err = cmd.Wait()

	// Descendants that inherited the terminal keep the slave side open after
	// the program is gone. Give them drainTimeout to flush, then stop copying.
	select {
	case <-copied:
	case <-time.After(l.drainTimeout):
		log.Warn("PTY still held open after exit, detaching output", "pid", cmd.Process.Pid)
		ptmx.Close()
	}
	return err
}

func (l *Launcher) windowSize() *pty.Winsize {
	f, ok := l.stdout.(*os.File)
	if !ok {
		return nil
	}
	ws, err := term.GetWinsize(f.Fd())
	if err != nil || ws.Height == 0 || ws.Width == 0 {
		return nil
	}
	return &pty.Winsize{Rows: ws.Height, Cols: ws.Width}
}

// Reading the master side fails with EIO once the program has exited and the
// last slave descriptor is closed.
func isPTYClosed(err error) bool {
	return errors.Is(err, syscall.EIO) || errors.Is(err, os.ErrClosed)
}
