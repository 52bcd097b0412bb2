package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/motreid/reidrun/internal/options"
	"github.com/motreid/reidrun/internal/runconfig"
)

// LaunchIDEnv is exported to the external program with the id of the launch.
const LaunchIDEnv = "REIDRUN_LAUNCH_ID"

const (
	defaultGracePeriod  = 10 * time.Second
	defaultDrainTimeout = 2 * time.Second
)

// Invocation is a fully resolved external program call.
type Invocation struct {
	LaunchID string     `json:"launchId" yaml:"launchId"`
	Entry    EntryPoint `json:"entry" yaml:"entry"`
	Dir      string     `json:"dir" yaml:"dir"`
	Path     string     `json:"path" yaml:"path"`
	Args     []string   `json:"args" yaml:"args"`
}

// Launcher starts external programs and waits for them.
type Launcher struct {
	cfg         Config
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	tty         bool
	gracePeriod time.Duration
	// drainTimeout bounds how long terminal output is copied once the
	// program has exited.
	drainTimeout time.Duration
	getwd        func() (string, error)
}

// WithStdio overrides the streams passed to the external program.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) options.Option {
	return options.For(func(l *Launcher) {
		l.stdin = stdin
		l.stdout = stdout
		l.stderr = stderr
	})
}

// WithTTY runs the external program under a pseudo-terminal.
func WithTTY(enabled bool) options.Option {
	return options.For(func(l *Launcher) {
		l.tty = enabled
	})
}

// WithGracePeriod sets how long the program may take to exit after being
// interrupted before it is killed.
func WithGracePeriod(d time.Duration) options.Option {
	return options.For(func(l *Launcher) {
		if d > 0 {
			l.gracePeriod = d
		}
	})
}

// WithDrainTimeout sets how long output left in the pseudo-terminal is
// copied after the program exits.
func WithDrainTimeout(d time.Duration) options.Option {
	return options.For(func(l *Launcher) {
		if d > 0 {
			l.drainTimeout = d
		}
	})
}

func New(cfg Config, opts ...options.Option) (*Launcher, error) {
	if cfg.Interpreter == "" {
		return nil, errors.New("interpreter must be configured")
	}
	if cfg.WorkDir == "" {
		return nil, errors.New("working directory must be configured")
	}
	l := &Launcher{
		cfg:          cfg,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		gracePeriod:  defaultGracePeriod,
		drainTimeout: defaultDrainTimeout,
		getwd:        os.Getwd,
	}
	options.ApplyAll(l, opts...)
	return l, nil
}

// Prepare resolves the call of entry with the options of rc. Nothing is
// started and the filesystem is not touched.
func (l *Launcher) Prepare(entry EntryPoint, rc *runconfig.Configuration) (*Invocation, error) {
	script, err := l.cfg.script(entry)
	if err != nil {
		return nil, err
	}

	dir := l.cfg.WorkDir
	if !filepath.IsAbs(dir) {
		wd, err := l.getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = filepath.Join(wd, dir)
	}

	args := []string{script}
	if l.cfg.Task != "" {
		args = append(args, l.cfg.Task)
	}
	if rc != nil {
		args = append(args, rc.Args()...)
	}

	return &Invocation{
		LaunchID: uuid.New().String(),
		Entry:    entry,
		Dir:      dir,
		Path:     l.cfg.Interpreter,
		Args:     args,
	}, nil
}

// Run starts the invocation from its directory and blocks until it exits.
// A non-zero exit is returned as *ExitError. The launcher's own working
// directory is never changed. When ctx is cancelled the program is
// interrupted, then killed once the grace period has passed.
func (l *Launcher) Run(ctx context.Context, inv *Invocation) error {
	info, err := os.Stat(inv.Dir)
	if err != nil {
		return fmt.Errorf("working directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("working directory %s is not a directory", inv.Dir)
	}

	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Env = append(os.Environ(), LaunchIDEnv+"="+inv.LaunchID)
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = l.gracePeriod

	log.Debug("Starting external program",
		"launch_id", inv.LaunchID,
		"dir", inv.Dir,
		"path", inv.Path,
		"args", inv.Args,
		"tty", l.tty,
	)

	start := time.Now()
	if l.tty {
		err = l.runPTY(cmd)
	} else {
		cmd.Stdin = l.stdin
		cmd.Stdout = l.stdout
		cmd.Stderr = l.stderr
		err = cmd.Run()
	}
	elapsed := time.Since(start)

	// Once the program has run, its own exit status decides the result. Wait
	// reports the context error instead when the program handled an
	// interrupt and exited cleanly.
	if state := cmd.ProcessState; state != nil {
		if code := exitCode(state); code != 0 {
			return &ExitError{Entry: inv.Entry, Code: code}
		}
		if err != nil {
			log.Debug("Program exited cleanly after an error", "launch_id", inv.LaunchID, "error", err)
		}
		log.Info("Run finished", "entry", inv.Entry, "launch_id", inv.LaunchID, "duration", elapsed.Round(time.Millisecond))
		return nil
	}
	return fmt.Errorf("failed to run %s: %w", inv.Entry, err)
}

// exitCode follows the shell convention of 128+N for a program killed by
// signal N.
func exitCode(state *os.ProcessState) int {
	if code := state.ExitCode(); code >= 0 {
		return code
	}
	if status, ok := state.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return 1
}
