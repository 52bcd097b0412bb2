package launcher

import "fmt"

// EntryPoint names one of the external programs a run can start.
type EntryPoint string

const (
	Train   EntryPoint = "train"
	TestEmb EntryPoint = "test-emb"
)

// Config describes where the external programs live and how to start them.
type Config struct {
	// Interpreter runs the entry scripts. A bare name is looked up in PATH,
	// a relative path is resolved against WorkDir.
	Interpreter string
	// WorkDir is the directory the external program runs from. Relative
	// paths are resolved against the launcher's working directory.
	WorkDir string
	// Task is the first positional argument of every entry script.
	Task    string
	Scripts map[EntryPoint]string
}

func DefaultConfig() Config {
	return Config{
		Interpreter: "python",
		WorkDir:     "src",
		Task:        "mot",
		Scripts: map[EntryPoint]string{
			Train:   "train.py",
			TestEmb: "test_emb.py",
		},
	}
}

func (c Config) script(entry EntryPoint) (string, error) {
	script, ok := c.Scripts[entry]
	if !ok || script == "" {
		return "", fmt.Errorf("no script configured for entry point %q", entry)
	}
	return script, nil
}

// ExitError reports a non-zero exit status of the external program.
type ExitError struct {
	Entry EntryPoint
	Code  int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Entry, e.Code)
}
