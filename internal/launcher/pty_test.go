//go:build linux || darwin

package launcher_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/motreid/reidrun/internal/launcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUnderPTY(t *testing.T) {
	f := newFixture(t, 3)
	cfg := f.config()
	cfg.WorkDir = f.src

	var out bytes.Buffer
	l, err := launcher.New(cfg, launcher.WithTTY(true), launcher.WithStdio(nil, &out, &out))
	require.NoError(t, err)
	inv, err := l.Prepare(launcher.Train, pairLossConfig(t))
	require.NoError(t, err)

	err = l.Run(context.Background(), inv)
	var exitErr *launcher.ExitError
	require.True(t, errors.As(err, &exitErr), "got %v", err)
	assert.Equal(t, 3, exitErr.Code)

	// The terminal translates \n to \r\n.
	assert.Equal(t, "epoch 1 done", strings.TrimSpace(out.String()))

	report := f.read(t)
	samePath(t, f.src, report.Dir)
	assert.Equal(t, inv.Args, report.Args)
}

func TestRunUnderPTYDoesNotWaitForDescendants(t *testing.T) {
	f := newFixture(t, 4)
	t.Setenv(fakeOrphanEnv, "1")
	cfg := f.config()
	cfg.WorkDir = f.src

	var out bytes.Buffer
	l, err := launcher.New(cfg,
		launcher.WithTTY(true),
		launcher.WithStdio(nil, &out, &out),
		launcher.WithDrainTimeout(200*time.Millisecond),
	)
	require.NoError(t, err)
	inv, err := l.Prepare(launcher.Train, nil)
	require.NoError(t, err)

	start := time.Now()
	err = l.Run(context.Background(), inv)
	elapsed := time.Since(start)

	var exitErr *launcher.ExitError
	require.True(t, errors.As(err, &exitErr), "got %v", err)
	assert.Equal(t, 4, exitErr.Code)
	// The descendant sleeps for 5s with the terminal open.
	assert.Less(t, elapsed, 4*time.Second)
}
