package runconfig_test

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/motreid/reidrun/internal/runconfig"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPreset(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/presets/pairloss.yaml", []byte(heredoc.Doc(`
		exp-id: pairloss_m10_lr4_mot17training_e10
		gpus: 0
		num_epochs: 10
		lr: 1e-4
		batch-size: 12
		arch: hrnet_18
		freeze: backbone_det
		id-loss: pair
		margin: 10.0
		sampling: hardest
		positives: true
		distance-func: cosine
		load-model:
		extra:
		  num_workers: 8
	`)), 0o644))

	cfg, err := runconfig.LoadPreset(fs, "/presets/pairloss.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"--exp_id", "pairloss_m10_lr4_mot17training_e10",
		"--gpus", "0",
		"--num_epochs", "10",
		"--lr", "1e-4",
		"--batch_size", "12",
		"--arch", "hrnet_18",
		"--freeze", "backbone_det",
		"--id_loss", "pair",
		"--margin", "10.0",
		"--sampling", "hardest",
		"--positives",
		"--distance_func", "cosine",
		"--num_workers", "8",
	}, cfg.Args())
	_, ok := cfg.Get("load-model")
	assert.False(t, ok)
}

func TestParsePresetErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "unknown key", content: "learning_rate: 1e-4\n", errMsg: "unknown option"},
		{name: "not a mapping", content: "- lr\n", errMsg: "top level must be a mapping"},
		{name: "nested value", content: "lr:\n  value: 1\n", errMsg: "lr must be a scalar"},
		{name: "extra not mapping", content: "extra: 3\n", errMsg: "extra must be a mapping"},
		{name: "extra shadows", content: "extra:\n  lr: 3\n", errMsg: "shadows"},
		{name: "bad yaml", content: "lr: [\n", errMsg: "failed to parse YAML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runconfig.ParsePreset([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseEmptyPreset(t *testing.T) {
	cfg, err := runconfig.ParsePreset(nil)
	require.NoError(t, err)
	assert.Zero(t, cfg.Len())
}

func TestLoadPresetMissingFile(t *testing.T) {
	_, err := runconfig.LoadPreset(afero.NewMemMapFs(), "/nope.yaml")
	assert.ErrorContains(t, err, "failed to read preset")
}
