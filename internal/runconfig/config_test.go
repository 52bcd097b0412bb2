package runconfig_test

import (
	"testing"

	"github.com/motreid/reidrun/internal/runconfig"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgsKeepRawValues(t *testing.T) {
	cfg := runconfig.New()
	require.NoError(t, cfg.Set("exp-id", "pairloss_m10_lr4_mot17training_e10"))
	require.NoError(t, cfg.Set("gpus", "0"))
	require.NoError(t, cfg.Set("num-epochs", "10"))
	require.NoError(t, cfg.Set("lr", "1e-4"))

	assert.Equal(t, []string{
		"--exp_id", "pairloss_m10_lr4_mot17training_e10",
		"--gpus", "0",
		"--num_epochs", "10",
		"--lr", "1e-4",
	}, cfg.Args())
}

func TestArgsFollowCatalogueOrder(t *testing.T) {
	cfg := runconfig.New()
	require.NoError(t, cfg.Set("conf-thres", "0.4"))
	require.NoError(t, cfg.Set("arch", "hrnet_18"))
	require.NoError(t, cfg.Set("exp-id", "e1"))

	assert.Equal(t, []string{"--exp_id", "e1", "--arch", "hrnet_18", "--conf_thres", "0.4"}, cfg.Args())
}

func TestSwitchOption(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "true", value: "true", want: []string{"--positives"}},
		{name: "yes", value: "yes", want: []string{"--positives"}},
		{name: "false", value: "false", want: []string{}},
		{name: "off", value: "off", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := runconfig.New()
			require.NoError(t, cfg.Set("positives", tt.value))
			assert.Equal(t, tt.want, cfg.Args())
		})
	}
}

func TestSwitchRejectsGarbage(t *testing.T) {
	cfg := runconfig.New()
	assert.Error(t, cfg.Set("positives", "maybe"))
}

func TestSetUnknownOption(t *testing.T) {
	cfg := runconfig.New()
	err := cfg.Set("learning-rate", "1e-4")
	assert.ErrorIs(t, err, runconfig.ErrUnknownOption)
}

func TestSetAcceptsExternalSpelling(t *testing.T) {
	cfg := runconfig.New()
	require.NoError(t, cfg.Set("num_epochs", "30"))
	v, ok := cfg.Get("num-epochs")
	assert.True(t, ok)
	assert.Equal(t, "30", v)
}

func TestFreezeIsForwardedVerbatim(t *testing.T) {
	for _, value := range []string{"backbone", "backbone_det", "anything-else"} {
		cfg := runconfig.New()
		require.NoError(t, cfg.Set("freeze", value))
		assert.Equal(t, []string{"--freeze", value}, cfg.Args())
	}
}

func TestExtras(t *testing.T) {
	cfg := runconfig.New()
	require.NoError(t, cfg.Set("lr", "2e-5"))
	require.NoError(t, cfg.SetExtra("--num_workers", "4"))
	require.NoError(t, cfg.SetExtra("hide_data_time", ""))

	assert.Equal(t, []string{"--lr", "2e-5", "--hide_data_time", "--num_workers", "4"}, cfg.Args())
	assert.Equal(t, 3, cfg.Len())
}

func TestExtrasCannotShadowCatalogue(t *testing.T) {
	cfg := runconfig.New()
	assert.Error(t, cfg.SetExtra("lr", "1"))
	assert.Error(t, cfg.SetExtra("exp_id", "x"))
	assert.Error(t, cfg.SetExtra("", "x"))
}

func TestMergeOverrides(t *testing.T) {
	base := runconfig.New()
	require.NoError(t, base.Set("lr", "1e-4"))
	require.NoError(t, base.Set("gpus", "0"))

	override := runconfig.New()
	require.NoError(t, override.Set("gpus", "1,2"))

	base.Merge(override)
	base.Merge(nil)

	assert.Equal(t, map[string]string{"lr": "1e-4", "gpus": "1,2"}, base.Values())
}

func TestFromFlagsOnlyChanged(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	runconfig.BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--lr", "1e-4", "--positives", "--batch-size=12"}))

	cfg, err := runconfig.FromFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, []string{"--lr", "1e-4", "--batch_size", "12", "--positives"}, cfg.Args())
}

func TestEveryCatalogueOptionIsForwarded(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	runconfig.BindFlags(fs)

	var argv, want []string
	for _, opt := range runconfig.Catalogue() {
		if opt.Kind == runconfig.KindSwitch {
			argv = append(argv, "--"+opt.Name)
			want = append(want, opt.Arg)
			continue
		}
		value := "v-" + opt.Name
		argv = append(argv, "--"+opt.Name, value)
		want = append(want, opt.Arg, value)
	}
	require.NoError(t, fs.Parse(argv))

	cfg, err := runconfig.FromFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, want, cfg.Args())
}
