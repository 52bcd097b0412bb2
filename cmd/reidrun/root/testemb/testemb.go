package testemb

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/motreid/reidrun/cmd/reidrun/root/launch"
	"github.com/motreid/reidrun/internal/launcher"
	"github.com/spf13/cobra"
)

func NewTestEmbCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test-emb [flags]",
		Short: "Evaluate ReID embeddings of a checkpoint",
		Long:  `Run the embedding test entry point with the given options, from the source directory, and exit with its status.`,
		Example: heredoc.Doc(`
			$ reidrun test-emb --exp-id pairloss_m10_lr4_mot17training_e10 --gpus 0 \
			    --arch hrnet_18 --reid-dim 128 --conf-thres 0.4 \
			    --load-model ../exp/mot/pairloss_m10_lr4_mot17training_e10/model_last.pth \
			    --data-cfg ../src/lib/cfg/mot17.json --data-dir /data/mot
		`),
		Args: cobra.NoArgs,
	}

	return launch.AddLaunchSupport(cmd, launcher.TestEmb)
}
