package train

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/motreid/reidrun/cmd/reidrun/root/launch"
	"github.com/motreid/reidrun/internal/launcher"
	"github.com/spf13/cobra"
)

func NewTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train [flags]",
		Short: "Start a training run",
		Long:  `Run the training entry point with the given options, from the source directory, and exit with its status.`,
		Example: heredoc.Doc(`
			# Fine-tune the identity head with a pairwise cosine loss
			$ reidrun train --exp-id pairloss_m10_lr4_mot17training_e10 --gpus 0 \
			    --num-epochs 10 --lr 1e-4 --batch-size 12 --reid-dim 128 --arch hrnet_18 \
			    --load-model ../models/hrnetv2_w18_imagenet_pretrained.pth --freeze backbone_det \
			    --data-cfg ../src/lib/cfg/mot17.json --data-dir /data/mot \
			    --id-loss pair --margin 10 --sampling hardest --positives --distance-func cosine

			# Same run from a preset, overriding the GPU
			$ reidrun train --preset runs/pairloss.yaml --gpus 1

			# Show what would be executed
			$ reidrun train --preset runs/pairloss.yaml --dry-run --format yaml
		`),
		Args: cobra.NoArgs,
	}

	return launch.AddLaunchSupport(cmd, launcher.Train)
}
