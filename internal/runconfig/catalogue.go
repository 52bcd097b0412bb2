package runconfig

// Kind describes the value an option carries. It is informational: values
// are forwarded as the text the user typed, never re-formatted.
type Kind string

const (
	KindString Kind = "string"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	// KindSwitch options carry no value on the external command line. They
	// are emitted as a bare flag when true and dropped when false.
	KindSwitch Kind = "switch"
)

// Option is one entry of the catalogue of recognised run options.
type Option struct {
	// Name is the CLI flag and preset key, e.g. "num-epochs".
	Name string `json:"name" yaml:"name"`
	// Arg is the argument the external program expects, e.g. "--num_epochs".
	Arg   string   `json:"arg" yaml:"arg"`
	Kind  Kind     `json:"kind" yaml:"kind"`
	Usage string   `json:"usage" yaml:"usage"`
	Hints []string `json:"hints,omitempty" yaml:"hints,omitempty"`
}

// catalogue order is the order options are rendered on the command line.
var catalogue = []Option{
	{Name: "exp-id", Arg: "--exp_id", Kind: KindString, Usage: "Experiment id, names the output directory for logs and checkpoints"},
	{Name: "gpus", Arg: "--gpus", Kind: KindString, Usage: "GPU device(s) to run on (e.g. 0 or 0,1)"},
	{Name: "num-epochs", Arg: "--num_epochs", Kind: KindInt, Usage: "Number of passes over the training set"},
	{Name: "lr", Arg: "--lr", Kind: KindFloat, Usage: "Optimizer learning rate (e.g. 1e-4)"},
	{Name: "batch-size", Arg: "--batch_size", Kind: KindInt, Usage: "Samples per training step"},
	{Name: "reid-dim", Arg: "--reid_dim", Kind: KindInt, Usage: "Size of the ReID embedding vector"},
	{Name: "arch", Arg: "--arch", Kind: KindString, Usage: "Backbone architecture", Hints: []string{"hrnet_18", "hrnet_32", "dla_34", "resdcn_34"}},
	{Name: "load-model", Arg: "--load_model", Kind: KindString, Usage: "Checkpoint to load initial weights from"},
	{Name: "freeze", Arg: "--freeze", Kind: KindString, Usage: "Sub-network whose parameters are held fixed", Hints: []string{"backbone", "backbone_det"}},
	{Name: "data-cfg", Arg: "--data_cfg", Kind: KindString, Usage: "Dataset manifest file"},
	{Name: "data-dir", Arg: "--data_dir", Kind: KindString, Usage: "Root directory of the dataset"},
	{Name: "id-loss", Arg: "--id_loss", Kind: KindString, Usage: "Identity loss function", Hints: []string{"ce", "pair", "triplet"}},
	{Name: "margin", Arg: "--margin", Kind: KindFloat, Usage: "Margin of a margin-based identity loss"},
	{Name: "sampling", Arg: "--sampling", Kind: KindString, Usage: "How negative pairs are mined", Hints: []string{"hardest", "random"}},
	{Name: "positives", Arg: "--positives", Kind: KindSwitch, Usage: "Enable positive-pair sampling"},
	{Name: "distance-func", Arg: "--distance_func", Kind: KindString, Usage: "Distance used by the identity loss", Hints: []string{"euclidean", "cosine"}},
	{Name: "conf-thres", Arg: "--conf_thres", Kind: KindFloat, Usage: "Detection confidence threshold used at evaluation time"},
}

var byName = func() map[string]int {
	m := make(map[string]int, len(catalogue))
	for i, opt := range catalogue {
		m[opt.Name] = i
	}
	return m
}()

// Catalogue returns a copy of the recognised options in rendering order.
func Catalogue() []Option {
	out := make([]Option, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup finds a recognised option by name. Underscores are accepted in
// place of dashes so keys copied from the external command line resolve.
func Lookup(name string) (Option, bool) {
	i, ok := byName[normalizeName(name)]
	if !ok {
		return Option{}, false
	}
	return catalogue[i], true
}

func isExternalArg(key string) bool {
	for _, opt := range catalogue {
		if opt.Arg == "--"+key {
			return true
		}
	}
	return false
}
