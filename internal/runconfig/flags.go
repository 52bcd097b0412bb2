package runconfig

import (
	"github.com/spf13/pflag"
)

// BindFlags registers one flag per catalogue option. Valued options are
// string flags so the text the user types is exactly what gets forwarded.
func BindFlags(fs *pflag.FlagSet) {
	for _, opt := range catalogue {
		if opt.Kind == KindSwitch {
			fs.Bool(opt.Name, false, opt.Usage)
			continue
		}
		fs.String(opt.Name, "", opt.Usage)
	}
}

// FromFlags collects the catalogue options that were set on the command line.
func FromFlags(fs *pflag.FlagSet) (*Configuration, error) {
	cfg := New()
	for _, opt := range catalogue {
		if !fs.Changed(opt.Name) {
			continue
		}
		flag := fs.Lookup(opt.Name)
		if err := cfg.Set(opt.Name, flag.Value.String()); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
