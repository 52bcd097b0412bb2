package runconfig

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownOption is returned when a value is set for a name that is not in
// the catalogue.
var ErrUnknownOption = errors.New("unknown option")

// Configuration holds the options supplied for a single run. Values are the
// raw text given by the user; only supplied options are present.
type Configuration struct {
	values map[string]string
	extras map[string]string
}

func New() *Configuration {
	return &Configuration{
		values: make(map[string]string),
		extras: make(map[string]string),
	}
}

// Set records the value of a catalogue option.
func (c *Configuration) Set(name, value string) error {
	opt, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}
	if opt.Kind == KindSwitch {
		if _, err := parseSwitch(value); err != nil {
			return fmt.Errorf("option %s: %w", opt.Name, err)
		}
	}
	c.values[opt.Name] = value
	return nil
}

// SetExtra records an argument outside the catalogue. It is rendered as
// "--key value", or as a bare "--key" when value is empty.
func (c *Configuration) SetExtra(key, value string) error {
	key = strings.TrimLeft(strings.TrimSpace(key), "-")
	if key == "" {
		return errors.New("extra option has an empty key")
	}
	if _, ok := Lookup(key); ok || isExternalArg(key) {
		return fmt.Errorf("extra option %q shadows a recognised option, use its flag instead", key)
	}
	c.extras[key] = value
	return nil
}

// Get returns the raw value of a catalogue option.
func (c *Configuration) Get(name string) (string, bool) {
	v, ok := c.values[normalizeName(name)]
	return v, ok
}

// Len is the number of options set, extras included.
func (c *Configuration) Len() int {
	return len(c.values) + len(c.extras)
}

// Merge copies every value of other into c, overwriting values c already has.
func (c *Configuration) Merge(other *Configuration) {
	if other == nil {
		return
	}
	for k, v := range other.values {
		c.values[k] = v
	}
	for k, v := range other.extras {
		c.extras[k] = v
	}
}

// Values returns the supplied catalogue options keyed by name.
func (c *Configuration) Values() map[string]string {
	out := make(map[string]string, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Args renders the configuration as external program arguments: catalogue
// options in catalogue order, then extras sorted by key.
func (c *Configuration) Args() []string {
	args := make([]string, 0, 2*c.Len())
	for _, opt := range catalogue {
		value, ok := c.values[opt.Name]
		if !ok {
			continue
		}
		if opt.Kind == KindSwitch {
			if on, _ := parseSwitch(value); on {
				args = append(args, opt.Arg)
			}
			continue
		}
		args = append(args, opt.Arg, value)
	}

	keys := make([]string, 0, len(c.extras))
	for k := range c.extras {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "--"+k)
		if v := c.extras[k]; v != "" {
			args = append(args, v)
		}
	}
	return args
}

func parseSwitch(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "0", "f", "false", "n", "no", "off", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid switch value %q", value)
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.TrimLeft(strings.TrimSpace(name), "-"), "_", "-")
}
