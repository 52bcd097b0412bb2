package options

// Option configures a value of any type. Options built for one type are
// ignored when applied to another, so a single variadic list can be shared
// between a component and the things it constructs.
type Option interface {
	Apply(v interface{})
}

// OptionFunc adapts a plain function to the Option interface
type OptionFunc func(v interface{})

func (fn OptionFunc) Apply(v interface{}) {
	fn(v)
}

// For builds an Option that only fires when applied to a *T.
func For[T any](fn func(*T)) Option {
	return OptionFunc(func(v interface{}) {
		if t, ok := v.(*T); ok {
			fn(t)
		}
	})
}

// ApplyAll applies opts to v in order, skipping nil entries.
func ApplyAll(v interface{}, opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(v)
		}
	}
}
