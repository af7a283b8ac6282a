package config

// ErrOption reports an option with an unusable value.
type ErrOption struct {
	Name  string
	Value any
}

func (err *ErrOption) Error() string {
	return f("option %v: invalid value '%v'", err.Name, err.Value)
}
