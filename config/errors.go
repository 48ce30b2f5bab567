package config

import (
	"fmt"
)

// OptionError reports an option whose value can not be used.
type OptionError struct {
	Option string
	Value  string
	File   string
}

func (e OptionError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("option %s: invalid value %q", e.Option, e.Value)
	}
	return fmt.Sprintf("%s: option %s: invalid value %q", e.File, e.Option, e.Value)
}
