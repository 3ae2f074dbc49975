package cli

import (
	"github.com/spf13/pflag"

	"github.com/replicate/uuidtool/uuid"
)

// shapeFlags are the output flags shared by gen, fmt, nil and normalize.
type shapeFlags struct {
	canonical bool
	compact   bool
	hex       bool
	uppercase bool
}

func (f *shapeFlags) register(fs *pflag.FlagSet, withCanonical bool) {
	if withCanonical {
		fs.BoolVar(&f.canonical, "canonical", false, "output in canonical format (with hyphens)")
	}
	fs.BoolVar(&f.compact, "compact", false, "output in compact format (no hyphens)")
	fs.BoolVar(&f.hex, "hex", false, "output with 0x hex prefix")
	fs.BoolVar(&f.uppercase, "uppercase", false, "output in uppercase")
}

// shape resolves the flags with --hex taking precedence over --compact, and
// canonical as the default.
func (f *shapeFlags) shape() uuid.Shape {
	switch {
	case f.hex:
		return uuid.ShapeHex
	case f.compact:
		return uuid.ShapeCompact
	default:
		return uuid.ShapeCanonical
	}
}

func (f *shapeFlags) options() uuid.FormatOptions {
	return uuid.FormatOptions{Shape: f.shape(), Uppercase: f.uppercase}
}
