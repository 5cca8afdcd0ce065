package svgvector

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/pelletier/go-toml/v2"
)

// DefaultMaxUseDepth bounds nested <use> instantiation when Options leaves
// MaxUseDepth at zero.
const DefaultMaxUseDepth = 16

// Options tune a parse. The zero value gives the default behavior.
type Options struct {
	// ForceResolvedPaths always emits paths derived from the resolved
	// outline, even where the authored path data could be kept verbatim.
	ForceResolvedPaths bool `toml:"force_resolved_paths"`
	// OmitDefaultFill leaves the fill of a path unset when neither the path
	// nor any ancestor declares one. By default an explicit black fill is
	// emitted, matching SVG's initial value.
	OmitDefaultFill bool `toml:"omit_default_fill"`
	// MaxUseDepth limits <use> nesting. Zero means DefaultMaxUseDepth.
	MaxUseDepth int `toml:"max_use_depth"`
	// Logger receives traversal diagnostics. The zero value discards them.
	Logger logr.Logger `toml:"-"`
}

// DecodeOptions reads Options from TOML. Unknown keys are an error.
func DecodeOptions(r io.Reader) (Options, error) {
	var o Options
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&o); err != nil {
		return Options{}, err
	}
	return o, nil
}

func (o Options) maxUseDepth() int {
	if o.MaxUseDepth <= 0 {
		return DefaultMaxUseDepth
	}
	return o.MaxUseDepth
}

func (o Options) logger() logr.Logger {
	if o.Logger.GetSink() == nil {
		return logr.Discard()
	}
	return o.Logger
}

func firstOptions(opts []Options) Options {
	if len(opts) > 0 {
		return opts[0]
	}
	return Options{}
}
