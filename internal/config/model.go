package config

import (
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Config is the unified, loader-agnostic representation of staged
// configuration. Keys are class names (or nested section names); a value is
// either a typed cty.Value or a nested Config section.
type Config map[string]any

// New creates an empty configuration.
func New() Config {
	return make(Config)
}

// Merge merges other into c in place. Incoming keys overwrite or are added;
// where both sides hold a nested section the merge recurses, preserving
// entries of the current section that the incoming one does not mention.
func (c Config) Merge(other Config) {
	for key, val := range other {
		if sub, ok := val.(Config); ok {
			if cur, ok := c[key].(Config); ok {
				cur.Merge(sub)
				continue
			}
			c[key] = sub.Clone()
			continue
		}
		c[key] = val
	}
}

// Clone returns a deep copy of the configuration. Nested sections are copied
// recursively; cty values are immutable and shared.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for key, val := range c {
		if sub, ok := val.(Config); ok {
			out[key] = sub.Clone()
			continue
		}
		out[key] = val
	}
	return out
}

// Section returns the nested section for name, creating it if absent. A
// pre-existing leaf value under name is replaced by an empty section.
func (c Config) Section(name string) Config {
	if sub, ok := c[name].(Config); ok {
		return sub
	}
	sub := New()
	c[name] = sub
	return sub
}

// SetAttr stages a value for a dotted Class.attribute target. Extra dots
// nest further sections, so "A.B.c" lands in section A, subsection B.
func (c Config) SetAttr(target string, val cty.Value) {
	section := c
	rest := target
	for {
		name, tail, found := strings.Cut(rest, ".")
		if !found {
			section[name] = val
			return
		}
		section = section.Section(name)
		rest = tail
	}
}

// Attr returns the staged value for a dotted Class.attribute target.
func (c Config) Attr(target string) (cty.Value, bool) {
	section := c
	rest := target
	for {
		name, tail, found := strings.Cut(rest, ".")
		if !found {
			val, ok := section[name].(cty.Value)
			return val, ok
		}
		sub, ok := section[name].(Config)
		if !ok {
			return cty.NilVal, false
		}
		section = sub
		rest = tail
	}
}
