package schema

import (
	"github.com/zclconf/go-cty/cty"
)

// Trait describes one configurable attribute of a class: its name, value
// type, help text, and default value. Traits with cty.NilVal defaults have
// no default.
type Trait struct {
	Name    string
	Type    cty.Type
	Help    string
	Default cty.Value
}

// Class is the static schema of a configurable class: the set of attributes
// that may be set from a config file or the command line, in declaration
// order.
type Class struct {
	Name        string
	Description string
	Traits      []Trait
}

// Trait returns the trait declared under name, if any.
func (c *Class) Trait(name string) (*Trait, bool) {
	for i := range c.Traits {
		if c.Traits[i].Name == name {
			return &c.Traits[i], true
		}
	}
	return nil, false
}

// Registry is an ordered collection of configurable classes. Order matters:
// help output enumerates classes in registration order, and the owning
// application keeps its own class at index 0.
type Registry struct {
	classes []*Class
	byName  map[string]*Class
}

// NewRegistry creates a registry holding the given classes in order.
func NewRegistry(classes ...*Class) *Registry {
	r := &Registry{byName: make(map[string]*Class)}
	for _, cls := range classes {
		r.Append(cls)
	}
	return r
}

// PushFront inserts cls at index 0. A class already registered under the
// same name is replaced in place instead.
func (r *Registry) PushFront(cls *Class) {
	if _, ok := r.byName[cls.Name]; ok {
		r.replace(cls)
		return
	}
	r.classes = append([]*Class{cls}, r.classes...)
	r.byName[cls.Name] = cls
}

// Append adds cls at the end of the registry. A class already registered
// under the same name is replaced in place instead.
func (r *Registry) Append(cls *Class) {
	if _, ok := r.byName[cls.Name]; ok {
		r.replace(cls)
		return
	}
	r.classes = append(r.classes, cls)
	r.byName[cls.Name] = cls
}

func (r *Registry) replace(cls *Class) {
	for i, cur := range r.classes {
		if cur.Name == cls.Name {
			r.classes[i] = cls
			break
		}
	}
	r.byName[cls.Name] = cls
}

// ByName returns the registered class with the given name.
func (r *Registry) ByName(name string) (*Class, bool) {
	cls, ok := r.byName[name]
	return cls, ok
}

// Classes returns the registered classes in order. The returned slice is
// shared; callers must not mutate it.
func (r *Registry) Classes() []*Class {
	return r.classes
}

// Len returns the number of registered classes.
func (r *Registry) Len() int {
	return len(r.classes)
}
