package app

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/vk/appconf/internal/textutil"
)

const flagDescription = `Flags are command-line arguments passed as '--<flag>'.
These take no parameters, unlike regular key-value arguments.
They are typically used for setting boolean flags, or enabling
modes that involve setting multiple options together.`

const aliasDescription = `These are commonly set parameters, given abbreviated aliases for convenience.
They are set in the same 'name=value' way as class parameters, where
<name> is replaced by the real parameter for which it is an alias.`

const keyvalueDescription = `Parameters are set from command-line arguments of the form:
'Class.attribute=value'. Parameters will *never* be prefixed with '-'.
Values are parsed as simple typed expressions, so
    'C.a=[0,1,2]'   sets C.a to a list of numbers`

// PrintFlagHelp prints the flag part of the help. An empty flag table emits
// nothing. Flags are listed in sorted name order.
func (a *Application) PrintFlagHelp() {
	if len(a.flags) == 0 {
		return
	}
	fmt.Fprintln(a.outW, "Flags")
	fmt.Fprintln(a.outW, "-----")
	fmt.Fprintln(a.outW, flagDescription)
	fmt.Fprintln(a.outW)

	for _, name := range slices.Sorted(maps.Keys(a.flags)) {
		fmt.Fprintf(a.outW, "--%s\n", name)
		fmt.Fprintln(a.outW, textutil.WrapIndent(a.flags[name].Help, 4))
	}
	fmt.Fprintln(a.outW)
}

// PrintAliasHelp prints the alias part of the help. An empty alias table
// emits nothing. Each alias is resolved against the class registry at print
// time: an alias naming an unregistered class or a non-configurable
// attribute is a lookup error.
func (a *Application) PrintAliasHelp() error {
	if len(a.aliases) == 0 {
		return nil
	}
	fmt.Fprintln(a.outW, "Aliases")
	fmt.Fprintln(a.outW, "-------")
	fmt.Fprintln(a.outW, aliasDescription)
	fmt.Fprintln(a.outW)

	for _, alias := range slices.Sorted(maps.Keys(a.aliases)) {
		target := a.aliases[alias]
		className, attrName, _ := strings.Cut(target, ".")
		cls, ok := a.classes.ByName(className)
		if !ok {
			return fmt.Errorf("alias %q refers to unregistered class %q", alias, className)
		}
		trait, ok := cls.Trait(attrName)
		if !ok {
			return fmt.Errorf("alias %q refers to %q, which is not a configurable attribute of %q", alias, attrName, className)
		}
		fmt.Fprintf(a.outW, "%s (%s) : %s\n", alias, target, trait.Type.FriendlyName())
		if trait.Help != "" {
			fmt.Fprintln(a.outW, textutil.WrapIndent(trait.Help, 4))
		}
	}
	fmt.Fprintln(a.outW)
	return nil
}

// PrintHelp prints the full help: flags, aliases, then the parameters of
// every registered class, the application's own included.
func (a *Application) PrintHelp() error {
	a.PrintFlagHelp()
	if err := a.PrintAliasHelp(); err != nil {
		return err
	}
	if a.classes.Len() > 0 {
		fmt.Fprintln(a.outW, "Class parameters")
		fmt.Fprintln(a.outW, "----------------")
		fmt.Fprintln(a.outW, keyvalueDescription)
		fmt.Fprintln(a.outW)
	}
	for _, cls := range a.classes.Classes() {
		cls.WriteHelp(a.outW)
		fmt.Fprintln(a.outW)
	}
	return nil
}

// PrintDescription prints the application description.
func (a *Application) PrintDescription() {
	fmt.Fprintln(a.outW, a.description)
	fmt.Fprintln(a.outW)
}

// PrintVersion prints the version string.
func (a *Application) PrintVersion() {
	fmt.Fprintln(a.outW, a.version)
}

// Description returns the application description.
func (a *Application) Description() string { return a.description }
