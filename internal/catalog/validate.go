package catalog

import (
	"fmt"
	"unicode/utf8"
)

// validateSpec checks the load-time invariants of a command tree:
// non-empty names, sibling-name uniqueness, every flag carrying at least one
// of long/short, single-rune short flags, and combo characters referring to
// known short flags. The path argument is the dotted location used in error
// messages.
func validateSpec(spec *CommandSpec, path string) error {
	if spec.Name == "" {
		return fmt.Errorf("%s: command name is empty", path)
	}

	for i := range spec.Flags {
		f := &spec.Flags[i]
		if f.Long == "" && f.Short == "" {
			return fmt.Errorf("%s: flag %d has neither long nor short form", path, i)
		}
		if f.Short != "" && utf8.RuneCountInString(f.Short) != 1 {
			return fmt.Errorf("%s: short flag %q must be a single character", path, f.Short)
		}
	}

	for _, combo := range spec.FlagCombos {
		if combo.Combo == "" {
			return fmt.Errorf("%s: empty flag combo", path)
		}
		for _, ch := range combo.Combo {
			if _, ok := spec.ShortFlag(ch); !ok {
				return fmt.Errorf("%s: combo %q references unknown short flag %q", path, combo.Combo, string(ch))
			}
		}
	}

	seen := make(map[string]struct{}, len(spec.Subcommands))
	for i := range spec.Subcommands {
		sub := &spec.Subcommands[i]
		if _, dup := seen[sub.Name]; dup {
			return fmt.Errorf("%s: duplicate subcommand name %q", path, sub.Name)
		}
		seen[sub.Name] = struct{}{}
		if err := validateSpec(sub, path+"."+sub.Name); err != nil {
			return err
		}
	}

	return nil
}
