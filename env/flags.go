package env

import (
	"strings"
)

// ParseFlags parses (commandline) flags and returns them as key/value pairs.
// The following forms are permitted:
// -flag     => just a boolean flag
// --flag    => double dashes are also permitted
// -flag=x   => single dash
// -flag x   => single dash, no equal
// A lone "--" ends flag parsing; everything after it is ignored.
func ParseFlags(args []string) map[string]any {
	fs := map[string]any{}
	for i := 0; i < len(args); i++ {
		name, ok := flagName(args[i])
		if !ok {
			// positional arg
			continue
		}
		if name == "" {
			break
		}
		if k, v, ok := strings.Cut(name, "="); ok {
			fs[k] = v
			continue
		}
		if i+1 < len(args) {
			if _, isFlag := flagName(args[i+1]); !isFlag {
				fs[name] = args[i+1]
				i++
				continue
			}
		}
		fs[name] = true
	}
	return fs
}

// flagName strips one or two leading dashes. "--" yields the empty name.
func flagName(arg string) (string, bool) {
	switch {
	case strings.HasPrefix(arg, "--"):
		return arg[2:], true
	case strings.HasPrefix(arg, "-") && len(arg) > 1:
		return arg[1:], true
	default:
		return "", false
	}
}
