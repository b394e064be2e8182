// Package env provides a uniform way of dealing with environment such as .env files, os.Environ and (command line) flags.
// The goal is, that applications don't have to care about the source from a variable but just handle the values.
package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mazzegi/minical/date"
)

// merge merges "from" env into "to" env, keeping already existing values
func merge(from map[string]any, to map[string]any) {
	for k, v := range from {
		if _, ok := to[k]; !ok {
			to[k] = v
		}
	}
}

func unquote(s string) string {
	if len(s) >= 2 &&
		((strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)) ||
			(strings.HasPrefix(s, `'`) && strings.HasSuffix(s, `'`))) {
		return s[1 : len(s)-1]
	}
	return s
}

// value turns a raw "k=v" value into an env value; an empty value is a set boolean.
func value(raw string) any {
	v := unquote(strings.TrimSpace(raw))
	if v == "" {
		return true
	}
	return v
}

type Var struct {
	Key   string
	Value any
}

func MkVar(k string, v any) Var {
	return Var{Key: k, Value: v}
}

type Env map[string]any

func (env Env) add(k string, v any) {
	k = strings.TrimSpace(k)
	if k == "" {
		return
	}
	env[k] = v
}

// Load loads environment variables from all available sources, using os.Args as flags.
// It takes additional vars, which may be passed to the environment at runtime.
func Load(vars ...Var) Env {
	return LoadArgs(os.Args[1:], vars...)
}

// LoadArgs loads the environment like Load, but parses flags from args.
// Later sources win: os.Environ, .env files, flags, vars.
func LoadArgs(args []string, vars ...Var) Env {
	env := Env{}
	for _, osev := range os.Environ() {
		k, v, _ := strings.Cut(osev, "=")
		env.add(k, value(v))
	}
	for k, v := range LoadDotenv() {
		env.add(k, v)
	}
	for k, v := range ParseFlags(args) {
		env.add(k, v)
	}
	for _, v := range vars {
		env.add(v.Key, v.Value)
	}
	env.expand()
	return env
}

// expand replaces "{key}" in all string values with the value of key.
func (env Env) expand() {
	repl := env.Expander()
	for k, v := range env {
		if s, ok := v.(string); ok {
			env[k] = repl.Replace(s)
		}
	}
}

func (env Env) Expander() *strings.Replacer {
	var oldnew []string
	for k := range env {
		new, ok := env.String(k)
		if !ok {
			continue
		}
		oldnew = append(oldnew, fmt.Sprintf("{%s}", k), new)
	}
	return strings.NewReplacer(oldnew...)
}

// Var returns the value for the passed key if exists, otherwise, false
func (env Env) Var(key string) (any, bool) {
	v, ok := env[key]
	return v, ok
}

// String returns the string-value for the passed key if exists, otherwise, false
func (env Env) String(key string) (string, bool) {
	v, ok := env[key]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%v", v), true
}

// Int returns the int-value for the passed key if exists and is an integer, otherwise, false
func (env Env) Int(key string) (int, bool) {
	s, ok := env.String(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// Bool returns the bool-value for the passed key if exists and is a boolean, otherwise, false
func (env Env) Bool(key string) (bool, bool) {
	v, ok := env[key]
	if !ok {
		return false, false
	}
	if b, ok := v.(bool); ok {
		return b, true
	}
	b, err := strconv.ParseBool(fmt.Sprintf("%v", v))
	if err != nil {
		return false, false
	}
	return b, true
}

// Duration parses the value for key as time.Duration. A missing key returns ok=false and no error.
func (env Env) Duration(key string) (d time.Duration, ok bool, err error) {
	s, ok := env.String(key)
	if !ok {
		return 0, false, nil
	}
	d, err = time.ParseDuration(s)
	if err != nil {
		return 0, true, fmt.Errorf("env %q: parse duration %q: %w", key, s, err)
	}
	return d, true, nil
}

// Date parses the value for key as date.Date. A missing key returns ok=false and no error.
func (env Env) Date(key string) (d date.Date, ok bool, err error) {
	s, ok := env.String(key)
	if !ok {
		return date.Date{}, false, nil
	}
	d, err = date.Parse(s)
	if err != nil {
		return date.Date{}, true, fmt.Errorf("env %q: %w", key, err)
	}
	return d, true, nil
}

// StringOrDefault first tries to lookup the passed key, otherwise return def
func (env Env) StringOrDefault(key string, def string) string {
	if v, ok := env.String(key); ok {
		return v
	}
	return def
}

// IntOrDefault first tries to lookup the passed key, otherwise return def
func (env Env) IntOrDefault(key string, def int) int {
	if v, ok := env.Int(key); ok {
		return v
	}
	return def
}

// BoolOrDefault first tries to lookup the passed key, otherwise return def
func (env Env) BoolOrDefault(key string, def bool) bool {
	if v, ok := env.Bool(key); ok {
		return v
	}
	return def
}

// DurationOrDefault returns def if key is missing; an unparsable value is an error.
func (env Env) DurationOrDefault(key string, def time.Duration) (time.Duration, error) {
	d, ok, err := env.Duration(key)
	if !ok {
		return def, nil
	}
	return d, err
}

// DateOrDefault returns def if key is missing; an unparsable value is an error.
func (env Env) DateOrDefault(key string, def date.Date) (date.Date, error) {
	d, ok, err := env.Date(key)
	if !ok {
		return def, nil
	}
	return d, err
}
