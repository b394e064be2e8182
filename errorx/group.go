package errorx

import (
	"errors"
	"strings"
)

// Group collects errors; nil errors are dropped.
type Group struct {
	errs []error
}

func NewGroup(errs ...error) *Group {
	g := &Group{}
	g.Append(errs...)
	return g
}

func (g *Group) Append(errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		g.errs = append(g.errs, err)
	}
}

// Error returns nil for an empty group, otherwise all messages joined by " | ".
func (g *Group) Error() error {
	if len(g.errs) == 0 {
		return nil
	}
	sl := make([]string, len(g.errs))
	for i, err := range g.errs {
		sl[i] = err.Error()
	}
	return &groupError{msg: strings.Join(sl, " | "), errs: g.errs}
}

func (g *Group) IsEmpty() bool {
	return len(g.errs) == 0
}

type groupError struct {
	msg  string
	errs []error
}

func (e *groupError) Error() string {
	return e.msg
}

func (e *groupError) Unwrap() []error {
	return e.errs
}

// Is reports whether any error in the group matches target.
func (g *Group) Is(target error) bool {
	return errors.Is(g.Error(), target)
}
