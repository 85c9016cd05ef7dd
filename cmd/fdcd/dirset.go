package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
)

// dirSet collects directory names for visit. Names that clean to the same
// path are visited once, under the spelling given first.
type dirSet struct {
	names []string
	seen  map[string]struct{}
}

func newDirSet() *dirSet {
	return &dirSet{seen: map[string]struct{}{}}
}

func (s *dirSet) add(name string) {
	key := filepath.Clean(name)
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.names = append(s.names, name)
}

func (s *dirSet) String() string { return strings.Join(s.names, ",") }

func (s *dirSet) Set(name string) error {
	s.add(name)
	return nil
}

func (s *dirSet) Type() string { return "dir" }

// dirSetFlag registers a repeatable directory flag on flags.
func dirSetFlag(flags *pflag.FlagSet, name, usage string) *dirSet {
	s := newDirSet()
	flags.Var(s, name, usage)
	return s
}
