// Package pointcuts resolves the pointcut set of a weaving pass and derives its identity hash.
package pointcuts

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/weave/internal/core/ports"
)

// Entry binds an interceptor id to the pointcut deciding where it applies.
type Entry struct {
	Interceptor string
	Pointcut    ports.Pointcut
}

// Set is the ordered, immutable pointcut set of one weaving pass.
type Set struct {
	entries []Entry
	hash    string
}

// NewSet builds a set from entries in registration order. A repeated interceptor id replaces
// the earlier pointcut and keeps the earlier position.
func NewSet(entries []Entry) *Set {
	positions := make(map[string]int, len(entries))
	ordered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if i, ok := positions[e.Interceptor]; ok {
			ordered[i] = e
			continue
		}
		positions[e.Interceptor] = len(ordered)
		ordered = append(ordered, e)
	}

	names := make([]string, len(ordered))
	for i, e := range ordered {
		names[i] = TypeName(e.Pointcut)
	}

	return &Set{
		entries: ordered,
		hash:    fmt.Sprintf("%016x", xxhash.Sum64String(strings.Join(names, ":"))),
	}
}

// Entries returns the pointcuts in registration order.
func (s *Set) Entries() []Entry {
	return s.entries
}

// Len returns the number of pointcuts.
func (s *Set) Len() int {
	return len(s.entries)
}

// Hash returns the identity hash of the set.
func (s *Set) Hash() string {
	return s.hash
}

// SourceFiles returns the distinct files defining the pointcuts, in registration order.
func (s *Set) SourceFiles() []string {
	seen := make(map[string]struct{})
	var files []string
	for _, e := range s.entries {
		sf, ok := e.Pointcut.(ports.SourceFiler)
		if !ok {
			continue
		}
		file := sf.SourceFile()
		if file == "" {
			continue
		}
		if _, dup := seen[file]; dup {
			continue
		}
		seen[file] = struct{}{}
		files = append(files, file)
	}
	return files
}

// TypeName returns the implementation identity of a pointcut.
func TypeName(p ports.Pointcut) string {
	if tn, ok := p.(ports.TypeNamer); ok {
		return tn.TypeName()
	}
	return fmt.Sprintf("%T", p)
}
