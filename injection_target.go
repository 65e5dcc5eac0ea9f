package jee

import (
	"iter"
	"slices"
)

// InjectionTarget names the class member a container injects a resource into.
type InjectionTarget struct {
	Class string `yaml:"class"`
	Name  string `yaml:"name"`
}

// InjectionTargetSet is a set of injection targets compared by value.
// Iteration follows first-insertion order. The zero value is an empty set.
type InjectionTargetSet struct {
	index map[InjectionTarget]struct{}
	items []InjectionTarget
}

// Add inserts t and reports whether it was not already present.
func (s *InjectionTargetSet) Add(t InjectionTarget) bool {
	if _, ok := s.index[t]; ok {
		return false
	}
	if s.index == nil {
		s.index = make(map[InjectionTarget]struct{})
	}
	s.index[t] = struct{}{}
	s.items = append(s.items, t)
	return true
}

// Remove deletes t and reports whether it was present.
func (s *InjectionTargetSet) Remove(t InjectionTarget) bool {
	if _, ok := s.index[t]; !ok {
		return false
	}
	delete(s.index, t)
	s.items = slices.DeleteFunc(s.items, func(it InjectionTarget) bool { return it == t })
	return true
}

// Contains reports whether t is in the set.
func (s *InjectionTargetSet) Contains(t InjectionTarget) bool {
	_, ok := s.index[t]
	return ok
}

// Len reports the number of targets.
func (s *InjectionTargetSet) Len() int {
	return len(s.items)
}

// Clear removes every target.
func (s *InjectionTargetSet) Clear() {
	s.index = nil
	s.items = nil
}

// All yields the targets in insertion order.
func (s *InjectionTargetSet) All() iter.Seq[InjectionTarget] {
	return slices.Values(s.items)
}

// Slice returns a copy of the targets in insertion order.
func (s *InjectionTargetSet) Slice() []InjectionTarget {
	return slices.Clone(s.items)
}
