// Package reveal tracks one-shot visibility per mounted view of the page.
//
// Each element that animates in on first intersection owns a [Flag]. A flag
// goes from false to true once and never back. A [View] groups the flags of
// one rendering of the page; the [Store] keeps views alive until they are
// unmounted or expire.
package reveal

import (
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/segmentio/ksuid"
)

var (
	ErrUnknownView    = errors.New("unknown view")
	ErrUnknownElement = errors.New("unknown element")
)

// Flag is a monotonic boolean. The zero value is false.
type Flag struct {
	v atomic.Bool
}

// Set makes the flag true and reports whether this call was the one that
// changed it.
func (f *Flag) Set() bool {
	return f.v.CompareAndSwap(false, true)
}

func (f *Flag) Value() bool {
	return f.v.Load()
}

// View is one mounted rendering of the page. Its set of elements is fixed at
// mount time.
type View struct {
	ID    string
	flags map[string]*Flag
}

func newView(id string, elements []string) *View {
	v := &View{ID: id, flags: make(map[string]*Flag, len(elements))}
	for _, el := range elements {
		v.flags[el] = new(Flag)
	}
	return v
}

// Reveal records the first intersection of element. first is true only for
// the call that flipped the flag.
func (v *View) Reveal(element string) (first bool, err error) {
	f, ok := v.flags[element]
	if !ok {
		return false, fmt.Errorf("%w %q", ErrUnknownElement, element)
	}
	return f.Set(), nil
}

func (v *View) Visible(element string) (bool, error) {
	f, ok := v.flags[element]
	if !ok {
		return false, fmt.Errorf("%w %q", ErrUnknownElement, element)
	}
	return f.Value(), nil
}

// Store holds mounted views. Views expire ttl after their last reveal.
type Store struct {
	views    *cache.Cache
	elements []string
}

func NewStore(ttl time.Duration, elements ...string) *Store {
	return &Store{
		views:    cache.New(ttl, max(ttl/2, time.Second)),
		elements: slices.Clone(elements),
	}
}

// OnUnmount registers fn to be called with the id of every view that is
// unmounted or expires.
func (s *Store) OnUnmount(fn func(id string)) {
	s.views.OnEvicted(func(id string, _ any) {
		fn(id)
	})
}

// Elements returns the element ids every view is mounted with.
func (s *Store) Elements() []string {
	return slices.Clone(s.elements)
}

func (s *Store) Mount() *View {
	v := newView(ksuid.New().String(), s.elements)
	s.views.SetDefault(v.ID, v)
	return v
}

func (s *Store) View(id string) (*View, error) {
	if _, err := ksuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownView, id)
	}
	v, ok := s.views.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownView, id)
	}
	return v.(*View), nil
}

// Reveal flips the flag of element in view id and keeps the view alive.
func (s *Store) Reveal(id, element string) (first bool, err error) {
	v, err := s.View(id)
	if err != nil {
		return false, err
	}
	first, err = v.Reveal(element)
	if err != nil {
		return false, err
	}
	// fails only if the view was unmounted in the meantime
	_ = s.views.Replace(id, v, cache.DefaultExpiration)
	return first, nil
}

func (s *Store) Visible(id, element string) (bool, error) {
	v, err := s.View(id)
	if err != nil {
		return false, err
	}
	return v.Visible(element)
}

func (s *Store) Unmount(id string) {
	s.views.Delete(id)
}

// Len returns the number of mounted views, including expired ones not yet
// collected.
func (s *Store) Len() int {
	return s.views.ItemCount()
}
