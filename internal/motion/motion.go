// Package motion describes element animations as a small set of named visual
// states. An element's [Variants] say which state it starts in and which
// state each trigger moves it to; the stylesheet in internal/static defines
// what each state looks like and how transitions between them play.
package motion

import (
	"strconv"
	"strings"
	"time"
)

// State is a named visual state.
type State string

const (
	// Hidden is transparent and 20px below its resting place.
	Hidden State = "hidden"
	// Raised is transparent and 20px above its resting place.
	Raised State = "raised"
	// Transparent is fully transparent, in place.
	Transparent State = "transparent"
	// Visible is opaque and in place.
	Visible State = "visible"
	Rest    State = "rest"
	// Hover is scaled to 105%.
	Hover State = "hover"
	// Tap is scaled to 95%.
	Tap State = "tap"
)

// Trigger is an event that can move an element to another state.
type Trigger string

const (
	Mount     Trigger = "mount"
	InView    Trigger = "in-view"
	HoverOver Trigger = "hover"
	Press     Trigger = "tap"
)

// Variants is the animation of one element.
type Variants struct {
	Initial State
	On      map[Trigger]State
	// Delay postpones mount animations.
	Delay time.Duration
}

// StateFor returns the state trigger moves the element to, or the initial
// state if the element does not react to trigger.
func (v Variants) StateFor(t Trigger) State {
	if s, ok := v.On[t]; ok {
		return s
	}
	return v.Initial
}

// FadeIn starts hidden and becomes visible when scrolled into view.
func FadeIn() Variants {
	return Variants{Initial: Hidden, On: map[Trigger]State{InView: Visible}}
}

// DropIn starts raised and settles into place on mount.
func DropIn() Variants {
	return Variants{Initial: Raised, On: map[Trigger]State{Mount: Visible}}
}

// FadeOnMount fades in after delay once mounted.
func FadeOnMount(delay time.Duration) Variants {
	return Variants{Initial: Transparent, On: map[Trigger]State{Mount: Visible}, Delay: delay}
}

// Pressable grows on hover and shrinks while pressed.
func Pressable() Variants {
	return Variants{Initial: Rest, On: map[Trigger]State{HoverOver: Hover, Press: Tap}}
}

// Class returns the CSS classes rendering the element in state current.
//
// Mount animations are played by the stylesheet from the initial state, so
// they ignore current. Hover and tap are pseudo-class driven and only need
// the element marked.
func (v Variants) Class(current State) string {
	classes := []string{"motion"}
	if _, ok := v.On[Mount]; ok {
		classes = append(classes, "motion-from-"+string(v.Initial))
	} else {
		classes = append(classes, "motion-"+string(current))
	}
	_, hover := v.On[HoverOver]
	_, press := v.On[Press]
	if hover || press {
		classes = append(classes, "motion-press")
	}
	return strings.Join(classes, " ")
}

// Style returns the inline style carrying the mount delay, or "".
func (v Variants) Style() string {
	if v.Delay <= 0 {
		return ""
	}
	return "animation-delay:" + strconv.FormatFloat(v.Delay.Seconds(), 'f', -1, 64) + "s"
}
