package menu

import (
	"fmt"
	"strings"

	"fanmenu/internal/app/errors"
)

// AnimationOption is one independently togglable visual effect of a transition
type AnimationOption int

// Animation options
const (
	ItemRotation AnimationOption = iota
	ItemBound
	ItemMoving
	ItemFade
	ButtonRotation

	optionCount
)

var optionNames = [optionCount]string{
	ItemRotation:   "item_rotation",
	ItemBound:      "item_bound",
	ItemMoving:     "item_moving",
	ItemFade:       "item_fade",
	ButtonRotation: "button_rotation",
}

// String returns the configuration name of the option
func (o AnimationOption) String() string {
	if o < 0 || o >= optionCount {
		return fmt.Sprintf("option(%d)", int(o))
	}

	return optionNames[o]
}

// AnimationOptionSet is a set over the closed AnimationOption enumeration.
// It is a value type: copies never alias, so an animation built from a set
// cannot observe later changes to the controller's configuration.
type AnimationOptionSet struct {
	members [optionCount]bool
}

// Presets
var (
	NormalAnimations = NewAnimationOptionSet(ItemRotation, ItemBound, ItemMoving, ButtonRotation)
	AllAnimations    = NewAnimationOptionSet(ItemRotation, ItemBound, ItemMoving, ItemFade, ButtonRotation)
)

// NewAnimationOptionSet creates a set holding the given options
func NewAnimationOptionSet(opts ...AnimationOption) AnimationOptionSet {
	var s AnimationOptionSet

	for _, o := range opts {
		if o >= 0 && o < optionCount {
			s.members[o] = true
		}
	}

	return s
}

// Contains reports whether the option is in the set
func (s AnimationOptionSet) Contains(o AnimationOption) bool {
	if o < 0 || o >= optionCount {
		return false
	}

	return s.members[o]
}

// ContainsAll reports whether every given option is in the set
func (s AnimationOptionSet) ContainsAll(opts ...AnimationOption) bool {
	for _, o := range opts {
		if !s.Contains(o) {
			return false
		}
	}

	return true
}

// Union returns a set holding the options of both sets
func (s AnimationOptionSet) Union(other AnimationOptionSet) AnimationOptionSet {
	for i, ok := range other.members {
		if ok {
			s.members[i] = true
		}
	}

	return s
}

// Options returns the members in declaration order
func (s AnimationOptionSet) Options() []AnimationOption {
	opts := make([]AnimationOption, 0, optionCount)

	for i, ok := range s.members {
		if ok {
			opts = append(opts, AnimationOption(i))
		}
	}

	return opts
}

// IsEmpty reports whether no option is enabled
func (s AnimationOptionSet) IsEmpty() bool {
	return len(s.Options()) == 0
}

// String renders the set as a bracketed list of option names
func (s AnimationOptionSet) String() string {
	opts := s.Options()
	names := make([]string, len(opts))

	for i, o := range opts {
		names[i] = o.String()
	}

	return "[" + strings.Join(names, " ") + "]"
}

// ParseAnimationOptions builds a set from option and preset names ("normal", "all")
func ParseAnimationOptions(names []string) (AnimationOptionSet, error) {
	var s AnimationOptionSet

	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))

		switch name {
		case "normal":
			s = s.Union(NormalAnimations)
			continue
		case "all":
			s = s.Union(AllAnimations)
			continue
		}

		found := false

		for i, n := range optionNames {
			if n == name {
				s.members[i] = true
				found = true

				break
			}
		}

		if !found {
			return AnimationOptionSet{}, fmt.Errorf("%w: '%s'", errors.ErrInvalidAnimationOption, raw)
		}
	}

	return s, nil
}
