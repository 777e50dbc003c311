//go:generate mockgen -source=host.go -destination=host_mock.go -package=menu
package menu

// Layer is the z-order band a node is attached to; higher layers draw on top
type Layer int

// Layers from back to front
const (
	LayerScrim Layer = iota
	LayerItem
	LayerTitle
	LayerHub
)

// Node is anything the controller places in the host's scene
type Node interface {
	NodeName() string
}

// Image is a host-owned visual content handle with a natural size
type Image interface {
	Size() Size
}

// Scene is the host's 2D scene capability.
//
// Apply sets the resting visual of a node. Play animates the node's presentation
// through the tracks and calls done exactly once when finished; afterwards the
// node rests at the last applied visual. Several animations may run on one node
// at once; for a shared property the most recently started one wins.
type Scene interface {
	Attach(node Node, layer Layer)
	Detach(node Node)
	Apply(node Node, v Visual)
	Play(node Node, anim Animation, done func())
	Resize(frame Rect)
}

// TapPolicy configures how a tap recognizer competes with others
type TapPolicy struct {
	AlwaysBegin         bool
	RequireOthersToFail bool
}

// Gestures is the host's tap recognition capability
type Gestures interface {
	OnTap(node Node, policy TapPolicy, handler func())
	Release(node Node)
}

// Container answers the bounds of the surface the control lives in
type Container interface {
	Bounds() Rect
}

// Cue names a short sound effect
type Cue int

// Sound cues
const (
	CueExpand Cue = iota
	CueFold
	CueSelect
)

// Cues lists every cue in declaration order
var Cues = []Cue{CueExpand, CueFold, CueSelect}

// String returns the cue name
func (c Cue) String() string {
	switch c {
	case CueExpand:
		return "expand"
	case CueFold:
		return "fold"
	case CueSelect:
		return "select"
	default:
		return "unknown"
	}
}

// SoundPlayer is the host's short sound effect capability
type SoundPlayer interface {
	Load(cue Cue, path string) error
	Play(cue Cue) error
	Dispose(cue Cue)
}

// ResourceResolver locates the file backing a cue
type ResourceResolver interface {
	Resolve(cue Cue) (string, bool)
}

// Surface is a controller-owned node such as the hub or the scrim
type Surface struct {
	name        string
	Image       Image
	Highlighted Image
	Color       string
}

// NodeName returns the surface name
func (s *Surface) NodeName() string {
	return s.name
}
