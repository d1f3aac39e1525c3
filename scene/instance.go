package scene

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/starglyph/animation"
	"github.com/lixenwraith/starglyph/field"
)

// Instance is one mounted text with its own field and animation state
type Instance struct {
	ID uuid.UUID

	Text      string
	Secondary string

	State animation.State
	Field *field.Field
	Frame *field.Frame

	// Failed is set once the instance is isolated; it then renders nothing
	Failed error

	scroll  float64
	trigger bool

	// requested counts text changes; generated is the request the current Field was built from
	requested uint64
	generated uint64
}

// Pending reports a text change not yet turned into a field
func (in *Instance) Pending() bool {
	return in.requested != in.generated
}

// Visible reports whether the instance has samples to draw this frame
func (in *Instance) Visible() bool {
	return in.Failed == nil && in.Frame != nil && in.State.Phase != animation.PhaseIdle
}
