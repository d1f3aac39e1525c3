package event

import (
	"github.com/google/uuid"
)

// SceneEvent is one queued notification
// Instance is uuid.Nil for scene-wide events
type SceneEvent struct {
	Type     EventType
	Instance uuid.UUID
	Payload  any
	Frame    int64
}

// FontFallbackPayload carries the reason the primary face was not used
type FontFallbackPayload struct {
	Err error
}

// FieldGeneratedPayload describes a regenerated field
type FieldGeneratedPayload struct {
	Particles int
	Secondary int
	Epoch     uint64
}

// InstanceFailedPayload carries the isolating error
type InstanceFailedPayload struct {
	Err error
}
