package event

import (
	"github.com/google/uuid"
)

// Emit pushes a payload-free instance event
func Emit(q *EventQueue, et EventType, id uuid.UUID, frame int64) {
	q.Push(SceneEvent{Type: et, Instance: id, Frame: frame})
}

// EmitFailure pushes an instance isolation notice
func EmitFailure(q *EventQueue, id uuid.UUID, err error, frame int64) {
	q.Push(SceneEvent{
		Type:     EventInstanceFailed,
		Instance: id,
		Payload:  &InstanceFailedPayload{Err: err},
		Frame:    frame,
	})
}

// EmitGenerated pushes a field replacement notice
func EmitGenerated(q *EventQueue, id uuid.UUID, particles, secondary int, epoch uint64, frame int64) {
	q.Push(SceneEvent{
		Type:     EventFieldGenerated,
		Instance: id,
		Payload:  &FieldGeneratedPayload{Particles: particles, Secondary: secondary, Epoch: epoch},
		Frame:    frame,
	})
}
