package event

// EventType represents the type of scene event
type EventType int

const (
	// EventFontReady signals the primary face resolved
	// Trigger: FontLoader goroutine | Payload: nil
	EventFontReady EventType = iota + 1

	// EventFontFallback signals the bitmap fallback face was used after the load timeout or a load error
	// Trigger: FontLoader goroutine | Payload: *FontFallbackPayload
	EventFontFallback

	// EventFieldGenerated signals a new particle field replaced the old one
	// Trigger: Scene on deferred generation | Payload: *FieldGeneratedPayload
	EventFieldGenerated

	// EventFormationComplete fires once per formation cycle when progress reaches 1
	// Trigger: Scene tick | Payload: nil
	EventFormationComplete

	// EventCollapseStart fires when a collapse window opens
	// Trigger: Scene tick | Payload: nil
	EventCollapseStart

	// EventBurstStart fires when the scheduled burst window opens
	// Trigger: Scene tick | Payload: nil
	EventBurstStart

	// EventInstanceFailed signals an instance was isolated after a configuration error
	// Trigger: Scene | Payload: *InstanceFailedPayload
	EventInstanceFailed

	// EventInstanceUnmounted signals an instance left the arena
	// Trigger: Scene.Unmount | Payload: nil
	EventInstanceUnmounted
)

var typeNames = map[EventType]string{
	EventFontReady:         "FontReady",
	EventFontFallback:      "FontFallback",
	EventFieldGenerated:    "FieldGenerated",
	EventFormationComplete: "FormationComplete",
	EventCollapseStart:     "CollapseStart",
	EventBurstStart:        "BurstStart",
	EventInstanceFailed:    "InstanceFailed",
	EventInstanceUnmounted: "InstanceUnmounted",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}
