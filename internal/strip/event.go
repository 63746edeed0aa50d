package strip

import (
	"github.com/leg100/tabstrip/internal/resource"
)

// Selection events published on the engine's broker. Registry changes are
// published with the generic resource event types: CreatedEvent when a tab
// is added, DeletedEvent when removed and UpdatedEvent when an attached
// tab's payload changes.
const (
	TabSelectedEvent   resource.EventType = "selected"
	TabUnselectedEvent resource.EventType = "unselected"
	TabReselectedEvent resource.EventType = "reselected"
	// GravityFallbackEvent is published, with a nil payload, when fixed
	// tabs don't fit centered and the engine falls back to fill gravity.
	GravityFallbackEvent resource.EventType = "gravity-fallback"
)
