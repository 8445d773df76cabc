// internal/event/types.go
package event

const (
	PointerMoved   EventType = "PointerMoved"   // PointerPayload, mouse
	TouchMoved     EventType = "TouchMoved"     // PointerPayload, primary touch
	Resized        EventType = "Resized"        // ResizePayload
	Navigated      EventType = "Navigated"      // router.Route
	FormSubmitted  EventType = "FormSubmitted"  // string form name
	SessionChanged EventType = "SessionChanged" // nil; re-read the auth store
)

// PointerPayload is a pointer position in logical screen pixels.
type PointerPayload struct {
	X, Y float64
	// Consumed is set by a touch listener that claimed the gesture so the
	// page does not scroll.
	Consumed *bool
}

// ResizePayload is the new logical viewport size and device scale factor.
type ResizePayload struct {
	Width, Height int
	Scale         float64
}
