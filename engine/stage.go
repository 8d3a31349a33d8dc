package engine

// Stage is one step of event handling. Stages run in registration order for
// every event and skip the event kinds they do not handle. Custom stages can be
// appended with Session.Register and read the session through the frame.
type Stage interface {
	Execute(frame *Frame)
}
