package game

// System is one step of a session update. Systems may keep their own state
// between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
