package game

//go:generate go tool stringer -type=Command

// Command is a player action. Frontends translate key presses into commands
// and push them onto a session; the input system applies them on the next
// tick.
type Command uint8

const (
	MoveLeft Command = iota
	MoveRight
	MoveDown
	RotateClockwise
	RotateCounterclockwise
	// Rotate turns the piece in the session's current rotation direction.
	Rotate
	Drop
	TogglePause
	ToggleRotateDirection
	Restart
)

// Commands provides a buffer of player commands waiting for the next tick and
// of deferred operations that run once every system has finished a frame.
// Deferring keeps structural changes, like swapping the board on restart,
// out of the middle of a frame.
type Commands struct {
	queued []Command
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues commands in order.
func (c *Commands) Push(cmds ...Command) {
	c.queued = append(c.queued, cmds...)
}

// Defer queues a function to run when the buffer is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.queued)
}

// Take removes and returns every queued command.
func (c *Commands) Take() []Command {
	if len(c.queued) == 0 {
		return nil
	}
	taken := make([]Command, len(c.queued))
	copy(taken, c.queued)
	c.queued = c.queued[:0]
	return taken
}

// Flush runs the deferred functions in the order they were added, resetting
// the buffer state. Functions deferred while flushing run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	c.defers = c.defers[:0]
}
