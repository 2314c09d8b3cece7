package manager

import (
	"github.com/CJendantix/snake/game/types"
)

// maxPending bounds how many direction changes may queue ahead of the
// fixed move cadence.
const maxPending = 3

// InputManager buffers direction-change requests between simulation
// ticks. Requests arrive at frame rate and are consumed one per tick,
// so rapid key presses queue up instead of overwriting each other.
type InputManager struct {
	pending []types.Direction
}

func NewInputManager() *InputManager {
	return &InputManager{
		pending: make([]types.Direction, 0, maxPending),
	}
}

// Enqueue records a direction-change request. committed is the heading
// currently applied to the snake. Illegal requests are dropped
// silently: a full buffer, a duplicate of the newest entry, or a
// reversal relative to whichever direction will be active when the
// entry is consumed.
func (im *InputManager) Enqueue(committed, dir types.Direction) {
	if dir == types.None {
		return
	}
	if len(im.pending) >= maxPending {
		return
	}
	reference := committed
	if len(im.pending) > 0 {
		reference = im.pending[len(im.pending)-1]
		if reference == dir {
			return
		}
	}
	if types.IsOpposite(reference, dir) {
		return
	}
	im.pending = append(im.pending, dir)
}

// Next pops the oldest buffered direction. The second return value is
// false when the buffer is empty.
func (im *InputManager) Next() (types.Direction, bool) {
	if len(im.pending) == 0 {
		return types.None, false
	}
	dir := im.pending[0]
	im.pending = im.pending[1:]
	return dir, true
}

func (im *InputManager) Len() int {
	return len(im.pending)
}

func (im *InputManager) Clear() {
	im.pending = im.pending[:0]
}
