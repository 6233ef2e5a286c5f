package runtime

import "github.com/aretw0/lsys/pkg/domain"

// turtleStack holds saved turtle states for branching. It is owned by a
// single interpretation and discarded when that interpretation ends.
type turtleStack struct {
	items []domain.Turtle
}

func (s *turtleStack) push(t domain.Turtle) {
	s.items = append(s.items, t)
}

// pop removes and returns the top state. ok is false on an empty stack.
func (s *turtleStack) pop() (t domain.Turtle, ok bool) {
	n := len(s.items)
	if n == 0 {
		return domain.Turtle{}, false
	}
	t = s.items[n-1]
	s.items = s.items[:n-1]
	return t, true
}

func (s *turtleStack) depth() int {
	return len(s.items)
}
