package runtime

import (
	"github.com/aretw0/lsys/pkg/domain"
	"github.com/aretw0/lsys/pkg/ports"
)

// Interpret walks symbols left to right, moving a turtle that starts at
// initial and drawing on canvas for every forward symbol.
//
//	F  move stepLength along the heading and draw the segment covered
//	+  heading += turnAngle
//	-  heading -= turnAngle
//	[  save the current state
//	]  restore the last saved state
//
// Any other symbol is ignored. A pop with nothing saved aborts with an
// *domain.UnderflowError; the returned summary then describes the state
// reached just before the offending symbol. Ending with saved states left on
// the stack is not an error and is reported through Summary.OpenBranches.
func Interpret(symbols string, initial domain.Turtle, turnAngle, stepLength float64, canvas ports.Canvas) (domain.Summary, error) {
	var (
		stack   turtleStack
		current = initial
		summary domain.Summary
		offset  int
	)

	for _, symbol := range symbols {
		switch symbol {
		case domain.SymbolPush:
			stack.push(current)
		case domain.SymbolPop:
			saved, ok := stack.pop()
			if !ok {
				summary.Final = current
				summary.OpenBranches = stack.depth()
				return summary, &domain.UnderflowError{Offset: offset}
			}
			current = saved
		default:
			next, seg, drew := current.Step(symbol, turnAngle, stepLength)
			if drew {
				canvas.DrawLine(seg.From, seg.To)
				summary.Segments++
			}
			current = next
		}
		offset++
		summary.Symbols = offset
	}

	summary.Final = current
	summary.OpenBranches = stack.depth()
	return summary, nil
}
