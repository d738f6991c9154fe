package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/ghost91-/nimgame/internal/entity"
)

// Renderer draws board snapshots and game messages onto a terminal. It is the
// notifier the game loop reports to.
type Renderer struct {
	output io.Writer
}

func NewRenderer(output io.Writer) *Renderer {
	return &Renderer{
		output: output,
	}
}

// ShowBoard - prints one line per stack, matches drawn as | glyphs. Stack
// numbers are shown 1-indexed, the way players refer to them.
func (that *Renderer) ShowBoard(board *entity.Board) {
	fmt.Fprintln(that.output)
	for stack, count := range board.Stacks() {
		fmt.Fprintf(that.output, "%2d: %s(%d)\n", stack+1, strings.Repeat("| ", count), count)
	}
	fmt.Fprintln(that.output)
}

func (that *Renderer) Info(message string) {
	fmt.Fprintln(that.output, message)
}

func (that *Renderer) Error(message string) {
	fmt.Fprintf(that.output, "invalid turn: %s\n", message)
}
