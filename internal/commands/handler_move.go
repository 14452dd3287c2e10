package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixil98/go-sokoban/internal/puzzle"
	"github.com/pixil98/go-sokoban/internal/session"
)

func moveCommand(ctx context.Context, cmdCtx *CommandContext) error {
	d, ok := cmdCtx.Inputs["direction"].(puzzle.Direction)
	if !ok {
		return fmt.Errorf("direction input not set")
	}

	err := cmdCtx.Game.ApplyMove(d)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, session.ErrMovementDisabled):
		return movementDisabled(cmdCtx.Game.Snapshot())
	case errors.Is(err, puzzle.PathBlocked):
		return NewUserError("You bump into a wall.")
	case errors.Is(err, puzzle.ShiftBlocked):
		return NewUserError("The crate won't budge.")
	case errors.Is(err, puzzle.OutsideWorld):
		return NewUserError("You can't leave the board.")
	default:
		return fmt.Errorf("applying move %s: %w", d, err)
	}
}

// movementDisabled explains why the board is not taking moves right now.
func movementDisabled(v session.View) error {
	if v.FinalVictory {
		return NewUserError("Every level is solved. Type 'reset' or 'goto <n>' to keep playing.")
	}
	return NewUserError("Hold on, the next level is on its way.")
}
