package commands

import (
	"context"
	"fmt"
)

func resetCommand(ctx context.Context, cmdCtx *CommandContext) error {
	if !cmdCtx.Game.ResetLevel() {
		return NewUserError("The level can't be reset right now.")
	}
	return nil
}

func nextCommand(ctx context.Context, cmdCtx *CommandContext) error {
	if !cmdCtx.Game.NextLevel() {
		return NewUserError("This is the last level.")
	}
	return nil
}

func prevCommand(ctx context.Context, cmdCtx *CommandContext) error {
	if !cmdCtx.Game.PrevLevel() {
		return NewUserError("This is the first level.")
	}
	return nil
}

// gotoCommand takes a 1-based level number.
func gotoCommand(ctx context.Context, cmdCtx *CommandContext) error {
	n, ok := cmdCtx.Inputs["n"].(int)
	if !ok {
		return fmt.Errorf("level number input not set")
	}

	if !cmdCtx.Game.GotoLevel(n - 1) {
		return NewUserError(fmt.Sprintf("There is no level %d. Pick one from 1 to %d.", n, cmdCtx.Game.Snapshot().Levels))
	}
	return nil
}
