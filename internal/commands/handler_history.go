package commands

import "context"

func undoCommand(ctx context.Context, cmdCtx *CommandContext) error {
	if cmdCtx.Game.Undo() {
		return nil
	}
	if v := cmdCtx.Game.Snapshot(); v.FinalVictory {
		return movementDisabled(v)
	}
	return NewUserError("Nothing to undo.")
}

func redoCommand(ctx context.Context, cmdCtx *CommandContext) error {
	if cmdCtx.Game.Redo() {
		return nil
	}
	if v := cmdCtx.Game.Snapshot(); v.FinalVictory {
		return movementDisabled(v)
	}
	return NewUserError("Nothing to redo.")
}
