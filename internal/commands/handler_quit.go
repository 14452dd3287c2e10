package commands

import "context"

func quitCommand(ctx context.Context, cmdCtx *CommandContext) error {
	cmdCtx.Quit = true
	return nil
}
