package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pixil98/go-sokoban/internal/commands"
	"github.com/pixil98/go-sokoban/internal/display"
	"github.com/pixil98/go-sokoban/internal/puzzle"
	"github.com/pixil98/go-sokoban/internal/session"
)

type Player struct {
	conn       io.Writer
	in         *bufio.Reader
	game       commands.Game
	cmdHandler *commands.Handler

	// refresh coalesces session notifications into redraw requests.
	refresh chan struct{}
}

// listener asks for a redraw on every session event. It runs under the
// session lock, so it only signals and never blocks.
func (p *Player) listener() session.Listener {
	return session.ListenerFuncs{
		Update: func(*puzzle.State, puzzle.Transition) error {
			p.signal()
			return nil
		},
		NewScenario: func(*puzzle.State) error {
			p.signal()
			return nil
		},
		Win: func(*puzzle.State) error {
			p.signal()
			return nil
		},
	}
}

func (p *Player) signal() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

func (p *Player) Play(ctx context.Context) error {
	// Start goroutine to read input lines into a channel
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		defer close(inputChan)
		for {
			line, err := p.in.ReadString('\n')
			if line != "" {
				select {
				case inputChan <- line:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					inputErrChan <- err
				}
				return
			}
		}
	}()

	// Show the board on entry.
	select {
	case <-p.refresh:
	default:
	}
	if err := p.render(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			if err := p.writeLine("\nThe server is shutting down."); err != nil {
				slog.Warn("failed to write shutdown message to player", "error", err)
			}
			return ctx.Err()

		case <-p.refresh:
			err := p.render()
			if err != nil {
				return err
			}

		case line, ok := <-inputChan:
			if !ok {
				// Input channel closed (connection lost).
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			quit, err := p.handle(ctx, line)
			if err != nil {
				return err
			}
			if quit {
				return p.writeLine("Goodbye!")
			}

			// A command that changed the board has queued a redraw, which
			// prompts on its own.
			select {
			case <-p.refresh:
				err = p.render()
			default:
				err = p.prompt()
			}
			if err != nil {
				return err
			}
		}
	}
}

// handle runs one line of input and reports whether the player quit.
func (p *Player) handle(ctx context.Context, line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}

	cmdCtx := &commands.CommandContext{Game: p.game, Out: p.conn}
	err := p.cmdHandler.Exec(ctx, cmdCtx, line)
	if err != nil {
		userErr, ok := commands.AsUserError(err)
		if !ok {
			// System error - log and disconnect
			return false, fmt.Errorf("command execution failed: %w", err)
		}
		if err := p.writeLine(userErr.Message); err != nil {
			return false, err
		}
	}
	return cmdCtx.Quit, nil
}

// exec runs a single command outside the input loop.
func (p *Player) exec(ctx context.Context, line string) error {
	_, err := p.handle(ctx, line)
	return err
}

func (p *Player) render() error {
	screen, err := display.Screen(p.game.Snapshot())
	if err != nil {
		return fmt.Errorf("rendering screen: %w", err)
	}
	if err := p.writeLine("\n" + screen); err != nil {
		return err
	}
	return p.prompt()
}

func (p *Player) prompt() error {
	_, err := io.WriteString(p.conn, "> ")
	return err
}

func (p *Player) writeLine(s string) error {
	_, err := io.WriteString(p.conn, s+"\n")
	return err
}
