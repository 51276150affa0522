package application

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"tuibingo/commands"
	"tuibingo/events"
	"tuibingo/game"
	"tuibingo/render"
)

type EventSource interface {
	Events() <-chan events.Event
}

type Sound interface {
	Bingo()
}

// Application owns the game state and runs the input/render loop.
type Application struct {
	screen   tcell.Screen
	state    *game.State
	events   EventSource
	bindings *commands.Bindings
	renderer *render.Renderer
	sound    Sound

	log *log.Logger
}

type Options struct {
	Screen   tcell.Screen
	State    *game.State
	Events   EventSource
	Bindings *commands.Bindings
	Renderer *render.Renderer
	Sound    Sound // optional
	Log      *log.Logger
}

func New(opts Options) *Application {
	return &Application{
		screen:   opts.Screen,
		state:    opts.State,
		events:   opts.Events,
		bindings: opts.Bindings,
		renderer: opts.Renderer,
		sound:    opts.Sound,
		log:      opts.Log,
	}
}

func (app *Application) State() *game.State {
	return app.state
}

// Run draws the current state, waits for the next event and applies it,
// until the quit key is pressed (nil), the input source fails or ctx is
// done. Restoring the terminal is left to whoever owns the screen.
func (app *Application) Run(ctx context.Context) error {
	for {
		app.renderer.Draw(app.screen, app.state)
		app.screen.Show()

		var ev events.Event
		var ok bool
		select {
		case ev, ok = <-app.events.Events():
			if !ok {
				return errors.WithStack(events.ErrInputSource)
			}
		case <-ctx.Done():
			return ctx.Err()
		}

		action, err := app.handle(ev)
		if err != nil {
			return err
		}

		switch action.Kind {
		case game.ActionQuit:
			app.log.Info("Quit requested")
			return nil
		case game.ActionChangeScreen:
			app.log.Infof("Screen changed to %s", action.Screen)
			if action.Screen == game.Won && app.sound != nil {
				app.sound.Bingo()
			}
		}
	}
}

func (app *Application) handle(ev events.Event) (game.Action, error) {
	switch ev.Kind {
	case events.Failure:
		return game.Action{}, errors.WithStack(ev.Err)
	case events.Resize:
		app.screen.Sync()
		return game.Action{Kind: game.ActionNop}, nil
	case events.Tick:
		return app.state.Apply(game.Tick), nil
	case events.Input:
		cmd := app.bindings.Lookup(ev.Key)
		if cmd == game.None {
			return game.Action{Kind: game.ActionNop}, nil
		}
		action := app.state.Apply(cmd)
		app.log.Debugf("%s -> cursor %v, %d marked", cmd, app.state.Cursor, len(app.state.Marked))
		return action, nil
	}
	return game.Action{Kind: game.ActionNop}, nil
}
