package commands

import (
	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"tuibingo/game"
)

type binding struct {
	key  tcell.Key
	char rune
}

// Bindings resolves key presses to game commands.
type Bindings struct {
	log      *log.Logger
	commands map[binding]game.Command
}

func NewBindings(logger *log.Logger) *Bindings {
	return &Bindings{log: logger, commands: make(map[binding]game.Command)}
}

// Default binds q, the arrow keys and Enter.
func Default(logger *log.Logger) *Bindings {
	b := NewBindings(logger)
	b.RegisterRune('q', game.Quit)
	b.RegisterKey(tcell.KeyUp, game.Up)
	b.RegisterKey(tcell.KeyDown, game.Down)
	b.RegisterKey(tcell.KeyLeft, game.Left)
	b.RegisterKey(tcell.KeyRight, game.Right)
	b.RegisterKey(tcell.KeyEnter, game.Mark)
	return b
}

func (b *Bindings) RegisterKey(key tcell.Key, cmd game.Command) {
	b.commands[binding{key: key}] = cmd
}

func (b *Bindings) RegisterRune(r rune, cmd game.Command) {
	b.commands[binding{key: tcell.KeyRune, char: r}] = cmd
}

// Lookup returns game.None for unbound keys.
func (b *Bindings) Lookup(ev *tcell.EventKey) game.Command {
	k := binding{key: ev.Key()}
	if k.key == tcell.KeyRune {
		k.char = ev.Rune()
	}
	if cmd, ok := b.commands[k]; ok {
		return cmd
	}
	b.log.Debugf("Key %s not bound", ev.Name())
	return game.None
}
