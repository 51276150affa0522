package config

import (
	"embed"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"
)

//go:embed config.jsonc
var defaults embed.FS

const defaultsName = "config.jsonc"

// The game logic only supports the classic card.
const GridSize = 5

type StyleSpec struct {
	Fg string `json:"fg"`
	Bg string `json:"bg"`
}

type ThemeSpec struct {
	Cell         StyleSpec `json:"cell"`
	Cursor       StyleSpec `json:"cursor"`
	Marked       StyleSpec `json:"marked"`
	CursorMarked StyleSpec `json:"cursorMarked"`
	Banner       StyleSpec `json:"banner"`
	Footer       StyleSpec `json:"footer"`
}

type fileConfig struct {
	DataPath string    `json:"dataPath"`
	GridSize int       `json:"gridSize"`
	TickRate string    `json:"tickRate"`
	Sound    bool      `json:"sound"`
	Theme    ThemeSpec `json:"theme"`
}

// GameConfig is read once at startup.
type GameConfig struct {
	DataPath string
	GridSize int
	TickRate time.Duration
	Sound    bool
}

// Theme holds the resolved styles. It is replaced as a whole when the
// config file changes.
type Theme struct {
	Cell         tcell.Style
	Cursor       tcell.Style
	Marked       tcell.Style
	CursorMarked tcell.Style
	Banner       tcell.Style
	Footer       tcell.Style
}

type Config struct {
	log     *log.Logger
	watcher *fsnotify.Watcher
	file    string

	Game GameConfig

	mu    sync.RWMutex
	theme Theme
}

// Load reads the embedded defaults and, if file is not empty, overlays
// the user config stored there.
func Load(file string, logger *log.Logger) (*Config, error) {
	cfg := &Config{log: logger, file: file}

	fc, err := read(file)
	if err != nil {
		return nil, err
	}
	if err := cfg.apply(fc); err != nil {
		return nil, err
	}
	return cfg, nil
}

func read(file string) (fileConfig, error) {
	fc := fileConfig{}
	content, err := defaults.ReadFile(defaultsName)
	if err != nil {
		return fc, errors.Wrap(err, "reading embedded config")
	}
	if err := unmarshal(content, &fc); err != nil {
		return fc, errors.Wrap(err, "parsing embedded config")
	}
	if file == "" {
		return fc, nil
	}

	content, err = os.ReadFile(file)
	if err != nil {
		return fc, errors.Wrapf(err, "reading config %s", file)
	}
	if err := unmarshal(content, &fc); err != nil {
		return fc, errors.Wrapf(err, "parsing config %s", file)
	}
	return fc, nil
}

func unmarshal(content []byte, fc *fileConfig) error {
	return json.Unmarshal(jsonc.ToJSON(content), fc)
}

func (cfg *Config) apply(fc fileConfig) error {
	if fc.GridSize != GridSize {
		return errors.Errorf("gridSize %d not supported, must be %d", fc.GridSize, GridSize)
	}
	tick, err := time.ParseDuration(fc.TickRate)
	if err != nil {
		return errors.Wrap(err, "tickRate")
	}
	if tick <= 0 {
		return errors.Errorf("tickRate must be positive, got %s", tick)
	}
	theme, err := resolveTheme(fc.Theme)
	if err != nil {
		return err
	}

	cfg.Game = GameConfig{
		DataPath: fc.DataPath,
		GridSize: fc.GridSize,
		TickRate: tick,
		Sound:    fc.Sound,
	}
	cfg.setTheme(theme)
	return nil
}

// AddFlags registers the command line overrides on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.String("data", "", "path of the bingo data file")
	fs.Duration("tick", 0, "redraw interval without input")
	fs.Bool("sound", false, "play a chime on bingo")
}

// ApplyFlags overrides the loaded values with the flags set on fs.
func (cfg *Config) ApplyFlags(fs *pflag.FlagSet) error {
	if fs.Changed("data") {
		data, err := fs.GetString("data")
		if err != nil {
			return err
		}
		cfg.Game.DataPath = data
	}
	if fs.Changed("tick") {
		tick, err := fs.GetDuration("tick")
		if err != nil {
			return err
		}
		if tick <= 0 {
			return errors.Errorf("--tick must be positive, got %s", tick)
		}
		cfg.Game.TickRate = tick
	}
	if fs.Changed("sound") {
		sound, err := fs.GetBool("sound")
		if err != nil {
			return err
		}
		cfg.Game.Sound = sound
	}
	return nil
}

func (cfg *Config) Theme() Theme {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.theme
}

func (cfg *Config) setTheme(theme Theme) {
	cfg.mu.Lock()
	cfg.theme = theme
	cfg.mu.Unlock()
}

// Watch reloads the theme whenever the config file is written. It is a
// no-op without a config file. The directory is watched rather than the
// file so editors that replace the file on save are picked up too.
func (cfg *Config) Watch() error {
	if cfg.file == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating config watcher")
	}
	if err := watcher.Add(filepath.Dir(cfg.file)); err != nil {
		watcher.Close()
		return errors.Wrap(err, "watching config directory")
	}
	cfg.watcher = watcher

	go cfg.rereadThemeOnFileChange(watcher)
	return nil
}

func (cfg *Config) rereadThemeOnFileChange(watcher *fsnotify.Watcher) {
	name := filepath.Clean(cfg.file)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				cfg.reloadTheme()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			cfg.log.Warnf("Config watcher: %v", err)
		}
	}
}

func (cfg *Config) reloadTheme() {
	fc, err := read(cfg.file)
	if err != nil {
		cfg.log.Warnf("Keeping previous theme: %v", err)
		return
	}
	theme, err := resolveTheme(fc.Theme)
	if err != nil {
		cfg.log.Warnf("Keeping previous theme: %v", err)
		return
	}
	cfg.setTheme(theme)
	cfg.log.Infof("Reloaded theme from %s", cfg.file)
}

func (cfg *Config) Cleanup() {
	if cfg.watcher != nil {
		cfg.watcher.Close()
	}
}

func resolveTheme(spec ThemeSpec) (Theme, error) {
	var theme Theme
	var err error
	styles := []struct {
		name string
		spec StyleSpec
		dst  *tcell.Style
	}{
		{"cell", spec.Cell, &theme.Cell},
		{"cursor", spec.Cursor, &theme.Cursor},
		{"marked", spec.Marked, &theme.Marked},
		{"cursorMarked", spec.CursorMarked, &theme.CursorMarked},
		{"banner", spec.Banner, &theme.Banner},
		{"footer", spec.Footer, &theme.Footer},
	}
	for _, s := range styles {
		if *s.dst, err = resolveStyle(s.spec); err != nil {
			return Theme{}, errors.Wrapf(err, "theme.%s", s.name)
		}
	}
	return theme, nil
}

func resolveStyle(spec StyleSpec) (tcell.Style, error) {
	fg, err := color(spec.Fg)
	if err != nil {
		return tcell.StyleDefault, err
	}
	bg, err := color(spec.Bg)
	if err != nil {
		return tcell.StyleDefault, err
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg), nil
}

func color(name string) (tcell.Color, error) {
	if name == "" || name == "default" {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return c, errors.Errorf("unknown color %q", name)
	}
	return c, nil
}
