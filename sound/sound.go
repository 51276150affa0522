package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const sampleRate = beep.SampleRate(44100)

// chime notes, played in order
var notes = []struct {
	freq     float64
	duration time.Duration
}{
	{880, 90 * time.Millisecond},
	{1109, 90 * time.Millisecond},
	{1319, 180 * time.Millisecond},
}

// Player plays the bingo chime. The zero value, and a Player whose
// speaker could not be opened, stay silent.
type Player struct {
	log     *log.Logger
	enabled bool
}

func NewPlayer(logger *log.Logger) *Player {
	return &Player{log: logger}
}

// Init opens the speaker. Failing is not fatal: the game runs without
// sound.
func (p *Player) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "opening speaker")
	}
	p.enabled = true
	return nil
}

func (p *Player) Bingo() {
	if p == nil || !p.enabled {
		return
	}
	streamer, err := Chime()
	if err != nil {
		p.log.Warnf("Could not build chime: %v", err)
		return
	}
	speaker.Play(streamer)
}

func (p *Player) Close() {
	if p != nil && p.enabled {
		speaker.Close()
		p.enabled = false
	}
}

// Chime builds the rising three note jingle played on bingo.
func Chime() (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), tone))
	}
	return beep.Seq(parts...), nil
}
