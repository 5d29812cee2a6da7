package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Player plays cues through beep. Each cue is synthesized once into a
// buffer and replayed from it; Play never blocks on playback.
type Player struct {
	mu     sync.Mutex
	format beep.Format
	volume float64
	cache  map[flappy.Sound]*beep.Buffer
	out    func(...beep.Streamer)
}

// New returns a speaker-backed player, or flappy.Silent when audio is
// disabled or the speaker cannot be opened. Failure is logged, never fatal.
func New(cfg config.AudioConfig, logger *log.Logger) flappy.SoundPlayer {
	if !cfg.Enabled || cfg.Volume <= 0 {
		logger.Debug("audio disabled")
		return flappy.Silent{}
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return flappy.Silent{}
	}

	p := newPlayer(rate, cfg.Volume, speaker.Play)
	p.preload()
	logger.Debug("audio ready", "sample_rate", cfg.SampleRate, "volume", cfg.Volume)
	return p
}

func newPlayer(rate beep.SampleRate, volume float64, out func(...beep.Streamer)) *Player {
	return &Player{
		format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
		volume: volume,
		cache:  make(map[flappy.Sound]*beep.Buffer),
		out:    out,
	}
}

// Play implements flappy.SoundPlayer.
func (p *Player) Play(s flappy.Sound) {
	buf := p.buffer(s)
	if buf == nil {
		return
	}
	p.out(buf.Streamer(0, buf.Len()))
}

// buffer returns the cached rendering of s, synthesizing it on first use.
func (p *Player) buffer(s flappy.Sound) *beep.Buffer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if buf, ok := p.cache[s]; ok {
		return buf
	}

	src := Synthesize(s, p.format.SampleRate)
	if src == nil {
		return nil
	}
	buf := beep.NewBuffer(p.format)
	buf.Append(newVolume(src, p.volume))
	p.cache[s] = buf
	return buf
}

func (p *Player) preload() {
	for _, s := range flappy.Sounds() {
		p.buffer(s)
	}
}
