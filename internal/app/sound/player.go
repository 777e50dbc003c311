//go:generate mockgen -source=player.go -destination=player_mock.go -package=sound
package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"fanmenu/internal/app/errors"
	"fanmenu/internal/config/logger"
	"fanmenu/internal/menu"
)

// sampleRate is the rate every cue is resampled to before playback
const sampleRate = beep.SampleRate(44100)

// ToneScheme prefixes synthesized cue sources
const ToneScheme = "tone:"

// toneLength is the duration of a synthesized cue
const toneLength = 60 * time.Millisecond

var toneFrequencies = map[menu.Cue]float64{
	menu.CueExpand: 660,
	menu.CueFold:   440,
	menu.CueSelect: 880,
}

// Output is the audio device the player streams to
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Clear()
}

// speakerOutput streams to the system speaker
type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (speakerOutput) Play(s ...beep.Streamer) {
	speaker.Play(s...)
}

func (speakerOutput) Clear() {
	speaker.Clear()
}

// Player decodes cue sources into memory and plays them on demand
type Player struct {
	mu          sync.Mutex
	output      Output
	buffers     map[menu.Cue]*beep.Buffer
	initialized bool
	initErr     error
	log         logger.Logger
}

// NewPlayer creates a player bound to the system speaker
func NewPlayer(log logger.Logger) *Player {
	return NewPlayerWithOutput(speakerOutput{}, log)
}

// NewPlayerWithOutput creates a player bound to the given output
func NewPlayerWithOutput(output Output, log logger.Logger) *Player {
	return &Player{
		output:  output,
		buffers: make(map[menu.Cue]*beep.Buffer),
		log:     log.WithComponent("SOUND"),
	}
}

// ToneURI returns the synthesized source name for a cue
func ToneURI(cue menu.Cue) string {
	return ToneScheme + cue.String()
}

// Load decodes the source for a cue, replacing any previous buffer
func (p *Player) Load(cue menu.Cue, path string) error {
	if path == "" {
		return errors.ErrSoundPathRequired
	}

	buffer, err := p.decode(cue, path)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.buffers[cue] = buffer
	p.mu.Unlock()

	p.log.Debug().Msgf("Loaded %s cue from %s (%d samples)", cue, path, buffer.Len())

	return nil
}

// Play starts a loaded cue; cues overlap rather than interrupt each other
func (p *Player) Play(cue menu.Cue) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	buffer, ok := p.buffers[cue]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrSoundNotLoaded, cue)
	}

	if err := p.ensureInit(); err != nil {
		return err
	}

	p.output.Play(buffer.Streamer(0, buffer.Len()))

	return nil
}

// Dispose releases a cue's buffer
func (p *Player) Dispose(cue menu.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.buffers, cue)
}

// IsLoaded reports whether a cue has a buffer
func (p *Player) IsLoaded(cue menu.Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, ok := p.buffers[cue]

	return ok
}

// Close stops playback and drops every buffer
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		p.output.Clear()
	}

	p.buffers = make(map[menu.Cue]*beep.Buffer)
}

// ensureInit opens the output once; a failed open is remembered and reported on every play
func (p *Player) ensureInit() error {
	if p.initialized {
		return nil
	}

	if p.initErr != nil {
		return p.initErr
	}

	if err := p.output.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		p.initErr = fmt.Errorf("%w: %w", errors.ErrSpeakerUnavailable, err)
		p.log.Warn().Err(err).Msg("Audio output unavailable, cues are muted")

		return p.initErr
	}

	p.initialized = true

	return nil
}

func (p *Player) decode(cue menu.Cue, path string) (*beep.Buffer, error) {
	if name, ok := strings.CutPrefix(path, ToneScheme); ok {
		return synthesize(cue, name)
	}

	if !strings.EqualFold(filepath.Ext(path), ".wav") {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedSound, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %w", errors.ErrUnsupportedSound, err)
	}
	defer streamer.Close()

	var source beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		source = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: format.NumChannels, Precision: format.Precision})
	buffer.Append(source)

	return buffer, nil
}

// synthesize renders a short quiet sine tone for cues without a file
func synthesize(cue menu.Cue, name string) (*beep.Buffer, error) {
	freq, ok := toneFrequencies[cue]
	if !ok || name != cue.String() {
		return nil, fmt.Errorf("%w: %s%s", errors.ErrUnsupportedSound, ToneScheme, name)
	}

	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}

	quiet := &effects.Volume{Streamer: tone, Base: 2, Volume: -3}

	buffer := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buffer.Append(beep.Take(sampleRate.N(toneLength), quiet))

	return buffer, nil
}
