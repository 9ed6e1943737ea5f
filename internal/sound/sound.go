//go:build !ci

package sound

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const sampleRate = beep.SampleRate(44100)

type decoder func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

var decoders = map[string]decoder{
	".wav": func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(rc) },
	".mp3": mp3.Decode,
}

// SoundManager buffers the effects in memory and plays them on the shared speaker.
// Init may run in the background while Play is already being called.
type SoundManager struct {
	dir string

	mu      sync.RWMutex
	buffers map[string]*beep.Buffer
	enabled bool
}

// NewSoundManager creates a disabled manager that loads effects from dir
func NewSoundManager(dir string) *SoundManager {
	return &SoundManager{
		dir:     dir,
		buffers: make(map[string]*beep.Buffer),
	}
}

// Init opens the speaker and loads the effects. A missing directory is not an error.
func (sm *SoundManager) Init() error {
	// Smaller buffer for lower latency
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	if err := sm.loadSoundFiles(sampleRate); err != nil {
		return err
	}

	sm.mu.Lock()
	sm.enabled = true
	sm.mu.Unlock()
	return nil
}

// loadSoundFiles loads every known effect found in the sound directory
func (sm *SoundManager) loadSoundFiles(rate beep.SampleRate) error {
	if _, err := os.Stat(sm.dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read sound directory: %w", err)
	}

	for _, name := range Effects {
		for _, ext := range extensions {
			buffer, err := decodeFile(filepath.Join(sm.dir, name+ext), ext, rate)
			if err != nil {
				// Missing or broken files leave the effect silent
				continue
			}
			sm.mu.Lock()
			sm.buffers[name] = buffer
			sm.mu.Unlock()
			break
		}
	}
	return nil
}

// decodeFile decodes one file into a stereo buffer at rate
func decodeFile(path, ext string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	streamer, format, err := decoders[ext](f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	defer func() { _ = streamer.Close() }()

	var s beep.Streamer = streamer
	if format.SampleRate != rate {
		s = beep.Resample(4, format.SampleRate, rate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 4})
	buffer.Append(s)
	return buffer, nil
}

// Loaded reports whether an effect is available
func (sm *SoundManager) Loaded(name string) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	_, ok := sm.buffers[name]
	return ok
}

func (sm *SoundManager) Play(name string) {
	sm.mu.RLock()
	buffer, ok := sm.buffers[name]
	enabled := sm.enabled
	sm.mu.RUnlock()

	if !enabled || !ok {
		return
	}
	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = false
}
