// Package speaker plays audio.Board output on the system audio device.
package speaker

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Output mixes effects into the speaker.
type Output struct {
	mixer *beep.Mixer
}

// Open initializes the audio device at rate with a 100ms buffer and starts
// an empty mixer on it. Only one Output may be open at a time.
func Open(rate beep.SampleRate) (*Output, error) {
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker: cannot initialize audio device: %w", err)
	}

	out := &Output{mixer: &beep.Mixer{}}
	speaker.Play(out.mixer)
	return out, nil
}

// Play adds s to the mix.
func (o *Output) Play(s beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (o *Output) Close() {
	speaker.Clear()
	speaker.Close()
}
