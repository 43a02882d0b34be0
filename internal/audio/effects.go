package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Effect identifies a sound effect.
type Effect int

const (
	EffectFire Effect = iota
	EffectExplosion
	EffectGameOver
)

// String returns a human-readable name for the effect.
func (e Effect) String() string {
	switch e {
	case EffectFire:
		return "fire"
	case EffectExplosion:
		return "explosion"
	case EffectGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Duration returns how long the effect plays.
func (e Effect) Duration() time.Duration {
	switch e {
	case EffectFire:
		return 90 * time.Millisecond
	case EffectExplosion:
		return 280 * time.Millisecond
	case EffectGameOver:
		return 3 * 180 * time.Millisecond
	default:
		return 0
	}
}

// New builds a fresh streamer for the effect. Streamers are single use.
func New(e Effect, rate beep.SampleRate) beep.Streamer {
	d := e.Duration()
	switch e {
	case EffectFire:
		// Short falling square chirp.
		return Gain(Shape(Tone(WaveSquare, 1400, 600, d, rate), d, 2*time.Millisecond, 40*time.Millisecond, rate), 0.25)

	case EffectExplosion:
		noise := Shape(Tone(WaveNoise, 0, 0, d, rate), d, time.Millisecond, 220*time.Millisecond, rate)
		rumble := Shape(Tone(WaveSine, 110, 40, d, rate), d, time.Millisecond, 200*time.Millisecond, rate)
		return Gain(beep.Mix(Gain(noise, 0.6), rumble), 0.4)

	case EffectGameOver:
		note := d / 3
		var notes []beep.Streamer
		for _, f := range []float64{392, 311, 233} {
			notes = append(notes, Shape(Tone(WaveTriangle, f, f*0.97, note, rate), note, 5*time.Millisecond, 60*time.Millisecond, rate))
		}
		return Gain(beep.Seq(notes...), 0.5)

	default:
		return beep.Silence(0)
	}
}
