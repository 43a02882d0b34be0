// Package audio synthesizes the game's sound effects as beep streamers.
// Nothing here touches an audio device; see the speaker subpackage.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the rate every effect is synthesized at.
const SampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// tone is a fixed-length oscillator whose frequency slides linearly
// from start to end.
type tone struct {
	start, end float64 // Hz
	wave       Wave
	rate       beep.SampleRate
	phase      float64
	pos        int
	total      int
	noise      *rand.Rand
}

// Tone returns a streamer of the given duration. The frequency sweeps from
// start to end; pass the same value twice for a steady pitch. Noise is
// seeded so every rendition of an effect is identical.
func Tone(wave Wave, start, end float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		start: start,
		end:   end,
		wave:  wave,
		rate:  rate,
		total: rate.N(d),
		noise: rand.New(rand.NewSource(1)),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveTriangle:
			v = 4*math.Abs(t.phase-0.5) - 1
		case WaveNoise:
			v = t.noise.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		progress := float64(t.pos) / float64(t.total)
		freq := t.start + (t.end-t.start)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope fades a streamer in over attack and out over its last release
// samples, given the streamer's total length.
type envelope struct {
	s       beep.Streamer
	attack  int
	release int
	total   int
	pos     int
}

// Shape applies a linear attack/release envelope to s, which must be d long.
func Shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		s:       s,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			gain = math.Min(gain, math.Max(float64(left)/float64(e.release), 0))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// Gain scales s linearly. Zero or negative gain silences it.
func Gain(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
