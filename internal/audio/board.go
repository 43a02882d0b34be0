package audio

import (
	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

// Sink plays streamers, usually by mixing them into an audio device.
type Sink interface {
	Play(s beep.Streamer)
}

// Board turns game events into sound effects.
// A Board without a sink, or a muted one, is silent.
type Board struct {
	sink   Sink
	rate   beep.SampleRate
	volume float64
	muted  bool
}

// NewBoard creates a board playing into sink at full volume.
func NewBoard(sink Sink, rate beep.SampleRate) *Board {
	return &Board{sink: sink, rate: rate, volume: 1}
}

// SetVolume sets the linear master volume, clamped to [0, 1].
func (b *Board) SetVolume(v float64) {
	b.volume = min(max(v, 0), 1)
}

// SetMuted mutes or unmutes the board.
func (b *Board) SetMuted(m bool) {
	b.muted = m
}

// Muted reports whether the board is muted.
func (b *Board) Muted() bool {
	return b.muted
}

// Trigger plays one effect.
func (b *Board) Trigger(e Effect) {
	if b == nil || b.sink == nil || b.muted || b.volume == 0 {
		return
	}
	s := New(e, b.rate)
	if b.volume < 1 {
		s = Gain(s, b.volume)
	}
	b.sink.Play(s)
}

// Events plays the effects for one tick's events, at most one of each.
func (b *Board) Events(ev shooter.Events) {
	if ev.Fired > 0 {
		b.Trigger(EffectFire)
	}
	if ev.Destroyed > 0 {
		b.Trigger(EffectExplosion)
	}
	if ev.Lost {
		b.Trigger(EffectGameOver)
	}
}
