package game

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	chimeRate      = beep.SampleRate(44100)
	chimeFrequency = 880.0
	chimeLength    = 180 * time.Millisecond
	chimeVolume    = 0.25
)

// tone is a sine beep with a linear fade-out so it ends without a click.
type tone struct {
	rate  beep.SampleRate
	freq  float64
	pos   int
	total int
}

func newTone(rate beep.SampleRate, freq float64, d time.Duration) *tone {
	return &tone{rate: rate, freq: freq, total: rate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		fade := 1 - float64(t.pos)/float64(t.total)
		v := chimeVolume * fade * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.rate))
		samples[i] = [2]float64{v, v}
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// chime plays a short tone when the ring completes a lap.
type chime struct {
	rate beep.SampleRate
}

func newChime() (*chime, error) {
	if err := speaker.Init(chimeRate, chimeRate.N(time.Second/20)); err != nil {
		return nil, err
	}
	return &chime{rate: chimeRate}, nil
}

func (c *chime) play() {
	speaker.Play(newTone(c.rate, chimeFrequency, chimeLength))
}

func (c *chime) close() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
