package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// wave is an oscillator shape.
type wave int

const (
	waveSine wave = iota
	waveSquare
	waveSaw
)

// tone is a fixed-length oscillator with a linear fade out over its last
// quarter so cues end without a click.
type tone struct {
	freq  float64
	phase float64
	pos   int
	total int
	shape wave
	rate  beep.SampleRate
}

func newTone(freq float64, d time.Duration, shape wave, rate beep.SampleRate) *tone {
	return &tone{freq: freq, total: rate.N(d), shape: shape, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	release := t.total / 4
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		var v float64
		switch t.shape {
		case waveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case waveSaw:
			v = 2 * (t.phase - 0.5)
		}
		if left := t.total - t.pos; release > 0 && left < release {
			v *= float64(left) / float64(release)
		}
		samples[i][0] = v
		samples[i][1] = v
		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume scales s by a linear gain in [0, 1]. Zero is silent because
// the volume effect works in log space.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// cueStreamer builds the sound for c at full volume.
func cueStreamer(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CuePickup:
		// Two rising notes, the second a fifth above the first.
		low, err := generators.SineTone(rate, 660)
		if err != nil {
			return nil
		}
		return beep.Seq(
			withVolume(beep.Take(rate.N(60*time.Millisecond), low), 0.5),
			newTone(990, 90*time.Millisecond, waveSine, rate),
		)
	case CueCycle:
		return withVolume(newTone(440, 35*time.Millisecond, waveSquare, rate), 0.3)
	case CueDrop:
		return beep.Seq(
			newTone(330, 60*time.Millisecond, waveSaw, rate),
			newTone(220, 80*time.Millisecond, waveSaw, rate),
		)
	case CueMenu:
		return withVolume(newTone(880, 25*time.Millisecond, waveSine, rate), 0.4)
	}
	return nil
}
