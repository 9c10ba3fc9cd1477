package audio

import (
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player maps named cues to synthesized sounds. A nil or disabled
// player swallows cues silently.
type Player struct {
	enabled bool
}

// NewPlayer opens the audio device. Failure disables sound and is not
// an error.
func NewPlayer(mute bool) *Player {
	p := &Player{}
	if mute {
		return p
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		slog.Warn("audio unavailable, continuing silent", "error", err)
		return p
	}
	p.enabled = true
	return p
}

// Enabled reports whether the device opened
func (p *Player) Enabled() bool { return p != nil && p.enabled }

// Cue plays the sound registered under the given name, if any
func (p *Player) Cue(name string) {
	if !p.Enabled() {
		return
	}
	s := cueStreamer(name)
	if s == nil {
		return
	}
	speaker.Play(s)
}

// cueStreamer builds the streamer for a cue name
func cueStreamer(name string) beep.Streamer {
	switch name {
	case "feed":
		return beep.Seq(
			chirp(523, 60*time.Millisecond, WaveSquare, sampleRate),
			chirp(659, 60*time.Millisecond, WaveSquare, sampleRate),
		)
	case "play":
		return beep.Seq(
			chirp(659, 50*time.Millisecond, WaveSquare, sampleRate),
			chirp(784, 50*time.Millisecond, WaveSquare, sampleRate),
			chirp(988, 80*time.Millisecond, WaveSquare, sampleRate),
		)
	case "clean":
		return chirp(880, 120*time.Millisecond, WaveSine, sampleRate)
	case "pet":
		return chirp(440, 150*time.Millisecond, WaveSine, sampleRate)
	case "sleep":
		return beep.Seq(
			chirp(392, 120*time.Millisecond, WaveSine, sampleRate),
			chirp(262, 200*time.Millisecond, WaveSine, sampleRate),
		)
	case "denied":
		return chirp(110, 100*time.Millisecond, WaveSquare, sampleRate)
	case "event":
		return chirp(1047, 80*time.Millisecond, WaveSine, sampleRate)
	case "achievement":
		return beep.Seq(
			chirp(523, 70*time.Millisecond, WaveSquare, sampleRate),
			chirp(659, 70*time.Millisecond, WaveSquare, sampleRate),
			chirp(1047, 150*time.Millisecond, WaveSquare, sampleRate),
		)
	case "weather_rain", "weather_storm":
		return chirp(0, 250*time.Millisecond, WaveNoise, sampleRate)
	case "weather_clear", "weather_cloudy":
		return chirp(784, 100*time.Millisecond, WaveSine, sampleRate)
	default:
		return nil
	}
}
