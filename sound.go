package main

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Meduza3/deathestate/internal/game"
)

const sampleRate = 44100

type waveShape int

const (
	sine waveShape = iota
	square
	noise
)

// tone is a short synthesized effect: a frequency sweep under a linear
// attack/decay envelope.
type tone struct {
	shape      waveShape
	from, to   float64 // Hz
	length     float64 // seconds
	attack     float64 // seconds
	volume     float64
	vibratoHz  float64
	vibratoAmp float64
}

var tones = map[game.Sound]tone{
	game.SoundClick:        {shape: square, from: 1200, to: 600, length: 0.05, attack: 0.002, volume: 0.25},
	game.SoundHouseRequest: {shape: sine, from: 400, to: 620, length: 0.35, attack: 0.02, volume: 0.4, vibratoHz: 12, vibratoAmp: 20},
	game.SoundHouseSkip:    {shape: sine, from: 440, to: 260, length: 0.4, attack: 0.02, volume: 0.4, vibratoHz: 8, vibratoAmp: 15},
	game.SoundPickUp:       {shape: square, from: 170, to: 220, length: 0.06, attack: 0.005, volume: 0.2},
	game.SoundPlaceHouse:   {shape: square, from: 90, to: 70, length: 0.08, attack: 0.005, volume: 0.3},
	game.SoundInvalid:      {shape: noise, from: 390, to: 120, length: 0.25, attack: 0.01, volume: 0.25},
}

// samples renders t as signed 16-bit little-endian mono PCM.
func (t tone) samples(rng *rand.Rand) []byte {
	n := int(t.length * sampleRate)
	out := make([]byte, 2*n)
	phase := 0.0
	for i := 0; i < n; i++ {
		at := float64(i) / sampleRate
		freq := t.from + (t.to-t.from)*at/t.length
		freq += t.vibratoAmp * math.Sin(2*math.Pi*t.vibratoHz*at)
		phase += freq / sampleRate

		var v float64
		switch t.shape {
		case sine:
			v = math.Sin(2 * math.Pi * phase)
		case square:
			v = 1
			if math.Mod(phase, 1) >= 0.5 {
				v = -1
			}
		case noise:
			v = rng.Float64()*2 - 1
			v *= math.Sin(2 * math.Pi * phase)
		}

		var env float64
		if at < t.attack {
			env = at / t.attack
		} else {
			env = 1 - (at-t.attack)/(t.length-t.attack)
		}
		s := int16(v * env * t.volume * math.MaxInt16)
		out[2*i] = byte(s)
		out[2*i+1] = byte(s >> 8)
	}
	return out
}

// audio plays preloaded effects through raylib. A muted or failed device
// plays nothing.
type audio struct {
	sounds map[game.Sound]rl.Sound
}

func newAudio(mute bool) *audio {
	a := &audio{sounds: map[game.Sound]rl.Sound{}}
	if mute {
		return a
	}
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return a
	}
	rng := rand.New(rand.NewSource(1))
	for id, t := range tones {
		data := t.samples(rng)
		wave := rl.NewWave(uint32(len(data)/2), sampleRate, 16, 1, data)
		a.sounds[id] = rl.LoadSoundFromWave(wave)
	}
	return a
}

func (a *audio) Play(s game.Sound) {
	if snd, ok := a.sounds[s]; ok {
		rl.PlaySound(snd)
	}
}

func (a *audio) Close() {
	if len(a.sounds) == 0 {
		return
	}
	for _, snd := range a.sounds {
		rl.UnloadSound(snd)
	}
	rl.CloseAudioDevice()
}
