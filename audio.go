package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/audio"
	log "github.com/sirupsen/logrus"
)

const sampleRate = 44100

var audioContext *audio.Context

var boomPCM, blipPCM []byte

func init() {
	var err error
	audioContext, err = audio.NewContext(sampleRate)
	if err != nil {
		log.Fatal(err)
	}
	boomPCM = synth(55, 0.4, true)
	blipPCM = synth(880, 0.08, false)
}

// synth renders a decaying tone as 16 bit stereo PCM. rumble adds a
// detuned undertone and a downwards pitch sweep.
func synth(freq, secs float64, rumble bool) []byte {
	n := int(secs * sampleRate)
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := math.Sin(phase)
		if rumble {
			v += 0.5 * math.Sin(phase*0.31)
			phase += 2 * math.Pi * freq * (1 + 0.3*env) / sampleRate
		} else {
			phase += 2 * math.Pi * freq / sampleRate
		}
		s := int16(v * env * 0.4 * math.MaxInt16)
		buf[4*i] = byte(s)
		buf[4*i+1] = byte(s >> 8)
		buf[4*i+2] = byte(s)
		buf[4*i+3] = byte(s >> 8)
	}
	return buf
}

func play(pcm []byte) {
	p, err := audio.NewPlayerFromBytes(audioContext, pcm)
	if err != nil {
		log.WithError(err).Warn("audio player")
		return
	}
	p.Play()
}

func PlayBoom() { play(boomPCM) }
func PlayBlip() { play(blipPCM) }
