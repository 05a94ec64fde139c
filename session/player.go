// SPDX-License-Identifier: EPL-2.0

package session

import (
	"context"
	"io"
	"sync"

	"github.com/tapir-audio/ptislicer/clip"
	"github.com/tapir-audio/ptislicer/utils"
)

// voiceChunk is the number of frames written to the sink per batch.
const voiceChunk = 4096

// Player is a single-voice preview: starting a clip preempts whatever
// is playing, and preemption is the only cancellation mechanism a voice
// needs. Samples reach the sink as 16-bit little-endian PCM.
type Player struct {
	mu    sync.Mutex
	sink  io.Writer
	voice *voice
}

type voice struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPlayer wraps sink as the playback output. A nil sink discards
// audio.
func NewPlayer(sink io.Writer) *Player {
	if sink == nil {
		sink = io.Discard
	}
	return &Player{sink: sink}
}

// Play starts c as the active voice, stopping and releasing the
// previous voice first. At most one voice is ever active.
func (p *Player) Play(c *clip.Clip) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	v := &voice{cancel: cancel, done: make(chan struct{})}
	p.voice = v

	go p.run(ctx, c, v)
}

// Stop halts the active voice. Calling it with nothing playing is a
// no-op.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.voice == nil {
		return
	}
	p.voice.cancel()
	<-p.voice.done
	p.voice = nil
}

func (p *Player) run(ctx context.Context, c *clip.Clip, v *voice) {
	defer close(v.done)

	buf := make([]byte, voiceChunk*2)
	samples := c.Samples

	for len(samples) > 0 {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n := min(voiceChunk, len(samples))
		utils.EncodeInt16LE(buf, samples[:n])
		if _, err := p.sink.Write(buf[:n*2]); err != nil {
			return
		}
		samples = samples[n:]
	}
}

// Preview plays file's current audio as the single preview voice,
// preempting any running preview.
func (s *Session) Preview(file *AudioFile) {
	s.player.Play(file.Audio)
}

// StopPlayback stops the preview voice if one is active.
func (s *Session) StopPlayback() {
	s.player.Stop()
}
