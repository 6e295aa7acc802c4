package translate

import (
	"github.com/nvieira/notepc/sdk/contracts"
)

// Block carries the events and audio buffers of one processing block. All
// storage is allocated up front by NewBlock so that filling and processing a
// block stays allocation-free.
type Block struct {
	// In holds the host-delivered events for this block, in timestamp order.
	In []contracts.Event
	// Out receives the translated events, in the same relative order.
	Out []contracts.Event

	// AudioIn and AudioOut are per-channel sample buffers. The translator
	// never inspects them; Process copies input to output untouched.
	AudioIn  [][]float32
	AudioOut [][]float32
}

// NewBlock pre-allocates a block for up to maxEvents events per side and the
// given audio channel count and frame capacity.
func NewBlock(maxEvents, channels, maxFrames int) *Block {
	b := &Block{
		In:       make([]contracts.Event, 0, maxEvents),
		Out:      make([]contracts.Event, 0, maxEvents),
		AudioIn:  make([][]float32, channels),
		AudioOut: make([][]float32, channels),
	}
	for ch := 0; ch < channels; ch++ {
		b.AudioIn[ch] = make([]float32, maxFrames)
		b.AudioOut[ch] = make([]float32, maxFrames)
	}
	return b
}

// Reset empties both event slices for the next block, keeping capacity.
func (b *Block) Reset() {
	b.In = b.In[:0]
	b.Out = b.Out[:0]
}

// PassThroughAudio copies every input channel to the matching output
// channel, bit for bit.
func (b *Block) PassThroughAudio() {
	n := len(b.AudioIn)
	if len(b.AudioOut) < n {
		n = len(b.AudioOut)
	}
	for ch := 0; ch < n; ch++ {
		copy(b.AudioOut[ch], b.AudioIn[ch])
	}
}
