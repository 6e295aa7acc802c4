package translate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvieira/notepc/sdk/contracts"
	"github.com/nvieira/notepc/sdk/translate"
)

func TestProcessPreservesOrder(t *testing.T) {
	tr := translate.New()
	blk := translate.NewBlock(8, 2, 64)

	blk.In = append(blk.In,
		noteOn(0, 26, 100, 0),
		contracts.Event{Kind: contracts.ControlChange, Channel: 0, Data1: 7, Data2: 90, Offset: 3},
		contracts.Event{Kind: contracts.NoteOff, Channel: 0, Data1: 26, Offset: 5},
		noteOn(0, 10, 100, 6),
		contracts.Event{Kind: contracts.PitchBend, Channel: 0, Data1: 0, Data2: 64, Offset: 8},
	)

	tr.Process(blk)

	require.Len(t, blk.Out, 3)
	assert.Equal(t, contracts.ProgramChange, blk.Out[0].Kind)
	assert.Equal(t, uint8(2), blk.Out[0].Data1)
	assert.Equal(t, int32(0), blk.Out[0].Offset)
	assert.Equal(t, contracts.ControlChange, blk.Out[1].Kind)
	assert.Equal(t, contracts.PitchBend, blk.Out[2].Kind)
}

func TestProcessAudioPassThrough(t *testing.T) {
	tr := translate.New()
	blk := translate.NewBlock(4, 2, 16)

	for ch := range blk.AudioIn {
		for i := range blk.AudioIn[ch] {
			blk.AudioIn[ch][i] = float32(ch*100+i) * 0.25
		}
	}
	blk.In = append(blk.In, noteOn(0, 24, 100, 0))

	tr.Process(blk)

	for ch := range blk.AudioIn {
		assert.Equal(t, blk.AudioIn[ch], blk.AudioOut[ch], "channel %d", ch)
	}
}

func TestProcessEmptyBlock(t *testing.T) {
	tr := translate.New()
	blk := translate.NewBlock(4, 2, 16)

	tr.Process(blk)
	assert.Empty(t, blk.Out)
}

func TestResetKeepsCapacity(t *testing.T) {
	blk := translate.NewBlock(8, 2, 16)
	blk.In = append(blk.In, noteOn(0, 24, 100, 0))
	blk.Out = append(blk.Out, contracts.Event{Kind: contracts.ProgramChange})

	blk.Reset()

	assert.Empty(t, blk.In)
	assert.Empty(t, blk.Out)
	assert.Equal(t, 8, cap(blk.In))
	assert.Equal(t, 8, cap(blk.Out))
}

func TestProcessDoesNotAllocate(t *testing.T) {
	tr := translate.New()
	blk := translate.NewBlock(8, 2, 64)

	events := []contracts.Event{
		noteOn(0, 24, 100, 0),
		{Kind: contracts.ControlChange, Channel: 0, Data1: 7, Data2: 90, Offset: 1},
		{Kind: contracts.NoteOff, Channel: 0, Data1: 24, Offset: 2},
		noteOn(0, 123, 64, 3),
	}

	allocs := testing.AllocsPerRun(200, func() {
		blk.Reset()
		blk.In = append(blk.In, events...)
		tr.Process(blk)
	})

	assert.Zero(t, allocs)
}
