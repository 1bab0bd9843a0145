package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentFrames(t *testing.T) {
	frames := SegmentFrames("1. A\n\n2. B\n\n3. C")

	assert.Len(t, frames, 3)
	assert.Equal(t, "A", frames[0].Text)
	assert.Equal(t, "B", frames[1].Text)
	assert.Equal(t, "C", frames[2].Text)
	for i, f := range frames {
		assert.Equal(t, i+1, f.ID)
		assert.Empty(t, f.ImageURL)
	}
}

func TestSegmentFramesOrdinalVariants(t *testing.T) {
	frames := SegmentFrames("1) The fox woke up.\n\n12. It ran far away.")
	assert.Len(t, frames, 2)
	assert.Equal(t, "The fox woke up.", frames[0].Text)
	assert.Equal(t, "It ran far away.", frames[1].Text)
}

func TestSegmentFramesDropsEmptySegments(t *testing.T) {
	frames := SegmentFrames("First.\n\n   \n\nSecond.\n\n\n\nThird.")
	assert.Len(t, frames, 3)
	assert.Equal(t, "Second.", frames[1].Text)
	assert.Equal(t, 3, frames[2].ID)
}

func TestSegmentFramesCRLF(t *testing.T) {
	frames := SegmentFrames("1. A\r\n\r\n2. B")
	assert.Len(t, frames, 2)
	assert.Equal(t, "B", frames[1].Text)
}

func TestSegmentFramesEmptyInput(t *testing.T) {
	assert.Empty(t, SegmentFrames(""))
	assert.Empty(t, SegmentFrames("  \n\n  \n\n"))
}
