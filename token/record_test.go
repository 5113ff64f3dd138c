package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frengels/ely/token"
)

func TestZeroArgRoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	w := token.NewWriter(buf)
	w.ZeroArg(token.LParen)
	w.ZeroArg(token.RParen)

	recs := token.DecodeAll(buf, w.Written(), false)
	require.Len(t, recs, 2)
	assert.Equal(t, token.LParen, recs[0].Kind)
	assert.Equal(t, token.RParen, recs[1].Kind)
}

func TestLengthTaggedRoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	w := token.NewWriter(buf)
	w.LengthTagged(token.Identifier, 39) // 39 == byte(token.Spill); must not be misread as a spill trailer
	w.LengthTagged(token.Whitespace, 1)

	recs := token.DecodeAll(buf, w.Written(), false)
	require.Len(t, recs, 2)
	assert.Equal(t, token.Identifier, recs[0].Kind)
	assert.Equal(t, 39, recs[0].Length)
	assert.Equal(t, token.Whitespace, recs[1].Kind)
}

func TestBlockCommentRoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	w := token.NewWriter(buf)
	w.BlockComment(12, 3)

	recs := token.DecodeAll(buf, w.Written(), false)
	require.Len(t, recs, 1)
	assert.Equal(t, token.BlockComment, recs[0].Kind)
	assert.Equal(t, 12, recs[0].Length)
	assert.Equal(t, 3, recs[0].NewlineCount)
}

func TestSpillTrailerDecodesAfterOrdinaryRecords(t *testing.T) {
	buf := make([]byte, 16)
	w := token.NewWriter(buf)
	w.LengthTagged(token.Whitespace, 1)
	w.Spill(200, 7)

	recs := token.DecodeAll(buf, w.Written(), true)
	require.Len(t, recs, 2)
	assert.Equal(t, token.Whitespace, recs[0].Kind)
	assert.Equal(t, token.Spill, recs[1].Kind)
	assert.Equal(t, 200, recs[1].LengthConsumed)
	assert.Equal(t, byte(7), recs[1].ContinuationID)
}

func TestWriterFreeAndPanicOnOverrun(t *testing.T) {
	buf := make([]byte, 1)
	w := token.NewWriter(buf)
	assert.Equal(t, 1, w.Free())
	assert.Panics(t, func() {
		w.LengthTagged(token.Identifier, 5) // needs 2 bytes, only 1 available
	})
}

func TestLengthTaggedRejectsOutOfRange(t *testing.T) {
	buf := make([]byte, 16)
	w := token.NewWriter(buf)
	assert.Panics(t, func() { w.LengthTagged(token.Identifier, -1) })
	assert.Panics(t, func() { w.LengthTagged(token.Identifier, 256) })
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, token.LParen.IsZeroArg())
	assert.False(t, token.LParen.IsLengthTagged())
	assert.True(t, token.Identifier.IsLengthTagged())
	assert.False(t, token.Identifier.IsZeroArg())
	assert.True(t, token.Whitespace.IsAtmosphere())
	assert.False(t, token.Identifier.IsAtmosphere())
	assert.True(t, token.NewlineCRLF.IsNewline())
	assert.True(t, token.NewlineCRLF.IsZeroArg())
}
