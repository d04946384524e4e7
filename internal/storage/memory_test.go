package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetAbsentKey(t *testing.T) {
	s := NewMemory()
	v, ok, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestMemoryPutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	require.NoError(t, s.Put(ctx, "k", []byte(`{"a":1}`)))

	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), v)

	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	in := []byte("original")
	require.NoError(t, s.Put(ctx, "k", in))
	in[0] = 'X'

	out, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("original"), out)

	out[0] = 'Y'
	again, _, _ := s.Get(ctx, "k")
	assert.Equal(t, []byte("original"), again)
}
