package entropy

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroReader supplies an endless stream of zero bytes.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

// countingReader counts Read calls on the wrapped reader.
type countingReader struct {
	src   io.Reader
	reads int
}

func (r *countingReader) Read(p []byte) (int, error) {
	r.reads++
	return r.src.Read(p)
}

// chunkReader returns the same chunk on every read, to simulate a source
// that delivers short but valid blocks.
type chunkReader struct {
	chunk []byte
}

func (r *chunkReader) Read(p []byte) (int, error) {
	return copy(p, r.chunk), nil
}

func TestBitOrder(t *testing.T) {
	// Two little-endian words: 0x00000001 and 0x000000FF. Bits come out
	// LSB-first within each word, word by word.
	src := bytes.NewReader([]byte{0x01, 0x00, 0x00, 0x00, 0xFF, 0x00, 0x00, 0x00})
	p := NewPool(src, WithBlockSize(8))

	var got []uint32
	for i := 0; i < 64; i++ {
		b, err := p.Bit()
		require.NoError(t, err)
		got = append(got, b)
	}

	want := make([]uint32, 64)
	want[0] = 1 // bit 0 of word 0
	for i := 32; i < 40; i++ {
		want[i] = 1 // low byte of word 1
	}
	assert.Equal(t, want, got)
	assert.Equal(t, uint64(64), p.BitsRead())

	// Source is exhausted, so the next refill must fail hard.
	_, err := p.Bit()
	require.ErrorIs(t, err, ErrShortRead)
}

func TestLazyFirstFill(t *testing.T) {
	src := &countingReader{src: zeroReader{}}
	p := NewPool(src, WithBlockSize(8))
	assert.Equal(t, 0, src.reads, "pool must not read before the first Bit")

	_, err := p.Bit()
	require.NoError(t, err)
	assert.Equal(t, 1, src.reads)
}

func TestRefillOnlyOnExhaustion(t *testing.T) {
	src := &countingReader{src: zeroReader{}}
	p := NewPool(src, WithBlockSize(WordBytes))

	// One word buffered: exactly 32 bits before the next read.
	for i := 0; i < WordBits; i++ {
		_, err := p.Bit()
		require.NoError(t, err)
		assert.Equal(t, 1, src.reads, "no refill while buffered bits remain (bit %d)", i)
	}

	_, err := p.Bit()
	require.NoError(t, err)
	assert.Equal(t, 2, src.reads)
	assert.Equal(t, uint64(2), p.Refills())
}

func TestPartialBlockKeepsWholeWords(t *testing.T) {
	// Six bytes per read: one full word (0xAA) plus two trailing bytes
	// that must be dropped, not buffered.
	src := &countingReader{src: &chunkReader{chunk: []byte{0xAA, 0x00, 0x00, 0x00, 0xBB, 0xCC}}}
	p := NewPool(src, WithBlockSize(8))

	// 0xAA = 10101010b, LSB first.
	want := []uint32{0, 1, 0, 1, 0, 1, 0, 1}
	for i, w := range want {
		b, err := p.Bit()
		require.NoError(t, err)
		assert.Equal(t, w, b, "bit %d", i)
	}
	for i := 8; i < WordBits; i++ {
		b, err := p.Bit()
		require.NoError(t, err)
		assert.Equal(t, uint32(0), b, "bit %d", i)
	}
	assert.Equal(t, 1, src.reads)

	// The 33rd bit needs a second read: the partial word was not kept.
	_, err := p.Bit()
	require.NoError(t, err)
	assert.Equal(t, 2, src.reads)
}

func TestShortRead(t *testing.T) {
	t.Run("fewer bytes than a word", func(t *testing.T) {
		p := NewPool(bytes.NewReader([]byte{0x01, 0x02}))
		_, err := p.Bit()
		require.ErrorIs(t, err, ErrShortRead)
	})

	t.Run("empty source", func(t *testing.T) {
		p := NewPool(bytes.NewReader(nil))
		_, err := p.Bit()
		require.ErrorIs(t, err, ErrShortRead)
	})

	t.Run("read error", func(t *testing.T) {
		boom := errors.New("device gone")
		p := NewPool(&failingReader{err: boom})
		_, err := p.Bit()
		require.ErrorIs(t, err, ErrShortRead)
	})
}

type failingReader struct {
	err error
}

func (r *failingReader) Read(p []byte) (int, error) {
	return 0, r.err
}

func TestTinyBlockSizeRaisedToOneWord(t *testing.T) {
	p := NewPool(zeroReader{}, WithBlockSize(1))
	for i := 0; i < WordBits; i++ {
		_, err := p.Bit()
		require.NoError(t, err)
	}
	assert.Equal(t, uint64(1), p.Refills())
}

func TestOpen(t *testing.T) {
	t.Run("default source", func(t *testing.T) {
		src, err := Open("")
		require.NoError(t, err)
		require.NotNil(t, src)
	})

	t.Run("missing device", func(t *testing.T) {
		_, err := Open("/nonexistent/device")
		require.ErrorIs(t, err, ErrSourceUnavailable)
	})
}

func TestLockedSerializesAccess(t *testing.T) {
	l := NewLocked(NewPool(zeroReader{}, WithBlockSize(8)))

	const goroutines = 8
	const bitsEach = 100

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < bitsEach; i++ {
				_, err := l.Bit()
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(goroutines*bitsEach), l.BitsRead())
}
