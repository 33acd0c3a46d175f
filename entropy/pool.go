// Package entropy buffers raw randomness from a secure source and hands it
// out one bit at a time.
//
// Random bits are treated as a scarce resource: the pool reads its source in
// blocks and every buffered bit is consumed exactly once before the next
// read. Extraction order is fixed: words are decoded little-endian from the
// byte stream and each word is drained least-significant bit first.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// WordBytes is the size in bytes of one buffered word.
	WordBytes = 4

	// WordBits is the number of bits extracted from each word.
	WordBits = 32

	// DefaultBlockSize is the number of bytes fetched per refill.
	DefaultBlockSize = 1024
)

// ErrShortRead is returned when a refill cannot supply at least one full
// word. Entropy quality cannot be guessed or approximated, so callers must
// treat this as fatal rather than fall back to a weaker source.
var ErrShortRead = errors.New("entropy: short read from source")

// ErrSourceUnavailable is returned when the randomness source cannot be
// opened.
var ErrSourceUnavailable = errors.New("entropy: source unavailable")

// Open returns a reader over the named device file, or the operating
// system's default secure source when path is empty. The handle stays open
// for the life of the process.
func Open(path string) (io.Reader, error) {
	if path == "" {
		return rand.Reader, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return f, nil
}

// Pool buffers blocks of randomness from a source and exposes them bit by
// bit. The zero value is not usable; construct with NewPool.
//
// A Pool is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access (see Locked) or give each goroutine its
// own Pool.
type Pool struct {
	src      io.Reader
	block    []byte   // raw refill buffer
	words    []uint32 // decoded words, valid up to nwords
	winx     int      // index of the word currently being drained
	nwords   int      // words decoded by the last refill
	bcnt     uint     // bits consumed from the current word
	bitsRead uint64
	refills  uint64
}

// Option configures a Pool.
type Option func(*Pool)

// WithBlockSize sets the refill size in bytes. Sizes below one word are
// raised to one word. Small blocks are mainly useful for exercising refill
// behaviour in tests.
func WithBlockSize(n int) Option {
	return func(p *Pool) {
		if n < WordBytes {
			n = WordBytes
		}
		p.block = make([]byte, n)
	}
}

// NewPool returns an empty Pool over src. Nothing is read from src until
// the first call to Bit.
func NewPool(src io.Reader, opts ...Option) *Pool {
	p := &Pool{src: src}
	for _, opt := range opts {
		opt(p)
	}
	if p.block == nil {
		p.block = make([]byte, DefaultBlockSize)
	}
	p.words = make([]uint32, len(p.block)/WordBytes)
	return p
}

// Bit returns the next random bit, refilling from the source only once
// every previously buffered bit has been handed out.
func (p *Pool) Bit() (uint32, error) {
	if p.winx == p.nwords {
		if err := p.refill(); err != nil {
			return 0, err
		}
	}

	bit := p.words[p.winx] & 1
	p.words[p.winx] >>= 1
	p.bcnt++
	if p.bcnt == WordBits {
		p.winx++
		p.bcnt = 0
	}
	p.bitsRead++
	return bit, nil
}

// BitsRead reports the total number of bits handed out so far.
func (p *Pool) BitsRead() uint64 {
	return p.bitsRead
}

// Refills reports how many blocks have been read from the source.
func (p *Pool) Refills() uint64 {
	return p.refills
}

// refill replaces the buffered words with a fresh block. A read that cannot
// supply at least one full word is unrecoverable. Trailing bytes of a
// partial block are dropped rather than carried over.
func (p *Pool) refill() error {
	n, err := p.src.Read(p.block)
	if n < WordBytes {
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %v", ErrShortRead, err)
		}
		return fmt.Errorf("%w: got %d bytes, need at least %d", ErrShortRead, n, WordBytes)
	}

	p.nwords = n / WordBytes
	for i := 0; i < p.nwords; i++ {
		p.words[i] = binary.LittleEndian.Uint32(p.block[i*WordBytes:])
	}
	p.winx = 0
	p.bcnt = 0
	p.refills++
	return nil
}
