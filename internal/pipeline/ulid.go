package pipeline

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// ULID generator for job and node identifiers: 26-character Crockford
// Base32 strings with a 48-bit timestamp prefix, no external deps.

var (
	ulidMu  sync.Mutex
	lastTS  uint64
	lastSeq uint16
)

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// NewID returns a fresh ULID. IDs generated within the same millisecond
// stay unique and ordered through an embedded sequence counter.
func NewID() string {
	ulidMu.Lock()
	defer ulidMu.Unlock()

	ts := uint64(time.Now().UnixMilli())
	if ts == lastTS {
		lastSeq++
	} else {
		lastTS = ts
		lastSeq = 0
	}

	var b [16]byte
	// Timestamp in the first 6 bytes (big-endian 48 bits).
	b[0] = byte(ts >> 40)
	b[1] = byte(ts >> 32)
	b[2] = byte(ts >> 24)
	b[3] = byte(ts >> 16)
	b[4] = byte(ts >> 8)
	b[5] = byte(ts)
	// Random in the remaining 10 bytes, with the sequence in bytes 6-7.
	rand.Read(b[6:])
	binary.BigEndian.PutUint16(b[6:8], lastSeq)

	return encodeBase32(b)
}

// encodeBase32 encodes 128 bits as 26 Crockford Base32 characters,
// consuming 5 bits at a time from the high end (the last character
// carries only 3 bits).
func encodeBase32(b [16]byte) string {
	var out [26]byte
	bits := 128
	for i := range out {
		bits -= 5
		var idx byte
		if bits >= 0 {
			idx = take5(b, bits)
		} else {
			// Final partial group.
			idx = b[15] & ((1 << (5 + bits)) - 1)
		}
		out[i] = crockford[idx]
	}
	return string(out[:])
}

// take5 extracts the 5 bits starting at bit offset (from the low end).
func take5(b [16]byte, offset int) byte {
	var v byte
	for i := 0; i < 5; i++ {
		bit := offset + (4 - i)
		byteIdx := 15 - bit/8
		if b[byteIdx]&(1<<(bit%8)) != 0 {
			v |= 1 << (4 - i)
		}
	}
	return v
}
