package strfmt

// inlineCap is the size of the stack-resident region a Buffer uses before
// it falls back to a heap-allocated overflow slice (§3.2).
const inlineCap = 256

// Buffer is a growable byte sink with an inline (stack) region and an
// overflow (heap) region. While size <= inlineCap no allocation occurs;
// once content outgrows the inline array, Buffer switches to a heap slice
// and never shrinks back to the inline region.
//
// The zero value is a ready-to-use empty Buffer.
type Buffer struct {
	inline    [inlineCap]byte
	size      int
	overflow  []byte // nil until the inline region overflows
	truncated bool
}

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int { return b.size }

// Cap returns the current capacity of the active region.
func (b *Buffer) Cap() int {
	if b.overflow != nil {
		return cap(b.overflow)
	}
	return inlineCap
}

// Bytes returns the buffer's content. The returned slice aliases the
// Buffer's storage and is only valid until the next mutating call.
func (b *Buffer) Bytes() []byte {
	if b.overflow != nil {
		return b.overflow[:b.size]
	}
	return b.inline[:b.size]
}

// String returns a copy of the buffer's content.
func (b *Buffer) String() string { return string(b.Bytes()) }

// Clear resets the buffer to empty without releasing overflow capacity.
func (b *Buffer) Clear() {
	b.size = 0
	b.truncated = false
}

// growTo ensures capacity for at least n bytes total, migrating from the
// inline region to a heap slice when necessary. Growth policy: new
// capacity is max(requested, floor(old_capacity*3/2)) (§3.2).
func (b *Buffer) growTo(n int) {
	if b.overflow != nil {
		if n <= cap(b.overflow) {
			return
		}
		newCap := cap(b.overflow) * 3 / 2
		if newCap < n {
			newCap = n
		}
		grown := make([]byte, b.size, newCap)
		copy(grown, b.overflow[:b.size])
		b.overflow = grown
		return
	}
	if n <= inlineCap {
		return
	}
	newCap := inlineCap * 3 / 2
	if newCap < n {
		newCap = n
	}
	grown := make([]byte, b.size, newCap)
	copy(grown, b.inline[:b.size])
	b.overflow = grown
}

// Push appends a single byte, growing if necessary.
func (b *Buffer) Push(c byte) {
	b.growTo(b.size + 1)
	if b.overflow != nil {
		b.overflow = append(b.overflow[:b.size], c)
	} else {
		b.inline[b.size] = c
	}
	b.size++
}

// PushRune appends a rune, UTF-8 encoded.
func (b *Buffer) PushRune(r rune) {
	if r < 0x80 {
		b.Push(byte(r))
		return
	}
	var buf [4]byte
	n := encodeRune(buf[:], r)
	b.Append(buf[:n])
}

// Append appends a byte range.
func (b *Buffer) Append(data []byte) {
	if len(data) == 0 {
		return
	}
	b.growTo(b.size + len(data))
	if b.overflow != nil {
		b.overflow = append(b.overflow[:b.size], data...)
	} else {
		copy(b.inline[b.size:], data)
	}
	b.size += len(data)
}

// AppendString appends a string without an intermediate []byte allocation
// beyond what Go's compiler already elides for range-over-string copies.
func (b *Buffer) AppendString(s string) {
	if len(s) == 0 {
		return
	}
	b.growTo(b.size + len(s))
	if b.overflow != nil {
		b.overflow = append(b.overflow[:b.size], s...)
	} else {
		copy(b.inline[b.size:], s)
	}
	b.size += len(s)
}

// ReserveAndFill returns a cursor (start offset) into n freshly reserved
// bytes at the end of the buffer, prefilled with value.
func (b *Buffer) ReserveAndFill(n int, value byte) int {
	start := b.size
	b.growTo(b.size + n)
	if b.overflow != nil {
		b.overflow = b.overflow[:start+n]
		for i := start; i < start+n; i++ {
			b.overflow[i] = value
		}
	} else {
		for i := start; i < start+n; i++ {
			b.inline[i] = value
		}
	}
	b.size += n
	return start
}

// encodeRune is a small UTF-8 encoder avoiding a utf8.EncodeRune import for
// this single call site; kept here because Buffer is the only writer of
// raw rune data in the package.
func encodeRune(dst []byte, r rune) int {
	switch {
	case r < 0x80:
		dst[0] = byte(r)
		return 1
	case r < 0x800:
		dst[0] = 0xC0 | byte(r>>6)
		dst[1] = 0x80 | byte(r&0x3F)
		return 2
	case r < 0x10000:
		dst[0] = 0xE0 | byte(r>>12)
		dst[1] = 0x80 | byte((r>>6)&0x3F)
		dst[2] = 0x80 | byte(r&0x3F)
		return 3
	default:
		dst[0] = 0xF0 | byte(r>>18)
		dst[1] = 0x80 | byte((r>>12)&0x3F)
		dst[2] = 0x80 | byte((r>>6)&0x3F)
		dst[3] = 0x80 | byte(r&0x3F)
		return 4
	}
}

// FixedSink wraps a caller-provided region; writes beyond its capacity are
// silently truncated, but the logical size that *would* have been written
// is tracked so callers can still learn the true formatted length
// (§4.1 "fixed-size sink variant").
type FixedSink struct {
	data    []byte
	written int // bytes actually written, <= len(data)
	wanted  int // total bytes that would have been written
}

// NewFixedSink wraps region for bounded writes.
func NewFixedSink(region []byte) *FixedSink {
	return &FixedSink{data: region}
}

func (f *FixedSink) Push(c byte) {
	if f.written < len(f.data) {
		f.data[f.written] = c
		f.written++
	}
	f.wanted++
}

func (f *FixedSink) Append(data []byte) {
	room := len(f.data) - f.written
	if room > 0 {
		n := room
		if n > len(data) {
			n = len(data)
		}
		copy(f.data[f.written:], data[:n])
		f.written += n
	}
	f.wanted += len(data)
}

func (f *FixedSink) AppendString(s string) { f.Append([]byte(s)) }

// Written returns the bytes actually copied into the caller's region.
func (f *FixedSink) Written() []byte { return f.data[:f.written] }

// Size returns the logical length format_to_n would report (§6.1), which
// may exceed len(Written()) when the region was too small.
func (f *FixedSink) Size() int { return f.wanted }

// sink is the minimal interface the orchestrator and formatters write
// through (§6.2): append bytes, append a string, push one byte.
type sink interface {
	Push(byte)
	Append([]byte)
	AppendString(string)
}

// Sink is the exported name for sink, letting callers outside this
// package write a FormatTo destination of their own (anything with the
// same three methods already satisfies it).
type Sink = sink
