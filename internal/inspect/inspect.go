package inspect

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Sentinel is returned whenever a value cannot be decoded at the cursor.
// Decoding never produces an error: a short window or bad conversion is
// transient cursor state, not a failure worth propagating.
const Sentinel = "-"

// MaxCStringLen bounds the null-terminated string decode
const MaxCStringLen = 64

// Kind selects the interpretation of the bytes at the cursor
type Kind int

const (
	// KindUint is an unsigned integer of Width bytes (1, 2, 4 or 8)
	KindUint Kind = iota
	// KindInt is a signed two's-complement integer of Width bytes
	KindInt
	// KindFloat is an IEEE 754 float of Width bytes (4 or 8)
	KindFloat
	// KindCString is a null-terminated string of at most 64 bytes
	KindCString
	// KindBits renders the single byte at the cursor as 8 binary digits
	KindBits
)

// Endian selects the byte order of multi-byte decodes
type Endian int

const (
	// Little is least-significant byte first (the firmware default)
	Little Endian = iota
	// Big is most-significant byte first
	Big
)

// Spec describes one decode request
type Spec struct {
	Kind   Kind
	Width  int
	Endian Endian
}

// Decode interprets the bytes at off per spec and renders them as text.
// Reads never extend past the buffer: a window that would run off the
// end yields the sentinel instead. The buffer is never mutated.
func Decode(data []byte, off int, spec Spec) string {
	if off < 0 || off >= len(data) {
		return Sentinel
	}

	switch spec.Kind {
	case KindUint:
		u, ok := window(data, off, spec.Width, spec.Endian)
		if !ok {
			return Sentinel
		}
		return strconv.FormatUint(u, 10)

	case KindInt:
		u, ok := window(data, off, spec.Width, spec.Endian)
		if !ok {
			return Sentinel
		}
		return strconv.FormatInt(signExtend(u, spec.Width), 10)

	case KindFloat:
		u, ok := window(data, off, spec.Width, spec.Endian)
		if !ok {
			return Sentinel
		}
		switch spec.Width {
		case 4:
			return strconv.FormatFloat(float64(math.Float32frombits(uint32(u))), 'g', -1, 32)
		case 8:
			return strconv.FormatFloat(math.Float64frombits(u), 'g', -1, 64)
		default:
			return Sentinel
		}

	case KindCString:
		return decodeCString(data, off)

	case KindBits:
		return fmt.Sprintf("%08b", data[off])

	default:
		return Sentinel
	}
}

// window reads width bytes at off as an unsigned integer. Big-endian
// decodes reverse the window before interpretation. Returns false when
// the window would cross the buffer end or the width is unsupported.
func window(data []byte, off, width int, e Endian) (uint64, bool) {
	switch width {
	case 1, 2, 4, 8:
	default:
		return 0, false
	}
	if off+width > len(data) {
		return 0, false
	}

	w := make([]byte, 8)
	copy(w, data[off:off+width])
	if e == Big {
		for i, j := 0, width-1; i < j; i, j = i+1, j-1 {
			w[i], w[j] = w[j], w[i]
		}
	}
	return binary.LittleEndian.Uint64(w), true
}

// signExtend reinterprets the low width*8 bits of u as a signed value
func signExtend(u uint64, width int) int64 {
	shift := uint(64 - width*8)
	return int64(u<<shift) >> shift
}

// decodeCString reads up to MaxCStringLen bytes at off, stopping at the
// first NUL. The bytes are returned as UTF-8 when valid, otherwise
// re-decoded as Latin-1 so every byte still maps to a rune.
func decodeCString(data []byte, off int) string {
	end := off
	limit := off + MaxCStringLen
	if limit > len(data) {
		limit = len(data)
	}
	for end < limit && data[end] != 0 {
		end++
	}
	if end == off {
		return Sentinel
	}

	raw := data[off:end]
	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return Sentinel
	}
	return string(decoded)
}
