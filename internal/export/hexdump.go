package export

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/draal/hexforge/internal/buffer"
)

// Meta carries the header fields of an export
type Meta struct {
	Path        string    // Source file path
	GeneratedAt time.Time // Export timestamp; zero means time.Now()
}

func (m Meta) timestamp() time.Time {
	if m.GeneratedAt.IsZero() {
		return time.Now()
	}
	return m.GeneratedAt
}

// WriteHexDump renders the classic octet-grid dump: an 8-hex-digit
// offset, 16 space-separated two-digit hex values and the ASCII
// rendering per line, preceded by a header naming the source file, its
// size and the generation time.
func WriteHexDump(w io.Writer, data []byte, meta Meta) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "HexForge dump\n")
	fmt.Fprintf(bw, "File:      %s\n", meta.Path)
	fmt.Fprintf(bw, "Size:      %d bytes\n", len(data))
	fmt.Fprintf(bw, "Generated: %s\n", meta.timestamp().Format(time.RFC3339))
	fmt.Fprintf(bw, "\n")

	for base := 0; base < len(data); base += buffer.LineWidth {
		end := base + buffer.LineWidth
		if end > len(data) {
			end = len(data)
		}
		line := data[base:end]

		fmt.Fprintf(bw, "%08X  ", base)
		for i := 0; i < buffer.LineWidth; i++ {
			if i < len(line) {
				fmt.Fprintf(bw, "%02X ", line[i])
			} else {
				fmt.Fprint(bw, "   ")
			}
		}
		fmt.Fprint(bw, " ")
		for _, c := range line {
			if c >= 0x20 && c <= 0x7E {
				fmt.Fprintf(bw, "%c", c)
			} else {
				fmt.Fprint(bw, ".")
			}
		}
		fmt.Fprint(bw, "\n")
	}

	return bw.Flush()
}
