package export

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/draal/hexforge/internal/checksum"
)

// TopBucketCount is how many histogram entries the analysis report lists
const TopBucketCount = 20

// WriteAnalysis renders the analysis report: checksums, the detected
// type label and the byte-frequency table. CRC32 prints as 8 hex
// digits; the cryptographic digests print as unseparated upper-case
// hex; frequencies print with percentages to two decimals.
func WriteAnalysis(w io.Writer, r *checksum.Report, typeLabel string, meta Meta) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "HexForge analysis\n")
	fmt.Fprintf(bw, "File:      %s\n", meta.Path)
	fmt.Fprintf(bw, "Size:      %d bytes\n", r.Size)
	fmt.Fprintf(bw, "Type:      %s\n", typeLabel)
	fmt.Fprintf(bw, "Generated: %s\n", meta.timestamp().Format(time.RFC3339))
	fmt.Fprintf(bw, "\n")

	fmt.Fprintf(bw, "Checksums\n")
	fmt.Fprintf(bw, "  CRC32:  %s\n", r.CRC32Hex())
	fmt.Fprintf(bw, "  MD5:    %s\n", r.MD5Hex())
	fmt.Fprintf(bw, "  SHA1:   %s\n", r.SHA1Hex())
	fmt.Fprintf(bw, "  SHA256: %s\n", r.SHA256Hex())
	fmt.Fprintf(bw, "\n")

	fmt.Fprintf(bw, "Byte frequency (top %d)\n", TopBucketCount)
	for _, b := range r.TopBuckets(TopBucketCount) {
		fmt.Fprintf(bw, "  0x%02X  %10d  %6.2f%%\n", b.Value, b.Count, r.Percent(b))
	}

	return bw.Flush()
}
