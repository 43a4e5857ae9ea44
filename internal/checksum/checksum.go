package checksum

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash/crc32"
	"io"
	"sort"
)

// Report carries every digest of one buffer snapshot plus its byte
// distribution. A report is valid only for the exact buffer state it was
// computed from; it is never cached across a mutation.
type Report struct {
	CRC32     uint32    // IEEE CRC32 (reflected polynomial 0xEDB88320)
	MD5       [16]byte  // MD5 digest
	SHA1      [20]byte  // SHA-1 digest
	SHA256    [32]byte  // SHA-256 digest
	Size      int       // Buffer size the report was computed over
	Histogram [256]int  // Occurrences per byte value
}

// BucketCount is one histogram entry, used for frequency ranking
type BucketCount struct {
	Value byte // Byte value
	Count int  // Occurrences
}

// Compute hashes the buffer in a single pass and fills the histogram.
// It is a pure function of the snapshot: edits after Compute leave the
// report stale, and keeping it fresh is the caller's job.
func Compute(data []byte) *Report {
	crcHash := crc32.NewIEEE()
	md5Hash := md5.New()
	sha1Hash := sha1.New()
	sha256Hash := sha256.New()

	// One pass through the data feeds all four digests.
	w := io.MultiWriter(crcHash, md5Hash, sha1Hash, sha256Hash)
	_, _ = w.Write(data)

	r := &Report{
		CRC32: crcHash.Sum32(),
		Size:  len(data),
	}
	copy(r.MD5[:], md5Hash.Sum(nil))
	copy(r.SHA1[:], sha1Hash.Sum(nil))
	copy(r.SHA256[:], sha256Hash.Sum(nil))

	for _, b := range data {
		r.Histogram[b]++
	}
	return r
}

// CRC32Hex returns the CRC32 as 8 upper-case hex digits
func (r *Report) CRC32Hex() string {
	return fmt.Sprintf("%08X", r.CRC32)
}

// MD5Hex returns the MD5 digest as unseparated upper-case hex
func (r *Report) MD5Hex() string {
	return fmt.Sprintf("%X", r.MD5)
}

// SHA1Hex returns the SHA-1 digest as unseparated upper-case hex
func (r *Report) SHA1Hex() string {
	return fmt.Sprintf("%X", r.SHA1)
}

// SHA256Hex returns the SHA-256 digest as unseparated upper-case hex
func (r *Report) SHA256Hex() string {
	return fmt.Sprintf("%X", r.SHA256)
}

// TopBuckets returns the n most frequent byte values, descending by
// count. Zero-count buckets are never included. Equal counts order by
// byte value so the ranking is deterministic.
func (r *Report) TopBuckets(n int) []BucketCount {
	buckets := make([]BucketCount, 0, 256)
	for v, c := range r.Histogram {
		if c > 0 {
			buckets = append(buckets, BucketCount{Value: byte(v), Count: c})
		}
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Value < buckets[j].Value
	})
	if len(buckets) > n {
		buckets = buckets[:n]
	}
	return buckets
}

// Percent returns a bucket's share of the buffer to two decimals
func (r *Report) Percent(b BucketCount) float64 {
	if r.Size == 0 {
		return 0
	}
	return float64(b.Count) * 100 / float64(r.Size)
}
