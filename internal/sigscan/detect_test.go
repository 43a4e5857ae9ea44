package sigscan

import (
	"bytes"
	"testing"
)

func TestDetectType(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "android boot image",
			data: append([]byte("ANDROID!"), make([]byte, 56)...),
			want: "boot-image",
		},
		{
			name: "elf executable",
			data: []byte{0x7F, 0x45, 0x4C, 0x46, 0x02, 0x01, 0x01, 0x00},
			want: "elf",
		},
		{
			name: "zip archive",
			data: []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00},
			want: "zip",
		},
		{
			name: "android sparse image",
			data: []byte{0x3A, 0xFF, 0x26, 0xED, 0x01, 0x00},
			want: "sparse-image",
		},
		{
			name: "png image",
			data: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A},
			want: "png",
		},
		{
			name: "jpeg image",
			data: []byte{0xFF, 0xD8, 0xFF, 0xE0},
			want: "jpeg",
		},
		{
			name: "gzip stream",
			data: []byte{0x1F, 0x8B, 0x08, 0x00},
			want: "gzip",
		},
		{
			name: "tar archive magic at 257",
			data: func() []byte {
				d := make([]byte, 512)
				copy(d[257:], "ustar")
				return d
			}(),
			want: "tar",
		},
		{
			name: "plain text",
			data: []byte("device=sargo\nslot=_a\r\n"),
			want: LabelText,
		},
		{
			name: "generic binary",
			data: []byte{0x00, 0x01, 0x02, 0x03, 0xFE},
			want: LabelBinary,
		},
		{
			name: "empty buffer",
			data: nil,
			want: LabelEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectType(tt.data); got != tt.want {
				t.Errorf("DetectType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectTypeName(t *testing.T) {
	data := []byte{0x50, 0x4B, 0x03, 0x04}
	if got := DetectTypeName(data); got != "ZIP Archive" {
		t.Errorf("DetectTypeName() = %q, want %q", got, "ZIP Archive")
	}
}

func TestScanStride(t *testing.T) {
	// One ELF magic on the stride grid, one off it.
	data := make([]byte, 4096)
	elf := []byte{0x7F, 0x45, 0x4C, 0x46}
	copy(data[1024:], elf)
	copy(data[1500:], elf) // not stride-aligned, missed by design

	root := Scan(data, ScanOptions{Stride: 512})
	if root.Length != len(data) {
		t.Errorf("root length = %d, want %d", root.Length, len(data))
	}
	if len(root.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(root.Children))
	}
	child := root.Children[0]
	if child.Offset != 1024 || child.Label != "elf" {
		t.Errorf("child = %q at %d, want elf at 1024", child.Label, child.Offset)
	}
}

func TestScanCustomStride(t *testing.T) {
	data := make([]byte, 4096)
	copy(data[100:], []byte{0x7F, 0x45, 0x4C, 0x46})

	if got := Scan(data, ScanOptions{Stride: 512}); len(got.Children) != 0 {
		t.Fatalf("coarse scan found %d hits, want 0", len(got.Children))
	}
	if got := Scan(data, ScanOptions{Stride: 4}); len(got.Children) != 1 {
		t.Fatalf("dense scan found %d hits, want 1", len(got.Children))
	}
}

func TestScanFindsMagicAtZero(t *testing.T) {
	data := make([]byte, 2048)
	copy(data, "ANDROID!")

	root := Scan(data, ScanOptions{})
	if len(root.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(root.Children))
	}
	if root.Children[0].Offset != 0 || root.Children[0].Label != "boot-image" {
		t.Errorf("child = %+v, want boot-image at 0", root.Children[0])
	}
}

func TestExtractStrings(t *testing.T) {
	data := []byte("\x00\x01boot\x02ab\x03kernel-args=quiet\xFFok")
	matches, truncated := ExtractStrings(data, 4)

	if truncated {
		t.Error("truncated = true for a tiny buffer")
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(matches), matches)
	}
	if matches[0].Text != "boot" || matches[0].Offset != 2 {
		t.Errorf("match 0 = %+v, want boot at 2", matches[0])
	}
	if matches[1].Text != "kernel-args=quiet" {
		t.Errorf("match 1 = %+v", matches[1])
	}
	// "ab" (too short) and trailing "ok" (too short) are dropped.
}

func TestExtractStringsRunAtEnd(t *testing.T) {
	matches, _ := ExtractStrings([]byte("\x00tail-string"), 4)
	if len(matches) != 1 || matches[0].Text != "tail-string" {
		t.Fatalf("matches = %+v, want trailing run emitted", matches)
	}
}

func TestExtractStringsPreviewTruncation(t *testing.T) {
	run := bytes.Repeat([]byte("A"), 80)
	matches, _ := ExtractStrings(append([]byte{0}, run...), 4)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Length != 80 {
		t.Errorf("Length = %d, want full run 80", matches[0].Length)
	}
	if len(matches[0].Text) != 50 {
		t.Errorf("preview length = %d, want 50", len(matches[0].Text))
	}
}

func TestExtractStringsCap(t *testing.T) {
	// 1001 short runs separated by nulls.
	var data []byte
	for i := 0; i < MaxStringMatches+1; i++ {
		data = append(data, []byte("word")...)
		data = append(data, 0)
	}
	matches, truncated := ExtractStrings(data, 4)
	if len(matches) != MaxStringMatches {
		t.Errorf("got %d matches, want %d", len(matches), MaxStringMatches)
	}
	if !truncated {
		t.Error("truncated = false at the match cap")
	}
}

func TestExtractStringsCapWithBarrenTail(t *testing.T) {
	// Exactly MaxStringMatches runs, then a tail with nothing long
	// enough to report. The cap is hit, but no match was lost.
	var data []byte
	for i := 0; i < MaxStringMatches; i++ {
		data = append(data, []byte("word")...)
		data = append(data, 0)
	}
	data = append(data, []byte("ab\x01c\x02")...)

	matches, truncated := ExtractStrings(data, 4)
	if len(matches) != MaxStringMatches {
		t.Errorf("got %d matches, want %d", len(matches), MaxStringMatches)
	}
	if truncated {
		t.Error("truncated = true, but the tail holds no qualifying run")
	}
}

func TestSignatureDatabase(t *testing.T) {
	sigs, err := Signatures()
	if err != nil {
		t.Fatalf("Signatures() error: %v", err)
	}
	if len(sigs) == 0 {
		t.Fatal("signature database is empty")
	}
	for _, sig := range sigs {
		if sig.Label == "" || sig.Name == "" {
			t.Errorf("signature %+v missing name or label", sig)
		}
		if len(sig.Magic()) == 0 {
			t.Errorf("signature %q has no magic bytes", sig.Name)
		}
	}
}
