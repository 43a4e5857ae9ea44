package sigscan

import "fmt"

// DefaultStride is the signature-scan step. Checking only stride-aligned
// offsets trades completeness for throughput: a magic not aligned to the
// stride is missed, which is acceptable for the partition/container
// structures this scan exists to find. The stride is configurable per
// scan for callers that want a denser pass.
const DefaultStride = 512

// Node is one element of the detected structure tree. The tree is rooted
// at a node covering the whole file; each child is a signature hit.
type Node struct {
	Name     string  // Human-readable structure name
	Offset   int     // Start offset within the file
	Length   int     // Known length (magic length for signature hits)
	Label    string  // Short type label, empty for the root
	Children []*Node // Ordered by ascending offset
}

// Location renders the node's position as an offset/length descriptor
func (n *Node) Location() string {
	return fmt.Sprintf("0x%08X (+%d)", n.Offset, n.Length)
}

// ScanOptions control a structure scan
type ScanOptions struct {
	// Stride overrides DefaultStride when > 0
	Stride int
}

// Scan walks the buffer at a fixed stride and records every signature
// whose magic matches at a visited offset. The result is a one-level
// tree: the root spans the whole file and each hit becomes a child,
// ordered by offset. Offset 0 is always visited, so the container's own
// magic is never missed.
func Scan(data []byte, opts ScanOptions) *Node {
	stride := opts.Stride
	if stride <= 0 {
		stride = DefaultStride
	}

	root := &Node{
		Name:   "File",
		Offset: 0,
		Length: len(data),
	}

	sigs := mustSignatures()
	for off := 0; off < len(data); off += stride {
		for _, sig := range sigs {
			if sig.matchesAt(data, off) {
				root.Children = append(root.Children, &Node{
					Name:   sig.Name,
					Offset: off,
					Length: len(sig.magic),
					Label:  sig.Label,
				})
			}
		}
	}
	return root
}
