package sigscan

import (
	_ "embed"
	"encoding/hex"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed signatures.yaml
var signaturesYAML []byte

// Signature is one entry of the magic-byte database.
type Signature struct {
	// Name is the human-readable format name (e.g., "Android Boot Image")
	Name string `yaml:"name"`

	// Label is the short machine-friendly type label (e.g., "boot-image")
	Label string `yaml:"label"`

	// MagicHex is the magic byte sequence as a hex string
	MagicHex string `yaml:"magic"`

	// Offset is where the magic sits for whole-file type detection.
	// Most formats carry their magic at offset 0; tar's "ustar" sits at 257.
	Offset int `yaml:"offset"`

	// Description provides details about the format
	Description string `yaml:"description,omitempty"`

	// magic is the decoded MagicHex
	magic []byte
}

// Magic returns the decoded magic byte sequence
func (s *Signature) Magic() []byte {
	return s.magic
}

// matchesAt reports whether the signature's magic appears at off in data
func (s *Signature) matchesAt(data []byte, off int) bool {
	if off < 0 || off+len(s.magic) > len(data) {
		return false
	}
	for i, m := range s.magic {
		if data[off+i] != m {
			return false
		}
	}
	return true
}

// signatureDBContainer is for YAML unmarshaling
type signatureDBContainer struct {
	Signatures []*Signature `yaml:"signatures"`
}

var (
	sigDB     []*Signature
	sigDBOnce sync.Once
	sigDBErr  error
)

// Signatures returns the built-in signature table in database order.
// The embedded YAML is parsed once; subsequent calls return the cached
// table.
func Signatures() ([]*Signature, error) {
	sigDBOnce.Do(func() {
		var container signatureDBContainer
		if err := yaml.Unmarshal(signaturesYAML, &container); err != nil {
			sigDBErr = fmt.Errorf("failed to parse signature database: %w", err)
			return
		}
		for _, sig := range container.Signatures {
			magic, err := hex.DecodeString(sig.MagicHex)
			if err != nil {
				sigDBErr = fmt.Errorf("signature %q has invalid magic %q: %w", sig.Name, sig.MagicHex, err)
				return
			}
			if len(magic) == 0 {
				sigDBErr = fmt.Errorf("signature %q has empty magic", sig.Name)
				return
			}
			sig.magic = magic
		}
		sigDB = container.Signatures
	})
	return sigDB, sigDBErr
}

// mustSignatures returns the signature table, panicking on a corrupt
// embedded database. The database ships inside the binary, so a parse
// failure is a build defect, not a runtime condition.
func mustSignatures() []*Signature {
	sigs, err := Signatures()
	if err != nil {
		panic(err)
	}
	return sigs
}
