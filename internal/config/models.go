package config

// Registry represents the entire user configuration file.
// This stores editor preferences and tuning knobs for the analysis passes.
type Registry struct {
	Version     int          `yaml:"version"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	// SignatureStride is the structure-scan step in bytes. Lower values
	// find unaligned magics at the cost of a slower pass.
	SignatureStride int `yaml:"signature_stride"`

	// LargeLoadThresholdMB is the file size (in MiB) above which a load
	// asks for confirmation before reading the whole file into memory.
	LargeLoadThresholdMB int `yaml:"large_load_threshold_mb"`

	// HistoryDepth is the number of undoable edits kept per session
	HistoryDepth int `yaml:"history_depth"`

	// MinStringLength is the shortest printable run the strings pass reports
	MinStringLength int `yaml:"min_string_length"`

	// BigEndian makes the data inspector decode most-significant byte
	// first by default.
	BigEndian bool `yaml:"big_endian"`
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Preferences: defaultPreferences(),
	}
}

func defaultPreferences() *Preferences {
	return &Preferences{
		SignatureStride:      512,
		LargeLoadThresholdMB: 500,
		HistoryDepth:         100,
		MinStringLength:      4,
	}
}

// LargeLoadThresholdBytes returns the confirmation threshold in bytes
func (p *Preferences) LargeLoadThresholdBytes() int64 {
	return int64(p.LargeLoadThresholdMB) * 1024 * 1024
}
