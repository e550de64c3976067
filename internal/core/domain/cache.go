package domain

import "time"

// CacheEntry is a previously optimized artifact keyed by its source signature.
type CacheEntry struct {
	// Key is the signature of source path, content and transform options.
	Key string `json:"key"`
	// Source is the project relative path the artifact was produced from.
	Source string `json:"source"`
	// Artifact holds the optimized bytes.
	Artifact []byte `json:"artifact"`
	// LastUsed is the time the artifact was stored.
	LastUsed time.Time `json:"last_used"`
}
