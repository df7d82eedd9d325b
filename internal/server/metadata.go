package server

import "sync"

// Property names the finalize workflow understands. The store itself is a
// free-form string-keyed bag; these are the five fields it consumes when
// present.
const (
	// MetaSourceRect is the extraction rectangle on the source image,
	// formatted "x0,y0,x1,y1".
	MetaSourceRect = "source_rect"

	// MetaShape is the selection shape tag, "rectangle" or "circle".
	MetaShape = "shape"

	// MetaZoom is the magnification factor, formatted as a decimal.
	MetaZoom = "zoom"

	// MetaSourceImage is the canonical identity of the source image.
	MetaSourceImage = "source_image"

	// MetaArtifact is the path the extracted (already resampled) inset
	// bitmap was saved to.
	MetaArtifact = "artifact_path"
)

// MetadataStore is an in-process property bag attaching string key/value
// metadata to extracted-inset artifacts. It is safe for concurrent use.
//
// The engine neither reads nor writes this store; only the tool handlers
// do, to reconstruct source geometry during finalize.
type MetadataStore struct {
	mu      sync.RWMutex
	entries map[string]map[string]string
}

// NewMetadataStore returns an empty store.
func NewMetadataStore() *MetadataStore {
	return &MetadataStore{entries: make(map[string]map[string]string)}
}

// Set merges props into the bag stored under key, creating it if absent.
func (m *MetadataStore) Set(key string, props map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bag, ok := m.entries[key]
	if !ok {
		bag = make(map[string]string, len(props))
		m.entries[key] = bag
	}
	for k, v := range props {
		bag[k] = v
	}
}

// Get returns a copy of the bag stored under key.
func (m *MetadataStore) Get(key string) (map[string]string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	bag, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(bag))
	for k, v := range bag {
		out[k] = v
	}
	return out, true
}

// Delete removes the bag stored under key; unknown keys are ignored.
func (m *MetadataStore) Delete(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}
