package engine

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ShortcutStore is a pluggable word-expansion lookup, consulted on
// word-commit boundaries when EngineConfig.ShortcutsEnabled is set.
// Hosts may supply their own implementation (e.g. backed by a running
// database) instead of the two provided here.
type ShortcutStore interface {
	Lookup(word string) (expansion string, ok bool)
}

// MapShortcutStore is an in-memory ShortcutStore, the default when no
// persistent store is configured.
type MapShortcutStore struct {
	entries map[string]string
}

// NewMapShortcutStore builds a store from a plain map.
func NewMapShortcutStore(entries map[string]string) *MapShortcutStore {
	if entries == nil {
		entries = map[string]string{}
	}
	return &MapShortcutStore{entries: entries}
}

// Lookup implements ShortcutStore.
func (s *MapShortcutStore) Lookup(word string) (string, bool) {
	v, ok := s.entries[word]
	return v, ok
}

// Set adds or overwrites one shortcut mapping.
func (s *MapShortcutStore) Set(word, expansion string) {
	s.entries[word] = expansion
}

// YAMLShortcutStore is a file-backed ShortcutStore, loaded once at
// startup from a flat `shortcut: expansion` YAML document.
type YAMLShortcutStore struct {
	*MapShortcutStore
}

// LoadYAMLShortcutStore reads and parses path into a YAMLShortcutStore.
func LoadYAMLShortcutStore(path string) (*YAMLShortcutStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	entries := map[string]string{}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return &YAMLShortcutStore{MapShortcutStore: NewMapShortcutStore(entries)}, nil
}
