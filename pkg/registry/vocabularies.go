package registry

import (
	"sort"
	"sync"
)

// Vocabularies is a thread-safe collection of named vocabularies.
type Vocabularies struct {
	mu     sync.RWMutex
	byName map[string]Vocabulary
}

// NewVocabularies creates a Vocabularies collection from a map.
func NewVocabularies(vocabs map[string]Vocabulary) *Vocabularies {
	byName := make(map[string]Vocabulary, len(vocabs))
	for name, vocab := range vocabs {
		byName[name] = vocab
	}
	return &Vocabularies{byName: byName}
}

// Get returns a vocabulary by name.
func (v *Vocabularies) Get(name string) (Vocabulary, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	vocab, ok := v.byName[name]
	return vocab, ok
}

// Len returns the number of vocabularies.
func (v *Vocabularies) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.byName)
}

// Names returns all vocabulary names, sorted for stable iteration.
func (v *Vocabularies) Names() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	names := make([]string, 0, len(v.byName))
	for name := range v.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
