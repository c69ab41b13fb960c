package testutil

import "sync"

// Journal records calls from several mocks in the order they happened, so a
// test can assert phase ordering across collaborators.
type Journal struct {
	mu      sync.Mutex
	entries []string
}

func NewJournal() *Journal {
	return &Journal{}
}

func (j *Journal) Add(entry string) {
	if j == nil {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, entry)
}

// Entries returns a copy of the recorded entries.
func (j *Journal) Entries() []string {
	if j == nil {
		return nil
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.entries...)
}

// Count returns how many times entry was recorded.
func (j *Journal) Count(entry string) int {
	n := 0
	for _, e := range j.Entries() {
		if e == entry {
			n++
		}
	}
	return n
}

// Index returns the position of the first occurrence of entry, or -1.
func (j *Journal) Index(entry string) int {
	for i, e := range j.Entries() {
		if e == entry {
			return i
		}
	}
	return -1
}
