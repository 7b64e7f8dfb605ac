package store

import (
	"strings"
	"time"

	// Packages
	weather "github.com/mutablelogic/go-mcp-weather"
	cases "golang.org/x/text/cases"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Store is an immutable set of weather records, in insertion order.
// It is safe for concurrent use.
type Store struct {
	records []Record
	index   map[string]int
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a store with the given records. Keys are normalized and
// must be unique.
func New(records ...Record) (*Store, error) {
	self := &Store{
		records: make([]Record, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for _, record := range records {
		record.Key = Normalize(record.Key)
		if record.Key == "" {
			return nil, weather.ErrBadParameter.With("missing city key")
		}
		if record.City == "" {
			return nil, weather.ErrBadParameter.Withf("missing city name for %q", record.Key)
		}
		if _, exists := self.index[record.Key]; exists {
			return nil, weather.ErrConflict.Withf("duplicate city %q", record.Key)
		}
		self.index[record.Key] = len(self.records)
		self.records = append(self.records, record)
	}
	if len(self.records) == 0 {
		return nil, weather.ErrBadParameter.With("no cities")
	}
	return self, nil
}

// Default returns the store seeded with New York, London, Tokyo and Paris
func Default() *Store {
	self, err := New(defaultRecords...)
	if err != nil {
		panic(err)
	}
	return self
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Len returns the number of cities
func (s *Store) Len() int {
	return len(s.records)
}

// Keys returns the city keys in insertion order
func (s *Store) Keys() []string {
	keys := make([]string, len(s.records))
	for i, record := range s.records {
		keys[i] = record.Key
	}
	return keys
}

// Records returns a copy of the records in insertion order
func (s *Store) Records() []Record {
	return append([]Record(nil), s.records...)
}

// Get returns the record for a city, which is matched case-insensitively
func (s *Store) Get(city string) (Record, bool) {
	if i, exists := s.index[Normalize(city)]; exists {
		return s.records[i], true
	}
	return Record{}, false
}

// Snapshot returns the record for a city stamped with the given time,
// or ErrNotFound
func (s *Store) Snapshot(city string, now time.Time) (Snapshot, error) {
	record, exists := s.Get(city)
	if !exists {
		return Snapshot{}, weather.ErrNotFound.Withf("unknown city: %s", city)
	}
	return Snapshot{Record: record, Timestamp: now}, nil
}

// Normalize returns the lookup key for a city name: case folded, trimmed,
// with runs of whitespace replaced by underscores
func Normalize(city string) string {
	return strings.Join(strings.Fields(cases.Fold().String(city)), "_")
}
