package storage

import (
	"fmt"
	"os"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// Store persists a single JSON document made of named collections.
// Every mutation rewrites the whole document synchronously; the rewrite
// goes through a temp file and rename so a crash cannot leave a
// half-written document on disk. A mutex serializes the
// read-modify-write cycle of concurrent requests sharing the store.
type Store struct {
	path string
	mu   sync.Mutex
	log  *logrus.Logger
}

func NewStore(path string, logger *logrus.Logger) *Store {
	return &Store{
		path: path,
		log:  logger,
	}
}

// load reads the backing document. A missing file means empty
// collections, not a failure.
func (s *Store) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Warnf("Store: %s not found, starting with empty collections", s.path)
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("could not read %s: %w", s.path, err)
	}

	doc := map[string]json.RawMessage{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", s.path, err)
	}
	return doc, nil
}

func (s *Store) save(doc map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("could not encode document for %s: %w", s.path, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not replace %s: %w", s.path, err)
	}
	return nil
}

// Collection decodes one named collection into out. An absent collection
// leaves out untouched.
func (s *Store) Collection(name string, out interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	raw, ok := doc[name]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("could not decode collection %q in %s: %w", name, s.path, err)
	}
	return nil
}

// Append adds one record to a collection and persists the document.
// Records of other collections in the same document are preserved as-is.
func (s *Store) Append(name string, record interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	records := []json.RawMessage{}
	if raw, ok := doc[name]; ok {
		if err := json.Unmarshal(raw, &records); err != nil {
			return fmt.Errorf("could not decode collection %q in %s: %w", name, s.path, err)
		}
	}

	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not encode record for collection %q: %w", name, err)
	}
	records = append(records, encoded)

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("could not encode collection %q: %w", name, err)
	}
	doc[name] = raw

	if err := s.save(doc); err != nil {
		return err
	}
	s.log.Debugf("Store: appended record to collection %q in %s", name, s.path)
	return nil
}

// Replace overwrites a whole collection and persists the document.
func (s *Store) Replace(name string, records interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("could not encode collection %q: %w", name, err)
	}
	doc[name] = raw

	if err := s.save(doc); err != nil {
		return err
	}
	s.log.Debugf("Store: replaced collection %q in %s", name, s.path)
	return nil
}
