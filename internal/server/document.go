package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Document is the whole persisted state: every write replaces one of the two
// collections wholesale, there are no partial updates.
type Document struct {
	Notes     []json.RawMessage `json:"notes"`
	Templates []map[string]any  `json:"templates"`
}

// DocumentStore serialises access to the JSON document on disk. Writes go
// through a temp file and rename so a crash never leaves a half-written
// document behind.
type DocumentStore struct {
	mu   sync.Mutex
	path string
}

// NewDocumentStore opens the store, creating an empty document when the file
// does not exist yet.
func NewDocumentStore(path string) (*DocumentStore, error) {
	store := &DocumentStore{path: path}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := store.write(emptyDocument()); err != nil {
			return nil, fmt.Errorf("server: initialise document: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("server: stat document: %w", err)
	}
	return store, nil
}

// Load reads the current document.
func (s *DocumentStore) Load() (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// ReplaceNotes swaps the note collection.
func (s *DocumentStore) ReplaceNotes(notes []json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Notes = notes
	return s.write(doc)
}

// UpsertTemplate inserts or replaces a template by id.
func (s *DocumentStore) UpsertTemplate(tpl map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	id, _ := tpl["id"].(string)
	replaced := false
	for i, existing := range doc.Templates {
		if existingID, _ := existing["id"].(string); existingID == id {
			doc.Templates[i] = tpl
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Templates = append(doc.Templates, tpl)
	}
	return s.write(doc)
}

// DeleteTemplate removes a template by id. Removing an absent id is not an
// error.
func (s *DocumentStore) DeleteTemplate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	kept := doc.Templates[:0]
	for _, tpl := range doc.Templates {
		if existingID, _ := tpl["id"].(string); existingID != id {
			kept = append(kept, tpl)
		}
	}
	doc.Templates = kept
	return s.write(doc)
}

func (s *DocumentStore) read() (Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return emptyDocument(), nil
		}
		return Document{}, fmt.Errorf("server: read document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("server: parse document: %w", err)
	}
	if doc.Notes == nil {
		doc.Notes = []json.RawMessage{}
	}
	if doc.Templates == nil {
		doc.Templates = []map[string]any{}
	}
	return doc, nil
}

func (s *DocumentStore) write(doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("server: encode document: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("server: create data dir: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("server: write document: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("server: replace document: %w", err)
	}
	return nil
}

func emptyDocument() Document {
	return Document{
		Notes:     []json.RawMessage{},
		Templates: []map[string]any{},
	}
}
