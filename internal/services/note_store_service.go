package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"athena/internal/events"
	"athena/internal/fsx"
	"athena/internal/models"
	"athena/internal/notes"
)

const storeFileName = "file_store.json"

var ErrNoteStoreMissing = errors.New("note store does not exist")

// NoteStoreService maintains the note file store the python companion reads:
// a JSON map of vault-relative note paths to their uuid, chunk ids and chunk
// parameters.
type NoteStoreService struct {
	context context.Context
	vault   *VaultService
}

func NewNoteStoreService(vault *VaultService) *NoteStoreService {
	return &NoteStoreService{vault: vault}
}

func (n *NoteStoreService) Startup(ctx context.Context) {
	n.context = ctx
}

// StorePath returns the file store location inside the vault.
func (n *NoteStoreService) StorePath() string {
	return filepath.Join(n.vault.PythonDir(), storeFileName)
}

// Exists reports whether the file store has been created.
func (n *NoteStoreService) Exists() bool {
	_, err := os.Stat(n.StorePath())
	return err == nil
}

// Create writes a fresh empty store, overwriting any existing one.
func (n *NoteStoreService) Create() error {
	return n.Save(models.NoteStore{})
}

// Load reads the store from disk. Returns ErrNoteStoreMissing when it has
// not been created yet.
func (n *NoteStoreService) Load() (models.NoteStore, error) {
	data, err := os.ReadFile(n.StorePath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoteStoreMissing
	}
	if err != nil {
		return nil, fmt.Errorf("read note store: %w", err)
	}

	var store models.NoteStore
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("parse note store: %w", err)
	}
	return store, nil
}

// Save writes the whole store atomically. The python side may read the file
// at any time, so a half-written store is never visible.
func (n *NoteStoreService) Save(store models.NoteStore) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal note store: %w", err)
	}
	return fsx.AtomicWrite(n.StorePath(), data, 0o644)
}

// RegisterNote ensures the note has a store entry, assigning a uuid on first
// sight. Returns the entry either way.
func (n *NoteStoreService) RegisterNote(fileName string) (*models.NoteEntry, error) {
	store, err := n.Load()
	if errors.Is(err, ErrNoteStoreMissing) {
		store = models.NoteStore{}
	} else if err != nil {
		return nil, err
	}

	if entry, ok := store[fileName]; ok {
		return entry, nil
	}

	entry := &models.NoteEntry{
		UUID:   uuid.NewString(),
		Chunks: []string{},
	}
	store[fileName] = entry
	if err := n.Save(store); err != nil {
		return nil, err
	}
	return entry, nil
}

// ChunkNote splits the note into chunks, assigns chunk uuids and records them
// in the store. Already-chunked notes are left untouched and return their
// recorded chunks. Returns the chunk texts keyed by chunk id, in order.
func (n *NoteStoreService) ChunkNote(fileName string) ([]notes.Chunk, error) {
	store, err := n.Load()
	if errors.Is(err, ErrNoteStoreMissing) {
		store = models.NoteStore{}
	} else if err != nil {
		return nil, err
	}

	entry, ok := store[fileName]
	if !ok {
		entry = &models.NoteEntry{UUID: uuid.NewString(), Chunks: []string{}}
		store[fileName] = entry
	}

	content, err := os.ReadFile(filepath.Join(n.vault.BasePath(), filepath.FromSlash(fileName)))
	if err != nil {
		return nil, fmt.Errorf("read note: %w", err)
	}

	texts := notes.Split(string(content), notes.DefaultChunkSize, notes.DefaultChunkOverlap)
	chunks := make([]notes.Chunk, 0, len(texts))

	if len(entry.Chunks) == len(texts) && len(entry.Chunks) > 0 {
		// Note was chunked before with the same outcome; reuse the ids.
		for i, text := range texts {
			chunks = append(chunks, notes.Chunk{ID: entry.Chunks[i], Text: text})
		}
		return chunks, nil
	}

	entry.Chunks = entry.Chunks[:0]
	for _, text := range texts {
		id := uuid.NewString()
		entry.Chunks = append(entry.Chunks, id)
		chunks = append(chunks, notes.Chunk{ID: id, Text: text})
	}
	entry.ChunkSize = notes.DefaultChunkSize
	entry.ChunkOverlap = notes.DefaultChunkOverlap

	if err := n.Save(store); err != nil {
		return nil, err
	}
	return chunks, nil
}

// IndexVault registers every markdown note in the vault and chunks the ones
// not chunked yet. Progress goes out as notice events.
func (n *NoteStoreService) IndexVault() (int, error) {
	noteNames, err := n.vault.ListMarkdownNotes()
	if err != nil {
		return 0, err
	}

	if !n.Exists() {
		if err := n.Create(); err != nil {
			return 0, err
		}
	}

	indexed := 0
	for _, name := range noteNames {
		if _, err := n.RegisterNote(name); err != nil {
			return indexed, err
		}
		if _, err := n.ChunkNote(name); err != nil {
			events.Emit(n.context, events.PluginNotice,
				events.NewWarn(fmt.Sprintf("skipping %s: %v", name, err)))
			continue
		}
		indexed++
	}

	events.Emit(n.context, events.PluginNotice,
		events.NewInfo(fmt.Sprintf("indexed %d notes", indexed)))
	return indexed, nil
}
