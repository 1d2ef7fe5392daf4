package models

// NoteEntry tracks one vault note in the file store consumed by the python
// companion scripts. Chunks holds the uuids of the note's embedded chunks in
// order; an empty slice means the note has not been chunked yet.
type NoteEntry struct {
	UUID         string   `json:"uuid"`
	Chunks       []string `json:"chunks"`
	ChunkSize    int      `json:"chunk_size"`
	ChunkOverlap int      `json:"chunk_overlap"`
}

// NoteStore maps note file names (vault-relative) to their entries.
type NoteStore map[string]*NoteEntry
