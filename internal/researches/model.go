package researches

import "time"

// Research represents an ingested document with its extracted abstract and
// generated summary. Rows are created once at ingest and never mutated.
type Research struct {
	ID        string
	Title     *string
	Abstract  string
	FileName  string
	Summary   string
	CreatedAt time.Time
}
