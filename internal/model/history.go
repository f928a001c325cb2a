package model

import (
	"time"

	"github.com/google/uuid"
)

// MaxLogRecords caps the history log; the oldest records are trimmed first.
const MaxLogRecords = 500

// NameRecord is one generated name kept in the history log.
type NameRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Client    string `json:"client"`
	Brand     string `json:"brand"`
	Project   string `json:"project"`
	Medium    string `json:"medium"`
	Material  string `json:"material"`
	CreatedAt string `json:"created_at"`
}

// NewNameRecord creates a record for a generated name and the selection
// that produced it.
func NewNameRecord(name string, sel Selection) NameRecord {
	return NameRecord{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Client:    sel.Client,
		Brand:     sel.Brand,
		Project:   sel.Project,
		Medium:    sel.Medium,
		Material:  sel.Material,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// NameLog holds the generated-name history, newest last.
type NameLog struct {
	Records []NameRecord `json:"records"`
}

// NewNameLog creates an empty log.
func NewNameLog() NameLog {
	return NameLog{Records: []NameRecord{}}
}

// Append adds a record to the log, trimming the oldest entries when the
// log exceeds MaxLogRecords.
func (l *NameLog) Append(rec NameRecord) {
	l.Records = append(l.Records, rec)
	if len(l.Records) > MaxLogRecords {
		l.Records = l.Records[len(l.Records)-MaxLogRecords:]
	}
}

// Remove deletes the record with the given ID. Returns true if it existed.
func (l *NameLog) Remove(id string) bool {
	for i, rec := range l.Records {
		if rec.ID == id {
			l.Records = append(l.Records[:i], l.Records[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all records.
func (l *NameLog) Clear() {
	l.Records = []NameRecord{}
}

// Len returns the number of records in the log.
func (l *NameLog) Len() int {
	return len(l.Records)
}
