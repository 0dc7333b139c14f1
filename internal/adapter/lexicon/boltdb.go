package lexicon

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"textlab/internal/domain"
	"textlab/internal/port"
)

// CurrentSchemaVersion is the on-disk layout version.
// Increment this when making breaking changes to the storage format.
const CurrentSchemaVersion = 1

var (
	bucketMeta       = []byte("meta")
	keySchemaVersion = []byte("schema_version")
	keyEntryCount    = []byte("entry_count")
	keyImportedAt    = []byte("imported_at")
)

func lemmaBucket(pos domain.PartOfSpeech) []byte {
	return []byte("lemmas_" + string(pos))
}

func exceptionBucket(pos domain.PartOfSpeech) []byte {
	return []byte("exc_" + string(pos))
}

// BoltIndex serves lookups from a bbolt database built by Import.
type BoltIndex struct {
	db *bbolt.DB
}

var _ port.LemmaIndex = (*BoltIndex)(nil)

// OpenBoltIndex opens path read-only and checks its schema version.
func OpenBoltIndex(path string) (*BoltIndex, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{ReadOnly: true, Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon db: %w", err)
	}

	info, err := readSchemaInfo(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	if info.Version != CurrentSchemaVersion {
		db.Close()
		return nil, fmt.Errorf("lexicon db %s has schema version %d, want %d; re-run 'textlab lexicon import'",
			path, info.Version, CurrentSchemaVersion)
	}

	return &BoltIndex{db: db}, nil
}

func (s *BoltIndex) Close() error {
	return s.db.Close()
}

func (s *BoltIndex) HasLemma(pos domain.PartOfSpeech, lemma string) (bool, error) {
	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(lemmaBucket(pos))
		if b == nil {
			return nil
		}
		found = b.Get([]byte(lemma)) != nil
		return nil
	})
	return found, err
}

func (s *BoltIndex) Exceptions(pos domain.PartOfSpeech, form string) ([]string, error) {
	var bases []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(exceptionBucket(pos))
		if b == nil {
			return nil
		}
		data := b.Get([]byte(form))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &bases)
	})
	return bases, err
}

// SchemaInfo describes an imported lexicon database.
type SchemaInfo struct {
	Version    int       `json:"version"`
	Entries    int       `json:"entries"`
	ImportedAt time.Time `json:"imported_at"`
}

// Info returns the metadata written at import time.
func (s *BoltIndex) Info() (*SchemaInfo, error) {
	return readSchemaInfo(s.db)
}

func readSchemaInfo(db *bbolt.DB) (*SchemaInfo, error) {
	var info SchemaInfo
	err := db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketMeta)
		if b == nil {
			return fmt.Errorf("lexicon db has no metadata; re-run 'textlab lexicon import'")
		}
		if data := b.Get(keySchemaVersion); data != nil {
			if err := json.Unmarshal(data, &info.Version); err != nil {
				return fmt.Errorf("invalid schema version: %w", err)
			}
		}
		if data := b.Get(keyEntryCount); data != nil {
			if err := json.Unmarshal(data, &info.Entries); err != nil {
				return fmt.Errorf("invalid entry count: %w", err)
			}
		}
		if data := b.Get(keyImportedAt); data != nil {
			if err := info.ImportedAt.UnmarshalText(data); err != nil {
				return fmt.Errorf("invalid import time: %w", err)
			}
		}
		return nil
	})
	return &info, err
}

// ProgressFunc is called after each written batch with the running total.
type ProgressFunc func(done, total int)

const importBatchSize = 1000

type importItem struct {
	bucket []byte
	key    string
	value  []byte
}

// Import writes entries into a new database at path, replacing any buckets
// left by an earlier import.
func Import(path string, e *Entries, progress ProgressFunc) error {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return fmt.Errorf("failed to open lexicon db: %w", err)
	}
	defer db.Close()

	err = db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketMeta}
		for _, pos := range domain.PartsOfSpeech {
			buckets = append(buckets, lemmaBucket(pos), exceptionBucket(pos))
		}
		for _, b := range buckets {
			if tx.Bucket(b) != nil {
				if err := tx.DeleteBucket(b); err != nil {
					return fmt.Errorf("failed to clear bucket %s: %w", b, err)
				}
			}
			if _, err := tx.CreateBucket(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	items, err := importItems(e)
	if err != nil {
		return err
	}

	for start := 0; start < len(items); start += importBatchSize {
		end := min(start+importBatchSize, len(items))
		err := db.Update(func(tx *bbolt.Tx) error {
			for _, it := range items[start:end] {
				if err := tx.Bucket(it.bucket).Put([]byte(it.key), it.value); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to write batch at %d: %w", start, err)
		}
		if progress != nil {
			progress(end, len(items))
		}
	}

	return db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketMeta)
		version, err := json.Marshal(CurrentSchemaVersion)
		if err != nil {
			return err
		}
		count, err := json.Marshal(len(items))
		if err != nil {
			return err
		}
		now, err := time.Now().UTC().MarshalText()
		if err != nil {
			return err
		}
		if err := b.Put(keySchemaVersion, version); err != nil {
			return err
		}
		if err := b.Put(keyEntryCount, count); err != nil {
			return err
		}
		return b.Put(keyImportedAt, now)
	})
}

// importItems flattens entries into sorted key order, which bbolt writes fastest.
func importItems(e *Entries) ([]importItem, error) {
	items := make([]importItem, 0, e.Len())
	for _, pos := range domain.PartsOfSpeech {
		lemmas := append([]string(nil), e.Lemmas[pos]...)
		sort.Strings(lemmas)
		for _, l := range lemmas {
			items = append(items, importItem{bucket: lemmaBucket(pos), key: l, value: []byte{1}})
		}

		forms := make([]string, 0, len(e.Exceptions[pos]))
		for f := range e.Exceptions[pos] {
			forms = append(forms, f)
		}
		sort.Strings(forms)
		for _, f := range forms {
			data, err := json.Marshal(e.Exceptions[pos][f])
			if err != nil {
				return nil, err
			}
			items = append(items, importItem{bucket: exceptionBucket(pos), key: f, value: data})
		}
	}
	return items, nil
}
