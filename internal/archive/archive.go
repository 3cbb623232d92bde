// Package archive persists finished self-play games to an embedded
// key-value store, one JSON record per game keyed by a generated game ID —
// the same db.Update/txn.Set shape the teacher's pack-mate uses for its own
// local persistence, repurposed here from user preferences/stats to a game
// archive.
package archive

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const keyPrefix = "game:"

// GameRecord is one archived self-play game.
type GameRecord struct {
	ID          string    `json:"id"`
	StartFEN    string    `json:"start_fen"`
	PGN         string    `json:"pgn"`
	Result      string    `json:"result"`
	Plies       int       `json:"plies"`
	NodesSearch uint64    `json:"nodes_searched"`
	FinalScore  int32     `json:"final_score"`
	FinishedAt  time.Time `json:"finished_at"`
}

// Archive wraps a BadgerDB instance dedicated to self-play game records.
type Archive struct {
	db *badger.DB
}

// Open opens (creating if necessary) a badger-backed archive at dir.
func Open(dir string) (*Archive, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Archive{db: db}, nil
}

// Close releases the underlying database.
func (a *Archive) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Save mints a fresh game ID, stamps FinishedAt, and persists rec.
func (a *Archive) Save(rec GameRecord) (string, error) {
	rec.ID = uuid.NewString()
	rec.FinishedAt = time.Now()

	data, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	err = a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+rec.ID), data)
	})
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// Load reads back a single archived game by ID.
func (a *Archive) Load(id string) (GameRecord, error) {
	var rec GameRecord
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	return rec, err
}

// All returns every archived game, in no particular order.
func (a *Archive) All() ([]GameRecord, error) {
	var out []GameRecord
	err := a.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.ValidForPrefix([]byte(keyPrefix)); it.Next() {
			var rec GameRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	return out, err
}
