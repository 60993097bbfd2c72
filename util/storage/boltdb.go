package storage

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"github.com/boltdb/bolt"
	"github.com/lsulibraries/ldlpost/results"
)

const RUNS_BUCKET = "runs"
const SPECIAL_BUCKET = "special"
const LAST_RUN = "last run"

// Keys sort in the order runs started.
const keyTimeFormat = "20060102T150405.000000000Z"

// RunHistory is a bolt database, which is a single-file key-value
// store, holding the summary of every post-processing run. It
// answers the questions that come up after a migration batch:
// which runs produced which CSV, and which objects in them were
// unclassified or ambiguous.
type RunHistory struct {
	db       *bolt.DB
	filePath string
}

// NewRunHistory opens a bolt database, creating the DB file if it
// doesn't already exist.
func NewRunHistory(filePath string) (runHistory *RunHistory, err error) {
	db, err := bolt.Open(filePath, 0644, nil)
	if err == nil {
		runHistory = &RunHistory{
			db:       db,
			filePath: filePath,
		}
		err = runHistory.initBuckets()
	}
	return runHistory, err
}

func (runHistory *RunHistory) initBuckets() error {
	err := runHistory.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(RUNS_BUCKET))
		if err != nil {
			return fmt.Errorf("Error creating runs bucket: %s", err)
		}
		_, err = tx.CreateBucketIfNotExists([]byte(SPECIAL_BUCKET))
		if err != nil {
			return fmt.Errorf("Error creating special bucket: %s", err)
		}
		return nil
	})
	return err
}

// FilePath returns the path to the bolt DB file.
func (runHistory *RunHistory) FilePath() string {
	return runHistory.filePath
}

// Close closes the bolt database.
func (runHistory *RunHistory) Close() {
	runHistory.db.Close()
}

// RunKey returns the key under which runSummary is saved: its start
// time followed by its RunId.
func RunKey(runSummary *results.RunSummary) string {
	return fmt.Sprintf("%s_%s",
		runSummary.Summary.StartedAt.UTC().Format(keyTimeFormat), runSummary.RunId)
}

// Save saves runSummary and records it as the most recent run.
// Saving the same run twice overwrites the first copy.
func (runHistory *RunHistory) Save(runSummary *results.RunSummary) error {
	var byteSlice []byte
	buf := bytes.NewBuffer(byteSlice)
	encoder := gob.NewEncoder(buf)
	err := encoder.Encode(runSummary)
	if err != nil {
		return err
	}
	key := RunKey(runSummary)
	return runHistory.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(RUNS_BUCKET))
		if err := bucket.Put([]byte(key), buf.Bytes()); err != nil {
			return err
		}
		return tx.Bucket([]byte(SPECIAL_BUCKET)).Put([]byte(LAST_RUN), []byte(key))
	})
}

// GetRunSummary returns the run summary saved under key. If key is
// not found, this returns nil and no error.
func (runHistory *RunHistory) GetRunSummary(key string) (*results.RunSummary, error) {
	var runSummary *results.RunSummary
	err := runHistory.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(RUNS_BUCKET))
		var err error
		runSummary, err = decode(bucket.Get([]byte(key)))
		return err
	})
	return runSummary, err
}

// LastRunSummary returns the most recently saved run summary, or nil
// if nothing has been saved.
func (runHistory *RunHistory) LastRunSummary() (*results.RunSummary, error) {
	key := runHistory.getSpecial(LAST_RUN)
	if key == "" {
		return nil, nil
	}
	return runHistory.GetRunSummary(key)
}

// ForEach calls the specified function for each saved run, oldest
// first. It stops at the first error fn returns.
func (runHistory *RunHistory) ForEach(fn func(key string, runSummary *results.RunSummary) error) error {
	return runHistory.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(RUNS_BUCKET))
		return bucket.ForEach(func(k, v []byte) error {
			runSummary, err := decode(v)
			if err != nil {
				return fmt.Errorf("Cannot decode run %s: %v", string(k), err)
			}
			return fn(string(k), runSummary)
		})
	})
}

// Keys returns a list of all run keys in the database, oldest first.
func (runHistory *RunHistory) Keys() []string {
	keys := make([]string, 0)
	runHistory.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(RUNS_BUCKET))
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			keys = append(keys, string(k))
		}
		return nil
	})
	return keys
}

func decode(value []byte) (*results.RunSummary, error) {
	if len(value) == 0 {
		return nil, nil
	}
	runSummary := &results.RunSummary{}
	decoder := gob.NewDecoder(bytes.NewBuffer(value))
	if err := decoder.Decode(runSummary); err != nil {
		return nil, err
	}
	return runSummary, nil
}

// getSpecial is for internal use, to retrieve special keys, like the
// last run key.
func (runHistory *RunHistory) getSpecial(key string) string {
	value := make([]byte, 0)
	_ = runHistory.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(SPECIAL_BUCKET))
		value = append(value, bucket.Get([]byte(key))...)
		return nil
	})
	return string(value)
}
