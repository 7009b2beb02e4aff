// Package migrate moves open entries between day files.
//
// The destination is saved before the source: if the process dies between
// the two writes, a migrated entry can appear in both files but is never
// lost. Duplication is visible on inspection; loss would not be.
package migrate

import (
	"errors"
	"fmt"
	"time"

	"github.com/avollmer/bujo/internal/storage"
	"github.com/avollmer/bujo/internal/timeutil"
)

// ErrSameDay is returned when source and destination are the same date.
var ErrSameDay = errors.New("source and destination are the same day")

// Result reports what a migration run moved.
type Result struct {
	Moved int
	From  time.Time
	To    time.Time
}

// Run moves open (not done) entries from the day file of `from` to the day
// file of `to`. When id is nonzero only that single entry is considered: a
// missing id is a NotFound error, while an id pointing at a done entry
// means there is nothing to migrate and reports zero moved.
//
// Migrated entries keep kind, priority, tags, text and notes; done is reset
// to false and new positional IDs are assigned by the destination file.
func Run(base string, from, to time.Time, id int) (Result, error) {
	res := Result{From: from, To: to}
	if timeutil.SameDay(from, to) {
		return res, ErrSameDay
	}

	src, err := storage.LoadDay(base, from)
	if err != nil {
		return res, err
	}

	var ids []int
	if id != 0 {
		e, err := src.Get(id)
		if err != nil {
			return res, err
		}
		if e.Done {
			return res, nil
		}
		ids = []int{id}
	} else {
		for _, e := range src.Entries() {
			if !e.Done {
				ids = append(ids, e.ID)
			}
		}
	}
	if len(ids) == 0 {
		return res, nil
	}

	dst, err := storage.LoadDay(base, to)
	if err != nil {
		return res, err
	}

	for _, i := range ids {
		e, err := src.Get(i)
		if err != nil {
			return res, err
		}
		e.Done = false
		dst.Append(e)
	}

	// Remove from the source highest ID first so the remaining selected
	// IDs stay valid while earlier ones are still pending.
	for i := len(ids) - 1; i >= 0; i-- {
		if _, err := src.Delete(ids[i]); err != nil {
			return res, err
		}
	}

	if err := dst.Save(base); err != nil {
		return res, fmt.Errorf("saving destination day: %w", err)
	}
	if err := src.Save(base); err != nil {
		return res, fmt.Errorf("saving source day: %w", err)
	}

	res.Moved = len(ids)
	return res, nil
}
