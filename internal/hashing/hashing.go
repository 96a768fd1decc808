// Package hashing provides position keys and repetition detection for the
// threefold draw rule.
package hashing

import (
	"hash/fnv"
	"strings"

	"github.com/lo9ud/comsci-su-obstacle-chess/internal/board"
)

// layoutText returns the board's piece and obstacle layout. The status line
// is excluded: two boards with the same layout but different clocks or
// reserves still count as the same position for repetition.
func layoutText(b *board.Board) string {
	text := b.Canonical()
	return text[:strings.LastIndexByte(text, '\n')+1]
}

// LayoutKey returns a hash of the board's layout, indexing the repetition
// tracker's buckets.
func LayoutKey(b *board.Board) uint64 {
	h := fnv.New64a()
	h.Write([]byte(layoutText(b)))
	return h.Sum64()
}

// layoutCount is one distinct layout sharing a key, with its occurrence
// count.
type layoutCount struct {
	text  string
	count int
}

// RepetitionTracker counts how many times each layout has occurred over the
// course of a game. Layouts are indexed by LayoutKey and confirmed against
// the exact layout text, so a key collision can never conflate two layouts.
type RepetitionTracker struct {
	buckets map[uint64][]layoutCount
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{buckets: make(map[uint64][]layoutCount)}
}

// Record registers one occurrence of the board's layout and returns the
// total number of occurrences including this one.
func (r *RepetitionTracker) Record(b *board.Board) int {
	key, text := LayoutKey(b), layoutText(b)
	bucket := r.buckets[key]
	for i := range bucket {
		if bucket[i].text == text {
			bucket[i].count++
			return bucket[i].count
		}
	}
	r.buckets[key] = append(bucket, layoutCount{text: text, count: 1})
	return 1
}

// Remove retracts one occurrence of the board's layout. Used when a move is
// undone.
func (r *RepetitionTracker) Remove(b *board.Board) {
	key, text := LayoutKey(b), layoutText(b)
	bucket := r.buckets[key]
	for i := range bucket {
		if bucket[i].text != text {
			continue
		}
		if bucket[i].count > 1 {
			bucket[i].count--
			return
		}
		bucket = append(bucket[:i], bucket[i+1:]...)
		if len(bucket) == 0 {
			delete(r.buckets, key)
		} else {
			r.buckets[key] = bucket
		}
		return
	}
}

// Count returns the number of recorded occurrences of the board's layout.
func (r *RepetitionTracker) Count(b *board.Board) int {
	key, text := LayoutKey(b), layoutText(b)
	for _, lc := range r.buckets[key] {
		if lc.text == text {
			return lc.count
		}
	}
	return 0
}

// Reset clears all recorded positions.
func (r *RepetitionTracker) Reset() {
	r.buckets = make(map[uint64][]layoutCount)
}
