package tally

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hferdian/votely/catalog"
	"github.com/hferdian/votely/models"
)

var ErrAlreadyVoted = errors.New("identity has already voted")

type bucket struct {
	name  string
	color string
	count int
}

// Board fuses the voter registry and the tally behind a single lock, so the
// membership check and the count increment are indivisible. Invariant: the
// sum of all bucket counts equals the registry size at every instant the
// lock is not held.
type Board struct {
	mu      sync.RWMutex
	voters  map[string]struct{}
	buckets map[int]*bucket
}

func NewBoard() *Board {
	return &Board{
		voters:  make(map[string]struct{}),
		buckets: make(map[int]*bucket),
	}
}

// CastResult carries everything the caller needs to publish after a
// successful cast. Both fields are computed under the lock, so publishing
// them later can never expose partial state.
type CastResult struct {
	Event    models.VoteEvent
	Snapshot models.Snapshot
}

// CastVote atomically registers the identity and increments the candidate's
// count. Exactly one call per identity ever succeeds; the rest fail with
// ErrAlreadyVoted and change nothing.
func (b *Board) CastVote(identity, displayName string, cand catalog.Candidate) (CastResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, voted := b.voters[identity]; voted {
		return CastResult{}, ErrAlreadyVoted
	}

	b.voters[identity] = struct{}{}
	bk, ok := b.buckets[cand.ID]
	if !ok {
		bk = &bucket{name: cand.Name, color: cand.Color}
		b.buckets[cand.ID] = bk
	}
	bk.count++

	return CastResult{
		Event: models.VoteEvent{
			CandidateName:    cand.Name,
			VoterDisplayName: displayName,
			Timestamp:        time.Now().UTC(),
			NewTotal:         b.totalLocked(),
		},
		Snapshot: b.snapshotLocked(),
	}, nil
}

// HasVoted reports whether the identity has completed a vote.
func (b *Board) HasVoted(identity string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, voted := b.voters[identity]
	return voted
}

// Snapshot returns a consistent copy of the current tally.
func (b *Board) Snapshot() models.Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshotLocked()
}

// Reset clears the registry and the tally together and returns the empty
// snapshot to publish. No reader can observe one cleared without the other.
func (b *Board) Reset() models.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.voters = make(map[string]struct{})
	b.buckets = make(map[int]*bucket)
	return b.snapshotLocked()
}

// Export builds an immutable point-in-time snapshot with per-candidate
// percentages for the admin download. State is not mutated.
func (b *Board) Export(exportedBy string) models.ExportDocument {
	b.mu.RLock()
	defer b.mu.RUnlock()

	total := b.totalLocked()
	entries := make([]models.ExportEntry, 0, len(b.buckets))
	for id, bk := range b.buckets {
		pct := "0.00"
		if total > 0 {
			pct = fmt.Sprintf("%.2f", float64(bk.count)/float64(total)*100)
		}
		entries = append(entries, models.ExportEntry{
			CandidateID: id,
			Candidate:   bk.name,
			Votes:       bk.count,
			Percentage:  pct,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CandidateID < entries[j].CandidateID })

	return models.ExportDocument{
		Timestamp:  time.Now().UTC(),
		TotalVotes: total,
		Results:    entries,
		ExportedBy: exportedBy,
	}
}

func (b *Board) snapshotLocked() models.Snapshot {
	results := make([]models.TallyEntry, 0, len(b.buckets))
	for id, bk := range b.buckets {
		results = append(results, models.TallyEntry{
			CandidateID: id,
			Candidate:   bk.name,
			Votes:       bk.count,
			Color:       bk.color,
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].CandidateID < results[j].CandidateID })

	return models.Snapshot{
		Results:      results,
		TotalVotes:   b.totalLocked(),
		ActiveVoters: len(b.voters),
	}
}

func (b *Board) totalLocked() int {
	total := 0
	for _, bk := range b.buckets {
		total += bk.count
	}
	return total
}
