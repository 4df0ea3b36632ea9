package game

import (
	"math/rand"
	"sort"

	"qliz/internal/domain"
)

// Rankings orders entries by score descending, then total time ascending,
// and truncates to limit. The sort is stable so ties keep insertion order.
func Rankings(sb domain.Scoreboard, limit int) []domain.ScoreboardEntry {
	entries := make([]domain.ScoreboardEntry, len(sb.Scores))
	copy(entries, sb.Scores)

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].TotalTime < entries[j].TotalTime
	})

	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// IsHighScore reports whether entry beats every score already on the board:
// true for the first entry ever, for a strictly better score, or for a tied
// score with a strictly faster time. existing is the board before the entry
// was appended.
func IsHighScore(existing []domain.ScoreboardEntry, entry domain.ScoreboardEntry) bool {
	if len(existing) == 0 {
		return true
	}

	best := Rankings(domain.Scoreboard{Scores: existing}, 1)[0]
	if entry.Score > best.Score {
		return true
	}
	return entry.Score == best.Score && entry.TotalTime < best.TotalTime
}

// RandomEntry picks one entry uniformly, for the lucky-winner draw. ok is
// false on an empty board.
func RandomEntry(rnd *rand.Rand, entries []domain.ScoreboardEntry) (domain.ScoreboardEntry, bool) {
	if len(entries) == 0 {
		return domain.ScoreboardEntry{}, false
	}
	return entries[rnd.Intn(len(entries))], true
}
