package game

import (
	"slices"

	"github.com/quizrush/quizrush-backend/internal"
)

// Ranking builds the final leaderboard: one entry per member in join
// order, paired with its score (0 when absent), sorted descending by
// points. The sort is stable so ties keep join order, and score
// entries without a matching member are ignored. Callers must hold the
// room lock.
func Ranking(scores map[string]int, members []*internal.Player) []internal.RankEntry {
	ranking := make([]internal.RankEntry, 0, len(members))
	for _, member := range members {
		ranking = append(ranking, internal.RankEntry{
			Name:   member.Name,
			Points: scores[member.Id],
		})
	}

	slices.SortStableFunc(ranking, func(a, b internal.RankEntry) int {
		return b.Points - a.Points
	})

	return ranking
}
