package game

import (
	"testing"

	"github.com/quizrush/quizrush-backend/internal"
)

func TestRanking_SortsDescendingByPoints(t *testing.T) {
	members := []*internal.Player{
		{Id: "a", Name: "Ana"},
		{Id: "b", Name: "Bruno"},
		{Id: "c", Name: "Clara"},
	}
	scores := map[string]int{"a": 5, "b": 12, "c": 7}

	ranking := Ranking(scores, members)

	want := []internal.RankEntry{
		{Name: "Bruno", Points: 12},
		{Name: "Clara", Points: 7},
		{Name: "Ana", Points: 5},
	}
	if len(ranking) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(ranking))
	}
	for i := range want {
		if ranking[i] != want[i] {
			t.Fatalf("entry %d: expected %+v, got %+v", i, want[i], ranking[i])
		}
	}
}

func TestRanking_TiesKeepJoinOrder(t *testing.T) {
	members := []*internal.Player{
		{Id: "a", Name: "Ana"},
		{Id: "b", Name: "Bruno"},
		{Id: "c", Name: "Clara"},
	}
	scores := map[string]int{"a": 3, "b": 9, "c": 3}

	ranking := Ranking(scores, members)

	if ranking[0].Name != "Bruno" {
		t.Fatalf("expected Bruno first, got %+v", ranking[0])
	}
	if ranking[1].Name != "Ana" || ranking[2].Name != "Clara" {
		t.Fatalf("tied players must keep join order, got %+v", ranking[1:])
	}
}

func TestRanking_MissingScoreCountsAsZero(t *testing.T) {
	members := []*internal.Player{
		{Id: "a", Name: "Ana"},
		{Id: "b", Name: "Bruno"},
	}
	scores := map[string]int{"a": 2}

	ranking := Ranking(scores, members)

	if len(ranking) != 2 {
		t.Fatalf("expected every member ranked, got %d entries", len(ranking))
	}
	if ranking[1].Name != "Bruno" || ranking[1].Points != 0 {
		t.Fatalf("member without a score must rank with 0 points, got %+v", ranking[1])
	}
}

func TestRanking_IgnoresScoresWithoutMember(t *testing.T) {
	members := []*internal.Player{
		{Id: "a", Name: "Ana"},
	}
	scores := map[string]int{"a": 4, "gone": 99}

	ranking := Ranking(scores, members)

	if len(ranking) != 1 {
		t.Fatalf("expected only current members ranked, got %d entries", len(ranking))
	}
	if ranking[0].Name != "Ana" || ranking[0].Points != 4 {
		t.Fatalf("expected Ana with 4 points, got %+v", ranking[0])
	}
}

func TestRanking_EmptyMembership(t *testing.T) {
	ranking := Ranking(map[string]int{}, nil)
	if len(ranking) != 0 {
		t.Fatalf("expected empty ranking, got %d entries", len(ranking))
	}
}
