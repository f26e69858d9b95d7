package championship

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func standingFor(t *testing.T, table []ClasificationTeam, name string) ClasificationTeam {
	t.Helper()
	for _, row := range table {
		if row.TeamName == name {
			return row
		}
	}
	t.Fatalf("team %s not in table", name)
	return ClasificationTeam{}
}

func TestClasificationNoPlayedMatches(t *testing.T) {
	names := []string{"a", "b", "c"}
	matches := leagueMatches(names)

	table := computeClasification(names, matches)

	assert.Len(t, table, 3)
	for _, row := range table {
		assert.Equal(t, 0, row.Points)
		assert.Equal(t, 0, row.MatchesPlayed)
	}
}

func TestClasificationWinAndLoss(t *testing.T) {
	names := []string{"a", "b"}
	matches := []Match{
		playedMatch("a", "b", 3, 1),
		{Team1: "b", Team2: "a"},
	}

	table := computeClasification(names, matches)

	winner := standingFor(t, table, "a")
	loser := standingFor(t, table, "b")

	assert.Equal(t, 3, winner.Points)
	assert.Equal(t, 1, winner.Wins)
	assert.Equal(t, 1, winner.MatchesPlayed)

	assert.Equal(t, 0, loser.Points)
	assert.Equal(t, 1, loser.Looses)
	assert.Equal(t, 1, loser.MatchesPlayed)

	// Winner ranks first.
	assert.Equal(t, "a", table[0].TeamName)
}

func TestClasificationDraw(t *testing.T) {
	names := []string{"a", "b"}
	matches := []Match{playedMatch("a", "b", 2, 2)}

	table := computeClasification(names, matches)

	for _, name := range names {
		row := standingFor(t, table, name)
		assert.Equal(t, 1, row.Points)
		assert.Equal(t, 1, row.Draws)
		assert.Equal(t, 1, row.MatchesPlayed)
	}
}

func TestClasificationEachFixtureCountsOnce(t *testing.T) {
	// Both legs of the ordered pair, split one apiece.
	names := []string{"a", "b"}
	matches := []Match{
		playedMatch("a", "b", 1, 0),
		playedMatch("b", "a", 2, 0),
	}

	table := computeClasification(names, matches)

	for _, name := range names {
		row := standingFor(t, table, name)
		assert.Equal(t, 3, row.Points)
		assert.Equal(t, 2, row.MatchesPlayed)
		assert.Equal(t, 1, row.Wins)
		assert.Equal(t, 1, row.Looses)
	}
}

func TestClasificationSortsByPointsDescending(t *testing.T) {
	names := []string{"a", "b", "c"}
	matches := []Match{
		playedMatch("a", "b", 0, 1),
		playedMatch("a", "c", 0, 1),
		playedMatch("b", "c", 2, 0),
	}

	table := computeClasification(names, matches)

	assert.Equal(t, "b", table[0].TeamName)
	assert.Equal(t, 6, table[0].Points)
	assert.Equal(t, "c", table[1].TeamName)
	assert.Equal(t, 3, table[1].Points)
	assert.Equal(t, "a", table[2].TeamName)
	assert.Equal(t, 0, table[2].Points)
}

func TestNewPager(t *testing.T) {
	pager := newPager(45, 2, 20)

	assert.Equal(t, 45, pager.TotalItems)
	assert.Equal(t, 2, pager.CurrentPage)
	assert.Equal(t, 3, pager.TotalPages)
}
