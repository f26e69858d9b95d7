package championship

import (
	"testing"

	"github.com/matchday/api-server/internals/apperr"

	"github.com/stretchr/testify/assert"
)

func playedMatch(team1, team2 string, result1, result2 int) Match {
	return Match{Team1: team1, Team2: team2, Result1: &result1, Result2: &result2}
}

func TestNextPhase(t *testing.T) {
	tests := []struct {
		phase string
		next  string
		ok    bool
	}{
		{PhaseRoundOf32, PhaseRoundOf16, true},
		{PhaseRoundOf16, PhaseQuarterfinals, true},
		{PhaseQuarterfinals, PhaseSemifinals, true},
		{PhaseSemifinals, PhaseFinal, true},
		{PhaseFinal, "", false},
	}

	for _, tt := range tests {
		next, ok := nextPhase(tt.phase)
		assert.Equal(t, tt.ok, ok, tt.phase)
		assert.Equal(t, tt.next, next, tt.phase)
	}
}

func TestAllPlayedConflictsOnUnplayedMatch(t *testing.T) {
	matches := []Match{
		playedMatch("a", "b", 2, 1),
		{Team1: "c", Team2: "d"},
	}

	err := allPlayed(matches)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.EqualError(t, err, "the matches have not yet been played")
}

func TestPairPhaseWinners(t *testing.T) {
	matches := []Match{
		playedMatch("a", "b", 2, 1),
		playedMatch("c", "d", 0, 3),
		playedMatch("e", "f", 1, 0),
		playedMatch("g", "h", 4, 5),
	}

	next := pairPhaseWinners(matches, PhaseSemifinals)

	assert.Len(t, next, 2)
	assert.Equal(t, "a", next[0].Team1)
	assert.Equal(t, "d", next[0].Team2)
	assert.Equal(t, 0, next[0].Position)
	assert.Equal(t, "e", next[1].Team1)
	assert.Equal(t, "h", next[1].Team2)
	assert.Equal(t, 1, next[1].Position)

	for _, match := range next {
		assert.Equal(t, PhaseSemifinals, *match.Phase)
		assert.Nil(t, match.Result1)
		assert.Nil(t, match.Result2)
	}
}

func TestPairPhaseWinnersByeAdvancesRealTeam(t *testing.T) {
	matches := []Match{
		playedMatch("a", "b", 2, 1),
		playedMatch("c", "", 1, 0),
	}

	next := pairPhaseWinners(matches, PhaseFinal)

	assert.Len(t, next, 1)
	assert.Equal(t, "a", next[0].Team1)
	assert.Equal(t, "c", next[0].Team2)
}
