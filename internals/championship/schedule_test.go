package championship

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func teamNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("team%d", i+1)
	}
	return names
}

func TestLeagueMatchesCount(t *testing.T) {
	for _, n := range []int{2, 3, 4, 10, 20} {
		matches := leagueMatches(teamNames(n))
		assert.Len(t, matches, n*(n-1), "league with %d teams", n)
		for _, match := range matches {
			assert.Nil(t, match.Phase)
			assert.NotEqual(t, match.Team1, match.Team2)
		}
	}
}

func TestLeagueMatchesOrderedPairsAppearTwice(t *testing.T) {
	matches := leagueMatches([]string{"a", "b", "c"})

	seen := make(map[string]int)
	for _, match := range matches {
		seen[match.Team1+"-"+match.Team2]++
	}
	assert.Len(t, seen, 6)
	assert.Equal(t, 1, seen["a-b"])
	assert.Equal(t, 1, seen["b-a"])
}

func TestBracketForTeamCount(t *testing.T) {
	tests := []struct {
		teams int
		phase string
		slots int
	}{
		{2, PhaseFinal, 2},
		{3, PhaseSemifinals, 4},
		{4, PhaseSemifinals, 4},
		{5, PhaseQuarterfinals, 8},
		{8, PhaseQuarterfinals, 8},
		{9, PhaseRoundOf16, 16},
		{16, PhaseRoundOf16, 16},
		{17, PhaseRoundOf32, 32},
		{32, PhaseRoundOf32, 32},
	}

	for _, tt := range tests {
		phase, slots := bracketForTeamCount(tt.teams)
		assert.Equal(t, tt.phase, phase, "%d teams", tt.teams)
		assert.Equal(t, tt.slots, slots, "%d teams", tt.teams)
	}
}

func TestBuildBracketPairsHalves(t *testing.T) {
	matches := buildBracket([]string{"a", "b", "c", "d"}, 4, false)

	assert.Len(t, matches, 2)
	assert.Equal(t, Match{Team1: "a", Team2: "c", Position: 0}, matches[0])
	assert.Equal(t, Match{Team1: "b", Team2: "d", Position: 1}, matches[1])
}

func TestBuildBracketResolvesByes(t *testing.T) {
	matches := buildBracket([]string{"a", "b", "c"}, 4, false)

	assert.Len(t, matches, 2)
	assert.Equal(t, "b", matches[1].Team1)
	assert.Equal(t, "", matches[1].Team2)
	assert.Equal(t, 1, *matches[1].Result1)
	assert.Equal(t, 0, *matches[1].Result2)

	// The real pairing stays unplayed.
	assert.Nil(t, matches[0].Result1)
	assert.Nil(t, matches[0].Result2)
}

func TestBuildBracketFiveTeams(t *testing.T) {
	names := teamNames(5)
	phase, slots := bracketForTeamCount(len(names))
	assert.Equal(t, PhaseQuarterfinals, phase)

	matches := buildBracket(names, slots, true)
	assert.Len(t, matches, 4)

	real, byes := 0, 0
	teams := make(map[string]bool)
	for _, match := range matches {
		for _, name := range []string{match.Team1, match.Team2} {
			if name == "" {
				byes++
			} else {
				real++
				teams[name] = true
			}
		}
		if match.Team1 == "" || match.Team2 == "" {
			assert.NotNil(t, match.Result1)
			assert.NotNil(t, match.Result2)
			if match.Team1 == "" {
				assert.Equal(t, 0, *match.Result1)
				assert.Equal(t, 1, *match.Result2)
			} else {
				assert.Equal(t, 1, *match.Result1)
				assert.Equal(t, 0, *match.Result2)
			}
		}
	}

	assert.Equal(t, 5, real)
	assert.Equal(t, 3, byes)
	assert.Len(t, teams, 5, "every enrolled team gets a slot exactly once")
}

func TestBuildBracketShuffleKeepsHalvesApart(t *testing.T) {
	names := teamNames(8)
	matches := buildBracket(names, 8, true)

	firstHalf := map[string]bool{"team1": true, "team2": true, "team3": true, "team4": true}
	for _, match := range matches {
		assert.True(t, firstHalf[match.Team1], "%s belongs to the first half", match.Team1)
		assert.False(t, firstHalf[match.Team2], "%s belongs to the second half", match.Team2)
	}
}
