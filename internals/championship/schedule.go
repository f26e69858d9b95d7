package championship

import (
	"time"

	"github.com/matchday/api-server/internals/apperr"

	"golang.org/x/exp/rand"
)

// GenerateMatches builds the initial schedule once inscription has closed
// and moves the championship to In progress. Leagues get one match per
// ordered team pair; tournaments get the first bracket phase.
func (s *ChampionshipService) GenerateMatches(id uint) (string, error) {
	champ, err := s.getAnyType(id)
	if err != nil {
		return "", err
	}
	if time.Now().Before(champ.EndInscription) {
		return "", apperr.Conflict("already in inscription period")
	}

	enrolled, err := s.enrolledTeams(id)
	if err != nil {
		return "", err
	}
	if len(enrolled) < 2 {
		return "", apperr.Conflict("insufficient teams in the championship")
	}

	names := make([]string, len(enrolled))
	for i, team := range enrolled {
		names[i] = team.TeamName
	}

	switch champ.Type {
	case TypeLeague:
		for _, match := range leagueMatches(names) {
			match.ChampionshipID = id
			if err := s.DB.Table("matches").Create(&match).Error; err != nil {
				return "", apperr.Internal(err)
			}
		}
		err = s.DB.Table("championships").Where("id = ?", id).
			Update("state", StateInProgress).Error
		if err != nil {
			return "", apperr.Internal(err)
		}

	case TypeTournament:
		phase, slots := bracketForTeamCount(len(names))
		for _, match := range buildBracket(names, slots, phase == PhaseQuarterfinals) {
			match.ChampionshipID = id
			match.Phase = &phase
			if err := s.DB.Table("matches").Create(&match).Error; err != nil {
				return "", apperr.Internal(err)
			}
		}
		err = s.DB.Table("championships").Where("id = ?", id).
			Updates(map[string]interface{}{"state": StateInProgress, "phase": phase}).Error
		if err != nil {
			return "", apperr.Internal(err)
		}

	default:
		return "", apperr.Conflict("incorrect championship type")
	}

	return "Matches generated successfully", nil
}

// leagueMatches returns one fixture per ordered pair, n*(n-1) in total.
// Every unordered pair appears twice with the roles swapped; the standings
// count each appearance as an independent fixture.
func leagueMatches(names []string) []Match {
	matches := make([]Match, 0, len(names)*(len(names)-1))
	for i, team1 := range names {
		for j, team2 := range names {
			if i == j {
				continue
			}
			matches = append(matches, Match{Team1: team1, Team2: team2})
		}
	}
	return matches
}

// bracketForTeamCount picks the opening phase and bracket size for n teams.
func bracketForTeamCount(n int) (string, int) {
	switch {
	case n == 2:
		return PhaseFinal, 2
	case n <= 4:
		return PhaseSemifinals, 4
	case n <= 8:
		return PhaseQuarterfinals, 8
	case n <= 16:
		return PhaseRoundOf16, 16
	default:
		return PhaseRoundOf32, 32
	}
}

// buildBracket splits the enrollment order into two halves and pairs them
// index by index, padding short halves with byes (empty team name). A bye
// match is resolved on the spot in favour of the present team. Only the
// quarterfinal bracket shuffles its halves; see DESIGN.md.
func buildBracket(names []string, slots int, shuffle bool) []Match {
	half := slots / 2
	group1 := make([]string, half)
	group2 := make([]string, half)
	for i := 0; i < half && i < len(names); i++ {
		group1[i] = names[i]
	}
	for i := half; i < slots && i < len(names); i++ {
		group2[i-half] = names[i]
	}

	if shuffle {
		rand.Seed(uint64(time.Now().UnixNano()))
		rand.Shuffle(half, func(i, j int) { group1[i], group1[j] = group1[j], group1[i] })
		rand.Shuffle(half, func(i, j int) { group2[i], group2[j] = group2[j], group2[i] })
	}

	matches := make([]Match, 0, half)
	for i := 0; i < half; i++ {
		match := Match{Team1: group1[i], Team2: group2[i], Position: i}
		if match.Team1 == "" {
			match.Result1, match.Result2 = intPtr(0), intPtr(1)
		}
		if match.Team2 == "" {
			match.Result1, match.Result2 = intPtr(1), intPtr(0)
		}
		matches = append(matches, match)
	}
	return matches
}

func intPtr(v int) *int {
	return &v
}
