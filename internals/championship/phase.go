package championship

import (
	"github.com/matchday/api-server/internals/apperr"
)

// GenerateNextPhase advances a tournament once every match of the current
// phase has a result. Winners of consecutive matches (2k, 2k+1) meet at
// position k of the successor phase. Only the creator may advance, and the
// championship state stays In progress even when the successor is the Final;
// setting the Final result is what finishes the championship.
func (s *ChampionshipService) GenerateNextPhase(id uint, username string) (string, error) {
	champ, err := s.Get(id, TypeTournament)
	if err != nil {
		return "", err
	}
	if champ.CreatorUser != username {
		return "", apperr.Conflict("you are not the championship creator")
	}
	if champ.Phase == nil {
		return "", apperr.Conflict("incorrect phase")
	}

	var matches []Match
	err = s.DB.Table("matches").
		Where("championship_id = ? AND phase = ?", id, *champ.Phase).
		Order("position").
		Find(&matches).Error
	if err != nil {
		return "", apperr.Internal(err)
	}
	if len(matches) < 1 {
		return "", apperr.Conflict("incorrect phase")
	}
	if err := allPlayed(matches); err != nil {
		return "", err
	}

	next, ok := nextPhase(*champ.Phase)
	if !ok {
		return "", apperr.Conflict("cannot generate more phases")
	}

	for _, match := range pairPhaseWinners(matches, next) {
		match.ChampionshipID = id
		if err := s.DB.Table("matches").Create(&match).Error; err != nil {
			return "", apperr.Internal(err)
		}
	}

	err = s.DB.Table("championships").Where("id = ?", id).Update("phase", next).Error
	if err != nil {
		return "", apperr.Internal(err)
	}

	return "Next phase generated successfully", nil
}

// allPlayed fails with Conflict while any match lacks a result, so a
// repeated advance cannot silently duplicate matches.
func allPlayed(matches []Match) error {
	for _, match := range matches {
		if match.Result1 == nil || match.Result2 == nil {
			return apperr.Conflict("the matches have not yet been played")
		}
	}
	return nil
}

// nextPhase returns the successor of a tournament phase. The Final has none.
func nextPhase(phase string) (string, bool) {
	switch phase {
	case PhaseRoundOf32:
		return PhaseRoundOf16, true
	case PhaseRoundOf16:
		return PhaseQuarterfinals, true
	case PhaseQuarterfinals:
		return PhaseSemifinals, true
	case PhaseSemifinals:
		return PhaseFinal, true
	default:
		return "", false
	}
}

// pairPhaseWinners builds the successor-phase matches from a played,
// position-ordered phase.
func pairPhaseWinners(matches []Match, next string) []Match {
	paired := make([]Match, 0, len(matches)/2)
	for i := 0; i+1 < len(matches); i += 2 {
		phase := next
		paired = append(paired, Match{
			Team1:    winner(matches[i]),
			Team2:    winner(matches[i+1]),
			Phase:    &phase,
			Position: i / 2,
		})
	}
	return paired
}

// winner assumes a played match; draws cannot occur in tournament play.
func winner(match Match) string {
	if *match.Result1 > *match.Result2 {
		return match.Team1
	}
	return match.Team2
}
