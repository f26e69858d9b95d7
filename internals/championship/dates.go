package championship

import (
	"errors"
	"time"

	"github.com/matchday/api-server/internals/apperr"

	"gorm.io/gorm"
)

// Live proposals allowed per team pair.
const maxMatchDates = 5

// Proposal dates are kept at minute precision.
func normalizeDate(date time.Time) time.Time {
	return date.Truncate(time.Minute)
}

// checkProposalSlot guards a new proposal against the live set for a pair.
func checkProposalSlot(live, duplicates int64) error {
	if live >= maxMatchDates {
		return apperr.Conflict("you cannot add more dates")
	}
	if duplicates > 0 {
		return apperr.Conflict("date already exists")
	}
	return nil
}

// acceptGuard validates an acceptance against the match and the live
// proposals. The match must exist, be undated, and the date must be one of
// the pair's live proposals.
func acceptGuard(match *Match, duplicates int64) error {
	if match == nil {
		return apperr.NotFound("match not found")
	}
	if match.MatchDate != nil {
		return apperr.Conflict("date already assigned")
	}
	if duplicates < 1 {
		return apperr.NotFound("date does not exist")
	}
	return nil
}

// AddDate lets the local (team1) leader offer a candidate date for the
// match against team2. At most five proposals may be live for the pair and
// the same date cannot be offered twice.
func (s *ChampionshipService) AddDate(id uint, team1, team2 string, date time.Time, username string) (string, error) {
	leader1, _, err := s.Teams.TeamLeaders(team1, team2)
	if err != nil {
		return "", err
	}
	if leader1 != username {
		return "", apperr.Conflict("you are not the team leader")
	}

	date = normalizeDate(date)
	live, duplicates, err := s.countMatchDates(id, team1, team2, date)
	if err != nil {
		return "", err
	}
	if err := checkProposalSlot(live, duplicates); err != nil {
		return "", err
	}

	err = s.DB.Table("match_dates").Create(&MatchDate{
		ChampionshipID: id,
		Team1:          team1,
		Team2:          team2,
		Date:           date,
	}).Error
	if err != nil {
		return "", apperr.Internal(err)
	}
	return "Match date added", nil
}

// DeleteDate withdraws one of the local leader's live proposals.
func (s *ChampionshipService) DeleteDate(id uint, team1, team2 string, date time.Time, username string) (string, error) {
	leader1, _, err := s.Teams.TeamLeaders(team1, team2)
	if err != nil {
		return "", err
	}
	if leader1 != username {
		return "", apperr.Conflict("you are not the team leader")
	}

	date = normalizeDate(date)
	_, duplicates, err := s.countMatchDates(id, team1, team2, date)
	if err != nil {
		return "", err
	}
	if duplicates == 0 {
		return "", apperr.NotFound("date does not exist")
	}

	err = s.DB.Where("championship_id = ? AND team1 = ? AND team2 = ? AND date = ?", id, team1, team2, date).
		Delete(&MatchDate{}).Error
	if err != nil {
		return "", apperr.Internal(err)
	}
	return "Match date deleted successfully", nil
}

// AcceptDate lets the visiting (team2) leader fix one proposed date on the
// match. Acceptance is exclusive: the match must not be dated yet, and every
// live proposal for the pair is discarded once one is accepted.
func (s *ChampionshipService) AcceptDate(id uint, team1, team2 string, date time.Time, username string) (string, error) {
	_, leader2, err := s.Teams.TeamLeaders(team1, team2)
	if err != nil {
		return "", err
	}
	if leader2 != username {
		return "", apperr.Conflict("you are not the team leader")
	}

	var match Match
	err = s.DB.Table("matches").
		Where("championship_id = ? AND team1 = ? AND team2 = ?", id, team1, team2).
		First(&match).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperr.NotFound("match not found")
	}
	if err != nil {
		return "", apperr.Internal(err)
	}

	date = normalizeDate(date)
	_, duplicates, err := s.countMatchDates(id, team1, team2, date)
	if err != nil {
		return "", err
	}
	if err := acceptGuard(&match, duplicates); err != nil {
		return "", err
	}

	err = s.DB.Table("matches").Where("id = ?", match.ID).Update("match_date", date).Error
	if err != nil {
		return "", apperr.Internal(err)
	}
	err = s.DB.Where("championship_id = ? AND team1 = ? AND team2 = ?", id, team1, team2).
		Delete(&MatchDate{}).Error
	if err != nil {
		return "", apperr.Internal(err)
	}
	return "Match date assigned successfully", nil
}

// GetMatchDates lists the live proposals for a pair. Visible to the leader
// of either side.
func (s *ChampionshipService) GetMatchDates(id uint, team1, team2, username string) ([]time.Time, error) {
	leader1, leader2, err := s.Teams.TeamLeaders(team1, team2)
	if err != nil {
		return nil, err
	}
	if leader1 != username && leader2 != username {
		return nil, apperr.Conflict("you are not the team leader")
	}

	var proposals []MatchDate
	err = s.DB.Table("match_dates").
		Where("championship_id = ? AND team1 = ? AND team2 = ?", id, team1, team2).
		Order("date").
		Find(&proposals).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}

	dates := make([]time.Time, 0, len(proposals))
	for _, proposal := range proposals {
		dates = append(dates, proposal.Date)
	}
	return dates, nil
}

// countMatchDates reports the live proposal count for a pair and how many
// of them carry the exact date.
func (s *ChampionshipService) countMatchDates(id uint, team1, team2 string, date time.Time) (int64, int64, error) {
	var live int64
	err := s.DB.Table("match_dates").
		Where("championship_id = ? AND team1 = ? AND team2 = ?", id, team1, team2).
		Count(&live).Error
	if err != nil {
		return 0, 0, apperr.Internal(err)
	}

	var duplicates int64
	err = s.DB.Table("match_dates").
		Where("championship_id = ? AND team1 = ? AND team2 = ? AND date = ?", id, team1, team2, date).
		Count(&duplicates).Error
	if err != nil {
		return 0, 0, apperr.Internal(err)
	}
	return live, duplicates, nil
}
