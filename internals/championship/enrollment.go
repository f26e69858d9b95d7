package championship

import (
	"github.com/matchday/api-server/internals/apperr"
	"github.com/matchday/api-server/internals/teams"
)

// checkEnrollment is the admission ladder for a join attempt, in fixed
// order: inscription state, team leadership, player overlap, capacity.
// A nil team stands for a team the caller could not prove leadership of.
func checkEnrollment(champ *Championship, team *teams.Team, username string, overlap, enrolled int64) error {
	if champ.State != StateInscription {
		return apperr.Conflict("the championship is not in inscription")
	}
	if team == nil || team.UserLeader != username {
		return apperr.Conflict("incorrect team or you are not the leader")
	}
	if overlap > 0 {
		return apperr.Conflict("some of the team players already participate in the championship")
	}
	if enrolled >= int64(champ.NumMaxTeams) {
		return apperr.Conflict("maximum number of registered teams")
	}
	return nil
}

// Join enrolls the caller's team. The caller must lead the team, the
// championship must still be in inscription with free capacity, and no
// player of the team may already compete in it under another team name.
func (s *ChampionshipService) Join(id uint, teamname, username string) (string, error) {
	champ, err := s.getAnyType(id)
	if err != nil {
		return "", err
	}

	team, err := s.Teams.GetTeam(teamname)
	if err != nil {
		if apperr.KindOf(err) != apperr.KindNotFound {
			return "", err
		}
		team = nil
	}

	var overlap int64
	err = s.DB.Raw("SELECT COUNT(*) FROM team_users tu JOIN championship_teams ct ON tu.team_name = ct.team_name "+
		"WHERE ct.championship_id = ? AND tu.username IN (SELECT username FROM team_users WHERE team_name = ?)",
		id, teamname).Scan(&overlap).Error
	if err != nil {
		return "", apperr.Internal(err)
	}

	var enrolled int64
	err = s.DB.Table("championship_teams").Where("championship_id = ?", id).Count(&enrolled).Error
	if err != nil {
		return "", apperr.Internal(err)
	}

	if err := checkEnrollment(champ, team, username, overlap, enrolled); err != nil {
		return "", err
	}

	err = s.DB.Table("championship_teams").Create(&ChampionshipTeam{
		ChampionshipID: id,
		TeamName:       teamname,
	}).Error
	if err != nil {
		return "", apperr.Internal(err)
	}

	s.invalidateClasification(id)
	return "Joined the championship successfully", nil
}

// Left withdraws the caller's team before the schedule is generated. The
// team is resolved through the caller's roster membership.
func (s *ChampionshipService) Left(id uint, username string) (string, error) {
	var teamname string
	err := s.DB.Raw("SELECT tu.team_name FROM team_users tu JOIN championship_teams ct ON tu.team_name = ct.team_name "+
		"WHERE tu.username = ? AND ct.championship_id = ?", username, id).Scan(&teamname).Error
	if err != nil {
		return "", apperr.Internal(err)
	}
	if teamname == "" {
		return "", apperr.NotFound("team not found")
	}

	team, err := s.Teams.GetTeam(teamname)
	if err != nil {
		return "", err
	}
	if team.UserLeader != username {
		return "", apperr.Conflict("you are not the team leader")
	}

	err = s.DB.Where("championship_id = ? AND team_name = ?", id, teamname).Delete(&ChampionshipTeam{}).Error
	if err != nil {
		return "", apperr.Internal(err)
	}

	s.invalidateClasification(id)
	return "Left the championship", nil
}

// Participate reports whether any team the caller belongs to is enrolled.
// Pure query, no mutation.
func (s *ChampionshipService) Participate(id uint, username string) (bool, error) {
	joined, err := s.Teams.GetTeamsJoined(username)
	if err != nil {
		return false, err
	}

	for _, team := range joined {
		var count int64
		err := s.DB.Table("championship_teams").
			Where("championship_id = ? AND team_name = ?", id, team.TeamName).
			Count(&count).Error
		if err != nil {
			return false, apperr.Internal(err)
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}
