package teams

import (
	"errors"

	"github.com/matchday/api-server/internals/apperr"

	"gorm.io/gorm"
)

// TeamService exposes the roster reads the championship engine needs. Team
// management itself (create, invite, kick) lives outside this server.
type TeamService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *TeamService {
	return &TeamService{
		DB: db,
	}
}

func (t *TeamService) GetTeam(teamname string) (*Team, error) {
	var team Team
	err := t.DB.Table("teams").Where("team_name = ?", teamname).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("incorrect team name")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &team, nil
}

// GetTeamsJoined returns every team the user belongs to.
func (t *TeamService) GetTeamsJoined(username string) ([]Team, error) {
	var joined []Team
	err := t.DB.Raw("SELECT t.* FROM teams t JOIN team_users tu ON t.team_name = tu.team_name WHERE tu.username = ?", username).
		Scan(&joined).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return joined, nil
}

// TeamLeaders resolves the leaders of both sides of a match in one call.
func (t *TeamService) TeamLeaders(team1, team2 string) (string, string, error) {
	first, err := t.GetTeam(team1)
	if err != nil {
		return "", "", err
	}
	second, err := t.GetTeam(team2)
	if err != nil {
		return "", "", err
	}
	return first.UserLeader, second.UserLeader, nil
}
