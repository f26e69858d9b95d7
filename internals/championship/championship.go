package championship

import (
	"errors"
	"time"

	"github.com/matchday/api-server/internals/apperr"
	"github.com/matchday/api-server/internals/teams"
	"github.com/matchday/api-server/pkg/kvstore"

	"gorm.io/gorm"
)

const searchPageSize = 20

// ChampionshipService is the competition engine: enrollment, schedule
// generation, phase advancement, results, standings and date negotiation.
type ChampionshipService struct {
	KV    kvstore.KVStore
	DB    *gorm.DB
	Teams *teams.TeamService
}

func New(kv kvstore.KVStore, db *gorm.DB) *ChampionshipService {
	return &ChampionshipService{
		KV:    kv,
		DB:    db,
		Teams: teams.New(db),
	}
}

// Create validates and stores a new championship in Inscription state.
// Returns the new id.
func (s *ChampionshipService) Create(body CreateChampionshipRequestBody, username string) (uint, error) {
	champ, fieldErrors := championshipFromRequest(body, username, time.Now())
	if len(fieldErrors) > 0 {
		return 0, apperr.ConflictFields("incorrect championship data", fieldErrors)
	}

	if err := s.DB.Table("championships").Create(champ).Error; err != nil {
		return 0, apperr.Internal(err)
	}
	return champ.ID, nil
}

// Get loads a championship of the given type together with its enrolled
// teams, in enrollment order.
func (s *ChampionshipService) Get(id uint, championshipType string) (*Championship, error) {
	var champ Championship
	err := s.DB.Table("championships").Where("id = ? AND type = ?", id, championshipType).First(&champ).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("incorrect championship")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	enrolled, err := s.enrolledTeams(id)
	if err != nil {
		return nil, err
	}
	champ.Teams = enrolled
	return &champ, nil
}

// getAnyType is Get without the type filter, for operations that apply to
// leagues and tournaments alike.
func (s *ChampionshipService) getAnyType(id uint) (*Championship, error) {
	var champ Championship
	err := s.DB.Table("championships").Where("id = ?", id).First(&champ).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("the championship does not exist")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &champ, nil
}

func (s *ChampionshipService) enrolledTeams(id uint) ([]ChampionshipTeam, error) {
	var enrolled []ChampionshipTeam
	err := s.DB.Table("championship_teams").Where("championship_id = ?", id).Order("id").Find(&enrolled).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return enrolled, nil
}

// GetAll searches open championships (Inscription or In progress) by type,
// with optional name, location and sport filters, 20 per page ordered by
// name. A filter left empty (or sport "all") matches everything.
func (s *ChampionshipService) GetAll(championshipType, name, location, sport string, page int) (Pager, []Championship, error) {
	query := s.DB.Table("championships").
		Where("(state = ? OR state = ?) AND type = ?", StateInProgress, StateInscription, championshipType)
	if name != "" {
		query = query.Where("championship_name LIKE ?", "%"+name+"%")
	}
	if location != "" {
		query = query.Where("location LIKE ?", "%"+location+"%")
	}
	if sport != "" && sport != "all" {
		query = query.Where("sport = ?", sport)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return Pager{}, nil, apperr.Internal(err)
	}

	if page < 1 {
		page = 1
	}
	var championships []Championship
	err := query.Order("championship_name").
		Limit(searchPageSize).
		Offset((page - 1) * searchPageSize).
		Find(&championships).Error
	if err != nil {
		return Pager{}, nil, apperr.Internal(err)
	}

	return newPager(int(total), page, searchPageSize), championships, nil
}
