package championship

import (
	"time"

	"github.com/matchday/api-server/internals/apperr"
)

// GetMatches lists a championship's matches ordered by position then date,
// optionally filtered to one team, paginated. No matches is an empty page,
// never an error.
func (s *ChampionshipService) GetMatches(id uint, pageIndex, pageSize int, teamname string) (Pager, []Match, error) {
	query := s.DB.Table("matches").Where("championship_id = ?", id)
	if teamname != "" {
		query = query.Where("team1 = ? OR team2 = ?", teamname, teamname)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return Pager{}, nil, apperr.Internal(err)
	}
	if total == 0 {
		return Pager{}, []Match{}, nil
	}

	if pageIndex < 0 {
		pageIndex = 0
	}
	if pageSize < 1 {
		pageSize = 10
	}

	var matches []Match
	err := query.Order("position, match_date DESC").
		Limit(pageSize).
		Offset(pageIndex * pageSize).
		Find(&matches).Error
	if err != nil {
		return Pager{}, nil, apperr.Internal(err)
	}

	return newPager(int(total), pageIndex+1, pageSize), matches, nil
}

// GetBracketsMatches returns every match of a championship ordered for
// bracket rendering: phase, then slot position.
func (s *ChampionshipService) GetBracketsMatches(id uint) ([]Match, error) {
	var matches []Match
	err := s.DB.Table("matches").
		Where("championship_id = ?", id).
		Order("phase, position, match_date DESC").
		Find(&matches).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return matches, nil
}

func (s *ChampionshipService) championshipMatches(id uint) ([]Match, error) {
	var matches []Match
	err := s.DB.Table("matches").Where("championship_id = ?", id).Find(&matches).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return matches, nil
}

// GetUserNextMatches pages through the caller's upcoming fixtures: dated,
// unplayed matches of any team the caller belongs to, soonest first.
func (s *ChampionshipService) GetUserNextMatches(username string, after time.Time, pageIndex, pageSize int, championshipType string) (Pager, []Match, error) {
	const fromClause = "FROM team_users tu " +
		"JOIN championship_teams ct ON tu.team_name = ct.team_name " +
		"JOIN championships c ON ct.championship_id = c.id " +
		"JOIN matches m ON c.id = m.championship_id " +
		"WHERE tu.username = ? AND (tu.team_name = m.team1 OR tu.team_name = m.team2) " +
		"AND c.type = ? AND m.result1 IS NULL AND m.match_date IS NOT NULL AND m.match_date > ?"

	var total int64
	err := s.DB.Raw("SELECT COUNT(*) "+fromClause, username, championshipType, after).Scan(&total).Error
	if err != nil {
		return Pager{}, nil, apperr.Internal(err)
	}
	if total == 0 {
		return Pager{}, []Match{}, nil
	}

	if pageIndex < 0 {
		pageIndex = 0
	}
	if pageSize < 1 {
		pageSize = 5
	}

	var matches []Match
	err = s.DB.Raw("SELECT m.* "+fromClause+" ORDER BY m.match_date LIMIT ? OFFSET ?",
		username, championshipType, after, pageSize, pageIndex*pageSize).Scan(&matches).Error
	if err != nil {
		return Pager{}, nil, apperr.Internal(err)
	}

	return newPager(int(total), pageIndex+1, pageSize), matches, nil
}
