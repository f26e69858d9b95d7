package championship

import (
	"errors"

	"github.com/matchday/api-server/internals/apperr"

	"gorm.io/gorm"
)

// SetResult records a played match. Draws are rejected for tournament
// matches. A Final result finishes the championship; so does the last
// unresolved league fixture.
func (s *ChampionshipService) SetResult(id uint, team1, team2 string, result1, result2 int) (string, error) {
	var match Match
	err := s.DB.Table("matches").
		Where("championship_id = ? AND team1 = ? AND team2 = ?", id, team1, team2).
		First(&match).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperr.NotFound("match not found")
	}
	if err != nil {
		return "", apperr.Internal(err)
	}

	if match.Phase != nil && result1 == result2 {
		return "", apperr.Conflict("cannot set a draw in tournament match")
	}
	if result1 < 0 || result2 < 0 {
		return "", apperr.Conflict("incorrect match result")
	}

	err = s.DB.Table("matches").Where("id = ?", match.ID).
		Updates(map[string]interface{}{"result1": result1, "result2": result2}).Error
	if err != nil {
		return "", apperr.Internal(err)
	}

	if match.Phase != nil && *match.Phase == PhaseFinal {
		err = s.DB.Table("championships").Where("id = ?", id).Update("state", StateFinished).Error
		if err != nil {
			return "", apperr.Internal(err)
		}
	}

	if match.Phase == nil {
		var unresolved int64
		err = s.DB.Table("matches").
			Where("championship_id = ? AND result1 IS NULL AND result2 IS NULL", id).
			Count(&unresolved).Error
		if err != nil {
			return "", apperr.Internal(err)
		}
		if unresolved == 0 {
			err = s.DB.Table("championships").Where("id = ?", id).Update("state", StateFinished).Error
			if err != nil {
				return "", apperr.Internal(err)
			}
		}
	}

	s.invalidateClasification(id)
	return "Result updated successfully", nil
}
