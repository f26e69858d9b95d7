package championship

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validCreateBody(now time.Time) CreateChampionshipRequestBody {
	return CreateChampionshipRequestBody{
		ChampionshipName:  "Spring League",
		NumMaxTeams:       10,
		StartInscription:  now.Format(dateLayout),
		EndInscription:    now.AddDate(0, 0, 7).Format(dateLayout),
		StartChampionship: now.AddDate(0, 0, 14).Format(dateLayout),
		Location:          "Valencia",
		Sport:             "Football",
		Type:              TypeLeague,
		Description:       "Local amateur league",
	}
}

func TestChampionshipFromRequestValid(t *testing.T) {
	now := time.Now()
	champ, fieldErrors := championshipFromRequest(validCreateBody(now), "organizer1", now)

	assert.Empty(t, fieldErrors)
	assert.Equal(t, StateInscription, champ.State)
	assert.Nil(t, champ.Phase)
	assert.Equal(t, "organizer1", champ.CreatorUser)
}

func TestChampionshipFromRequestCollectsFieldErrors(t *testing.T) {
	now := time.Now()
	body := validCreateBody(now)
	body.ChampionshipName = "abc"
	body.NumMaxTeams = 7
	body.Description = "x"

	champ, fieldErrors := championshipFromRequest(body, "organizer1", now)

	assert.Nil(t, champ)
	assert.Contains(t, fieldErrors, "championshipNameMinLength")
	assert.Contains(t, fieldErrors, "numMaxTeamsIncorrect")
	assert.Contains(t, fieldErrors, "descriptionMinLength")
}

func TestChampionshipFromRequestCountsRunesNotBytes(t *testing.T) {
	now := time.Now()
	body := validCreateBody(now)
	body.ChampionshipName = strings.Repeat("ñ", 60) // 120 bytes, 60 characters

	_, fieldErrors := championshipFromRequest(body, "organizer1", now)
	assert.Empty(t, fieldErrors)

	body.ChampionshipName = strings.Repeat("ñ", 61)
	_, fieldErrors = championshipFromRequest(body, "organizer1", now)
	assert.Contains(t, fieldErrors, "championshipNameMaxLength")

	body = validCreateBody(now)
	body.Description = "ññññ"
	_, fieldErrors = championshipFromRequest(body, "organizer1", now)
	assert.Contains(t, fieldErrors, "descriptionMinLength")
}

func TestChampionshipFromRequestTournamentCapacity(t *testing.T) {
	now := time.Now()
	body := validCreateBody(now)
	body.Type = TypeTournament

	for _, capacity := range []int{4, 8, 16, 32} {
		body.NumMaxTeams = capacity
		_, fieldErrors := championshipFromRequest(body, "organizer1", now)
		assert.Empty(t, fieldErrors, "capacity %d", capacity)
	}

	body.NumMaxTeams = 10
	_, fieldErrors := championshipFromRequest(body, "organizer1", now)
	assert.Contains(t, fieldErrors, "numMaxTeamsIncorrect")
}

func TestChampionshipFromRequestRejectsUnknownType(t *testing.T) {
	now := time.Now()
	body := validCreateBody(now)
	body.Type = "Knockout"

	_, fieldErrors := championshipFromRequest(body, "organizer1", now)
	assert.Contains(t, fieldErrors, "incorrectType")
}

func TestChampionshipFromRequestDateOrdering(t *testing.T) {
	now := time.Now()
	body := validCreateBody(now)
	body.StartChampionship = now.AddDate(0, 0, 3).Format(dateLayout)
	body.EndInscription = now.AddDate(0, 0, 7).Format(dateLayout)

	_, fieldErrors := championshipFromRequest(body, "organizer1", now)
	assert.Contains(t, fieldErrors, "startChampionshipIncorrect")
}

func TestChampionshipFromRequestInscriptionMustOpenNow(t *testing.T) {
	now := time.Now()
	body := validCreateBody(now)
	body.StartInscription = now.AddDate(0, 0, 10).Format(dateLayout)

	_, fieldErrors := championshipFromRequest(body, "organizer1", now)
	assert.Contains(t, fieldErrors, "startInscriptionIncorrect")
}
