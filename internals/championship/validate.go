package championship

import (
	"strings"
	"time"
	"unicode/utf8"
)

const dateLayout = "2006-01-02"

// championshipFromRequest builds a Championship out of a create request,
// collecting every validation failure into a named field-error map. The
// returned championship is only usable when the map is empty.
func championshipFromRequest(body CreateChampionshipRequestBody, username string, now time.Time) (*Championship, map[string]string) {
	fieldErrors := make(map[string]string)

	champ := &Championship{
		ChampionshipName: strings.TrimSpace(body.ChampionshipName),
		CreatorUser:      strings.TrimSpace(username),
		NumMaxTeams:      body.NumMaxTeams,
		Location:         strings.TrimSpace(body.Location),
		Sport:            strings.TrimSpace(body.Sport),
		Type:             body.Type,
		State:            StateInscription,
		Description:      strings.TrimSpace(body.Description),
	}

	if champ.ChampionshipName == "" {
		fieldErrors["championshipNameNull"] = "Championship name cannot be empty"
	} else if utf8.RuneCountInString(champ.ChampionshipName) < 5 {
		fieldErrors["championshipNameMinLength"] = "Championship name cannot have less than 5 characters"
	} else if utf8.RuneCountInString(champ.ChampionshipName) > 60 {
		fieldErrors["championshipNameMaxLength"] = "Championship name cannot have more than 60 characters"
	}

	if champ.CreatorUser == "" {
		fieldErrors["creatorUserNull"] = "Creator user cannot be empty"
	} else if utf8.RuneCountInString(champ.CreatorUser) < 5 {
		fieldErrors["creatorUserIncorrect"] = "Incorrect creator user"
	}

	switch champ.Type {
	case TypeLeague:
		if champ.NumMaxTeams != 4 && champ.NumMaxTeams != 10 && champ.NumMaxTeams != 20 {
			fieldErrors["numMaxTeamsIncorrect"] = "Incorrect maximum number of teams"
		}
	case TypeTournament:
		if champ.NumMaxTeams != 4 && champ.NumMaxTeams != 8 && champ.NumMaxTeams != 16 && champ.NumMaxTeams != 32 {
			fieldErrors["numMaxTeamsIncorrect"] = "Incorrect maximum number of teams"
		}
	case "":
		fieldErrors["typeNull"] = "Championship type cannot be empty"
	default:
		fieldErrors["incorrectType"] = "Incorrect type of championship"
	}

	if champ.Sport == "" {
		fieldErrors["sportNull"] = "Sport cannot be empty"
	} else if utf8.RuneCountInString(champ.Sport) > 35 {
		fieldErrors["sportMaxLength"] = "Sport cannot have more than 35 characters"
	}

	if champ.Description == "" {
		fieldErrors["descriptionNull"] = "Description cannot be empty"
	} else if utf8.RuneCountInString(champ.Description) < 5 {
		fieldErrors["descriptionMinLength"] = "Description cannot have less than 5 characters"
	} else if utf8.RuneCountInString(champ.Description) > 512 {
		fieldErrors["descriptionMaxLength"] = "Description cannot have more than 512 characters"
	}

	if champ.Location == "" {
		fieldErrors["championshipLocationNull"] = "Location cannot be empty"
	} else if utf8.RuneCountInString(champ.Location) > 255 {
		fieldErrors["championshipLocationMaxLength"] = "Location cannot have more than 255 characters"
	}

	startInscription, err := time.Parse(dateLayout, body.StartInscription)
	if err != nil {
		fieldErrors["startInscriptionIncorrect"] = "Start inscription date is incorrect"
	} else if startInscription.After(now.AddDate(0, 0, 1)) || startInscription.Before(now.AddDate(0, 0, -1)) {
		// Inscription must open within a day of creation.
		fieldErrors["startInscriptionIncorrect"] = "Start inscription date is incorrect"
	}
	champ.StartInscription = startInscription

	endInscription, err := time.Parse(dateLayout, body.EndInscription)
	if err != nil || !endInscription.After(startInscription) {
		fieldErrors["endInscriptionIncorrect"] = "End inscription date is incorrect"
	}
	champ.EndInscription = endInscription

	startChampionship, err := time.Parse(dateLayout, body.StartChampionship)
	if err != nil || !startChampionship.After(startInscription) || !startChampionship.After(endInscription) {
		fieldErrors["startChampionshipIncorrect"] = "Start championship date is incorrect"
	}
	champ.StartChampionship = startChampionship

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return champ, nil
}
