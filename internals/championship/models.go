package championship

import "time"

// Championship types, stored as-is in the championships table.
const (
	TypeLeague     = "League"
	TypeTournament = "Tournament"
)

// Championship states. Transitions are strictly
// Inscription -> In progress -> Finished, never backwards.
const (
	StateInscription = "Inscription"
	StateInProgress  = "In progress"
	StateFinished    = "Finished"
)

// Tournament phases, widest bracket first.
const (
	PhaseRoundOf32     = "Round of 32"
	PhaseRoundOf16     = "Round of 16"
	PhaseQuarterfinals = "Quarterfinals"
	PhaseSemifinals    = "Semifinals"
	PhaseFinal         = "Final"
)

type Championship struct {
	ID                uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	ChampionshipName  string    `json:"championship_name" gorm:"size:60;not null"`
	CreatorUser       string    `json:"creator_user" gorm:"size:50;not null"`
	NumMaxTeams       int       `json:"num_max_teams" gorm:"not null"`
	StartInscription  time.Time `json:"start_inscription" gorm:"not null"`
	EndInscription    time.Time `json:"end_inscription" gorm:"not null"`
	StartChampionship time.Time `json:"start_championship" gorm:"not null"`
	Location          string    `json:"location" gorm:"size:255;not null"`
	Sport             string    `json:"sport" gorm:"size:35;not null"`
	Type              string    `json:"type" gorm:"size:10;not null"`
	State             string    `json:"state" gorm:"size:12;not null"`
	Phase             *string   `json:"phase" gorm:"size:15"`
	Description       string    `json:"description" gorm:"size:512;not null"`

	// Enrolled teams, populated on reads only.
	Teams []ChampionshipTeam `json:"teams,omitempty" gorm:"-"`
}

// ChampionshipTeam is one enrollment. The autoincrement id preserves
// enrollment order, which seeds the tournament bracket halves.
type ChampionshipTeam struct {
	ID             uint   `json:"-" gorm:"primaryKey;autoIncrement"`
	ChampionshipID uint   `json:"championship_id" gorm:"not null;index;uniqueIndex:idx_enrollment"`
	TeamName       string `json:"teamname" gorm:"size:50;not null;uniqueIndex:idx_enrollment"`
}

// Match results are both nil (unplayed) or both set (played). Phase is nil
// for league fixtures. An empty team name marks a bracket bye.
type Match struct {
	ID             uint       `json:"-" gorm:"primaryKey;autoIncrement"`
	ChampionshipID uint       `json:"championship_id" gorm:"not null;index"`
	Phase          *string    `json:"phase" gorm:"size:15"`
	Team1          string     `json:"team1" gorm:"size:50"`
	Team2          string     `json:"team2" gorm:"size:50"`
	Result1        *int       `json:"result1"`
	Result2        *int       `json:"result2"`
	Position       int        `json:"position"`
	MatchDate      *time.Time `json:"match_date"`
}

// MatchDate is a candidate date proposed by the local team leader, pending
// acceptance by the visiting leader. At most five may be live per pair.
type MatchDate struct {
	ID             uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	ChampionshipID uint      `json:"championship_id" gorm:"not null;index"`
	Team1          string    `json:"team1" gorm:"size:50;not null"`
	Team2          string    `json:"team2" gorm:"size:50;not null"`
	Date           time.Time `json:"date" gorm:"not null"`
}

// ClasificationTeam is one league standings row. Derived, never persisted.
type ClasificationTeam struct {
	TeamName      string `json:"teamname"`
	Points        int    `json:"points"`
	MatchesPlayed int    `json:"matches_played"`
	Wins          int    `json:"wins"`
	Draws         int    `json:"draws"`
	Looses        int    `json:"looses"`
}

func (c *ClasificationTeam) addVictory() {
	c.Points += 3
	c.MatchesPlayed++
	c.Wins++
}

func (c *ClasificationTeam) addDraw() {
	c.Points++
	c.MatchesPlayed++
	c.Draws++
}

func (c *ClasificationTeam) addLoose() {
	c.MatchesPlayed++
	c.Looses++
}

type Pager struct {
	TotalItems  int `json:"total_items"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
	TotalPages  int `json:"total_pages"`
}

func newPager(totalItems, currentPage, pageSize int) Pager {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalItems + pageSize - 1) / pageSize
	}
	return Pager{
		TotalItems:  totalItems,
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
	}
}

type CreateChampionshipRequestBody struct {
	ChampionshipName  string `json:"championship_name"`
	NumMaxTeams       int    `json:"num_max_teams"`
	StartInscription  string `json:"start_inscription"`
	EndInscription    string `json:"end_inscription"`
	StartChampionship string `json:"start_championship"`
	Location          string `json:"location"`
	Sport             string `json:"sport"`
	Type              string `json:"type"`
	Description       string `json:"description"`
}

type JoinRequestBody struct {
	IDChampionship uint   `json:"id_championship"`
	TeamName       string `json:"teamname"`
}

type GenerateRequestBody struct {
	IDChampionship uint `json:"id_championship"`
}

type SetResultRequestBody struct {
	IDChampionship uint   `json:"id_championship"`
	Team1          string `json:"team1"`
	Team2          string `json:"team2"`
	MatchResult1   int    `json:"match_result1"`
	MatchResult2   int    `json:"match_result2"`
}

type MatchDateRequestBody struct {
	IDChampionship uint   `json:"id_championship"`
	Team1          string `json:"team1"`
	Team2          string `json:"team2"`
	Date           string `json:"date"`
}
