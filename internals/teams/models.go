package teams

// Team row. UserLeader is the username allowed to act for the team.
type Team struct {
	TeamName   string `json:"teamname" gorm:"primaryKey;size:50"`
	UserLeader string `json:"userleader" gorm:"size:50;not null"`
	Location   string `json:"location" gorm:"size:255"`
}

// TeamUser binds one user to one team roster.
type TeamUser struct {
	TeamName string `json:"teamname" gorm:"primaryKey;size:50"`
	Username string `json:"username" gorm:"primaryKey;size:50"`
}
