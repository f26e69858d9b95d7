package db

import (
	"fmt"
	"log"

	"github.com/matchday/api-server/internals/auth"
	"github.com/matchday/api-server/internals/championship"
	"github.com/matchday/api-server/internals/teams"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Setup(cfg *viper.Viper) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		cfg.GetString("database.host"),
		cfg.GetString("database.user"),
		cfg.GetString("database.password"),
		cfg.GetString("database.dbname"),
		cfg.GetInt("database.port"),
		cfg.GetString("database.sslmode"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&auth.User{},
		&teams.Team{},
		&teams.TeamUser{},
		&championship.Championship{},
		&championship.ChampionshipTeam{},
		&championship.Match{},
		&championship.MatchDate{},
	)
	if err != nil {
		return err
	}
	log.Println("Database migration completed")
	return nil
}
