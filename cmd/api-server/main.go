package main

import (
	"log"
	"net/http"

	"github.com/matchday/api-server/db"
	"github.com/matchday/api-server/pkg/conf"
	"github.com/matchday/api-server/pkg/kvstore"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type App struct {
	DB      *gorm.DB
	R       *chi.Mux
	KVStore kvstore.KVStore
	Conf    *viper.Viper
}

func main() {
	cfg := conf.Config(".")

	app := &App{Conf: cfg}

	database, err := db.Setup(cfg)
	failOnError(err, "Failed to connect to the database")
	failOnError(db.Migrate(database), "Failed to migrate the database")

	r := chi.NewRouter()
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.GetString("server.frontend_origin")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)

	app.DB = database
	app.R = r

	app.initKVStore()
	app.initHandlers()

	addr := ":" + cfg.GetString("server.port")
	log.Printf("api-server listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
