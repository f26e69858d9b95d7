package main

import (
	"log"

	"github.com/matchday/api-server/pkg/kvstore"
)

func failOnError(err error, msg string) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}

func (app *App) initKVStore() {
	app.KVStore = kvstore.NewRedis(
		app.Conf.GetString("redis.addr"),
		app.Conf.GetString("redis.password"),
		app.Conf.GetInt("redis.db"),
	)
}
