package main

import "net/http"

func (app *App) initHandlers() {
	app.R.Post("/auth/login", app.Login)
	app.R.Post("/auth/signup", app.SignUp)
	app.R.Post("/auth/logout", app.Middleware(http.HandlerFunc(app.Logout)))

	app.R.Post("/championships", app.Middleware(http.HandlerFunc(app.CreateChampionship)))
	app.R.Get("/championships", app.GetChampionship)
	app.R.Get("/championships/all", app.GetAllChampionships)
	app.R.Post("/championships/join", app.Middleware(http.HandlerFunc(app.JoinChampionship)))
	app.R.Delete("/championships/left", app.Middleware(http.HandlerFunc(app.LeftChampionship)))
	app.R.Get("/championships/participate", app.Middleware(http.HandlerFunc(app.Participate)))

	app.R.Post("/championships/generate/matches", app.Middleware(http.HandlerFunc(app.GenerateMatches)))
	app.R.Post("/championships/generate/next/phase", app.Middleware(http.HandlerFunc(app.GenerateNextPhase)))
	app.R.Put("/championships/set/result", app.Middleware(http.HandlerFunc(app.SetResult)))

	app.R.Post("/championships/add/date", app.Middleware(http.HandlerFunc(app.AddDate)))
	app.R.Delete("/championships/delete/date", app.Middleware(http.HandlerFunc(app.DeleteDate)))
	app.R.Put("/championships/accept/date", app.Middleware(http.HandlerFunc(app.AcceptDate)))
	app.R.Get("/championships/match/dates", app.Middleware(http.HandlerFunc(app.GetMatchDates)))

	app.R.Get("/championships/clasification", app.Clasification)
	app.R.Get("/championships/matches", app.GetMatches)
	app.R.Get("/championships/brackets/matches", app.GetBracketsMatches)
	app.R.Get("/championships/user/next/matches", app.Middleware(http.HandlerFunc(app.GetUserNextMatches)))

	app.R.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("I am Healthy"))
	})
}
