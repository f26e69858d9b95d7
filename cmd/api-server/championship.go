package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/matchday/api-server/internals/championship"
)

const matchDateLayout = "2006-01-02 15:04"

func (app *App) championships() *championship.ChampionshipService {
	return championship.New(app.KVStore, app.DB)
}

func queryID(r *http.Request) (uint, bool) {
	raw := r.URL.Query().Get("id_championship")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (app *App) CreateChampionship(w http.ResponseWriter, r *http.Request) {
	var body championship.CreateChampionshipRequestBody
	if err := getBody(r, &body); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}
	username := r.Context().Value("username").(string)

	id, err := app.championships().Create(body, username)
	if err != nil {
		sendError(w, err)
		return
	}

	sendResponse(w, httpResp{Status: http.StatusCreated, Data: map[string]interface{}{
		"message": body.Type + " created successfully",
		"id":      id,
	}})
}

func (app *App) GetChampionship(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(r)
	if !ok {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "id_championship is required"})
		return
	}

	champ, err := app.championships().Get(id, r.URL.Query().Get("type"))
	if err != nil {
		sendError(w, err)
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: champ})
}

func (app *App) GetAllChampionships(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))

	pager, championships, err := app.championships().GetAll(
		query.Get("type"), query.Get("name"), query.Get("location"), query.Get("sport"), page)
	if err != nil {
		sendError(w, err)
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{
		"pager":         pager,
		"championships": championships,
	}})
}

func (app *App) JoinChampionship(w http.ResponseWriter, r *http.Request) {
	var body championship.JoinRequestBody
	if err := getBody(r, &body); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}
	username := r.Context().Value("username").(string)

	message, err := app.championships().Join(body.IDChampionship, body.TeamName, username)
	if err != nil {
		sendError(w, err)
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": message}})
}

func (app *App) LeftChampionship(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(r)
	if !ok {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "id_championship is required"})
		return
	}
	username := r.Context().Value("username").(string)

	message, err := app.championships().Left(id, username)
	if err != nil {
		sendError(w, err)
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": message}})
}

func (app *App) Participate(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(r)
	if !ok {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "id_championship is required"})
		return
	}
	username := r.Context().Value("username").(string)

	joined, err := app.championships().Participate(id, username)
	if err != nil {
		sendError(w, err)
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"participate": joined}})
}

func (app *App) GenerateMatches(w http.ResponseWriter, r *http.Request) {
	var body championship.GenerateRequestBody
	if err := getBody(r, &body); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	message, err := app.championships().GenerateMatches(body.IDChampionship)
	if err != nil {
		sendError(w, err)
		return
	}

	sendResponse(w, httpResp{Status: http.StatusCreated, Data: map[string]interface{}{"message": message}})
}

func (app *App) GenerateNextPhase(w http.ResponseWriter, r *http.Request) {
	var body championship.GenerateRequestBody
	if err := getBody(r, &body); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}
	username := r.Context().Value("username").(string)

	message, err := app.championships().GenerateNextPhase(body.IDChampionship, username)
	if err != nil {
		sendError(w, err)
		return
	}

	sendResponse(w, httpResp{Status: http.StatusCreated, Data: map[string]interface{}{"message": message}})
}

func (app *App) SetResult(w http.ResponseWriter, r *http.Request) {
	var body championship.SetResultRequestBody
	if err := getBody(r, &body); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	message, err := app.championships().SetResult(
		body.IDChampionship, body.Team1, body.Team2, body.MatchResult1, body.MatchResult2)
	if err != nil {
		sendError(w, err)
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": message}})
}

func (app *App) AddDate(w http.ResponseWriter, r *http.Request) {
	var body championship.MatchDateRequestBody
	if err := getBody(r, &body); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}
	date, err := time.Parse(matchDateLayout, body.Date)
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid date"})
		return
	}
	username := r.Context().Value("username").(string)

	message, err := app.championships().AddDate(body.IDChampionship, body.Team1, body.Team2, date, username)
	if err != nil {
		sendError(w, err)
		return
	}

	sendResponse(w, httpResp{Status: http.StatusCreated, Data: map[string]interface{}{"message": message}})
}

func (app *App) DeleteDate(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(r)
	if !ok {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "id_championship is required"})
		return
	}
	query := r.URL.Query()
	date, err := time.Parse(matchDateLayout, query.Get("date"))
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid date"})
		return
	}
	username := r.Context().Value("username").(string)

	message, err := app.championships().DeleteDate(id, query.Get("team1"), query.Get("team2"), date, username)
	if err != nil {
		sendError(w, err)
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": message}})
}

func (app *App) AcceptDate(w http.ResponseWriter, r *http.Request) {
	var body championship.MatchDateRequestBody
	if err := getBody(r, &body); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}
	date, err := time.Parse(matchDateLayout, body.Date)
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid date"})
		return
	}
	username := r.Context().Value("username").(string)

	message, err := app.championships().AcceptDate(body.IDChampionship, body.Team1, body.Team2, date, username)
	if err != nil {
		sendError(w, err)
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": message}})
}

func (app *App) GetMatchDates(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(r)
	if !ok {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "id_championship is required"})
		return
	}
	query := r.URL.Query()
	username := r.Context().Value("username").(string)

	dates, err := app.championships().GetMatchDates(id, query.Get("team1"), query.Get("team2"), username)
	if err != nil {
		sendError(w, err)
		return
	}

	formatted := make([]string, 0, len(dates))
	for _, date := range dates {
		formatted = append(formatted, date.Format(matchDateLayout))
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: formatted})
}

func (app *App) Clasification(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(r)
	if !ok {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "id_championship is required"})
		return
	}

	table, err := app.championships().Clasification(id)
	if err != nil {
		sendError(w, err)
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: table})
}

func (app *App) GetMatches(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(r)
	if !ok {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "id_championship is required"})
		return
	}
	query := r.URL.Query()
	pageIndex, _ := strconv.Atoi(query.Get("page_index"))
	pageSize, _ := strconv.Atoi(query.Get("page_size"))

	pager, matches, err := app.championships().GetMatches(id, pageIndex, pageSize, query.Get("teamname"))
	if err != nil {
		sendError(w, err)
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{
		"pager":   pager,
		"matches": matches,
	}})
}

func (app *App) GetBracketsMatches(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(r)
	if !ok {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "id_championship is required"})
		return
	}

	matches, err := app.championships().GetBracketsMatches(id)
	if err != nil {
		sendError(w, err)
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: matches})
}

func (app *App) GetUserNextMatches(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	pageIndex, _ := strconv.Atoi(query.Get("page_index"))
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	username := r.Context().Value("username").(string)

	pager, matches, err := app.championships().GetUserNextMatches(
		username, time.Now(), pageIndex, pageSize, query.Get("type"))
	if err != nil {
		sendError(w, err)
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{
		"pager":   pager,
		"matches": matches,
	}})
}
