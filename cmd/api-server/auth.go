package main

import (
	"net/http"

	"github.com/matchday/api-server/internals/auth"
)

func (app *App) authService() *auth.AuthService {
	return auth.New(app.KVStore, app.DB, app.Conf.GetString("jwt.secret"))
}

func (app *App) Login(w http.ResponseWriter, r *http.Request) {
	var loginDetails auth.LoginRequestBody
	if err := getBody(r, &loginDetails); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	token, err := app.authService().Login(loginDetails)
	if err != nil {
		sendError(w, err)
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"token": token}})
}

func (app *App) SignUp(w http.ResponseWriter, r *http.Request) {
	var signUpDetails auth.SignUpRequestBody
	if err := getBody(r, &signUpDetails); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	if err := app.authService().SignUp(signUpDetails); err != nil {
		sendError(w, err)
		return
	}

	sendResponse(w, httpResp{Status: http.StatusCreated, Data: map[string]interface{}{"message": "User created successfully"}})
}

func (app *App) Logout(w http.ResponseWriter, r *http.Request) {
	username := r.Context().Value("username").(string)
	token := r.Context().Value("token").(string)

	if err := app.authService().Logout(username, token); err != nil {
		sendError(w, err)
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Logged out successfully"}})
}
