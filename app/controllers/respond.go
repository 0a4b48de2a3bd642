package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/20225587/Tasker/app/dto"
	"github.com/20225587/Tasker/app/services"
	"github.com/20225587/Tasker/global"
)

const genericErrorMessage = "An error occurred. Please try again."

func writeJSON(w http.ResponseWriter, status int, env dto.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func ok(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, dto.OK(message, data))
}

func fail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.Fail(message))
}

// failFromService maps a service error onto the envelope. Known errors
// surface verbatim; anything else is a store failure, logged with detail
// and shown to the client only as the generic message.
func failFromService(w http.ResponseWriter, op string, err error) {
	if services.Client(err) {
		status := http.StatusBadRequest
		switch err {
		case services.ErrInvalidCredentials:
			status = http.StatusUnauthorized
		case services.ErrUserNotFound, services.ErrTaskNotFound, services.ErrTaskAccess:
			status = http.StatusNotFound
		}
		fail(w, status, err.Error())
		return
	}
	global.Logger.Error().Err(err).Str("op", op).Msg("store failure")
	fail(w, http.StatusInternalServerError, genericErrorMessage)
}

// NotFound answers unmatched API paths with the failure envelope, so
// clients under /api/ never receive the HTML not-found page.
func NotFound(w http.ResponseWriter, r *http.Request) {
	fail(w, http.StatusNotFound, "Not found")
}

// requireMethod rejects non-matching methods with the generic failure
// envelope before any handler logic runs.
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return false
	}
	return true
}
