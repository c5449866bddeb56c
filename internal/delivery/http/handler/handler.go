package handler

import (
	"net/http"
	"strconv"

	"healthcare-management/internal/delivery/http/middleware"
	"healthcare-management/pkg/response"

	"github.com/gorilla/mux"
)

// pathID parses a positive integer path variable. It writes a 400 response
// and returns false when the value is not a valid id.
func pathID(w http.ResponseWriter, r *http.Request, name, message string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil || id == 0 {
		response.Error(w, http.StatusBadRequest, message, nil)
		return 0, false
	}
	return uint(id), true
}

// callerID returns the authenticated user. Routes behind the auth
// middleware always have one.
func callerID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return 0, false
	}
	return userID, true
}
