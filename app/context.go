package main

import (
	"context"
	"net/http"
)

type contextKey string

const userIDContextKey = contextKey("userID")

// createUserIDContext stores the acting user id recovered from the bearer
// token. Zero means anonymous.
func (app *application) createUserIDContext(r *http.Request, userID int) *http.Request {
	ctx := context.WithValue(r.Context(), userIDContextKey, userID)
	return r.WithContext(ctx)
}

func (app *application) getUserIDContext(r *http.Request) int {
	userID, ok := r.Context().Value(userIDContextKey).(int)
	if !ok {
		return 0
	}
	return userID
}
