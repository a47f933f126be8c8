package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the request context.
const userIDKey = contextKey("userID")

// SessionIDHeader identifies a browser session when no authenticated user is known.
const SessionIDHeader = "X-Session-ID"

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetActorID identifies the caller for per-session bookkeeping: the
// authenticated user if any, else the session header, else the client IP.
func GetActorID(c *gin.Context) string {
	if userID, ok := GetUserIDFromContext(c); ok {
		return "user:" + userID
	}
	if sessionID := c.GetHeader(SessionIDHeader); sessionID != "" {
		return "session:" + sessionID
	}
	return "ip:" + c.ClientIP()
}
