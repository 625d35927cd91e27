package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "dapur_session"

// sessionID returns the caller's session, minting a cookie on first contact.
// Carts and admin gates are keyed by it.
func sessionID(c *gin.Context) string {
	if v, err := c.Cookie(sessionCookie); err == nil && v != "" {
		return v
	}
	id := uuid.NewString()
	c.SetCookie(sessionCookie, id, 7*24*60*60, "/", "", false, true)
	return id
}
