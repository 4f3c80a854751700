package handler

import "github.com/gin-gonic/gin"

// currentUserID pulls the authenticated user's ID out of the gin context,
// where the auth middleware placed it. Second return is false for anonymous
// callers.
func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// currentRole returns the caller's role, empty for anonymous callers
func currentRole(c *gin.Context) string {
	v, exists := c.Get("role")
	if !exists {
		return ""
	}
	role, _ := v.(string)
	return role
}
