package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// actorHeader carries the caller identity. Role resolution happens in the use
// case layer; an absent or unknown id is simply treated as a non-manager.
const actorHeader = "X-User-ID"

func actorID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(actorHeader))
}
