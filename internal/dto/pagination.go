package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	MaxPageLimit = 100
	// MaxPage keeps (page-1)*limit far from overflowing; pages past it are empty anyway
	MaxPage = 1_000_000
)

// ParsePagination reads page and limit from the query string. Missing or
// malformed values fall back to page 1 and defaultLimit; page is capped at MaxPage.
func ParsePagination(c *gin.Context, defaultLimit int) (page, limit int) {
	page = 1
	if n, err := strconv.Atoi(c.Query("page")); err == nil && n >= 1 {
		page = min(n, MaxPage)
	}

	limit = defaultLimit
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n >= 1 && n <= MaxPageLimit {
		limit = n
	}

	return page, limit
}

// OptionalQuery returns a pointer to the query value, or nil when it is empty
func OptionalQuery(c *gin.Context, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}
