package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/trackhire-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// PaginationMeta is the pagination block of list envelopes.
type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewPaginationParams normalizes page and limit. Non-positive values fall back
// to defaults; limit is capped at MaxPageSize.
func NewPaginationParams(page, limit int) PaginationParams {
	if page < 1 {
		page = 1
	}
	if limit < constants.MinPageSize {
		limit = constants.DefaultPageSize
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}
	// Keep the offset within a 32-bit integer on every driver.
	if maxPage := math.MaxInt32 / limit; page > maxPage {
		page = maxPage
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// GetPaginationParams extracts and validates pagination parameters from the request
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageSize)))

	return NewPaginationParams(page, limit)
}

// Meta builds the pagination block. TotalPages is ceil(total/limit).
func (p PaginationParams) Meta(total int64) PaginationMeta {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = int(total) / p.Limit
		if int(total)%p.Limit > 0 {
			totalPages++
		}
	}

	return PaginationMeta{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
	}
}

// LikeEscape is the escape character paired with LikePattern. It must be
// used as `LIKE ? ESCAPE '!'` so that % and _ in user input match literally.
const LikeEscape = "!"

var likeReplacer = strings.NewReplacer(
	LikeEscape, LikeEscape+LikeEscape,
	"%", LikeEscape+"%",
	"_", LikeEscape+"_",
)

// LikePattern lowercases value, escapes LIKE wildcards and wraps it for a
// literal substring match.
func LikePattern(value string) string {
	return "%" + likeReplacer.Replace(strings.ToLower(strings.TrimSpace(value))) + "%"
}
