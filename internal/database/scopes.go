package database

import (
	"gorm.io/gorm"

	"github.com/yukikurage/trackhire-api/internal/utils"
)

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// ContainsFold matches column against a case-insensitive substring.
// LOWER + LIKE with an explicit escape behaves the same on postgres, mysql
// and sqlite.
func ContainsFold(column, value string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER("+column+") LIKE ? ESCAPE '"+utils.LikeEscape+"'", utils.LikePattern(value))
	}
}
