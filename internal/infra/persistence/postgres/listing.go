package postgres

import (
	"strings"

	"storerating/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere, with wildcards in s escaped.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}

// whereContains adds a case-insensitive substring filter when value is not blank.
func whereContains(db *gorm.DB, column, value string) *gorm.DB {
	if strings.TrimSpace(value) == "" {
		return db
	}

	return db.Where(clause.Expr{
		SQL:  "? ILIKE ?",
		Vars: []any{clause.Column{Name: column}, containsPattern(value)},
	})
}

// orderBy sorts by the column mapped from sortBy, falling back to fallback.
// Unknown keys never reach SQL. The id tie-breaker keeps pages stable.
func orderBy(db *gorm.DB, columns map[string]string, sortBy string, order entity.SortOrder, fallback string) *gorm.DB {
	column, ok := columns[sortBy]
	if !ok {
		column = fallback
	}

	return db.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: order == entity.SortDesc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
}

// paginate applies the limit and offset of req.
func paginate(db *gorm.DB, req entity.PageRequest) *gorm.DB {
	if req.Limit > 0 {
		db = db.Limit(req.Limit)
	}

	return db.Offset(req.Offset())
}
