package directory

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Columns maps a listing onto table columns. SortFields in Options must point at columns
// that exist; TieBreaker is the stable secondary key.
type Columns struct {
	Search     []string
	Filter     string
	TieBreaker string
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Filtered applies search and filter only, so it can be shared by the count and the page query.
func Filtered(q Query, cols Columns) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.Search != "" && len(cols.Search) > 0 {
			pattern := "%" + likeEscaper.Replace(strings.ToLower(q.Search)) + "%"
			clauses := make([]string, len(cols.Search))
			args := make([]interface{}, len(cols.Search))
			for i, col := range cols.Search {
				clauses[i] = fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, col)
				args[i] = pattern
			}
			db = db.Where(strings.Join(clauses, " OR "), args...)
		}
		if q.Filter != "" && cols.Filter != "" {
			db = db.Where(fmt.Sprintf("%s = ?", cols.Filter), q.Filter)
		}
		return db
	}
}

// Ordered sorts by the chosen column then by the tie breaker so pages never overlap.
func Ordered(q Query, opts Options, cols Columns) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		column, ok := opts.SortFields[q.SortField]
		if !ok {
			column = opts.SortFields[opts.DefaultSort]
		}
		dir := "ASC"
		if q.SortDirection == SortDesc {
			dir = "DESC"
		}
		if column != "" {
			db = db.Order(fmt.Sprintf("%s %s", column, dir))
		}
		tie := cols.TieBreaker
		if tie == "" {
			tie = "id"
		}
		return db.Order(tie + " ASC")
	}
}

func Paginated(q Query) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(q.Offset()).Limit(q.Limit)
	}
}

// Find runs the count and the page query for model on base, which should already carry
// ownership conditions such as member_id.
func Find[T any](base *gorm.DB, q Query, opts Options, cols Columns) ([]T, int64, error) {
	filtered := base.Scopes(Filtered(q, cols)).Session(&gorm.Session{})

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []T
	if total == 0 {
		return rows, 0, nil
	}
	err := filtered.
		Scopes(Ordered(q, opts, cols), Paginated(q)).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
