package repository

import "gorm.io/gorm"

// Page bounds a list query. The zero value means no bound, which preserves
// the original return-everything behavior for callers that send no params.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) apply(db *gorm.DB) *gorm.DB {
	if p.Limit > 0 {
		db = db.Limit(p.Limit)
	}
	if p.Offset > 0 {
		db = db.Offset(p.Offset)
	}
	return db
}
