package tenant

import "gorm.io/gorm"

// Scope limits a query to one company's rows.
func Scope(companyID int64) func(db *gorm.DB) *gorm.DB {
	return Column("company_id", companyID)
}

// Column is Scope for queries where the company id lives on a joined table,
// e.g. Column("employees.company_id", id) on a users query.
func Column(column string, companyID int64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", companyID)
	}
}
