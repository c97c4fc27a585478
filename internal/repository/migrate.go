package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the tables backing all repositories.
// Used by cmd/seed and the test suites; production schemas are managed
// with SQL migrations.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&promotionModel{},
		&reviewModel{},
	)
}
