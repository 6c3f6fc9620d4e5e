package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the tables behind every repository in this
// package.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&hallModel{},
		&bookingModel{},
		&eventModel{},
		&contactModel{},
	)
}
