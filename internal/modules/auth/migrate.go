package auth

import "gorm.io/gorm"

// AutoMigrate creates the refresh-token table, which is private to this
// module.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&refreshTokenRow{})
}
