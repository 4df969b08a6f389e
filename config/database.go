package config

import (
	"fmt"
	"shiftportal/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := GetEnv("DB_DSN", "root:@tcp(127.0.0.1:3306)/shiftportal?charset=utf8mb4&parseTime=True&loc=Local")

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to database!")
	}

	fmt.Println("Database connection established")

	if err := Migrate(db); err != nil {
		panic("Auto migration failed: " + err.Error())
	}

	DB = db
}

// Migrate creates or updates every table the portal persists. Shared with the
// seeder and the test setup so all entrypoints agree on the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Staff{},
		&model.Branch{},
		&model.Role{},
		&model.Shift{},
		&model.LeaveRequest{},
		&model.ShiftChangeRequest{},
	)
}
