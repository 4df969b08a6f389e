package database

import (
	"log"

	"shiftportal/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll loads the starter catalogs: the three demo accounts, the branch
// list and the role list the portal ships with.
func SeedAll(db *gorm.DB) {
	// 1. Seed staff accounts
	staff := []struct {
		Username string
		Name     string
		Password string
		Role     string
		Email    string
	}{
		{"admin", "Administrator", "admin123", model.RoleAdmin, "admin@shiftportal.local"},
		{"john", "John Doe", "pass123", model.RoleStaff, "john@shiftportal.local"},
		{"jane", "Jane Smith", "pass123", model.RoleStaff, "jane@shiftportal.local"},
	}
	for _, s := range staff {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("Failed to hash password for", s.Username, ":", err)
			continue
		}
		record := model.Staff{
			Username: s.Username,
			Name:     s.Name,
			Password: string(hash),
			Role:     s.Role,
			Email:    s.Email,
		}
		db.FirstOrCreate(&record, model.Staff{Username: s.Username})
	}

	// 2. Seed branches
	branches := []model.Branch{
		{ID: "branch1", Name: "Headquarters", Location: "New York"},
		{ID: "branch2", Name: "Downtown Office", Location: "Chicago"},
		{ID: "branch3", Name: "West Coast", Location: "San Francisco"},
	}
	for _, b := range branches {
		db.FirstOrCreate(&b, model.Branch{ID: b.ID})
	}

	// 3. Seed roles
	roles := []model.Role{
		{ID: "manager", Name: "Manager"},
		{ID: "supervisor", Name: "Supervisor"},
		{ID: "associate", Name: "Associate"},
	}
	for _, r := range roles {
		db.FirstOrCreate(&r, model.Role{ID: r.ID})
	}
}
