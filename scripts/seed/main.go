// scripts/seed: creates the director account if it does not exist yet.
// Run once after the first migration: go run ./scripts/seed
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/muthita66/Winai-school-sub002/config"
	"github.com/muthita66/Winai-school-sub002/database"
	"github.com/muthita66/Winai-school-sub002/models"
)

func main() {
	cfg := config.Load()
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	code := "D001"
	password := "1234"

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var existing models.User
	if err := db.Where("code = ? AND role = ?", code, models.RoleDirector).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("failed to query users: %v", err)
		}
	} else {
		fmt.Println("director account already exists:", code)
		os.Exit(0)
	}

	u := models.User{
		Code:         code,
		PasswordHash: string(hashed),
		Role:         models.RoleDirector,
		Name:         "ผู้อำนวยการ",
	}
	if err := db.Create(&u).Error; err != nil {
		log.Fatalf("failed to insert director: %v", err)
	}

	fmt.Println("director account created")
	fmt.Println("   code:", code)
	fmt.Println("   password:", password, "(plain, change after first login)")
}
