// Package main provides user role management utilities for Doorlist.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"doorlist/internal/config"
	"doorlist/internal/database"
	"doorlist/internal/models"

	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/admin/main.go set-role <email> <admin|portaria|user>  - Change a user's role")
		fmt.Println("  go run ./cmd/admin/main.go list-admins                             - List all admins")
		fmt.Println("  go run ./cmd/admin/main.go list-users                              - List all users")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	command := os.Args[1]

	switch command {
	case "set-role":
		if len(os.Args) < 4 {
			fmt.Println("Usage: go run ./cmd/admin/main.go set-role <email> <admin|portaria|user>")
			os.Exit(1)
		}
		setRole(db, os.Args[2], models.Role(os.Args[3]))

	case "list-admins":
		listUsers(db, models.RoleAdmin)

	case "list-users":
		listUsers(db, "")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func setRole(db *gorm.DB, email string, role models.Role) {
	if !models.ValidRole(role) {
		fmt.Printf("Invalid role %q (expected admin, portaria, or user)\n", role)
		os.Exit(1)
	}

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fmt.Printf("User with email %s not found\n", email)
		} else {
			log.Fatalf("Database error: %v", err)
		}
		os.Exit(1)
	}

	if user.Role == role {
		fmt.Printf("User %s (ID: %d) already has role %s\n", user.Email, user.ID, role)
		return
	}

	previous := user.Role
	user.Role = role
	if err := db.Save(&user).Error; err != nil {
		log.Fatalf("Failed to update role: %v", err)
	}

	fmt.Printf("✅ User %s (ID: %d) role changed: %s -> %s\n", user.Email, user.ID, previous, role)
}

func listUsers(db *gorm.DB, role models.Role) {
	query := db.Order("id ASC")
	if role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		log.Fatalf("Failed to fetch users: %v", err)
	}

	if len(users) == 0 {
		fmt.Println("No users found")
		return
	}

	fmt.Println("─────────────────────────────────────")
	for _, u := range users {
		fmt.Printf("ID: %d | Role: %-8s | Email: %s | Name: %s\n", u.ID, u.Role, u.Email, u.Name)
	}
	fmt.Println("─────────────────────────────────────")
}
