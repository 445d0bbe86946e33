package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		workers := []struct {
			Email     string
			FirstName string
			LastName  string
			Role      string
		}{
			{"marta@mail.com", "Marta", "Serrano", "admin"},
			{"pau@mail.com", "Pau", "Ferrer", "user"},
		}

		userIDs := make(map[string]uuid.UUID)
		for _, u := range workers {
			var existingID uuid.UUID
			row := db.Raw("SELECT id FROM users WHERE email = ?", u.Email).Row()
			if err := row.Scan(&existingID); err == nil {
				fmt.Println("user already exists:", u.Email)
				userIDs[u.Email] = existingID
				continue
			}

			id := uuid.New()
			if err := db.Exec(
				"INSERT INTO users (id, email, first_name, last_name, role, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, true, now(), now())",
				id, u.Email, u.FirstName, u.LastName, u.Role,
			).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", u.Email, err)
			}
			userIDs[u.Email] = id
			fmt.Println("Seeded user:", u.Email)
		}

		for email, id := range userIDs {
			var exists int
			if err := db.Raw("SELECT 1 FROM user_settings WHERE user_id = ?", id).Row().Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec(
				"INSERT INTO user_settings (user_id, hourly_rate, daily_rate, coordination_rate, night_rate, is_gross, updated_at) VALUES (?, 25.00, 120.00, 15.00, 10.00, true, now())",
				id,
			).Error; err != nil {
				log.Fatalf("failed to insert settings for %s: %v", email, err)
			}
			fmt.Println("Seeded settings for:", email)
		}

		companyName := "Vesotel"
		var companyID uuid.UUID
		row := db.Raw("SELECT id FROM companies WHERE name = ?", companyName).Row()
		if err := row.Scan(&companyID); err != nil {
			companyID = uuid.New()
			if err := db.Exec(
				"INSERT INTO companies (id, name, created_at, updated_at) VALUES (?, ?, now(), now())",
				companyID, companyName,
			).Error; err != nil {
				log.Fatalf("failed to insert company: %v", err)
			}
			fmt.Println("Seeded company:", companyName)
		}

		for email, id := range userIDs {
			var exists int
			if err := db.Raw("SELECT 1 FROM company_members WHERE user_id = ? AND company_id = ?", id, companyID).Row().Scan(&exists); err == nil {
				continue
			}
			role := "worker"
			if email == "marta@mail.com" {
				role = "admin"
			}
			if err := db.Exec(
				"INSERT INTO company_members (user_id, company_id, role, joined_at) VALUES (?, ?, ?, now())",
				id, companyID, role,
			).Error; err != nil {
				log.Fatalf("failed to add member %s: %v", email, err)
			}
			fmt.Println("Added company member:", email)
		}

		fmt.Println("Seeding complete")
	},
}
