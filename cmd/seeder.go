package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	doctypeDatamodel "github.com/govflow/govflow/internal/core/datamodel/doctype"
	identityDatamodel "github.com/govflow/govflow/internal/core/datamodel/identity"
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

		if clearData {
			for _, table := range []string{"activity_records", "comments", "referrals", "documents", "users", "departments", "document_types"} {
				if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		departments := []identityDatamodel.Department{
			{ID: "6", Name: "Finance"},
			{ID: "7", Name: "Legal"},
			{ID: "8", Name: "HR"},
		}

		for _, d := range departments {
			var exists int
			row := db.Raw("SELECT 1 FROM departments WHERE id = ?", d.ID).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}
			if err := db.Create(&d).Error; err != nil {
				log.Fatalf("failed to insert department %s: %v", d.Name, err)
			}
			fmt.Printf("Seeded department: %s\n", d.Name)
		}

		users := []identityDatamodel.User{
			{ID: "1", Name: "John Smith", Email: "john.smith@gov.local", Department: "IT", Role: "admin", Position: "System Administrator"},
			{ID: "2", Name: "Sarah Johnson", Email: "sarah.johnson@gov.local", Department: "Finance", Role: "sender", Position: "Finance Officer"},
			{ID: "3", Name: "Michael Brown", Email: "michael.brown@gov.local", Department: "Legal Affairs", Role: "reviewer", Position: "Legal Reviewer"},
			{ID: "4", Name: "Anna Williams", Email: "anna.williams@gov.local", Department: "HR", Role: "observer", Position: "HR Coordinator"},
			{ID: "5", Name: "James Davis", Email: "james.davis@gov.local", Department: "Executive Office", Role: "reviewer", Position: "Executive Secretary"},
		}

		for _, u := range users {
			var exists int
			row := db.Raw("SELECT 1 FROM users WHERE id = ?", u.ID).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("user %s already exists, skipping\n", u.Email)
				continue
			}
			if err := db.Create(&u).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", u.Email, err)
			}
			fmt.Printf("Seeded user: %s (%s)\n", u.Name, u.Role)
		}

		documentTypes := []struct {
			Name string
			Desc string
		}{
			{"Policy Document", "official policies and regulations"},
			{"Budget Proposal", "budget requests and financial plans"},
			{"Legal Agreement", "contracts and legal instruments"},
			{"Internal Memo", "internal correspondence"},
			{"Report", "periodic and ad hoc reports"},
			{"Meeting Minutes", "records of meetings"},
			{"Project Plan", "project proposals and schedules"},
			{"Other", "anything that fits no other type"},
		}

		for _, t := range documentTypes {
			var exists int
			row := db.Raw("SELECT 1 FROM document_types WHERE name = ?", t.Name).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}
			dt := doctypeDatamodel.DocumentType{Name: t.Name, Description: t.Desc, IsActive: true}
			if err := db.Create(&dt).Error; err != nil {
				log.Fatalf("failed to insert document type %s: %v", t.Name, err)
			}
			fmt.Printf("Seeded document type: %s\n", t.Name)
		}

		fmt.Println("Seeding complete")
	},
}
