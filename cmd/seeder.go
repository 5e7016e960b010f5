package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	roleDatamodel "github.com/saifuldipak/eoffice/internal/core/datamodel/role"
	userDatamodel "github.com/saifuldipak/eoffice/internal/core/datamodel/user"
	"github.com/saifuldipak/eoffice/internal/role"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the default roles and admin user",
	Long:  `Create the built-in roles, their permissions, and the initial admin account. Safe to run repeatedly.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		_, db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		// one role per permission token
		seedRoles := []struct {
			Name        string
			Description string
			Permission  role.Permission
		}{
			{"user_admin", "Can manage users and roles", role.PermissionUserAdmin},
			{"ticket_manager", "Can manage tickets", role.PermissionManageTicket},
			{"ticket_updater", "Can update tickets", role.PermissionUpdateTicket},
		}

		roleIDs := make(map[string]int64, len(seedRoles))
		for _, sr := range seedRoles {
			desc := sr.Description
			r := roleDatamodel.Role{Name: sr.Name, Description: &desc}
			if err := db.Where(roleDatamodel.Role{Name: sr.Name}).FirstOrCreate(&r).Error; err != nil {
				log.Fatalf("failed to seed role %s: %v", sr.Name, err)
			}
			roleIDs[sr.Name] = r.ID

			rp := roleDatamodel.RolePermission{RoleID: r.ID, Permission: string(sr.Permission)}
			err := db.Where(roleDatamodel.RolePermission{RoleID: r.ID, Permission: string(sr.Permission)}).
				FirstOrCreate(&rp).Error
			if err != nil {
				log.Fatalf("failed to seed permission %s for role %s: %v", sr.Permission, sr.Name, err)
			}
			fmt.Printf("Seeded role %s with permission %s\n", sr.Name, sr.Permission)
		}

		var count int64
		if err := db.Model(&userDatamodel.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
			log.Fatalf("failed to check admin user: %v", err)
		}
		if count > 0 {
			fmt.Println("Admin user already exists")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("admin"), cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}

		adminRoleID := roleIDs["user_admin"]
		now := time.Now()
		admin := userDatamodel.User{
			Username:     "admin",
			Email:        "admin@eoffice",
			FirstName:    "Admin",
			LastName:     "User",
			PasswordHash: string(hash),
			RoleID:       &adminRoleID,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}

		fmt.Println("Admin user created successfully")
	},
}
