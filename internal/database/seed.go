package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/yukikurage/trackhire-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Demo credentials created by Seed.
const (
	DemoUserEmail  = "demo@trackhire.com"
	DemoAdminEmail = "admin@trackhire.com"
	DemoPassword   = "password123"
)

// Seed replaces every row with the demo data set. It runs in one transaction.
func Seed(ctx context.Context, db *gorm.DB, bcryptCost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		log.Println("Cleaning up database...")
		for _, model := range []interface{}{&models.Application{}, &models.Job{}, &models.Company{}, &models.User{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear table: %w", err)
			}
		}

		log.Println("Seeding data...")
		demoUser := &models.User{Email: DemoUserEmail, Name: "Demo User", PasswordHash: string(hash), Role: models.RoleUser}
		admin := &models.User{Email: DemoAdminEmail, Name: "Demo Admin", PasswordHash: string(hash), Role: models.RoleAdmin}
		if err := tx.Create([]*models.User{demoUser, admin}).Error; err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}

		companies := []*models.Company{
			{Name: "TechFlow", LogoURL: "https://logo.clearbit.com/techflow.ai", Location: "San Francisco, CA", Website: "https://techflow.ai"},
			{Name: "DevPoint", LogoURL: "https://logo.clearbit.com/devpoint.com", Location: "New York, NY", Website: "https://devpoint.com"},
			{Name: "CloudSystems", LogoURL: "https://logo.clearbit.com/cloudsystems.io", Location: "Austin, TX", Website: "https://cloudsystems.io"},
		}
		if err := tx.Create(companies).Error; err != nil {
			return fmt.Errorf("failed to create companies: %w", err)
		}

		now := time.Now().UTC()
		jobs := []*models.Job{
			{
				CompanyID:    companies[0].ID,
				Title:        "Senior React Developer",
				Description:  "Join our team to build next-gen AI applications.",
				Requirements: []string{"5+ years React", "TypeScript mastery", "Strong CSS skills"},
				SalaryRange:  "$140k - $180k",
				Type:         models.JobTypeFullTime,
				Location:     companies[0].Location,
				LocationType: models.LocationTypeRemote,
			},
			{
				CompanyID:    companies[0].ID,
				Title:        "Full Stack Engineer",
				Description:  "Build robust APIs and beautiful user interfaces.",
				Requirements: []string{"Go", "PostgreSQL", "React"},
				SalaryRange:  "$130k - $170k",
				Type:         models.JobTypeFullTime,
				Location:     companies[0].Location,
				LocationType: models.LocationTypeHybrid,
			},
			{
				CompanyID:    companies[1].ID,
				Title:        "Product Designer",
				Description:  "Lead design for our core platform.",
				Requirements: []string{"Figma", "User Research", "Design Systems"},
				SalaryRange:  "$120k - $160k",
				Type:         models.JobTypeFullTime,
				Location:     companies[1].Location,
				LocationType: models.LocationTypeOnsite,
			},
			{
				CompanyID:    companies[2].ID,
				Title:        "Cloud Architect",
				Description:  "Manage our global cloud infrastructure.",
				Requirements: []string{"AWS", "Terraform", "Kubernetes"},
				SalaryRange:  "$160k - $220k",
				Type:         models.JobTypeContract,
				Location:     companies[2].Location,
				LocationType: models.LocationTypeRemote,
			},
			{
				CompanyID:    companies[2].ID,
				Title:        "Backend Developer Intern",
				Description:  "Learn and grow with our backend team.",
				Requirements: []string{"Basic Go", "Interest in Distributed Systems"},
				SalaryRange:  "$30 - $50 / hour",
				Type:         models.JobTypeInternship,
				Location:     companies[2].Location,
				LocationType: models.LocationTypeRemote,
			},
		}
		for i, job := range jobs {
			job.Status = models.JobStatusOpen
			job.CreatedAt = now.Add(-time.Duration(len(jobs)-i) * time.Hour)
		}
		if err := tx.Omit("Company").Create(jobs).Error; err != nil {
			return fmt.Errorf("failed to create jobs: %w", err)
		}

		statuses := []models.ApplicationStatus{
			models.ApplicationStatusOffer,
			models.ApplicationStatusInterview,
			models.ApplicationStatusRejected,
			models.ApplicationStatusApplied,
		}
		apps := make([]*models.Application, len(statuses))
		for i, status := range statuses {
			apps[i] = &models.Application{
				UserID:    demoUser.ID,
				JobID:     jobs[i].ID,
				Status:    status,
				AppliedAt: now.Add(-time.Duration(len(statuses)-i) * 24 * time.Hour),
			}
		}
		if err := tx.Omit("User", "Job").Create(apps).Error; err != nil {
			return fmt.Errorf("failed to create applications: %w", err)
		}

		log.Println("Seeding completed successfully!")
		return nil
	})
}
