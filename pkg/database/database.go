package database

import (
	"complipilot_backend/internal/config"
	"complipilot_backend/internal/model"
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Organization{},
		&model.RiskAssessment{},
		&model.GeneratedDocument{},
		&model.ActionPlanItem{},
		&model.StaffInvitation{},
		&model.Testimonial{},
		&model.PricingPlan{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedDefaults(db)

	return db, nil
}

// seedDefaults inserts the marketing content the landing page needs when the
// tables are empty, so a fresh install serves a complete site.
func seedDefaults(db *gorm.DB) {
	var planCount int64
	db.Model(&model.PricingPlan{}).Count(&planCount)
	if planCount == 0 {
		starterFeatures, _ := json.Marshal([]string{
			"Guided risk assessment",
			"Personalized action plan",
			"3 generated policy documents",
		})
		practiceFeatures, _ := json.Marshal([]string{
			"Everything in Starter",
			"Unlimited policy documents",
			"Staff accounts and training tracking",
			"Annual reassessment reminders",
		})
		groupFeatures, _ := json.Marshal([]string{
			"Everything in Practice",
			"Multi-location support",
			"Priority support",
		})

		defaultPlans := []model.PricingPlan{
			{Code: "starter", Name: "Starter", PriceCents: 4900, Interval: "month", Features: starterFeatures, Order: 1, Active: true},
			{Code: "practice", Name: "Practice", PriceCents: 9900, Interval: "month", Features: practiceFeatures, Order: 2, Active: true},
			{Code: "group", Name: "Group", PriceCents: 24900, Interval: "month", Features: groupFeatures, Order: 3, Active: true},
		}
		for _, p := range defaultPlans {
			db.Create(&p)
		}
	}

	var testimonialCount int64
	db.Model(&model.Testimonial{}).Count(&testimonialCount)
	if testimonialCount == 0 {
		defaultTestimonials := []model.Testimonial{
			{AuthorName: "Dr. Sarah Mitchell", AuthorTitle: "Owner, Mitchell Family Dental", Quote: "We went from no documentation to a complete compliance program in a weekend.", Order: 1, Published: true},
			{AuthorName: "James Okafor", AuthorTitle: "Practice Manager, Lakeside Therapy Group", Quote: "The risk assessment told us exactly where to start. The generated policies saved us weeks.", Order: 2, Published: true},
			{AuthorName: "Dr. Elena Ruiz", AuthorTitle: "Ruiz Dermatology", Quote: "Finally a compliance tool that does not assume we have an IT department.", Order: 3, Published: true},
		}
		for _, t := range defaultTestimonials {
			db.Create(&t)
		}
	}
}
