package repository

import (
	"complipilot_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database. The schema is created by
// hand because the models carry MySQL column types AutoMigrate cannot map.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	statements := []string{
		`CREATE TABLE organizations (
			id integer primary key autoincrement,
			created_at datetime,
			updated_at datetime,
			deleted_at datetime,
			name text,
			type text,
			employee_count text,
			state text,
			phone text,
			website text,
			ehr_vendor text,
			uses_cloud_services numeric default true,
			onboarding_step text default 'profile',
			subscription_status text default 'trial',
			trial_ends_at datetime
		)`,
		`CREATE TABLE users (
			id integer primary key autoincrement,
			created_at datetime,
			updated_at datetime,
			deleted_at datetime,
			name text,
			email text,
			password text,
			role text default 'staff',
			org_id integer,
			job_title text,
			disabled numeric default false,
			last_login datetime,
			last_seen datetime
		)`,
		`CREATE UNIQUE INDEX idx_users_email ON users(email)`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func TestCreateWithOwner(t *testing.T) {
	t.Run("creates both rows and links the owner", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewOrganizationRepository(db)

		org := &model.Organization{Name: "Sunrise Dental", OnboardingStep: model.StepProfile}
		owner := &model.User{Name: "Dana", Email: "dana@sunrise.example", Password: "x", Role: model.Owner}
		require.NoError(t, repo.CreateWithOwner(org, owner))

		assert.NotZero(t, org.ID)
		assert.Equal(t, org.ID, owner.OrgID)

		found, err := repo.FindByID(org.ID)
		require.NoError(t, err)
		assert.Equal(t, "Sunrise Dental", found.Name)
	})

	t.Run("rolls back the organization when the owner insert fails", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewOrganizationRepository(db)

		taken := &model.User{Name: "First", Email: "dana@sunrise.example", Password: "x", Role: model.Owner, OrgID: 99}
		require.NoError(t, db.Create(taken).Error)

		org := &model.Organization{Name: "Orphan Clinic"}
		owner := &model.User{Name: "Second", Email: "dana@sunrise.example", Password: "x", Role: model.Owner}
		err := repo.CreateWithOwner(org, owner)
		require.Error(t, err)

		var orgCount int64
		require.NoError(t, db.Model(&model.Organization{}).Count(&orgCount).Error)
		assert.Zero(t, orgCount, "failed registration must not leave an organization behind")

		var userCount int64
		require.NoError(t, db.Model(&model.User{}).Count(&userCount).Error)
		assert.Equal(t, int64(1), userCount)
	})
}
