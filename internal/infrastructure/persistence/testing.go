//go:build integration
// +build integration

package persistence

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/config"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB    *gorm.DB
	Repos *Repositories
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  filepath.Join(t.TempDir(), "test.db"),
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	repos, err := NewRepositories(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create repositories")

	return &TestContext{
		DB:    db,
		Repos: repos,
	}
}

// NewTestRecord returns a record with a fresh ID and timestamps.
func NewTestRecord() content.Record {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return content.Record{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
}

// CreateTestTeamMember creates a team member with default values
func CreateTestTeamMember(t *testing.T, name string, order int) *content.TeamMember {
	t.Helper()

	return &content.TeamMember{
		Record:       NewTestRecord(),
		Name:         name,
		Role:         "Designer",
		ImagePath:    "/uploads/team/" + strings.ToLower(name) + ".png",
		DisplayOrder: order,
	}
}

// CreateTestJob creates a job opening with default values
func CreateTestJob(t *testing.T, title string, active bool) *content.JobOpening {
	t.Helper()

	return &content.JobOpening{
		Record:         NewTestRecord(),
		Title:          title,
		Department:     "Creative",
		Location:       "Istanbul",
		EmploymentType: content.EmploymentFullTime,
		Description:    "<p>Join us</p>",
		IsActive:       active,
	}
}
