//go:build integration
// +build integration

package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/infrastructure/connector"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/infrastructure/messaging"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/infrastructure/persistence"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/infrastructure/session"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/config"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestSessionSecret signs session tokens in integration tests.
const TestSessionSecret = "integration-secret-0123456789abcdef"

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	*Services

	Storage   *config.StorageSettings
	AuthConf  *config.AuthSettings
	DBContext *persistence.TestContext
}

// TestStorageSettings returns storage settings rooted in a temp directory.
func TestStorageSettings(t *testing.T) *config.StorageSettings {
	t.Helper()
	root := t.TempDir()
	return &config.StorageSettings{
		PublicDir:         filepath.Join(root, "public"),
		PrivateDir:        filepath.Join(root, "private"),
		PublicURLPrefix:   "/uploads",
		MaxImageBytes:     1 << 20,
		MaxImageWidth:     1024,
		MaxImageHeight:    1024,
		MaxResumeBytes:    1 << 20,
		MaxArchiveBytes:   4 << 20,
		MaxArchiveEntries: 50,
		MaxExtractedBytes: 8 << 20,
		MastheadEntryFile: "index.html",
	}
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)
	repos := dbContext.Repos

	// Setup storage
	storage := TestStorageSettings(t)
	publicFiles, err := connector.NewLocalConnector(storage.PublicDir, logger)
	require.NoError(t, err, "Failed to create public connector")
	privateFiles, err := connector.NewLocalConnector(storage.PrivateDir, logger)
	require.NoError(t, err, "Failed to create private connector")

	// Setup sessions
	authSettings := &config.AuthSettings{
		SessionSecret: TestSessionSecret,
		TokenTTL:      time.Hour,
		Issuer:        "appective-test",
		CookieName:    "appective_session",
	}
	issuer, err := session.NewJWTIssuer(authSettings)
	require.NoError(t, err, "Failed to create token issuer")

	services, err := NewServices(&Stores{
		Banners:           repos.Banners,
		PartnerCategories: repos.PartnerCategories,
		PartnerLogos:      repos.PartnerLogos,
		TeamMembers:       repos.TeamMembers,
		Services:          repos.Services,
		SocialLinks:       repos.SocialLinks,
		Jobs:              repos.Jobs,
		Applications:      repos.Applications,
		Subscribers:       repos.Subscribers,
		Games:             repos.Games,
		WebPortals:        repos.WebPortals,
		DigitalMarketing:  repos.DigitalMarketing,
		Mastheads:         repos.Mastheads,
		Assets:            repos.Assets,
		Users:             repos.Users,
		Revocations:       repos.Revocations,
		PublicFiles:       publicFiles,
		PrivateFiles:      privateFiles,
		Issuer:            issuer,
		Publisher:         messaging.NewLogPublisher(logger),
	}, storage, logger)
	require.NoError(t, err, "Failed to create services")

	return &TestServices{
		Services:  services,
		Storage:   storage,
		AuthConf:  authSettings,
		DBContext: dbContext,
	}
}
