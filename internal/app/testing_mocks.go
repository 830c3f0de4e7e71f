//go:build unit
// +build unit

package app

import (
	"context"
	"io"
	"mime/multipart"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/assets"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/notify"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of content.Repository
type MockRepository[T content.Entity] struct {
	mock.Mock
}

func (m *MockRepository[T]) Create(ctx context.Context, entity T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockRepository[T]) List(ctx context.Context, query *content.ListQuery) ([]T, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) Count(ctx context.Context, query *content.ListQuery) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		var zero T
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

func (m *MockRepository[T]) UpdateByID(ctx context.Context, entity T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockRepository[T]) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAssetService is a mock implementation of assets.AssetService
type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (*assets.StoredImage, error) {
	args := m.Called(ctx, file, folder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assets.StoredImage), args.Error(1)
}

func (m *MockAssetService) UploadMasthead(ctx context.Context, file *multipart.FileHeader) (*assets.MastheadUpload, error) {
	args := m.Called(ctx, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assets.MastheadUpload), args.Error(1)
}

func (m *MockAssetService) Open(ctx context.Context, publicPath string) (*assets.Object, error) {
	args := m.Called(ctx, publicPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assets.Object), args.Error(1)
}

func (m *MockAssetService) Delete(ctx context.Context, publicPath string) error {
	args := m.Called(ctx, publicPath)
	return args.Error(0)
}

func (m *MockAssetService) StoreResume(ctx context.Context, file *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

func (m *MockAssetService) OpenResume(ctx context.Context, key string) (*assets.Object, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assets.Object), args.Error(1)
}

func (m *MockAssetService) DeleteResume(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockAssetRepository is a mock implementation of assets.AssetRepository
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *assets.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) CreateBatch(ctx context.Context, batch []*assets.Asset) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockAssetRepository) GetByPath(ctx context.Context, path string) (*assets.Asset, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assets.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListByGroup(ctx context.Context, groupID string) ([]*assets.Asset, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assets.Asset), args.Error(1)
}

func (m *MockAssetRepository) DeleteByPath(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockAssetRepository) DeleteByGroup(ctx context.Context, groupID string) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

// MockPublisher is a mock implementation of notify.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event notify.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockTokenIssuer is a mock implementation of auth.TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(user *auth.AdminUser) (*auth.Session, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockTokenIssuer) Parse(token string) (*auth.Principal, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Principal), args.Error(1)
}

// MockUserRepository is a mock implementation of auth.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *auth.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*auth.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.AdminUser), args.Error(1)
}

func (m *MockUserRepository) UpdateByID(ctx context.Context, user *auth.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockRevocationRepository is a mock implementation of auth.RevocationRepository
type MockRevocationRepository struct {
	mock.Mock
}

func (m *MockRevocationRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, expiresAt)
	return args.Error(0)
}

func (m *MockRevocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRevocationRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockCRUDService is a mock implementation of content.CRUDService
type MockCRUDService[T content.Entity] struct {
	mock.Mock
}

func (m *MockCRUDService[T]) Create(ctx context.Context, entity T) (T, error) {
	args := m.Called(ctx, entity)
	if args.Get(0) == nil {
		var zero T
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

func (m *MockCRUDService[T]) List(ctx context.Context, query *content.ListQuery) ([]T, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockCRUDService[T]) GetByID(ctx context.Context, id string) (T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		var zero T
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

func (m *MockCRUDService[T]) Update(ctx context.Context, id string, entity T) (T, error) {
	args := m.Called(ctx, id, entity)
	if args.Get(0) == nil {
		var zero T
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

func (m *MockCRUDService[T]) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBannerService is a mock implementation of content.BannerService
type MockBannerService struct {
	mock.Mock
}

func (m *MockBannerService) Get(ctx context.Context) (*content.Banner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Banner), args.Error(1)
}

func (m *MockBannerService) Save(ctx context.Context, banner *content.Banner) (*content.Banner, error) {
	args := m.Called(ctx, banner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Banner), args.Error(1)
}

// MockPartnerService is a mock implementation of content.PartnerService
type MockPartnerService struct {
	mock.Mock
}

func (m *MockPartnerService) ListGroups(ctx context.Context) ([]*content.PartnerGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.PartnerGroup), args.Error(1)
}

// MockApplicationService is a mock implementation of content.ApplicationService
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Submit(ctx context.Context, application *content.JobApplication, resume *multipart.FileHeader) (*content.JobApplication, error) {
	args := m.Called(ctx, application, resume)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.JobApplication), args.Error(1)
}

func (m *MockApplicationService) List(ctx context.Context, query *content.ListQuery) ([]*content.JobApplication, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.JobApplication), args.Error(1)
}

func (m *MockApplicationService) GetByID(ctx context.Context, id string) (*content.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.JobApplication), args.Error(1)
}

func (m *MockApplicationService) OpenResume(ctx context.Context, id string) (*content.JobApplication, *assets.Object, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*content.JobApplication), args.Get(1).(*assets.Object), args.Error(2)
}

func (m *MockApplicationService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockNewsletterService is a mock implementation of content.NewsletterService
type MockNewsletterService struct {
	mock.Mock
}

func (m *MockNewsletterService) Subscribe(ctx context.Context, email string, source *string) (*content.Subscriber, error) {
	args := m.Called(ctx, email, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Subscriber), args.Error(1)
}

func (m *MockNewsletterService) Unsubscribe(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockNewsletterService) List(ctx context.Context, query *content.ListQuery) ([]*content.Subscriber, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.Subscriber), args.Error(1)
}

func (m *MockNewsletterService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNewsletterService) ExportCSV(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

// MockAuthService is a mock implementation of auth.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*auth.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*auth.Principal, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Principal), args.Error(1)
}

func (m *MockAuthService) CreateUser(ctx context.Context, email, password string, role auth.Role) (*auth.AdminUser, error) {
	args := m.Called(ctx, email, password, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.AdminUser), args.Error(1)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

// MockSiteService is a mock implementation of content.SiteService
type MockSiteService struct {
	mock.Mock
}

func (m *MockSiteService) HomePage(ctx context.Context) (*content.HomePage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.HomePage), args.Error(1)
}

func (m *MockSiteService) Careers(ctx context.Context) ([]*content.JobOpening, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.JobOpening), args.Error(1)
}

func (m *MockSiteService) Masthead(ctx context.Context, id string) (*content.Masthead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Masthead), args.Error(1)
}

func (m *MockSiteService) SocialLinks(ctx context.Context) ([]*content.SocialLink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.SocialLink), args.Error(1)
}
