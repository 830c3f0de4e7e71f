package v1

import (
	"strings"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/app"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/config"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// multipartOverhead is added to the largest file cap to bound whole upload requests.
const multipartOverhead = 1 << 20

// maxJSONBytes caps JSON request bodies.
const maxJSONBytes = 1 << 20

// RouteOptions carries the settings the routes depend on.
type RouteOptions struct {
	CookieName      string
	SecureCookie    bool
	PublicURLPrefix string
	MaxUploadBytes  int64
}

// NewRouteOptions derives RouteOptions from the storage and auth settings.
func NewRouteOptions(storage *config.StorageSettings, authSettings *config.AuthSettings) RouteOptions {
	maxFile := max(storage.MaxImageBytes, storage.MaxResumeBytes, storage.MaxArchiveBytes)
	return RouteOptions{
		CookieName:      authSettings.CookieName,
		SecureCookie:    authSettings.SecureCookie,
		PublicURLPrefix: storage.PublicURLPrefix,
		MaxUploadBytes:  maxFile + multipartOverhead,
	}
}

// registerContent mounts the CRUD routes of one content resource. Reads are
// public, writes need the editor role.
func registerContent[E any, PE interface {
	*E
	content.Entity
}](public, editor *gin.RouterGroup, path string, service content.CRUDService[PE], log logger.Logger, filters ...string) {
	handler := NewContentHandler[E, PE](service, log, filters...)
	public.GET(path, handler.List)
	public.GET(path+"/:id", handler.GetByID)
	editor.POST(path, handler.Create)
	editor.PUT(path+"/:id", handler.Update)
	editor.DELETE(path+"/:id", handler.DeleteByID)
}

// SetupRoutes sets up all the API routes for version 1 and the public uploads route.
func SetupRoutes(r *gin.Engine, services *app.Services, opts RouteOptions, log logger.Logger) {
	jsonLimit := LimitBody(maxJSONBytes)
	uploadLimit := LimitBody(opts.MaxUploadBytes)

	v1 := r.Group(BasePath) // lookup in version file
	public := v1.Group("", jsonLimit)
	editor := v1.Group("", jsonLimit, RequireRole(services.Auth, opts.CookieName, log, auth.RoleEditor))
	admin := v1.Group("", jsonLimit, RequireRole(services.Auth, opts.CookieName, log, auth.RoleAdmin))

	// Auth Routes
	authHandler := NewAuthHandler(services.Auth, opts.CookieName, opts.SecureCookie, log)
	public.POST("/auth/login", authHandler.Login)
	public.POST("/auth/logout", authHandler.Logout)
	public.GET("/auth/status", authHandler.Status)

	// Banner Routes
	bannerHandler := NewBannerHandler(services.Banner, log)
	public.GET("/banner", bannerHandler.Get)
	editor.PUT("/banner", bannerHandler.Save)

	// Partner Routes
	partnerHandler := NewPartnerHandler(services.Partners, log)
	public.GET("/partners", partnerHandler.ListGroups)

	// Content Routes
	registerContent(public, editor, "/partner-categories", services.PartnerCategories, log)
	registerContent(public, editor, "/partner-logos", services.PartnerLogos, log, "categoryId")
	registerContent(public, editor, "/team-members", services.TeamMembers, log)
	registerContent(public, editor, "/services", services.Services, log)
	registerContent(public, editor, "/social-links", services.SocialLinks, log, "platform")
	registerContent(public, editor, "/jobs", services.Jobs, log, "active", "department", "employmentType")
	registerContent(public, editor, "/games", services.Games, log)
	registerContent(public, editor, "/web-portals", services.WebPortals, log)
	registerContent(public, editor, "/digital-marketing", services.DigitalMarketing, log)
	registerContent(public, editor, "/mastheads", services.Mastheads, log)

	// Application Routes
	applicationHandler := NewApplicationHandler(services.Applications, log)
	v1.POST("/applications", uploadLimit, applicationHandler.Submit)
	admin.GET("/applications", applicationHandler.List)
	admin.GET("/applications/:id", applicationHandler.GetByID)
	admin.GET("/applications/:id/resume", applicationHandler.DownloadResume)
	admin.DELETE("/applications/:id", applicationHandler.DeleteByID)

	// Newsletter Routes
	newsletterHandler := NewNewsletterHandler(services.Newsletter, log)
	public.POST("/newsletter/subscribers", newsletterHandler.Subscribe)
	public.DELETE("/newsletter/subscribers", newsletterHandler.Unsubscribe)
	admin.GET("/newsletter/subscribers", newsletterHandler.List)
	admin.GET("/newsletter/subscribers/export", newsletterHandler.Export)
	admin.DELETE("/newsletter/subscribers/:id", newsletterHandler.DeleteByID)

	// Upload Routes
	uploadHandler := NewUploadHandler(services.Assets, opts.PublicURLPrefix, log)
	uploads := v1.Group("/uploads", uploadLimit, RequireRole(services.Auth, opts.CookieName, log, auth.RoleEditor))
	uploads.POST("/images", uploadHandler.UploadImage)
	uploads.POST("/mastheads", uploadHandler.UploadMasthead)
	uploads.DELETE("", uploadHandler.Delete)

	filesPath := strings.TrimSuffix(opts.PublicURLPrefix, "/") + "/*path"
	r.GET(filesPath, uploadHandler.Serve)
	r.HEAD(filesPath, uploadHandler.Serve)
}
