package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	v1 "github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/api/rest/v1"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/app"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// LoginPath is where unauthenticated dashboard visits are sent.
const LoginPath = "/admin/login"

// SiteHandler serves the public pages and the admin dashboard.
type SiteHandler struct {
	site       content.SiteService
	banner     content.BannerService
	auth       auth.AuthService
	renderer   *Renderer
	panels     []*panel
	cookieName string
	logger     logger.Logger
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(services *app.Services, renderer *Renderer, cookieName string, logger logger.Logger) (*SiteHandler, error) {
	if services == nil || services.Site == nil || services.Banner == nil || services.Auth == nil {
		return nil, errors.New("site, banner and auth services are required")
	}
	if renderer == nil {
		return nil, errors.New("renderer is required")
	}
	return &SiteHandler{
		site:       services.Site,
		banner:     services.Banner,
		auth:       services.Auth,
		renderer:   renderer,
		panels:     newPanels(services),
		cookieName: cookieName,
		logger:     logger,
	}, nil
}

// render writes the page or, when the template fails, a plain 500.
func (h *SiteHandler) render(ctx *gin.Context, status int, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	data["year"] = time.Now().Year()

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, name, data); err != nil {
		h.logger.Error("Failed to render page", "template", name, "error", err)
		ctx.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	ctx.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func (h *SiteHandler) renderError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong. Please try again later."
	if errors.Is(err, content.ErrNotFound) {
		status = http.StatusNotFound
		message = "The page you are looking for does not exist."
	} else {
		h.logger.Error("Failed to load page", "path", ctx.Request.URL.Path, "error", err)
	}
	h.render(ctx, status, "error.html", map[string]any{"status": status, "message": message})
}

// socialLinks loads the footer links. Pages still render without them.
func (h *SiteHandler) socialLinks(ctx *gin.Context) []*content.SocialLink {
	links, err := h.site.SocialLinks(ctx)
	if err != nil {
		h.logger.Warn("Failed to load social links", "error", err)
		return nil
	}
	return links
}

// Home renders the landing page
func (h *SiteHandler) Home(ctx *gin.Context) {
	home, err := h.site.HomePage(ctx)
	if err != nil {
		h.renderError(ctx, err)
		return
	}
	h.render(ctx, http.StatusOK, "home.html", map[string]any{
		"banner":      home.Banner,
		"services":    home.Services,
		"partners":    home.Partners,
		"team":        home.Team,
		"games":       home.Games,
		"webPortals":  home.WebPortals,
		"marketing":   home.Marketing,
		"mastheads":   home.Mastheads,
		"socialLinks": home.SocialLinks,
	})
}

// Careers renders the open positions with their application forms
func (h *SiteHandler) Careers(ctx *gin.Context) {
	jobs, err := h.site.Careers(ctx)
	if err != nil {
		h.renderError(ctx, err)
		return
	}
	h.render(ctx, http.StatusOK, "careers.html", map[string]any{
		"jobs":        jobs,
		"socialLinks": h.socialLinks(ctx),
	})
}

// Masthead renders a masthead creative in a sandboxed frame
func (h *SiteHandler) Masthead(ctx *gin.Context) {
	masthead, err := h.site.Masthead(ctx, ctx.Param("id"))
	if err != nil {
		h.renderError(ctx, err)
		return
	}
	h.render(ctx, http.StatusOK, "masthead.html", map[string]any{
		"masthead":    masthead,
		"socialLinks": h.socialLinks(ctx),
	})
}

// Static returns a handler rendering a page without content of its own.
func (h *SiteHandler) Static(name string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		h.render(ctx, http.StatusOK, name, map[string]any{"socialLinks": h.socialLinks(ctx)})
	}
}

// Healthz reports liveness
func (h *SiteHandler) Healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// AdminLogin renders the sign in form
func (h *SiteHandler) AdminLogin(ctx *gin.Context) {
	ctx.Header("Cache-Control", "no-store")
	h.render(ctx, http.StatusOK, "admin/login.html", nil)
}

// principal resolves the session cookie. It returns nil when the visitor is
// not signed in.
func (h *SiteHandler) principal(ctx *gin.Context) (*auth.Principal, error) {
	token := v1.SessionToken(ctx, h.cookieName)
	if token == "" {
		return nil, nil
	}
	principal, err := h.auth.Authenticate(ctx, token)
	if errors.Is(err, auth.ErrUnauthenticated) {
		return nil, nil
	}
	return principal, err
}

func (h *SiteHandler) findPanel(name string) *panel {
	for _, p := range h.panels {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Admin renders the dashboard panel named by the panel query parameter
func (h *SiteHandler) Admin(ctx *gin.Context) {
	ctx.Header("Cache-Control", "no-store")

	principal, err := h.principal(ctx)
	if err != nil {
		h.renderError(ctx, err)
		return
	}
	if principal == nil {
		ctx.Redirect(http.StatusFound, LoginPath)
		return
	}

	menu := []*panel{{Name: overviewPanel, Title: "Overview"}, {Name: bannerPanel, Title: "Banner"}}
	for _, p := range h.panels {
		if principal.HasRole(p.role) {
			menu = append(menu, p)
		}
	}
	data := map[string]any{"principal": principal, "panels": menu}

	name := ctx.DefaultQuery("panel", overviewPanel)
	switch name {
	case overviewPanel:
		counts, err := countPanels(ctx, h.panels, principal)
		if err != nil {
			h.renderError(ctx, err)
			return
		}
		data["panel"] = menu[0]
		data["counts"] = counts
		h.render(ctx, http.StatusOK, "admin/overview.html", data)
		return
	case bannerPanel:
		banner, err := h.banner.Get(ctx)
		if err != nil {
			h.renderError(ctx, err)
			return
		}
		data["panel"] = menu[1]
		data["banner"] = banner
		h.render(ctx, http.StatusOK, "admin/banner.html", data)
		return
	}

	p := h.findPanel(name)
	if p == nil {
		h.renderError(ctx, content.ErrNotFound)
		return
	}
	data["panel"] = p
	if !principal.HasRole(p.role) {
		h.logger.Warn("Forbidden dashboard panel", "userId", principal.UserID, "panel", p.Name)
		h.render(ctx, http.StatusForbidden, "admin/forbidden.html", data)
		return
	}

	items, err := p.list(ctx)
	if err != nil {
		h.renderError(ctx, err)
		return
	}
	tableRows, err := rows(items, p.columns)
	if err != nil {
		h.renderError(ctx, err)
		return
	}

	labels := make([]string, 0, len(p.columns))
	for _, c := range p.columns {
		labels = append(labels, c.Label)
	}
	data["columns"] = labels
	data["rows"] = tableRows
	if p.sample != nil {
		sample, err := json.MarshalIndent(p.sample, "", "  ")
		if err == nil {
			data["sample"] = string(sample)
		}
	}
	h.render(ctx, http.StatusOK, "admin/list.html", data)
}
