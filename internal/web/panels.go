package web

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/app"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/assets"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/auth"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"

	"golang.org/x/sync/errgroup"
)

// overviewPanel is shown when no panel is requested.
const (
	overviewPanel = "overview"
	bannerPanel   = "banner"
)

type column struct {
	Label string
	Field string
}

// panel is one page of the admin dashboard.
type panel struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Resource string `json:"resource,omitempty"`
	Editable bool   `json:"editable"`
	Upload   string `json:"upload,omitempty"`
	Folder   string `json:"folder,omitempty"`
	Download string `json:"download,omitempty"`
	Export   string `json:"export,omitempty"`

	role    auth.Role
	columns []column
	sample  map[string]any
	list    func(ctx context.Context) (any, error)
}

func listAll[T content.Entity](svc content.CRUDService[T]) func(ctx context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		return svc.List(ctx, content.NewListQuery())
	}
}

// newPanels lists the dashboard panels in menu order.
func newPanels(services *app.Services) []*panel {
	return []*panel{
		{
			Name: "partners", Title: "Partner categories", Resource: "partner-categories", Editable: true,
			role:    auth.RoleEditor,
			columns: []column{{"ID", "id"}, {"Name", "name"}, {"Order", "displayOrder"}},
			sample:  map[string]any{"id": "media", "name": "Media Partners", "displayOrder": 0},
			list:    listAll(services.PartnerCategories),
		},
		{
			Name: "partner-logos", Title: "Partner logos", Resource: "partner-logos", Editable: true,
			Upload: "images", Folder: assets.FolderPartners,
			role:    auth.RoleEditor,
			columns: []column{{"Name", "name"}, {"Category", "categoryId"}, {"Image", "imagePath"}, {"Order", "displayOrder"}},
			sample:  map[string]any{"categoryId": "media", "name": "", "imagePath": "", "websiteUrl": nil, "displayOrder": 0},
			list:    listAll(services.PartnerLogos),
		},
		{
			Name: "team", Title: "Team", Resource: "team-members", Editable: true,
			Upload: "images", Folder: assets.FolderTeam,
			role:    auth.RoleEditor,
			columns: []column{{"Name", "name"}, {"Role", "role"}, {"Order", "displayOrder"}},
			sample:  map[string]any{"name": "", "role": "", "imagePath": "", "linkedinUrl": nil, "bio": nil, "displayOrder": 0},
			list:    listAll(services.TeamMembers),
		},
		{
			Name: "services", Title: "Services", Resource: "services", Editable: true,
			Upload: "images", Folder: assets.FolderServices,
			role:    auth.RoleEditor,
			columns: []column{{"Title", "title"}, {"Order", "displayOrder"}},
			sample:  map[string]any{"title": "", "description": "", "iconPath": nil, "displayOrder": 0},
			list:    listAll(services.Services),
		},
		{
			Name: "games", Title: "Games", Resource: "games", Editable: true,
			Upload: "images", Folder: assets.FolderGames,
			role:    auth.RoleEditor,
			columns: []column{{"Title", "title"}, {"Image", "imagePath"}, {"Order", "displayOrder"}},
			sample:  map[string]any{"title": "", "description": "", "imagePath": "", "playUrl": nil, "platforms": []string{}, "displayOrder": 0},
			list:    listAll(services.Games),
		},
		{
			Name: "web-portals", Title: "Web portals", Resource: "web-portals", Editable: true,
			Upload: "images", Folder: assets.FolderWebPortals,
			role:    auth.RoleEditor,
			columns: []column{{"Title", "title"}, {"Site", "siteUrl"}, {"Order", "displayOrder"}},
			sample:  map[string]any{"title": "", "description": "", "imagePath": "", "siteUrl": nil, "displayOrder": 0},
			list:    listAll(services.WebPortals),
		},
		{
			Name: "digital-marketing", Title: "Digital marketing", Resource: "digital-marketing", Editable: true,
			Upload: "images", Folder: assets.FolderDigitalMarketing,
			role:    auth.RoleEditor,
			columns: []column{{"Title", "title"}, {"Client", "client"}, {"Order", "displayOrder"}},
			sample:  map[string]any{"title": "", "client": "", "summary": "", "results": nil, "imagePath": "", "displayOrder": 0},
			list:    listAll(services.DigitalMarketing),
		},
		{
			Name: "mastheads", Title: "Mastheads", Resource: "mastheads", Editable: true,
			Upload:  "mastheads",
			role:    auth.RoleEditor,
			columns: []column{{"Title", "title"}, {"Entry", "entryPath"}, {"Width", "width"}, {"Height", "height"}},
			sample:  map[string]any{"title": "", "client": nil, "description": nil, "thumbnailPath": nil, "entryPath": "", "width": 970, "height": 250, "displayOrder": 0},
			list:    listAll(services.Mastheads),
		},
		{
			Name: "social-links", Title: "Social links", Resource: "social-links", Editable: true,
			role:    auth.RoleEditor,
			columns: []column{{"Platform", "platform"}, {"URL", "url"}, {"Order", "displayOrder"}},
			sample:  map[string]any{"platform": "linkedin", "url": "", "displayOrder": 0},
			list:    listAll(services.SocialLinks),
		},
		{
			Name: "jobs", Title: "Jobs", Resource: "jobs", Editable: true,
			role:    auth.RoleEditor,
			columns: []column{{"Title", "title"}, {"Department", "department"}, {"Type", "employmentType"}, {"Active", "isActive"}},
			sample:  map[string]any{"title": "", "department": "", "location": "", "employmentType": content.EmploymentFullTime, "description": "", "isActive": true},
			list:    listAll(services.Jobs),
		},
		{
			Name: "applications", Title: "Applications", Resource: "applications", Download: "resume",
			role:    auth.RoleAdmin,
			columns: []column{{"Name", "fullName"}, {"Email", "email"}, {"Job", "jobId"}, {"Resume", "resumeName"}, {"Received", "createdAt"}},
			list: func(ctx context.Context) (any, error) {
				return services.Applications.List(ctx, content.NewListQuery())
			},
		},
		{
			Name: "newsletter", Title: "Newsletter", Resource: "newsletter/subscribers", Export: "newsletter/subscribers/export",
			role:    auth.RoleAdmin,
			columns: []column{{"Email", "email"}, {"Source", "source"}, {"Subscribed", "createdAt"}},
			list: func(ctx context.Context) (any, error) {
				return services.Newsletter.List(ctx, content.NewListQuery())
			},
		},
	}
}

// rows flattens items into table cells following columns.
func rows(items any, columns []column) ([]map[string]any, error) {
	converted, err := plain(items)
	if err != nil {
		return nil, err
	}
	list, _ := converted.([]any)

	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		cells := make([]string, 0, len(columns))
		for _, c := range columns {
			cells = append(cells, cell(fields[c.Field]))
		}
		out = append(out, map[string]any{"id": fields["id"], "cells": cells})
	}
	return out, nil
}

func cell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case []any:
		parts := make([]string, 0, len(v))
		for _, p := range v {
			parts = append(parts, cell(p))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}

type panelCount struct {
	Panel string `json:"panel"`
	Title string `json:"title"`
	Count int    `json:"count"`
}

// countPanels loads the panels the principal may open concurrently and
// returns their sizes in menu order.
func countPanels(ctx context.Context, panels []*panel, principal *auth.Principal) ([]panelCount, error) {
	counts := make([]panelCount, len(panels))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range panels {
		if !principal.HasRole(p.role) {
			continue
		}
		i, p := i, p
		g.Go(func() error {
			items, err := p.list(gctx)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", p.Name, err)
			}
			n := 0
			if v := reflect.ValueOf(items); v.Kind() == reflect.Slice {
				n = v.Len()
			}
			counts[i] = panelCount{Panel: p.Name, Title: p.Title, Count: n}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := counts[:0]
	for _, c := range counts {
		if c.Panel != "" {
			out = append(out, c)
		}
	}
	return out, nil
}
