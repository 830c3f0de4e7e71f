package models

import "github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"

// GameModel is the GORM database model for game portfolio items
type GameModel struct {
	Base
	Title        string   `gorm:"not null;type:varchar(160)"`
	Description  string   `gorm:"not null;type:text"`
	ImagePath    string   `gorm:"not null;type:varchar(512)"`
	PlayURL      *string  `gorm:"column:play_url;type:varchar(2048)"`
	Platforms    []string `gorm:"serializer:json;type:text"`
	DisplayOrder int      `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (GameModel) TableName() string {
	return "games"
}

// ToDomain converts GORM model to domain entity
func (m *GameModel) ToDomain() *content.Game {
	platforms := m.Platforms
	if platforms == nil {
		platforms = []string{}
	}
	return &content.Game{
		Record:       m.toRecord(),
		Title:        m.Title,
		Description:  m.Description,
		ImagePath:    m.ImagePath,
		PlayURL:      m.PlayURL,
		Platforms:    platforms,
		DisplayOrder: m.DisplayOrder,
	}
}

// FromDomain converts domain entity to GORM model
func (m *GameModel) FromDomain(g *content.Game) {
	m.fromRecord(g.Record)
	m.Title = g.Title
	m.Description = g.Description
	m.ImagePath = g.ImagePath
	m.PlayURL = g.PlayURL
	m.Platforms = g.Platforms
	m.DisplayOrder = g.DisplayOrder
}

// WebPortalModel is the GORM database model for web portal portfolio items
type WebPortalModel struct {
	Base
	Title        string  `gorm:"not null;type:varchar(160)"`
	Description  string  `gorm:"not null;type:text"`
	ImagePath    string  `gorm:"not null;type:varchar(512)"`
	SiteURL      *string `gorm:"column:site_url;type:varchar(2048)"`
	DisplayOrder int     `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (WebPortalModel) TableName() string {
	return "web_portals"
}

// ToDomain converts GORM model to domain entity
func (m *WebPortalModel) ToDomain() *content.WebPortal {
	return &content.WebPortal{
		Record:       m.toRecord(),
		Title:        m.Title,
		Description:  m.Description,
		ImagePath:    m.ImagePath,
		SiteURL:      m.SiteURL,
		DisplayOrder: m.DisplayOrder,
	}
}

// FromDomain converts domain entity to GORM model
func (m *WebPortalModel) FromDomain(w *content.WebPortal) {
	m.fromRecord(w.Record)
	m.Title = w.Title
	m.Description = w.Description
	m.ImagePath = w.ImagePath
	m.SiteURL = w.SiteURL
	m.DisplayOrder = w.DisplayOrder
}

// DigitalMarketingModel is the GORM database model for digital marketing case studies
type DigitalMarketingModel struct {
	Base
	Title        string  `gorm:"not null;type:varchar(160)"`
	Client       string  `gorm:"not null;type:varchar(120)"`
	Summary      string  `gorm:"not null;type:text"`
	Results      *string `gorm:"type:text"`
	ImagePath    string  `gorm:"not null;type:varchar(512)"`
	DisplayOrder int     `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (DigitalMarketingModel) TableName() string {
	return "digital_marketing_cases"
}

// ToDomain converts GORM model to domain entity
func (m *DigitalMarketingModel) ToDomain() *content.DigitalMarketingCase {
	return &content.DigitalMarketingCase{
		Record:       m.toRecord(),
		Title:        m.Title,
		Client:       m.Client,
		Summary:      m.Summary,
		Results:      m.Results,
		ImagePath:    m.ImagePath,
		DisplayOrder: m.DisplayOrder,
	}
}

// FromDomain converts domain entity to GORM model
func (m *DigitalMarketingModel) FromDomain(d *content.DigitalMarketingCase) {
	m.fromRecord(d.Record)
	m.Title = d.Title
	m.Client = d.Client
	m.Summary = d.Summary
	m.Results = d.Results
	m.ImagePath = d.ImagePath
	m.DisplayOrder = d.DisplayOrder
}

// MastheadModel is the GORM database model for interactive mastheads
type MastheadModel struct {
	Base
	Title         string  `gorm:"not null;type:varchar(160)"`
	Client        *string `gorm:"type:varchar(120)"`
	Description   *string `gorm:"type:text"`
	ThumbnailPath *string `gorm:"type:varchar(512)"`
	EntryPath     string  `gorm:"not null;type:varchar(512)"`
	Width         int     `gorm:"not null;default:0"`
	Height        int     `gorm:"not null;default:0"`
	DisplayOrder  int     `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (MastheadModel) TableName() string {
	return "mastheads"
}

// ToDomain converts GORM model to domain entity
func (m *MastheadModel) ToDomain() *content.Masthead {
	return &content.Masthead{
		Record:        m.toRecord(),
		Title:         m.Title,
		Client:        m.Client,
		Description:   m.Description,
		ThumbnailPath: m.ThumbnailPath,
		EntryPath:     m.EntryPath,
		Width:         m.Width,
		Height:        m.Height,
		DisplayOrder:  m.DisplayOrder,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MastheadModel) FromDomain(h *content.Masthead) {
	m.fromRecord(h.Record)
	m.Title = h.Title
	m.Client = h.Client
	m.Description = h.Description
	m.ThumbnailPath = h.ThumbnailPath
	m.EntryPath = h.EntryPath
	m.Width = h.Width
	m.Height = h.Height
	m.DisplayOrder = h.DisplayOrder
}
