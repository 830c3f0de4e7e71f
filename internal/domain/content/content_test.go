//go:build unit
// +build unit

package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBannerNormalizeDefaults(t *testing.T) {
	banner := &Banner{Text: "  <b>Now hiring</b>  ", LinkURL: strPtr("   ")}
	banner.Normalize()

	assert.Equal(t, BannerID, banner.ID)
	assert.Equal(t, "Now hiring", banner.Text)
	assert.Nil(t, banner.LinkURL)
	assert.Equal(t, DefaultBannerColor, banner.BackgroundColor)
	assert.NoError(t, banner.Validate())
}

func TestBannerValidate(t *testing.T) {
	tests := []struct {
		name    string
		banner  Banner
		wantTag string
	}{
		{"empty text", Banner{Record: Record{ID: BannerID}, BackgroundColor: "#fff"}, "Field: Text, Tag: required"},
		{"bad color", Banner{Record: Record{ID: BannerID}, Text: "x", BackgroundColor: "red"}, "Field: BackgroundColor, Tag: hexcolor"},
		{"bad link", Banner{Record: Record{ID: BannerID}, Text: "x", BackgroundColor: "#fff", LinkURL: strPtr("javascript:alert(1)")}, "Field: LinkURL, Tag: weburl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.banner.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			assert.Contains(t, err.Error(), tt.wantTag)
		})
	}
}

func TestPartnerCategoryValidate(t *testing.T) {
	category := &PartnerCategory{Record: Record{ID: " Media-Partners "}, Name: " Media Partners "}
	category.Normalize()
	assert.Equal(t, "media-partners", category.ID)
	assert.Equal(t, "Media Partners", category.Name)
	assert.NoError(t, category.Validate())

	bad := &PartnerCategory{Record: Record{ID: "media partners"}, Name: "Media"}
	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestPartnerLogoAssetPaths(t *testing.T) {
	logo := &PartnerLogo{
		Record:     Record{ID: "1"},
		CategoryID: "media",
		Name:       "Acme",
		ImagePath:  "/uploads/partners/acme.png",
	}
	assert.NoError(t, logo.Validate())
	assert.Equal(t, []string{"/uploads/partners/acme.png"}, logo.AssetPaths())

	logo.ImagePath = "/uploads/../etc/passwd"
	assert.Error(t, logo.Validate())
}

func TestServiceNormalizeSanitizesDescription(t *testing.T) {
	service := &Service{
		Record:      Record{ID: "1"},
		Title:       " Strategy ",
		Description: `<p onclick="x()">Plan</p><script>alert(1)</script>`,
	}
	service.Normalize()

	assert.Equal(t, "Strategy", service.Title)
	assert.NotContains(t, service.Description, "<script")
	assert.NotContains(t, service.Description, "onclick")
	assert.Contains(t, service.Description, "Plan")
	assert.Empty(t, service.AssetPaths())
}

func TestJobOpeningValidate(t *testing.T) {
	job := &JobOpening{
		Record:         Record{ID: "1"},
		Title:          "Designer",
		Department:     "Creative",
		Location:       "Istanbul",
		EmploymentType: " Full-Time ",
		Description:    "Design things",
		IsActive:       true,
	}
	job.Normalize()
	assert.Equal(t, EmploymentFullTime, job.EmploymentType)
	assert.NoError(t, job.Validate())

	job.EmploymentType = "freelance"
	err := job.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: EmploymentType, Tag: oneof")
}

func TestJobApplicationNormalize(t *testing.T) {
	application := &JobApplication{
		Record:      Record{ID: "1"},
		JobID:       " job-1 ",
		FullName:    " <i>Ada</i> Lovelace ",
		Email:       " Ada@Example.COM ",
		CoverLetter: strPtr("   "),
		ResumePath:  "resumes/x.pdf",
		ResumeName:  "cv.pdf",
	}
	application.Normalize()

	assert.Equal(t, "job-1", application.JobID)
	assert.Equal(t, "Ada Lovelace", application.FullName)
	assert.Equal(t, "ada@example.com", application.Email)
	assert.Nil(t, application.CoverLetter)
	assert.NoError(t, application.Validate())

	application.Email = "nope"
	assert.Error(t, application.Validate())
}

func TestSubscriberNormalize(t *testing.T) {
	subscriber := &Subscriber{Record: Record{ID: "1"}, Email: "  News@Appective.NET "}
	subscriber.Normalize()
	assert.Equal(t, "news@appective.net", subscriber.Email)
	assert.NoError(t, subscriber.Validate())
}

func TestGameNormalizeDropsEmptyPlatforms(t *testing.T) {
	game := &Game{
		Record:      Record{ID: "1"},
		Title:       "Runner",
		Description: "Endless runner",
		ImagePath:   "/uploads/games/runner.png",
		Platforms:   []string{" ios ", "", "android"},
	}
	game.Normalize()
	assert.Equal(t, []string{"ios", "android"}, game.Platforms)
	assert.NoError(t, game.Validate())
}

func TestMastheadValidateEntryPath(t *testing.T) {
	masthead := &Masthead{
		Record:        Record{ID: "1"},
		Title:         "Launch",
		EntryPath:     "/uploads/mastheads/abc/index.html",
		ThumbnailPath: strPtr("/uploads/thumbnails/abc.png"),
		Width:         970,
		Height:        250,
	}
	assert.NoError(t, masthead.Validate())
	assert.ElementsMatch(t, []string{"/uploads/mastheads/abc/index.html", "/uploads/thumbnails/abc.png"}, masthead.AssetPaths())

	masthead.EntryPath = "/uploads/mastheads/abc/banner.html"
	err := masthead.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestSocialLinkValidate(t *testing.T) {
	link := &SocialLink{Record: Record{ID: "1"}, Platform: " LinkedIn ", URL: "https://linkedin.com/company/appective"}
	link.Normalize()
	assert.NoError(t, link.Validate())

	link.Platform = "myspace"
	assert.Error(t, link.Validate())
}

func TestListQueryValidate(t *testing.T) {
	query := NewListQuery().WithFilter("category_id", "media")
	query.Limit = 20
	query.SortOrder = SortDesc
	assert.NoError(t, query.Validate())

	query.Limit = MaxListLimit + 1
	err := query.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	query.Limit = 10
	query.SortOrder = "sideways"
	assert.Error(t, query.Validate())
}
