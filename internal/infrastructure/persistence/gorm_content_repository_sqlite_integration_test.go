//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/infrastructure/persistence/models"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/config"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentSqliteRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	member := CreateTestTeamMember(t, "Ada", 1)

	err := ctx.Repos.TeamMembers.Create(context.Background(), member)
	require.NoError(t, err)

	var stored models.TeamMemberModel
	require.NoError(t, ctx.DB.First(&stored, "id = ?", member.ID).Error)
	assert.Equal(t, member.Name, stored.Name)

	fetched, err := ctx.Repos.TeamMembers.GetByID(context.Background(), member.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(member, fetched, cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) })); diff != "" {
		t.Errorf("team member mismatch (-want +got):\n%s", diff)
	}
}

func TestContentSqliteRepository_CreateInvalid(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.Repos.TeamMembers.Create(context.Background(), &content.TeamMember{Record: NewTestRecord()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, content.ErrValidation))
}

func TestContentSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.Repos.Games.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, content.ErrNotFound))
}

func TestContentSqliteRepository_DuplicateID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	category := &content.PartnerCategory{Record: NewTestRecord(), Name: "Media"}
	category.ID = "media"
	require.NoError(t, ctx.Repos.PartnerCategories.Create(context.Background(), category))

	err := ctx.Repos.PartnerCategories.Create(context.Background(), category)
	require.Error(t, err)
	assert.True(t, errors.Is(err, content.ErrConflict))
}

func TestContentSqliteRepository_SubscriberEmailUnique(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	first := &content.Subscriber{Record: NewTestRecord(), Email: "news@appective.net"}
	second := &content.Subscriber{Record: NewTestRecord(), Email: "news@appective.net"}

	require.NoError(t, ctx.Repos.Subscribers.Create(context.Background(), first))
	err := ctx.Repos.Subscribers.Create(context.Background(), second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, content.ErrConflict))
}

func TestContentSqliteRepository_ListOrderingAndPaging(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	require.NoError(t, ctx.Repos.TeamMembers.Create(bg, CreateTestTeamMember(t, "Cem", 3)))
	require.NoError(t, ctx.Repos.TeamMembers.Create(bg, CreateTestTeamMember(t, "Ada", 1)))
	require.NoError(t, ctx.Repos.TeamMembers.Create(bg, CreateTestTeamMember(t, "Bora", 2)))

	list, err := ctx.Repos.TeamMembers.List(bg, nil)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Ada", "Bora", "Cem"}, []string{list[0].Name, list[1].Name, list[2].Name})

	query := content.NewListQuery()
	query.SortBy = "name"
	query.SortOrder = content.SortDesc
	query.Limit = 2
	query.Offset = 1
	list, err = ctx.Repos.TeamMembers.List(bg, query)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bora", list[0].Name)
	assert.Equal(t, "Ada", list[1].Name)

	search := content.NewListQuery()
	search.Search = "BOR"
	list, err = ctx.Repos.TeamMembers.List(bg, search)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Bora", list[0].Name)
}

func TestContentSqliteRepository_SearchMatchesWildcardsLiterally(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	for i, name := range []string{"Ada", "Bora 100%", "Cem_X"} {
		member := CreateTestTeamMember(t, name, i)
		member.ImagePath = "/uploads/team/member.png"
		require.NoError(t, ctx.Repos.TeamMembers.Create(bg, member))
	}

	tests := []struct {
		search string
		want   []string
	}{
		{"%", []string{"Bora 100%"}},
		{"_", []string{"Cem_X"}},
		{"!", nil},
		{"a", []string{"Ada", "Bora 100%"}},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			query := content.NewListQuery()
			query.Search = tt.search
			list, err := ctx.Repos.TeamMembers.List(bg, query)
			require.NoError(t, err)

			var names []string
			for _, member := range list {
				names = append(names, member.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestContentSqliteRepository_ListRejectsUnknownColumns(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	query := content.NewListQuery()
	query.SortBy = "password"
	_, err := ctx.Repos.TeamMembers.List(context.Background(), query)
	assert.True(t, errors.Is(err, content.ErrValidation))

	filtered := content.NewListQuery().WithFilter("role", "x")
	_, err = ctx.Repos.TeamMembers.List(context.Background(), filtered)
	assert.True(t, errors.Is(err, content.ErrValidation))
}

func TestContentSqliteRepository_BoolFilterAndCount(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	require.NoError(t, ctx.Repos.Jobs.Create(bg, CreateTestJob(t, "Designer", true)))
	require.NoError(t, ctx.Repos.Jobs.Create(bg, CreateTestJob(t, "Intern", false)))

	active, err := ctx.Repos.Jobs.List(bg, content.NewListQuery().WithFilter("active", "true"))
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Designer", active[0].Title)

	count, err := ctx.Repos.Jobs.Count(bg, content.NewListQuery().WithFilter("active", "false"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = ctx.Repos.Jobs.List(bg, content.NewListQuery().WithFilter("active", "maybe"))
	assert.True(t, errors.Is(err, content.ErrValidation))
}

func TestContentSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	game := &content.Game{
		Record:      NewTestRecord(),
		Title:       "Runner",
		Description: "Endless runner",
		ImagePath:   "/uploads/games/runner.png",
		Platforms:   []string{"ios"},
	}
	require.NoError(t, ctx.Repos.Games.Create(bg, game))

	game.Title = "Runner 2"
	game.Platforms = []string{"ios", "android"}
	game.DisplayOrder = 0
	require.NoError(t, ctx.Repos.Games.UpdateByID(bg, game))

	fetched, err := ctx.Repos.Games.GetByID(bg, game.ID)
	require.NoError(t, err)
	assert.Equal(t, "Runner 2", fetched.Title)
	assert.Equal(t, []string{"ios", "android"}, fetched.Platforms)

	missing := *game
	missing.Record = NewTestRecord()
	err = ctx.Repos.Games.UpdateByID(bg, &missing)
	assert.True(t, errors.Is(err, content.ErrNotFound))
}

func TestContentSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	bg := context.Background()

	member := CreateTestTeamMember(t, "Ada", 1)
	require.NoError(t, ctx.Repos.TeamMembers.Create(bg, member))
	require.NoError(t, ctx.Repos.TeamMembers.DeleteByID(bg, member.ID))

	_, err := ctx.Repos.TeamMembers.GetByID(bg, member.ID)
	assert.True(t, errors.Is(err, content.ErrNotFound))

	err = ctx.Repos.TeamMembers.DeleteByID(bg, member.ID)
	assert.True(t, errors.Is(err, content.ErrNotFound))
}
