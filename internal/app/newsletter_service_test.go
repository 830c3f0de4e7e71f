//go:build unit
// +build unit

package app

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/notify"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func emailFilter(email string) interface{} {
	return mock.MatchedBy(func(q *content.ListQuery) bool { return q.Filters["email"] == email })
}

func TestNewsletterService_Subscribe(t *testing.T) {
	repo := new(MockRepository[*content.Subscriber])
	publisher := new(MockPublisher)
	svc, err := NewNewsletterService(repo, publisher, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	repo.On("Count", mock.Anything, emailFilter("jane@example.com")).Return(int64(0), nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*content.Subscriber")).Return(nil)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e notify.Event) bool {
		return e.Type == notify.EventSubscriberCreated
	})).Return(nil)

	source := "footer"
	sub, err := svc.Subscribe(context.Background(), "  Jane@Example.COM ", &source)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", sub.Email)
	assert.NotEmpty(t, sub.ID)
	publisher.AssertExpectations(t)
}

func TestNewsletterService_Subscribe_Duplicate(t *testing.T) {
	repo := new(MockRepository[*content.Subscriber])
	svc, err := NewNewsletterService(repo, nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	repo.On("Count", mock.Anything, emailFilter("jane@example.com")).Return(int64(1), nil)

	_, err = svc.Subscribe(context.Background(), "JANE@example.com", nil)
	assert.ErrorIs(t, err, content.ErrConflict)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNewsletterService_Subscribe_InvalidEmail(t *testing.T) {
	repo := new(MockRepository[*content.Subscriber])
	svc, err := NewNewsletterService(repo, nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = svc.Subscribe(context.Background(), "not an email", nil)
	assert.ErrorIs(t, err, content.ErrValidation)
}

func TestNewsletterService_Unsubscribe(t *testing.T) {
	repo := new(MockRepository[*content.Subscriber])
	svc, err := NewNewsletterService(repo, nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	repo.On("List", mock.Anything, emailFilter("jane@example.com")).
		Return([]*content.Subscriber{{Record: content.Record{ID: "s1"}, Email: "jane@example.com"}}, nil).Once()
	repo.On("DeleteByID", mock.Anything, "s1").Return(nil)

	require.NoError(t, svc.Unsubscribe(context.Background(), "Jane@example.com"))

	repo.On("List", mock.Anything, emailFilter("jane@example.com")).Return([]*content.Subscriber{}, nil).Once()
	assert.ErrorIs(t, svc.Unsubscribe(context.Background(), "jane@example.com"), content.ErrNotFound)
}

func TestNewsletterService_ExportCSV(t *testing.T) {
	repo := new(MockRepository[*content.Subscriber])
	svc, err := NewNewsletterService(repo, nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	at := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	source := "=HYPERLINK(\"x\")"
	repo.On("List", mock.Anything, mock.Anything).Return([]*content.Subscriber{
		{Record: content.Record{CreatedAt: at}, Email: "a@example.com"},
		{Record: content.Record{CreatedAt: at}, Email: "b@example.com", Source: &source},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), &buf))

	want := "email,source,subscribed_at\n" +
		"a@example.com,,2025-03-04T05:06:07Z\n" +
		"b@example.com,\"'=HYPERLINK(\"\"x\"\")\",2025-03-04T05:06:07Z\n"
	assert.Equal(t, want, buf.String())
}
