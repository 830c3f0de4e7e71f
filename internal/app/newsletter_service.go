package app

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/notify"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"github.com/google/uuid"
)

type newsletterService struct {
	repo      content.Repository[*content.Subscriber]
	publisher notify.Publisher
	logger    logger.Logger
	now       func() time.Time
}

// NewNewsletterService creates the service managing newsletter subscribers
func NewNewsletterService(repo content.Repository[*content.Subscriber], publisher notify.Publisher, logger logger.Logger) (content.NewsletterService, error) {
	if repo == nil {
		return nil, errors.New("newsletter service requires a repository")
	}
	return &newsletterService{repo: repo, publisher: publisher, logger: logger, now: timestamp}, nil
}

func (s *newsletterService) Subscribe(ctx context.Context, email string, source *string) (*content.Subscriber, error) {
	subscriber := &content.Subscriber{Email: email, Source: source}
	subscriber.SetID(uuid.NewString())
	subscriber.Normalize()
	now := s.now()
	subscriber.Stamp(now, now)
	if err := subscriber.Validate(); err != nil {
		return nil, err
	}

	n, err := s.repo.Count(ctx, content.NewListQuery().WithFilter("email", subscriber.Email))
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, fmt.Errorf("%w: %s is already subscribed", content.ErrConflict, subscriber.Email)
	}
	// The unique index still catches concurrent signups.
	if err := s.repo.Create(ctx, subscriber); err != nil {
		return nil, err
	}

	s.logger.Info("New newsletter subscriber", "id", subscriber.ID)
	publish(ctx, s.publisher, s.logger, notify.NewEvent(notify.EventSubscriberCreated, map[string]any{
		"subscriberId": subscriber.ID,
		"email":        subscriber.Email,
	}))
	return subscriber, nil
}

func (s *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	email = content.NormalizeEmail(email)
	if email == "" {
		return content.NewValidationError("email is required")
	}
	query := content.NewListQuery().WithFilter("email", email)
	query.Limit = 1
	found, err := s.repo.List(ctx, query)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return fmt.Errorf("subscriber %s: %w", email, content.ErrNotFound)
	}
	return s.repo.DeleteByID(ctx, found[0].ID)
}

func (s *newsletterService) List(ctx context.Context, query *content.ListQuery) ([]*content.Subscriber, error) {
	return s.repo.List(ctx, query)
}

func (s *newsletterService) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

// ExportCSV writes every subscriber, oldest first.
func (s *newsletterService) ExportCSV(ctx context.Context, w io.Writer) error {
	query := content.NewListQuery()
	query.SortBy = "createdAt"
	query.SortOrder = content.SortAsc
	subscribers, err := s.repo.List(ctx, query)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"email", "source", "subscribed_at"}); err != nil {
		return err
	}
	for _, sub := range subscribers {
		source := ""
		if sub.Source != nil {
			source = *sub.Source
		}
		row := []string{csvCell(sub.Email), csvCell(source), sub.CreatedAt.Format(time.RFC3339)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// csvCell keeps spreadsheet applications from evaluating a cell as a formula.
func csvCell(value string) string {
	if value != "" && strings.ContainsRune("=+-@\t\r", rune(value[0])) {
		return "'" + value
	}
	return value
}
