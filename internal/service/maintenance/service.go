// Package maintenance holds the periodic jobs: the archive sweep of completed
// advertisements and the weekly staff digest. Both report a human-readable
// summary instead of an error so cron wrappers can log it verbatim.
package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/Berlkot/django-proj-kek-2025/internal/adapter/mail"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
	"github.com/Berlkot/django-proj-kek-2025/internal/lifecycle"
)

type adRepo interface {
	ArchiveBefore(ctx context.Context, sourceStatuses []string, archivedStatusID int64, cutoff time.Time) (int64, error)
	CountPublishedSince(ctx context.Context, since time.Time) (int, error)
}

type userRepo interface {
	StaffEmails(ctx context.Context) ([]string, error)
	CountJoinedSince(ctx context.Context, since time.Time) (int, error)
}

type catalogService interface {
	StatusByName(ctx context.Context, name string) (*domain.AdStatus, error)
}

type mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

type eventPublisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
}

// Service runs maintenance jobs.
type Service struct {
	log     *slog.Logger
	ads     adRepo
	users   userRepo
	catalog catalogService
	mailer  mailer
	events  eventPublisher
	policy  *lifecycle.Policy
	subject string
	now     func() time.Time
}

// NewService creates a maintenance service. subject is the digest email subject.
func NewService(
	log *slog.Logger,
	ads adRepo,
	users userRepo,
	catalog catalogService,
	mailer mailer,
	events eventPublisher,
	policy *lifecycle.Policy,
	subject string,
) *Service {
	return &Service{
		log:     log.With("service", "maintenance"),
		ads:     ads,
		users:   users,
		catalog: catalog,
		mailer:  mailer,
		events:  events,
		policy:  policy,
		subject: subject,
		now:     time.Now,
	}
}

// recoverSweep must be deferred directly. A panic in the sweep is logged and
// replaced by the sweep's failure summary.
func (s *Service) recoverSweep(ctx context.Context, summary *string, failed func(context.Context, error) string) {
	r := recover()
	if r == nil {
		return
	}
	s.log.ErrorContext(ctx, "sweep panicked",
		slog.Any("panic", r),
		slog.String("stack", string(debug.Stack())),
	)
	*summary = failed(ctx, fmt.Errorf("panic: %v", r))
}

// guarded turns a panic in fn into an error. recoverSweep does not see panics
// raised on other goroutines.
func guarded(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return fn()
	}
}
