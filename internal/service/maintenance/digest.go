package maintenance

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Berlkot/django-proj-kek-2025/internal/adapter/mail"
)

var digestTemplate = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html lang="ru">
<body>
  <h2>Еженедельный отчет от {{.ReportDate}}</h2>
  <p>Новых объявлений за неделю: <strong>{{.NewAds}}</strong></p>
  <p>Новых пользователей за неделю: <strong>{{.NewUsers}}</strong></p>
</body>
</html>
`))

type digestData struct {
	NewAds     int
	NewUsers   int
	ReportDate string
}

// WeeklyDigest emails staff the number of advertisements and users created
// during the digest window.
func (s *Service) WeeklyDigest(ctx context.Context) (summary string) {
	defer s.recoverSweep(ctx, &summary, s.digestFailed)

	emails, err := s.users.StaffEmails(ctx)
	if err != nil {
		return s.digestFailed(ctx, err)
	}
	if len(emails) == 0 {
		s.log.InfoContext(ctx, "weekly digest: no staff recipients")
		return "No admin users with emails found to send digest."
	}

	now := s.now()
	since := s.policy.DigestSince(now)

	data := digestData{ReportDate: now.Format("02.01.2006")}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(guarded(func() error {
		n, err := s.ads.CountPublishedSince(gctx, since)
		if err != nil {
			return fmt.Errorf("count new advertisements: %w", err)
		}
		data.NewAds = n
		return nil
	}))
	g.Go(guarded(func() error {
		n, err := s.users.CountJoinedSince(gctx, since)
		if err != nil {
			return fmt.Errorf("count new users: %w", err)
		}
		data.NewUsers = n
		return nil
	}))
	if err := g.Wait(); err != nil {
		return s.digestFailed(ctx, err)
	}

	var html bytes.Buffer
	if err := digestTemplate.Execute(&html, data); err != nil {
		return s.digestFailed(ctx, fmt.Errorf("render digest: %w", err))
	}

	err = s.mailer.Send(ctx, mail.Message{
		To:      emails,
		Subject: s.subject,
		Text:    fmt.Sprintf("Новых объявлений: %d. Новых пользователей: %d.", data.NewAds, data.NewUsers),
		HTML:    html.String(),
	})
	if err != nil {
		return s.digestFailed(ctx, err)
	}

	s.log.InfoContext(ctx, "weekly digest sent",
		slog.Int("recipients", len(emails)),
		slog.Int("new_ads", data.NewAds),
		slog.Int("new_users", data.NewUsers),
	)
	return fmt.Sprintf("Weekly digest sent to %d admins.", len(emails))
}

func (s *Service) digestFailed(ctx context.Context, err error) string {
	s.log.ErrorContext(ctx, "weekly digest failed", slog.String("error", err.Error()))
	return fmt.Sprintf("Failed to send weekly digest: %v", err)
}
