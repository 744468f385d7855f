package maintenance

import (
	"context"
	"sync"
	"time"

	"github.com/Berlkot/django-proj-kek-2025/internal/adapter/mail"
	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

var _ adRepo = &adRepoMock{}

type adRepoMock struct {
	ArchiveBeforeFunc       func(ctx context.Context, sourceStatuses []string, archivedStatusID int64, cutoff time.Time) (int64, error)
	CountPublishedSinceFunc func(ctx context.Context, since time.Time) (int, error)

	calls struct {
		ArchiveBefore []struct {
			Ctx              context.Context
			SourceStatuses   []string
			ArchivedStatusID int64
			Cutoff           time.Time
		}
		CountPublishedSince []struct {
			Ctx   context.Context
			Since time.Time
		}
	}
	lockArchiveBefore       sync.RWMutex
	lockCountPublishedSince sync.RWMutex
}

func (mock *adRepoMock) ArchiveBefore(ctx context.Context, sourceStatuses []string, archivedStatusID int64, cutoff time.Time) (int64, error) {
	if mock.ArchiveBeforeFunc == nil {
		panic("adRepoMock.ArchiveBeforeFunc: method is nil but adRepo.ArchiveBefore was just called")
	}
	callInfo := struct {
		Ctx              context.Context
		SourceStatuses   []string
		ArchivedStatusID int64
		Cutoff           time.Time
	}{
		Ctx:              ctx,
		SourceStatuses:   sourceStatuses,
		ArchivedStatusID: archivedStatusID,
		Cutoff:           cutoff,
	}
	mock.lockArchiveBefore.Lock()
	mock.calls.ArchiveBefore = append(mock.calls.ArchiveBefore, callInfo)
	mock.lockArchiveBefore.Unlock()
	return mock.ArchiveBeforeFunc(ctx, sourceStatuses, archivedStatusID, cutoff)
}

func (mock *adRepoMock) ArchiveBeforeCalls() []struct {
	Ctx              context.Context
	SourceStatuses   []string
	ArchivedStatusID int64
	Cutoff           time.Time
} {
	var calls []struct {
		Ctx              context.Context
		SourceStatuses   []string
		ArchivedStatusID int64
		Cutoff           time.Time
	}
	mock.lockArchiveBefore.RLock()
	calls = mock.calls.ArchiveBefore
	mock.lockArchiveBefore.RUnlock()
	return calls
}

func (mock *adRepoMock) CountPublishedSince(ctx context.Context, since time.Time) (int, error) {
	if mock.CountPublishedSinceFunc == nil {
		panic("adRepoMock.CountPublishedSinceFunc: method is nil but adRepo.CountPublishedSince was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Since time.Time
	}{
		Ctx:   ctx,
		Since: since,
	}
	mock.lockCountPublishedSince.Lock()
	mock.calls.CountPublishedSince = append(mock.calls.CountPublishedSince, callInfo)
	mock.lockCountPublishedSince.Unlock()
	return mock.CountPublishedSinceFunc(ctx, since)
}

func (mock *adRepoMock) CountPublishedSinceCalls() []struct {
	Ctx   context.Context
	Since time.Time
} {
	var calls []struct {
		Ctx   context.Context
		Since time.Time
	}
	mock.lockCountPublishedSince.RLock()
	calls = mock.calls.CountPublishedSince
	mock.lockCountPublishedSince.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	StaffEmailsFunc      func(ctx context.Context) ([]string, error)
	CountJoinedSinceFunc func(ctx context.Context, since time.Time) (int, error)

	calls struct {
		StaffEmails []struct {
			Ctx context.Context
		}
		CountJoinedSince []struct {
			Ctx   context.Context
			Since time.Time
		}
	}
	lockStaffEmails      sync.RWMutex
	lockCountJoinedSince sync.RWMutex
}

func (mock *userRepoMock) StaffEmails(ctx context.Context) ([]string, error) {
	if mock.StaffEmailsFunc == nil {
		panic("userRepoMock.StaffEmailsFunc: method is nil but userRepo.StaffEmails was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockStaffEmails.Lock()
	mock.calls.StaffEmails = append(mock.calls.StaffEmails, callInfo)
	mock.lockStaffEmails.Unlock()
	return mock.StaffEmailsFunc(ctx)
}

func (mock *userRepoMock) StaffEmailsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockStaffEmails.RLock()
	calls = mock.calls.StaffEmails
	mock.lockStaffEmails.RUnlock()
	return calls
}

func (mock *userRepoMock) CountJoinedSince(ctx context.Context, since time.Time) (int, error) {
	if mock.CountJoinedSinceFunc == nil {
		panic("userRepoMock.CountJoinedSinceFunc: method is nil but userRepo.CountJoinedSince was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Since time.Time
	}{
		Ctx:   ctx,
		Since: since,
	}
	mock.lockCountJoinedSince.Lock()
	mock.calls.CountJoinedSince = append(mock.calls.CountJoinedSince, callInfo)
	mock.lockCountJoinedSince.Unlock()
	return mock.CountJoinedSinceFunc(ctx, since)
}

func (mock *userRepoMock) CountJoinedSinceCalls() []struct {
	Ctx   context.Context
	Since time.Time
} {
	var calls []struct {
		Ctx   context.Context
		Since time.Time
	}
	mock.lockCountJoinedSince.RLock()
	calls = mock.calls.CountJoinedSince
	mock.lockCountJoinedSince.RUnlock()
	return calls
}

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	StatusByNameFunc func(ctx context.Context, name string) (*domain.AdStatus, error)

	calls struct {
		StatusByName []struct {
			Ctx  context.Context
			Name string
		}
	}
	lockStatusByName sync.RWMutex
}

func (mock *catalogServiceMock) StatusByName(ctx context.Context, name string) (*domain.AdStatus, error) {
	if mock.StatusByNameFunc == nil {
		panic("catalogServiceMock.StatusByNameFunc: method is nil but catalogService.StatusByName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockStatusByName.Lock()
	mock.calls.StatusByName = append(mock.calls.StatusByName, callInfo)
	mock.lockStatusByName.Unlock()
	return mock.StatusByNameFunc(ctx, name)
}

func (mock *catalogServiceMock) StatusByNameCalls() []struct {
	Ctx  context.Context
	Name string
} {
	var calls []struct {
		Ctx  context.Context
		Name string
	}
	mock.lockStatusByName.RLock()
	calls = mock.calls.StatusByName
	mock.lockStatusByName.RUnlock()
	return calls
}

var _ mailer = &mailerMock{}

type mailerMock struct {
	SendFunc func(ctx context.Context, msg mail.Message) error

	calls struct {
		Send []struct {
			Ctx context.Context
			Msg mail.Message
		}
	}
	lockSend sync.RWMutex
}

func (mock *mailerMock) Send(ctx context.Context, msg mail.Message) error {
	if mock.SendFunc == nil {
		panic("mailerMock.SendFunc: method is nil but mailer.Send was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Msg mail.Message
	}{
		Ctx: ctx,
		Msg: msg,
	}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, msg)
}

func (mock *mailerMock) SendCalls() []struct {
	Ctx context.Context
	Msg mail.Message
} {
	var calls []struct {
		Ctx context.Context
		Msg mail.Message
	}
	mock.lockSend.RLock()
	calls = mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}

var _ eventPublisher = &eventPublisherMock{}

type eventPublisherMock struct {
	PublishFunc func(ctx context.Context, routingKey string, event any) error

	calls struct {
		Publish []struct {
			Ctx        context.Context
			RoutingKey string
			Event      any
		}
	}
	lockPublish sync.RWMutex
}

func (mock *eventPublisherMock) Publish(ctx context.Context, routingKey string, event any) error {
	if mock.PublishFunc == nil {
		panic("eventPublisherMock.PublishFunc: method is nil but eventPublisher.Publish was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		RoutingKey string
		Event      any
	}{
		Ctx:        ctx,
		RoutingKey: routingKey,
		Event:      event,
	}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	return mock.PublishFunc(ctx, routingKey, event)
}

func (mock *eventPublisherMock) PublishCalls() []struct {
	Ctx        context.Context
	RoutingKey string
	Event      any
} {
	var calls []struct {
		Ctx        context.Context
		RoutingKey string
		Event      any
	}
	mock.lockPublish.RLock()
	calls = mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
