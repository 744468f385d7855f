package comment

import (
	"context"
	"sync"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
	"github.com/google/uuid"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	CreateFunc              func(ctx context.Context, c *domain.Comment) error
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	UpdateMessageFunc       func(ctx context.Context, id uuid.UUID, message string) error
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	ListByAdvertisementFunc func(ctx context.Context, adID uuid.UUID) ([]domain.Comment, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Comment
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateMessage []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Message string
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByAdvertisement []struct {
			Ctx  context.Context
			AdID uuid.UUID
		}
	}
	lockCreate              sync.RWMutex
	lockGetByID             sync.RWMutex
	lockUpdateMessage       sync.RWMutex
	lockDelete              sync.RWMutex
	lockListByAdvertisement sync.RWMutex
}

func (mock *commentRepoMock) Create(ctx context.Context, c *domain.Comment) error {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Comment
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Comment
} {
	var calls []struct {
		Ctx context.Context
		C   *domain.Comment
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if mock.GetByIDFunc == nil {
		panic("commentRepoMock.GetByIDFunc: method is nil but commentRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *commentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *commentRepoMock) UpdateMessage(ctx context.Context, id uuid.UUID, message string) error {
	if mock.UpdateMessageFunc == nil {
		panic("commentRepoMock.UpdateMessageFunc: method is nil but commentRepo.UpdateMessage was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Message string
	}{
		Ctx:     ctx,
		ID:      id,
		Message: message,
	}
	mock.lockUpdateMessage.Lock()
	mock.calls.UpdateMessage = append(mock.calls.UpdateMessage, callInfo)
	mock.lockUpdateMessage.Unlock()
	return mock.UpdateMessageFunc(ctx, id, message)
}

func (mock *commentRepoMock) UpdateMessageCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Message string
} {
	var calls []struct {
		Ctx     context.Context
		ID      uuid.UUID
		Message string
	}
	mock.lockUpdateMessage.RLock()
	calls = mock.calls.UpdateMessage
	mock.lockUpdateMessage.RUnlock()
	return calls
}

func (mock *commentRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("commentRepoMock.DeleteFunc: method is nil but commentRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *commentRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *commentRepoMock) ListByAdvertisement(ctx context.Context, adID uuid.UUID) ([]domain.Comment, error) {
	if mock.ListByAdvertisementFunc == nil {
		panic("commentRepoMock.ListByAdvertisementFunc: method is nil but commentRepo.ListByAdvertisement was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		AdID uuid.UUID
	}{
		Ctx:  ctx,
		AdID: adID,
	}
	mock.lockListByAdvertisement.Lock()
	mock.calls.ListByAdvertisement = append(mock.calls.ListByAdvertisement, callInfo)
	mock.lockListByAdvertisement.Unlock()
	return mock.ListByAdvertisementFunc(ctx, adID)
}

func (mock *commentRepoMock) ListByAdvertisementCalls() []struct {
	Ctx  context.Context
	AdID uuid.UUID
} {
	var calls []struct {
		Ctx  context.Context
		AdID uuid.UUID
	}
	mock.lockListByAdvertisement.RLock()
	calls = mock.calls.ListByAdvertisement
	mock.lockListByAdvertisement.RUnlock()
	return calls
}

var _ adRepo = &adRepoMock{}

type adRepoMock struct {
	GetListingFunc func(ctx context.Context, id uuid.UUID) (*domain.AdListing, error)

	calls struct {
		GetListing []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetListing sync.RWMutex
}

func (mock *adRepoMock) GetListing(ctx context.Context, id uuid.UUID) (*domain.AdListing, error) {
	if mock.GetListingFunc == nil {
		panic("adRepoMock.GetListingFunc: method is nil but adRepo.GetListing was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetListing.Lock()
	mock.calls.GetListing = append(mock.calls.GetListing, callInfo)
	mock.lockGetListing.Unlock()
	return mock.GetListingFunc(ctx, id)
}

func (mock *adRepoMock) GetListingCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetListing.RLock()
	calls = mock.calls.GetListing
	mock.lockGetListing.RUnlock()
	return calls
}

var _ moderationPolicy = &moderationPolicyMock{}

type moderationPolicyMock struct {
	IsModerationFunc func(status string) bool

	calls struct {
		IsModeration []struct {
			Status string
		}
	}
	lockIsModeration sync.RWMutex
}

func (mock *moderationPolicyMock) IsModeration(status string) bool {
	if mock.IsModerationFunc == nil {
		panic("moderationPolicyMock.IsModerationFunc: method is nil but moderationPolicy.IsModeration was just called")
	}
	callInfo := struct {
		Status string
	}{
		Status: status,
	}
	mock.lockIsModeration.Lock()
	mock.calls.IsModeration = append(mock.calls.IsModeration, callInfo)
	mock.lockIsModeration.Unlock()
	return mock.IsModerationFunc(status)
}

func (mock *moderationPolicyMock) IsModerationCalls() []struct {
	Status string
} {
	var calls []struct {
		Status string
	}
	mock.lockIsModeration.RLock()
	calls = mock.calls.IsModeration
	mock.lockIsModeration.RUnlock()
	return calls
}

var _ statsSource = &statsSourceMock{}

type statsSourceMock struct {
	ForgetFunc func(ctx context.Context, id uuid.UUID)

	calls struct {
		Forget []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockForget sync.RWMutex
}

func (mock *statsSourceMock) Forget(ctx context.Context, id uuid.UUID) {
	if mock.ForgetFunc == nil {
		panic("statsSourceMock.ForgetFunc: method is nil but statsSource.Forget was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockForget.Lock()
	mock.calls.Forget = append(mock.calls.Forget, callInfo)
	mock.lockForget.Unlock()
	mock.ForgetFunc(ctx, id)
}

func (mock *statsSourceMock) ForgetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockForget.RLock()
	calls = mock.calls.Forget
	mock.lockForget.RUnlock()
	return calls
}
