package rest

import (
	"context"
	"sync"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
	"github.com/Berlkot/django-proj-kek-2025/internal/service/advertisement"
	"github.com/Berlkot/django-proj-kek-2025/internal/service/article"
	"github.com/Berlkot/django-proj-kek-2025/internal/service/catalog"
	"github.com/Berlkot/django-proj-kek-2025/internal/service/comment"
	"github.com/Berlkot/django-proj-kek-2025/internal/service/user"
	"github.com/google/uuid"
)

var _ advertisementService = &advertisementServiceMock{}

type advertisementServiceMock struct {
	CreateFunc   func(ctx context.Context, input advertisement.CreateInput) (*advertisement.View, error)
	UpdateFunc   func(ctx context.Context, input advertisement.UpdateInput) (*advertisement.View, error)
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
	GetFunc      func(ctx context.Context, id uuid.UUID) (*advertisement.View, error)
	ListFunc     func(ctx context.Context, input advertisement.ListInput) (*advertisement.ListResult, error)
	ListMineFunc func(ctx context.Context, input advertisement.ListInput) (*advertisement.ListResult, error)
	RateFunc     func(ctx context.Context, input advertisement.RateInput) (domain.AdStats, error)
	ApproveFunc  func(ctx context.Context, id uuid.UUID) (*advertisement.View, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input advertisement.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			Input advertisement.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input advertisement.ListInput
		}
		ListMine []struct {
			Ctx   context.Context
			Input advertisement.ListInput
		}
		Rate []struct {
			Ctx   context.Context
			Input advertisement.RateInput
		}
		Approve []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate   sync.RWMutex
	lockUpdate   sync.RWMutex
	lockDelete   sync.RWMutex
	lockGet      sync.RWMutex
	lockList     sync.RWMutex
	lockListMine sync.RWMutex
	lockRate     sync.RWMutex
	lockApprove  sync.RWMutex
}

func (mock *advertisementServiceMock) Create(ctx context.Context, input advertisement.CreateInput) (*advertisement.View, error) {
	if mock.CreateFunc == nil {
		panic("advertisementServiceMock.CreateFunc: method is nil but advertisementService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input advertisement.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *advertisementServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input advertisement.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input advertisement.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *advertisementServiceMock) Update(ctx context.Context, input advertisement.UpdateInput) (*advertisement.View, error) {
	if mock.UpdateFunc == nil {
		panic("advertisementServiceMock.UpdateFunc: method is nil but advertisementService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input advertisement.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *advertisementServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input advertisement.UpdateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input advertisement.UpdateInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *advertisementServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("advertisementServiceMock.DeleteFunc: method is nil but advertisementService.Delete was just called")
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

func (mock *advertisementServiceMock) DeleteCalls() []struct {
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

func (mock *advertisementServiceMock) Get(ctx context.Context, id uuid.UUID) (*advertisement.View, error) {
	if mock.GetFunc == nil {
		panic("advertisementServiceMock.GetFunc: method is nil but advertisementService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *advertisementServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *advertisementServiceMock) List(ctx context.Context, input advertisement.ListInput) (*advertisement.ListResult, error) {
	if mock.ListFunc == nil {
		panic("advertisementServiceMock.ListFunc: method is nil but advertisementService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input advertisement.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *advertisementServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input advertisement.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input advertisement.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *advertisementServiceMock) ListMine(ctx context.Context, input advertisement.ListInput) (*advertisement.ListResult, error) {
	if mock.ListMineFunc == nil {
		panic("advertisementServiceMock.ListMineFunc: method is nil but advertisementService.ListMine was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input advertisement.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListMine.Lock()
	mock.calls.ListMine = append(mock.calls.ListMine, callInfo)
	mock.lockListMine.Unlock()
	return mock.ListMineFunc(ctx, input)
}

func (mock *advertisementServiceMock) ListMineCalls() []struct {
	Ctx   context.Context
	Input advertisement.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input advertisement.ListInput
	}
	mock.lockListMine.RLock()
	calls = mock.calls.ListMine
	mock.lockListMine.RUnlock()
	return calls
}

func (mock *advertisementServiceMock) Rate(ctx context.Context, input advertisement.RateInput) (domain.AdStats, error) {
	if mock.RateFunc == nil {
		panic("advertisementServiceMock.RateFunc: method is nil but advertisementService.Rate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input advertisement.RateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRate.Lock()
	mock.calls.Rate = append(mock.calls.Rate, callInfo)
	mock.lockRate.Unlock()
	return mock.RateFunc(ctx, input)
}

func (mock *advertisementServiceMock) RateCalls() []struct {
	Ctx   context.Context
	Input advertisement.RateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input advertisement.RateInput
	}
	mock.lockRate.RLock()
	calls = mock.calls.Rate
	mock.lockRate.RUnlock()
	return calls
}

func (mock *advertisementServiceMock) Approve(ctx context.Context, id uuid.UUID) (*advertisement.View, error) {
	if mock.ApproveFunc == nil {
		panic("advertisementServiceMock.ApproveFunc: method is nil but advertisementService.Approve was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockApprove.Lock()
	mock.calls.Approve = append(mock.calls.Approve, callInfo)
	mock.lockApprove.Unlock()
	return mock.ApproveFunc(ctx, id)
}

func (mock *advertisementServiceMock) ApproveCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockApprove.RLock()
	calls = mock.calls.Approve
	mock.lockApprove.RUnlock()
	return calls
}

var _ commentService = &commentServiceMock{}

type commentServiceMock struct {
	CreateFunc              func(ctx context.Context, input comment.CreateInput) (*domain.Comment, error)
	UpdateFunc              func(ctx context.Context, input comment.UpdateInput) (*domain.Comment, error)
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error
	ListByAdvertisementFunc func(ctx context.Context, adID uuid.UUID) ([]domain.Comment, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input comment.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			Input comment.UpdateInput
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
	lockUpdate              sync.RWMutex
	lockDelete              sync.RWMutex
	lockListByAdvertisement sync.RWMutex
}

func (mock *commentServiceMock) Create(ctx context.Context, input comment.CreateInput) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentServiceMock.CreateFunc: method is nil but commentService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input comment.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *commentServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input comment.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input comment.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentServiceMock) Update(ctx context.Context, input comment.UpdateInput) (*domain.Comment, error) {
	if mock.UpdateFunc == nil {
		panic("commentServiceMock.UpdateFunc: method is nil but commentService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input comment.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *commentServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input comment.UpdateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input comment.UpdateInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *commentServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("commentServiceMock.DeleteFunc: method is nil but commentService.Delete was just called")
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

func (mock *commentServiceMock) DeleteCalls() []struct {
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

func (mock *commentServiceMock) ListByAdvertisement(ctx context.Context, adID uuid.UUID) ([]domain.Comment, error) {
	if mock.ListByAdvertisementFunc == nil {
		panic("commentServiceMock.ListByAdvertisementFunc: method is nil but commentService.ListByAdvertisement was just called")
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

func (mock *commentServiceMock) ListByAdvertisementCalls() []struct {
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

var _ articleService = &articleServiceMock{}

type articleServiceMock struct {
	CreateFunc        func(ctx context.Context, input article.CreateInput) (*domain.Article, error)
	GetFunc           func(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	ListFunc          func(ctx context.Context, input article.ListInput) (*article.ListResult, error)
	UpdateFunc        func(ctx context.Context, input article.UpdateInput) (*domain.Article, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	CreateCommentFunc func(ctx context.Context, input article.CommentInput) (*domain.ArticleComment, error)
	UpdateCommentFunc func(ctx context.Context, input article.CommentUpdateInput) (*domain.ArticleComment, error)
	DeleteCommentFunc func(ctx context.Context, id uuid.UUID) error
	ListCommentsFunc  func(ctx context.Context, articleID uuid.UUID) ([]domain.ArticleComment, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input article.CreateInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input article.ListInput
		}
		Update []struct {
			Ctx   context.Context
			Input article.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		CreateComment []struct {
			Ctx   context.Context
			Input article.CommentInput
		}
		UpdateComment []struct {
			Ctx   context.Context
			Input article.CommentUpdateInput
		}
		DeleteComment []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListComments []struct {
			Ctx       context.Context
			ArticleID uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockGet           sync.RWMutex
	lockList          sync.RWMutex
	lockUpdate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockCreateComment sync.RWMutex
	lockUpdateComment sync.RWMutex
	lockDeleteComment sync.RWMutex
	lockListComments  sync.RWMutex
}

func (mock *articleServiceMock) Create(ctx context.Context, input article.CreateInput) (*domain.Article, error) {
	if mock.CreateFunc == nil {
		panic("articleServiceMock.CreateFunc: method is nil but articleService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input article.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *articleServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input article.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input article.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *articleServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if mock.GetFunc == nil {
		panic("articleServiceMock.GetFunc: method is nil but articleService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *articleServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *articleServiceMock) List(ctx context.Context, input article.ListInput) (*article.ListResult, error) {
	if mock.ListFunc == nil {
		panic("articleServiceMock.ListFunc: method is nil but articleService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input article.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *articleServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input article.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input article.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *articleServiceMock) Update(ctx context.Context, input article.UpdateInput) (*domain.Article, error) {
	if mock.UpdateFunc == nil {
		panic("articleServiceMock.UpdateFunc: method is nil but articleService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input article.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *articleServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input article.UpdateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input article.UpdateInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *articleServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("articleServiceMock.DeleteFunc: method is nil but articleService.Delete was just called")
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

func (mock *articleServiceMock) DeleteCalls() []struct {
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

func (mock *articleServiceMock) CreateComment(ctx context.Context, input article.CommentInput) (*domain.ArticleComment, error) {
	if mock.CreateCommentFunc == nil {
		panic("articleServiceMock.CreateCommentFunc: method is nil but articleService.CreateComment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input article.CommentInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateComment.Lock()
	mock.calls.CreateComment = append(mock.calls.CreateComment, callInfo)
	mock.lockCreateComment.Unlock()
	return mock.CreateCommentFunc(ctx, input)
}

func (mock *articleServiceMock) CreateCommentCalls() []struct {
	Ctx   context.Context
	Input article.CommentInput
} {
	var calls []struct {
		Ctx   context.Context
		Input article.CommentInput
	}
	mock.lockCreateComment.RLock()
	calls = mock.calls.CreateComment
	mock.lockCreateComment.RUnlock()
	return calls
}

func (mock *articleServiceMock) UpdateComment(ctx context.Context, input article.CommentUpdateInput) (*domain.ArticleComment, error) {
	if mock.UpdateCommentFunc == nil {
		panic("articleServiceMock.UpdateCommentFunc: method is nil but articleService.UpdateComment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input article.CommentUpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateComment.Lock()
	mock.calls.UpdateComment = append(mock.calls.UpdateComment, callInfo)
	mock.lockUpdateComment.Unlock()
	return mock.UpdateCommentFunc(ctx, input)
}

func (mock *articleServiceMock) UpdateCommentCalls() []struct {
	Ctx   context.Context
	Input article.CommentUpdateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input article.CommentUpdateInput
	}
	mock.lockUpdateComment.RLock()
	calls = mock.calls.UpdateComment
	mock.lockUpdateComment.RUnlock()
	return calls
}

func (mock *articleServiceMock) DeleteComment(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteCommentFunc == nil {
		panic("articleServiceMock.DeleteCommentFunc: method is nil but articleService.DeleteComment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteComment.Lock()
	mock.calls.DeleteComment = append(mock.calls.DeleteComment, callInfo)
	mock.lockDeleteComment.Unlock()
	return mock.DeleteCommentFunc(ctx, id)
}

func (mock *articleServiceMock) DeleteCommentCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDeleteComment.RLock()
	calls = mock.calls.DeleteComment
	mock.lockDeleteComment.RUnlock()
	return calls
}

func (mock *articleServiceMock) ListComments(ctx context.Context, articleID uuid.UUID) ([]domain.ArticleComment, error) {
	if mock.ListCommentsFunc == nil {
		panic("articleServiceMock.ListCommentsFunc: method is nil but articleService.ListComments was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ArticleID uuid.UUID
	}{
		Ctx:       ctx,
		ArticleID: articleID,
	}
	mock.lockListComments.Lock()
	mock.calls.ListComments = append(mock.calls.ListComments, callInfo)
	mock.lockListComments.Unlock()
	return mock.ListCommentsFunc(ctx, articleID)
}

func (mock *articleServiceMock) ListCommentsCalls() []struct {
	Ctx       context.Context
	ArticleID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ArticleID uuid.UUID
	}
	mock.lockListComments.RLock()
	calls = mock.calls.ListComments
	mock.lockListComments.RUnlock()
	return calls
}

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	FilterOptionsFunc     func(ctx context.Context) (*catalog.FilterOptions, error)
	BreedsBySpeciesFunc   func(ctx context.Context, speciesID int64) ([]domain.Breed, error)
	ArticleCategoriesFunc func(ctx context.Context) ([]domain.ArticleCategory, error)

	calls struct {
		FilterOptions []struct {
			Ctx context.Context
		}
		BreedsBySpecies []struct {
			Ctx       context.Context
			SpeciesID int64
		}
		ArticleCategories []struct {
			Ctx context.Context
		}
	}
	lockFilterOptions     sync.RWMutex
	lockBreedsBySpecies   sync.RWMutex
	lockArticleCategories sync.RWMutex
}

func (mock *catalogServiceMock) FilterOptions(ctx context.Context) (*catalog.FilterOptions, error) {
	if mock.FilterOptionsFunc == nil {
		panic("catalogServiceMock.FilterOptionsFunc: method is nil but catalogService.FilterOptions was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockFilterOptions.Lock()
	mock.calls.FilterOptions = append(mock.calls.FilterOptions, callInfo)
	mock.lockFilterOptions.Unlock()
	return mock.FilterOptionsFunc(ctx)
}

func (mock *catalogServiceMock) FilterOptionsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockFilterOptions.RLock()
	calls = mock.calls.FilterOptions
	mock.lockFilterOptions.RUnlock()
	return calls
}

func (mock *catalogServiceMock) BreedsBySpecies(ctx context.Context, speciesID int64) ([]domain.Breed, error) {
	if mock.BreedsBySpeciesFunc == nil {
		panic("catalogServiceMock.BreedsBySpeciesFunc: method is nil but catalogService.BreedsBySpecies was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SpeciesID int64
	}{
		Ctx:       ctx,
		SpeciesID: speciesID,
	}
	mock.lockBreedsBySpecies.Lock()
	mock.calls.BreedsBySpecies = append(mock.calls.BreedsBySpecies, callInfo)
	mock.lockBreedsBySpecies.Unlock()
	return mock.BreedsBySpeciesFunc(ctx, speciesID)
}

func (mock *catalogServiceMock) BreedsBySpeciesCalls() []struct {
	Ctx       context.Context
	SpeciesID int64
} {
	var calls []struct {
		Ctx       context.Context
		SpeciesID int64
	}
	mock.lockBreedsBySpecies.RLock()
	calls = mock.calls.BreedsBySpecies
	mock.lockBreedsBySpecies.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ArticleCategories(ctx context.Context) ([]domain.ArticleCategory, error) {
	if mock.ArticleCategoriesFunc == nil {
		panic("catalogServiceMock.ArticleCategoriesFunc: method is nil but catalogService.ArticleCategories was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockArticleCategories.Lock()
	mock.calls.ArticleCategories = append(mock.calls.ArticleCategories, callInfo)
	mock.lockArticleCategories.Unlock()
	return mock.ArticleCategoriesFunc(ctx)
}

func (mock *catalogServiceMock) ArticleCategoriesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockArticleCategories.RLock()
	calls = mock.calls.ArticleCategories
	mock.lockArticleCategories.RUnlock()
	return calls
}

var _ userService = &userServiceMock{}

type userServiceMock struct {
	GetProfileFunc func(ctx context.Context) (*user.Profile, error)

	calls struct {
		GetProfile []struct {
			Ctx context.Context
		}
	}
	lockGetProfile sync.RWMutex
}

func (mock *userServiceMock) GetProfile(ctx context.Context) (*user.Profile, error) {
	if mock.GetProfileFunc == nil {
		panic("userServiceMock.GetProfileFunc: method is nil but userService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *userServiceMock) GetProfileCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetProfile.RLock()
	calls = mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}
