package catalog

import (
	"context"
	"sync"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

var _ catalogRepo = &catalogRepoMock{}

type catalogRepoMock struct {
	EnsureRoleFunc            func(ctx context.Context, name string, caps domain.CapabilitySet) (domain.Role, error)
	EnsureStatusFunc          func(ctx context.Context, name string) (domain.AdStatus, error)
	StatusByNameFunc          func(ctx context.Context, name string) (*domain.AdStatus, error)
	StatusByIDFunc            func(ctx context.Context, id int64) (*domain.AdStatus, error)
	ListStatusesFunc          func(ctx context.Context) ([]domain.AdStatus, error)
	EnsureRegionFunc          func(ctx context.Context, name string) (domain.Region, error)
	ListRegionsFunc           func(ctx context.Context) ([]domain.Region, error)
	EnsureSpeciesFunc         func(ctx context.Context, name string) (domain.Species, error)
	ListSpeciesFunc           func(ctx context.Context) ([]domain.Species, error)
	EnsureBreedFunc           func(ctx context.Context, speciesID int64, name string) (domain.Breed, error)
	BreedByIDFunc             func(ctx context.Context, id int64) (*domain.Breed, error)
	ListBreedsFunc            func(ctx context.Context, speciesID *int64) ([]domain.Breed, error)
	EnsureColorFunc           func(ctx context.Context, name string) (domain.Color, error)
	ListColorsFunc            func(ctx context.Context) ([]domain.Color, error)
	EnsureArticleCategoryFunc func(ctx context.Context, name string, slug string) (domain.ArticleCategory, error)
	ListArticleCategoriesFunc func(ctx context.Context) ([]domain.ArticleCategory, error)

	calls struct {
		EnsureRole []struct {
			Ctx  context.Context
			Name string
			Caps domain.CapabilitySet
		}
		EnsureStatus []struct {
			Ctx  context.Context
			Name string
		}
		StatusByName []struct {
			Ctx  context.Context
			Name string
		}
		StatusByID []struct {
			Ctx context.Context
			ID  int64
		}
		ListStatuses []struct {
			Ctx context.Context
		}
		EnsureRegion []struct {
			Ctx  context.Context
			Name string
		}
		ListRegions []struct {
			Ctx context.Context
		}
		EnsureSpecies []struct {
			Ctx  context.Context
			Name string
		}
		ListSpecies []struct {
			Ctx context.Context
		}
		EnsureBreed []struct {
			Ctx       context.Context
			SpeciesID int64
			Name      string
		}
		BreedByID []struct {
			Ctx context.Context
			ID  int64
		}
		ListBreeds []struct {
			Ctx       context.Context
			SpeciesID *int64
		}
		EnsureColor []struct {
			Ctx  context.Context
			Name string
		}
		ListColors []struct {
			Ctx context.Context
		}
		EnsureArticleCategory []struct {
			Ctx  context.Context
			Name string
			Slug string
		}
		ListArticleCategories []struct {
			Ctx context.Context
		}
	}
	lockEnsureRole            sync.RWMutex
	lockEnsureStatus          sync.RWMutex
	lockStatusByName          sync.RWMutex
	lockStatusByID            sync.RWMutex
	lockListStatuses          sync.RWMutex
	lockEnsureRegion          sync.RWMutex
	lockListRegions           sync.RWMutex
	lockEnsureSpecies         sync.RWMutex
	lockListSpecies           sync.RWMutex
	lockEnsureBreed           sync.RWMutex
	lockBreedByID             sync.RWMutex
	lockListBreeds            sync.RWMutex
	lockEnsureColor           sync.RWMutex
	lockListColors            sync.RWMutex
	lockEnsureArticleCategory sync.RWMutex
	lockListArticleCategories sync.RWMutex
}

func (mock *catalogRepoMock) EnsureRole(ctx context.Context, name string, caps domain.CapabilitySet) (domain.Role, error) {
	if mock.EnsureRoleFunc == nil {
		panic("catalogRepoMock.EnsureRoleFunc: method is nil but catalogRepo.EnsureRole was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
		Caps domain.CapabilitySet
	}{
		Ctx:  ctx,
		Name: name,
		Caps: caps,
	}
	mock.lockEnsureRole.Lock()
	mock.calls.EnsureRole = append(mock.calls.EnsureRole, callInfo)
	mock.lockEnsureRole.Unlock()
	return mock.EnsureRoleFunc(ctx, name, caps)
}

func (mock *catalogRepoMock) EnsureRoleCalls() []struct {
	Ctx  context.Context
	Name string
	Caps domain.CapabilitySet
} {
	var calls []struct {
		Ctx  context.Context
		Name string
		Caps domain.CapabilitySet
	}
	mock.lockEnsureRole.RLock()
	calls = mock.calls.EnsureRole
	mock.lockEnsureRole.RUnlock()
	return calls
}

func (mock *catalogRepoMock) EnsureStatus(ctx context.Context, name string) (domain.AdStatus, error) {
	if mock.EnsureStatusFunc == nil {
		panic("catalogRepoMock.EnsureStatusFunc: method is nil but catalogRepo.EnsureStatus was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockEnsureStatus.Lock()
	mock.calls.EnsureStatus = append(mock.calls.EnsureStatus, callInfo)
	mock.lockEnsureStatus.Unlock()
	return mock.EnsureStatusFunc(ctx, name)
}

func (mock *catalogRepoMock) EnsureStatusCalls() []struct {
	Ctx  context.Context
	Name string
} {
	var calls []struct {
		Ctx  context.Context
		Name string
	}
	mock.lockEnsureStatus.RLock()
	calls = mock.calls.EnsureStatus
	mock.lockEnsureStatus.RUnlock()
	return calls
}

func (mock *catalogRepoMock) StatusByName(ctx context.Context, name string) (*domain.AdStatus, error) {
	if mock.StatusByNameFunc == nil {
		panic("catalogRepoMock.StatusByNameFunc: method is nil but catalogRepo.StatusByName was just called")
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

func (mock *catalogRepoMock) StatusByNameCalls() []struct {
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

func (mock *catalogRepoMock) StatusByID(ctx context.Context, id int64) (*domain.AdStatus, error) {
	if mock.StatusByIDFunc == nil {
		panic("catalogRepoMock.StatusByIDFunc: method is nil but catalogRepo.StatusByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockStatusByID.Lock()
	mock.calls.StatusByID = append(mock.calls.StatusByID, callInfo)
	mock.lockStatusByID.Unlock()
	return mock.StatusByIDFunc(ctx, id)
}

func (mock *catalogRepoMock) StatusByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockStatusByID.RLock()
	calls = mock.calls.StatusByID
	mock.lockStatusByID.RUnlock()
	return calls
}

func (mock *catalogRepoMock) ListStatuses(ctx context.Context) ([]domain.AdStatus, error) {
	if mock.ListStatusesFunc == nil {
		panic("catalogRepoMock.ListStatusesFunc: method is nil but catalogRepo.ListStatuses was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListStatuses.Lock()
	mock.calls.ListStatuses = append(mock.calls.ListStatuses, callInfo)
	mock.lockListStatuses.Unlock()
	return mock.ListStatusesFunc(ctx)
}

func (mock *catalogRepoMock) ListStatusesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListStatuses.RLock()
	calls = mock.calls.ListStatuses
	mock.lockListStatuses.RUnlock()
	return calls
}

func (mock *catalogRepoMock) EnsureRegion(ctx context.Context, name string) (domain.Region, error) {
	if mock.EnsureRegionFunc == nil {
		panic("catalogRepoMock.EnsureRegionFunc: method is nil but catalogRepo.EnsureRegion was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockEnsureRegion.Lock()
	mock.calls.EnsureRegion = append(mock.calls.EnsureRegion, callInfo)
	mock.lockEnsureRegion.Unlock()
	return mock.EnsureRegionFunc(ctx, name)
}

func (mock *catalogRepoMock) EnsureRegionCalls() []struct {
	Ctx  context.Context
	Name string
} {
	var calls []struct {
		Ctx  context.Context
		Name string
	}
	mock.lockEnsureRegion.RLock()
	calls = mock.calls.EnsureRegion
	mock.lockEnsureRegion.RUnlock()
	return calls
}

func (mock *catalogRepoMock) ListRegions(ctx context.Context) ([]domain.Region, error) {
	if mock.ListRegionsFunc == nil {
		panic("catalogRepoMock.ListRegionsFunc: method is nil but catalogRepo.ListRegions was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListRegions.Lock()
	mock.calls.ListRegions = append(mock.calls.ListRegions, callInfo)
	mock.lockListRegions.Unlock()
	return mock.ListRegionsFunc(ctx)
}

func (mock *catalogRepoMock) ListRegionsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListRegions.RLock()
	calls = mock.calls.ListRegions
	mock.lockListRegions.RUnlock()
	return calls
}

func (mock *catalogRepoMock) EnsureSpecies(ctx context.Context, name string) (domain.Species, error) {
	if mock.EnsureSpeciesFunc == nil {
		panic("catalogRepoMock.EnsureSpeciesFunc: method is nil but catalogRepo.EnsureSpecies was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockEnsureSpecies.Lock()
	mock.calls.EnsureSpecies = append(mock.calls.EnsureSpecies, callInfo)
	mock.lockEnsureSpecies.Unlock()
	return mock.EnsureSpeciesFunc(ctx, name)
}

func (mock *catalogRepoMock) EnsureSpeciesCalls() []struct {
	Ctx  context.Context
	Name string
} {
	var calls []struct {
		Ctx  context.Context
		Name string
	}
	mock.lockEnsureSpecies.RLock()
	calls = mock.calls.EnsureSpecies
	mock.lockEnsureSpecies.RUnlock()
	return calls
}

func (mock *catalogRepoMock) ListSpecies(ctx context.Context) ([]domain.Species, error) {
	if mock.ListSpeciesFunc == nil {
		panic("catalogRepoMock.ListSpeciesFunc: method is nil but catalogRepo.ListSpecies was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListSpecies.Lock()
	mock.calls.ListSpecies = append(mock.calls.ListSpecies, callInfo)
	mock.lockListSpecies.Unlock()
	return mock.ListSpeciesFunc(ctx)
}

func (mock *catalogRepoMock) ListSpeciesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListSpecies.RLock()
	calls = mock.calls.ListSpecies
	mock.lockListSpecies.RUnlock()
	return calls
}

func (mock *catalogRepoMock) EnsureBreed(ctx context.Context, speciesID int64, name string) (domain.Breed, error) {
	if mock.EnsureBreedFunc == nil {
		panic("catalogRepoMock.EnsureBreedFunc: method is nil but catalogRepo.EnsureBreed was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SpeciesID int64
		Name      string
	}{
		Ctx:       ctx,
		SpeciesID: speciesID,
		Name:      name,
	}
	mock.lockEnsureBreed.Lock()
	mock.calls.EnsureBreed = append(mock.calls.EnsureBreed, callInfo)
	mock.lockEnsureBreed.Unlock()
	return mock.EnsureBreedFunc(ctx, speciesID, name)
}

func (mock *catalogRepoMock) EnsureBreedCalls() []struct {
	Ctx       context.Context
	SpeciesID int64
	Name      string
} {
	var calls []struct {
		Ctx       context.Context
		SpeciesID int64
		Name      string
	}
	mock.lockEnsureBreed.RLock()
	calls = mock.calls.EnsureBreed
	mock.lockEnsureBreed.RUnlock()
	return calls
}

func (mock *catalogRepoMock) BreedByID(ctx context.Context, id int64) (*domain.Breed, error) {
	if mock.BreedByIDFunc == nil {
		panic("catalogRepoMock.BreedByIDFunc: method is nil but catalogRepo.BreedByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockBreedByID.Lock()
	mock.calls.BreedByID = append(mock.calls.BreedByID, callInfo)
	mock.lockBreedByID.Unlock()
	return mock.BreedByIDFunc(ctx, id)
}

func (mock *catalogRepoMock) BreedByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockBreedByID.RLock()
	calls = mock.calls.BreedByID
	mock.lockBreedByID.RUnlock()
	return calls
}

func (mock *catalogRepoMock) ListBreeds(ctx context.Context, speciesID *int64) ([]domain.Breed, error) {
	if mock.ListBreedsFunc == nil {
		panic("catalogRepoMock.ListBreedsFunc: method is nil but catalogRepo.ListBreeds was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SpeciesID *int64
	}{
		Ctx:       ctx,
		SpeciesID: speciesID,
	}
	mock.lockListBreeds.Lock()
	mock.calls.ListBreeds = append(mock.calls.ListBreeds, callInfo)
	mock.lockListBreeds.Unlock()
	return mock.ListBreedsFunc(ctx, speciesID)
}

func (mock *catalogRepoMock) ListBreedsCalls() []struct {
	Ctx       context.Context
	SpeciesID *int64
} {
	var calls []struct {
		Ctx       context.Context
		SpeciesID *int64
	}
	mock.lockListBreeds.RLock()
	calls = mock.calls.ListBreeds
	mock.lockListBreeds.RUnlock()
	return calls
}

func (mock *catalogRepoMock) EnsureColor(ctx context.Context, name string) (domain.Color, error) {
	if mock.EnsureColorFunc == nil {
		panic("catalogRepoMock.EnsureColorFunc: method is nil but catalogRepo.EnsureColor was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockEnsureColor.Lock()
	mock.calls.EnsureColor = append(mock.calls.EnsureColor, callInfo)
	mock.lockEnsureColor.Unlock()
	return mock.EnsureColorFunc(ctx, name)
}

func (mock *catalogRepoMock) EnsureColorCalls() []struct {
	Ctx  context.Context
	Name string
} {
	var calls []struct {
		Ctx  context.Context
		Name string
	}
	mock.lockEnsureColor.RLock()
	calls = mock.calls.EnsureColor
	mock.lockEnsureColor.RUnlock()
	return calls
}

func (mock *catalogRepoMock) ListColors(ctx context.Context) ([]domain.Color, error) {
	if mock.ListColorsFunc == nil {
		panic("catalogRepoMock.ListColorsFunc: method is nil but catalogRepo.ListColors was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListColors.Lock()
	mock.calls.ListColors = append(mock.calls.ListColors, callInfo)
	mock.lockListColors.Unlock()
	return mock.ListColorsFunc(ctx)
}

func (mock *catalogRepoMock) ListColorsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListColors.RLock()
	calls = mock.calls.ListColors
	mock.lockListColors.RUnlock()
	return calls
}

func (mock *catalogRepoMock) EnsureArticleCategory(ctx context.Context, name string, slug string) (domain.ArticleCategory, error) {
	if mock.EnsureArticleCategoryFunc == nil {
		panic("catalogRepoMock.EnsureArticleCategoryFunc: method is nil but catalogRepo.EnsureArticleCategory was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
		Slug string
	}{
		Ctx:  ctx,
		Name: name,
		Slug: slug,
	}
	mock.lockEnsureArticleCategory.Lock()
	mock.calls.EnsureArticleCategory = append(mock.calls.EnsureArticleCategory, callInfo)
	mock.lockEnsureArticleCategory.Unlock()
	return mock.EnsureArticleCategoryFunc(ctx, name, slug)
}

func (mock *catalogRepoMock) EnsureArticleCategoryCalls() []struct {
	Ctx  context.Context
	Name string
	Slug string
} {
	var calls []struct {
		Ctx  context.Context
		Name string
		Slug string
	}
	mock.lockEnsureArticleCategory.RLock()
	calls = mock.calls.EnsureArticleCategory
	mock.lockEnsureArticleCategory.RUnlock()
	return calls
}

func (mock *catalogRepoMock) ListArticleCategories(ctx context.Context) ([]domain.ArticleCategory, error) {
	if mock.ListArticleCategoriesFunc == nil {
		panic("catalogRepoMock.ListArticleCategoriesFunc: method is nil but catalogRepo.ListArticleCategories was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListArticleCategories.Lock()
	mock.calls.ListArticleCategories = append(mock.calls.ListArticleCategories, callInfo)
	mock.lockListArticleCategories.Unlock()
	return mock.ListArticleCategoriesFunc(ctx)
}

func (mock *catalogRepoMock) ListArticleCategoriesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListArticleCategories.RLock()
	calls = mock.calls.ListArticleCategories
	mock.lockListArticleCategories.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	AssignRoleWhereMissingFunc func(ctx context.Context, roleID int64) (int64, error)

	calls struct {
		AssignRoleWhereMissing []struct {
			Ctx    context.Context
			RoleID int64
		}
	}
	lockAssignRoleWhereMissing sync.RWMutex
}

func (mock *userRepoMock) AssignRoleWhereMissing(ctx context.Context, roleID int64) (int64, error) {
	if mock.AssignRoleWhereMissingFunc == nil {
		panic("userRepoMock.AssignRoleWhereMissingFunc: method is nil but userRepo.AssignRoleWhereMissing was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		RoleID int64
	}{
		Ctx:    ctx,
		RoleID: roleID,
	}
	mock.lockAssignRoleWhereMissing.Lock()
	mock.calls.AssignRoleWhereMissing = append(mock.calls.AssignRoleWhereMissing, callInfo)
	mock.lockAssignRoleWhereMissing.Unlock()
	return mock.AssignRoleWhereMissingFunc(ctx, roleID)
}

func (mock *userRepoMock) AssignRoleWhereMissingCalls() []struct {
	Ctx    context.Context
	RoleID int64
} {
	var calls []struct {
		Ctx    context.Context
		RoleID int64
	}
	mock.lockAssignRoleWhereMissing.RLock()
	calls = mock.calls.AssignRoleWhereMissing
	mock.lockAssignRoleWhereMissing.RUnlock()
	return calls
}

var _ optionsCache = &optionsCacheMock{}

type optionsCacheMock struct {
	GetFunc    func(ctx context.Context, name string, dst any) (bool, error)
	SetFunc    func(ctx context.Context, name string, v any) error
	DeleteFunc func(ctx context.Context, names ...string) error

	calls struct {
		Get []struct {
			Ctx  context.Context
			Name string
			Dst  any
		}
		Set []struct {
			Ctx  context.Context
			Name string
			V    any
		}
		Delete []struct {
			Ctx   context.Context
			Names []string
		}
	}
	lockGet    sync.RWMutex
	lockSet    sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *optionsCacheMock) Get(ctx context.Context, name string, dst any) (bool, error) {
	if mock.GetFunc == nil {
		panic("optionsCacheMock.GetFunc: method is nil but optionsCache.Get was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
		Dst  any
	}{
		Ctx:  ctx,
		Name: name,
		Dst:  dst,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, name, dst)
}

func (mock *optionsCacheMock) GetCalls() []struct {
	Ctx  context.Context
	Name string
	Dst  any
} {
	var calls []struct {
		Ctx  context.Context
		Name string
		Dst  any
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *optionsCacheMock) Set(ctx context.Context, name string, v any) error {
	if mock.SetFunc == nil {
		panic("optionsCacheMock.SetFunc: method is nil but optionsCache.Set was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
		V    any
	}{
		Ctx:  ctx,
		Name: name,
		V:    v,
	}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, name, v)
}

func (mock *optionsCacheMock) SetCalls() []struct {
	Ctx  context.Context
	Name string
	V    any
} {
	var calls []struct {
		Ctx  context.Context
		Name string
		V    any
	}
	mock.lockSet.RLock()
	calls = mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}

func (mock *optionsCacheMock) Delete(ctx context.Context, names ...string) error {
	if mock.DeleteFunc == nil {
		panic("optionsCacheMock.DeleteFunc: method is nil but optionsCache.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Names []string
	}{
		Ctx:   ctx,
		Names: names,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, names...)
}

func (mock *optionsCacheMock) DeleteCalls() []struct {
	Ctx   context.Context
	Names []string
} {
	var calls []struct {
		Ctx   context.Context
		Names []string
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	var calls []struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}
	mock.lockRunInTx.RLock()
	calls = mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
