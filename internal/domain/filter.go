package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 48

	// maxOffset bounds OFFSET so (page-1)*size never overflows.
	maxOffset = math.MaxInt32
)

// PageLimits bounds listing page sizes.
type PageLimits struct {
	DefaultSize int
	MaxSize     int
}

// DefaultPageLimits apply when no configured limits are supplied.
var DefaultPageLimits = PageLimits{DefaultSize: DefaultPageSize, MaxSize: MaxPageSize}

// Clamp returns a page and size inside the limits. Pages beyond the last
// addressable offset are pulled back onto it.
func (l PageLimits) Clamp(page, size int) (int, int) {
	if l.DefaultSize <= 0 {
		l.DefaultSize = DefaultPageSize
	}
	if l.MaxSize < l.DefaultSize {
		l.MaxSize = l.DefaultSize
	}

	if size <= 0 {
		size = l.DefaultSize
	}
	if size > l.MaxSize {
		size = l.MaxSize
	}
	if page < 1 {
		page = 1
	}
	if last := maxOffset/size + 1; page > last {
		page = last
	}
	return page, size
}

// Ordering values accepted by the advertisement list. A leading "-" means descending.
const (
	OrderPublishedDesc  = "-publication_date"
	OrderPublishedAsc   = "publication_date"
	OrderAnimalNameAsc  = "animal__name"
	OrderAnimalNameDesc = "-animal__name"
)

// AdFilter contains filtering and pagination parameters for advertisement searches.
type AdFilter struct {
	RegionID  *int64
	StatusID  *int64
	SpeciesID *int64
	BreedID   *int64
	ColorID   *int64
	Gender    *Gender
	Age       *AgeBucket
	Search    *string

	PublishedFrom *time.Time
	PublishedTo   *time.Time

	// OwnerID restricts results to one user's advertisements.
	OwnerID *uuid.UUID
	// ExcludeStatuses hides statuses by name (moderation for public listings).
	ExcludeStatuses []string

	// Today anchors age-bucket ranges; zero means the current date.
	Today time.Time

	OrderBy string
	Page    int
	Size    int
}

// Normalize applies defaults and clamps paging to limits.
func (f *AdFilter) Normalize(limits PageLimits) {
	switch f.OrderBy {
	case "animal_name":
		f.OrderBy = OrderAnimalNameAsc
	case "-animal_name":
		f.OrderBy = OrderAnimalNameDesc
	case OrderPublishedDesc, OrderPublishedAsc, OrderAnimalNameAsc, OrderAnimalNameDesc:
	default:
		f.OrderBy = OrderPublishedDesc
	}
	f.Page, f.Size = limits.Clamp(f.Page, f.Size)
	if f.Today.IsZero() {
		f.Today = time.Now()
	}
	f.Today = DateOnly(f.Today)
}

// Offset is the row offset of the current page.
func (f AdFilter) Offset() int { return (f.Page - 1) * f.Size }
