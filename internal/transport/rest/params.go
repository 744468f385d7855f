package rest

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

const dateLayout = "2006-01-02"

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.ErrNotFound
	}
	return id, nil
}

func int64Param(r *http.Request, name string) (int64, error) {
	n, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || n <= 0 {
		return 0, domain.ErrNotFound
	}
	return n, nil
}

// queryReader accumulates field errors while parsing query parameters.
type queryReader struct {
	q    url.Values
	errs []domain.FieldError
}

func newQueryReader(r *http.Request) *queryReader {
	return &queryReader{q: r.URL.Query()}
}

func (qr *queryReader) fail(field, msg string) {
	qr.errs = append(qr.errs, domain.FieldError{Field: field, Message: msg})
}

func (qr *queryReader) int64(name string) *int64 {
	raw := strings.TrimSpace(qr.q.Get(name))
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		qr.fail(name, "must be a positive integer")
		return nil
	}
	return &n
}

func (qr *queryReader) int(name string) int {
	raw := strings.TrimSpace(qr.q.Get(name))
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		qr.fail(name, "must be an integer")
		return 0
	}
	return n
}

func (qr *queryReader) string(name string) *string {
	raw := strings.TrimSpace(qr.q.Get(name))
	if raw == "" {
		return nil
	}
	return &raw
}

func (qr *queryReader) bool(name string) bool {
	v, _ := strconv.ParseBool(qr.q.Get(name))
	return v
}

func (qr *queryReader) date(name string) *time.Time {
	raw := strings.TrimSpace(qr.q.Get(name))
	if raw == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		qr.fail(name, "must be a date in YYYY-MM-DD format")
		return nil
	}
	return &t
}

func (qr *queryReader) err() error {
	if len(qr.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(qr.errs)
}

// parseAdFilter reads the advertisement list filter from the query string.
func parseAdFilter(r *http.Request) (domain.AdFilter, error) {
	qr := newQueryReader(r)
	f := domain.AdFilter{
		RegionID:      qr.int64("region"),
		StatusID:      qr.int64("ad_status"),
		SpeciesID:     qr.int64("species"),
		BreedID:       qr.int64("breed"),
		ColorID:       qr.int64("color"),
		Search:        qr.string("search"),
		PublishedFrom: qr.date("published_from"),
		PublishedTo:   qr.date("published_to"),
		OrderBy:       qr.q.Get("ordering"),
		Page:          qr.int("page"),
		Size:          qr.int("page_size"),
	}

	if raw := qr.string("gender"); raw != nil {
		g, err := domain.ParseGender(*raw)
		if err != nil {
			qr.fail("gender", "must be one of M, F, U")
		} else {
			f.Gender = &g
		}
	}
	if raw := qr.string("age_category"); raw != nil {
		b, err := domain.ParseAgeBucket(*raw)
		if err != nil {
			qr.fail("age_category", "unknown age category")
		} else {
			f.Age = &b
		}
	}
	if f.PublishedTo != nil {
		// The upper date bound is inclusive of the whole day.
		end := f.PublishedTo.Add(24*time.Hour - time.Nanosecond)
		f.PublishedTo = &end
	}

	return f, qr.err()
}
