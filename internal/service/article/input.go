package article

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
)

const (
	maxTitleLen   = 200
	maxMessageLen = 2000
)

// CreateInput holds the parameters for publishing an article.
type CreateInput struct {
	Title       string
	Content     string
	CategoryIDs []int64
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	errs = append(errs, validateTitle(i.Title)...)
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	errs = append(errs, validateCategoryIDs(i.CategoryIDs)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial article update. A non-nil CategoryIDs replaces
// the article's categories; an empty slice clears them.
type UpdateInput struct {
	ID          uuid.UUID
	Title       *string
	Content     *string
	CategoryIDs *[]int64
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title != nil {
		errs = append(errs, validateTitle(*i.Title)...)
	}
	if i.Content != nil && strings.TrimSpace(*i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "must not be empty"})
	}
	if i.CategoryIDs != nil {
		errs = append(errs, validateCategoryIDs(*i.CategoryIDs)...)
	}
	if i.Title == nil && i.Content == nil && i.CategoryIDs == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds pagination and the optional category slug filter. The slug
// "all" is the same as no filter.
type ListInput struct {
	Page     int
	Size     int
	Category string
}

// CommentInput holds a new comment on an article.
type CommentInput struct {
	ArticleID uuid.UUID
	Message   string
}

func (i CommentInput) Validate() error {
	var errs []domain.FieldError
	if i.ArticleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "article_id", Message: "required"})
	}
	errs = append(errs, validateMessage(i.Message)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CommentUpdateInput replaces the text of an article comment.
type CommentUpdateInput struct {
	ID      uuid.UUID
	Message string
}

func (i CommentUpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateMessage(i.Message)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTitle(title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return []domain.FieldError{{Field: "title", Message: "required"}}
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return []domain.FieldError{{Field: "title", Message: "max 200 characters"}}
	}
	return nil
}

func validateCategoryIDs(ids []int64) []domain.FieldError {
	for _, id := range ids {
		if id <= 0 {
			return []domain.FieldError{{Field: "categories", Message: "must contain positive ids"}}
		}
	}
	return nil
}

func validateMessage(msg string) []domain.FieldError {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return []domain.FieldError{{Field: "message", Message: "required"}}
	}
	if utf8.RuneCountInString(msg) > maxMessageLen {
		return []domain.FieldError{{Field: "message", Message: "max 2000 characters"}}
	}
	return nil
}
