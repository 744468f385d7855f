package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Berlkot/django-proj-kek-2025/internal/domain"
	"github.com/Berlkot/django-proj-kek-2025/internal/service/article"
)

type articleService interface {
	Create(ctx context.Context, input article.CreateInput) (*domain.Article, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	List(ctx context.Context, input article.ListInput) (*article.ListResult, error)
	Update(ctx context.Context, input article.UpdateInput) (*domain.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CreateComment(ctx context.Context, input article.CommentInput) (*domain.ArticleComment, error)
	UpdateComment(ctx context.Context, input article.CommentUpdateInput) (*domain.ArticleComment, error)
	DeleteComment(ctx context.Context, id uuid.UUID) error
	ListComments(ctx context.Context, articleID uuid.UUID) ([]domain.ArticleComment, error)
}

// ArticleHandler serves editorial articles and their reader comments.
type ArticleHandler struct {
	svc articleService
	log *slog.Logger
}

func NewArticleHandler(svc articleService, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{svc: svc, log: logger.With("handler", "article")}
}

func (h *ArticleHandler) Register(r chi.Router) {
	r.Route("/articles", func(ar chi.Router) {
		ar.Get("/", h.List)
		ar.Post("/", h.Create)
		ar.Get("/{id}", h.Get)
		ar.Patch("/{id}", h.Update)
		ar.Delete("/{id}", h.Delete)
		ar.Get("/{id}/comments", h.ListComments)
		ar.Post("/{id}/comments", h.CreateComment)
	})
	r.Patch("/article-comments/{id}", h.UpdateComment)
	r.Delete("/article-comments/{id}", h.DeleteComment)
}

type createArticleRequest struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Categories []int64 `json:"categories"`
}

type updateArticleRequest struct {
	Title      *string  `json:"title"`
	Content    *string  `json:"content"`
	Categories *[]int64 `json:"categories"`
}

type articleCategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type articleResponse struct {
	ID              string                    `json:"id"`
	Author          string                    `json:"author"`
	Title           string                    `json:"title"`
	Content         string                    `json:"content"`
	Categories      []articleCategoryResponse `json:"categories"`
	CommentsCount   int                       `json:"comments_count"`
	PublicationDate time.Time                 `json:"publication_date"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

func toArticleCategoryResponse(c domain.ArticleCategory) articleCategoryResponse {
	return articleCategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

func toArticleResponse(a domain.Article) articleResponse {
	resp := articleResponse{
		ID:              a.ID.String(),
		Author:          a.AuthorID.String(),
		Title:           a.Title,
		Content:         a.Content,
		Categories:      make([]articleCategoryResponse, 0, len(a.Categories)),
		CommentsCount:   a.CommentsCount,
		PublicationDate: a.PublishedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	for _, c := range a.Categories {
		resp.Categories = append(resp.Categories, toArticleCategoryResponse(c))
	}
	return resp
}

type articleCommentResponse struct {
	ID        string        `json:"id"`
	ArticleID string        `json:"article"`
	User      commentAuthor `json:"user"`
	Message   string        `json:"message"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func toArticleCommentResponse(c domain.ArticleComment) articleCommentResponse {
	return articleCommentResponse{
		ID:        c.ID.String(),
		ArticleID: c.ArticleID.String(),
		User:      commentAuthor{ID: c.UserID.String(), Username: c.Username},
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	qr := newQueryReader(r)
	input := article.ListInput{Page: qr.int("page"), Size: qr.int("page_size")}
	if c := qr.string("category"); c != nil {
		input.Category = *c
	}
	if err := qr.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := listResponse[articleResponse]{Count: result.Total, Results: make([]articleResponse, 0, len(result.Items))}
	for _, a := range result.Items {
		resp.Results = append(resp.Results, toArticleResponse(a))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleResponse(*a))
}

func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createArticleRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	a, err := h.svc.Create(r.Context(), article.CreateInput{
		Title:       req.Title,
		Content:     req.Content,
		CategoryIDs: req.Categories,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toArticleResponse(*a))
}

func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateArticleRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	a, err := h.svc.Update(r.Context(), article.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Content:     req.Content,
		CategoryIDs: req.Categories,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleResponse(*a))
}

func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListComments handles GET /articles/{id}/comments.
func (h *ArticleHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	comments, err := h.svc.ListComments(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := listResponse[articleCommentResponse]{Count: len(comments), Results: make([]articleCommentResponse, 0, len(comments))}
	for _, c := range comments {
		resp.Results = append(resp.Results, toArticleCommentResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateComment handles POST /articles/{id}/comments.
func (h *ArticleHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	c, err := h.svc.CreateComment(r.Context(), article.CommentInput{ArticleID: id, Message: req.Message})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toArticleCommentResponse(*c))
}

func (h *ArticleHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	c, err := h.svc.UpdateComment(r.Context(), article.CommentUpdateInput{ID: id, Message: req.Message})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleCommentResponse(*c))
}

func (h *ArticleHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteComment(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
