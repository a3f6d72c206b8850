package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wordbook/dictionary/internal/word"
	"github.com/wordbook/dictionary/internal/word/resolver"
	"github.com/wordbook/dictionary/pkg/logger"
)

var log = logger.Component("api")

// Resolver is the set of word operations the routes depend on.
type Resolver interface {
	Search(ctx context.Context, query string) ([]*word.WordEntry, error)
	GetOne(ctx context.Context, id string) (*word.WordEntry, error)
	ListAll(ctx context.Context) ([]*word.WordEntry, error)
	Add(ctx context.Context, d word.Draft) (*word.WordEntry, error)
	Update(ctx context.Context, id string, d word.Draft) (*word.WordEntry, error)
	Remove(ctx context.Context, id string) (bool, error)
}

// Handler serves the word API.
type Handler struct {
	res     Resolver
	timeout time.Duration
}

// New returns a Handler. A positive timeout bounds every resolver call.
func New(res Resolver, timeout time.Duration) *Handler {
	return &Handler{res: res, timeout: timeout}
}

// Register mounts the word routes under rg (typically /api).
func (h *Handler) Register(rg *gin.RouterGroup) {
	w := rg.Group("/words")
	w.GET("", h.GetAllWords)
	w.GET("/search", h.SearchWords)
	w.GET("/:id", h.GetWord)
	w.POST("", h.AddWord)
	w.PUT("/:id", h.UpdateWord)
	w.DELETE("/:id", h.DeleteWord)
}

func (h *Handler) ctx(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// SearchWords handles GET /words/search?query=
func (h *Handler) SearchWords(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()
	list, err := h.res.Search(ctx, c.Query("query"))
	if err != nil {
		fail(c, err, "failed to search words")
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetWord handles GET /words/:id
func (h *Handler) GetWord(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()
	e, err := h.res.GetOne(ctx, c.Param("id"))
	if err != nil {
		fail(c, err, "failed to fetch word")
		return
	}
	c.JSON(http.StatusOK, e)
}

// GetAllWords handles GET /words
func (h *Handler) GetAllWords(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()
	list, err := h.res.ListAll(ctx)
	if err != nil {
		fail(c, err, "failed to fetch all words")
		return
	}
	c.JSON(http.StatusOK, list)
}

// AddWord handles POST /words
func (h *Handler) AddWord(c *gin.Context) {
	var d word.Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	e, err := h.res.Add(ctx, d)
	if err != nil {
		fail(c, err, "failed to add word")
		return
	}
	c.JSON(http.StatusCreated, e)
}

// UpdateWord handles PUT /words/:id with a complete draft.
func (h *Handler) UpdateWord(c *gin.Context) {
	var d word.Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	e, err := h.res.Update(ctx, c.Param("id"), d)
	if err != nil {
		fail(c, err, "failed to update word")
		return
	}
	c.JSON(http.StatusOK, e)
}

// DeleteWord handles DELETE /words/:id. A missing id is reported as
// {"deleted": false}, not as an error.
func (h *Handler) DeleteWord(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()
	removed, err := h.res.Remove(ctx, c.Param("id"))
	if err != nil {
		fail(c, err, "failed to delete word")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": removed})
}

// fail maps the error taxonomy onto a status and a message that does not
// expose storage details. Storage failures are logged with their cause.
func fail(c *gin.Context, err error, generic string) {
	var verr *word.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": word.ErrValidation.Error(), "fields": verr.Fields})
	case errors.Is(err, word.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": word.ErrNotFound.Error()})
	case errors.Is(err, word.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": word.ErrInvalidID.Error()})
	default:
		log.Errorf("%s %s: %s (%s): %v", c.Request.Method, c.Request.URL.Path, generic, resolver.Outcome(err), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": generic})
	}
}
