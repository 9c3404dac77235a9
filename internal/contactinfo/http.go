package contactinfo

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/kizzylord/portfolio-backend/internal/api/http"
)

type Handler struct {
	repo *Repo
}

func Register(rg *gin.RouterGroup, repo *Repo) {
	h := &Handler{repo: repo}

	rg.POST("/", h.create)
	rg.GET("/", h.list)
	rg.GET("/:id", h.get)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}

type createReq struct {
	Email   *string `json:"email" binding:"required"`
	Phone   *string `json:"phone" binding:"required"`
	Address *string `json:"address" binding:"required"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.BindingError(c, err)
		return
	}

	ci, err := h.repo.Create(c.Request.Context(), *req.Email, *req.Phone, *req.Address)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ci)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := httpapi.IDParam(c)
	if !ok {
		return
	}

	ci, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "contact info not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ci)
}

func (h *Handler) list(c *gin.Context) {
	skip, limit := httpapi.Pagination(c)

	items, err := h.repo.List(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := httpapi.IDParam(c)
	if !ok {
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.BindingError(c, err)
		return
	}

	ci, err := h.repo.Update(c.Request.Context(), id, *req.Email, *req.Phone, *req.Address)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "contact info not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ci)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := httpapi.IDParam(c)
	if !ok {
		return
	}

	ci, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "contact info not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ci)
}
