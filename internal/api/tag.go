package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipes/backend/internal/service"
	"github.com/pageza/recipes/backend/internal/types"
	"github.com/pageza/recipes/backend/pkg/logger"
)

type TagHandler struct {
	tagService service.ITagService
	log        *logger.Logger
}

func NewTagHandler(tagService service.ITagService, log *logger.Logger) *TagHandler {
	return &TagHandler{
		tagService: tagService,
		log:        log.WithComponent("tag_handler"),
	}
}

func (h *TagHandler) RegisterRoutes(router *gin.RouterGroup) {
	tags := router.Group("/tags")
	{
		tags.GET("", h.ListTags)
		tags.POST("", h.CreateTag)
		tags.GET("/search", h.SearchTags)
		tags.GET("/:id", h.GetTag)
		tags.DELETE("/:id", h.DeleteTag)
	}
}

func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// SearchTags backs the tag autocomplete
func (h *TagHandler) SearchTags(c *gin.Context) {
	tags, err := h.tagService.SearchTags(c.Request.Context(), c.Query("query"), service.MaxTagSearchResults)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) GetTag(c *gin.Context) {
	id, ok := parseID(c, "id", "tag")
	if !ok {
		return
	}
	tag, err := h.tagService.GetTag(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req types.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tag, err := h.tagService.CreateTag(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Header("Location", "/api/tags/"+tag.ID.String())
	c.JSON(http.StatusCreated, tag)
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, ok := parseID(c, "id", "tag")
	if !ok {
		return
	}
	if err := h.tagService.DeleteTag(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
