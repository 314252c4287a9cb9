package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pageza/recipes/backend/internal/models"
	"github.com/pageza/recipes/backend/internal/types"
	"github.com/pageza/recipes/backend/pkg/logger"
	"gorm.io/gorm"
)

// MaxTagSearchResults caps SearchTags
const MaxTagSearchResults = 20

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// TagService handles tag operations
type TagService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewTagService creates a new TagService instance
func NewTagService(db *gorm.DB, log *logger.Logger) *TagService {
	return &TagService{
		db:  db,
		log: log.WithComponent("tag_service"),
	}
}

// ListTags returns every tag ordered by name
func (s *TagService) ListTags(ctx context.Context) ([]types.TagResponse, error) {
	var tags []models.Tag
	if err := s.db.WithContext(ctx).Order("name ASC, id ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tagResponses(tags), nil
}

// GetTag retrieves a tag by ID
func (s *TagService) GetTag(ctx context.Context, id uuid.UUID) (*types.TagResponse, error) {
	var tag models.Tag
	if err := s.db.WithContext(ctx).First(&tag, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("tag", id)
		}
		return nil, fmt.Errorf("failed to load tag: %w", err)
	}
	resp := types.NewTagResponse(&tag)
	return &resp, nil
}

// CreateTag creates a tag. A name equal to an existing one ignoring case
// is a conflict.
func (s *TagService) CreateTag(ctx context.Context, req *types.CreateTagRequest) (*types.TagResponse, error) {
	db := s.db.WithContext(ctx)

	var existing int64
	if err := db.Model(&models.Tag{}).Where("normalized_name = ?", models.NormalizeTagName(req.Name)).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to check tag name: %w", err)
	}
	if existing > 0 {
		return nil, fmt.Errorf("%w: tag %q", ErrConflict, strings.TrimSpace(req.Name))
	}

	tag := &models.Tag{Name: req.Name}
	if err := db.Create(tag).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: tag %q", ErrConflict, tag.Name)
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	resp := types.NewTagResponse(tag)
	return &resp, nil
}

// DeleteTag deletes a tag no recipe is linked to
func (s *TagService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	return deleteCatalogRow(ctx, s.db, &models.Tag{}, "tag", id, &models.RecipeTag{}, "tag_id")
}

// SearchTags returns tags whose name contains query ignoring case, ordered
// by name. Limits outside 1..MaxTagSearchResults use the maximum.
func (s *TagService) SearchTags(ctx context.Context, query string, limit int) ([]types.TagResponse, error) {
	folded := models.NormalizeTagName(query)
	if folded == "" {
		return []types.TagResponse{}, nil
	}
	if limit < 1 || limit > MaxTagSearchResults {
		limit = MaxTagSearchResults
	}

	var tags []models.Tag
	err := s.db.WithContext(ctx).
		Where(`normalized_name LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(folded)+"%").
		Order("name ASC, id ASC").
		Limit(limit).
		Find(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search tags: %w", err)
	}
	return tagResponses(tags), nil
}

func tagResponses(tags []models.Tag) []types.TagResponse {
	result := make([]types.TagResponse, 0, len(tags))
	for i := range tags {
		result = append(result, types.NewTagResponse(&tags[i]))
	}
	return result
}
