package store

import (
	"context"
	"fmt"
	"strings"

	"cornerstore-backend/internal/audit"
	"cornerstore-backend/internal/models"

	"gorm.io/gorm"
)

func (s *Service) ListCategories(ctx context.Context) (_ []CategoryView, err error) {
	ctx, span := s.start(ctx, "ListCategories")
	defer func() { finish(span, err) }()

	var categories []models.Category
	if err = s.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}

	res := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		res = append(res, categoryView(c))
	}
	return res, nil
}

func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (_ *CategoryView, err error) {
	ctx, span := s.start(ctx, "CreateCategory")
	defer func() { finish(span, err) }()

	in.CategoryName = strings.TrimSpace(in.CategoryName)
	if in.CategoryName == "" {
		return nil, badRequest("CategoryName is required.")
	}

	var view CategoryView
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c := models.Category{CategoryName: in.CategoryName}
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		view = categoryView(c)
		return audit.WriteLog(tx, audit.LogOptions{
			EntityType:  "category",
			EntityID:    c.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Category created: %s", c.CategoryName),
			After:       view,
		})
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}
