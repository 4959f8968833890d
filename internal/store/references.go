package store

import (
	"cornerstore-backend/internal/models"

	"gorm.io/gorm"
)

// Kind names a referenceable entity; the string is what error messages show.
type Kind string

const (
	KindCashier  Kind = "Cashier"
	KindCategory Kind = "Category"
	KindProduct  Kind = "Product"
	KindOrder    Kind = "Order"
)

func (k Kind) model() any {
	switch k {
	case KindCashier:
		return &models.Cashier{}
	case KindCategory:
		return &models.Category{}
	case KindProduct:
		return &models.Product{}
	case KindOrder:
		return &models.Order{}
	}
	return nil
}

// validateReference reports whether an entity of kind with id exists.
func validateReference(tx *gorm.DB, kind Kind, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}
	var count int64
	if err := tx.Model(kind.model()).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func requireReference(tx *gorm.DB, kind Kind, id int64) error {
	ok, err := validateReference(tx, kind, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound(kind, id)
	}
	return nil
}

// resolveProducts checks every id with one query. When any id is missing the whole set is
// rejected without saying which one.
func resolveProducts(tx *gorm.DB, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	var count int64
	if err := tx.Model(&models.Product{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}
	if count < int64(len(ids)) {
		return badRequest("One or more products do not exist.")
	}
	return nil
}
