package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"cornerstore-backend/internal/models"

	"gorm.io/gorm"
)

type LogOptions struct {
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

// WriteLog stores one audit row through db, normally the transaction of the audited write.
func WriteLog(db *gorm.DB, opts LogOptions) error {
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	log := models.AuditLog{
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := db.Create(&log).Error; err != nil {
		return fmt.Errorf("audit log could not be saved: %w", err)
	}
	return nil
}

type Filter struct {
	EntityType string
	EntityID   uint
}

// List returns matching rows, newest first.
func List(ctx context.Context, db *gorm.DB, f Filter) ([]models.AuditLog, error) {
	dbq := db.WithContext(ctx).Model(&models.AuditLog{})
	if f.EntityType != "" {
		dbq = dbq.Where("entity_type = ?", f.EntityType)
	}
	if f.EntityID != 0 {
		dbq = dbq.Where("entity_id = ?", f.EntityID)
	}

	var logs []models.AuditLog
	if err := dbq.Order("id DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
