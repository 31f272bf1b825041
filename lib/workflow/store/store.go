package workflowstore

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	workflowerrors "hotel-ops-backend/lib/workflow/errors"
	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"
)

// ListFilter is the resolved, store-level filter. Viewer scoping (submitted /
// assigned) is already translated into RequesterID / AssigneeID by the inbox
// facade before it reaches the store.
type ListFilter struct {
	RequesterID string
	AssigneeID  string
	Statuses    []models.RequestStatus
	EntityTypes []models.EntityType
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Search      string
	Page        int
	Limit       int
}

type Provider interface {
	Create(rec dbmodels.Request) (id string, err error)
	GetByID(propertyID, id string) (rec *dbmodels.Request, err error)
	// UpdateWithVersion applies updMap only when the stored version still
	// matches the one read; a failed precondition is ErrConflict.
	UpdateWithVersion(propertyID, id string, version int64, updMap map[string]interface{}) error
	List(propertyID string, filter ListFilter) (list []dbmodels.Request, err error)
	ListCount(propertyID string, filter ListFilter) (rowCount int64, err error)
	// NextNumber allocates the next per-property request number. Must be
	// called inside the creation transaction.
	NextNumber(propertyID string) (string, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Request) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(propertyID, id string) (*dbmodels.Request, error) {
	rec := dbmodels.Request{}
	err := i.db.
		Where("id = ?", id).
		Where("property_id = ?", propertyID).
		Preload("Requester").
		Preload("CurrentAssignee").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) UpdateWithVersion(propertyID, id string, version int64, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	updMap["version"] = version + 1
	tx := i.db.
		Model(&dbmodels.Request{}).
		Where("id = ?", id).
		Where("property_id = ?", propertyID).
		Where("version = ?", version).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return workflowerrors.ErrConflict
	}
	return nil
}

func (i impl) List(propertyID string, filter ListFilter) (list []dbmodels.Request, err error) {
	list = []dbmodels.Request{}
	tx := i.applyFilter(propertyID, filter).
		Preload("Requester").
		Preload("CurrentAssignee").
		Order("created_at DESC")
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		tx = tx.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(propertyID string, filter ListFilter) (rowCount int64, err error) {
	err = i.applyFilter(propertyID, filter).Count(&rowCount).Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) NextNumber(propertyID string) (string, error) {
	var seq int64
	err := i.db.Raw(
		`INSERT INTO request_counters (property_id, last_number) VALUES (?, 1)
		 ON CONFLICT (property_id) DO UPDATE SET last_number = request_counters.last_number + 1
		 RETURNING last_number`, propertyID).
		Scan(&seq).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("REQ-%06d", seq), nil
}

func (i impl) applyFilter(propertyID string, filter ListFilter) *gorm.DB {
	tx := i.db.
		Model(&dbmodels.Request{}).
		Where("property_id = ?", propertyID)
	if filter.RequesterID != "" {
		tx = tx.Where("requester_id = ?", filter.RequesterID)
	}
	if filter.AssigneeID != "" {
		tx = tx.Where("current_assignee_id = ?", filter.AssigneeID)
	}
	if len(filter.Statuses) > 0 {
		tx = tx.Where("status IN ?", filter.Statuses)
	}
	if len(filter.EntityTypes) > 0 {
		tx = tx.Where("entity_type IN ?", filter.EntityTypes)
	}
	if filter.CreatedFrom != nil {
		tx = tx.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		tx = tx.Where("created_at <= ?", *filter.CreatedTo)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where("request_number ILIKE ? OR title ILIKE ?", pattern, pattern)
	}
	return tx
}
