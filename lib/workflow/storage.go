package workflowhandler

import (
	"gorm.io/gorm"

	documentstore "hotel-ops-backend/lib/document-change/store"
	employeestore "hotel-ops-backend/lib/employee/store"
	leavestore "hotel-ops-backend/lib/leave-request/store"
	transferstore "hotel-ops-backend/lib/transfer-request/store"
	workflowhistorystore "hotel-ops-backend/lib/workflow/history-store"
	workflowstore "hotel-ops-backend/lib/workflow/store"
)

// Stores bundles every store the engine and the domain bindings touch.
// Atomic hands out a copy bound to the transaction so a binding's writes
// commit or roll back together with the request envelope.
type Stores struct {
	Requests  workflowstore.Provider
	History   workflowhistorystore.Provider
	Employees employeestore.Provider
	Leave     leavestore.Provider
	Documents documentstore.Provider
	Transfers transferstore.Provider
}

type Storage interface {
	Stores() Stores
	Atomic(fn func(s Stores) error) error
}

func NewGormStorage(DB *gorm.DB) Storage {
	return gormStorage{db: DB}
}

type gormStorage struct {
	db *gorm.DB
}

func (g gormStorage) Stores() Stores {
	return storesFor(g.db)
}

func (g gormStorage) Atomic(fn func(s Stores) error) error {
	return g.db.Transaction(func(tx *gorm.DB) error {
		return fn(storesFor(tx))
	})
}

func storesFor(tx *gorm.DB) Stores {
	return Stores{
		Requests:  workflowstore.NewInstance(tx),
		History:   workflowhistorystore.NewInstance(tx),
		Employees: employeestore.NewInstance(tx),
		Leave:     leavestore.NewInstance(tx),
		Documents: documentstore.NewInstance(tx),
		Transfers: transferstore.NewInstance(tx),
	}
}
