package service

import (
	"context"

	"github.com/Lapatan16/Event-Organization-App-sub000/internal/models"
	"gorm.io/gorm"
)

// Function-field mocks for the repository interfaces, shared by the service
// tests in this package.

type mockEventRepo struct {
	findByIDFn func(ctx context.Context, id string) (*models.Event, error)
}

func (m *mockEventRepo) FindByID(ctx context.Context, id string) (*models.Event, error) {
	return m.findByIDFn(ctx, id)
}

type mockResourceRepo struct {
	createFn               func(ctx context.Context, res *models.EventResource) error
	findByIDFn             func(ctx context.Context, eventID, id string) (*models.EventResource, error)
	findByEventFn          func(ctx context.Context, eventID string, offset, limit int) ([]models.EventResource, int64, error)
	findPublicFn           func(ctx context.Context, eventID string) ([]models.EventResource, error)
	updateFieldsFn         func(ctx context.Context, eventID, id string, name string, rtype models.ResourceType, quantity int) (int64, error)
	updateFieldsAndTermsFn func(ctx context.Context, eventID, id string, name string, rtype models.ResourceType, quantity int, isPublic bool, price float64) (int64, error)
	deleteFn               func(ctx context.Context, eventID, id string) (int64, error)
	incrementReservedFn    func(ctx context.Context, eventID, id string, delta int) (int64, error)
	releaseReservedFn      func(ctx context.Context, eventID, id string, delta int) (int64, error)
}

func (m *mockResourceRepo) Create(ctx context.Context, res *models.EventResource) error {
	return m.createFn(ctx, res)
}
func (m *mockResourceRepo) FindByID(ctx context.Context, eventID, id string) (*models.EventResource, error) {
	return m.findByIDFn(ctx, eventID, id)
}
func (m *mockResourceRepo) FindByEvent(ctx context.Context, eventID string, offset, limit int) ([]models.EventResource, int64, error) {
	return m.findByEventFn(ctx, eventID, offset, limit)
}
func (m *mockResourceRepo) FindPublicByEvent(ctx context.Context, eventID string) ([]models.EventResource, error) {
	return m.findPublicFn(ctx, eventID)
}
func (m *mockResourceRepo) UpdateFields(ctx context.Context, eventID, id string, name string, rtype models.ResourceType, quantity int) (int64, error) {
	return m.updateFieldsFn(ctx, eventID, id, name, rtype, quantity)
}
func (m *mockResourceRepo) UpdateFieldsAndTerms(ctx context.Context, eventID, id string, name string, rtype models.ResourceType, quantity int, isPublic bool, price float64) (int64, error) {
	return m.updateFieldsAndTermsFn(ctx, eventID, id, name, rtype, quantity, isPublic, price)
}
func (m *mockResourceRepo) Delete(ctx context.Context, eventID, id string) (int64, error) {
	return m.deleteFn(ctx, eventID, id)
}
func (m *mockResourceRepo) IncrementReserved(ctx context.Context, eventID, id string, delta int) (int64, error) {
	return m.incrementReservedFn(ctx, eventID, id, delta)
}
func (m *mockResourceRepo) ReleaseReserved(ctx context.Context, eventID, id string, delta int) (int64, error) {
	return m.releaseReservedFn(ctx, eventID, id, delta)
}

type mockSupplierRepo struct {
	createFn     func(ctx context.Context, supplier *models.Supplier) error
	findByIDFn   func(ctx context.Context, id string) (*models.Supplier, error)
	findAllFn    func(ctx context.Context) ([]models.Supplier, error)
	addProductFn func(ctx context.Context, product *models.SupplierProduct) error
}

func (m *mockSupplierRepo) Create(ctx context.Context, supplier *models.Supplier) error {
	return m.createFn(ctx, supplier)
}
func (m *mockSupplierRepo) FindByID(ctx context.Context, id string) (*models.Supplier, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockSupplierRepo) FindAll(ctx context.Context) ([]models.Supplier, error) {
	return m.findAllFn(ctx)
}
func (m *mockSupplierRepo) AddProduct(ctx context.Context, product *models.SupplierProduct) error {
	return m.addProductFn(ctx, product)
}

type mockContractRepo struct {
	createFn              func(ctx context.Context, tx *gorm.DB, contract *models.Contract) error
	findByIDFn            func(ctx context.Context, id string) (*models.Contract, error)
	findByKeyForUpdateFn  func(ctx context.Context, tx *gorm.DB, resourceID, supplierID, productID string) (*models.Contract, error)
	accumulateFn          func(ctx context.Context, tx *gorm.DB, id string, quantity int, price float64) error
	findAllFn             func(ctx context.Context) ([]models.Contract, error)
	findByEventFn         func(ctx context.Context, eventID string) ([]models.Contract, error)
	findByResourceFn      func(ctx context.Context, resourceID string) ([]models.Contract, error)
	findBySupplierFn      func(ctx context.Context, supplierID string) ([]models.Contract, error)
	findByProductFn       func(ctx context.Context, productID string) ([]models.Contract, error)
	updateStatusFn        func(ctx context.Context, id string, status models.ContractStatus) error
	deleteByIDFn          func(ctx context.Context, id string) (int64, error)
	deleteByKeyFn         func(ctx context.Context, resourceID, supplierID, productID string) (int64, error)
	deleteByResourceFn    func(ctx context.Context, resourceID string) (int64, error)
	deleteByResSupplierFn func(ctx context.Context, resourceID, supplierID string) (int64, error)
}

func (m *mockContractRepo) Create(ctx context.Context, tx *gorm.DB, contract *models.Contract) error {
	return m.createFn(ctx, tx, contract)
}
func (m *mockContractRepo) FindByID(ctx context.Context, id string) (*models.Contract, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockContractRepo) FindByKeyForUpdate(ctx context.Context, tx *gorm.DB, resourceID, supplierID, productID string) (*models.Contract, error) {
	return m.findByKeyForUpdateFn(ctx, tx, resourceID, supplierID, productID)
}
func (m *mockContractRepo) Accumulate(ctx context.Context, tx *gorm.DB, id string, quantity int, price float64) error {
	return m.accumulateFn(ctx, tx, id, quantity, price)
}
func (m *mockContractRepo) FindAll(ctx context.Context) ([]models.Contract, error) {
	return m.findAllFn(ctx)
}
func (m *mockContractRepo) FindByEvent(ctx context.Context, eventID string) ([]models.Contract, error) {
	return m.findByEventFn(ctx, eventID)
}
func (m *mockContractRepo) FindByResource(ctx context.Context, resourceID string) ([]models.Contract, error) {
	return m.findByResourceFn(ctx, resourceID)
}
func (m *mockContractRepo) FindBySupplier(ctx context.Context, supplierID string) ([]models.Contract, error) {
	return m.findBySupplierFn(ctx, supplierID)
}
func (m *mockContractRepo) FindByProduct(ctx context.Context, productID string) ([]models.Contract, error) {
	return m.findByProductFn(ctx, productID)
}
func (m *mockContractRepo) UpdateStatus(ctx context.Context, id string, status models.ContractStatus) error {
	return m.updateStatusFn(ctx, id, status)
}
func (m *mockContractRepo) DeleteByID(ctx context.Context, id string) (int64, error) {
	return m.deleteByIDFn(ctx, id)
}
func (m *mockContractRepo) DeleteByKey(ctx context.Context, resourceID, supplierID, productID string) (int64, error) {
	return m.deleteByKeyFn(ctx, resourceID, supplierID, productID)
}
func (m *mockContractRepo) DeleteByResource(ctx context.Context, resourceID string) (int64, error) {
	return m.deleteByResourceFn(ctx, resourceID)
}
func (m *mockContractRepo) DeleteByResourceAndSupplier(ctx context.Context, resourceID, supplierID string) (int64, error) {
	return m.deleteByResSupplierFn(ctx, resourceID, supplierID)
}
func (m *mockContractRepo) GetDB() *gorm.DB {
	return nil
}
