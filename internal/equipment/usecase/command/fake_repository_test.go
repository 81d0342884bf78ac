package command

import (
	"context"
	"sync"
	"time"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// fakeEquipmentRepository is an in-memory EquipmentRepository that mirrors
// the storage-layer ledger semantics: checkout is a conditional decrement
// plus record insert that either fully succeeds or leaves nothing behind,
// and check-in closes a record exactly once.
type fakeEquipmentRepository struct {
	mu          sync.Mutex
	categories  map[string]*domain.EquipmentCategory
	locations   map[string]*domain.Location
	items       map[string]*domain.EquipmentItem
	checkouts   map[string]*domain.EquipmentCheckout
	maintenance map[string]*domain.EquipmentMaintenance
}

func newFakeEquipmentRepository() *fakeEquipmentRepository {
	return &fakeEquipmentRepository{
		categories:  make(map[string]*domain.EquipmentCategory),
		locations:   make(map[string]*domain.Location),
		items:       make(map[string]*domain.EquipmentItem),
		checkouts:   make(map[string]*domain.EquipmentCheckout),
		maintenance: make(map[string]*domain.EquipmentMaintenance),
	}
}

func (f *fakeEquipmentRepository) CreateCategory(_ context.Context, c *domain.EquipmentCategory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories[c.ID] = c
	return nil
}

func (f *fakeEquipmentRepository) FindCategoryByID(_ context.Context, id string) (*domain.EquipmentCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (f *fakeEquipmentRepository) FindAllCategories(_ context.Context) ([]domain.EquipmentCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.EquipmentCategory, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeEquipmentRepository) UpdateCategory(_ context.Context, c *domain.EquipmentCategory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	f.categories[c.ID] = c
	return nil
}

func (f *fakeEquipmentRepository) DeleteCategory(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.categories, id)
	return nil
}

func (f *fakeEquipmentRepository) CreateLocation(_ context.Context, l *domain.Location) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.locations[l.ID] = l
	return nil
}

func (f *fakeEquipmentRepository) FindLocationByID(_ context.Context, id string) (*domain.Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.locations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return l, nil
}

func (f *fakeEquipmentRepository) FindAllLocations(_ context.Context) ([]domain.Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Location, 0, len(f.locations))
	for _, l := range f.locations {
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeEquipmentRepository) UpdateLocation(_ context.Context, l *domain.Location) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.locations[l.ID]; !ok {
		return domain.ErrNotFound
	}
	f.locations[l.ID] = l
	return nil
}

func (f *fakeEquipmentRepository) DeleteLocation(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.locations, id)
	return nil
}

func (f *fakeEquipmentRepository) CreateItem(_ context.Context, item *domain.EquipmentItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeEquipmentRepository) FindItemByID(_ context.Context, id string) (*domain.EquipmentItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (f *fakeEquipmentRepository) FindAllItems(_ context.Context, filter domain.ItemFilter) ([]domain.EquipmentItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.EquipmentItem
	for _, item := range f.items {
		if filter.CategoryID != "" && item.CategoryID != filter.CategoryID {
			continue
		}
		if filter.LocationID != "" && (item.LocationID == nil || *item.LocationID != filter.LocationID) {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (f *fakeEquipmentRepository) UpdateItem(_ context.Context, item *domain.EquipmentItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.items[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	// Metadata only; the counters belong to Checkout, CheckIn and
	// UpdateItemTotal, same as the store-backed repository.
	cp := *item
	cp.QuantityTotal = stored.QuantityTotal
	cp.QuantityAvailable = stored.QuantityAvailable
	cp.CreatedAt = stored.CreatedAt
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeEquipmentRepository) UpdateItemTotal(_ context.Context, id string, newTotal int) (*domain.EquipmentItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	item.QuantityAvailable = domain.RederiveAvailable(item.QuantityTotal, item.QuantityAvailable, newTotal)
	item.QuantityTotal = newTotal
	cp := *item
	return &cp, nil
}

func (f *fakeEquipmentRepository) DeleteItem(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeEquipmentRepository) Checkout(_ context.Context, checkout *domain.EquipmentCheckout) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[checkout.EquipmentID]
	if !ok {
		return domain.ErrNotFound
	}
	if item.QuantityAvailable < checkout.Quantity {
		return domain.ErrInsufficientStock
	}
	item.QuantityAvailable -= checkout.Quantity
	cp := *checkout
	f.checkouts[checkout.ID] = &cp
	return nil
}

func (f *fakeEquipmentRepository) CheckIn(_ context.Context, checkoutID, userID, notes string) (*domain.EquipmentCheckout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	checkout, ok := f.checkouts[checkoutID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if checkout.CheckedInAt != nil {
		return nil, domain.ErrAlreadyCheckedIn
	}
	now := time.Now()
	checkout.CheckedInAt = &now
	checkout.CheckedInBy = &userID
	if notes != "" {
		if checkout.Notes != "" {
			checkout.Notes += "\n" + notes
		} else {
			checkout.Notes = notes
		}
	}
	if item, ok := f.items[checkout.EquipmentID]; ok {
		item.QuantityAvailable = domain.ApplyDelta(item.QuantityAvailable, item.QuantityTotal, checkout.Quantity)
	}
	cp := *checkout
	return &cp, nil
}

func (f *fakeEquipmentRepository) FindCheckoutByID(_ context.Context, id string) (*domain.EquipmentCheckout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	checkout, ok := f.checkouts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *checkout
	return &cp, nil
}

func (f *fakeEquipmentRepository) FindCheckouts(_ context.Context, filter domain.CheckoutFilter) ([]domain.EquipmentCheckout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.EquipmentCheckout
	for _, c := range f.checkouts {
		if filter.EquipmentID != "" && c.EquipmentID != filter.EquipmentID {
			continue
		}
		if filter.CheckedOutBy != "" && c.CheckedOutBy != filter.CheckedOutBy {
			continue
		}
		if filter.OnlyOpen && c.CheckedInAt != nil {
			continue
		}
		if filter.OnlyClosed && c.CheckedInAt == nil {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeEquipmentRepository) DeleteCheckout(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.checkouts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.checkouts, id)
	return nil
}

func (f *fakeEquipmentRepository) CreateMaintenance(_ context.Context, record *domain.EquipmentMaintenance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *record
	f.maintenance[record.ID] = &cp
	return nil
}

func (f *fakeEquipmentRepository) FindMaintenanceByID(_ context.Context, id string) (*domain.EquipmentMaintenance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.maintenance[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *record
	return &cp, nil
}

func (f *fakeEquipmentRepository) FindMaintenance(_ context.Context, equipmentID string, limit, offset int) ([]domain.EquipmentMaintenance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.EquipmentMaintenance
	for _, record := range f.maintenance {
		if record.EquipmentID == equipmentID {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (f *fakeEquipmentRepository) UpdateMaintenance(_ context.Context, record *domain.EquipmentMaintenance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.maintenance[record.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *record
	f.maintenance[record.ID] = &cp
	return nil
}
