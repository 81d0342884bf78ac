package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

// GormEquipmentRepository implements EquipmentRepository using GORM.
// Checkout and check-in run the record write and the availability counter
// update inside one transaction, with the decrement expressed as a
// conditional update so concurrent checkouts cannot jointly overdraw an item.
type GormEquipmentRepository struct {
	db *gorm.DB
}

// NewGormEquipmentRepository creates a new GORM equipment repository
func NewGormEquipmentRepository(db *gorm.DB) *GormEquipmentRepository {
	return &GormEquipmentRepository{db: db}
}

// AutoMigrate creates or updates the inventory tables
func (r *GormEquipmentRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&domain.EquipmentCategory{},
		&domain.Location{},
		&domain.EquipmentItem{},
		&domain.EquipmentCheckout{},
		&domain.EquipmentMaintenance{},
	)
}

// --- Categories ---

func (r *GormEquipmentRepository) CreateCategory(ctx context.Context, category *domain.EquipmentCategory) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *GormEquipmentRepository) FindCategoryByID(ctx context.Context, id string) (*domain.EquipmentCategory, error) {
	var category domain.EquipmentCategory
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &category, nil
}

func (r *GormEquipmentRepository) FindAllCategories(ctx context.Context) ([]domain.EquipmentCategory, error) {
	var categories []domain.EquipmentCategory
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *GormEquipmentRepository) UpdateCategory(ctx context.Context, category *domain.EquipmentCategory) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

func (r *GormEquipmentRepository) DeleteCategory(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.EquipmentCategory{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --- Locations ---

func (r *GormEquipmentRepository) CreateLocation(ctx context.Context, location *domain.Location) error {
	if err := r.db.WithContext(ctx).Create(location).Error; err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

func (r *GormEquipmentRepository) FindLocationByID(ctx context.Context, id string) (*domain.Location, error) {
	var location domain.Location
	if err := r.db.WithContext(ctx).First(&location, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find location: %w", err)
	}
	return &location, nil
}

func (r *GormEquipmentRepository) FindAllLocations(ctx context.Context) ([]domain.Location, error) {
	var locations []domain.Location
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

func (r *GormEquipmentRepository) UpdateLocation(ctx context.Context, location *domain.Location) error {
	if err := r.db.WithContext(ctx).Save(location).Error; err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	return nil
}

func (r *GormEquipmentRepository) DeleteLocation(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.Location{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete location: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --- Items ---

func (r *GormEquipmentRepository) CreateItem(ctx context.Context, item *domain.EquipmentItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create equipment item: %w", err)
	}
	return nil
}

func (r *GormEquipmentRepository) FindItemByID(ctx context.Context, id string) (*domain.EquipmentItem, error) {
	var item domain.EquipmentItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find equipment item: %w", err)
	}
	return &item, nil
}

func (r *GormEquipmentRepository) FindAllItems(ctx context.Context, filter domain.ItemFilter) ([]domain.EquipmentItem, error) {
	tx := r.db.WithContext(ctx).Model(&domain.EquipmentItem{})

	if filter.CategoryID != "" {
		tx = tx.Where("category_id = ?", filter.CategoryID)
	}
	if filter.LocationID != "" {
		tx = tx.Where("location_id = ?", filter.LocationID)
	}
	if filter.Condition != "" {
		tx = tx.Where("condition = ?", filter.Condition)
	}
	if q := strings.TrimSpace(filter.Search); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(serial_number) LIKE ?", like, like)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var items []domain.EquipmentItem
	err := tx.Order("name ASC").Limit(limit).Offset(filter.Offset).Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment items: %w", err)
	}
	return items, nil
}

// UpdateItem persists metadata edits. The quantity columns are never written
// here; a stale read of the struct must not overwrite a counter mutated by a
// concurrent checkout, so those columns change only through Checkout, CheckIn
// and UpdateItemTotal.
func (r *GormEquipmentRepository) UpdateItem(ctx context.Context, item *domain.EquipmentItem) error {
	if err := r.db.WithContext(ctx).
		Omit("quantity_total", "quantity_available", "created_at").
		Save(item).Error; err != nil {
		return fmt.Errorf("failed to update equipment item: %w", err)
	}
	return nil
}

// UpdateItemTotal edits an item's total quantity and re-derives the available
// count, preserving the checked-out count. The row is locked for the duration
// so a concurrent checkout cannot interleave between read and write.
func (r *GormEquipmentRepository) UpdateItemTotal(ctx context.Context, id string, newTotal int) (*domain.EquipmentItem, error) {
	var item domain.EquipmentItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		item.QuantityAvailable = domain.RederiveAvailable(item.QuantityTotal, item.QuantityAvailable, newTotal)
		item.QuantityTotal = newTotal
		item.UpdatedAt = time.Now()

		return tx.Save(&item).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update item total: %w", err)
	}
	return &item, nil
}

func (r *GormEquipmentRepository) DeleteItem(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.EquipmentItem{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete equipment item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --- Checkouts ---

// Checkout inserts an open checkout row and decrements the item's available
// count in a single transaction. The decrement is conditional on enough stock
// remaining, so two racing checkouts that would jointly overdraw serialize at
// the database and the loser gets ErrInsufficientStock.
func (r *GormEquipmentRepository) Checkout(ctx context.Context, checkout *domain.EquipmentCheckout) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.EquipmentItem{}).
			Where("id = ? AND quantity_available >= ?", checkout.EquipmentID, checkout.Quantity).
			Update("quantity_available", gorm.Expr("quantity_available - ?", checkout.Quantity))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Either the item is missing or there is not enough stock
			var count int64
			if err := tx.Model(&domain.EquipmentItem{}).
				Where("id = ?", checkout.EquipmentID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrNotFound
			}
			return domain.ErrInsufficientStock
		}

		return tx.Create(checkout).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInsufficientStock) {
			return err
		}
		return fmt.Errorf("failed to check out equipment: %w", err)
	}
	return nil
}

// CheckIn closes an open checkout and returns its quantity to the item's
// available count in a single transaction. The checkout row is locked so a
// duplicate check-in cannot double-increment availability.
func (r *GormEquipmentRepository) CheckIn(ctx context.Context, checkoutID, userID, notes string) (*domain.EquipmentCheckout, error) {
	var checkout domain.EquipmentCheckout
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&checkout, "id = ?", checkoutID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		if checkout.CheckedInAt != nil {
			return domain.ErrAlreadyCheckedIn
		}

		now := time.Now().UTC()
		checkout.CheckedInAt = &now
		checkout.CheckedInBy = &userID
		if notes != "" {
			if checkout.Notes != "" {
				checkout.Notes += "\n" + notes
			} else {
				checkout.Notes = notes
			}
		}
		if err := tx.Save(&checkout).Error; err != nil {
			return err
		}

		// Capped at the total; a quantity edit may have shrunk it while the
		// checkout was open
		return tx.Model(&domain.EquipmentItem{}).
			Where("id = ?", checkout.EquipmentID).
			Update("quantity_available",
				gorm.Expr("LEAST(quantity_available + ?, quantity_total)", checkout.Quantity)).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrAlreadyCheckedIn) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to check in equipment: %w", err)
	}
	return &checkout, nil
}

func (r *GormEquipmentRepository) FindCheckoutByID(ctx context.Context, id string) (*domain.EquipmentCheckout, error) {
	var checkout domain.EquipmentCheckout
	if err := r.db.WithContext(ctx).First(&checkout, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find checkout: %w", err)
	}
	return &checkout, nil
}

func (r *GormEquipmentRepository) FindCheckouts(ctx context.Context, filter domain.CheckoutFilter) ([]domain.EquipmentCheckout, error) {
	tx := r.db.WithContext(ctx).Model(&domain.EquipmentCheckout{})

	if filter.EquipmentID != "" {
		tx = tx.Where("equipment_id = ?", filter.EquipmentID)
	}
	if filter.CheckedOutBy != "" {
		tx = tx.Where("checked_out_by = ?", filter.CheckedOutBy)
	}
	if filter.OnlyOpen {
		tx = tx.Where("checked_in_at IS NULL")
	}
	if filter.OnlyClosed {
		tx = tx.Where("checked_in_at IS NOT NULL")
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var checkouts []domain.EquipmentCheckout
	err := tx.Order("checked_out_at DESC").Limit(limit).Offset(filter.Offset).Find(&checkouts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list checkouts: %w", err)
	}
	return checkouts, nil
}

// DeleteCheckout removes a checkout row without touching availability; this
// is an administrative correction, not a check-in.
func (r *GormEquipmentRepository) DeleteCheckout(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.EquipmentCheckout{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete checkout: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --- Maintenance ---

func (r *GormEquipmentRepository) CreateMaintenance(ctx context.Context, record *domain.EquipmentMaintenance) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create maintenance record: %w", err)
	}
	return nil
}

func (r *GormEquipmentRepository) FindMaintenanceByID(ctx context.Context, id string) (*domain.EquipmentMaintenance, error) {
	var record domain.EquipmentMaintenance
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find maintenance record: %w", err)
	}
	return &record, nil
}

func (r *GormEquipmentRepository) FindMaintenance(ctx context.Context, equipmentID string, limit, offset int) ([]domain.EquipmentMaintenance, error) {
	tx := r.db.WithContext(ctx).Model(&domain.EquipmentMaintenance{})
	if equipmentID != "" {
		tx = tx.Where("equipment_id = ?", equipmentID)
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var records []domain.EquipmentMaintenance
	err := tx.Order("created_at DESC").Limit(limit).Offset(offset).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}
	return records, nil
}

func (r *GormEquipmentRepository) UpdateMaintenance(ctx context.Context, record *domain.EquipmentMaintenance) error {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("failed to update maintenance record: %w", err)
	}
	return nil
}
