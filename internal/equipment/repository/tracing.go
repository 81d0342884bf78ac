package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/trafficworks/equipment-service/internal/equipment/domain"
)

var tracer = otel.Tracer("equipment-repository")

// TracedEquipmentRepository wraps GormEquipmentRepository with tracing on the
// availability-sensitive operations; the plain CRUD paths pass through.
type TracedEquipmentRepository struct {
	*GormEquipmentRepository
}

// NewTracedEquipmentRepository creates a new repository with tracing
func NewTracedEquipmentRepository(db *gorm.DB) *TracedEquipmentRepository {
	return &TracedEquipmentRepository{
		GormEquipmentRepository: NewGormEquipmentRepository(db),
	}
}

// Checkout with tracing
func (r *TracedEquipmentRepository) Checkout(ctx context.Context, checkout *domain.EquipmentCheckout) error {
	ctx, span := tracer.Start(ctx, "repository.Checkout")
	span.SetAttributes(
		attribute.String("equipment.id", checkout.EquipmentID),
		attribute.Int("checkout.quantity", checkout.Quantity),
		attribute.String("checkout.user_id", checkout.CheckedOutBy),
	)
	defer span.End()

	err := r.GormEquipmentRepository.Checkout(ctx, checkout)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("checkout.id", checkout.ID))
	return nil
}

// CheckIn with tracing
func (r *TracedEquipmentRepository) CheckIn(ctx context.Context, checkoutID, userID, notes string) (*domain.EquipmentCheckout, error) {
	ctx, span := tracer.Start(ctx, "repository.CheckIn")
	span.SetAttributes(
		attribute.String("checkout.id", checkoutID),
		attribute.String("checkin.user_id", userID),
	)
	defer span.End()

	checkout, err := r.GormEquipmentRepository.CheckIn(ctx, checkoutID, userID, notes)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("equipment.id", checkout.EquipmentID),
		attribute.Int("checkout.quantity", checkout.Quantity),
	)
	return checkout, nil
}

// UpdateItemTotal with tracing
func (r *TracedEquipmentRepository) UpdateItemTotal(ctx context.Context, id string, newTotal int) (*domain.EquipmentItem, error) {
	ctx, span := tracer.Start(ctx, "repository.UpdateItemTotal")
	span.SetAttributes(
		attribute.String("equipment.id", id),
		attribute.Int("equipment.new_total", newTotal),
	)
	defer span.End()

	item, err := r.GormEquipmentRepository.UpdateItemTotal(ctx, id, newTotal)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("equipment.available", item.QuantityAvailable))
	return item, nil
}
