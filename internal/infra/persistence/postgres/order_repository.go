package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// ListOrders returns one page of orders, newest first, and the exact total.
func (repo *orderRepository) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, int64, error) {
	base := replica(repo.db.WithContext(ctx)).Model(&model.OrderModel{})
	if filter.PaymentStatus != "" {
		base = base.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.FulfillmentStatus != "" {
		base = base.Where("fulfillment_status = ?", filter.FulfillmentStatus)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := likePattern(search)
		if number, err := strconv.ParseInt(strings.TrimPrefix(search, "#"), 10, 64); err == nil {
			base = base.Where("order_number = ? OR customer_email ILIKE ? OR customer_name ILIKE ?", number, pattern, pattern)
		} else {
			base = base.Where("customer_email ILIKE ? OR customer_name ILIKE ?", pattern, pattern)
		}
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := paginate(base.Session(&gorm.Session{}), filter.Page).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomains(orderModels), total, nil
}

// FindOrderByID retrieves an order with its items and notes.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrdersByUserIDs retrieves the orders of many customers.
func (repo *orderRepository) FindOrdersByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.Order, error) {
	if len(userIDs) == 0 {
		return []*entity.Order{}, nil
	}

	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user IDs")
	}

	return toOrderDomains(orderModels), nil
}

// ListOrdersCreatedSince retrieves orders created at or after since.
func (repo *orderRepository) ListOrdersCreatedSince(ctx context.Context, since time.Time) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := replica(repo.db.WithContext(ctx)).
		Select("id", "order_number", "user_id", "final_amount", "payment_status", "fulfillment_status", "created_at").
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent orders")
	}

	return toOrderDomains(orderModels), nil
}

// UpdateOrderStatus changes payment and/or fulfillment status.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, update repository.OrderStatusUpdate) error {
	updates := map[string]any{}
	if update.PaymentStatus != nil {
		updates["payment_status"] = string(*update.PaymentStatus)
	}
	if update.FulfillmentStatus != nil {
		updates["fulfillment_status"] = string(*update.FulfillmentStatus)
	}
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// AddOrderNote appends a note to an order.
func (repo *orderRepository) AddOrderNote(ctx context.Context, note *entity.OrderNote) error {
	noteM := &model.OrderNoteModel{
		ID:       note.ID,
		OrderID:  note.OrderID,
		AuthorID: note.AuthorID,
		Body:     note.Body,
	}

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add order note")
	}

	note.ID = noteM.ID
	note.CreatedAt = noteM.CreatedAt

	return nil
}

// DeleteOrder removes an order with its items and notes.
func (repo *orderRepository) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UnlinkOrdersFromUser clears user_id on every order of userID.
func (repo *orderRepository) UnlinkOrdersFromUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("user_id = ?", userID).
		Update("user_id", nil)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to unlink orders from user")
	}

	return result.RowsAffected, nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:                data.ID,
		OrderNumber:       data.OrderNumber,
		UserID:            data.UserID,
		CustomerEmail:     data.CustomerEmail,
		CustomerName:      data.CustomerName,
		FinalAmount:       data.FinalAmount,
		PaymentStatus:     entity.PaymentStatus(data.PaymentStatus),
		FulfillmentStatus: entity.FulfillmentStatus(data.FulfillmentStatus),
		CouponCode:        data.CouponCode,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}

	for _, item := range data.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ID:        item.ID,
			OrderID:   item.OrderID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		})
	}
	for _, note := range data.Notes {
		order.Notes = append(order.Notes, entity.OrderNote{
			ID:        note.ID,
			OrderID:   note.OrderID,
			AuthorID:  note.AuthorID,
			Body:      note.Body,
			CreatedAt: note.CreatedAt,
		})
	}

	return order
}

func toOrderDomains(models []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for _, orderM := range models {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}
