package postgres

import (
	"context"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ticketRepository implements the repository.TicketRepository interface.
type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository is the constructor for ticketRepository.
func NewTicketRepository(db *gorm.DB) repository.TicketRepository {
	return &ticketRepository{
		db: db,
	}
}

// ListTickets returns one page of tickets, most recently updated first, and the exact total.
func (repo *ticketRepository) ListTickets(ctx context.Context, filter repository.TicketFilter) ([]*entity.Ticket, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.TicketModel{})
	if filter.Status != "" {
		base = base.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		base = base.Where("priority = ?", filter.Priority)
	}
	if filter.UserID != nil {
		base = base.Where("user_id = ?", *filter.UserID)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count tickets")
	}

	var ticketModels []*model.TicketModel
	if err := paginate(base.Session(&gorm.Session{}), filter.Page).
		Order("updated_at DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list tickets")
	}

	tickets := make([]*entity.Ticket, 0, len(ticketModels))
	for _, ticketM := range ticketModels {
		tickets = append(tickets, toTicketDomain(ticketM))
	}

	return tickets, total, nil
}

// FindTicketByID retrieves a ticket with its full thread, internal messages included.
func (repo *ticketRepository) FindTicketByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	var ticketM model.TicketModel

	if err := repo.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&ticketM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTicketNotFound
		}

		return nil, errors.Wrap(err, "failed to find ticket by ID")
	}

	return toTicketDomain(&ticketM), nil
}

// CreateTicket persists a ticket and its opening messages.
func (repo *ticketRepository) CreateTicket(ctx context.Context, ticket *entity.Ticket) error {
	ticketM := &model.TicketModel{
		ID:       ticket.ID,
		UserID:   ticket.UserID,
		Subject:  ticket.Subject,
		Status:   string(ticket.Status),
		Priority: string(ticket.Priority),
	}
	for _, msg := range ticket.Messages {
		ticketM.Messages = append(ticketM.Messages, *fromTicketMessageDomain(&msg))
	}

	if err := repo.db.WithContext(ctx).Create(ticketM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required ticket information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ticket")
	}

	created := toTicketDomain(ticketM)
	*ticket = *created

	return nil
}

// AddTicketMessage appends a message and touches the ticket's updated_at.
func (repo *ticketRepository) AddTicketMessage(ctx context.Context, message *entity.TicketMessage) error {
	messageM := fromTicketMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTicketNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add ticket message")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.TicketModel{}).
		Where("id = ?", message.TicketID).
		Update("updated_at", time.Now()).Error; err != nil {
		return errors.Wrap(err, "failed to touch ticket")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// UpdateTicketState changes status and/or priority.
func (repo *ticketRepository) UpdateTicketState(ctx context.Context, id uuid.UUID, update repository.TicketStateUpdate) error {
	updates := map[string]any{}
	if update.Status != nil {
		updates["status"] = string(*update.Status)
	}
	if update.Priority != nil {
		updates["priority"] = string(*update.Priority)
	}
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.TicketModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update ticket")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTicketNotFound
	}

	return nil
}

// CountOpenTickets counts open tickets and, among them, urgent ones.
func (repo *ticketRepository) CountOpenTickets(ctx context.Context) (repository.TicketCounts, error) {
	var counts repository.TicketCounts

	if err := replica(repo.db.WithContext(ctx)).
		Model(&model.TicketModel{}).
		Select("COUNT(*) AS open, COUNT(*) FILTER (WHERE priority = ?) AS urgent", entity.PriorityUrgent).
		Where("status = ?", entity.TicketOpen).
		Scan(&counts).Error; err != nil {
		return repository.TicketCounts{}, errors.Wrap(err, "failed to count open tickets")
	}

	return counts, nil
}

// UnlinkTicketsFromUser clears user_id on every ticket of userID.
func (repo *ticketRepository) UnlinkTicketsFromUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.TicketModel{}).
		Where("user_id = ?", userID).
		Update("user_id", nil)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to unlink tickets from user")
	}

	return result.RowsAffected, nil
}

func toTicketDomain(data *model.TicketModel) *entity.Ticket {
	if data == nil {
		return nil
	}

	ticket := &entity.Ticket{
		ID:        data.ID,
		UserID:    data.UserID,
		Subject:   data.Subject,
		Status:    entity.TicketStatus(data.Status),
		Priority:  entity.TicketPriority(data.Priority),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	for _, msg := range data.Messages {
		ticket.Messages = append(ticket.Messages, entity.TicketMessage{
			ID:         msg.ID,
			TicketID:   msg.TicketID,
			AuthorID:   msg.AuthorID,
			Body:       msg.Body,
			IsInternal: msg.IsInternal,
			CreatedAt:  msg.CreatedAt,
		})
	}

	return ticket
}

func fromTicketMessageDomain(data *entity.TicketMessage) *model.TicketMessageModel {
	return &model.TicketMessageModel{
		ID:         data.ID,
		TicketID:   data.TicketID,
		AuthorID:   data.AuthorID,
		Body:       data.Body,
		IsInternal: data.IsInternal,
		CreatedAt:  data.CreatedAt,
	}
}
