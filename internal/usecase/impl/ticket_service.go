package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TicketServiceParams holds dependencies for ticketService, injected by Fx.
type TicketServiceParams struct {
	fx.In

	Gate      usecase.RoleGate
	TxManager repository.TransactionManager
	Tickets   repository.TicketRepository
	Profiles  repository.ProfileRepository
	Routes    service.RouteCache
	Logger    *slog.Logger
}

// ticketService implements the TicketUsecase interface.
type ticketService struct {
	gate      usecase.RoleGate
	txManager repository.TransactionManager
	tickets   repository.TicketRepository
	profiles  repository.ProfileRepository
	routes    service.RouteCache
	logger    *slog.Logger
}

// NewTicketService is the constructor for ticketService.
func NewTicketService(params TicketServiceParams) usecase.TicketUsecase {
	return &ticketService{
		gate:      params.Gate,
		txManager: params.TxManager,
		tickets:   params.Tickets,
		profiles:  params.Profiles,
		routes:    params.Routes,
		logger:    params.Logger,
	}
}

func (srv *ticketService) ListTickets(ctx context.Context, input usecase.TicketListInput) (*usecase.TicketPage, error) {
	if _, err := srv.gate.AssertSupportDesk(ctx); err != nil {
		return nil, err
	}
	if err := validateTicketFilter(input.Status, input.Priority); err != nil {
		return nil, err
	}

	tickets, total, err := srv.tickets.ListTickets(ctx, repository.TicketFilter{
		Status:   input.Status,
		Priority: input.Priority,
		Page:     input.ToRepository(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tickets")
	}

	owners := make([]*uuid.UUID, len(tickets))
	for i, t := range tickets {
		owners[i] = t.UserID
	}
	byID, err := profilesByID(ctx, srv.profiles, ownerIDs(owners...))
	if err != nil {
		return nil, err
	}

	return &usecase.TicketPage{
		Tickets:  ticketViews(tickets, byID),
		PageMeta: usecase.NewPageMeta(input.PageInput, total),
	}, nil
}

// GetTicket returns the full thread, internal notes included.
func (srv *ticketService) GetTicket(ctx context.Context, id uuid.UUID) (*usecase.TicketDetail, error) {
	if _, err := srv.gate.AssertSupportDesk(ctx); err != nil {
		return nil, err
	}

	ticket, err := srv.tickets.FindTicketByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrTicketNotFound, "ticket")
	}

	var owner *entity.Profile
	if ticket.UserID != nil {
		owner, err = srv.profiles.FindProfileByID(ctx, *ticket.UserID)
		if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(err, "failed to load ticket customer")
		}
	}

	return &usecase.TicketDetail{
		Ticket:   ticket,
		Customer: customerRef(ticket.UserID, owner, "", ""),
	}, nil
}

func (srv *ticketService) ReplyTicket(ctx context.Context, id uuid.UUID, input usecase.TicketReplyInput) (*entity.TicketMessage, error) {
	principal, err := srv.gate.AssertSupportDesk(ctx)
	if err != nil {
		return nil, err
	}
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("reply body is required")
	}

	if _, err := srv.tickets.FindTicketByID(ctx, id); err != nil {
		return nil, notFound(err, repository.ErrTicketNotFound, "ticket")
	}

	msg := &entity.TicketMessage{
		TicketID:   id,
		AuthorID:   &principal.UserID,
		Body:       body,
		IsInternal: input.Internal,
	}
	if err := srv.tickets.AddTicketMessage(ctx, msg); err != nil {
		return nil, notFound(err, repository.ErrTicketNotFound, "ticket")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	paths := []string{ticketPath(id)}
	if !msg.IsInternal {
		paths = append(paths, pathAccountTickets)
	}
	invalidateRoutes(ctx, srv.routes, logger, paths...)

	return msg, nil
}

func (srv *ticketService) UpdateTicket(ctx context.Context, id uuid.UUID, input usecase.TicketUpdateInput) (*entity.Ticket, error) {
	if _, err := srv.gate.AssertSupportDesk(ctx); err != nil {
		return nil, err
	}
	if input.Status == nil && input.Priority == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("nothing to update")
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown ticket status")
	}
	if input.Priority != nil && !input.Priority.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown ticket priority")
	}

	if err := srv.tickets.UpdateTicketState(ctx, id, repository.TicketStateUpdate{
		Status:   input.Status,
		Priority: input.Priority,
	}); err != nil {
		return nil, notFound(err, repository.ErrTicketNotFound, "ticket")
	}

	ticket, err := srv.tickets.FindTicketByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrTicketNotFound, "ticket")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	invalidateRoutes(ctx, srv.routes, logger, pathAdminTickets, ticketPath(id), pathAccountTickets, pathAdminDashboard)

	return ticket, nil
}

// OpenTicket creates a case owned by the caller.
func (srv *ticketService) OpenTicket(ctx context.Context, input usecase.OpenTicketInput) (*entity.Ticket, error) {
	principal, err := srv.gate.AssertAuthenticated(ctx)
	if err != nil {
		return nil, err
	}

	subject := strings.TrimSpace(input.Subject)
	body := strings.TrimSpace(input.Body)
	if subject == "" || body == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("subject and body are required")
	}
	priority := input.Priority
	if priority == "" {
		priority = entity.PriorityNormal
	}
	if !priority.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown ticket priority")
	}

	ticket := &entity.Ticket{
		UserID:   &principal.UserID,
		Subject:  subject,
		Status:   entity.TicketOpen,
		Priority: priority,
		Messages: []entity.TicketMessage{{
			AuthorID: &principal.UserID,
			Body:     body,
		}},
	}
	err = srv.txManager.ExecuteAs(ctx, principal.UserID, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewTicketRepository().CreateTicket(ctx, ticket)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open ticket")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Ticket opened", slog.String("ticket_id", ticket.ID.String()))
	invalidateRoutes(ctx, srv.routes, logger, pathAdminTickets, pathAccountTickets, pathAdminDashboard)

	return ticket, nil
}

func (srv *ticketService) ListMyTickets(ctx context.Context, input usecase.PageInput) (*usecase.TicketPage, error) {
	principal, err := srv.gate.AssertAuthenticated(ctx)
	if err != nil {
		return nil, err
	}

	var (
		tickets []*entity.Ticket
		total   int64
	)
	err = srv.txManager.ExecuteAs(ctx, principal.UserID, func(repoFactory repository.RepositoryFactory) error {
		var err error
		tickets, total, err = repoFactory.NewTicketRepository().ListTickets(ctx, repository.TicketFilter{
			UserID: &principal.UserID,
			Page:   input.ToRepository(),
		})

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own tickets")
	}

	views := make([]usecase.TicketView, len(tickets))
	for i, t := range tickets {
		t.Messages = t.PublicMessages()
		views[i] = usecase.TicketView{
			Ticket:   t,
			Customer: usecase.CustomerRef{UserID: &principal.UserID, Name: principal.Email, Email: principal.Email},
		}
	}

	return &usecase.TicketPage{
		Tickets:  views,
		PageMeta: usecase.NewPageMeta(input, total),
	}, nil
}

// GetMyTicket returns the caller's ticket without internal staff notes.
func (srv *ticketService) GetMyTicket(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	principal, err := srv.gate.AssertAuthenticated(ctx)
	if err != nil {
		return nil, err
	}

	var ticket *entity.Ticket
	err = srv.txManager.ExecuteAs(ctx, principal.UserID, func(repoFactory repository.RepositoryFactory) error {
		found, err := findOwnTicket(ctx, repoFactory.NewTicketRepository(), id, principal.UserID)
		ticket = found

		return err
	})
	if err != nil {
		return nil, err
	}

	ticket.Messages = ticket.PublicMessages()

	return ticket, nil
}

// ReplyMyTicket adds a customer message. A closed ticket is reopened.
func (srv *ticketService) ReplyMyTicket(ctx context.Context, id uuid.UUID, input usecase.TicketReplyInput) (*entity.TicketMessage, error) {
	principal, err := srv.gate.AssertAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("reply body is required")
	}

	msg := &entity.TicketMessage{
		TicketID: id,
		AuthorID: &principal.UserID,
		Body:     body,
	}
	err = srv.txManager.ExecuteAs(ctx, principal.UserID, func(repoFactory repository.RepositoryFactory) error {
		ticketRepo := repoFactory.NewTicketRepository()

		ticket, err := findOwnTicket(ctx, ticketRepo, id, principal.UserID)
		if err != nil {
			return err
		}
		if err := ticketRepo.AddTicketMessage(ctx, msg); err != nil {
			return errors.Wrap(err, "failed to add ticket message")
		}
		if ticket.Status == entity.TicketClosed {
			reopened := entity.TicketOpen
			if err := ticketRepo.UpdateTicketState(ctx, id, repository.TicketStateUpdate{Status: &reopened}); err != nil {
				return errors.Wrap(err, "failed to reopen ticket")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	invalidateRoutes(ctx, srv.routes, logger, pathAdminTickets, ticketPath(id), pathAccountTickets)

	return msg, nil
}

// findOwnTicket hides tickets of other customers behind not found.
func findOwnTicket(ctx context.Context, tickets repository.TicketRepository, id, owner uuid.UUID) (*entity.Ticket, error) {
	ticket, err := tickets.FindTicketByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrTicketNotFound, "ticket")
	}
	if ticket.UserID == nil || *ticket.UserID != owner {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "ticket not found")
	}

	return ticket, nil
}

func validateTicketFilter(status entity.TicketStatus, priority entity.TicketPriority) error {
	if status != "" && !status.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown ticket status")
	}
	if priority != "" && !priority.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown ticket priority")
	}

	return nil
}

func ticketViews(tickets []*entity.Ticket, byID map[uuid.UUID]*entity.Profile) []usecase.TicketView {
	views := make([]usecase.TicketView, len(tickets))
	for i, t := range tickets {
		views[i] = usecase.TicketView{
			Ticket:   t,
			Customer: customerRef(t.UserID, lookupProfile(byID, t.UserID), "", ""),
		}
	}

	return views
}
