package impl

import (
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ticketFixture struct {
	profiles  *mockRepo.MockProfileRepository
	tickets   *mockRepo.MockTicketRepository
	txTickets *mockRepo.MockTicketRepository
	txManager *mockRepo.MockTransactionManager
	routes    *mockService.MockRouteCache
	service   usecase.TicketUsecase
}

func newTicketFixture(t *testing.T) *ticketFixture {
	f := &ticketFixture{
		profiles:  mockRepo.NewMockProfileRepository(t),
		tickets:   mockRepo.NewMockTicketRepository(t),
		txTickets: mockRepo.NewMockTicketRepository(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		routes:    mockService.NewMockRouteCache(t),
	}
	f.service = NewTicketService(TicketServiceParams{
		Gate:      newTestGate(f.profiles),
		TxManager: f.txManager,
		Tickets:   f.tickets,
		Profiles:  f.profiles,
		Routes:    f.routes,
		Logger:    newDiscardLogger(),
	})

	return f
}

// inCustomerTx routes ExecuteAs through txTickets.
func (f *ticketFixture) inCustomerTx(t *testing.T, userID uuid.UUID) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewTicketRepository().Return(f.txTickets)
	f.txManager.EXPECT().ExecuteAs(mock.Anything, userID, mock.Anything).RunAndReturn(runAsInTx(factory))
}

func threadOf(owner uuid.UUID, status entity.TicketStatus) *entity.Ticket {
	return &entity.Ticket{
		ID:     uuid.New(),
		UserID: &owner,
		Status: status,
		Messages: []entity.TicketMessage{
			{Body: "my playlist stopped working"},
			{Body: "customer is on the legacy server", IsInternal: true},
			{Body: "please restart your device"},
		},
	}
}

func TestTicketService_GetMyTicket_HidesInternalNotes(t *testing.T) {
	f := newTicketFixture(t)
	ctx, userID := signedIn(f.profiles, entity.RoleMember)
	ticket := threadOf(userID, entity.TicketOpen)

	f.inCustomerTx(t, userID)
	f.txTickets.EXPECT().FindTicketByID(mock.Anything, ticket.ID).Return(ticket, nil)

	got, err := f.service.GetMyTicket(ctx, ticket.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	for _, msg := range got.Messages {
		assert.False(t, msg.IsInternal)
	}
}

func TestTicketService_GetMyTicket_OtherCustomerIsNotFound(t *testing.T) {
	f := newTicketFixture(t)
	ctx, userID := signedIn(f.profiles, entity.RoleMember)
	ticket := threadOf(uuid.New(), entity.TicketOpen)

	f.inCustomerTx(t, userID)
	f.txTickets.EXPECT().FindTicketByID(mock.Anything, ticket.ID).Return(ticket, nil)

	_, err := f.service.GetMyTicket(ctx, ticket.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTicketService_ReplyMyTicket_ReopensClosedTicket(t *testing.T) {
	f := newTicketFixture(t)
	ctx, userID := signedIn(f.profiles, entity.RoleUser)
	ticket := threadOf(userID, entity.TicketClosed)

	f.inCustomerTx(t, userID)
	f.txTickets.EXPECT().FindTicketByID(mock.Anything, ticket.ID).Return(ticket, nil)
	f.txTickets.EXPECT().
		AddTicketMessage(mock.Anything, mock.MatchedBy(func(msg *entity.TicketMessage) bool {
			return msg.Body == "still broken" && !msg.IsInternal && *msg.AuthorID == userID
		})).
		Return(nil)
	f.txTickets.EXPECT().
		UpdateTicketState(mock.Anything, ticket.ID, mock.MatchedBy(func(update repository.TicketStateUpdate) bool {
			return update.Status != nil && *update.Status == entity.TicketOpen && update.Priority == nil
		})).
		Return(nil)
	allowInvalidate(f.routes, 3)

	_, err := f.service.ReplyMyTicket(ctx, ticket.ID, usecase.TicketReplyInput{Body: "  still broken "})
	assert.NoError(t, err)
}

func TestTicketService_GetTicket_StaffSeesInternalNotes(t *testing.T) {
	f := newTicketFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleSupport)
	ownerID := uuid.New()
	ticket := threadOf(ownerID, entity.TicketOpen)

	f.tickets.EXPECT().FindTicketByID(mock.Anything, ticket.ID).Return(ticket, nil)
	f.profiles.EXPECT().FindProfileByID(mock.Anything, ownerID).Return(nil, repository.ErrProfileNotFound)

	detail, err := f.service.GetTicket(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Ticket.Messages, 3)
	assert.Equal(t, entity.GuestName, detail.Customer.Name)
}

func TestTicketService_ReplyTicket_InternalNoteSkipsCustomerRoute(t *testing.T) {
	f := newTicketFixture(t)
	ctx, agentID := signedIn(f.profiles, entity.RoleSupport)
	id := uuid.New()

	f.tickets.EXPECT().FindTicketByID(mock.Anything, id).Return(&entity.Ticket{ID: id}, nil)
	f.tickets.EXPECT().AddTicketMessage(mock.Anything, mock.Anything).Return(nil)
	f.routes.EXPECT().Invalidate(mock.Anything, ticketPath(id)).Return(nil)

	msg, err := f.service.ReplyTicket(ctx, id, usecase.TicketReplyInput{Body: "escalated", Internal: true})
	require.NoError(t, err)
	assert.True(t, msg.IsInternal)
	assert.Equal(t, agentID, *msg.AuthorID)
}

func TestTicketService_MemberCannotUseSupportDesk(t *testing.T) {
	f := newTicketFixture(t)
	ctx, _ := signedIn(f.profiles, entity.RoleMember)

	_, err := f.service.ListTickets(ctx, usecase.TicketListInput{})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
