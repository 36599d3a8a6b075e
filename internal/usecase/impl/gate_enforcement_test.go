package impl

import (
	"testing"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	mockRepo "portal/internal/mocks/repository"
	mockService "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TestStaffOperationsRejectMembers checks that every back-office call made by a
// member fails at the gate, before any repository, cache, mailer or publisher
// is touched. The mocks carry no expectations, so any further I/O fails the test.
func TestStaffOperationsRejectMembers(t *testing.T) {
	profiles := mockRepo.NewMockProfileRepository(t)
	ctx, _ := signedIn(profiles, entity.RoleMember)
	gate := newTestGate(profiles)
	logger := newDiscardLogger()
	cfg := newTestConfig()

	audit := NewAuditRecorder(mockRepo.NewMockAdminLogRepository(t), mockService.NewMockMetricsRecorder(t), logger)
	txManager := mockRepo.NewMockTransactionManager(t)
	routes := mockService.NewMockRouteCache(t)
	cache := mockService.NewMockCache(t)
	metrics := mockService.NewMockMetricsRecorder(t)
	orders := mockRepo.NewMockOrderRepository(t)
	subs := mockRepo.NewMockSubscriptionRepository(t)
	tickets := mockRepo.NewMockTicketRepository(t)

	orderSrv := NewOrderService(OrderServiceParams{
		Gate: gate, Orders: orders, Profiles: profiles, Subscriptions: subs,
		Routes: routes, Cache: cache, Audit: audit, Logger: logger,
	})
	subSrv := NewSubscriptionService(SubscriptionServiceParams{
		Gate: gate, Subscriptions: subs, Orders: orders, Profiles: profiles,
		Mailer: mockService.NewMockMailer(t), Routes: routes, Logger: logger,
	})
	customerSrv := NewCustomerService(CustomerServiceParams{
		Gate: gate, TxManager: txManager, Profiles: profiles, Orders: orders,
		Subscriptions: subs, Tickets: tickets, Routes: routes, Audit: audit, Logger: logger,
	})
	ticketSrv := NewTicketService(TicketServiceParams{
		Gate: gate, TxManager: txManager, Tickets: tickets, Profiles: profiles, Routes: routes, Logger: logger,
	})
	reviewSrv := NewReviewService(ReviewServiceParams{
		Gate: gate, TxManager: txManager, Reviews: mockRepo.NewMockReviewRepository(t), Routes: routes, Logger: logger,
	})
	couponSrv := NewCouponService(CouponServiceParams{
		Gate: gate, Coupons: mockRepo.NewMockCouponRepository(t), Routes: routes, Logger: logger,
	})
	campaignSrv := NewCampaignService(CampaignServiceParams{
		Config: cfg, Gate: gate, Campaigns: mockRepo.NewMockCampaignRepository(t),
		Publisher: mockService.NewMockEventPublisher(t), Mailer: mockService.NewMockMailer(t),
		Metrics: metrics, Routes: routes, Logger: logger,
	})
	teamSrv := NewTeamService(TeamServiceParams{
		Config: cfg, Gate: gate, TxManager: txManager, Profiles: profiles,
		Invites: mockRepo.NewMockTeamInviteRepository(t), AdminLogs: mockRepo.NewMockAdminLogRepository(t),
		Hasher: mockService.NewMockTokenHasher(t), Mailer: mockService.NewMockMailer(t),
		Routes: routes, Audit: audit, Logger: logger,
	})
	contentSrv := NewContentService(ContentServiceParams{
		Config: cfg, Gate: gate, Content: mockService.NewMockContentClient(t),
		Assets: mockService.NewMockAssetStore(t), Cache: cache, Routes: routes, Logger: logger,
	})
	dashboardSrv := NewDashboardService(DashboardServiceParams{
		Config: cfg, Gate: gate, Orders: orders, Profiles: profiles, Subscriptions: subs,
		Tickets: tickets, Cache: cache, Metrics: metrics, Logger: logger,
	})

	id := uuid.New()
	calls := map[string]func() error{
		"ListOrders": func() error {
			return errOnly(orderSrv.ListOrders(ctx, usecase.OrderListInput{}))
		},
		"GetOrder": func() error {
			return errOnly(orderSrv.GetOrder(ctx, id))
		},
		"UpdateOrderStatus": func() error {
			return errOnly(orderSrv.UpdateOrderStatus(ctx, id, usecase.OrderStatusInput{}))
		},
		"AddOrderNote": func() error {
			return errOnly(orderSrv.AddOrderNote(ctx, id, usecase.OrderNoteInput{}))
		},
		"DeleteOrder": func() error {
			return orderSrv.DeleteOrder(ctx, id)
		},

		"ListSubscriptions": func() error {
			return errOnly(subSrv.ListSubscriptions(ctx, usecase.SubscriptionListInput{}))
		},
		"CreateSubscription": func() error {
			return errOnly(subSrv.CreateSubscription(ctx, usecase.CreateSubscriptionInput{}))
		},
		"UpdateSubscription": func() error {
			return errOnly(subSrv.UpdateSubscription(ctx, id, usecase.SubscriptionUpdateInput{}))
		},
		"ExtendSubscription": func() error {
			return errOnly(subSrv.ExtendSubscription(ctx, id, usecase.ExtendSubscriptionInput{}))
		},
		"SendCredentials": func() error {
			return subSrv.SendCredentials(ctx, id)
		},

		"ListCustomers": func() error {
			return errOnly(customerSrv.ListCustomers(ctx, usecase.CustomerListInput{}))
		},
		"GetCustomer": func() error {
			return errOnly(customerSrv.GetCustomer(ctx, id))
		},
		"UpdateCustomer": func() error {
			return errOnly(customerSrv.UpdateCustomer(ctx, id, usecase.UpdateProfileInput{}))
		},
		"DeleteCustomer": func() error {
			return errOnly(customerSrv.DeleteCustomer(ctx, id))
		},

		"ListTickets": func() error {
			return errOnly(ticketSrv.ListTickets(ctx, usecase.TicketListInput{}))
		},
		"GetTicket": func() error {
			return errOnly(ticketSrv.GetTicket(ctx, id))
		},
		"ReplyTicket": func() error {
			return errOnly(ticketSrv.ReplyTicket(ctx, id, usecase.TicketReplyInput{}))
		},
		"UpdateTicket": func() error {
			return errOnly(ticketSrv.UpdateTicket(ctx, id, usecase.TicketUpdateInput{}))
		},

		"ListReviews": func() error {
			return errOnly(reviewSrv.ListReviews(ctx, usecase.ReviewListInput{}))
		},
		"ModerateReview": func() error {
			return reviewSrv.ModerateReview(ctx, id, usecase.ModerateReviewInput{})
		},
		"DeleteReview": func() error {
			return reviewSrv.DeleteReview(ctx, id)
		},

		"ListCoupons": func() error {
			return errOnly(couponSrv.ListCoupons(ctx))
		},
		"CreateCoupon": func() error {
			return errOnly(couponSrv.CreateCoupon(ctx, usecase.CreateCouponInput{}))
		},
		"UpdateCouponStatus": func() error {
			return couponSrv.UpdateCouponStatus(ctx, id, usecase.CouponStatusInput{})
		},
		"DeleteCoupon": func() error {
			return couponSrv.DeleteCoupon(ctx, id)
		},

		"ListTemplates": func() error {
			return errOnly(campaignSrv.ListTemplates(ctx))
		},
		"SaveTemplate": func() error {
			return errOnly(campaignSrv.SaveTemplate(ctx, usecase.SaveTemplateInput{}))
		},
		"DeleteTemplate": func() error {
			return campaignSrv.DeleteTemplate(ctx, id)
		},
		"ListCampaigns": func() error {
			return errOnly(campaignSrv.ListCampaigns(ctx))
		},
		"CreateCampaign": func() error {
			return errOnly(campaignSrv.CreateCampaign(ctx, usecase.CreateCampaignInput{}))
		},
		"SendCampaign": func() error {
			return errOnly(campaignSrv.SendCampaign(ctx, id))
		},
		"ResumeCampaign": func() error {
			return errOnly(campaignSrv.ResumeCampaign(ctx, id))
		},
		"SendTestEmail": func() error {
			return campaignSrv.SendTestEmail(ctx, id, usecase.TestEmailInput{})
		},

		"ListTeam": func() error {
			return errOnly(teamSrv.ListTeam(ctx))
		},
		"InviteMember": func() error {
			return errOnly(teamSrv.InviteMember(ctx, usecase.InviteMemberInput{}))
		},
		"UpdateMemberRole": func() error {
			return errOnly(teamSrv.UpdateMemberRole(ctx, id, usecase.UpdateRoleInput{}))
		},
		"RemoveMember": func() error {
			return teamSrv.RemoveMember(ctx, id)
		},
		"ListAdminLogs": func() error {
			return errOnly(teamSrv.ListAdminLogs(ctx, usecase.PageInput{}))
		},

		"ListProducts": func() error {
			return errOnly(contentSrv.ListProducts(ctx))
		},
		"CreateProduct": func() error {
			return errOnly(contentSrv.CreateProduct(ctx, usecase.CreateProductInput{}))
		},
		"UpdateProduct": func() error {
			return errOnly(contentSrv.UpdateProduct(ctx, "p1", service.ProductPatch{}))
		},
		"UploadProductImage": func() error {
			return errOnly(contentSrv.UploadProductImage(ctx, "p1", usecase.UploadImageInput{}))
		},

		"GetDashboard": func() error {
			return errOnly(dashboardSrv.GetDashboard(ctx, "daily"))
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, call(), domainerrors.ErrUnauthorized)
		})
	}
}

func errOnly[T any](_ T, err error) error {
	return err
}
