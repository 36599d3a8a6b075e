package impl

import "github.com/google/uuid"

// Presentation routes rebuilt after mutations.
const (
	pathHome               = "/"
	pathPlans              = "/plans"
	pathReviews            = "/reviews"
	pathAccount            = "/account"
	pathAccountOrders      = "/account/orders"
	pathAccountTickets     = "/account/tickets"
	pathAccountSubs        = "/account/subscriptions"
	pathAdminDashboard     = "/admin"
	pathAdminOrders        = "/admin/orders"
	pathAdminSubscriptions = "/admin/subscriptions"
	pathAdminCustomers     = "/admin/customers"
	pathAdminTickets       = "/admin/tickets"
	pathAdminReviews       = "/admin/reviews"
	pathAdminCoupons       = "/admin/coupons"
	pathAdminMarketing     = "/admin/marketing"
	pathAdminProducts      = "/admin/products"
	pathAdminTeam          = "/admin/team"
)

func orderPath(id uuid.UUID) string {
	return pathAdminOrders + "/" + id.String()
}

func customerPath(id uuid.UUID) string {
	return pathAdminCustomers + "/" + id.String()
}

func ticketPath(id uuid.UUID) string {
	return pathAdminTickets + "/" + id.String()
}
