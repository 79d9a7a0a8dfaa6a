package store

import (
	"context"
	"time"

	"github.com/rhaddad/propman/internal/model"
)

// MaintenanceFilter controls filtering for maintenance request queries.
type MaintenanceFilter struct {
	Status   *string
	Priority *string
	RoomID   *int64
}

// Store defines the persistence interface for the property-management
// database: notifications, the expiry-scan read queries, and the CRUD
// entities behind them.
type Store interface {
	// === Notifications ===

	// CreateNotification inserts a new unread notification and returns it
	// with its assigned id and creation time.
	CreateNotification(ctx context.Context, n model.Notification) (*model.Notification, error)
	// RecentNotifications returns up to limit notifications ordered by
	// creation time descending.
	RecentNotifications(ctx context.Context, limit int) ([]model.Notification, error)
	// MarkNotificationRead marks one notification as read. Marking a
	// missing or already-read id is a no-op.
	MarkNotificationRead(ctx context.Context, id int64) error
	// MarkAllNotificationsRead marks every notification as read.
	MarkAllNotificationsRead(ctx context.Context) error
	// DeleteNotification removes one notification. Deleting a missing id
	// is a no-op.
	DeleteNotification(ctx context.Context, id int64) error
	// CountUnreadNotifications counts notifications not yet marked read.
	CountUnreadNotifications(ctx context.Context) (int64, error)

	// === Expiry-scan read queries ===

	// ExpiringContracts returns active contracts whose end date falls
	// within [today, today+days], joined to their tenants.
	ExpiringContracts(ctx context.Context, today time.Time, days int) ([]model.ExpiringContract, error)
	// TenantsWithExpiringDocuments returns tenants whose passport or visa
	// expiry falls within [today, today+days].
	TenantsWithExpiringDocuments(ctx context.Context, today time.Time, days int) ([]model.Tenant, error)
	// PendingPaymentsDue returns pending payments whose due date falls
	// within [today, today+days], joined through contract to tenant.
	PendingPaymentsDue(ctx context.Context, today time.Time, days int) ([]model.DuePayment, error)

	// === Properties / rooms / beds ===

	CreateProperty(ctx context.Context, p model.Property) (int64, error)
	UpdateProperty(ctx context.Context, p model.Property) error
	DeleteProperty(ctx context.Context, id int64) error
	GetPropertyByID(ctx context.Context, id int64) (*model.Property, error)
	GetProperties(ctx context.Context) ([]model.Property, error)

	CreateRoom(ctx context.Context, r model.Room) (int64, error)
	UpdateRoom(ctx context.Context, r model.Room) error
	DeleteRoom(ctx context.Context, id int64) error
	GetRoomsForProperty(ctx context.Context, propertyID int64) ([]model.Room, error)

	CreateBed(ctx context.Context, b model.Bed) (int64, error)
	UpdateBedStatus(ctx context.Context, id int64, status string) error
	DeleteBed(ctx context.Context, id int64) error
	GetBedsForRoom(ctx context.Context, roomID int64) ([]model.Bed, error)
	AssignBed(ctx context.Context, a model.BedAssignment) (int64, error)
	EndBedAssignment(ctx context.Context, id int64, endDate time.Time) error

	// === Tenants ===

	CreateTenant(ctx context.Context, t model.Tenant) (int64, error)
	UpdateTenant(ctx context.Context, t model.Tenant) error
	DeleteTenant(ctx context.Context, id int64) error
	GetTenantByID(ctx context.Context, id int64) (*model.Tenant, error)
	GetTenants(ctx context.Context) ([]model.Tenant, error)

	// === Contracts ===

	CreateContract(ctx context.Context, c model.Contract) (int64, error)
	UpdateContractStatus(ctx context.Context, id int64, status string) error
	GetContractByID(ctx context.Context, id int64) (*model.Contract, error)
	GetContractsForTenant(ctx context.Context, tenantID int64) ([]model.Contract, error)

	// === Payments ===

	CreatePayment(ctx context.Context, p model.Payment) (int64, error)
	MarkPaymentPaid(ctx context.Context, id int64, method string, paidOn time.Time) error
	GetPaymentsForContract(ctx context.Context, contractID int64) ([]model.Payment, error)

	// === Maintenance requests ===

	CreateMaintenanceRequest(ctx context.Context, r model.MaintenanceRequest) (int64, error)
	UpdateMaintenanceStatus(ctx context.Context, id int64, status string) error
	GetMaintenanceRequests(ctx context.Context, filter MaintenanceFilter) ([]model.MaintenanceRequest, error)

	// === Users / audit ===

	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	CreateUser(ctx context.Context, u model.User) (int64, error)
	UpdateLastLogin(ctx context.Context, id int64) error
	CountUsers(ctx context.Context) (int64, error)

	AppendAuditLog(ctx context.Context, entry model.AuditLog) error
	GetAuditLogs(ctx context.Context, limit int) ([]model.AuditLog, error)
}
