package entities

// ActorRole identifies who is calling a mutating operation. The lifecycle
// rules are actor-sensitive: most transitions are legal for exactly one side
// of the marketplace.

type ActorRole string

const (
	ActorRoleCustomer ActorRole = "customer"
	ActorRoleProvider ActorRole = "provider"
	ActorRoleAdmin    ActorRole = "admin"
)

// Actor is the authenticated caller resolved by the auth middleware.
type Actor struct {
	Role ActorRole `json:"role"`
	ID   string    `json:"id"`
}

// IsCustomerOf reports whether the actor is the job's customer.
func (a Actor) IsCustomerOf(j Job) bool {
	return a.Role == ActorRoleCustomer && a.ID == j.CustomerID
}

// IsProviderOf reports whether the actor is the job's provider.
func (a Actor) IsProviderOf(j Job) bool {
	return a.Role == ActorRoleProvider && a.ID == j.ProviderID
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool { return a.Role == ActorRoleAdmin }
