package customer

import "ordering/internal/core/domain/model/kernel"

// Event names, stable across releases so subscribers can route on them.
const (
	EventCustomerRegistered     = "customer.registered"
	EventCustomerRenamed        = "customer.renamed"
	EventCustomerEmailChanged   = "customer.email_changed"
	EventCustomerPhoneChanged   = "customer.phone_changed"
	EventCustomerAddressChanged = "customer.address_changed"
	EventCustomerDeactivated    = "customer.deactivated"
)

type CustomerRegistered struct {
	kernel.EventMetadata
	CustomerID CustomerID
	Email      kernel.Email
	FullName   string
}

type CustomerRenamed struct {
	kernel.EventMetadata
	CustomerID CustomerID
	FirstName  string
	LastName   string
}

type CustomerEmailChanged struct {
	kernel.EventMetadata
	CustomerID CustomerID
	OldEmail   kernel.Email
	NewEmail   kernel.Email
}

type CustomerPhoneChanged struct {
	kernel.EventMetadata
	CustomerID CustomerID
	Phone      kernel.PhoneNumber
}

type CustomerAddressChanged struct {
	kernel.EventMetadata
	CustomerID CustomerID
	Address    kernel.Address
}

type CustomerDeactivated struct {
	kernel.EventMetadata
	CustomerID CustomerID
	Reason     string
}

func newMetadata(name string, id CustomerID) kernel.EventMetadata {
	return kernel.NewEventMetadata(name, id.String())
}
