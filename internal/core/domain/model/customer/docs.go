// Package customer provides the Customer aggregate root and its strongly-typed identifier.
//
// The package includes:
//   - CustomerID: a value object wrapping a non-nil kernel.UUID
//   - Customer: the aggregate root holding name, e-mail, optional phone and address
//   - Status: the Active -> Deactivated lifecycle
//   - the domain events Customer records (CustomerRegistered, CustomerEmailChanged, ...)
//
// Key business rules:
//   - a customer has a valid id, a first and last name and a valid e-mail address
//   - a deactivated customer cannot be modified or deactivated again
//   - every accepted mutation records exactly one event; a no-op records none
package customer
