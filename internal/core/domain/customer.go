package domain

// Customer represents a buyer whose purchases and payments are tracked in a ledger.
type Customer struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
	Address    string `json:"address,omitempty"`
	AuditFields
}
