package model

// Client represents a billable customer. Invoices reference clients by id,
// but the reference is not enforced at the database level: deleting a client
// leaves its invoices in place with a dangling client_id.
type Client struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FirstName    string `gorm:"type:varchar(100)" json:"first_name"`
	LastName     string `gorm:"type:varchar(100)" json:"last_name"`
	Email        string `gorm:"type:varchar(255)" json:"email"`
	Phone        string `gorm:"type:varchar(50)" json:"phone"`
	AddressLine1 string `gorm:"type:varchar(255)" json:"address_line1"`
	AddressLine2 string `gorm:"type:varchar(255)" json:"address_line2"`
	City         string `gorm:"type:varchar(100)" json:"city"`
	State        string `gorm:"type:varchar(100)" json:"state"`
	Zip          string `gorm:"type:varchar(20)" json:"zip"`
	Country      string `gorm:"type:varchar(100)" json:"country"`
}
