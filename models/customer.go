package models

// Customer represents a buyer. Customers are created lazily the first time an
// order references an unseen customer id.
type Customer struct {
	CustomerID   string `gorm:"primaryKey;type:varchar(20)" json:"customer_id"`
	CustomerName string `gorm:"type:varchar(50);not null" json:"customer_name"`
	Segment      string `gorm:"type:varchar(20);not null" json:"segment"`
	Country      string `gorm:"type:varchar(50)" json:"country"`
	City         string `gorm:"type:varchar(50)" json:"city"`
	State        string `gorm:"type:varchar(50)" json:"state"`
	PostalCode   string `gorm:"type:varchar(10)" json:"postal_code"`
	Region       string `gorm:"type:varchar(20);not null" json:"region"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// Segments is the fixed set of customer classifications
var Segments = []string{"Consumer", "Corporate", "Home Office"}

// Regions is the fixed set of sales territories
var Regions = []string{"North", "South", "East", "West"}

// ValidSegment reports whether the segment is one of the fixed set
func ValidSegment(segment string) bool {
	return contains(Segments, segment)
}

// ValidRegion reports whether the region is one of the fixed set
func ValidRegion(region string) bool {
	return contains(Regions, region)
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
