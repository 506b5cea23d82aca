package domain

import "time"

// PropertyStatus is the market status of a unit.
type PropertyStatus string

const (
	PropertyStatusAvailable   PropertyStatus = "available"
	PropertyStatusInContract  PropertyStatus = "in_contract"
	PropertyStatusRented      PropertyStatus = "rented"
	PropertyStatusMaintenance PropertyStatus = "maintenance"
)

// Valid reports whether s is a known property status.
func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusInContract, PropertyStatusRented, PropertyStatusMaintenance:
		return true
	}

	return false
}

// Property is a single listed unit inside a Building.
type Property struct {
	ID         PropertyID `json:"id"`
	BuildingID BuildingID `json:"buildingId"`
	BrokerID   UserID     `json:"brokerId"`

	UnitNumber string `json:"unitNumber"`
	Bedrooms   int    `json:"bedrooms"`
	// BedroomType is "studio" for zero bedrooms, otherwise "<n>BR".
	BedroomType   string         `json:"bedroomType"`
	Bathrooms     int            `json:"bathrooms"`
	Price         float64        `json:"price"`
	SquareFootage *int           `json:"squareFootage,omitempty"`
	Status        PropertyStatus `json:"status"`

	// Images is the ordered gallery of the unit.
	Images []Asset `json:"images"`

	// Building and Features are only populated by joined reads.
	Building *Building `json:"building,omitempty"`
	Features []Tag     `json:"features"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnedBy reports whether the actor is the broker owning the unit.
func (p Property) OwnedBy(a Actor) bool {
	return a.Role == RoleBroker && a.ID == p.BrokerID
}
