package domain

import "time"

// Building groups units at one (street, borough) address and is owned by the
// broker who listed its first unit.
type Building struct {
	ID       BuildingID `json:"id"`
	BrokerID UserID     `json:"brokerId"`

	Street       string `json:"street"`
	Borough      string `json:"borough"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`

	// Amenities are building level tags. Only populated by joined reads.
	Amenities []Tag `json:"amenities"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
