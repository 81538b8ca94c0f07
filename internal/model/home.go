package model

import "time"

const (
	PropertyTypeResidential = "RESIDENTIAL"
	PropertyTypeCondo       = "CONDO"
)

// Home represents a property listing owned by a realtor.
// RealtorID never changes after creation.
type Home struct {
	ID                int       `json:"id"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	Price             float64   `json:"price"`
	LandSize          float64   `json:"landSize"`
	PropertyType      string    `json:"propertyType"`
	NumberOfBedrooms  int       `json:"numberOfBedrooms"`
	NumberOfBathrooms int       `json:"numberOfBathrooms"`
	ListedDate        time.Time `json:"listedDate"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`
	RealtorID         int       `json:"-"`
}

// Image is a photo attached to a home.
type Image struct {
	ID     int    `json:"id"`
	URL    string `json:"url"`
	HomeID int    `json:"-"`
}

// Message is an inquiry sent by a buyer about a home. RealtorID is always
// the home's owner at creation time, never supplied by the caller.
type Message struct {
	ID        int    `json:"id"`
	Text      string `json:"message"`
	RealtorID int    `json:"realtor_id"`
	BuyerID   int    `json:"buyer_id"`
	HomeID    int    `json:"home_id"`
}

// HomeSummary is a search hit: the home plus a single cover image.
type HomeSummary struct {
	Home
	Image string `json:"image"`
}

// HomeDetail is the full aggregate returned on detail retrieval.
type HomeDetail struct {
	Home
	Images  []Image        `json:"images"`
	Realtor RealtorContact `json:"realtor"`
}

// MessageView pairs an inquiry's text with the buyer's contact projection.
type MessageView struct {
	Text  string       `json:"message"`
	Buyer BuyerContact `json:"buyer"`
}

// HomeFilters is the optional conjunction of search predicates.
type HomeFilters struct {
	City         *string
	MinPrice     *float64
	MaxPrice     *float64
	PropertyType *string
}

// CreateHomeRequest is the payload for listing a new home.
type CreateHomeRequest struct {
	Address           string   `json:"address" binding:"required"`
	City              string   `json:"city" binding:"required"`
	Price             float64  `json:"price" binding:"required,gt=0"`
	LandSize          float64  `json:"landSize" binding:"required,gt=0"`
	PropertyType      string   `json:"propertyType" binding:"required,oneof=RESIDENTIAL CONDO"`
	NumberOfBedrooms  int      `json:"numberOfBedrooms" binding:"required,gt=0"`
	NumberOfBathrooms int      `json:"numberOfBathrooms" binding:"required,gt=0"`
	Images            []string `json:"images" binding:"required,min=1,dive,required"`
}

// UpdateHomeRequest carries a partial update; nil fields keep prior values.
type UpdateHomeRequest struct {
	Address           *string  `json:"address,omitempty"`
	City              *string  `json:"city,omitempty"`
	Price             *float64 `json:"price,omitempty" binding:"omitempty,gt=0"`
	LandSize          *float64 `json:"landSize,omitempty" binding:"omitempty,gt=0"`
	PropertyType      *string  `json:"propertyType,omitempty" binding:"omitempty,oneof=RESIDENTIAL CONDO"`
	NumberOfBedrooms  *int     `json:"numberOfBedrooms,omitempty" binding:"omitempty,gt=0"`
	NumberOfBathrooms *int     `json:"numberOfBathrooms,omitempty" binding:"omitempty,gt=0"`
}
