package models

import "time"

// PricingWindow prices any slot fully contained in [Start, End].
// Windows may overlap; resolution is first match in stored order.
type PricingWindow struct {
	Start string  `bson:"start" json:"start"` // time of day, "09:00"
	End   string  `bson:"end" json:"end"`     // time of day, "11:00"
	Price float64 `bson:"price" json:"price"`
}

// Service is a catalog entry. Name doubles as the category key matched
// against User.ServiceCategory when selecting providers.
type Service struct {
	ID             string          `bson:"id" json:"id"`
	Name           string          `bson:"name" json:"name"`
	Description    string          `bson:"description,omitempty" json:"description,omitempty"`
	Image          string          `bson:"image,omitempty" json:"image,omitempty"`
	PricingWindows []PricingWindow `bson:"pricing_windows" json:"pricingWindows"`
	BaseDuration   int             `bson:"base_duration" json:"baseDuration"` // minutes, used when no duration is requested
	CreatedAt      time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time       `bson:"updated_at" json:"updatedAt"`
}
