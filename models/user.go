package models

import "time"

// User roles.
const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// User is a platform account. Providers are users in role "provider" carrying
// the provider-only fields (category, working hours, verification, earnings).
type User struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"password_hash" json:"-"`
	Role         string `bson:"role" json:"role"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfileImage string `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	PushToken    string `bson:"push_token,omitempty" json:"-"`

	// Provider-only fields.
	ServiceCategory string       `bson:"service_category,omitempty" json:"serviceCategory,omitempty"`
	Verified        bool         `bson:"verified" json:"verified"`
	LocationGeo     GeoPoint     `bson:"location_geo,omitempty" json:"locationGeo,omitzero"`
	WorkingHours    WorkingHours `bson:"working_hours,omitempty" json:"workingHours,omitzero"`
	Earnings        float64      `bson:"earnings" json:"earnings,omitempty"`
	LoyaltyPoints   int          `bson:"loyalty_points" json:"loyaltyPoints,omitempty"`
	GiftCredits     int          `bson:"gift_credits" json:"giftCredits,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsProvider reports whether this account can be matched to bookings.
func (u *User) IsProvider() bool {
	return u.Role == RoleProvider
}

// UserDTO is the public view of an account.
type UserDTO struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Role            string  `json:"role"`
	ProfileImage    string  `json:"profileImage,omitempty"`
	ServiceCategory string  `json:"serviceCategory,omitempty"`
	Verified        bool    `json:"verified"`
	Earnings        float64 `json:"earnings,omitempty"`
	LoyaltyPoints   int     `json:"loyaltyPoints,omitempty"`
	GiftCredits     int     `json:"giftCredits,omitempty"`
}

// ToDTO strips credential and token material.
func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Role:            u.Role,
		ProfileImage:    u.ProfileImage,
		ServiceCategory: u.ServiceCategory,
		Verified:        u.Verified,
		Earnings:        u.Earnings,
		LoyaltyPoints:   u.LoyaltyPoints,
		GiftCredits:     u.GiftCredits,
	}
}
