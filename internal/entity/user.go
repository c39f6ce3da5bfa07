package entity

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID             string    `json:"userID"`
	Role           string    `json:"role"` // admin, user
	PersonContact  string    `json:"personContact"`
	MobileNumber   string    `json:"mobileNumber"`
	Email          string    `json:"email"`
	BusinessName   string    `json:"businessName"`
	StreetAddress1 string    `json:"streetAddress1"`
	StreetAddress2 string    `json:"streetAddress2"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	Country        string    `json:"country"`
	Pincode        string    `json:"pincode"`
	Password       string    `json:"-"`
	PlanID         string    `json:"planID"`
	CreatedAt      time.Time `json:"created_at"`
}
