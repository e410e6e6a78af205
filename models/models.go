// Package models defines data structures used throughout the application
package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups vendors by the kind of service they provide
type Category struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"uniqueIndex;not null"`
	Slug      string         `json:"slug" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Vendor represents a listed service provider in the directory
type Vendor struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	CategoryID  uint           `json:"category_id" gorm:"index;not null"`
	Category    Category       `json:"category" gorm:"foreignKey:CategoryID"`
	Location    string         `json:"location" gorm:"index"`
	Description string         `json:"description"`
	Phone       string         `json:"phone"`
	Email       string         `json:"email"`
	Website     string         `json:"website"`
	Featured    bool           `json:"featured" gorm:"default:false;index"`
	Rating      float64        `json:"rating" gorm:"default:0"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// BlogPost represents a published article on the site
type BlogPost struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt     string         `json:"excerpt"`
	Body        string         `json:"body"`
	Published   bool           `json:"published" gorm:"default:false;index"`
	PublishedAt *time.Time     `json:"published_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// Invite represents an RSVP invitation with a shareable token
type Invite struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Token     string         `json:"token" gorm:"uniqueIndex;not null"`
	EventName string         `json:"event_name" gorm:"not null"`
	EventDate time.Time      `json:"event_date"`
	Venue     string         `json:"venue"`
	ExpiresAt time.Time      `json:"expires_at"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// RSVP represents a guest's response to an invitation
type RSVP struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	InviteID   uint           `json:"invite_id" gorm:"index;not null"`
	Invite     Invite         `json:"-" gorm:"foreignKey:InviteID"`
	GuestName  string         `json:"guest_name" gorm:"not null"`
	GuestEmail string         `json:"guest_email"`
	Attending  bool           `json:"attending"`
	GuestCount int            `json:"guest_count" gorm:"default:1"`
	Message    string         `json:"message"`
	CreatedAt  time.Time      `json:"created_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// VendorFilters captures the query parameters used to filter vendor listings
type VendorFilters struct {
	Category string `json:"category" form:"category"`
	Location string `json:"location" form:"location"`
	Search   string `json:"search" form:"search"`
}

// VendorRequest represents data required to create or update a vendor
type VendorRequest struct {
	Name        string  `json:"name" form:"name" binding:"required"`
	Slug        string  `json:"slug" form:"slug" binding:"required,slug"`
	CategoryID  uint    `json:"category_id" form:"category_id" binding:"required"`
	Location    string  `json:"location" form:"location" binding:"required"`
	Description string  `json:"description" form:"description"`
	Phone       string  `json:"phone" form:"phone"`
	Email       string  `json:"email" form:"email" binding:"omitempty,email"`
	Website     string  `json:"website" form:"website" binding:"omitempty,url"`
	Featured    bool    `json:"featured" form:"featured"`
	Rating      float64 `json:"rating" form:"rating" binding:"omitempty,gte=0,lte=5"`
}

// RSVPRequest represents a guest's RSVP submission
type RSVPRequest struct {
	GuestName  string `json:"guest_name" form:"guest_name" binding:"required"`
	GuestEmail string `json:"guest_email" form:"guest_email" binding:"omitempty,email"`
	Attending  bool   `json:"attending" form:"attending"`
	GuestCount int    `json:"guest_count" form:"guest_count" binding:"omitempty,gte=1,lte=20"`
	Message    string `json:"message" form:"message"`
}

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}
