package service

import (
	"time"

	"github.com/Truthmedia123/newapp12345/cache"
	"github.com/Truthmedia123/newapp12345/models"
)

// VendorServiceInterface defines the interface for vendor directory operations
type VendorServiceInterface interface {
	ListVendors(filters models.VendorFilters) ([]models.Vendor, error)
	GetVendor(id uint) (*models.Vendor, error)
	GetFeatured() ([]models.Vendor, error)
	CreateVendor(req *models.VendorRequest) (*models.Vendor, error)
	UpdateVendor(id uint, req *models.VendorRequest) (*models.Vendor, error)
	DeleteVendor(id uint) error
	RecordProfileView(id uint) int64
}

// SearchServiceInterface defines the interface for vendor search
type SearchServiceInterface interface {
	Search(query string, filters models.VendorFilters) ([]models.Vendor, error)
}

// BlogServiceInterface defines the interface for blog operations
type BlogServiceInterface interface {
	ListPosts() ([]models.BlogPost, error)
	GetPost(slug string) (*models.BlogPost, error)
}

// RSVPServiceInterface defines the interface for RSVP operations
type RSVPServiceInterface interface {
	GetInvite(token string) (*models.Invite, error)
	SubmitRSVP(token string, req *models.RSVPRequest) error
	ListResponses(token string) ([]models.RSVP, error)
}

// VendorRepositoryInterface defines the interface for vendor data operations
type VendorRepositoryInterface interface {
	List(filters models.VendorFilters) ([]models.Vendor, error)
	FindByID(id uint) (*models.Vendor, error)
	FindBySlug(slug string) (*models.Vendor, error)
	Featured() ([]models.Vendor, error)
	Create(vendor *models.Vendor) error
	Update(vendor *models.Vendor) error
	Delete(vendor *models.Vendor) error
}

// BlogRepositoryInterface defines the interface for blog data operations
type BlogRepositoryInterface interface {
	ListPublished() ([]models.BlogPost, error)
	FindBySlug(slug string) (*models.BlogPost, error)
}

// InviteRepositoryInterface defines the interface for invite data operations
type InviteRepositoryInterface interface {
	CreateInvite(eventName, venue string, eventDate time.Time, expiresIn time.Duration) (*models.Invite, error)
	FindByToken(token string) (*models.Invite, error)
	DeleteExpired() error
}

// RSVPRepositoryInterface defines the interface for RSVP data operations
type RSVPRepositoryInterface interface {
	Create(rsvp *models.RSVP) error
	ListByInvite(inviteID uint) ([]models.RSVP, error)
	FindByInviteAndGuest(inviteID uint, guestName string) (*models.RSVP, error)
}

// Counter tracks monotonically increasing domain counters, such as
// vendor profile views. Satisfied by both the in-memory and Redis stores.
type Counter interface {
	Increment(key string, opts *cache.Options) int64
}

// Ensure implementations satisfy interfaces
var _ VendorServiceInterface = (*VendorService)(nil)
var _ SearchServiceInterface = (*SearchService)(nil)
var _ BlogServiceInterface = (*BlogService)(nil)
var _ RSVPServiceInterface = (*RSVPService)(nil)
