// Package repository implements data access layer for the application
package repository

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Truthmedia123/newapp12345/models"
)

// VendorRepository handles data access operations for vendor listings
type VendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new repository for vendor data
func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

// List retrieves vendors matching the given filters
func (r *VendorRepository) List(filters models.VendorFilters) ([]models.Vendor, error) {
	log.Printf("[DEBUG] VendorRepository.List: filters=%+v\n", filters)

	query := r.db.Preload("Category").Joins("JOIN categories ON categories.id = vendors.category_id")

	if filters.Category != "" {
		query = query.Where("categories.slug = ?", filters.Category)
	}
	if filters.Location != "" {
		query = query.Where("LOWER(vendors.location) = ?", strings.ToLower(filters.Location))
	}
	if filters.Search != "" {
		term := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where("LOWER(vendors.name) LIKE ? OR LOWER(vendors.description) LIKE ?", term, term)
	}

	var vendors []models.Vendor
	result := query.Order("vendors.rating DESC, vendors.name ASC").Find(&vendors)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when listing vendors: %v\n", result.Error)
		return nil, result.Error
	}

	log.Printf("[DEBUG] Found %d vendors\n", len(vendors))
	return vendors, nil
}

// FindByID retrieves a vendor by its ID
func (r *VendorRepository) FindByID(id uint) (*models.Vendor, error) {
	log.Printf("[DEBUG] VendorRepository.FindByID: id=%d\n", id)

	var vendor models.Vendor
	result := r.db.Preload("Category").First(&vendor, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Println("[DEBUG] No vendor found")
			return nil, nil
		}
		log.Printf("[ERROR] Database error when finding vendor by ID: %v\n", result.Error)
		return nil, result.Error
	}

	return &vendor, nil
}

// FindBySlug retrieves a vendor by its slug
func (r *VendorRepository) FindBySlug(slug string) (*models.Vendor, error) {
	log.Printf("[DEBUG] VendorRepository.FindBySlug: slug=%s\n", slug)

	var vendor models.Vendor
	result := r.db.Preload("Category").Where("slug = ?", slug).First(&vendor)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("[ERROR] Database error when finding vendor by slug: %v\n", result.Error)
		return nil, result.Error
	}

	return &vendor, nil
}

// Featured retrieves all featured vendors
func (r *VendorRepository) Featured() ([]models.Vendor, error) {
	log.Println("[DEBUG] VendorRepository.Featured called")

	var vendors []models.Vendor
	result := r.db.Preload("Category").Where("featured = ?", true).
		Order("rating DESC").Find(&vendors)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when listing featured vendors: %v\n", result.Error)
		return nil, result.Error
	}

	log.Printf("[DEBUG] Found %d featured vendors\n", len(vendors))
	return vendors, nil
}

// Create persists a new vendor to the database
func (r *VendorRepository) Create(vendor *models.Vendor) error {
	log.Printf("[DEBUG] VendorRepository.Create: %+v\n", vendor)

	result := r.db.Create(vendor)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when creating vendor: %v\n", result.Error)
		return result.Error
	}

	log.Printf("[DEBUG] Created vendor with ID: %d\n", vendor.ID)
	return nil
}

// Update modifies an existing vendor
func (r *VendorRepository) Update(vendor *models.Vendor) error {
	log.Printf("[DEBUG] VendorRepository.Update: %+v\n", vendor)

	result := r.db.Save(vendor)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when updating vendor: %v\n", result.Error)
		return result.Error
	}

	return nil
}

// Delete removes a vendor from the database
func (r *VendorRepository) Delete(vendor *models.Vendor) error {
	log.Printf("[DEBUG] VendorRepository.Delete: id=%d\n", vendor.ID)

	result := r.db.Delete(vendor)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when deleting vendor: %v\n", result.Error)
		return result.Error
	}

	return nil
}

// BlogRepository handles data access operations for blog posts
type BlogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new repository for blog posts
func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// ListPublished retrieves all published posts, newest first
func (r *BlogRepository) ListPublished() ([]models.BlogPost, error) {
	log.Println("[DEBUG] BlogRepository.ListPublished called")

	var posts []models.BlogPost
	result := r.db.Where("published = ?", true).Order("published_at DESC").Find(&posts)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when listing blog posts: %v\n", result.Error)
		return nil, result.Error
	}

	return posts, nil
}

// FindBySlug retrieves a published post by its slug
func (r *BlogRepository) FindBySlug(slug string) (*models.BlogPost, error) {
	log.Printf("[DEBUG] BlogRepository.FindBySlug: slug=%s\n", slug)

	var post models.BlogPost
	result := r.db.Where("slug = ? AND published = ?", slug, true).First(&post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("[ERROR] Database error when finding blog post: %v\n", result.Error)
		return nil, result.Error
	}

	return &post, nil
}

// InviteRepository handles data access operations for RSVP invitations
type InviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository creates a new repository for invitations
func NewInviteRepository(db *gorm.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

// CreateInvite generates and stores a new invitation token
func (r *InviteRepository) CreateInvite(eventName, venue string, eventDate time.Time, expiresIn time.Duration) (*models.Invite, error) {
	log.Printf("[DEBUG] InviteRepository.CreateInvite: event=%s, expiresIn=%v\n", eventName, expiresIn)

	invite := &models.Invite{
		Token:     uuid.New().String(),
		EventName: eventName,
		EventDate: eventDate,
		Venue:     venue,
		ExpiresAt: time.Now().Add(expiresIn),
	}

	result := r.db.Create(invite)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when creating invite: %v\n", result.Error)
		return nil, result.Error
	}

	log.Printf("[DEBUG] Created invite: %s, ID: %d\n", invite.Token, invite.ID)
	return invite, nil
}

// FindByToken retrieves an unexpired invitation by its token
func (r *InviteRepository) FindByToken(token string) (*models.Invite, error) {
	log.Printf("[DEBUG] InviteRepository.FindByToken: token=%s\n", token)

	var invite models.Invite
	result := r.db.Where("token = ? AND expires_at > ?", token, time.Now()).First(&invite)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when finding invite: %v\n", result.Error)
		return nil, result.Error
	}

	return &invite, nil
}

// DeleteExpired removes all expired invitations from the database
func (r *InviteRepository) DeleteExpired() error {
	log.Println("[DEBUG] InviteRepository.DeleteExpired called")

	result := r.db.Where("expires_at < ?", time.Now()).Delete(&models.Invite{})
	if result.Error != nil {
		log.Printf("[ERROR] Database error when deleting expired invites: %v\n", result.Error)
		return result.Error
	}

	log.Printf("[DEBUG] Deleted %d expired invites\n", result.RowsAffected)
	return nil
}

// RSVPRepository handles data access operations for guest responses
type RSVPRepository struct {
	db *gorm.DB
}

// NewRSVPRepository creates a new repository for RSVP responses
func NewRSVPRepository(db *gorm.DB) *RSVPRepository {
	return &RSVPRepository{db: db}
}

// Create persists a guest response
func (r *RSVPRepository) Create(rsvp *models.RSVP) error {
	log.Printf("[DEBUG] RSVPRepository.Create: invite=%d, guest=%s\n", rsvp.InviteID, rsvp.GuestName)

	result := r.db.Create(rsvp)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when creating RSVP: %v\n", result.Error)
		return result.Error
	}

	return nil
}

// ListByInvite retrieves all responses for an invitation
func (r *RSVPRepository) ListByInvite(inviteID uint) ([]models.RSVP, error) {
	log.Printf("[DEBUG] RSVPRepository.ListByInvite: invite=%d\n", inviteID)

	var rsvps []models.RSVP
	result := r.db.Where("invite_id = ?", inviteID).Order("created_at ASC").Find(&rsvps)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when listing RSVPs: %v\n", result.Error)
		return nil, result.Error
	}

	return rsvps, nil
}

// FindByInviteAndGuest retrieves an existing response for a guest, if any
func (r *RSVPRepository) FindByInviteAndGuest(inviteID uint, guestName string) (*models.RSVP, error) {
	log.Printf("[DEBUG] RSVPRepository.FindByInviteAndGuest: invite=%d, guest=%s\n", inviteID, guestName)

	var rsvp models.RSVP
	result := r.db.Where("invite_id = ? AND guest_name = ?", inviteID, guestName).First(&rsvp)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("[ERROR] Database error when finding RSVP: %v\n", result.Error)
		return nil, result.Error
	}

	return &rsvp, nil
}
