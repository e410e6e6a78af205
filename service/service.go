// Package service implements the business logic of the vendor directory
package service

import (
	"fmt"
	"log"
	"time"

	"github.com/Truthmedia123/newapp12345/cache"
	"github.com/Truthmedia123/newapp12345/errors"
	"github.com/Truthmedia123/newapp12345/models"
)

// viewCounterTTL keeps profile view counters alive for a day; every view
// refreshes the window.
const viewCounterTTL = 24 * time.Hour

// VendorService handles vendor directory operations. Reads go cache-first;
// mutations write through the repository and invalidate the cache.
type VendorService struct {
	repo    VendorRepositoryInterface
	cache   *cache.DirectoryCache
	counter Counter
}

// NewVendorService creates a new vendor service
func NewVendorService(repo VendorRepositoryInterface, directoryCache *cache.DirectoryCache, counter Counter) *VendorService {
	return &VendorService{
		repo:    repo,
		cache:   directoryCache,
		counter: counter,
	}
}

// ListVendors retrieves vendors matching the filters, serving from cache
// when possible
func (s *VendorService) ListVendors(filters models.VendorFilters) ([]models.Vendor, error) {
	if vendors, found := s.cache.GetVendorList(filters); found {
		return vendors, nil
	}

	vendors, err := s.repo.List(filters)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list vendors", err)
	}

	s.cache.SetVendorList(filters, vendors)
	return vendors, nil
}

// GetVendor retrieves a single vendor by ID
func (s *VendorService) GetVendor(id uint) (*models.Vendor, error) {
	if id == 0 {
		return nil, errors.NewValidationError("vendor id is required")
	}

	if vendor, found := s.cache.GetVendor(id); found {
		return vendor, nil
	}

	vendor, err := s.repo.FindByID(id)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to find vendor", err)
	}
	if vendor == nil {
		return nil, errors.NewNotFoundError("vendor not found")
	}

	s.cache.SetVendor(vendor)
	return vendor, nil
}

// GetFeatured retrieves the featured vendors, serving from cache when possible
func (s *VendorService) GetFeatured() ([]models.Vendor, error) {
	if vendors, found := s.cache.GetFeatured(); found {
		return vendors, nil
	}

	vendors, err := s.repo.Featured()
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list featured vendors", err)
	}

	s.cache.SetFeatured(vendors)
	return vendors, nil
}

// CreateVendor persists a new vendor listing
func (s *VendorService) CreateVendor(req *models.VendorRequest) (*models.Vendor, error) {
	if err := validateVendorRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindBySlug(req.Slug)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to check existing vendor", err)
	}
	if existing != nil {
		return nil, errors.NewAlreadyExistsError("vendor slug already in use")
	}

	vendor := vendorFromRequest(req)
	if err := s.repo.Create(vendor); err != nil {
		return nil, errors.NewDatabaseError("failed to create vendor", err)
	}

	// New vendor may belong in any cached list.
	s.cache.InvalidateVendor(vendor.ID)
	return vendor, nil
}

// UpdateVendor modifies an existing vendor listing and invalidates its
// cached entries
func (s *VendorService) UpdateVendor(id uint, req *models.VendorRequest) (*models.Vendor, error) {
	if err := validateVendorRequest(req); err != nil {
		return nil, err
	}

	vendor, err := s.repo.FindByID(id)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to find vendor", err)
	}
	if vendor == nil {
		return nil, errors.NewNotFoundError("vendor not found")
	}

	applyRequest(vendor, req)
	if err := s.repo.Update(vendor); err != nil {
		return nil, errors.NewDatabaseError("failed to update vendor", err)
	}

	s.cache.InvalidateVendor(id)
	return vendor, nil
}

// DeleteVendor removes a vendor listing and invalidates its cached entries
func (s *VendorService) DeleteVendor(id uint) error {
	vendor, err := s.repo.FindByID(id)
	if err != nil {
		return errors.NewDatabaseError("failed to find vendor", err)
	}
	if vendor == nil {
		return errors.NewNotFoundError("vendor not found")
	}

	if err := s.repo.Delete(vendor); err != nil {
		return errors.NewDatabaseError("failed to delete vendor", err)
	}

	s.cache.InvalidateVendor(id)
	return nil
}

// RecordProfileView bumps the vendor's view counter and returns the new
// count. Counter failures degrade to 0, never an error.
func (s *VendorService) RecordProfileView(id uint) int64 {
	return s.counter.Increment(viewKey(id), &cache.Options{Prefix: "views", TTL: viewCounterTTL})
}

func viewKey(id uint) string {
	return fmt.Sprintf("vendor:%d", id)
}

func validateVendorRequest(req *models.VendorRequest) error {
	if req == nil {
		return errors.NewValidationError("request body is required")
	}
	if req.Name == "" {
		return errors.NewValidationError("name is required")
	}
	if req.Slug == "" {
		return errors.NewValidationError("slug is required")
	}
	if req.CategoryID == 0 {
		return errors.NewValidationError("category_id is required")
	}
	if req.Rating < 0 || req.Rating > 5 {
		return errors.NewValidationError("rating must be between 0 and 5")
	}
	return nil
}

func vendorFromRequest(req *models.VendorRequest) *models.Vendor {
	return &models.Vendor{
		Name:        req.Name,
		Slug:        req.Slug,
		CategoryID:  req.CategoryID,
		Location:    req.Location,
		Description: req.Description,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		Featured:    req.Featured,
		Rating:      req.Rating,
	}
}

func applyRequest(vendor *models.Vendor, req *models.VendorRequest) {
	vendor.Name = req.Name
	vendor.Slug = req.Slug
	vendor.CategoryID = req.CategoryID
	vendor.Location = req.Location
	vendor.Description = req.Description
	vendor.Phone = req.Phone
	vendor.Email = req.Email
	vendor.Website = req.Website
	vendor.Featured = req.Featured
	vendor.Rating = req.Rating
}

// SearchService handles vendor search with cached results
type SearchService struct {
	repo  VendorRepositoryInterface
	cache *cache.DirectoryCache
}

// NewSearchService creates a new search service
func NewSearchService(repo VendorRepositoryInterface, directoryCache *cache.DirectoryCache) *SearchService {
	return &SearchService{
		repo:  repo,
		cache: directoryCache,
	}
}

// Search retrieves vendors matching the query text and filters, serving
// from cache when possible
func (s *SearchService) Search(query string, filters models.VendorFilters) ([]models.Vendor, error) {
	if query == "" {
		return nil, errors.NewValidationError("search query is required")
	}

	if results, found := s.cache.GetSearchResults(query, filters); found {
		return results, nil
	}

	filters.Search = query
	results, err := s.repo.List(filters)
	if err != nil {
		return nil, errors.NewDatabaseError("search failed", err)
	}

	filters.Search = ""
	s.cache.SetSearchResults(query, filters, results)
	return results, nil
}

// BlogService handles blog post operations
type BlogService struct {
	repo BlogRepositoryInterface
}

// NewBlogService creates a new blog service
func NewBlogService(repo BlogRepositoryInterface) *BlogService {
	return &BlogService{repo: repo}
}

// ListPosts retrieves all published posts
func (s *BlogService) ListPosts() ([]models.BlogPost, error) {
	posts, err := s.repo.ListPublished()
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list blog posts", err)
	}
	return posts, nil
}

// GetPost retrieves a published post by slug
func (s *BlogService) GetPost(slug string) (*models.BlogPost, error) {
	if slug == "" {
		return nil, errors.NewValidationError("slug is required")
	}

	post, err := s.repo.FindBySlug(slug)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to find blog post", err)
	}
	if post == nil {
		return nil, errors.NewNotFoundError("blog post not found")
	}
	return post, nil
}

// RSVPService handles invitation and guest response operations
type RSVPService struct {
	inviteRepo InviteRepositoryInterface
	rsvpRepo   RSVPRepositoryInterface
}

// NewRSVPService creates a new RSVP service
func NewRSVPService(inviteRepo InviteRepositoryInterface, rsvpRepo RSVPRepositoryInterface) *RSVPService {
	return &RSVPService{
		inviteRepo: inviteRepo,
		rsvpRepo:   rsvpRepo,
	}
}

// GetInvite retrieves an invitation by its token
func (s *RSVPService) GetInvite(token string) (*models.Invite, error) {
	if token == "" {
		return nil, errors.NewValidationError("token cannot be empty")
	}

	invite, err := s.inviteRepo.FindByToken(token)
	if err != nil {
		return nil, errors.NewTokenError("invite not found or expired")
	}
	return invite, nil
}

// SubmitRSVP records a guest's response to an invitation
func (s *RSVPService) SubmitRSVP(token string, req *models.RSVPRequest) error {
	log.Printf("[DEBUG] RSVPService.SubmitRSVP called with token: %s\n", token)

	if err := s.validateRSVPRequest(req); err != nil {
		return err
	}

	invite, err := s.GetInvite(token)
	if err != nil {
		return err
	}

	existing, err := s.rsvpRepo.FindByInviteAndGuest(invite.ID, req.GuestName)
	if err != nil {
		return errors.NewDatabaseError("failed to check existing RSVP", err)
	}
	if existing != nil {
		return errors.NewAlreadyExistsError("guest has already responded")
	}

	guestCount := req.GuestCount
	if guestCount == 0 {
		guestCount = 1
	}

	return s.rsvpRepo.Create(&models.RSVP{
		InviteID:   invite.ID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		Attending:  req.Attending,
		GuestCount: guestCount,
		Message:    req.Message,
	})
}

// ListResponses retrieves all guest responses for an invitation
func (s *RSVPService) ListResponses(token string) ([]models.RSVP, error) {
	invite, err := s.GetInvite(token)
	if err != nil {
		return nil, err
	}

	rsvps, err := s.rsvpRepo.ListByInvite(invite.ID)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list RSVPs", err)
	}
	return rsvps, nil
}

func (s *RSVPService) validateRSVPRequest(req *models.RSVPRequest) error {
	if req == nil {
		return errors.NewValidationError("request body is required")
	}
	if req.GuestName == "" {
		return errors.NewValidationError("guest_name is required")
	}
	if req.GuestCount < 0 || req.GuestCount > 20 {
		return errors.NewValidationError("guest_count must be between 1 and 20")
	}
	return nil
}
