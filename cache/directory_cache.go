package cache

import (
	"fmt"
	"strings"
	"time"

	"github.com/Truthmedia123/newapp12345/models"
)

// TTLs for each class of directory data. Vendor lists churn with every
// admin edit so they expire quickly; single vendors and search results
// are invalidated explicitly and can live longer.
const (
	VendorListTTL = 300 * time.Second
	FeaturedTTL   = 600 * time.Second
	VendorTTL     = 1800 * time.Second
	SearchTTL     = 1800 * time.Second
)

const (
	vendorPrefix = "vendors"
	searchPrefix = "search"

	featuredKey = "featured"
)

// DirectoryCache wraps the generic store with directory-specific
// operations. It owns no storage of its own; every method is built on
// the store primitives.
type DirectoryCache struct {
	store *Store
}

// NewDirectoryCache creates a directory cache on top of an existing store.
func NewDirectoryCache(store *Store) *DirectoryCache {
	return &DirectoryCache{store: store}
}

// GetVendorList returns the cached vendor list for the given filters.
func (c *DirectoryCache) GetVendorList(filters models.VendorFilters) ([]models.Vendor, bool) {
	value, found := c.store.Get(vendorListKey(filters), &Options{Prefix: vendorPrefix})
	if !found {
		return nil, false
	}

	vendors, ok := value.([]models.Vendor)
	if !ok {
		return nil, false
	}
	return vendors, true
}

// SetVendorList caches the vendor list for the given filters.
func (c *DirectoryCache) SetVendorList(filters models.VendorFilters, vendors []models.Vendor) {
	c.store.Set(vendorListKey(filters), vendors, &Options{Prefix: vendorPrefix, TTL: VendorListTTL})
}

// GetFeatured returns the cached featured-vendors slot.
func (c *DirectoryCache) GetFeatured() ([]models.Vendor, bool) {
	value, found := c.store.Get(featuredKey, &Options{Prefix: vendorPrefix})
	if !found {
		return nil, false
	}

	vendors, ok := value.([]models.Vendor)
	if !ok {
		return nil, false
	}
	return vendors, true
}

// SetFeatured caches the featured-vendors slot.
func (c *DirectoryCache) SetFeatured(vendors []models.Vendor) {
	c.store.Set(featuredKey, vendors, &Options{Prefix: vendorPrefix, TTL: FeaturedTTL})
}

// GetVendor returns the cached vendor for the given ID.
func (c *DirectoryCache) GetVendor(id uint) (*models.Vendor, bool) {
	value, found := c.store.Get(vendorKey(id), &Options{Prefix: vendorPrefix})
	if !found {
		return nil, false
	}

	vendor, ok := value.(*models.Vendor)
	if !ok {
		return nil, false
	}
	return vendor, true
}

// SetVendor caches a single vendor by ID.
func (c *DirectoryCache) SetVendor(vendor *models.Vendor) {
	if vendor == nil {
		return
	}
	c.store.Set(vendorKey(vendor.ID), vendor, &Options{Prefix: vendorPrefix, TTL: VendorTTL})
}

// InvalidateVendor removes the vendor's own entry and wipes every vendor
// list, since any list might contain stale data for that vendor. This
// over-invalidates on purpose, trading cache efficiency for correctness.
func (c *DirectoryCache) InvalidateVendor(id uint) {
	c.store.Delete(vendorKey(id), &Options{Prefix: vendorPrefix})
	c.store.DeletePattern("list:*", &Options{Prefix: vendorPrefix})
	c.store.Delete(featuredKey, &Options{Prefix: vendorPrefix})
}

// GetSearchResults returns cached search results for a query and filters.
func (c *DirectoryCache) GetSearchResults(query string, filters models.VendorFilters) ([]models.Vendor, bool) {
	value, found := c.store.Get(searchKey(query, filters), &Options{Prefix: searchPrefix})
	if !found {
		return nil, false
	}

	vendors, ok := value.([]models.Vendor)
	if !ok {
		return nil, false
	}
	return vendors, true
}

// SetSearchResults caches search results for a query and filters.
func (c *DirectoryCache) SetSearchResults(query string, filters models.VendorFilters, vendors []models.Vendor) {
	c.store.Set(searchKey(query, filters), vendors, &Options{Prefix: searchPrefix, TTL: SearchTTL})
}

// vendorListKey builds a canonical cache key from filter criteria, so the
// same filters always hit the same entry regardless of parameter order.
func vendorListKey(filters models.VendorFilters) string {
	return "list:" + canonicalFilters(filters)
}

func vendorKey(id uint) string {
	return fmt.Sprintf("id:%d", id)
}

func searchKey(query string, filters models.VendorFilters) string {
	return fmt.Sprintf("q:%s|%s", strings.ToLower(strings.TrimSpace(query)), canonicalFilters(filters))
}

func canonicalFilters(filters models.VendorFilters) string {
	return fmt.Sprintf("cat=%s|loc=%s|q=%s",
		strings.ToLower(strings.TrimSpace(filters.Category)),
		strings.ToLower(strings.TrimSpace(filters.Location)),
		strings.ToLower(strings.TrimSpace(filters.Search)),
	)
}
