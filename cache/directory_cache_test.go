package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Truthmedia123/newapp12345/models"
)

func testVendors() []models.Vendor {
	return []models.Vendor{
		{ID: 1, Name: "Shutterbug Studio", Slug: "shutterbug-studio", Location: "Panjim"},
		{ID: 2, Name: "Coastal Catering", Slug: "coastal-catering", Location: "Margao"},
	}
}

func TestDirectoryCacheVendorList(t *testing.T) {
	store, _ := newTestStore()
	defer store.Stop()
	dc := NewDirectoryCache(store)

	filters := models.VendorFilters{Category: "photography", Location: "Panjim"}

	t.Run("Miss before population", func(t *testing.T) {
		vendors, found := dc.GetVendorList(filters)
		assert.False(t, found)
		assert.Nil(t, vendors)
	})

	t.Run("Hit after population", func(t *testing.T) {
		dc.SetVendorList(filters, testVendors())

		vendors, found := dc.GetVendorList(filters)
		assert.True(t, found)
		assert.Len(t, vendors, 2)
		assert.Equal(t, "Shutterbug Studio", vendors[0].Name)
	})

	t.Run("Filter normalization yields same key", func(t *testing.T) {
		dc.SetVendorList(models.VendorFilters{Category: "Photography ", Location: " PANJIM"}, testVendors())

		vendors, found := dc.GetVendorList(models.VendorFilters{Category: "photography", Location: "panjim"})
		assert.True(t, found)
		assert.Len(t, vendors, 2)
	})

	t.Run("Different filters are distinct entries", func(t *testing.T) {
		other := models.VendorFilters{Category: "catering"}
		_, found := dc.GetVendorList(other)
		assert.False(t, found)
	})
}

func TestDirectoryCacheVendor(t *testing.T) {
	store, clock := newTestStore()
	defer store.Stop()
	dc := NewDirectoryCache(store)

	vendor := &models.Vendor{ID: 7, Name: "Shutterbug Studio"}

	t.Run("Set and Get by ID", func(t *testing.T) {
		dc.SetVendor(vendor)

		got, found := dc.GetVendor(7)
		assert.True(t, found)
		assert.Equal(t, "Shutterbug Studio", got.Name)
	})

	t.Run("Nil vendor is ignored", func(t *testing.T) {
		dc.SetVendor(nil)
	})

	t.Run("Expires after vendor TTL", func(t *testing.T) {
		dc.SetVendor(vendor)
		*clock = clock.Add(VendorTTL + time.Second)

		_, found := dc.GetVendor(7)
		assert.False(t, found)
	})
}

func TestDirectoryCacheInvalidateVendor(t *testing.T) {
	store, _ := newTestStore()
	defer store.Stop()
	dc := NewDirectoryCache(store)

	vendor := &models.Vendor{ID: 7, Name: "Shutterbug Studio"}
	filters := models.VendorFilters{Category: "photography"}
	otherFilters := models.VendorFilters{Category: "catering"}

	dc.SetVendor(vendor)
	dc.SetVendorList(filters, testVendors())
	dc.SetVendorList(otherFilters, testVendors())
	dc.SetFeatured(testVendors())
	dc.SetSearchResults("beach wedding", models.VendorFilters{}, testVendors())

	dc.InvalidateVendor(7)

	_, found := dc.GetVendor(7)
	assert.False(t, found)

	// Every vendor list might contain the stale vendor, so all go.
	_, found = dc.GetVendorList(filters)
	assert.False(t, found)
	_, found = dc.GetVendorList(otherFilters)
	assert.False(t, found)
	_, found = dc.GetFeatured()
	assert.False(t, found)

	// Search results live in their own namespace and survive.
	results, found := dc.GetSearchResults("beach wedding", models.VendorFilters{})
	assert.True(t, found)
	assert.Len(t, results, 2)
}

func TestDirectoryCacheFeatured(t *testing.T) {
	store, clock := newTestStore()
	defer store.Stop()
	dc := NewDirectoryCache(store)

	dc.SetFeatured(testVendors())

	vendors, found := dc.GetFeatured()
	assert.True(t, found)
	assert.Len(t, vendors, 2)

	*clock = clock.Add(FeaturedTTL + time.Second)

	_, found = dc.GetFeatured()
	assert.False(t, found)
}

func TestDirectoryCacheSearchResults(t *testing.T) {
	store, _ := newTestStore()
	defer store.Stop()
	dc := NewDirectoryCache(store)

	filters := models.VendorFilters{Location: "Panjim"}

	t.Run("Miss before population", func(t *testing.T) {
		_, found := dc.GetSearchResults("makeup artist", filters)
		assert.False(t, found)
	})

	t.Run("Keyed by query and filters", func(t *testing.T) {
		dc.SetSearchResults("makeup artist", filters, testVendors())

		results, found := dc.GetSearchResults("makeup artist", filters)
		assert.True(t, found)
		assert.Len(t, results, 2)

		_, found = dc.GetSearchResults("makeup artist", models.VendorFilters{Location: "Margao"})
		assert.False(t, found)

		_, found = dc.GetSearchResults("florist", filters)
		assert.False(t, found)
	})

	t.Run("Query normalization", func(t *testing.T) {
		dc.SetSearchResults("  Makeup Artist ", filters, testVendors())

		results, found := dc.GetSearchResults("makeup artist", filters)
		assert.True(t, found)
		assert.Len(t, results, 2)
	})
}
