// Package scheduler implements background job scheduling
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/Truthmedia123/newapp12345/cache"
	"github.com/Truthmedia123/newapp12345/config"
	"github.com/Truthmedia123/newapp12345/repository"
)

// Scheduler manages periodic tasks for the application
type Scheduler struct {
	db             *gorm.DB
	config         *config.Config
	inviteRepo     *repository.InviteRepository
	vendorRepo     *repository.VendorRepository
	directoryCache *cache.DirectoryCache
}

// NewScheduler creates and configures a new task scheduler
func NewScheduler(db *gorm.DB, config *config.Config, directoryCache *cache.DirectoryCache) *Scheduler {
	return &Scheduler{
		db:             db,
		config:         config,
		inviteRepo:     repository.NewInviteRepository(db),
		vendorRepo:     repository.NewVendorRepository(db),
		directoryCache: directoryCache,
	}
}

// Start begins the scheduler's operations
func (s *Scheduler) Start() {
	go s.scheduleInterval(time.Duration(s.config.Scheduler.InvitePurgeInterval)*time.Minute, s.purgeExpiredInvites)

	go s.scheduleInterval(time.Duration(s.config.Scheduler.FeaturedRefreshMinutes)*time.Minute, s.refreshFeaturedVendors)
}

func (s *Scheduler) scheduleInterval(interval time.Duration, job func()) {
	job()

	ticker := time.NewTicker(interval)
	for range ticker.C {
		job()
	}
}

func (s *Scheduler) purgeExpiredInvites() {
	if err := s.inviteRepo.DeleteExpired(); err != nil {
		log.Printf("Error purging expired invites: %v\n", err)
	}
}

// refreshFeaturedVendors keeps the featured slot warm so the homepage
// never has to wait for a cold read.
func (s *Scheduler) refreshFeaturedVendors() {
	vendors, err := s.vendorRepo.Featured()
	if err != nil {
		log.Printf("Error refreshing featured vendors: %v\n", err)
		return
	}
	s.directoryCache.SetFeatured(vendors)
}
