package services

import (
	"context"
	"time"

	"github.com/Salimjon123/Alijahon/entity"
	"github.com/Salimjon123/Alijahon/repository"
	"github.com/Salimjon123/Alijahon/utils"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const competitionCacheKey = "competition:leaderboard"
const competitionCacheTTL = time.Minute

// ThreadService is the referral ledger: thread creation, visit
// analytics, seller statistics and the competition leaderboard.
type ThreadService struct {
	ThreadRepo   *repository.ThreadRepository
	ProductRepo  *repository.ProductRepository
	SettingsRepo *repository.SettingsRepository
	Redis        *redis.Client
}

func NewThreadService(
	threadRepo *repository.ThreadRepository,
	productRepo *repository.ProductRepository,
	settingsRepo *repository.SettingsRepository,
	rdb *redis.Client,
) *ThreadService {
	return &ThreadService{
		ThreadRepo:   threadRepo,
		ProductRepo:  productRepo,
		SettingsRepo: settingsRepo,
		Redis:        rdb,
	}
}

type CreateThreadReq struct {
	Name      string `json:"name" binding:"required"`
	ProductID uint   `json:"productId" binding:"required"`
	Discount  int64  `json:"discount" binding:"min=0"`
}

// Create validates the discount against the product's seller price
// and stores the thread for the owner.
func (s *ThreadService) Create(ownerID uint, req *CreateThreadReq) (*entity.Thread, error) {
	product, err := s.ProductRepo.GetByID(req.ProductID)
	if err != nil {
		return nil, fieldErr("productId", "product not found")
	}
	if req.Discount > product.SellerPrice {
		return nil, fieldErr("discount", "the discount is incorrect")
	}

	thread := &entity.Thread{
		Name:      req.Name,
		OwnerID:   ownerID,
		ProductID: product.ID,
		Discount:  req.Discount,
	}
	if err := s.ThreadRepo.Create(thread); err != nil {
		return nil, err
	}
	return thread, nil
}

func (s *ThreadService) ListForOwner(ownerID uint) ([]entity.Thread, error) {
	return s.ThreadRepo.ListForOwner(ownerID)
}

// Landing loads the thread + product for the referral landing page
// and records the visit. Every fetch counts, owner or repeat visitor
// alike.
func (s *ThreadService) Landing(threadID uint) (*entity.Thread, error) {
	thread, err := s.ThreadRepo.GetByID(threadID)
	if err != nil {
		return nil, err
	}
	if err := s.ThreadRepo.IncrementVisit(thread.ID); err != nil {
		return nil, err
	}
	thread.VisitCount++
	return thread, nil
}

// StatsTotals is the summary row under the per-thread breakdown.
type StatsTotals struct {
	VisitTotal      int `json:"visitTotal"`
	NewTotal        int `json:"newTotal"`
	ReadyTotal      int `json:"readyTotal"`
	DeliveringTotal int `json:"deliveringTotal"`
	DeliveredTotal  int `json:"deliveredTotal"`
	NotCallTotal    int `json:"notCallTotal"`
	CanceledTotal   int `json:"canceledTotal"`
	ArchivedTotal   int `json:"archivedTotal"`
}

type OwnerStats struct {
	Threads []repository.ThreadStatsRow `json:"threads"`
	Totals  StatsTotals                 `json:"totals"`
}

// Stats aggregates the owner's threads: per-thread status counts plus
// a totals row summed across them.
func (s *ThreadService) Stats(ownerID uint) (*OwnerStats, error) {
	rows, err := s.ThreadRepo.StatsForOwner(ownerID)
	if err != nil {
		return nil, err
	}
	var totals StatsTotals
	for _, row := range rows {
		totals.VisitTotal += row.VisitCount
		totals.NewTotal += row.NewCount
		totals.ReadyTotal += row.ReadyCount
		totals.DeliveringTotal += row.DeliveringCount
		totals.DeliveredTotal += row.DeliveredCount
		totals.NotCallTotal += row.NotCallCount
		totals.CanceledTotal += row.CanceledCount
		totals.ArchivedTotal += row.ArchivedCount
	}
	return &OwnerStats{Threads: rows, Totals: totals}, nil
}

type CompetitionOut struct {
	Sellers   []repository.CompetitionRow `json:"sellers"`
	Thumbnail string                      `json:"thumbnail"`
}

// Competition publishes the leaderboard with the prize thumbnail from
// site settings. Cached briefly in Redis; exact freshness does not
// matter here, the delivered counts move slowly.
func (s *ThreadService) Competition(ctx context.Context) (*CompetitionOut, error) {
	var cached CompetitionOut
	if hit, err := utils.GetCache(ctx, s.Redis, competitionCacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	settings, err := s.SettingsRepo.Get(s.SettingsRepo.DB)
	if err != nil {
		if err == repository.ErrNoSettings {
			return nil, ErrSiteSettingsMissing
		}
		return nil, err
	}
	sellers, err := s.ThreadRepo.Competition()
	if err != nil {
		return nil, err
	}

	out := &CompetitionOut{Sellers: sellers, Thumbnail: settings.CompetitionThumbnail}
	if err := utils.SetCache(ctx, s.Redis, competitionCacheKey, out, competitionCacheTTL); err != nil {
		logrus.WithError(err).Warn("competition cache write failed")
	}
	return out, nil
}
