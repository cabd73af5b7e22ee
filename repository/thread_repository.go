package repository

import (
	"github.com/Salimjon123/Alijahon/entity"
	"gorm.io/gorm"
)

type ThreadRepository struct {
	DB *gorm.DB
}

func NewThreadRepository(db *gorm.DB) *ThreadRepository {
	return &ThreadRepository{DB: db}
}

func (r *ThreadRepository) Create(t *entity.Thread) error {
	return r.DB.Create(t).Error
}

func (r *ThreadRepository) GetByID(id uint) (*entity.Thread, error) {
	var t entity.Thread
	if err := r.DB.Preload("Product").First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *ThreadRepository) ListForOwner(ownerID uint) ([]entity.Thread, error) {
	var threads []entity.Thread
	err := r.DB.Preload("Product").
		Where("owner_id = ?", ownerID).
		Order("id DESC").
		Find(&threads).Error
	return threads, err
}

// IncrementVisit bumps the counter in SQL so concurrent landings
// don't lose increments to read-modify-write races.
func (r *ThreadRepository) IncrementVisit(threadID uint) error {
	return r.DB.Model(&entity.Thread{}).
		Where("id = ?", threadID).
		Update("visit_count", gorm.Expr("visit_count + 1")).Error
}

// ThreadStatsRow is one thread of the owner's statistics page:
// visits plus order counts per status.
type ThreadStatsRow struct {
	ThreadID        uint   `json:"threadId"`
	Name            string `json:"name"`
	ProductName     string `json:"productName"`
	VisitCount      int    `json:"visitCount"`
	NewCount        int    `json:"newCount"`
	ReadyCount      int    `json:"readyCount"`
	DeliveringCount int    `json:"deliveringCount"`
	DeliveredCount  int    `json:"deliveredCount"`
	NotCallCount    int    `json:"notCallCount"`
	CanceledCount   int    `json:"canceledCount"`
	ArchivedCount   int    `json:"archivedCount"`
}

// StatsForOwner groups every thread of the owner with per-status
// order counts, one row per thread.
func (r *ThreadRepository) StatsForOwner(ownerID uint) ([]ThreadStatsRow, error) {
	var rows []ThreadStatsRow
	err := r.DB.Table("threads AS t").
		Select(`t.id AS thread_id, t.name, p.name AS product_name, t.visit_count,
			COUNT(CASE WHEN o.status = ? THEN 1 END) AS new_count,
			COUNT(CASE WHEN o.status = ? THEN 1 END) AS ready_count,
			COUNT(CASE WHEN o.status = ? THEN 1 END) AS delivering_count,
			COUNT(CASE WHEN o.status = ? THEN 1 END) AS delivered_count,
			COUNT(CASE WHEN o.status = ? THEN 1 END) AS not_call_count,
			COUNT(CASE WHEN o.status = ? THEN 1 END) AS canceled_count,
			COUNT(CASE WHEN o.status = ? THEN 1 END) AS archived_count`,
			entity.StatusNew, entity.StatusReadyToDelivery, entity.StatusDelivering,
			entity.StatusDelivered, entity.StatusNotCall, entity.StatusCanceled,
			entity.StatusArchived).
		Joins("JOIN products p ON p.id = t.product_id").
		Joins("LEFT JOIN orders o ON o.thread_id = t.id AND o.deleted_at IS NULL").
		Where("t.owner_id = ? AND t.deleted_at IS NULL", ownerID).
		Group("t.id, t.name, p.name, t.visit_count").
		Order("t.id").
		Scan(&rows).Error
	return rows, err
}

// CompetitionRow is one leaderboard entry.
type CompetitionRow struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	OrderCount int    `json:"orderCount"`
}

// Competition ranks sellers by delivered orders across all their
// threads, keeping only sellers with more than one.
func (r *ThreadRepository) Competition() ([]CompetitionRow, error) {
	var rows []CompetitionRow
	err := r.DB.Table("users AS u").
		Select("u.first_name, u.last_name, COUNT(o.id) AS order_count").
		Joins("JOIN threads t ON t.owner_id = u.id AND t.deleted_at IS NULL").
		Joins("JOIN orders o ON o.thread_id = t.id AND o.deleted_at IS NULL AND o.status = ?", entity.StatusDelivered).
		Group("u.id, u.first_name, u.last_name").
		Having("COUNT(o.id) > 1").
		Order("order_count DESC").
		Scan(&rows).Error
	return rows, err
}
