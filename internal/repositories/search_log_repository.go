package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripweave/internal/models/db_models"
)

// RecentSearchRow is a search-log entry joined with its itinerary summary.
type RecentSearchRow struct {
	ID             int64
	ItineraryID    uuid.UUID
	Username       string
	CreatedAt      int64
	SessionID      string
	SessionTitle   string
	UnknownDate    bool
	StartDate      *int64
	EndDate        *int64
	Destination    *string
	NumberOfPax    int
	DurationInDays int
}

type SearchLogRepository interface {
	InsertTx(ctx context.Context, log *db_models.SearchLog) error
	RecentByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]RecentSearchRow, error)
}

type searchLogRepository struct {
	db *gorm.DB
}

func NewSearchLogRepository(db *gorm.DB) SearchLogRepository {
	return &searchLogRepository{
		db: db,
	}
}

func (r *searchLogRepository) InsertTx(ctx context.Context, log *db_models.SearchLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *searchLogRepository) RecentByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]RecentSearchRow, error) {
	var rows []RecentSearchRow
	err := r.db.WithContext(ctx).
		Model(&db_models.SearchLog{}).
		Select(`search_logs.id, search_logs.itinerary_id, search_logs.username, search_logs.created_at,
			itineraries.session_id, itineraries.session_title, itineraries.unknown_date,
			itineraries.start_date, itineraries.end_date, itineraries.destination,
			itineraries.number_of_pax, itineraries.duration_in_days`).
		Joins("JOIN itineraries ON itineraries.id = search_logs.itinerary_id").
		Where("search_logs.account_id = ?", accountID).
		Order("search_logs.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
