package services

import (
	"context"

	"github.com/google/uuid"

	"tripweave/internal/config"
	"tripweave/internal/models/response_models"
	"tripweave/internal/repositories"
	"tripweave/pkg/utils"
)

type ProfileServiceInterface interface {
	GetInfo(ctx context.Context, accountID string) (*response_models.ProfileInfoResponse, error)
	RecentSearches(ctx context.Context, accountID string) ([]response_models.RecentSearchResponse, error)
}

type ProfileService struct {
	accountRepo   repositories.AccountRepository
	searchLogRepo repositories.SearchLogRepository
	cfg           *config.Config
}

func NewProfileService(accountRepo repositories.AccountRepository, searchLogRepo repositories.SearchLogRepository, cfg *config.Config) ProfileServiceInterface {
	return &ProfileService{
		accountRepo:   accountRepo,
		searchLogRepo: searchLogRepo,
		cfg:           cfg,
	}
}

func (p *ProfileService) GetInfo(ctx context.Context, accountID string) (*response_models.ProfileInfoResponse, error) {
	account, err := p.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	lastLogin := "Unknown"
	if account.LastLoginAt > 0 {
		lastLogin = utils.FormatRFC3339(utils.FromUnixMillis(account.LastLoginAt * 1000))
	}

	return &response_models.ProfileInfoResponse{
		Email:          account.Email,
		DisplayName:    account.DisplayName,
		LastLoggedInAt: lastLogin,
	}, nil
}

func (p *ProfileService) RecentSearches(ctx context.Context, accountID string) ([]response_models.RecentSearchResponse, error) {
	account, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	rows, err := p.searchLogRepo.RecentByAccount(ctx, account, p.cfg.RecentSearchLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.RecentSearchResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, response_models.RecentSearchResponse{
			ID:             row.ID,
			ItineraryID:    row.ItineraryID.String(),
			Username:       row.Username,
			CreatedDt:      row.CreatedAt,
			SessionID:      row.SessionID,
			SessionTitle:   row.SessionTitle,
			UnknownDate:    row.UnknownDate,
			StartDate:      row.StartDate,
			EndDate:        row.EndDate,
			Destination:    row.Destination,
			NumberOfPax:    row.NumberOfPax,
			DurationInDays: row.DurationInDays,
		})
	}

	return out, nil
}
