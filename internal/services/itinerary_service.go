package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"tripweave/internal/config"
	"tripweave/internal/models/db_models"
	"tripweave/internal/models/request_models"
	"tripweave/internal/models/response_models"
	"tripweave/internal/repositories"
	mem "tripweave/pkg/memcache"
	"tripweave/pkg/utils"
)

type ItineraryServiceInterface interface {
	CreateItinerary(ctx context.Context, ownerID string, req *request_models.ItineraryRequest) (*response_models.SubmitItineraryResponse, error)
	UpdateItinerary(ctx context.Context, accountID string, sessionID string, req *request_models.ItineraryRequest) (*response_models.SubmitItineraryResponse, error)
	GetBySessionID(ctx context.Context, sessionID string, viewerID string) (*response_models.ItineraryDetailResponse, error)
	CheckEditPermission(ctx context.Context, accountID string, sessionID string) (bool, error)
	AddCollaborator(ctx context.Context, ownerID string, sessionID string, email string) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	accountRepo   repositories.AccountRepository
	searchLogRepo repositories.SearchLogRepository
	challenges    mem.ChallengeCache
	cfg           *config.Config
	logger        *zap.Logger
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	accountRepo repositories.AccountRepository,
	searchLogRepo repositories.SearchLogRepository,
	challenges mem.ChallengeCache,
	cfg *config.Config,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		accountRepo:   accountRepo,
		searchLogRepo: searchLogRepo,
		challenges:    challenges,
		cfg:           cfg,
		logger:        logger,
	}
}

func (s *ItineraryService) CreateItinerary(ctx context.Context, ownerID string, req *request_models.ItineraryRequest) (*response_models.SubmitItineraryResponse, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = utils.NewSessionID()
	} else {
		existing, err := s.itineraryRepo.FindBySessionID(ctx, sessionID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			return nil, utils.ErrSessionIDTaken
		}
	}

	shortCode, err := utils.NewShortCode(s.cfg.ShortCodeLength)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	itinerary := s.toItineraryModel(owner, sessionID, shortCode, req)
	for i := range req.AgendaItems {
		itinerary.AgendaItems = append(itinerary.AgendaItems, *toAgendaItemModel(&req.AgendaItems[i]))
	}

	if err := s.itineraryRepo.InsertTx(ctx, itinerary); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Ids are assigned in request order, so pair them back up positionally.
	entries := make([]response_models.AgendaFileMapEntry, 0, len(itinerary.AgendaItems))
	for i := range itinerary.AgendaItems {
		entries = append(entries, response_models.AgendaFileMapEntry{
			AgendaID:  itinerary.AgendaItems[i].ID,
			FileUUIDs: req.AgendaItems[i].FileUUIDs,
		})
	}

	return &response_models.SubmitItineraryResponse{
		ShortCode:       shortCode,
		AgendaToFileMap: entries,
	}, nil
}

func (s *ItineraryService) UpdateItinerary(ctx context.Context, accountID string, sessionID string, req *request_models.ItineraryRequest) (*response_models.SubmitItineraryResponse, error) {
	itinerary, err := s.itineraryRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}

	allowed, err := s.canEdit(ctx, itinerary, accountID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, utils.ErrPermissionDenied
	}

	s.applyItineraryFields(itinerary, req)

	type orderedItem struct {
		model     *db_models.AgendaItem
		fileUUIDs []string
	}

	ordered := make([]orderedItem, 0, len(req.AgendaItems))
	var updated, inserted []*db_models.AgendaItem
	for i := range req.AgendaItems {
		item := toAgendaItemModel(&req.AgendaItems[i])
		item.ItineraryID = itinerary.ID
		if item.ID != 0 {
			updated = append(updated, item)
		} else {
			inserted = append(inserted, item)
		}
		ordered = append(ordered, orderedItem{model: item, fileUUIDs: req.AgendaItems[i].FileUUIDs})
	}

	if err := s.itineraryRepo.ApplyUpdate(ctx, itinerary, req.AgendaIDsToDelete, updated, inserted); err != nil {
		return nil, utils.ErrDatabaseError
	}

	entries := make([]response_models.AgendaFileMapEntry, 0, len(ordered))
	for _, o := range ordered {
		entries = append(entries, response_models.AgendaFileMapEntry{
			AgendaID:  o.model.ID,
			FileUUIDs: o.fileUUIDs,
		})
	}

	return &response_models.SubmitItineraryResponse{
		ShortCode:       itinerary.ShortCode,
		AgendaToFileMap: entries,
	}, nil
}

func (s *ItineraryService) GetBySessionID(ctx context.Context, sessionID string, viewerID string) (*response_models.ItineraryDetailResponse, error) {
	itinerary, err := s.itineraryRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		// Shared links carry the short code, so fall back to it.
		itinerary, err = s.itineraryRepo.FindByShortCode(ctx, sessionID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if itinerary == nil {
			return nil, utils.ErrItineraryNotFound
		}
	}

	s.recordSearch(ctx, itinerary, viewerID)

	return toDetailResponse(itinerary), nil
}

func (s *ItineraryService) CheckEditPermission(ctx context.Context, accountID string, sessionID string) (bool, error) {
	if allowed, ok := s.challenges.Get(sessionID, accountID); ok {
		return allowed, nil
	}

	itinerary, err := s.itineraryRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return false, utils.ErrItineraryNotFound
	}

	allowed, err := s.canEdit(ctx, itinerary, accountID)
	if err != nil {
		return false, err
	}

	s.challenges.Set(sessionID, accountID, allowed, time.Duration(s.cfg.ChallengeTTLSeconds)*time.Second)
	return allowed, nil
}

func (s *ItineraryService) AddCollaborator(ctx context.Context, ownerID string, sessionID string, email string) error {
	itinerary, err := s.itineraryRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if itinerary == nil {
		return utils.ErrItineraryNotFound
	}

	if itinerary.OwnerID.String() != ownerID {
		return utils.ErrPermissionDenied
	}

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	err = s.itineraryRepo.AddCollaborator(ctx, &db_models.Collaborator{
		ItineraryID: itinerary.ID,
		AccountID:   account.ID,
	})
	if err != nil {
		return utils.ErrDatabaseError
	}

	s.challenges.Invalidate(sessionID)
	return nil
}

func (s *ItineraryService) canEdit(ctx context.Context, itinerary *db_models.Itinerary, accountID string) (bool, error) {
	if itinerary.OwnerID.String() == accountID {
		return true, nil
	}

	account, err := uuid.Parse(accountID)
	if err != nil {
		return false, nil
	}

	isCollaborator, err := s.itineraryRepo.IsCollaborator(ctx, itinerary.ID, account)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return isCollaborator, nil
}

// recordSearch is best-effort: a failed log line never fails the lookup.
func (s *ItineraryService) recordSearch(ctx context.Context, itinerary *db_models.Itinerary, viewerID string) {
	if viewerID == "" {
		return
	}
	viewer, err := uuid.Parse(viewerID)
	if err != nil {
		return
	}

	username := viewerID
	if account, err := s.accountRepo.FindByID(ctx, viewerID); err == nil && account != nil {
		username = account.Email
	}

	err = s.searchLogRepo.InsertTx(ctx, &db_models.SearchLog{
		ItineraryID: itinerary.ID,
		AccountID:   viewer,
		Username:    username,
	})
	if err != nil {
		s.logger.Warn("Failed to record itinerary search", zap.Error(err))
	}
}

func (s *ItineraryService) toItineraryModel(owner uuid.UUID, sessionID, shortCode string, req *request_models.ItineraryRequest) *db_models.Itinerary {
	itinerary := &db_models.Itinerary{
		OwnerID:        owner,
		SessionID:      sessionID,
		ShortCode:      shortCode,
		SessionTitle:   req.SessionTitle,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		UnknownDate:    req.UnknownDate,
		DurationInDays: req.DurationInDays,
		NumberOfPax:    req.NumberOfPax,
	}
	if req.Destination != "" {
		itinerary.Destination = &req.Destination
	}
	itinerary.DestinationRaw = jsonFromStrings(req.DestinationRaw)
	itinerary.DateRaw = jsonFromStrings(req.DateRaw)
	return itinerary
}

func (s *ItineraryService) applyItineraryFields(itinerary *db_models.Itinerary, req *request_models.ItineraryRequest) {
	itinerary.SessionTitle = req.SessionTitle
	itinerary.StartDate = req.StartDate
	itinerary.EndDate = req.EndDate
	itinerary.UnknownDate = req.UnknownDate
	itinerary.DurationInDays = req.DurationInDays
	itinerary.NumberOfPax = req.NumberOfPax
	if req.Destination != "" {
		itinerary.Destination = &req.Destination
	}
	itinerary.DestinationRaw = jsonFromStrings(req.DestinationRaw)
	itinerary.DateRaw = jsonFromStrings(req.DateRaw)
}

func toAgendaItemModel(req *request_models.AgendaItemRequest) *db_models.AgendaItem {
	return &db_models.AgendaItem{
		ID:              req.ID,
		Title:           req.Title,
		Desc:            req.Desc,
		Location:        req.Location,
		TimingRaw:       jsonFromStrings(req.TimingRaw),
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationInHours: req.DurationInHours,
		UnknownTime:     req.UnknownTime,
		Budget:          req.Budget,
		Day:             req.Day,
	}
}

func toDetailResponse(itinerary *db_models.Itinerary) *response_models.ItineraryDetailResponse {
	out := &response_models.ItineraryDetailResponse{
		ID:             itinerary.ID.String(),
		SessionID:      itinerary.SessionID,
		ShortCode:      itinerary.ShortCode,
		SessionTitle:   itinerary.SessionTitle,
		Destination:    itinerary.Destination,
		DestinationRaw: stringsFromJSON(itinerary.DestinationRaw),
		NumberOfPax:    itinerary.NumberOfPax,
		DateRaw:        stringsFromJSON(itinerary.DateRaw),
		StartDate:      itinerary.StartDate,
		EndDate:        itinerary.EndDate,
		UnknownDate:    itinerary.UnknownDate,
		DurationInDays: itinerary.DurationInDays,
	}

	out.AgendaItems = make([]response_models.AgendaItemResponse, 0, len(itinerary.AgendaItems))
	for _, item := range itinerary.AgendaItems {
		files := make([]response_models.AttachmentResponse, 0, len(item.Attachments))
		for _, attachment := range item.Attachments {
			files = append(files, response_models.AttachmentResponse{
				UUID:        attachment.UUID,
				Name:        attachment.Name,
				MimeType:    attachment.MimeType,
				SizeInBytes: attachment.SizeInBytes,
			})
		}
		out.AgendaItems = append(out.AgendaItems, response_models.AgendaItemResponse{
			ID:              item.ID,
			Title:           item.Title,
			Desc:            item.Desc,
			Location:        item.Location,
			TimingRaw:       stringsFromJSON(item.TimingRaw),
			StartTime:       item.StartTime,
			EndTime:         item.EndTime,
			DurationInHours: item.DurationInHours,
			UnknownTime:     item.UnknownTime,
			Budget:          item.Budget,
			Day:             item.Day,
			Files:           files,
		})
	}

	return out
}

func jsonFromStrings(values []string) datatypes.JSON {
	if len(values) == 0 {
		return nil
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil
	}
	return raw
}

func stringsFromJSON(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}
	return values
}
