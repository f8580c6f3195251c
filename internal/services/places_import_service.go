package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"withme/internal/models/db_models"
	"withme/internal/models/response_models"
	"withme/internal/repositories"
	"withme/pkg/utils"
)

const SourceGoogleMaps = "google_maps"

// CategoryRule maps free-text source categories onto the fixed taxonomy.
// Rules are checked in order and the first keyword hit wins, so "museum and
// gift shop" is an attraction, not shopping.
type CategoryRule struct {
	Name     string
	Keywords []string
}

var DefaultCategoryRules = []CategoryRule{
	{Name: "restaurant", Keywords: []string{"restaurant", "food", "cafe", "coffee", "dining", "bar", "bakery"}},
	{Name: "accommodation", Keywords: []string{"hotel", "hostel", "accommodation", "lodging", "resort", "guesthouse", "bed and breakfast"}},
	{Name: "attraction", Keywords: []string{"museum", "attraction", "landmark", "monument", "gallery", "temple", "church", "castle", "palace"}},
	{Name: "transportation", Keywords: []string{"station", "airport", "transport", "terminal", "ferry", "metro"}},
	{Name: "outdoors", Keywords: []string{"park", "beach", "hike", "trail", "garden", "mountain", "lake", "viewpoint"}},
	{Name: "shopping", Keywords: []string{"shop", "mall", "market", "store", "boutique"}},
	{Name: "entertainment", Keywords: []string{"theater", "theatre", "cinema", "club", "entertainment", "music", "nightlife", "arcade"}},
}

const CategoryOther = "other"

// CategorizePlace classifies a source category string. Matching is
// case-insensitive substring; no hit yields "other".
func CategorizePlace(sourceCategory string, rules []CategoryRule) string {
	text := strings.ToLower(sourceCategory)
	if text == "" {
		return CategoryOther
	}
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(text, keyword) {
				return rule.Name
			}
		}
	}
	return CategoryOther
}

type PlacesImportServiceInterface interface {
	ImportSharedList(ctx context.Context, listURL string, suggestedBy *uuid.UUID) (*response_models.ImportListResponse, error)
	ListPlaces(ctx context.Context, page, pageSize int) ([]response_models.PlaceResponse, error)
}

type PlacesImportService struct {
	parser    MapsListParser
	placeRepo repositories.PlaceRepository
	rules     []CategoryRule
	logger    *zap.Logger
}

func NewPlacesImportService(parser MapsListParser, placeRepo repositories.PlaceRepository, logger *zap.Logger) PlacesImportServiceInterface {
	return &PlacesImportService{
		parser:    parser,
		placeRepo: placeRepo,
		rules:     DefaultCategoryRules,
		logger:    logger,
	}
}

// ImportSharedList parses the list, categorizes every place and links each
// one to storage: existing rows (matched on source + source_id) lend their
// ID, new rows are inserted. Storage failures leave the place in the result
// without an ID rather than failing the batch.
func (s *PlacesImportService) ImportSharedList(ctx context.Context, listURL string, suggestedBy *uuid.UUID) (*response_models.ImportListResponse, error) {
	parsed, err := s.parser.ParseSharedList(ctx, listURL)
	if err != nil {
		s.logger.Warn("shared list parse failed", zap.String("url", listURL), zap.Error(err))
		return nil, utils.ErrImportFailed
	}

	out := &response_models.ImportListResponse{
		Title:  parsed.Title,
		Places: make([]response_models.PlaceResponse, len(parsed.Places)),
	}
	for i, p := range parsed.Places {
		out.Places[i] = response_models.PlaceResponse{
			Name:        p.Title,
			Description: p.Description,
			Category:    CategorizePlace(p.Category, s.rules),
			Address:     p.Address,
			Latitude:    p.Latitude,
			Longitude:   p.Longitude,
			Rating:      p.Rating,
			RatingCount: p.RatingCount,
			Source:      SourceGoogleMaps,
			SourceID:    p.PlaceID,
		}
	}

	s.linkToStorage(ctx, out.Places, suggestedBy)

	return out, nil
}

// linkToStorage resolves stored IDs for every deduplicable place: one
// lookup for the whole batch, one batched insert for the misses, and a
// per-row fallback when the batch insert fails so a single bad row cannot
// sink its siblings.
func (s *PlacesImportService) linkToStorage(ctx context.Context, places []response_models.PlaceResponse, suggestedBy *uuid.UUID) {
	sourceIDs := make([]string, 0, len(places))
	for _, p := range places {
		if p.SourceID != "" {
			sourceIDs = append(sourceIDs, p.SourceID)
		}
	}
	if len(sourceIDs) == 0 {
		return
	}

	existing := make(map[string]uuid.UUID)
	stored, err := s.placeRepo.FindBySourceRefs(ctx, SourceGoogleMaps, sourceIDs)
	if err != nil {
		// Treat everything as new; unique violations on insert recover
		// the rows that did exist.
		s.logger.Warn("place dedup lookup failed", zap.Error(err))
	} else {
		for _, row := range stored {
			existing[row.SourceID] = row.ID
		}
	}

	var toInsert []*db_models.Place
	var targets []*response_models.PlaceResponse
	for i := range places {
		p := &places[i]
		if p.SourceID == "" {
			continue
		}
		if id, ok := existing[p.SourceID]; ok {
			// Keep the freshly parsed fields, only borrow the stored ID.
			p.ID = id.String()
			continue
		}
		toInsert = append(toInsert, &db_models.Place{
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			Address:     p.Address,
			Latitude:    p.Latitude,
			Longitude:   p.Longitude,
			Rating:      p.Rating,
			RatingCount: p.RatingCount,
			Source:      p.Source,
			SourceID:    p.SourceID,
			SuggestedBy: suggestedBy,
		})
		targets = append(targets, p)
	}
	if len(toInsert) == 0 {
		return
	}

	batchErr := s.placeRepo.CreateBatch(ctx, toInsert)
	if batchErr == nil {
		for i, row := range toInsert {
			targets[i].ID = row.ID.String()
		}
		return
	}
	s.logger.Warn("batched place insert failed, retrying per row", zap.Error(batchErr))

	for i, row := range toInsert {
		if err := s.insertOne(ctx, row); err != nil {
			s.logger.Warn("place insert failed",
				zap.String("source_id", row.SourceID),
				zap.Error(err))
			continue
		}
		targets[i].ID = row.ID.String()
	}
}

// insertOne inserts a single place, resolving unique violations to the row
// that won the race.
func (s *PlacesImportService) insertOne(ctx context.Context, row *db_models.Place) error {
	err := s.placeRepo.Create(ctx, row)
	if err == nil {
		return nil
	}
	if !repositories.IsUniqueViolation(err) {
		return err
	}
	winner, lookupErr := s.placeRepo.GetBySourceRef(ctx, row.Source, row.SourceID)
	if lookupErr != nil || winner == nil {
		return err
	}
	row.ID = winner.ID
	return nil
}

func (s *PlacesImportService) ListPlaces(ctx context.Context, page, pageSize int) ([]response_models.PlaceResponse, error) {
	rows, err := s.placeRepo.List(ctx, page, pageSize)
	if err != nil {
		s.logger.Error("listing places failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PlaceResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, response_models.PlaceResponse{
			ID:          row.ID.String(),
			Name:        row.Name,
			Description: row.Description,
			Category:    row.Category,
			Address:     row.Address,
			Latitude:    row.Latitude,
			Longitude:   row.Longitude,
			Rating:      row.Rating,
			RatingCount: row.RatingCount,
			Source:      row.Source,
			SourceID:    row.SourceID,
		})
	}
	return out, nil
}
