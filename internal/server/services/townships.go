package services

import (
	"context"
	"database/sql"

	"github.com/dalesbridge/chronicle/internal/server/models"
	"github.com/dalesbridge/chronicle/internal/server/repositories/repomanager"
)

// TownshipService serves the township pages and their editable cards.
type TownshipService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTownshipService(db *sql.DB, m repomanager.RepositoryManager) *TownshipService {
	return &TownshipService{db: db, repomanager: m}
}

func (s *TownshipService) List(ctx context.Context) ([]models.Township, error) {
	return s.repomanager.Townships(s.db).List(ctx)
}

func (s *TownshipService) GetBySlug(ctx context.Context, slug string) (*models.Township, error) {
	return s.repomanager.Townships(s.db).GetBySlug(ctx, slug)
}

func (s *TownshipService) GetByID(ctx context.Context, id string) (*models.Township, error) {
	return s.repomanager.Townships(s.db).GetByID(ctx, id)
}

func (s *TownshipService) Create(ctx context.Context, township *models.Township) (*models.Township, error) {
	if err := validateSlug(township.Slug); err != nil {
		return nil, err
	}
	if err := validateCards(township.Cards); err != nil {
		return nil, err
	}
	return s.repomanager.Townships(s.db).Create(ctx, township)
}

func (s *TownshipService) Update(ctx context.Context, township *models.Township) error {
	if err := validateSlug(township.Slug); err != nil {
		return err
	}
	if err := validateCards(township.Cards); err != nil {
		return err
	}
	return s.repomanager.Townships(s.db).Update(ctx, township)
}

// UpdateCards replaces the card list of one township. Icon names are
// checked here so an unknown icon is rejected at save time, never papered
// over at render time.
func (s *TownshipService) UpdateCards(ctx context.Context, id string, cards []models.TownshipCard) error {
	if err := validateCards(cards); err != nil {
		return err
	}
	return s.repomanager.Townships(s.db).UpdateCards(ctx, id, cards, nowFunc())
}

func (s *TownshipService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Townships(s.db).Delete(ctx, id)
}

func validateCards(cards []models.TownshipCard) error {
	for _, card := range cards {
		if _, err := models.ParseCardIcon(string(card.Icon)); err != nil {
			return err
		}
	}
	return nil
}
