package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dalesbridge/chronicle/internal/common"
	"github.com/dalesbridge/chronicle/internal/server/models"
	"github.com/dalesbridge/chronicle/internal/server/repositories/repomanager"
)

// PersonService is the admin CRUD surface for genealogical records.
type PersonService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPersonService(db *sql.DB, m repomanager.RepositoryManager) *PersonService {
	return &PersonService{db: db, repomanager: m}
}

func (s *PersonService) List(ctx context.Context) ([]models.Person, error) {
	return s.repomanager.People(s.db).List(ctx)
}

func (s *PersonService) GetByID(ctx context.Context, id string) (*models.Person, error) {
	return s.repomanager.People(s.db).GetByID(ctx, id)
}

func (s *PersonService) Create(ctx context.Context, person *models.Person) (*models.Person, error) {
	if person.Surname == "" {
		return nil, fmt.Errorf("%w: surname is required", common.ErrValidation)
	}
	return s.repomanager.People(s.db).Create(ctx, person)
}

func (s *PersonService) Update(ctx context.Context, person *models.Person) error {
	if person.Surname == "" {
		return fmt.Errorf("%w: surname is required", common.ErrValidation)
	}
	return s.repomanager.People(s.db).Update(ctx, person)
}

func (s *PersonService) Delete(ctx context.Context, id string) error {
	return s.repomanager.People(s.db).Delete(ctx, id)
}

// BuildingService is the admin CRUD surface for notable structures.
type BuildingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewBuildingService(db *sql.DB, m repomanager.RepositoryManager) *BuildingService {
	return &BuildingService{db: db, repomanager: m}
}

func (s *BuildingService) List(ctx context.Context) ([]models.Building, error) {
	return s.repomanager.Buildings(s.db).List(ctx)
}

func (s *BuildingService) GetByID(ctx context.Context, id string) (*models.Building, error) {
	return s.repomanager.Buildings(s.db).GetByID(ctx, id)
}

func (s *BuildingService) Create(ctx context.Context, building *models.Building) (*models.Building, error) {
	if building.Name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	return s.repomanager.Buildings(s.db).Create(ctx, building)
}

func (s *BuildingService) Update(ctx context.Context, building *models.Building) error {
	if building.Name == "" {
		return fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	return s.repomanager.Buildings(s.db).Update(ctx, building)
}

func (s *BuildingService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Buildings(s.db).Delete(ctx, id)
}

// EventService is the admin CRUD surface for the village timeline.
type EventService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEventService(db *sql.DB, m repomanager.RepositoryManager) *EventService {
	return &EventService{db: db, repomanager: m}
}

func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	return s.repomanager.Events(s.db).List(ctx)
}

func (s *EventService) GetByID(ctx context.Context, id string) (*models.Event, error) {
	return s.repomanager.Events(s.db).GetByID(ctx, id)
}

func (s *EventService) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	if event.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	return s.repomanager.Events(s.db).Create(ctx, event)
}

func (s *EventService) Update(ctx context.Context, event *models.Event) error {
	if event.Title == "" {
		return fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	return s.repomanager.Events(s.db).Update(ctx, event)
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Events(s.db).Delete(ctx, id)
}

// ContributionService accepts visitor submissions and lets editors review
// them.
type ContributionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewContributionService(db *sql.DB, m repomanager.RepositoryManager) *ContributionService {
	return &ContributionService{db: db, repomanager: m}
}

func (s *ContributionService) Submit(ctx context.Context, c *models.Contribution) (*models.Contribution, error) {
	if c.Name == "" || c.Body == "" {
		return nil, fmt.Errorf("%w: name and body are required", common.ErrValidation)
	}
	return s.repomanager.Contributions(s.db).Create(ctx, c)
}

func (s *ContributionService) List(ctx context.Context) ([]models.Contribution, error) {
	return s.repomanager.Contributions(s.db).List(ctx)
}

func (s *ContributionService) MarkReviewed(ctx context.Context, id string) error {
	return s.repomanager.Contributions(s.db).MarkReviewed(ctx, id)
}

func (s *ContributionService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Contributions(s.db).Delete(ctx, id)
}
