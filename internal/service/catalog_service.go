package service

import (
	"context"
	"strings"

	"doorlist/internal/models"
	"doorlist/internal/repository"
)

// CatalogService manages the shared vocabularies applied to event lists:
// list types and sectors.
type CatalogService struct {
	typeRepo   repository.ListTypeRepository
	sectorRepo repository.SectorRepository
}

func NewCatalogService(typeRepo repository.ListTypeRepository, sectorRepo repository.SectorRepository) *CatalogService {
	return &CatalogService{typeRepo: typeRepo, sectorRepo: sectorRepo}
}

type ListTypeInput struct {
	Name        string
	Description string
	Color       string
	Active      *bool
}

func (s *CatalogService) CreateListType(ctx context.Context, in ListTypeInput) (*models.ListType, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, models.NewValidationError("List type name is required")
	}
	lt := &models.ListType{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Color:       in.Color,
		Active:      true,
	}
	if in.Active != nil {
		lt.Active = *in.Active
	}
	if err := s.typeRepo.Create(ctx, lt); err != nil {
		return nil, err
	}
	return lt, nil
}

func (s *CatalogService) UpdateListType(ctx context.Context, id uint, in ListTypeInput) (*models.ListType, error) {
	lt, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) != "" {
		lt.Name = strings.TrimSpace(in.Name)
	}
	if in.Description != "" {
		lt.Description = in.Description
	}
	if in.Color != "" {
		lt.Color = in.Color
	}
	if in.Active != nil {
		lt.Active = *in.Active
	}
	if err := s.typeRepo.Update(ctx, lt); err != nil {
		return nil, err
	}
	return lt, nil
}

// DeleteListType refuses to remove a type still referenced by event lists.
func (s *CatalogService) DeleteListType(ctx context.Context, id uint) error {
	inUse, err := s.typeRepo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return models.NewConflictError("List type is in use by one or more event lists")
	}
	return s.typeRepo.Delete(ctx, id)
}

func (s *CatalogService) ListTypes(ctx context.Context) ([]models.ListType, error) {
	return s.typeRepo.List(ctx)
}

type SectorInput struct {
	Name     string
	Color    string
	Capacity int
}

func (s *CatalogService) CreateSector(ctx context.Context, in SectorInput) (*models.Sector, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, models.NewValidationError("Sector name is required")
	}
	if in.Capacity < 0 {
		return nil, models.NewValidationError("Sector capacity must not be negative")
	}
	sector := &models.Sector{
		Name:     strings.TrimSpace(in.Name),
		Color:    in.Color,
		Capacity: in.Capacity,
	}
	if err := s.sectorRepo.Create(ctx, sector); err != nil {
		return nil, err
	}
	return sector, nil
}

func (s *CatalogService) UpdateSector(ctx context.Context, id uint, in SectorInput) (*models.Sector, error) {
	sector, err := s.sectorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) != "" {
		sector.Name = strings.TrimSpace(in.Name)
	}
	if in.Color != "" {
		sector.Color = in.Color
	}
	if in.Capacity > 0 {
		sector.Capacity = in.Capacity
	}
	if err := s.sectorRepo.Update(ctx, sector); err != nil {
		return nil, err
	}
	return sector, nil
}

// DeleteSector refuses to remove a sector still referenced by event lists.
func (s *CatalogService) DeleteSector(ctx context.Context, id uint) error {
	inUse, err := s.sectorRepo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return models.NewConflictError("Sector is in use by one or more event lists")
	}
	return s.sectorRepo.Delete(ctx, id)
}

func (s *CatalogService) ListSectors(ctx context.Context) ([]models.Sector, error) {
	return s.sectorRepo.List(ctx)
}
