package service

import (
	"context"
	"time"

	"salom-api/internal/model"
	"salom-api/internal/store"
)

type DistrictService struct {
	store *store.Store
}

func NewDistrictService(st *store.Store) *DistrictService {
	return &DistrictService{store: st}
}

// List returns all districts in storage order.
func (s *DistrictService) List(ctx context.Context) []model.District {
	return s.store.LoadDistricts()
}

// Create adds a district. The code must be unique across districts
// (case-sensitive exact match).
func (s *DistrictService) Create(ctx context.Context, in model.DistrictInput) (*model.District, error) {
	if in.Name == "" || in.Code == "" {
		return nil, errInvalid("request.missing_fields")
	}

	unlock := s.store.Lock(store.Districts)
	defer unlock()

	districts := s.store.LoadDistricts()
	for _, d := range districts {
		if d.Code == in.Code {
			return nil, errDuplicate("district.duplicate_code")
		}
	}

	district := model.District{
		ID:          newID(),
		Name:        in.Name,
		Code:        in.Code,
		Description: in.Description,
		CreatedAt:   timestamp(time.Now()),
	}
	districts = append(districts, district)
	if err := s.store.SaveDistricts(districts); err != nil {
		return nil, err
	}
	return &district, nil
}

// Update merges the non-nil patch fields into the stored record.
func (s *DistrictService) Update(ctx context.Context, id string, patch model.DistrictPatch) (*model.District, error) {
	unlock := s.store.Lock(store.Districts)
	defer unlock()

	districts := s.store.LoadDistricts()
	for i := range districts {
		if districts[i].ID != id {
			continue
		}
		d := &districts[i]
		if patch.Name != nil {
			d.Name = *patch.Name
		}
		if patch.Code != nil {
			d.Code = *patch.Code
		}
		if patch.Description != nil {
			d.Description = *patch.Description
		}
		if err := s.store.SaveDistricts(districts); err != nil {
			return nil, err
		}
		return d, nil
	}
	return nil, errNotFound("district.not_found")
}

// Delete removes a district unless departments still reference it.
// Deleting an absent id is a no-op success: deletion is idempotent.
func (s *DistrictService) Delete(ctx context.Context, id string) error {
	unlock := s.store.Lock(store.Districts, store.Departments)
	defer unlock()

	for _, dept := range s.store.LoadDepartments() {
		if dept.DistrictID == id {
			return errConflict("district.has_departments")
		}
	}

	districts := s.store.LoadDistricts()
	kept := districts[:0]
	for _, d := range districts {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	return s.store.SaveDistricts(kept)
}
