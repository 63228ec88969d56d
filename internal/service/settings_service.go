package service

import (
	"context"
	"fmt"
	"strconv"

	"doorlist/internal/cache"
	"doorlist/internal/models"
	"doorlist/internal/repository"
	"doorlist/internal/validation"
)

// knownSettingKeys is the set of keys admins may write. Unknown keys are
// rejected so typos don't silently create dead configuration.
var knownSettingKeys = map[string]bool{
	models.SettingSiteName:                true,
	models.SettingSiteDescription:         true,
	models.SettingPublicSubmissionEnabled: true,
	models.SettingMaxGuestsPerSubmission:  true,
	models.SettingMaxNameLength:           true,
}

type SettingsService struct {
	settingsRepo repository.SiteSettingRepository
	activityRepo repository.ActivityLogRepository
}

func NewSettingsService(settingsRepo repository.SiteSettingRepository, activityRepo repository.ActivityLogRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo, activityRepo: activityRepo}
}

// GetAll returns every setting as a key/value map, cache-aside through Redis.
func (s *SettingsService) GetAll(ctx context.Context) (map[string]string, error) {
	var out map[string]string
	err := cache.Aside(ctx, cache.SettingsKey, &out, cache.SettingsTTL, func() error {
		settings, err := s.settingsRepo.GetAll(ctx)
		if err != nil {
			return err
		}
		out = make(map[string]string, len(settings))
		for _, setting := range settings {
			out[setting.Key] = setting.Value
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update upserts one setting and invalidates the settings cache.
func (s *SettingsService) Update(ctx context.Context, key, value string, actorID uint) error {
	if !knownSettingKeys[key] {
		return models.NewValidationError(fmt.Sprintf("Unknown setting key %q", key))
	}

	switch key {
	case models.SettingPublicSubmissionEnabled:
		if value != "true" && value != "false" {
			return models.NewValidationError("public_submission_enabled must be \"true\" or \"false\"")
		}
	case models.SettingMaxGuestsPerSubmission, models.SettingMaxNameLength:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return models.NewValidationError(fmt.Sprintf("%s must be a positive integer", key))
		}
	}

	setting := &models.SiteSetting{Key: key, Value: value, UpdatedBy: &actorID}
	if err := s.settingsRepo.Upsert(ctx, setting); err != nil {
		return err
	}
	cache.InvalidateSettings(ctx)

	entry := &models.ActivityLog{
		UserID:  &actorID,
		Action:  models.ActionSettingUpdated,
		Details: fmt.Sprintf("Updated setting %s to %q", key, value),
	}
	// Audit write is best effort here; the setting itself has landed.
	_ = s.activityRepo.Append(ctx, entry)
	return nil
}

// PublicSubmissionEnabled reports whether the anonymous submission form is open.
// Defaults to true when unset.
func (s *SettingsService) PublicSubmissionEnabled(ctx context.Context) bool {
	all, err := s.GetAll(ctx)
	if err != nil {
		return true
	}
	v, ok := all[models.SettingPublicSubmissionEnabled]
	if !ok {
		return true
	}
	return v != "false"
}

// MaxGuestsPerSubmission returns the configured per-submission name cap.
func (s *SettingsService) MaxGuestsPerSubmission(ctx context.Context) int {
	return s.intSetting(ctx, models.SettingMaxGuestsPerSubmission, validation.DefaultMaxNamesPerSubmission)
}

// MaxNameLength returns the configured per-name length cap.
func (s *SettingsService) MaxNameLength(ctx context.Context) int {
	return s.intSetting(ctx, models.SettingMaxNameLength, validation.DefaultMaxNameLength)
}

func (s *SettingsService) intSetting(ctx context.Context, key string, fallback int) int {
	all, err := s.GetAll(ctx)
	if err != nil {
		return fallback
	}
	v, ok := all[key]
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
