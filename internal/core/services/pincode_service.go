package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"dealerhub/internal/adapters/cache"
	"dealerhub/internal/adapters/external/pincode"
	"dealerhub/internal/core/domain"
	"dealerhub/internal/pkg/validator"

	"go.uber.org/zap"
)

// PincodeService resolves Indian postal codes with a read-through cache
type PincodeService struct {
	lookup pincode.Lookup
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewPincodeService creates a new pincode service
func NewPincodeService(lookup pincode.Lookup, c cache.Cache, ttl time.Duration, logger *zap.Logger) *PincodeService {
	return &PincodeService{
		lookup: lookup,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// Lookup returns the post offices serving code
func (s *PincodeService) Lookup(ctx context.Context, code string) ([]pincode.PostOffice, error) {
	code = strings.TrimSpace(code)
	if !validator.IsPincode(code) {
		return nil, &ValidationError{Message: "pincode must be a 6 digit pincode"}
	}

	key := "pincode:" + code

	var offices []pincode.PostOffice
	found, err := s.cache.Get(ctx, key, &offices)
	if err != nil {
		s.logger.Warn("pincode cache read failed", zap.String("pincode", code), zap.Error(err))
	}
	// an empty cached answer is treated as a miss
	if found && len(offices) > 0 {
		return offices, nil
	}

	offices, err = s.lookup.Lookup(ctx, code)
	if err != nil {
		if errors.Is(err, pincode.ErrNotFound) {
			return nil, domain.ErrPincodeNotFound
		}
		return nil, err
	}
	if len(offices) == 0 {
		return nil, domain.ErrPincodeNotFound
	}

	if err := s.cache.Set(ctx, key, offices, s.ttl); err != nil {
		s.logger.Warn("pincode cache write failed", zap.String("pincode", code), zap.Error(err))
	}
	return offices, nil
}

// Locate returns the district and state of code, taken from its first office
func (s *PincodeService) Locate(ctx context.Context, code string) (city, state string, err error) {
	offices, err := s.Lookup(ctx, code)
	if err != nil {
		return "", "", err
	}
	if len(offices) == 0 {
		return "", "", domain.ErrPincodeNotFound
	}
	return offices[0].District, offices[0].State, nil
}
