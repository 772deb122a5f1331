package service

import (
	"time"

	"github.com/callmedory/sport-project/internal/model"
	"github.com/patrickmn/go-cache"
)

const sportsCacheKey = "sportTypes"

// SportsService serves the sport-category list behind a short-lived memory
// cache.
type SportsService struct {
	cache *cache.Cache
}

func NewSportsService() *SportsService {
	return &SportsService{cache: cache.New(time.Minute, 5*time.Minute)}
}

func (s *SportsService) SportTypes() []model.SportType {
	if cached, ok := s.cache.Get(sportsCacheKey); ok {
		return cached.([]model.SportType)
	}

	sports := make([]model.SportType, len(model.SportTypes))
	copy(sports, model.SportTypes)
	s.cache.Set(sportsCacheKey, sports, cache.DefaultExpiration)
	return sports
}
