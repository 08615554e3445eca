// Package geography serves the country and state lists used by address forms.
// Reads go through a cache; concurrent misses for the same key share one
// database query.
package geography

import (
	"context"
	"time"

	"shop-backend/internal/cache"
	"shop-backend/internal/domain"
	"shop-backend/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	countriesKey    = "countries"
	statesKeyPrefix = "states:"

	// loadTimeout bounds a shared store read, which outlives any single caller.
	loadTimeout = 10 * time.Second
)

type store interface {
	ListCountries(ctx context.Context) ([]domain.Country, error)
	ListStatesByCountryCode(ctx context.Context, code string) ([]domain.State, error)
}

type Service struct {
	store store
	cache cache.Cache
	ttl   time.Duration
	group singleflight.Group
	log   *zap.SugaredLogger
}

func New(s store, c cache.Cache, ttl time.Duration, log *zap.SugaredLogger) *Service {
	if c == nil {
		c = cache.Noop{}
	}
	return &Service{store: s, cache: c, ttl: ttl, log: logger.OrNop(log).With("service", "geography")}
}

// cachedState keeps the country id, which the API representation hides.
type cachedState struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CountryID int    `json:"countryId"`
}

func (s *Service) ListCountries(ctx context.Context) ([]domain.Country, error) {
	var cached []domain.Country
	if s.lookup(ctx, countriesKey, &cached) {
		return cached, nil
	}

	v, err := s.load(ctx, countriesKey, func(ctx context.Context) (any, error) {
		countries, err := s.store.ListCountries(ctx)
		if err != nil {
			return nil, err
		}
		s.remember(ctx, countriesKey, countries)
		return countries, nil
	})
	if err != nil {
		return nil, err
	}
	return append([]domain.Country{}, v.([]domain.Country)...), nil
}

// ListStatesByCountryCode matches code exactly. Unknown codes yield an empty list.
func (s *Service) ListStatesByCountryCode(ctx context.Context, code string) ([]domain.State, error) {
	key := statesKeyPrefix + code

	var cached []cachedState
	if s.lookup(ctx, key, &cached) {
		return fromCached(cached), nil
	}

	v, err := s.load(ctx, key, func(ctx context.Context) (any, error) {
		states, err := s.store.ListStatesByCountryCode(ctx, code)
		if err != nil {
			return nil, err
		}
		s.remember(ctx, key, toCached(states))
		return states, nil
	})
	if err != nil {
		return nil, err
	}
	return append([]domain.State{}, v.([]domain.State)...), nil
}

// load runs fn once per key for all concurrent callers. fn gets a context
// detached from the caller that started it, so one cancelled request does not
// fail the others waiting on the same key. Each caller still stops waiting
// when its own ctx is done.
func (s *Service) load(ctx context.Context, key string, fn func(ctx context.Context) (any, error)) (any, error) {
	ch := s.group.DoChan(key, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		return fn(loadCtx)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

// lookup treats cache errors as misses.
func (s *Service) lookup(ctx context.Context, key string, dst any) bool {
	hit, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		s.log.Warnw("cache get failed", "key", key, "error", err)
		return false
	}
	return hit
}

func (s *Service) remember(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.log.Warnw("cache set failed", "key", key, "error", err)
	}
}

func toCached(states []domain.State) []cachedState {
	out := make([]cachedState, 0, len(states))
	for _, st := range states {
		out = append(out, cachedState{ID: st.ID, Name: st.Name, CountryID: st.CountryID})
	}
	return out
}

func fromCached(states []cachedState) []domain.State {
	out := make([]domain.State, 0, len(states))
	for _, st := range states {
		out = append(out, domain.State{ID: st.ID, Name: st.Name, CountryID: st.CountryID})
	}
	return out
}
