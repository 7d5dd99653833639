package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/price_tracker_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Price source ---

type MockPriceSource struct {
	mock.Mock
}

func (m *MockPriceSource) Name() string { return "stub" }

func (m *MockPriceSource) Fetch(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// --- Price repository ---

type MockPriceRepository struct {
	mock.Mock
}

func (m *MockPriceRepository) ObservationAge(ctx context.Context) (time.Duration, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Duration), args.Bool(1), args.Error(2)
}

func (m *MockPriceRepository) ListActiveSnapshots(ctx context.Context, changeWindow time.Duration) ([]domain.CurrencySnapshot, error) {
	args := m.Called(ctx, changeWindow)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencySnapshot), args.Error(1)
}

func (m *MockPriceRepository) RecordQuotes(ctx context.Context, quotes []domain.PriceQuote) ([]domain.PriceObservation, error) {
	args := m.Called(ctx, quotes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceObservation), args.Error(1)
}

// --- Refresh service ---

type MockRefreshSvc struct {
	mock.Mock
}

func (m *MockRefreshSvc) RefreshIfStale(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockRefreshSvc) Refresh(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- Currency repository ---

type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

// --- Watchlist repository ---

type MockWatchlistRepository struct {
	mock.Mock
}

func (m *MockWatchlistRepository) ListWatchlistSnapshots(ctx context.Context, userID int64, changeWindow time.Duration) ([]domain.CurrencySnapshot, error) {
	args := m.Called(ctx, userID, changeWindow)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencySnapshot), args.Error(1)
}

func (m *MockWatchlistRepository) AddEntry(ctx context.Context, userID, currencyID int64) (bool, error) {
	args := m.Called(ctx, userID, currencyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWatchlistRepository) RemoveEntry(ctx context.Context, userID, currencyID int64) (bool, error) {
	args := m.Called(ctx, userID, currencyID)
	return args.Bool(0), args.Error(1)
}

// --- User repository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Token service ---

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// memPriceStore is an in-memory price history with the same read semantics
// as the PostgreSQL repository. now plays the role of the database clock.
type memPriceStore struct {
	mu           sync.Mutex
	now          func() time.Time
	currencies   []domain.Currency
	observations []domain.PriceObservation
}

func newMemPriceStore(now func() time.Time) *memPriceStore {
	return &memPriceStore{now: now}
}

func (s *memPriceStore) addCurrency(code, name string, active bool) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := int64(len(s.currencies) + 1)
	s.currencies = append(s.currencies, domain.Currency{ID: id, Code: code, Name: name, IsActive: active})
	return id
}

func (s *memPriceStore) observe(currencyID, price int64, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observations = append(s.observations, domain.PriceObservation{
		ID:         int64(len(s.observations) + 1),
		CurrencyID: currencyID,
		Price:      price,
		CreatedAt:  at,
	})
}

func (s *memPriceStore) currencyByCode(code string) (domain.Currency, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.currencies {
		if c.Code == code {
			return c, true
		}
	}
	return domain.Currency{}, false
}

func (s *memPriceStore) observationsFor(currencyID int64) []domain.PriceObservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.PriceObservation
	for _, o := range s.observations {
		if o.CurrencyID == currencyID {
			out = append(out, o)
		}
	}
	return out
}

func (s *memPriceStore) ObservationAge(ctx context.Context) (time.Duration, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.observations) == 0 {
		return 0, false, nil
	}
	latest := s.observations[0].CreatedAt
	for _, o := range s.observations {
		if o.CreatedAt.After(latest) {
			latest = o.CreatedAt
		}
	}
	return s.now().Sub(latest), true, nil
}

func (s *memPriceStore) ListActiveSnapshots(ctx context.Context, changeWindow time.Duration) ([]domain.CurrencySnapshot, error) {
	referenceCutoff := s.now().Add(-changeWindow)
	s.mu.Lock()
	defer s.mu.Unlock()
	currencies := append([]domain.Currency(nil), s.currencies...)
	sort.Slice(currencies, func(i, j int) bool { return currencies[i].ID < currencies[j].ID })

	snapshots := make([]domain.CurrencySnapshot, 0, len(currencies))
	for _, c := range currencies {
		if !c.IsActive {
			continue
		}
		snap := domain.CurrencySnapshot{Currency: c}
		for i := range s.observations {
			o := s.observations[i]
			if o.CurrencyID != c.ID {
				continue
			}
			if snap.Latest == nil || newer(o, *snap.Latest) {
				snap.Latest = &o
			}
			if !o.CreatedAt.After(referenceCutoff) && (snap.Reference == nil || newer(o, *snap.Reference)) {
				snap.Reference = &o
			}
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, nil
}

func (s *memPriceStore) RecordQuotes(ctx context.Context, quotes []domain.PriceQuote) ([]domain.PriceObservation, error) {
	created := make([]domain.PriceObservation, 0, len(quotes))
	for _, q := range quotes {
		c, ok := s.currencyByCode(q.Code)
		if !ok {
			c.ID = s.addCurrency(q.Code, q.Name, true)
		}
		s.observe(c.ID, q.Price, s.now())
		obs := s.observationsFor(c.ID)
		created = append(created, obs[len(obs)-1])
	}
	return created, nil
}

func newer(a, b domain.PriceObservation) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID > b.ID
	}
	return a.CreatedAt.After(b.CreatedAt)
}
