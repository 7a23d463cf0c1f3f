package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/amitxthedev/Zenox-Dev-Apis/domain"
	"github.com/amitxthedev/Zenox-Dev-Apis/models"
)

// InMemoryUserStore is a map-backed UserStore with the same error semantics
// as the Postgres one. Used by the service and handler tests.
type InMemoryUserStore struct {
	mu     sync.RWMutex
	nextID uint
	users  map[uint]models.User
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{nextID: 1, users: make(map[uint]models.User)}
}

func (s *InMemoryUserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return fmt.Errorf("%w: email already exists", domain.ErrConflict)
		}
	}
	user.ID = s.nextID
	s.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *InMemoryUserStore) GetByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("%w: user", domain.ErrNotFound)
}

func (s *InMemoryUserStore) GetByID(id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user", domain.ErrNotFound)
	}
	user := u
	return &user, nil
}

// InMemoryLeadStore is a map-backed LeadStore mirroring the filter, ordering
// and error semantics of the Postgres one.
type InMemoryLeadStore struct {
	mu     sync.RWMutex
	nextID uint
	leads  map[uint]models.Lead
}

func NewInMemoryLeadStore() *InMemoryLeadStore {
	return &InMemoryLeadStore{nextID: 1, leads: make(map[uint]models.Lead)}
}

func (s *InMemoryLeadStore) List(filter LeadFilter) ([]models.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	out := make([]models.Lead, 0, len(s.leads))
	for _, lead := range s.leads {
		if filter.Status != "" && lead.Status != filter.Status {
			continue
		}
		if filter.Category != "" && lead.Category != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(lead.BusinessName), search) &&
			!strings.Contains(strings.ToLower(lead.Phone), search) {
			continue
		}
		out = append(out, lead)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *InMemoryLeadStore) GetByID(id uint) (*models.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.leads[id]
	if !ok {
		return nil, fmt.Errorf("%w: lead", domain.ErrNotFound)
	}
	lead := l
	return &lead, nil
}

func (s *InMemoryLeadStore) Create(lead *models.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lead.ID = s.nextID
	s.nextID++
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}
	s.leads[lead.ID] = *lead
	return nil
}

func (s *InMemoryLeadStore) Update(lead *models.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.leads[lead.ID]; !ok {
		return fmt.Errorf("%w: lead", domain.ErrNotFound)
	}
	s.leads[lead.ID] = *lead
	return nil
}

func (s *InMemoryLeadStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.leads[id]; !ok {
		return fmt.Errorf("%w: lead", domain.ErrNotFound)
	}
	delete(s.leads, id)
	return nil
}
