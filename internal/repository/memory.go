package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/policyvault/policy-service/internal/domain"
)

// In-memory repositories back the test suites and local development without a
// database. They intentionally favor clarity over performance.

var (
	_ UserRepository    = (*InMemoryUserRepository)(nil)
	_ PolicyRepository  = (*InMemoryPolicyRepository)(nil)
	_ NomineeRepository = (*InMemoryNomineeRepository)(nil)
)

func toTime(v interface{}) time.Time {
	if t, ok := v.(time.Time); ok {
		return t
	}
	return time.Time{}
}

type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[string]domain.User)}
}

func (r *InMemoryUserRepository) CreateUser(user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, ErrDuplicateEmail
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = *user
	stored := r.users[user.ID]
	return &stored, nil
}

func (r *InMemoryUserRepository) FindUserByEmail(email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryUserRepository) FindUserByID(id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if user, ok := r.users[id]; ok {
		u := user
		return &u, nil
	}
	return nil, ErrNotFound
}

type InMemoryPolicyRepository struct {
	mu       sync.RWMutex
	policies map[string]domain.Policy
}

func NewInMemoryPolicyRepository() *InMemoryPolicyRepository {
	return &InMemoryPolicyRepository{policies: make(map[string]domain.Policy)}
}

func (r *InMemoryPolicyRepository) Create(policy *domain.Policy) (*domain.Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if policy.ID == "" {
		policy.ID = uuid.NewString()
	}
	if policy.Status == "" {
		policy.Status = domain.PolicyStatusActive
	}
	r.policies[policy.ID] = *policy
	stored := r.policies[policy.ID]
	return &stored, nil
}

func (r *InMemoryPolicyRepository) FindAllByOwner(ownerID string) ([]domain.Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.Policy{}
	for _, p := range r.policies {
		if p.UserID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryPolicyRepository) FindByIDAndOwner(id, ownerID string) (*domain.Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.policies[id]; ok && p.UserID == ownerID {
		stored := p
		return &stored, nil
	}
	return nil, ErrNotFound
}

func (r *InMemoryPolicyRepository) Update(id string, fields map[string]interface{}) (*domain.Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.policies[id]
	if !ok {
		return nil, ErrNotFound
	}
	for column, value := range fields {
		switch column {
		case "name":
			p.Name = value.(string)
		case "company":
			p.Company = value.(string)
		case "value":
			p.Value = value.(float64)
		case "premium":
			p.Premium = value.(float64)
		case "start_date":
			p.StartDate = toTime(value)
		case "end_date":
			p.EndDate = toTime(value)
		case "status":
			p.Status = value.(string)
		}
	}
	r.policies[id] = p
	stored := r.policies[id]
	return &stored, nil
}

func (r *InMemoryPolicyRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.policies, id)
	return nil
}

type InMemoryNomineeRepository struct {
	mu       sync.RWMutex
	nominees map[string]domain.Nominee
}

func NewInMemoryNomineeRepository() *InMemoryNomineeRepository {
	return &InMemoryNomineeRepository{nominees: make(map[string]domain.Nominee)}
}

func (r *InMemoryNomineeRepository) Create(nominee *domain.Nominee) (*domain.Nominee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if nominee.ID == "" {
		nominee.ID = uuid.NewString()
	}
	if nominee.Status == "" {
		nominee.Status = "Active"
	}
	r.nominees[nominee.ID] = *nominee
	stored := r.nominees[nominee.ID]
	return &stored, nil
}

func (r *InMemoryNomineeRepository) FindAllByOwner(ownerID string) ([]domain.Nominee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.Nominee{}
	for _, n := range r.nominees {
		if n.UserID == ownerID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *InMemoryNomineeRepository) FindAllByPolicyID(policyID string) ([]domain.Nominee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.Nominee{}
	for _, n := range r.nominees {
		if n.PolicyID == policyID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *InMemoryNomineeRepository) FindByIDAndOwner(id, ownerID string) (*domain.Nominee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if n, ok := r.nominees[id]; ok && n.UserID == ownerID {
		stored := n
		return &stored, nil
	}
	return nil, ErrNotFound
}

func (r *InMemoryNomineeRepository) Update(id string, fields map[string]interface{}) (*domain.Nominee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.nominees[id]
	if !ok {
		return nil, ErrNotFound
	}
	for column, value := range fields {
		switch column {
		case "name":
			n.Name = value.(string)
		case "relationship":
			n.Relationship = value.(string)
		case "email":
			n.Email = value.(string)
		case "phone":
			n.Phone = value.(string)
		case "verified":
			n.Verified = value.(bool)
		case "status":
			n.Status = value.(string)
		}
	}
	r.nominees[id] = n
	stored := r.nominees[id]
	return &stored, nil
}

func (r *InMemoryNomineeRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.nominees, id)
	return nil
}

func (r *InMemoryNomineeRepository) DeleteAllByPolicyID(policyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, n := range r.nominees {
		if n.PolicyID == policyID {
			delete(r.nominees, id)
		}
	}
	return nil
}
