package repository

import (
	"errors"
	"log"

	"github.com/policyvault/policy-service/internal/domain"
	"gorm.io/gorm"
)

type PolicyRepository interface {
	Create(policy *domain.Policy) (*domain.Policy, error)
	FindAllByOwner(ownerID string) ([]domain.Policy, error)
	FindByIDAndOwner(id, ownerID string) (*domain.Policy, error)
	Update(id string, fields map[string]interface{}) (*domain.Policy, error)
	Delete(id string) error
}

type policyRepository struct {
	db *gorm.DB
}

func NewPolicyRepository(db *gorm.DB) PolicyRepository {
	return &policyRepository{db: db}
}

func (r *policyRepository) Create(policy *domain.Policy) (*domain.Policy, error) {
	if policy == nil {
		return nil, errors.New("nil policy")
	}

	if err := r.db.Create(policy).Error; err != nil {
		log.Printf("create policy error: %v", err)
		return nil, err
	}

	return policy, nil
}

func (r *policyRepository) FindAllByOwner(ownerID string) ([]domain.Policy, error) {
	policies := []domain.Policy{}

	if err := r.db.Find(&policies, "user_id = ?", ownerID).Error; err != nil {
		log.Printf("list policies error: %v", err)
		return nil, err
	}

	return policies, nil
}

// FindByIDAndOwner is the single authorization primitive: a policy owned by
// another account comes back as ErrNotFound, same as a missing one.
func (r *policyRepository) FindByIDAndOwner(id, ownerID string) (*domain.Policy, error) {
	policy := &domain.Policy{}

	err := r.db.First(policy, "id = ? AND user_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("find policy error: %v", err)
		return nil, err
	}

	return policy, nil
}

func (r *policyRepository) Update(id string, fields map[string]interface{}) (*domain.Policy, error) {
	delete(fields, "id")
	delete(fields, "user_id")

	if len(fields) > 0 {
		if err := r.db.Model(&domain.Policy{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			log.Printf("update policy error: %v", err)
			return nil, err
		}
	}

	policy := &domain.Policy{}
	if err := r.db.First(policy, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return policy, nil
}

func (r *policyRepository) Delete(id string) error {
	if err := r.db.Delete(&domain.Policy{}, "id = ?", id).Error; err != nil {
		log.Printf("delete policy error: %v", err)
		return err
	}
	return nil
}
