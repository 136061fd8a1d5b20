package repository

import (
	"errors"
	"log"

	"github.com/policyvault/policy-service/internal/domain"
	"gorm.io/gorm"
)

type NomineeRepository interface {
	Create(nominee *domain.Nominee) (*domain.Nominee, error)
	FindAllByOwner(ownerID string) ([]domain.Nominee, error)
	FindAllByPolicyID(policyID string) ([]domain.Nominee, error)
	FindByIDAndOwner(id, ownerID string) (*domain.Nominee, error)
	Update(id string, fields map[string]interface{}) (*domain.Nominee, error)
	Delete(id string) error
	DeleteAllByPolicyID(policyID string) error
}

type nomineeRepository struct {
	db *gorm.DB
}

func NewNomineeRepository(db *gorm.DB) NomineeRepository {
	return &nomineeRepository{db: db}
}

func (r *nomineeRepository) Create(nominee *domain.Nominee) (*domain.Nominee, error) {
	if nominee == nil {
		return nil, errors.New("nil nominee")
	}

	if err := r.db.Create(nominee).Error; err != nil {
		log.Printf("create nominee error: %v", err)
		return nil, err
	}

	return nominee, nil
}

func (r *nomineeRepository) FindAllByOwner(ownerID string) ([]domain.Nominee, error) {
	nominees := []domain.Nominee{}

	if err := r.db.Find(&nominees, "user_id = ?", ownerID).Error; err != nil {
		log.Printf("list nominees error: %v", err)
		return nil, err
	}

	return nominees, nil
}

// FindAllByPolicyID assumes the caller has already established ownership of
// the policy.
func (r *nomineeRepository) FindAllByPolicyID(policyID string) ([]domain.Nominee, error) {
	nominees := []domain.Nominee{}

	if err := r.db.Find(&nominees, "policy_id = ?", policyID).Error; err != nil {
		log.Printf("list nominees by policy error: %v", err)
		return nil, err
	}

	return nominees, nil
}

func (r *nomineeRepository) FindByIDAndOwner(id, ownerID string) (*domain.Nominee, error) {
	nominee := &domain.Nominee{}

	err := r.db.First(nominee, "id = ? AND user_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("find nominee error: %v", err)
		return nil, err
	}

	return nominee, nil
}

func (r *nomineeRepository) Update(id string, fields map[string]interface{}) (*domain.Nominee, error) {
	delete(fields, "id")
	delete(fields, "user_id")
	delete(fields, "policy_id")

	if len(fields) > 0 {
		if err := r.db.Model(&domain.Nominee{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			log.Printf("update nominee error: %v", err)
			return nil, err
		}
	}

	nominee := &domain.Nominee{}
	if err := r.db.First(nominee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return nominee, nil
}

func (r *nomineeRepository) Delete(id string) error {
	if err := r.db.Delete(&domain.Nominee{}, "id = ?", id).Error; err != nil {
		log.Printf("delete nominee error: %v", err)
		return err
	}
	return nil
}

// DeleteAllByPolicyID exists for the cascade: nominees go first so a crash
// mid-delete can never leave orphans behind a surviving policy.
func (r *nomineeRepository) DeleteAllByPolicyID(policyID string) error {
	if err := r.db.Delete(&domain.Nominee{}, "policy_id = ?", policyID).Error; err != nil {
		log.Printf("cascade delete nominees error: %v", err)
		return err
	}
	return nil
}
