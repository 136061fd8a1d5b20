package services

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/policyvault/policy-service/internal/domain"
	"github.com/policyvault/policy-service/internal/dto"
	"github.com/policyvault/policy-service/internal/interfaces"
	"github.com/policyvault/policy-service/internal/repository"
)

type NomineeService interface {
	List(ownerID string) ([]domain.Nominee, error)
	ListForPolicy(policyID, ownerID string) ([]domain.Nominee, error)
	Create(ownerID string, input dto.NomineeCreateRequest) (*domain.Nominee, error)
	Update(id, ownerID string, input dto.NomineeUpdateRequest) (*domain.Nominee, error)
	Verify(id, ownerID string) (*domain.Nominee, error)
	Delete(id, ownerID string) error
}

type nomineeService struct {
	nominees repository.NomineeRepository
	policies repository.PolicyRepository
	producer interfaces.ProducerHandler
}

func NewNomineeService(nominees repository.NomineeRepository, policies repository.PolicyRepository, producer interfaces.ProducerHandler) NomineeService {
	return &nomineeService{
		nominees: nominees,
		policies: policies,
		producer: producer,
	}
}

func (s *nomineeService) List(ownerID string) ([]domain.Nominee, error) {
	return s.nominees.FindAllByOwner(ownerID)
}

// ListForPolicy checks policy ownership first; a foreign policy reads as not
// found, never as forbidden.
func (s *nomineeService) ListForPolicy(policyID, ownerID string) ([]domain.Nominee, error) {
	if _, err := s.policies.FindByIDAndOwner(policyID, ownerID); err != nil {
		return nil, err
	}
	return s.nominees.FindAllByPolicyID(policyID)
}

func (s *nomineeService) Create(ownerID string, input dto.NomineeCreateRequest) (*domain.Nominee, error) {
	if input.Name == "" || input.Relationship == "" || input.Email == "" || input.Phone == "" {
		return nil, errors.New("name, relationship, email, and phone are required")
	}

	// Reject malformed references before touching the store.
	if _, err := uuid.Parse(input.PolicyID); err != nil {
		return nil, ErrInvalidPolicyRef
	}

	if _, err := s.policies.FindByIDAndOwner(input.PolicyID, ownerID); err != nil {
		return nil, err
	}

	return s.nominees.Create(&domain.Nominee{
		Name:         input.Name,
		Relationship: input.Relationship,
		Email:        input.Email,
		Phone:        input.Phone,
		PolicyID:     input.PolicyID,
		UserID:       ownerID,
	})
}

func (s *nomineeService) Update(id, ownerID string, input dto.NomineeUpdateRequest) (*domain.Nominee, error) {
	if _, err := s.nominees.FindByIDAndOwner(id, ownerID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Relationship != nil {
		fields["relationship"] = *input.Relationship
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}
	if input.Verified != nil {
		fields["verified"] = *input.Verified
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}

	return s.nominees.Update(id, fields)
}

// Verify flips the flag one way only; repeating it is a no-op, not an error.
func (s *nomineeService) Verify(id, ownerID string) (*domain.Nominee, error) {
	if _, err := s.nominees.FindByIDAndOwner(id, ownerID); err != nil {
		return nil, err
	}

	nominee, err := s.nominees.Update(id, map[string]interface{}{"verified": true})
	if err != nil {
		return nil, err
	}

	s.publishVerified(nominee)

	return nominee, nil
}

func (s *nomineeService) Delete(id, ownerID string) error {
	if _, err := s.nominees.FindByIDAndOwner(id, ownerID); err != nil {
		return err
	}
	return s.nominees.Delete(id)
}

func (s *nomineeService) publishVerified(nominee *domain.Nominee) {
	if s.producer == nil {
		return
	}

	payload, err := json.Marshal(dto.NomineeVerifiedEvent{
		NomineeID:  nominee.ID,
		PolicyID:   nominee.PolicyID,
		Email:      nominee.Email,
		VerifiedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}

	if err := s.producer.PublishMessage([]byte("nominee.verified"), payload); err != nil {
		log.Printf("publish nominee.verified event: %v", err)
	}
}
