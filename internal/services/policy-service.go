package services

import (
	"errors"

	"github.com/policyvault/policy-service/internal/domain"
	"github.com/policyvault/policy-service/internal/dto"
	"github.com/policyvault/policy-service/internal/helper/utils"
	"github.com/policyvault/policy-service/internal/repository"
)

type PolicyService interface {
	List(ownerID string) ([]domain.Policy, error)
	Get(id, ownerID string) (*domain.Policy, error)
	Create(ownerID string, input dto.PolicyCreateRequest) (*domain.Policy, error)
	Update(id, ownerID string, input dto.PolicyUpdateRequest) (*domain.Policy, error)
	Delete(id, ownerID string) error
}

type policyService struct {
	policies repository.PolicyRepository
	nominees repository.NomineeRepository
}

func NewPolicyService(policies repository.PolicyRepository, nominees repository.NomineeRepository) PolicyService {
	return &policyService{
		policies: policies,
		nominees: nominees,
	}
}

func (s *policyService) List(ownerID string) ([]domain.Policy, error) {
	return s.policies.FindAllByOwner(ownerID)
}

func (s *policyService) Get(id, ownerID string) (*domain.Policy, error) {
	return s.policies.FindByIDAndOwner(id, ownerID)
}

func (s *policyService) Create(ownerID string, input dto.PolicyCreateRequest) (*domain.Policy, error) {
	if input.Name == "" || input.Company == "" {
		return nil, errors.New("name and company are required")
	}
	if input.Value <= 0 || input.Premium <= 0 {
		return nil, errors.New("value and premium must be positive")
	}

	startDate, err := utils.ParseDate(input.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := utils.ParseDate(input.EndDate)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.PolicyStatusActive
	}
	if !domain.ValidPolicyStatus(status) {
		return nil, errors.New("unknown policy status")
	}

	return s.policies.Create(&domain.Policy{
		Name:      input.Name,
		Company:   input.Company,
		Value:     input.Value,
		Premium:   input.Premium,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    status,
		UserID:    ownerID,
	})
}

func (s *policyService) Update(id, ownerID string, input dto.PolicyUpdateRequest) (*domain.Policy, error) {
	if _, err := s.policies.FindByIDAndOwner(id, ownerID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Company != nil {
		fields["company"] = *input.Company
	}
	if input.Value != nil {
		if *input.Value <= 0 {
			return nil, errors.New("value must be positive")
		}
		fields["value"] = *input.Value
	}
	if input.Premium != nil {
		if *input.Premium <= 0 {
			return nil, errors.New("premium must be positive")
		}
		fields["premium"] = *input.Premium
	}
	if input.StartDate != nil {
		startDate, err := utils.ParseDate(*input.StartDate)
		if err != nil {
			return nil, err
		}
		fields["start_date"] = startDate
	}
	if input.EndDate != nil {
		endDate, err := utils.ParseDate(*input.EndDate)
		if err != nil {
			return nil, err
		}
		fields["end_date"] = endDate
	}
	if input.Status != nil {
		if !domain.ValidPolicyStatus(*input.Status) {
			return nil, errors.New("unknown policy status")
		}
		fields["status"] = *input.Status
	}

	return s.policies.Update(id, fields)
}

// Delete removes the policy's nominees before the policy itself, so the store
// can never hold a nominee whose policy is gone.
func (s *policyService) Delete(id, ownerID string) error {
	if _, err := s.policies.FindByIDAndOwner(id, ownerID); err != nil {
		return err
	}

	if err := s.nominees.DeleteAllByPolicyID(id); err != nil {
		return err
	}

	return s.policies.Delete(id)
}
