package services

import (
	"errors"
	"testing"

	"github.com/policyvault/policy-service/internal/dto"
	"github.com/policyvault/policy-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPolicyFixture() (PolicyService, NomineeService, *repository.InMemoryPolicyRepository, *repository.InMemoryNomineeRepository) {
	policies := repository.NewInMemoryPolicyRepository()
	nominees := repository.NewInMemoryNomineeRepository()
	return NewPolicyService(policies, nominees), NewNomineeService(nominees, policies, nil), policies, nominees
}

func validPolicy() dto.PolicyCreateRequest {
	return dto.PolicyCreateRequest{
		Name:      "Term",
		Company:   "Demo Insurance",
		Value:     1000,
		Premium:   10,
		StartDate: "2026-01-01",
		EndDate:   "2036-01-01",
	}
}

func TestPolicyCreateDefaultsStatus(t *testing.T) {
	svc, _, _, _ := newPolicyFixture()

	policy, err := svc.Create("owner-a", validPolicy())
	require.NoError(t, err)
	assert.Equal(t, "Active", policy.Status)
	assert.Equal(t, "owner-a", policy.UserID)
	assert.NotEmpty(t, policy.ID)
}

func TestPolicyCreateRejectsBadInput(t *testing.T) {
	svc, _, _, _ := newPolicyFixture()

	missing := validPolicy()
	missing.Company = ""
	_, err := svc.Create("owner-a", missing)
	assert.Error(t, err)

	negative := validPolicy()
	negative.Value = -5
	_, err = svc.Create("owner-a", negative)
	assert.Error(t, err)

	badDate := validPolicy()
	badDate.StartDate = "soon"
	_, err = svc.Create("owner-a", badDate)
	assert.Error(t, err)

	badStatus := validPolicy()
	badStatus.Status = "Expired"
	_, err = svc.Create("owner-a", badStatus)
	assert.Error(t, err)
}

func TestPolicyGetIsOwnerScoped(t *testing.T) {
	svc, _, _, _ := newPolicyFixture()
	created, err := svc.Create("owner-a", validPolicy())
	require.NoError(t, err)

	_, err = svc.Get(created.ID, "owner-a")
	assert.NoError(t, err)

	_, err = svc.Get(created.ID, "owner-b")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestPolicyUpdatePartialAndImmutableOwner(t *testing.T) {
	svc, _, _, _ := newPolicyFixture()
	created, err := svc.Create("owner-a", validPolicy())
	require.NoError(t, err)

	newName := "Whole Life"
	updated, err := svc.Update(created.ID, "owner-a", dto.PolicyUpdateRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Whole Life", updated.Name)
	assert.Equal(t, created.Company, updated.Company)
	assert.Equal(t, created.Value, updated.Value)
	assert.Equal(t, "owner-a", updated.UserID)
	assert.Equal(t, created.ID, updated.ID)
}

func TestPolicyUpdateForeignOwnerIsNotFound(t *testing.T) {
	svc, _, _, _ := newPolicyFixture()
	created, err := svc.Create("owner-a", validPolicy())
	require.NoError(t, err)

	name := "Hijack"
	_, err = svc.Update(created.ID, "owner-b", dto.PolicyUpdateRequest{Name: &name})
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestPolicyDeleteCascades(t *testing.T) {
	policySvc, nomineeSvc, _, nominees := newPolicyFixture()

	doomed, err := policySvc.Create("owner-a", validPolicy())
	require.NoError(t, err)
	keeper, err := policySvc.Create("owner-a", validPolicy())
	require.NoError(t, err)

	for _, policyID := range []string{doomed.ID, doomed.ID, keeper.ID} {
		_, err := nomineeSvc.Create("owner-a", dto.NomineeCreateRequest{
			Name:         "n",
			Relationship: "Spouse",
			Email:        "n@example.com",
			Phone:        "5551234",
			PolicyID:     policyID,
		})
		require.NoError(t, err)
	}

	require.NoError(t, policySvc.Delete(doomed.ID, "owner-a"))

	orphans, err := nominees.FindAllByPolicyID(doomed.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	survivors, err := nominees.FindAllByPolicyID(keeper.ID)
	require.NoError(t, err)
	assert.Len(t, survivors, 1)

	_, err = policySvc.Get(doomed.ID, "owner-a")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestPolicyDeleteForeignOwnerLeavesEverything(t *testing.T) {
	policySvc, nomineeSvc, _, nominees := newPolicyFixture()

	created, err := policySvc.Create("owner-a", validPolicy())
	require.NoError(t, err)
	_, err = nomineeSvc.Create("owner-a", dto.NomineeCreateRequest{
		Name: "n", Relationship: "Spouse", Email: "n@example.com", Phone: "5551234", PolicyID: created.ID,
	})
	require.NoError(t, err)

	err = policySvc.Delete(created.ID, "owner-b")
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	remaining, err := nominees.FindAllByPolicyID(created.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
