package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/aperrin/gardetonor/internal/entity"
	"github.com/aperrin/gardetonor/internal/repository"
)

type fakeContractRepo struct {
	contracts []*entity.Contract
}

func (f *fakeContractRepo) Create(context.Context, *repository.CreateContractRequest) (*entity.Contract, error) {
	return nil, nil
}

func (f *fakeContractRepo) GetByID(context.Context, uuid.UUID) (*entity.Contract, error) {
	return nil, nil
}

func (f *fakeContractRepo) List(context.Context) ([]*entity.Contract, error) {
	return f.contracts, nil
}

func (f *fakeContractRepo) ListAnniversaryBetween(context.Context, time.Time, time.Time) ([]*entity.Contract, error) {
	return nil, nil
}

func (f *fakeContractRepo) Update(context.Context, uuid.UUID, map[string]any) (*entity.Contract, error) {
	return nil, nil
}

func (f *fakeContractRepo) Delete(context.Context, uuid.UUID) error { return nil }

type fakeComparisonRepo struct {
	byContract map[uuid.UUID][]*entity.Comparison
}

func (f *fakeComparisonRepo) Create(context.Context, *repository.CreateComparisonRequest) (*entity.Comparison, error) {
	return nil, nil
}

func (f *fakeComparisonRepo) ListForContract(_ context.Context, id uuid.UUID) ([]*entity.Comparison, error) {
	return f.byContract[id], nil
}

func (f *fakeComparisonRepo) ListAll(context.Context) ([]*entity.Comparison, error) {
	return nil, nil
}

func TestContractsXLSX(t *testing.T) {
	id := uuid.New()
	start := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	contracts := &fakeContractRepo{contracts: []*entity.Contract{
		{
			ID:               id,
			ContractType:     "telephone",
			Provider:         "Free",
			StartDate:        start,
			AnniversaryDate:  start.AddDate(1, 0, 0),
			ContractData:     map[string]any{"prix_mensuel": 19.99},
			OriginalFilename: "free.pdf",
			Validated:        true,
		},
		{
			ID:              uuid.New(),
			ContractType:    "electricite",
			Provider:        "EDF",
			StartDate:       start,
			AnniversaryDate: start.AddDate(1, 0, 0),
			// No resolvable cost field at all.
			ContractData: map[string]any{},
			IsSimulation: true,
		},
	}}
	comparisons := &fakeComparisonRepo{byContract: map[uuid.UUID][]*entity.Comparison{
		id: {{ComparisonResult: map[string]any{"economie_potentielle_annuelle": 60.0}}},
	}}

	svc := NewService(contracts, comparisons, nil)
	content, err := svc.ContractsXLSX(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Contrats")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Type", rows[0][0])
	assert.Equal(t, "Économie potentielle (€/an)", rows[0][6])

	tel := rows[1]
	assert.Equal(t, "telephone", tel[0])
	assert.Equal(t, "Free", tel[1])
	assert.Equal(t, "19.99 €/mois", tel[2])
	assert.Equal(t, "15/03/2025", tel[4])
	assert.Equal(t, "60", tel[6])
	assert.Equal(t, "oui", tel[7])
	assert.Equal(t, "non", tel[8])
	assert.Equal(t, "free.pdf", tel[9])

	elec := rows[2]
	assert.Equal(t, "N/A", elec[2])
	assert.Equal(t, "oui", elec[8])
}

func TestContractsXLSXEmpty(t *testing.T) {
	svc := NewService(&fakeContractRepo{}, &fakeComparisonRepo{}, nil)
	content, err := svc.ContractsXLSX(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Contrats")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
