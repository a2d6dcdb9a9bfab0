package contracts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aperrin/gardetonor/constants"
	"github.com/aperrin/gardetonor/internal/common"
	"github.com/aperrin/gardetonor/internal/entity"
	"github.com/aperrin/gardetonor/internal/extraction"
	"github.com/aperrin/gardetonor/internal/llm"
	"github.com/aperrin/gardetonor/internal/pdftext"
	"github.com/aperrin/gardetonor/internal/repository"
)

type fakeContractRepo struct {
	created []*repository.CreateContractRequest
	failOn  constants.ContractType
	between [2]time.Time
	byID    map[uuid.UUID]*entity.Contract
}

func (f *fakeContractRepo) Create(_ context.Context, req *repository.CreateContractRequest) (*entity.Contract, error) {
	if f.failOn != "" && req.ContractType == f.failOn {
		return nil, errors.New("boom")
	}
	f.created = append(f.created, req)
	return &entity.Contract{
		ID:              uuid.New(),
		ContractType:    string(req.ContractType),
		Provider:        req.Provider,
		StartDate:       req.StartDate,
		AnniversaryDate: req.AnniversaryDate,
		ContractData:    req.ContractData,
		Validated:       req.Validated,
	}, nil
}

func (f *fakeContractRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Contract, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeContractRepo) List(context.Context) ([]*entity.Contract, error) { return nil, nil }

func (f *fakeContractRepo) ListAnniversaryBetween(_ context.Context, from, to time.Time) ([]*entity.Contract, error) {
	f.between = [2]time.Time{from, to}
	return nil, nil
}

func (f *fakeContractRepo) Update(context.Context, uuid.UUID, map[string]any) (*entity.Contract, error) {
	return nil, nil
}

func (f *fakeContractRepo) Delete(context.Context, uuid.UUID) error { return nil }

// scriptedOracle replays canned replies in order.
type scriptedOracle struct {
	replies []string
	err     error
	calls   []llm.ChatRequest
}

func (o *scriptedOracle) ChatComplete(_ context.Context, req llm.ChatRequest) (string, error) {
	o.calls = append(o.calls, req)
	if o.err != nil {
		return "", o.err
	}
	reply := o.replies[0]
	if len(o.replies) > 1 {
		o.replies = o.replies[1:]
	}
	return reply, nil
}

// stubRunner fakes poppler: pdfinfo reports one page, pdftotext returns
// the canned text.
type stubRunner struct {
	text string
}

func (r stubRunner) Run(_ context.Context, name string, _ ...string) ([]byte, []byte, error) {
	if name == "pdfinfo" {
		return []byte("Pages:          1\n"), nil, nil
	}
	return []byte(r.text), nil, nil
}

func newTestService(repo *fakeContractRepo, oracle llm.Oracle, text string) *Service {
	norm := extraction.NewNormalizer(oracle, nil, nil)
	pdf := pdftext.NewExtractor(pdftext.Config{}, nil).WithRunner(stubRunner{text: text})
	return NewService(repo, norm, pdf, nil)
}

func TestCreateValidation(t *testing.T) {
	repo := &fakeContractRepo{}
	svc := NewService(repo, nil, nil, nil)
	start := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(context.Background(), CreateRequest{
		ContractType:    "velo",
		Provider:        "EDF",
		StartDate:       start,
		AnniversaryDate: start.AddDate(1, 0, 0),
	})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.Create(context.Background(), CreateRequest{
		ContractType:    constants.Electricite,
		StartDate:       start,
		AnniversaryDate: start.AddDate(1, 0, 0),
	})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.Create(context.Background(), CreateRequest{
		ContractType: constants.Electricite,
		Provider:     "EDF",
	})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	assert.Empty(t, repo.created)
}

func TestCreateMarksValidated(t *testing.T) {
	repo := &fakeContractRepo{}
	svc := NewService(repo, nil, nil, nil)
	start := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	c, err := svc.Create(context.Background(), CreateRequest{
		ContractType:    constants.Gaz,
		Provider:        "Engie",
		StartDate:       start,
		AnniversaryDate: start.AddDate(1, 0, 0),
		ContractData:    map[string]any{"pce": "GI099999"},
	})
	require.NoError(t, err)
	assert.True(t, c.Validated)
	require.Len(t, repo.created, 1)
	assert.True(t, repo.created[0].Validated)
}

func TestCreateDualEnergyPartialFailure(t *testing.T) {
	repo := &fakeContractRepo{failOn: constants.Gaz}
	svc := NewService(repo, nil, nil, nil)
	start := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	leg := EnergyLeg{
		Provider:        "TotalEnergies",
		StartDate:       start,
		AnniversaryDate: start.AddDate(1, 0, 0),
	}

	elec, gaz, err := svc.CreateDualEnergy(context.Background(), DualEnergyRequest{
		Electricity: leg,
		Gas:         leg,
	})
	require.Error(t, err)
	assert.Nil(t, gaz)
	// The electricity leg is already persisted and is returned so the
	// caller can surface the partial state.
	require.NotNil(t, elec)
	assert.Equal(t, string(constants.Electricite), elec.ContractType)
	require.Len(t, repo.created, 1)
	assert.Equal(t, constants.Electricite, repo.created[0].ContractType)
}

func TestCreateDualEnergyBothLegs(t *testing.T) {
	repo := &fakeContractRepo{}
	svc := NewService(repo, nil, nil, nil)
	start := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	leg := EnergyLeg{
		Provider:        "TotalEnergies",
		StartDate:       start,
		AnniversaryDate: start.AddDate(1, 0, 0),
	}

	elec, gaz, err := svc.CreateDualEnergy(context.Background(), DualEnergyRequest{
		Electricity: leg,
		Gas:         leg,
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.Electricite), elec.ContractType)
	assert.Equal(t, string(constants.Gaz), gaz.ContractType)
	assert.Len(t, repo.created, 2)
}

func TestListNeedingAttentionWindow(t *testing.T) {
	repo := &fakeContractRepo{}
	svc := NewService(repo, nil, nil, nil)

	_, err := svc.ListNeedingAttention(context.Background(), 40)
	require.NoError(t, err)

	window := repo.between[1].Sub(repo.between[0])
	assert.InDelta(t, 40*24, window.Hours(), 1)
	// Past anniversaries are excluded: the window starts now, not at zero.
	assert.WithinDuration(t, time.Now(), repo.between[0], time.Minute)
}

func TestExtractAndPrepareAutoDetection(t *testing.T) {
	repo := &fakeContractRepo{}
	oracle := &scriptedOracle{replies: []string{
		`{"fournisseur": "Engie", "gaz": {"pce": "GI099999"}, "electricite": {"pdl": ""}}`,
	}}
	svc := newTestService(repo, oracle, "CONTRAT GAZ NATUREL\nPCE: GI099999")

	prepared, err := svc.ExtractAndPrepare(context.Background(), []byte("%PDF-1.7"), "engie.pdf", constants.AutoDetect)
	require.NoError(t, err)
	assert.Equal(t, constants.Gaz, prepared.ResolvedType)
	assert.Equal(t, "Engie", prepared.Data["fournisseur"])
	assert.Contains(t, prepared.DocumentText, "GI099999")
}

func TestExtractAndPrepareKeepsExplicitType(t *testing.T) {
	repo := &fakeContractRepo{}
	oracle := &scriptedOracle{replies: []string{`{"fournisseur": "Free"}`}}
	svc := newTestService(repo, oracle, "FORFAIT MOBILE")

	prepared, err := svc.ExtractAndPrepare(context.Background(), []byte("%PDF-1.7"), "free.pdf", constants.Telephone)
	require.NoError(t, err)
	assert.Equal(t, constants.Telephone, prepared.ResolvedType)
}

func TestExtractAndPrepareOracleFailure(t *testing.T) {
	repo := &fakeContractRepo{}
	oracle := &scriptedOracle{err: errors.New("rate limited")}
	svc := newTestService(repo, oracle, "CONTRAT")

	_, err := svc.ExtractAndPrepare(context.Background(), []byte("%PDF-1.7"), "x.pdf", constants.Telephone)
	var xerr *common.ExtractionError
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, "oracle", xerr.Stage)
}
