package comparison

import (
	"context"
	"errors"
	"strings"
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
	contract *entity.Contract
}

func (f *fakeContractRepo) Create(context.Context, *repository.CreateContractRequest) (*entity.Contract, error) {
	return nil, nil
}

func (f *fakeContractRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Contract, error) {
	if f.contract == nil || f.contract.ID != id {
		return nil, common.ErrNotFound
	}
	return f.contract, nil
}

func (f *fakeContractRepo) List(context.Context) ([]*entity.Contract, error) { return nil, nil }

func (f *fakeContractRepo) ListAnniversaryBetween(context.Context, time.Time, time.Time) ([]*entity.Contract, error) {
	return nil, nil
}

func (f *fakeContractRepo) Update(context.Context, uuid.UUID, map[string]any) (*entity.Contract, error) {
	return nil, nil
}

func (f *fakeContractRepo) Delete(context.Context, uuid.UUID) error { return nil }

type fakeComparisonRepo struct {
	created []*repository.CreateComparisonRequest
}

func (f *fakeComparisonRepo) Create(_ context.Context, req *repository.CreateComparisonRequest) (*entity.Comparison, error) {
	f.created = append(f.created, req)
	return &entity.Comparison{
		ID:                 uuid.New(),
		ContractID:         req.ContractID,
		ComparisonType:     string(req.ComparisonType),
		CompetitorFilename: req.CompetitorFilename,
		CompetitorData:     req.CompetitorData,
		ComparisonResult:   req.ComparisonResult,
		AnalysisSummary:    req.AnalysisSummary,
	}, nil
}

func (f *fakeComparisonRepo) ListForContract(context.Context, uuid.UUID) ([]*entity.Comparison, error) {
	return nil, nil
}

func (f *fakeComparisonRepo) ListAll(context.Context) ([]*entity.Comparison, error) {
	return nil, nil
}

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

type stubRunner struct {
	text string
}

func (r stubRunner) Run(_ context.Context, name string, _ ...string) ([]byte, []byte, error) {
	if name == "pdfinfo" {
		return []byte("Pages:          1\n"), nil, nil
	}
	return []byte(r.text), nil, nil
}

func storedContract() *entity.Contract {
	return &entity.Contract{
		ID:           uuid.New(),
		ContractType: string(constants.Electricite),
		Provider:     "EDF",
		ContractData: map[string]any{
			"fournisseur":             "EDF",
			"prix_abonnement_mensuel": 13.09,
		},
	}
}

func newTestService(contracts *fakeContractRepo, comparisons *fakeComparisonRepo, oracle llm.Oracle, pdfText string) *Service {
	norm := extraction.NewNormalizer(oracle, nil, nil)
	pdf := pdftext.NewExtractor(pdftext.Config{}, nil).WithRunner(stubRunner{text: pdfText})
	return NewService(contracts, comparisons, norm, pdf, oracle, nil)
}

func TestCompareWithMarket(t *testing.T) {
	contract := storedContract()
	contracts := &fakeContractRepo{contract: contract}
	comparisons := &fakeComparisonRepo{}
	oracle := &scriptedOracle{replies: []string{`{
		"analyse": {
			"economie_potentielle_annuelle": 120,
			"recommandation": "changer",
			"niveau_competitivite": "moyen"
		},
		"meilleure_offre": {"fournisseur": "TotalEnergies"}
	}`}}
	svc := newTestService(contracts, comparisons, oracle, "")

	comp, err := svc.CompareWithMarket(context.Background(), contract.ID)
	require.NoError(t, err)

	assert.Equal(t, string(constants.MarketAnalysis), comp.ComparisonType)
	// Summary comes from the nested analyse block.
	assert.Equal(t, "changer", comp.AnalysisSummary)

	require.Len(t, comparisons.created, 1)
	created := comparisons.created[0]
	assert.Equal(t, contract.ID, created.ContractID)
	assert.Equal(t, constants.MarketAnalysis, created.ComparisonType)
	assert.Empty(t, created.CompetitorFilename)
	assert.Contains(t, created.GPTPrompt, "marché français")
	assert.Contains(t, created.GPTPrompt, "EDF")

	require.Len(t, oracle.calls, 1)
	assert.True(t, oracle.calls[0].ForceJSON)
	assert.InDelta(t, 0.3, float64(oracle.calls[0].Temperature), 0.001)
}

func TestCompareWithMarketOracleFailurePersistsNothing(t *testing.T) {
	contract := storedContract()
	contracts := &fakeContractRepo{contract: contract}
	comparisons := &fakeComparisonRepo{}
	oracle := &scriptedOracle{err: errors.New("rate limited")}
	svc := newTestService(contracts, comparisons, oracle, "")

	_, err := svc.CompareWithMarket(context.Background(), contract.ID)
	var cerr *common.ComparisonError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "oracle", cerr.Stage)
	assert.Empty(t, comparisons.created)
}

func TestCompareWithMarketDecodeFailurePersistsNothing(t *testing.T) {
	contract := storedContract()
	contracts := &fakeContractRepo{contract: contract}
	comparisons := &fakeComparisonRepo{}
	oracle := &scriptedOracle{replies: []string{"je ne peux pas produire de JSON"}}
	svc := newTestService(contracts, comparisons, oracle, "")

	_, err := svc.CompareWithMarket(context.Background(), contract.ID)
	var cerr *common.ComparisonError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "decode", cerr.Stage)
	assert.Empty(t, comparisons.created)
}

func TestCompareWithMarketUnknownContract(t *testing.T) {
	contracts := &fakeContractRepo{}
	svc := newTestService(contracts, &fakeComparisonRepo{}, &scriptedOracle{}, "")

	_, err := svc.CompareWithMarket(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCompareWithCompetitor(t *testing.T) {
	contract := storedContract()
	contracts := &fakeContractRepo{contract: contract}
	comparisons := &fakeComparisonRepo{}
	// First oracle call extracts the competitor quote, the second renders
	// the verdict.
	oracle := &scriptedOracle{replies: []string{
		`{"fournisseur": "TotalEnergies", "electricite": {"pdl": "14552000000000"}}`,
		`{
			"comparaison_prix": {"economie_potentielle": 90},
			"recommandation": "changer pour concurrent",
			"score_global": {"contrat_actuel": 6, "offre_concurrente": 8}
		}`,
	}}
	svc := newTestService(contracts, comparisons, oracle, "OFFRE TOTALENERGIES\nPDL: 14552000000000")

	comp, err := svc.CompareWithCompetitor(context.Background(), contract.ID, []byte("%PDF-1.7"), "total.pdf")
	require.NoError(t, err)

	assert.Equal(t, string(constants.CompetitorQuote), comp.ComparisonType)
	assert.Equal(t, "total.pdf", comp.CompetitorFilename)
	assert.Equal(t, "changer pour concurrent", comp.AnalysisSummary)
	assert.Equal(t, "TotalEnergies", comp.CompetitorData["fournisseur"])

	require.Len(t, oracle.calls, 2)
	// The extraction call runs with the base contract's type.
	assert.Contains(t, oracle.calls[0].User, "contrat de type 'electricite'")
	assert.InDelta(t, 0.1, float64(oracle.calls[0].Temperature), 0.001)
	// The verdict call embeds both offers.
	assert.Contains(t, oracle.calls[1].User, "CONTRAT ACTUEL")
	assert.Contains(t, oracle.calls[1].User, "OFFRE CONCURRENTE")
	assert.InDelta(t, 0.2, float64(oracle.calls[1].Temperature), 0.001)

	require.Len(t, comparisons.created, 1)
	assert.Equal(t, []byte("%PDF-1.7"), comparisons.created[0].CompetitorPDF)
}

func TestCompareWithCompetitorExtractionFailure(t *testing.T) {
	contract := storedContract()
	contracts := &fakeContractRepo{contract: contract}
	comparisons := &fakeComparisonRepo{}
	oracle := &scriptedOracle{replies: []string{"pas du json"}}
	svc := newTestService(contracts, comparisons, oracle, "OFFRE")

	_, err := svc.CompareWithCompetitor(context.Background(), contract.ID, []byte("%PDF-1.7"), "x.pdf")
	var xerr *common.ExtractionError
	require.ErrorAs(t, err, &xerr)
	assert.Empty(t, comparisons.created)
}

func TestRecommendationFallsBackToTopLevel(t *testing.T) {
	assert.Equal(t, "garder", recommendation(map[string]any{"recommandation": "garder"}))
	assert.Equal(t, "changer", recommendation(map[string]any{
		"analyse":        map[string]any{"recommandation": "changer"},
		"recommandation": "garder",
	}))
	assert.Empty(t, recommendation(map[string]any{}))
}

func TestBuildMarketPromptPeriodAndShape(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	prompt := BuildMarketPrompt(constants.Gaz, map[string]any{"fournisseur": "Engie"}, now)

	assert.Contains(t, prompt, "janvier 2026")
	assert.Contains(t, prompt, `"analyse"`)
	assert.Contains(t, prompt, `"meilleure_offre"`)
	assert.Contains(t, prompt, `"Engie"`)
	// The offer shape is the canonical gas schema.
	assert.Contains(t, prompt, `"pce"`)
	assert.Equal(t, 1, strings.Count(prompt, "CONTRAT ACTUEL"))
}

func TestBuildCompetitorPromptEmbedsBothOffers(t *testing.T) {
	prompt := BuildCompetitorPrompt(constants.Telephone,
		map[string]any{"fournisseur": "Free"},
		map[string]any{"fournisseur": "Sosh"})

	assert.Contains(t, prompt, "deux contrats de type telephone")
	assert.Contains(t, prompt, `"Free"`)
	assert.Contains(t, prompt, `"Sosh"`)
	assert.Contains(t, prompt, "comparaison_prix")
	assert.Contains(t, prompt, "score_global")
}

func TestCurrentPeriodMonths(t *testing.T) {
	assert.Equal(t, "décembre 2025", currentPeriod(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "août 2026", currentPeriod(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)))
}
