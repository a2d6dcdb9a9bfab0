package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	contractspb "github.com/aperrin/gardetonor/gen/proto/contracts/v1"
	"github.com/aperrin/gardetonor/internal/common"
	"github.com/aperrin/gardetonor/internal/contracts"
	"github.com/aperrin/gardetonor/internal/entity"
	"github.com/aperrin/gardetonor/internal/extraction"
	"github.com/aperrin/gardetonor/internal/llm"
	"github.com/aperrin/gardetonor/internal/pdftext"
	"github.com/aperrin/gardetonor/internal/repository"
)

// stubContractRepo satisfies the repository interface for extraction
// tests; nothing is persisted on that path.
type stubContractRepo struct{}

func (stubContractRepo) Create(_ context.Context, req *repository.CreateContractRequest) (*entity.Contract, error) {
	return &entity.Contract{ID: uuid.New(), ContractType: string(req.ContractType)}, nil
}

func (stubContractRepo) GetByID(context.Context, uuid.UUID) (*entity.Contract, error) {
	return nil, common.ErrNotFound
}

func (stubContractRepo) List(context.Context) ([]*entity.Contract, error) { return nil, nil }

func (stubContractRepo) ListAnniversaryBetween(context.Context, time.Time, time.Time) ([]*entity.Contract, error) {
	return nil, nil
}

func (stubContractRepo) Update(context.Context, uuid.UUID, map[string]any) (*entity.Contract, error) {
	return nil, nil
}

func (stubContractRepo) Delete(context.Context, uuid.UUID) error { return nil }

// cannedOracle returns the same reply for every call.
type cannedOracle struct {
	reply string
}

func (o cannedOracle) ChatComplete(context.Context, llm.ChatRequest) (string, error) {
	return o.reply, nil
}

// popplerStub fakes poppler: pdfinfo reports one page, pdftotext
// returns the canned text.
type popplerStub struct {
	text string
}

func (r popplerStub) Run(_ context.Context, name string, _ ...string) ([]byte, []byte, error) {
	if name == "pdfinfo" {
		return []byte("Pages:          1\n"), nil, nil
	}
	return []byte(r.text), nil, nil
}

func newExtractTestServer(oracle llm.Oracle, docText string) *ContractsServer {
	norm := extraction.NewNormalizer(oracle, nil, nil)
	pdf := pdftext.NewExtractor(pdftext.Config{}, nil).WithRunner(popplerStub{text: docText})
	svc := contracts.NewService(stubContractRepo{}, norm, pdf, nil)
	return NewContractsServer(svc, nil, nil, 40, nil)
}

func TestParseID(t *testing.T) {
	want := uuid.New()
	got, err := parseID(" " + want.String() + " ")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = parseID("not-a-uuid")
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestDecodeJSONObject(t *testing.T) {
	m, err := decodeJSONObject(`{"fournisseur": "EDF"}`)
	require.NoError(t, err)
	assert.Equal(t, "EDF", m["fournisseur"])

	// Empty input means no data, not an error.
	m, err = decodeJSONObject("   ")
	require.NoError(t, err)
	assert.Empty(t, m)

	_, err = decodeJSONObject(`["liste"]`)
	assert.Error(t, err)
}

func TestExtractContractDualEnergyPrefill(t *testing.T) {
	srv := newExtractTestServer(cannedOracle{reply: `{
		"fournisseur": "TotalEnergies",
		"electricite": {"pdl": "14552000000000", "tarifs": {"abonnement_mensuel_ttc": 12.0, "prix_kwh_ttc": 0.2}, "consommation_estimee_annuelle_kwh": 4000},
		"gaz": {"pce": "GI099999", "tarifs": {"abonnement_mensuel_ttc": 8.0, "prix_kwh_ttc": 0.1}, "consommation_estimee_annuelle_kwh": 9000}
	}`}, "OFFRE DUO ELECTRICITE + GAZ")

	resp, err := srv.ExtractContract(context.Background(), &contractspb.ExtractContractRequest{
		PdfContent:   []byte("%PDF-1.7"),
		Filename:     "duo.pdf",
		ContractType: "auto",
	})
	require.NoError(t, err)
	assert.Equal(t, "electricite_gaz", resp.GetResolvedType())
	assert.Empty(t, resp.GetPrefilledData())

	// Each leg carries its own derived record, annual estimate included.
	elec, err := decodeJSONObject(resp.GetPrefilledElectricity())
	require.NoError(t, err)
	assert.Equal(t, "14552000000000", elec["pdl"])
	assert.InDelta(t, 944.0, elec["estimation_facture_annuelle"], 0.01)

	gaz, err := decodeJSONObject(resp.GetPrefilledGas())
	require.NoError(t, err)
	assert.Equal(t, "GI099999", gaz["pce"])
	assert.InDelta(t, 996.0, gaz["estimation_facture_annuelle"], 0.01)
}

func TestExtractContractSingleTypePrefill(t *testing.T) {
	srv := newExtractTestServer(cannedOracle{reply: `{
		"fournisseur": "Engie",
		"electricite": {"pdl": ""},
		"gaz": {"pce": "GI099999", "tarifs": {"abonnement_mensuel_ttc": 8.0, "prix_kwh_ttc": 0.1}, "consommation_estimee_annuelle_kwh": 9000}
	}`}, "CONTRAT GAZ NATUREL")

	resp, err := srv.ExtractContract(context.Background(), &contractspb.ExtractContractRequest{
		PdfContent:   []byte("%PDF-1.7"),
		Filename:     "engie.pdf",
		ContractType: "auto",
	})
	require.NoError(t, err)
	assert.Equal(t, "gaz", resp.GetResolvedType())
	assert.Empty(t, resp.GetPrefilledElectricity())
	assert.Empty(t, resp.GetPrefilledGas())

	data, err := decodeJSONObject(resp.GetPrefilledData())
	require.NoError(t, err)
	assert.Equal(t, "GI099999", data["pce"])
	assert.InDelta(t, 996.0, data["estimation_facture_annuelle"], 0.01)
}

func TestToEnergyLeg(t *testing.T) {
	leg, err := toEnergyLeg(&contractspb.EnergyLeg{
		Provider:        " TotalEnergies ",
		StartDate:       "2025-03-15",
		AnniversaryDate: "2026-03-15",
		ContractData:    `{"pdl": "14552000000000"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "TotalEnergies", leg.Provider)
	assert.Equal(t, "14552000000000", leg.ContractData["pdl"])

	_, err = toEnergyLeg(nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = toEnergyLeg(&contractspb.EnergyLeg{StartDate: "15/03/2025", AnniversaryDate: "2026-03-15"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestToPBWithCost(t *testing.T) {
	pb := toPBWithCost(&entity.Contract{
		ID:           uuid.New(),
		ContractType: "telephone",
		Provider:     "Free",
		ContractData: map[string]any{"prix_mensuel": 19.99},
	})
	assert.Equal(t, "19.99 €/mois", pb.CostDisplay)
}
