package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aperrin/gardetonor/constants"
	"github.com/aperrin/gardetonor/internal/common"
	"github.com/aperrin/gardetonor/internal/entity"
	"github.com/aperrin/gardetonor/internal/llm"
)

type fakeOracle struct {
	reply string
	err   error
	last  llm.ChatRequest
}

func (o *fakeOracle) ChatComplete(_ context.Context, req llm.ChatRequest) (string, error) {
	o.last = req
	return o.reply, o.err
}

type memLogStore struct {
	entries []*entity.ExtractionLog
	err     error
}

func (s *memLogStore) LogSuccess(_ context.Context, log *entity.ExtractionLog) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, log)
	return nil
}

func TestExtractSuccessLogsOnce(t *testing.T) {
	oracle := &fakeOracle{reply: "```json\n{\"fournisseur\": \"EDF\"}\n```"}
	logs := &memLogStore{}
	n := NewNormalizer(oracle, logs, nil)

	res, err := n.Extract(context.Background(), "CONTRAT EDF", constants.Electricite, "edf.pdf")
	require.NoError(t, err)
	assert.Equal(t, "EDF", res.Data["fournisseur"])
	assert.NotEmpty(t, res.Prompt)
	assert.Equal(t, oracle.reply, res.RawResponse)

	require.Len(t, logs.entries, 1)
	entry := logs.entries[0]
	assert.Equal(t, "edf.pdf", entry.Filename)
	assert.Equal(t, "electricite", entry.ContractType)
	assert.True(t, entry.Success)
	assert.Equal(t, res.Prompt, entry.GPTPrompt)
}

func TestExtractOracleRequestShape(t *testing.T) {
	oracle := &fakeOracle{reply: `{}`}
	n := NewNormalizer(oracle, nil, nil)

	_, err := n.Extract(context.Background(), "texte", constants.Gaz, "x.pdf")
	require.NoError(t, err)

	assert.True(t, oracle.last.ForceJSON)
	assert.InDelta(t, 0.1, float64(oracle.last.Temperature), 0.001)
	assert.Contains(t, oracle.last.System, "assistant expert en analyse de contrats")
	assert.Contains(t, oracle.last.User, "texte")
}

func TestExtractDecodeErrorNotLogged(t *testing.T) {
	oracle := &fakeOracle{reply: "désolé, je ne peux pas"}
	logs := &memLogStore{}
	n := NewNormalizer(oracle, logs, nil)

	_, err := n.Extract(context.Background(), "CONTRAT", constants.Telephone, "x.pdf")
	var xerr *common.ExtractionError
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, "decode", xerr.Stage)
	assert.Empty(t, logs.entries)
}

func TestExtractOracleError(t *testing.T) {
	oracle := &fakeOracle{err: errors.New("timeout")}
	logs := &memLogStore{}
	n := NewNormalizer(oracle, logs, nil)

	_, err := n.Extract(context.Background(), "CONTRAT", constants.Telephone, "x.pdf")
	var xerr *common.ExtractionError
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, "oracle", xerr.Stage)
	assert.Empty(t, logs.entries)
}

func TestExtractLogWriteFailureIsNotFatal(t *testing.T) {
	oracle := &fakeOracle{reply: `{"fournisseur": "Free"}`}
	logs := &memLogStore{err: errors.New("disk full")}
	n := NewNormalizer(oracle, logs, nil)

	res, err := n.Extract(context.Background(), "CONTRAT", constants.Telephone, "x.pdf")
	require.NoError(t, err)
	assert.Equal(t, "Free", res.Data["fournisseur"])
}

func TestExtractNilLogStore(t *testing.T) {
	oracle := &fakeOracle{reply: `{"fournisseur": "Engie"}`}
	n := NewNormalizer(oracle, nil, nil)

	res, err := n.Extract(context.Background(), "DEVIS", constants.Gaz, "devis.pdf")
	require.NoError(t, err)
	assert.Equal(t, "Engie", res.Data["fournisseur"])
}

func TestBuildPromptEmbedsSchemaAndRules(t *testing.T) {
	prompt := BuildPrompt(constants.Electricite, "CONTENU DU DOCUMENT ICI")

	assert.Contains(t, prompt, "contrat de type 'electricite'")
	assert.Contains(t, prompt, "SCHÉMA JSON ATTENDU")
	assert.Contains(t, prompt, `"pdl"`)
	assert.Contains(t, prompt, "Dates au format DD/MM/YYYY")
	assert.Contains(t, prompt, "CONTENU DU DOCUMENT ICI")
	assert.Contains(t, prompt, "JSON de réponse :")
}
