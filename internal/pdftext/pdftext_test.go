package pdftext

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aperrin/gardetonor/internal/common"
)

type fakeRunner struct {
	stdout string
	stderr string
	err    error

	gotName string
	gotArgs []string
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.gotName = name
	r.gotArgs = args
	return []byte(r.stdout), []byte(r.stderr), r.err
}

func TestExtractText(t *testing.T) {
	runner := &fakeRunner{stdout: "CONTRAT D'ÉLECTRICITÉ\nPDL: 14552000000000\n"}
	e := NewExtractor(Config{}, nil).WithRunner(runner)

	text, err := e.ExtractText(context.Background(), []byte("%PDF-1.7"))
	require.NoError(t, err)
	assert.Contains(t, text, "PDL: 14552000000000")

	assert.Equal(t, "pdftotext", runner.gotName)
	require.NotEmpty(t, runner.gotArgs)
	assert.Equal(t, "-layout", runner.gotArgs[0])
	// Output goes to stdout.
	assert.Equal(t, "-", runner.gotArgs[len(runner.gotArgs)-1])
}

func TestExtractTextWhitespaceOnly(t *testing.T) {
	runner := &fakeRunner{stdout: "  \n\t \f \n"}
	e := NewExtractor(Config{}, nil).WithRunner(runner)

	_, err := e.ExtractText(context.Background(), []byte("%PDF-1.7"))
	assert.ErrorIs(t, err, common.ErrNoText)
}

func TestExtractTextCommandFailure(t *testing.T) {
	runner := &fakeRunner{stderr: "Syntax Error: Couldn't read xref table", err: errors.New("exit status 1")}
	e := NewExtractor(Config{}, nil).WithRunner(runner)

	_, err := e.ExtractText(context.Background(), []byte("not a pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xref table")
}

func TestIsValidPDF(t *testing.T) {
	runner := &fakeRunner{stdout: "Title:          Contrat\nPages:          3\nEncrypted:      no\n"}
	e := NewExtractor(Config{}, nil).WithRunner(runner)
	assert.True(t, e.IsValidPDF(context.Background(), []byte("%PDF-1.7")))
	assert.Equal(t, "pdfinfo", runner.gotName)

	runner.stdout = "Pages:          0\n"
	assert.False(t, e.IsValidPDF(context.Background(), []byte("%PDF-1.7")))

	runner.stdout = "Title: whatever\n"
	assert.False(t, e.IsValidPDF(context.Background(), []byte("%PDF-1.7")))

	runner.err = errors.New("exit status 1")
	assert.False(t, e.IsValidPDF(context.Background(), []byte("junk")))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 12, pageCount("Producer: x\nPages:   12\n"))
	assert.Equal(t, 0, pageCount("Pages: beaucoup\n"))
	assert.Equal(t, 0, pageCount(""))
}
