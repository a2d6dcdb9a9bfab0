package llm

import "context"

// ChatRequest is one chat-completion call to the oracle.
type ChatRequest struct {
	System      string
	User        string
	Temperature float32
	// ForceJSON asks the provider for a JSON-object response format. The
	// reply still goes through StripFences/DecodeObject: the oracle does
	// not reliably honor "no extra text" instructions.
	ForceJSON bool
}

// Oracle is the interface the pipeline depends on. Any compliant
// implementation returning JSON-ish text satisfies the contract; the core
// never depends on a specific model beyond configuration.
type Oracle interface {
	ChatComplete(ctx context.Context, req ChatRequest) (string, error)
}
