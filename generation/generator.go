package generation

import "context"

// Generator produces a final answer from a query and the retrieved context
// texts, in the order given. Implementations must be thread-safe for
// concurrent use. A real implementation issues a request to an external
// text-generation service and may take non-trivial wall-clock time; callers
// should pass a context with a deadline when that matters.
type Generator interface {
	// Generate assembles an answer for the query from the retrieved contexts.
	// An empty contexts slice is a normal input: the retrieval stage found
	// nothing, and the implementation decides how to say so.
	Generate(ctx context.Context, query string, contexts []string) (string, error)
}
