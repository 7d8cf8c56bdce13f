package ingestion

import "errors"

var (
	// ErrCorpusRepositoryRequired is returned when a corpus repository is not provided.
	ErrCorpusRepositoryRequired = errors.New("corpus repository required")

	// ErrPipelineClosed is returned when a closed pipeline is used.
	ErrPipelineClosed = errors.New("pipeline is closed")
)
