package voicecheck

import (
	"errors"
	"fmt"
)

// ErrDatasetLoad indicates the dialogue dataset could not be read or decoded.
var ErrDatasetLoad = errors.New("dataset load failed")

// ErrLocked indicates another process holds the dataset lock.
var ErrLocked = errors.New("dataset is locked by another process")

// MappingError represents a failure to build the voice mapping from a workbook.
type MappingError struct {
	Path string
	Err  error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("voice mapping from %s: %v", e.Path, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}
