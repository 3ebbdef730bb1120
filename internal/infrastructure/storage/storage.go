package storage

import (
	"context"
	"io"
)

// AudioStore persists uploaded meeting audio and hands it back for transcription
type AudioStore interface {
	// Save writes the stream under name and returns the location recorded on the meeting
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)

	// Open returns a reader over a previously saved location
	Open(ctx context.Context, location string) (io.ReadCloser, error)

	// Remove deletes a saved location; a missing object is not an error
	Remove(ctx context.Context, location string) error

	// Location describes where audio is kept, for health reporting
	Location() string

	// Ready reports whether the backing directory or bucket is reachable
	Ready(ctx context.Context) bool
}
