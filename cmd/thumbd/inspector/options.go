package inspector

import (
	"github.com/previewlab/thumbd/cmd/thumbd/storage"
	"github.com/previewlab/thumbd/internal/formats"
)

// InspectorOption -
type InspectorOption func(*Inspector)

// WithStorage enables the existing-thumbnail check against the given store.
func WithStorage(store storage.Storage) InspectorOption {
	return func(i *Inspector) {
		i.storage = store
	}
}

// WithExclusions -
func WithExclusions(excluded map[formats.Extension]struct{}) InspectorOption {
	return func(i *Inspector) {
		for ext := range excluded {
			i.excluded[ext] = struct{}{}
		}
	}
}
