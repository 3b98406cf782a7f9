package inspector

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/previewlab/thumbd/cmd/thumbd/storage"
	"github.com/previewlab/thumbd/internal/formats"
)

// skip reasons
const (
	ReasonUnsupported = "unsupported extension"
	ReasonTooLarge    = "file exceeds maximum size"
	ReasonExcluded    = "extension excluded by configuration"
)

// Report is the answer to "should this file get a thumbnail, and how".
type Report struct {
	Filename    string            `json:"filename"`
	Extension   formats.Extension `json:"extension,omitempty"`
	Group       string            `json:"group,omitempty"`
	Eligible    bool              `json:"eligible"`
	Reason      string            `json:"reason,omitempty"`
	Thumbnailed bool              `json:"thumbnailed"`
}

// Inspector routes files to conversion strategies and filters out the ones
// not worth attempting.
type Inspector struct {
	storage  storage.Storage
	excluded map[formats.Extension]struct{}
}

// New -
func New(opts ...InspectorOption) *Inspector {
	inspector := &Inspector{
		excluded: make(map[formats.Extension]struct{}),
	}
	for _, opt := range opts {
		opt(inspector)
	}
	return inspector
}

// Inspect classifies a single file by name and size. An unsupported or
// oversized file yields an ineligible report with the reason, not an error.
func (i *Inspector) Inspect(filename string, size int64) Report {
	report := Report{
		Filename: filename,
	}

	ext, err := formats.Parse(strings.TrimPrefix(filepath.Ext(filename), "."))
	if err != nil {
		report.Reason = err.Error()
		log.Debug().Err(err).Str("filename", filename).Msg("skip thumbnail")
		return report
	}
	report.Extension = ext
	report.Group = ext.Group().String()

	if _, ok := i.excluded[ext]; ok {
		report.Reason = ReasonExcluded
		log.Debug().Str("filename", filename).Str("reason", ReasonExcluded).Msg("skip thumbnail")
		return report
	}

	if size > formats.MaxFileSize {
		report.Reason = ReasonTooLarge
		log.Debug().Str("filename", filename).Str("reason", ReasonTooLarge).Msg("skip thumbnail")
		return report
	}

	report.Eligible = true
	if i.storage != nil {
		report.Thumbnailed = i.storage.Exists(ThumbnailKey(filename))
	}
	return report
}

// ThumbnailKey is the storage object name for a source file's thumbnail.
func ThumbnailKey(filename string) string {
	return fmt.Sprintf("%s.png", strings.TrimSuffix(filename, filepath.Ext(filename)))
}
