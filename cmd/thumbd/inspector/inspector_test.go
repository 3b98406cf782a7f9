package inspector

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/previewlab/thumbd/internal/formats"
)

type fakeStorage struct {
	existing map[string]struct{}
}

func (f *fakeStorage) Upload(body io.Reader, filename string) error { return nil }

func (f *fakeStorage) Download(filename string) (io.Reader, error) { return nil, nil }

func (f *fakeStorage) Exists(filename string) bool {
	_, ok := f.existing[filename]
	return ok
}

func TestInspect(t *testing.T) {
	store := &fakeStorage{
		existing: map[string]struct{}{
			"photos/cat.png": {},
		},
	}
	ins := New(
		WithStorage(store),
		WithExclusions(map[formats.Extension]struct{}{formats.Tiff: {}}),
	)

	tests := []struct {
		name string
		file string
		size int64
		want Report
	}{
		{
			name: "eligible raster",
			file: "photos/dog.jpg",
			size: 1024,
			want: Report{
				Filename:  "photos/dog.jpg",
				Extension: formats.Jpg,
				Group:     "generic",
				Eligible:  true,
			},
		}, {
			name: "already thumbnailed",
			file: "photos/cat.JPEG",
			size: 1024,
			want: Report{
				Filename:    "photos/cat.JPEG",
				Extension:   formats.Jpeg,
				Group:       "generic",
				Eligible:    true,
				Thumbnailed: true,
			},
		}, {
			name: "vector",
			file: "logo.svgz",
			size: 1024,
			want: Report{
				Filename:  "logo.svgz",
				Extension: formats.Svgz,
				Group:     "vector",
				Eligible:  true,
			},
		}, {
			name: "document",
			file: "report.pdf",
			size: 1024,
			want: Report{
				Filename:  "report.pdf",
				Extension: formats.Pdf,
				Group:     "document",
				Eligible:  true,
			},
		}, {
			name: "excluded",
			file: "scan.tiff",
			size: 1024,
			want: Report{
				Filename:  "scan.tiff",
				Extension: formats.Tiff,
				Group:     "generic",
				Reason:    ReasonExcluded,
			},
		}, {
			name: "oversized",
			file: "huge.png",
			size: formats.MaxFileSize + 1,
			want: Report{
				Filename:  "huge.png",
				Extension: formats.Png,
				Group:     "generic",
				Reason:    ReasonTooLarge,
			},
		}, {
			name: "at size limit",
			file: "big.png",
			size: formats.MaxFileSize,
			want: Report{
				Filename:  "big.png",
				Extension: formats.Png,
				Group:     "generic",
				Eligible:  true,
			},
		}, {
			name: "unsupported",
			file: "notes.txt",
			size: 10,
			want: Report{
				Filename: "notes.txt",
				Reason:   "txt: unsupported extension",
			},
		}, {
			name: "no extension",
			file: "Makefile",
			size: 10,
			want: Report{
				Filename: "Makefile",
				Reason:   ": unsupported extension",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ins.Inspect(tt.file, tt.size))
		})
	}
}

func TestThumbnailKey(t *testing.T) {
	assert.Equal(t, "photos/cat.png", ThumbnailKey("photos/cat.jpeg"))
	assert.Equal(t, "report.png", ThumbnailKey("report.pdf"))
	assert.Equal(t, "Makefile.png", ThumbnailKey("Makefile"))
}
