package formats

// mib is the size of 1 MiB in bytes.
const mib = 1 << 20

const (
	// MaxFileSize is the largest source file, in bytes, eligible for
	// thumbnail generation.
	MaxFileSize int64 = 192 * mib

	// VectorTargetPx is the pixel-area budget used when rasterizing vector
	// sources. It is 512x512, but a non-1:1 aspect ratio has to be
	// accounted for, so it is kept as an area.
	VectorTargetPx float64 = 262144

	// DocumentRenderWidth is the width, in pixels, that document pages are
	// rendered at: 120 DPI at standard A4 paper size. The source aspect
	// ratio and height are maintained.
	DocumentRenderWidth int = 992
)

// GenericExtensions are the raster extensions handled by a standard bitmap
// codec, without external C-based dependencies.
var GenericExtensions = []string{
	"bmp", "dib", "ff", "gif", "ico", "jpg", "jpeg", "png", "pnm", "qoi",
	"tga", "icb", "vda", "vst", "tiff", "tif", "webp",
}

// VectorExtensions are scalable vector sources rasterized at a computed
// target resolution.
var VectorExtensions = []string{"svg", "svgz"}

// DocumentExtensions are paginated documents rendered page by page at a
// fixed width.
var DocumentExtensions = []string{"pdf"}

// ExtendedExtensions are still-image formats requiring a specialized HEIF
// decoder. They are only served when the `heif` build tag is set.
var ExtendedExtensions = []string{
	"heif", "heifs", "heic", "heics", "avif", "avci", "avcs",
}

// AllCompatibleExtensions returns every extension the thumbnailer will
// attempt to handle: the generic raster set, the extended raster set when
// compiled in, and the vector set, in that order. Documents are routed by
// extension but are not part of this registry.
func AllCompatibleExtensions() []string {
	result := make([]string, 0, len(GenericExtensions)+len(ExtendedExtensions)+len(VectorExtensions))
	result = append(result, GenericExtensions...)
	if heifEnabled {
		result = append(result, ExtendedExtensions...)
	}
	result = append(result, VectorExtensions...)
	return result
}
