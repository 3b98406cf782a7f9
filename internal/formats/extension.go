package formats

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Group is the conversion strategy family an extension belongs to.
type Group int

// groups
const (
	GroupGeneric Group = iota + 1
	GroupVector
	GroupDocument
	GroupExtended
)

// String -
func (g Group) String() string {
	switch g {
	case GroupGeneric:
		return "generic"
	case GroupVector:
		return "vector"
	case GroupDocument:
		return "document"
	case GroupExtended:
		return "extended"
	default:
		return "unknown"
	}
}

// Extension is one of the extensions the thumbnailer can convert. The
// constant values below are the canonical spellings and the wire format:
// the type marshals to the bare lowercase string.
type Extension string

// extensions
const (
	Bmp   Extension = "bmp"
	Dib   Extension = "dib"
	Ff    Extension = "ff"
	Gif   Extension = "gif"
	Ico   Extension = "ico"
	Jpg   Extension = "jpg"
	Jpeg  Extension = "jpeg"
	Png   Extension = "png"
	Pnm   Extension = "pnm"
	Qoi   Extension = "qoi"
	Tga   Extension = "tga"
	Icb   Extension = "icb"
	Vda   Extension = "vda"
	Vst   Extension = "vst"
	Tiff  Extension = "tiff"
	Tif   Extension = "tif"
	Webp  Extension = "webp"
	Heif  Extension = "heif"
	Heifs Extension = "heifs"
	Heic  Extension = "heic"
	Heics Extension = "heics"
	Avif  Extension = "avif"
	Avci  Extension = "avci"
	Avcs  Extension = "avcs"
	Svg   Extension = "svg"
	Svgz  Extension = "svgz"
	Pdf   Extension = "pdf"
)

var extensionGroups = map[Extension]Group{
	Bmp:   GroupGeneric,
	Dib:   GroupGeneric,
	Ff:    GroupGeneric,
	Gif:   GroupGeneric,
	Ico:   GroupGeneric,
	Jpg:   GroupGeneric,
	Jpeg:  GroupGeneric,
	Png:   GroupGeneric,
	Pnm:   GroupGeneric,
	Qoi:   GroupGeneric,
	Tga:   GroupGeneric,
	Icb:   GroupGeneric,
	Vda:   GroupGeneric,
	Vst:   GroupGeneric,
	Tiff:  GroupGeneric,
	Tif:   GroupGeneric,
	Webp:  GroupGeneric,
	Heif:  GroupExtended,
	Heifs: GroupExtended,
	Heic:  GroupExtended,
	Heics: GroupExtended,
	Avif:  GroupExtended,
	Avci:  GroupExtended,
	Avcs:  GroupExtended,
	Svg:   GroupVector,
	Svgz:  GroupVector,
	Pdf:   GroupDocument,
}

// Parse matches text against the known extensions, case-insensitively.
// Extended raster spellings are rejected unless the HEIF decoder is
// compiled in. The returned error names the offending text.
func Parse(value string) (Extension, error) {
	ext := Extension(strings.ToLower(value))
	group, ok := extensionGroups[ext]
	if !ok || (group == GroupExtended && !heifEnabled) {
		return "", errors.Wrap(ErrUnsupportedExtension, value)
	}
	return ext, nil
}

// String returns the canonical lowercase spelling. Feeding it back through
// Parse yields the identical value.
func (e Extension) String() string {
	return string(e)
}

// Group returns the conversion strategy family of the extension.
func (e Extension) Group() Group {
	return extensionGroups[e]
}

// MarshalJSON -
func (e Extension) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(e))
}

// UnmarshalJSON -
func (e *Extension) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	ext, err := Parse(value)
	if err != nil {
		return err
	}
	*e = ext
	return nil
}

// MarshalYAML -
func (e Extension) MarshalYAML() (interface{}, error) {
	return string(e), nil
}

// UnmarshalYAML -
func (e *Extension) UnmarshalYAML(node *yaml.Node) error {
	var value string
	if err := node.Decode(&value); err != nil {
		return err
	}
	ext, err := Parse(value)
	if err != nil {
		return err
	}
	*e = ext
	return nil
}
