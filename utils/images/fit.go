package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"strings"

	// search providers return more than the stdlib formats
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"

	"sbc/config"
)

// Asset holds a deck-ready binary image.
type Asset struct {
	Data   []byte
	Ext    string // without dot: "jpg" or "png"
	Mime   string
	Width  int
	Height int
}

// Prepare converts an arbitrary fetched binary into a deck-ready asset:
// SVG gets rasterized, oversized rasters get scaled down to maxWidth
// according to the resize mode, everything re-encodes as JPEG (opaque
// formats) or PNG.
func Prepare(data []byte, maxWidth, jpegQuality int, mode config.ImageResizeMode) (*Asset, error) {
	if looksLikeSVG(data) {
		rasterized, err := RasterizeSVG(data, maxWidth, 0)
		if err != nil {
			return nil, fmt.Errorf("unable to rasterize svg: %w", err)
		}
		data = rasterized
	}

	kind, err := filetype.Image(data)
	if err != nil || kind == types.Unknown {
		return nil, fmt.Errorf("unsupported image payload: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s image: %w", kind.Extension, err)
	}

	bounds := img.Bounds()
	if maxWidth > 0 && bounds.Dx() > maxWidth && mode != config.ImageResizeModeNone {
		switch mode {
		case config.ImageResizeModeStretch:
			img = imaging.Resize(img, maxWidth, bounds.Dy(), imaging.Lanczos)
		default: // keepAR
			img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
		}
		bounds = img.Bounds()
	}

	a := &Asset{Width: bounds.Dx(), Height: bounds.Dy()}

	// PNG keeps possible transparency, everything else flattens to JPEG
	var buf bytes.Buffer
	if kind.Extension == "png" || kind.Extension == "gif" {
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
		a.Ext, a.Mime = "png", "image/png"
	} else {
		if jpegQuality <= 0 {
			jpegQuality = 85
		}
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, err
		}
		a.Ext, a.Mime = "jpg", "image/jpeg"
	}
	a.Data = buf.Bytes()
	return a, nil
}

// looksLikeSVG sniffs XML-ish payloads for an svg root element - filetype
// cannot detect text formats.
func looksLikeSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	s := strings.ToLower(string(head))
	return strings.Contains(s, "<svg")
}
