package svg

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// ImageMode selects how raster images are referenced.
type ImageMode int

const (
	// ImageEmbedded writes images inline as base64 data URIs.
	ImageEmbedded ImageMode = iota
	// ImageExternal writes a file name and records the image in
	// Document.ImageReferences for the caller to save.
	ImageExternal
)

func (m ImageMode) String() string {
	if m == ImageExternal {
		return "external"
	}
	return "embedded"
}

// ImageReference is an external image the caller must write next to
// the document under Name.
type ImageReference struct {
	Name  string
	Image image.Image
}

// ImageEncoder turns a raster image into bytes.
type ImageEncoder interface {
	Encode(w io.Writer, img image.Image) error
	// MIMEType is used in data URIs.
	MIMEType() string
	// Extension is used for external file names, without the dot.
	Extension() string
}

// PNGEncoder encodes images as PNG. It is the default encoder.
type PNGEncoder struct {
	CompressionLevel png.CompressionLevel
}

func (e PNGEncoder) Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: e.CompressionLevel}
	return enc.Encode(w, img)
}

func (PNGEncoder) MIMEType() string  { return "image/png" }
func (PNGEncoder) Extension() string { return "png" }

// JPEGEncoder encodes images as JPEG. Zero Quality means 90.
type JPEGEncoder struct {
	Quality int
}

func (e JPEGEncoder) Encode(w io.Writer, img image.Image) error {
	q := e.Quality
	if q == 0 {
		q = 90
	}
	return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
}

func (JPEGEncoder) MIMEType() string  { return "image/jpeg" }
func (JPEGEncoder) Extension() string { return "jpg" }

// GIFEncoder encodes images as GIF.
type GIFEncoder struct{}

func (GIFEncoder) Encode(w io.Writer, img image.Image) error { return gif.Encode(w, img, nil) }
func (GIFEncoder) MIMEType() string                          { return "image/gif" }
func (GIFEncoder) Extension() string                         { return "gif" }

// BMPEncoder encodes images as BMP.
type BMPEncoder struct{}

func (BMPEncoder) Encode(w io.Writer, img image.Image) error { return bmp.Encode(w, img) }
func (BMPEncoder) MIMEType() string                          { return "image/bmp" }
func (BMPEncoder) Extension() string                         { return "bmp" }

// TIFFEncoder encodes images as TIFF.
type TIFFEncoder struct {
	Compression tiff.CompressionType
}

func (e TIFFEncoder) Encode(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: e.Compression})
}

func (TIFFEncoder) MIMEType() string  { return "image/tiff" }
func (TIFFEncoder) Extension() string { return "tif" }

// EncoderForFormat returns the encoder for a format name or file
// extension, with or without a leading dot.
func EncoderForFormat(name string) (ImageEncoder, error) {
	name = strings.ToLower(strings.TrimPrefix(name, "."))
	switch name {
	case "png":
		return PNGEncoder{}, nil
	case "jpg", "jpeg":
		return JPEGEncoder{}, nil
	case "gif":
		return GIFEncoder{}, nil
	case "bmp":
		return BMPEncoder{}, nil
	case "tif", "tiff":
		return TIFFEncoder{}, nil
	}
	return nil, fmt.Errorf("svg: image format %q: %w", name, ErrInvalidArgument)
}

// cropImage copies the src rectangle of img into a new image anchored
// at the origin.
func cropImage(img image.Image, src image.Rectangle) image.Image {
	src = src.Intersect(img.Bounds())
	dst := image.NewNRGBA(image.Rect(0, 0, src.Dx(), src.Dy()))
	draw.Draw(dst, dst.Bounds(), img, src.Min, draw.Src)
	return dst
}
