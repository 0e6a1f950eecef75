package ingest

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"

	"github.com/ledongthuc/pdf"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register decoder

	"github.com/labtrail/labtrail/pkg/vision"
)

// rasterLongEdge bounds prepared page images: scale to 1024px on the long
// edge, never upscale.
const rasterLongEdge = 1024

// PDFPageCount inspects the PDF structure and returns the page count without
// rendering anything. Malformed PDFs return an error.
func PDFPageCount(data []byte) (pages int, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	return reader.NumPage(), nil
}

// PrepareImage decodes one uploaded image, scales it to the bounded
// resolution, and re-encodes it as PNG.
func PrepareImage(data []byte) (vision.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return vision.Image{}, fmt.Errorf("failed to decode image: %w", err)
	}
	encoded, mime, err := encodeScaled(img)
	if err != nil {
		return vision.Image{}, err
	}
	return vision.Image{Data: encoded, MimeType: mime}, nil
}

// ExtractPDFImages recovers renderable page images from a PDF for providers
// that cannot take the document natively. It walks each page's XObject
// resources and accepts embedded JPEG (DCTDecode) and losslessly compressed
// streams that decode as images. Scanned lab reports are typically one
// full-page image per page, which this recovers exactly; vector-only PDFs
// yield nothing and the caller must fail over to a PDF-capable provider.
func ExtractPDFImages(data []byte, maxPages int) (images []vision.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	pages := reader.NumPage()
	if pages > maxPages {
		pages = maxPages
	}
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		img, ok := extractPageImage(page)
		if !ok {
			continue
		}
		images = append(images, img)
	}
	return images, nil
}

// extractPageImage returns the largest decodable image object on the page.
func extractPageImage(page pdf.Page) (vision.Image, bool) {
	xobjects := page.V.Key("Resources").Key("XObject")
	if xobjects.Kind() != pdf.Dict {
		return vision.Image{}, false
	}

	var best vision.Image
	var bestPixels int
	for _, name := range xobjects.Keys() {
		stream := xobjects.Key(name)
		if stream.Kind() != pdf.Stream || stream.Key("Subtype").Name() != "Image" {
			continue
		}
		raw, err := io.ReadAll(stream.Reader())
		if err != nil {
			slog.Debug("Skipping unreadable PDF image stream", "name", name, "error", err)
			continue
		}
		decoded, _, err := image.Decode(bytes.NewReader(raw))
		if err != nil {
			continue
		}
		bounds := decoded.Bounds()
		if pixels := bounds.Dx() * bounds.Dy(); pixels > bestPixels {
			encoded, mime, err := encodeScaled(decoded)
			if err != nil {
				continue
			}
			best = vision.Image{Data: encoded, MimeType: mime}
			bestPixels = pixels
		}
	}
	return best, bestPixels > 0
}

// encodeScaled scales to the bounded long edge with bilinear filtering and
// encodes as PNG; dense scans that blow up as PNG re-encode as JPEG to stay
// under provider payload limits.
func encodeScaled(img image.Image) ([]byte, string, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, "", fmt.Errorf("image has zero dimension")
	}

	long := width
	if height > long {
		long = height
	}
	if long > rasterLongEdge {
		scale := float64(rasterLongEdge) / float64(long)
		dst := image.NewRGBA(image.Rect(0, 0,
			int(float64(width)*scale), int(float64(height)*scale)))
		draw.BiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, "", fmt.Errorf("failed to encode page image: %w", err)
	}
	if buf.Len() <= 4<<20 {
		return buf.Bytes(), "image/png", nil
	}

	var jpegBuf bytes.Buffer
	if err := jpeg.Encode(&jpegBuf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, "", fmt.Errorf("failed to encode page image: %w", err)
	}
	return jpegBuf.Bytes(), "image/jpeg", nil
}
