package services

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"log"
	"math"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ImageOptimizer bounds image dimensions and re-encodes uploads as compact
// JPEG before they are sent to a provider.
type ImageOptimizer struct {
	maxDimension int
	quality      int
}

func NewImageOptimizer(maxDimension, quality int) *ImageOptimizer {
	return &ImageOptimizer{
		maxDimension: maxDimension,
		quality:      quality,
	}
}

// Optimize decodes, bounds and re-encodes the image. Optimization is best
// effort: on any decode or encode fault the original bytes are returned
// unchanged, since providers accept larger payloads at higher latency cost.
func (o *ImageOptimizer) Optimize(data []byte) []byte {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("Warning: image decode failed (%v), passing original through", err)
		return data
	}

	bounds := img.Bounds()
	if bounds.Dx() > o.maxDimension || bounds.Dy() > o.maxDimension {
		img = o.downscale(img)
		log.Printf("Resized image from %dx%d to %dx%d", bounds.Dx(), bounds.Dy(), img.Bounds().Dx(), img.Bounds().Dy())
	}

	img = canonicalColorMode(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: o.quality}); err != nil {
		log.Printf("Warning: image encode failed (%v), passing original through", err)
		return data
	}

	log.Printf("Optimized %s image: %d -> %d bytes", format, len(data), buf.Len())
	return buf.Bytes()
}

// downscale fits the image within maxDimension on both axes, preserving
// aspect ratio. Grayscale stays grayscale.
func (o *ImageOptimizer) downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	scale := float64(o.maxDimension) / float64(w)
	if s := float64(o.maxDimension) / float64(h); s < scale {
		scale = s
	}
	newW := int(math.Round(float64(w) * scale))
	newH := int(math.Round(float64(h) * scale))
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	var dst xdraw.Image = image.NewRGBA(image.Rect(0, 0, newW, newH))
	if _, ok := img.(*image.Gray); ok {
		dst = image.NewGray(image.Rect(0, 0, newW, newH))
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}

// canonicalColorMode keeps grayscale and three-channel images as-is and
// redraws everything else (paletted, CMYK, alpha variants) into RGBA.
func canonicalColorMode(img image.Image) image.Image {
	switch img.(type) {
	case *image.Gray, *image.RGBA, *image.NRGBA, *image.YCbCr:
		return img
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}
