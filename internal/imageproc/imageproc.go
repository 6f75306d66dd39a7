// Package imageproc normalizes downloaded images: sniff the format, decode,
// flatten any transparency over white, and persist as PNG.
package imageproc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/webp"
)

// DetectFormat reads the magic bytes and returns the image format name.
func DetectFormat(data []byte) (string, error) {
	if len(data) < 12 {
		return "", errors.New("data too short to determine format")
	}
	switch {
	case data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return "jpeg", nil
	case data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47:
		return "png", nil
	case string(data[0:6]) == "GIF87a" || string(data[0:6]) == "GIF89a":
		return "gif", nil
	case string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return "webp", nil
	}
	return "", errors.New("unknown image format")
}

// Decode decodes image bytes according to their sniffed format.
func Decode(data []byte) (image.Image, error) {
	format, err := DetectFormat(data)
	if err != nil {
		return nil, err
	}
	r := bytes.NewReader(data)
	var img image.Image
	switch format {
	case "jpeg":
		img, err = jpeg.Decode(r)
	case "png":
		img, err = png.Decode(r)
	case "gif":
		img, err = gif.Decode(r)
	case "webp":
		img, err = webp.Decode(r)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	return img, nil
}

type opaquer interface{ Opaque() bool }

// Flatten composites an image carrying transparency over an opaque white
// background of identical dimensions. Already-opaque images pass through
// unchanged.
func Flatten(img image.Image) image.Image {
	if o, ok := img.(opaquer); ok && o.Opaque() {
		return img
	}
	background := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
	return imaging.Overlay(background, img, image.Pt(0, 0), 1.0)
}

// SavePNG writes the image to path as PNG, regardless of the path extension.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()
	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
