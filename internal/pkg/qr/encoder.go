// Package qr renders URLs as PNG QR codes.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	// ModuleSize is the pixel width of a single QR module.
	ModuleSize = 10
	// Level is the error correction level used for every image.
	Level = qrcode.Low
)

// Image pairs a rendered PNG with the URL it encodes.
type Image struct {
	URL string
	PNG []byte
}

// Encode renders url as a PNG with a four module quiet zone.
func Encode(url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("qr: empty content")
	}
	code, err := qrcode.New(url, Level)
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}
	// a negative size means pixels per module
	png, err := code.PNG(-ModuleSize)
	if err != nil {
		return nil, fmt.Errorf("qr: render png: %w", err)
	}
	return png, nil
}

// EncodeBatch encodes each url, preserving input order.
func EncodeBatch(urls []string) ([]Image, error) {
	images := make([]Image, 0, len(urls))
	for _, u := range urls {
		png, err := Encode(u)
		if err != nil {
			return nil, err
		}
		images = append(images, Image{URL: u, PNG: png})
	}
	return images, nil
}
