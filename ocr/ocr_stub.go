//go:build !ocr

// Package ocr recognizes figure captions from composited figure images.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// All operations return ErrOCRNotEnabled. To enable caption recognition,
// install Tesseract and rebuild with the "ocr" tag:
//
//	go build -tags ocr
package ocr

import "errors"

// ErrOCRNotEnabled is returned when caption recognition is called but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub recognition client that returns errors for all
// operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client. It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// RecognizeImage returns an error indicating OCR support is not enabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// RecognizeCaption returns an error indicating OCR support is not enabled.
func (c *Client) RecognizeCaption(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}
