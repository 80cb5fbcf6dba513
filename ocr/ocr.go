//go:build ocr

// Package ocr recognizes figure captions from composited figure images.
//
// Captions in the magazine's camera-ready PDFs are sometimes baked into the
// figure raster instead of appearing as text fragments; this package
// recovers them with the Tesseract engine via gosseract. Tesseract must be
// installed on the system. On macOS:
//
//	brew install tesseract tesseract-lang
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-deu
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for caption recognition.
type Client struct {
	client *gosseract.Client
}

// New creates a caption recognition client preloaded with German, the
// magazine's publication language. The client should be closed when no
// longer needed to release engine resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage("deu"); err != nil {
		client.Close()
		return nil, fmt.Errorf("loading language model: %w", err)
	}
	return &Client{client: client}, nil
}

// Close releases engine resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG) and returns
// the recognized text with surrounding whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("setting image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognition failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// RecognizeCaption performs OCR on a composited figure image and returns
// the first non-empty recognized line, the position captions occupy below
// a figure. An empty result means the figure carried no legible text.
func (c *Client) RecognizeCaption(imageData []byte) (string, error) {
	text, err := c.RecognizeImage(imageData)
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, nil
		}
	}
	return "", nil
}

// SetLanguage overrides the recognition language(s). Multiple languages are
// "+" separated, e.g. "deu+eng" for articles with English figure labels.
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}
