package ocr

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sync"

	"github.com/gofiber/fiber/v2/log"
	"github.com/otiai10/gosseract/v2"
)

type tesseractEngine struct {
	languages []string
	tessdata  string

	// gosseract clients are not safe for concurrent use; recognition
	// calls are serialized on this mutex.
	mu sync.Mutex
}

// NewTesseractEngine builds an Engine backed by a local Tesseract
// installation. languages follows Tesseract naming, e.g. ["eng","rus"];
// tessdata may be empty to use the system default data path.
func NewTesseractEngine(tessdata string, languages ...string) Engine {
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	return &tesseractEngine{
		languages: languages,
		tessdata:  tessdata,
	}
}

func (e *tesseractEngine) newClient() *gosseract.Client {
	client := gosseract.NewClient()
	if e.tessdata != "" {
		if err := client.SetTessdataPrefix(e.tessdata); err != nil {
			log.Warnf("failed to set tessdata prefix: %v", err)
		}
	}
	if err := client.SetLanguage(e.languages...); err != nil {
		log.Warnf("failed to set OCR languages: %v", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		log.Warnf("failed to set page segmentation mode: %v", err)
	}
	return client
}

// Recognize runs Tesseract on the image bytes. The call itself is
// synchronous; the surrounding goroutine lets the caller's context
// bound how long we wait for a result.
func (e *tesseractEngine) Recognize(ctx context.Context, img []byte) (string, error) {
	type result struct {
		text string
		err  error
	}

	done := make(chan result, 1)
	go func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		client := e.newClient()
		defer client.Close()

		if err := client.SetImageFromBytes(img); err != nil {
			done <- result{err: err}
			return
		}
		text, err := client.Text()
		done <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.text, res.err
	}
}

// IsAvailable probes the engine by recognizing a small blank image,
// mirroring the readiness check callers must perform before Recognize.
func (e *tesseractEngine) IsAvailable() bool {
	probe, err := blankProbeImage()
	if err != nil {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	client := e.newClient()
	defer client.Close()

	if err := client.SetImageFromBytes(probe); err != nil {
		log.Warnf("OCR engine is not available: %v", err)
		return false
	}
	if _, err := client.Text(); err != nil {
		log.Warnf("OCR engine is not available: %v", err)
		return false
	}
	return true
}

func blankProbeImage() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			img.Set(x, y, color.White)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
