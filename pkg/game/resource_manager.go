package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for image and font assets,
// ensuring that resources are loaded only once and reused throughout the game.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go
// maps, which are not safe for concurrent access. All loading happens in the
// main goroutine at startup, before the frame loop begins, so no
// synchronization is needed for the current single-threaded design.
//
// Usage:
//
//	rm := NewResourceManager()
//	img, err := rm.LoadImage("assets/images/titlescreen.png")
//	if err != nil {
//	    log.Printf("Failed to load image: %v", err)
//	}
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // Cache for loaded images: path -> Image
	fontFaceCache map[string]*text.GoTextFace // Cache for text faces: path:size -> face
}

// NewResourceManager creates and initializes a new ResourceManager instance
// with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// LoadImage loads an image file from the specified path and caches it for
// future use. If the image has already been loaded, it returns the cached
// version. Supported formats: PNG and JPEG.
//
// Error handling:
//   - Returns an error if the file does not exist or cannot be opened.
//   - Returns an error if the image format is not supported or corrupted.
//   - Does not panic - all errors are returned to the caller for handling.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	// Check if the image is already cached
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	// Open the image file
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	// Decode the image
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	// Convert to Ebitengine image
	ebitenImg := ebiten.NewImageFromImage(img)

	// Store in cache
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
// Use LoadImage to load and cache an image before calling this method.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadFont loads a TrueType/OpenType font from the specified path and creates
// a text face with the given size. The face is cached with a key combining
// path and size. Supported formats: .ttf, .otf
//
// Example:
//
//	face, err := rm.LoadFont("assets/fonts/game.ttf", 34)
//	if err != nil {
//	    return err
//	}
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	// Create cache key combining path and size
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)

	// Check if the font face is already cached
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	// Read font file
	fontData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	// Create GoTextFaceSource from font data
	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	// Create GoTextFace with specified size
	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}

	// Store in cache
	rm.fontFaceCache[cacheKey] = goTextFace

	return goTextFace, nil
}

// GetFont retrieves a previously loaded font face from the cache.
// If the font has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetFont(path string, size float64) *text.GoTextFace {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	return rm.fontFaceCache[cacheKey]
}
