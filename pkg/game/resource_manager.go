package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gonewx/burst/pkg/embedded"
	"github.com/gonewx/burst/pkg/flight"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"gopkg.in/yaml.v3"
)

// ResourceManager is responsible for centralized management of burst resources.
// It loads images and sound effects once and reuses them, and resolves resource IDs
// declared in assets/config/resources.yaml.
//
// Resources are read from the embedded file system when it has been initialized and
// contains the path, otherwise from disk.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. Sprites are only resolved from the frame
// goroutine (particle ingestion), so no synchronization is needed.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//	sprite, err := rm.LoadSprite("IMAGE_PARTICLE_DOG")
type ResourceManager struct {
	imageCache   map[string]*ebiten.Image // path -> Image
	audioCache   map[string]*audio.Player // path -> Player
	audioContext *audio.Context           // may be nil when audio is unavailable

	config      *ResourceConfig
	resourceMap map[string]string // resource ID -> full path
}

var _ flight.RenderContext = (*ResourceManager)(nil)

// NewResourceManager creates a ResourceManager with empty caches.
// audioContext may be nil; sound effects then fail to load.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		audioContext: audioContext,
		resourceMap:  make(map[string]string),
	}
}

// readResource reads a file from the embedded FS, falling back to disk.
func readResource(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// LoadImage loads and caches an image file. Supported formats: PNG.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	log.Printf("[ResourceManager] Loaded image %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return ebitenImg, nil
}

// GetImage returns a previously loaded image, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadSoundEffect loads a non-looping sound effect and caches its player.
// Supported formats: .wav, .ogg, .mp3 (all expected at the context sample rate).
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context to load sound effect %s", path)
	}

	audioData, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound effect file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)

	var stream io.ReadSeeker
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		stream, err = wav.DecodeWithoutResampling(reader)
	case ".ogg":
		stream, err = vorbis.DecodeWithoutResampling(reader)
	case ".mp3":
		stream, err = mp3.DecodeWithoutResampling(reader)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .ogg, .mp3)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound effect %s: %w", path, err)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadResourceConfig parses the YAML resource configuration and builds the ID map.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := readResource(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()
	return nil
}

// buildResourceMap maps every resource ID to its full file path, e.g.
//
//	IMAGE_PARTICLE_DOG -> assets/images/particle_dog.png
//	SOUND_POP -> assets/sounds/pop.wav
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png"
			}
			rm.resourceMap[img.ID] = fullPath
		}
		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".wav"
			}
			rm.resourceMap[sound.ID] = fullPath
		}
	}
}

// ResolvePath returns the file path declared for a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, error) {
	if rm.config == nil {
		return "", fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return "", fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return filePath, nil
}

// ResourceIDs returns every declared resource ID in sorted order.
func (rm *ResourceManager) ResourceIDs() []string {
	ids := make([]string, 0, len(rm.resourceMap))
	for id := range rm.resourceMap {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadImageByID loads an image declared in the resource configuration.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	filePath, err := rm.ResolvePath(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadImage(filePath)
}

// LoadSoundByID loads a sound effect declared in the resource configuration.
func (rm *ResourceManager) LoadSoundByID(resourceID string) (*audio.Player, error) {
	filePath, err := rm.ResolvePath(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadSoundEffect(filePath)
}

// LoadResourceGroup loads every image and sound of a group.
// Sounds are skipped when there is no audio context.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}
	if rm.audioContext == nil {
		return nil
	}
	for _, sound := range group.Sounds {
		if _, err := rm.LoadSoundByID(sound.ID); err != nil {
			return fmt.Errorf("failed to load sound %s in group %s: %w", sound.ID, groupName, err)
		}
	}
	return nil
}

// LoadSprite resolves a particle sprite by resource ID. It implements flight.RenderContext.
func (rm *ResourceManager) LoadSprite(id string) (flight.Sprite, error) {
	img, err := rm.LoadImageByID(id)
	if err != nil {
		return nil, err
	}
	return ImageSprite{Image: img}, nil
}

// ImageSprite is the ebiten-backed flight.Sprite.
type ImageSprite struct {
	Image *ebiten.Image
}

// Size returns the natural image size.
func (s ImageSprite) Size() flight.Size {
	b := s.Image.Bounds()
	return flight.Size{Width: b.Dx(), Height: b.Dy()}
}
