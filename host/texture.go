package host

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
	"github.com/pkg/errors"
	"github.com/plus3/gamescene/scene"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// TextureLoader decodes images from a directory into ebiten images. Handles
// start at 1 and are never reused.
type TextureLoader struct {
	dir      string
	log      *zap.Logger
	textures *intmap.Map[scene.TextureHandle, *ebiten.Image]
	names    map[string]scene.TextureHandle
	next     scene.TextureHandle
}

func NewTextureLoader(dir string, log *zap.Logger) *TextureLoader {
	return &TextureLoader{
		dir:      dir,
		log:      log,
		textures: intmap.New[scene.TextureHandle, *ebiten.Image](8),
		names:    make(map[string]scene.TextureHandle),
		next:     1,
	}
}

// Load returns the handle for name, decoding the file on first use. A missing
// file is replaced by a checkerboard so the scene still renders.
func (l *TextureLoader) Load(name string) (scene.TextureHandle, error) {
	if h, ok := l.names[name]; ok {
		return h, nil
	}

	img, err := decodeFile(filepath.Join(l.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		l.log.Warn("Texture not found, using checkerboard", zap.String("name", name), zap.String("dir", l.dir))
		img, err = Checkerboard(64, 8), nil
	}
	if err != nil {
		return 0, err
	}

	h := l.next
	l.next++
	l.textures.Put(h, ebiten.NewImageFromImage(img))
	l.names[name] = h

	l.log.Debug("Loaded texture",
		zap.String("name", name),
		zap.Uint32("handle", uint32(h)),
		zap.Stringer("bounds", img.Bounds()))
	return h, nil
}

// Get returns the image for a handle, or nil.
func (l *TextureLoader) Get(h scene.TextureHandle) *ebiten.Image {
	img, _ := l.textures.Get(h)
	return img
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open texture")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return img, nil
}

// Checkerboard returns a size×size magenta and black checkerboard with square
// cells of cell pixels.
func Checkerboard(size, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	on := color.RGBA{R: 255, B: 255, A: 255}
	off := color.RGBA{A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, on)
			} else {
				img.SetRGBA(x, y, off)
			}
		}
	}
	return img
}
