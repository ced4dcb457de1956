package radial

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font describes the percentage label typeface. Size is in pixels.
type Font struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
}

func (f Font) String() string {
	s := fmt.Sprintf("%s %g", f.Family, f.Size)
	if f.Bold {
		s += " bold"
	}
	if f.Italic {
		s += " italic"
	}
	return s
}

// ParseFont reads descriptors like "sans-serif 12 bold" or "monospace 10".
// The family may contain spaces; the first numeric field is the size.
func ParseFont(s string) (Font, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Font{}, fmt.Errorf("%w: empty font", ErrInvalidConfiguration)
	}

	var (
		f      Font
		family []string
		sized  bool
	)
	for _, field := range fields {
		if !sized {
			if size, err := strconv.ParseFloat(field, 64); err == nil {
				if size <= 0 {
					return Font{}, fmt.Errorf("%w: font size %v", ErrInvalidConfiguration, size)
				}
				f.Size = size
				sized = true
				continue
			}
			family = append(family, field)
			continue
		}
		switch strings.ToLower(field) {
		case "bold":
			f.Bold = true
		case "italic":
			f.Italic = true
		case "normal", "roman":
		default:
			return Font{}, fmt.Errorf("%w: font style %q", ErrInvalidConfiguration, field)
		}
	}
	if !sized {
		return Font{}, fmt.Errorf("%w: font %q has no size", ErrInvalidConfiguration, s)
	}
	if len(family) == 0 {
		family = []string{defaultFontFamily}
	}
	f.Family = strings.Join(family, " ")
	return f, nil
}

const defaultFontFamily = "sans-serif"

// goFonts maps a family class to its regular, bold, italic and bold-italic TTFs.
var goFonts = map[string][4][]byte{
	"sans": {goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF},
	"mono": {gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF},
}

var familyClasses = map[string]string{
	"sans-serif":    "sans",
	"sans":          "sans",
	"go":            "sans",
	"arial":         "sans",
	"helvetica":     "sans",
	"tkdefaultfont": "sans",
	"monospace":     "mono",
	"mono":          "mono",
	"go mono":       "mono",
	"courier":       "mono",
	"courier new":   "mono",
}

// faceCache loads each Font once. It is owned by a single widget.
type faceCache struct {
	faces  map[Font]font.Face
	logger *slog.Logger
}

func newFaceCache(logger *slog.Logger) *faceCache {
	return &faceCache{faces: map[Font]font.Face{}, logger: logger}
}

// face never fails: unknown families fall back to the default family and a
// broken font falls back to basicfont.
func (c *faceCache) face(f Font) font.Face {
	if face, ok := c.faces[f]; ok {
		return face
	}

	class, ok := familyClasses[strings.ToLower(f.Family)]
	if !ok {
		c.logger.Warn("unknown font family, using default", "family", f.Family, "default", defaultFontFamily)
		class = familyClasses[defaultFontFamily]
	}
	variant := 0
	if f.Bold {
		variant |= 1
	}
	if f.Italic {
		variant |= 2
	}

	face, err := loadFace(goFonts[class][variant], f.Size)
	if err != nil {
		c.logger.Warn("font load failed, using fixed face", "font", f.String(), "err", err)
		face = basicfont.Face7x13
	}
	c.faces[f] = face
	return face
}

func loadFace(ttf []byte, size float64) (font.Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = 12
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
