package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 60), uint8(y * 100), 7, 255})
		}
	}
	return img
}

func TestSaveLoadRoundTrip(t *testing.T) {
	// Lossless formats only.
	for _, name := range []string{"out.png", "out.bmp", "out.tiff", "OUT.TIF"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			src := testImage()
			if err := Save(path, src); err != nil {
				t.Fatalf("Save() = %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() = %v", err)
			}
			if got.Bounds() != src.Bounds() {
				t.Fatalf("Bounds() = %v, want %v", got.Bounds(), src.Bounds())
			}
			rgba := ToRGBA(got)
			for y := 0; y < 3; y++ {
				for x := 0; x < 4; x++ {
					if rgba.RGBAAt(x, y) != src.RGBAAt(x, y) {
						t.Errorf("pixel (%d,%d) = %v, want %v", x, y, rgba.RGBAAt(x, y), src.RGBAAt(x, y))
					}
				}
			}
		})
	}
}

func TestSaveJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jpg")
	if err := Save(path, testImage()); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if got.Bounds().Dx() != 4 {
		t.Errorf("width = %d, want 4", got.Bounds().Dx())
	}
}

func TestSaveUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.webp")
	if err := Save(path, testImage()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.webp) = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("unsupported Save should not create a file")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load(missing) should fail")
	}

	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load(junk) should fail")
	}

	if _, err := LoadBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("LoadBytes(nil) = %v, want ErrEmptyData", err)
	}
}

func TestLoadBytes(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	img, err := LoadBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("LoadBytes() = %v", err)
	}
	if img.Bounds().Dy() != 3 {
		t.Errorf("height = %d, want 3", img.Bounds().Dy())
	}
}

func TestToRGBA(t *testing.T) {
	src := testImage()
	if ToRGBA(src) != src {
		t.Error("ToRGBA should return origin-anchored RGBA unchanged")
	}

	sub := src.SubImage(image.Rect(1, 1, 3, 3))
	got := ToRGBA(sub)
	if got.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("Bounds() = %v", got.Bounds())
	}
	if got.RGBAAt(0, 0) != src.RGBAAt(1, 1) {
		t.Errorf("pixel = %v, want %v", got.RGBAAt(0, 0), src.RGBAAt(1, 1))
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#fff", color.RGBA{255, 255, 255, 255}, false},
		{"#FF0000", color.RGBA{255, 0, 0, 255}, false},
		{"#abc", color.RGBA{170, 187, 204, 255}, false},
		{"#00ff0080", color.RGBA{0, 128, 0, 128}, false},
		{"#ffffff00", color.RGBA{}, false},
		{"red", color.RGBA{255, 0, 0, 255}, false},
		{" CornflowerBlue ", color.RGBA{100, 149, 237, 255}, false},
		{"transparent", color.RGBA{}, false},
		{"#12345", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
		{"#ff0000zz", color.RGBA{}, true},
		{"#f00a", color.RGBA{}, true},
		{"ff0000", color.RGBA{}, true},
		{"notacolor", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseColor(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestUniform(t *testing.T) {
	img := Uniform(3, 2, color.RGBA{1, 2, 3, 255})
	if img.RGBAAt(2, 1) != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("pixel = %v", img.RGBAAt(2, 1))
	}
}
