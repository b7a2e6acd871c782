package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := range 3 {
		for x := range 4 {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 60), uint8(y * 100), 7, 255})
		}
	}
	return img
}

func sameRGB(t *testing.T, want image.Image, got image.Image) {
	t.Helper()
	if got.Bounds().Size() != want.Bounds().Size() {
		t.Fatalf("size = %v, want %v", got.Bounds().Size(), want.Bounds().Size())
	}
	wb, gb := want.Bounds(), got.Bounds()
	for y := range wb.Dy() {
		for x := range wb.Dx() {
			wr, wg, wbl, _ := want.At(wb.Min.X+x, wb.Min.Y+y).RGBA()
			gr, gg, gbl, _ := got.At(gb.Min.X+x, gb.Min.Y+y).RGBA()
			if wr>>8 != gr>>8 || wg>>8 != gg>>8 || wbl>>8 != gbl>>8 {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got.At(gb.Min.X+x, gb.Min.Y+y), want.At(wb.Min.X+x, wb.Min.Y+y))
			}
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	decoders := map[Format]func(io.Reader) (image.Image, error){
		FormatTGA:  tga.Decode,
		FormatPNG:  png.Decode,
		FormatWebP: nativewebp.Decode,
		FormatBMP:  bmp.Decode,
		FormatTIFF: tiff.Decode,
	}

	src := testImage()
	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, f); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := decoders[f](&buf)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			sameRGB(t, src, got)
		})
	}
}

func TestEncodeUnsupported(t *testing.T) {
	err := Encode(io.Discard, testImage(), Format("gif"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"output.tga", FormatTGA, true},
		{"out/frame.PNG", FormatPNG, true},
		{"a.webp", FormatWebP, true},
		{"a.tif", FormatTIFF, true},
		{"a.bmp", FormatBMP, true},
		{"noext", "", false},
		{"a.jpg", "", false},
	}
	for _, tc := range tests {
		got, err := FormatFromPath(tc.path)
		if (err == nil) != tc.ok || got != tc.want {
			t.Errorf("FormatFromPath(%q) = %q, %v", tc.path, got, err)
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := WriteFile(path, testImage()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode written file: %v", err)
	}
	sameRGB(t, testImage(), got)

	if err := WriteFile(filepath.Join(t.TempDir(), "out.xyz"), testImage()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestWriteFileAs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.out")
	if err := WriteFileAs(path, testImage(), FormatBMP); err != nil {
		t.Fatalf("WriteFileAs: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("decode written file: %v", err)
	}
	sameRGB(t, testImage(), got)

	if err := WriteFileAs(path, testImage(), Format("gif")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestEncodeAnimation(t *testing.T) {
	frames := []image.Image{testImage(), testImage(), testImage()}

	var buf bytes.Buffer
	if err := EncodeAnimation(&buf, frames, 40*time.Millisecond); err != nil {
		t.Fatalf("EncodeAnimation: %v", err)
	}
	data := buf.Bytes()
	if !bytes.HasPrefix(data, []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WEBP")) {
		t.Fatalf("missing RIFF/WEBP header: % x", data[:min(16, len(data))])
	}
	if !bytes.Contains(data, []byte("ANIM")) {
		t.Error("missing ANIM chunk")
	}
	if n := bytes.Count(data, []byte("ANMF")); n != len(frames) {
		t.Errorf("got %d ANMF chunks, want %d", n, len(frames))
	}

	if err := EncodeAnimation(io.Discard, nil, time.Second); err == nil {
		t.Error("expected error for empty animation")
	}
}
