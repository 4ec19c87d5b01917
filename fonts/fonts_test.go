package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFontWithSize(t *testing.T) {
	if err := LoadFontWithSize(HUD, goregular.TTF, 18); err != nil {
		t.Fatalf("LoadFontWithSize: %v", err)
	}
	face := HUD.Get()
	if face == nil {
		t.Fatal("expected face")
	}
	if h := face.Metrics().Height.Ceil(); h <= 0 {
		t.Fatalf("expected positive line height, got %d", h)
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont(Banner, []byte("not a font")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}
