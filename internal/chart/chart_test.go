package chart

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderPie(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPie(&buf, "Likely Color Blind vs Normal Vision", []Slice{
		{Label: "Normal Vision", Value: 24},
		{Label: "Likely Color Blind", Value: 6},
	})
	if err != nil {
		t.Fatalf("RenderPie: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestRenderPie_DropsZeroSlices(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPie(&buf, "split", []Slice{
		{Label: "Normal Vision", Value: 10},
		{Label: "Likely Color Blind", Value: 0},
	})
	if err != nil {
		t.Fatalf("RenderPie with a zero slice: %v", err)
	}
}

func TestRenderPie_AllZero(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPie(&buf, "empty", []Slice{{Label: "A", Value: 0}})
	if err == nil {
		t.Error("expected error when every slice is zero")
	}
}

func TestRenderBars(t *testing.T) {
	var buf bytes.Buffer
	err := RenderBars(&buf, "Correct Answers per Case", []Bar{
		{Label: "Case 7 LCB", Value: 2, Hex: HexLikelyColorBlind},
		{Label: "Case 7 NV", Value: 20, Hex: HexNormalVision},
	})
	if err != nil {
		t.Fatalf("RenderBars: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestRenderBars_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderBars(&buf, "empty", nil); err == nil {
		t.Error("expected error for empty bar list")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pie.png")
	err := WriteFile(path, func(w io.Writer) error {
		return RenderPie(w, "split", []Slice{{Label: "Normal Vision", Value: 10}})
	})
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Error("file is not a PNG")
	}
}
