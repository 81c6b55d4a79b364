package mask

import "image"
import "testing"
import "math/rand"

import "golang.org/x/image/math/fixed"

func TestRasterizeEmpty(t *testing.T) {
	var rast DefaultRasterizer
	outline := (&outlineBuilder{}).moveTo(0, 0).segments
	mask, err := Rasterize(outline, &rast, fixed.Point26_6{})
	if err != nil || mask != nil {
		t.Fatalf("expected nil mask and error, got %v, %v", mask, err)
	}
	mask, err = Rasterize(nil, &rast, fixed.Point26_6{})
	if err != nil || mask != nil {
		t.Fatalf("expected nil mask and error, got %v, %v", mask, err)
	}
}

func TestDefaultRasterizerSquare(t *testing.T) {
	var rast DefaultRasterizer
	square := polySegments([]float64{1, -4, 5, -4, 5, 0, 1, 0})
	mask, err := Rasterize(square, &rast, fixed.Point26_6{})
	if err != nil { t.Fatal(err) }
	if mask.Rect != image.Rect(1, -4, 5, 0) {
		t.Fatalf("expected mask rect (1,-4)-(5,0), got %v", mask.Rect)
	}
	for i, value := range mask.Pix {
		if value != 255 { t.Fatalf("expected fully opaque square, got %d at #%d", value, i) }
	}

	// half pixel offset: same rect width + 1, partial coverage on the edges
	mask, err = Rasterize(square, &rast, fixed.Point26_6{ X: 32 })
	if err != nil { t.Fatal(err) }
	if mask.Rect.Dx() != 5 || mask.Rect.Dy() != 4 {
		t.Fatalf("expected 5x4 mask, got %v", mask.Rect)
	}
	if mask.AlphaAt(mask.Rect.Min.X, mask.Rect.Min.Y).A == 255 {
		t.Fatal("expected partial coverage on the left edge")
	}
}

func TestSharpRasterizer(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var rast SharpRasterizer
	if rast.GetThreshold() != DefaultSharpThreshold { t.Fatal("unexpected zero value threshold") }

	for i := 0; i < 16; i++ {
		outline := randomSegments(rng, 6, 24, 24)
		origin := fixed.Point26_6{ X: fixed.Int26_6(rng.Intn(64)), Y: fixed.Int26_6(rng.Intn(64)) }
		mask, err := Rasterize(outline, &rast, origin)
		if err != nil { t.Fatal(err) }
		for j, value := range mask.Pix {
			if value != 0 && value != 255 {
				t.Fatalf("outline #%d: non-bilevel value %d at #%d", i, value, j)
			}
		}
	}

	rast.SetThreshold(255)
	if rast.GetThreshold() != 255 { t.Fatal("threshold not stored") }
	triangle := polySegments([]float64{0, 0, 8, 0, 0, 8})
	mask, err := Rasterize(triangle, &rast, fixed.Point26_6{})
	if err != nil { t.Fatal(err) }
	if mask.AlphaAt(7, 7).A != 0 || mask.AlphaAt(0, 0).A != 255 {
		t.Fatal("unexpected coverage for the triangle")
	}
}

func TestSkewedRasterizer(t *testing.T) {
	var rast DefaultRasterizer
	rast.SetSkewFactor(3.0)
	if rast.GetSkewFactor() != 1.0 { t.Fatalf("expected clamped skew 1.0, got %f", rast.GetSkewFactor()) }

	// square above the baseline: the top moves 4 pixels to the right
	square := polySegments([]float64{0, -4, 4, -4, 4, 0, 0, 0})
	mask, err := Rasterize(square, &rast, fixed.Point26_6{})
	if err != nil { t.Fatal(err) }
	if mask.Rect != image.Rect(0, -4, 8, 0) {
		t.Fatalf("expected skewed mask rect (0,-4)-(8,0), got %v", mask.Rect)
	}
	if mask.AlphaAt(7, -4).A == 0 || mask.AlphaAt(0, -4).A != 0 {
		t.Fatal("expected the top row to lean right")
	}

	rast.SetSkewFactor(-1.0)
	mask, err = Rasterize(square, &rast, fixed.Point26_6{})
	if err != nil { t.Fatal(err) }
	if mask.Rect != image.Rect(-4, -4, 4, 0) {
		t.Fatalf("expected skewed mask rect (-4,-4)-(4,0), got %v", mask.Rect)
	}
}

func TestSignatures(t *testing.T) {
	var def DefaultRasterizer
	var sharp SharpRasterizer
	if def.Signature() != 0 { t.Fatal("expected zero signature for the default rasterizer") }
	if sharp.Signature() == def.Signature() { t.Fatal("sharp and default rasterizers must differ") }

	sig := sharp.Signature()
	sharp.SetThreshold(200)
	if sharp.Signature() == sig { t.Fatal("threshold must affect the signature") }
	sig = sharp.Signature()
	sharp.SetSkewFactor(0.2)
	if sharp.Signature() == sig { t.Fatal("skew must affect the signature") }
	def.SetSkewFactor(0.2)
	other := DefaultRasterizer{}
	other.SetSkewFactor(-0.2)
	if def.Signature() == other.Signature() { t.Fatal("opposite skews must differ") }
}
