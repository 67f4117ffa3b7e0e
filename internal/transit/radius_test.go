package transit

import (
	"errors"
	"math"
	"testing"
)

func TestPlanetRadiusPointEstimate(t *testing.T) {
	rp, rpErr, err := PlanetRadius(0.01, 7e8, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(rp-0.1*7e8) > 1e-3 {
		t.Errorf("expected radius %g, got %g", 0.1*7e8, rp)
	}
	if rpErr != 0 {
		t.Errorf("expected zero uncertainty without depth error, got %g", rpErr)
	}
}

func TestPlanetRadiusNegativeDepth(t *testing.T) {
	_, _, err := PlanetRadius(-0.01, 7e8, 0)
	if err == nil {
		t.Fatal("expected domain error for negative depth")
	}

	var derr *DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DomainError, got %T", err)
	}
	if derr.Quantity != "deltaF" {
		t.Errorf("expected deltaF flagged, got %s", derr.Quantity)
	}
}

func TestPlanetRadiusZeroDepth(t *testing.T) {
	_, _, err := PlanetRadius(0, 7e8, 0.001)
	if err == nil {
		t.Fatal("expected domain error for zero depth")
	}
}

func TestPlanetRadiusRejectsBadStar(t *testing.T) {
	if _, _, err := PlanetRadius(0.01, 0, 0); err == nil {
		t.Error("expected error for zero stellar radius")
	}
	if _, _, err := PlanetRadius(0.01, 7e8, -0.001); err == nil {
		t.Error("expected error for negative uncertainty")
	}
}
