package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "config.load",
		Kind: KindNotFound,
		Path: "multirange.yaml",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindNotFound {
		t.Fatalf("expected kind %s", KindNotFound)
	}
	if !strings.Contains(err.Error(), "path=multirange.yaml") {
		t.Fatalf("expected path in message, got %q", err.Error())
	}
}

func TestConfigErrorClassification(t *testing.T) {
	err := ConfigError("slider.new", "step must be greater than 0")

	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected IsKind to match invalid config")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig sentinel")
	}
	if IsKind(err, KindInvalidRange) {
		t.Fatalf("did not expect invalid range kind")
	}
}

func TestInvalidRangeErrorClassification(t *testing.T) {
	err := InvalidRangeError("slider.add", 10, 10)

	if !IsKind(err, KindInvalidRange) {
		t.Fatalf("expected IsKind to match invalid range")
	}
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange sentinel")
	}
}

func TestIsKindPlainError(t *testing.T) {
	if IsKind(errors.New("plain"), KindNotFound) {
		t.Fatalf("plain errors carry no kind")
	}
}
