// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func imageBackend(name string, priority int) Backend {
	return Backend{Name: name, Priority: priority, New: func(w, h int) (Target, error) {
		return NewImageSurface(w, h), nil
	}}
}

func failingBackend(name string, priority int, err error) Backend {
	return Backend{Name: name, Priority: priority, New: func(int, int) (Target, error) {
		return nil, err
	}}
}

func TestRegistryNamesOrder(t *testing.T) {
	r := NewRegistry(
		imageBackend("low", 1),
		imageBackend("high", 100),
		imageBackend("b-mid", 50),
		imageBackend("a-mid", 50),
	)
	want := []string{"high", "a-mid", "b-mid", "low"}
	if got := r.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRegistryRegisterReplaces(t *testing.T) {
	r := NewRegistry(imageBackend("x", 1), imageBackend("y", 5))
	r.Register(imageBackend("x", 10))

	want := []string{"x", "y"}
	if got := r.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRegistryNewTarget(t *testing.T) {
	r := NewRegistry(imageBackend("image", 10))

	tgt, err := r.NewTarget("image", 40, 30)
	if err != nil {
		t.Fatalf("NewTarget() = %v", err)
	}
	defer tgt.Close()
	if tgt.Width() != 40 || tgt.Height() != 30 {
		t.Errorf("size = %dx%d, want 40x30", tgt.Width(), tgt.Height())
	}
}

func TestRegistryNewTargetUnknown(t *testing.T) {
	r := NewRegistry(imageBackend("image", 10), imageBackend("record", 0))

	_, err := r.NewTarget("svg", 10, 10)
	var nf *BackendNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("NewTarget() error = %T %v, want *BackendNotFoundError", err, err)
	}
	if nf.Name != "svg" || !slices.Equal(nf.Known, []string{"image", "record"}) {
		t.Errorf("error = %+v", nf)
	}
	if want := `surface: unknown backend "svg" (available: image, record)`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestRegistryInvalidSize(t *testing.T) {
	called := false
	r := NewRegistry(Backend{Name: "image", New: func(w, h int) (Target, error) {
		called = true
		return NewImageSurface(w, h), nil
	}})

	tests := []struct{ w, h int }{{0, 10}, {10, 0}, {-1, -1}}
	for _, tt := range tests {
		for _, create := range []func() (Target, error){
			func() (Target, error) { return r.NewTarget("image", tt.w, tt.h) },
			func() (Target, error) { return r.NewDefaultTarget(tt.w, tt.h) },
		} {
			_, err := create()
			var se *SizeError
			if !errors.As(err, &se) || se.Width != tt.w || se.Height != tt.h {
				t.Errorf("%dx%d: error = %v, want *SizeError", tt.w, tt.h, err)
			}
		}
	}
	if called {
		t.Error("factory called for an invalid size")
	}
}

func TestRegistryNewDefaultTarget(t *testing.T) {
	boom := errors.New("boom")

	t.Run("preferred", func(t *testing.T) {
		r := NewRegistry(imageBackend("image", 10), Backend{Name: "record", New: func(w, h int) (Target, error) {
			return NewRecorder(w, h), nil
		}})
		tgt, err := r.NewDefaultTarget(8, 8)
		if err != nil {
			t.Fatalf("NewDefaultTarget() = %v", err)
		}
		if _, ok := tgt.(*ImageSurface); !ok {
			t.Errorf("target = %T, want *ImageSurface", tgt)
		}
	})

	t.Run("falls through", func(t *testing.T) {
		r := NewRegistry(failingBackend("gpu", 100, boom), imageBackend("image", 10))
		tgt, err := r.NewDefaultTarget(8, 8)
		if err != nil {
			t.Fatalf("NewDefaultTarget() = %v", err)
		}
		if _, ok := tgt.(*ImageSurface); !ok {
			t.Errorf("target = %T, want *ImageSurface", tgt)
		}
	})

	t.Run("all fail", func(t *testing.T) {
		r := NewRegistry(failingBackend("a", 2, boom), failingBackend("b", 1, boom))
		_, err := r.NewDefaultTarget(8, 8)
		if !errors.Is(err, boom) {
			t.Fatalf("NewDefaultTarget() = %v, want boom", err)
		}
		if !strings.Contains(err.Error(), "a: boom") || !strings.Contains(err.Error(), "b: boom") {
			t.Errorf("error %q does not name every backend", err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, err := NewRegistry().NewDefaultTarget(8, 8); !errors.Is(err, ErrNoBackendAvailable) {
			t.Errorf("NewDefaultTarget() = %v, want ErrNoBackendAvailable", err)
		}
	})
}

func TestBuiltinBackends(t *testing.T) {
	if got, want := Available(), []string{"image", "record"}; !slices.Equal(got, want) {
		t.Errorf("Available() = %v, want %v", got, want)
	}

	tgt, err := NewDefaultTarget(16, 16)
	if err != nil {
		t.Fatalf("NewDefaultTarget() = %v", err)
	}
	if _, ok := tgt.(*ImageSurface); !ok {
		t.Errorf("default target = %T, want *ImageSurface", tgt)
	}

	tgt, err = NewTarget("record", 16, 16)
	if err != nil {
		t.Fatalf("NewTarget(record) = %v", err)
	}
	if _, ok := tgt.(*Recorder); !ok {
		t.Errorf("record target = %T, want *Recorder", tgt)
	}
}
