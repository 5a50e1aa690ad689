// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"sync"

	"github.com/gogpu/quadwarp"
)

// OpKind identifies a recorded canvas call.
type OpKind uint8

// Recorded canvas calls.
const (
	OpBeginPath OpKind = iota
	OpMoveTo
	OpLineTo
	OpClosePath
	OpClip
	OpCreatePattern
	OpSetFillPattern
	OpTransform
	OpFill
	OpSave
	OpRestore
)

var opNames = [...]string{
	OpBeginPath:      "BeginPath",
	OpMoveTo:         "MoveTo",
	OpLineTo:         "LineTo",
	OpClosePath:      "ClosePath",
	OpClip:           "Clip",
	OpCreatePattern:  "CreatePattern",
	OpSetFillPattern: "SetFillPattern",
	OpTransform:      "Transform",
	OpFill:           "Fill",
	OpSave:           "Save",
	OpRestore:        "Restore",
}

// String returns the canvas method name.
func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "Unknown"
}

// Op is one recorded canvas call.
type Op struct {
	Kind OpKind

	// Point holds the MoveTo/LineTo argument.
	Point quadwarp.Point

	// Matrix holds the Transform argument.
	Matrix quadwarp.Matrix

	// Depth is the Save depth at the time of the call, before a Save
	// pushes or a Restore pops.
	Depth int
}

// recordedPattern is the Pattern handed out by Recorder.CreatePattern.
type recordedPattern struct {
	bounds image.Rectangle
}

func (p recordedPattern) Bounds() image.Rectangle { return p.bounds }

// Recorder is a Target that records every call instead of drawing.
// It is used to inspect the command stream produced by quadwarp and to
// dry-run jobs without rasterizing.
//
// Recorder is safe for concurrent use.
type Recorder struct {
	width, height int

	// FillErr, when non-nil, is returned by every Fill call.
	FillErr error

	mu     sync.Mutex
	ops    []Op
	depth  int
	closed bool
}

// NewRecorder creates an empty recorder reporting the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) record(op Op) {
	r.mu.Lock()
	op.Depth = r.depth
	switch op.Kind {
	case OpSave:
		r.depth++
	case OpRestore:
		if r.depth > 0 {
			r.depth--
		}
	}
	r.ops = append(r.ops, op)
	r.mu.Unlock()
}

// BeginPath records a BeginPath call.
func (r *Recorder) BeginPath() { r.record(Op{Kind: OpBeginPath}) }

// MoveTo records a MoveTo call.
func (r *Recorder) MoveTo(x, y float64) { r.record(Op{Kind: OpMoveTo, Point: quadwarp.Pt(x, y)}) }

// LineTo records a LineTo call.
func (r *Recorder) LineTo(x, y float64) { r.record(Op{Kind: OpLineTo, Point: quadwarp.Pt(x, y)}) }

// ClosePath records a ClosePath call.
func (r *Recorder) ClosePath() { r.record(Op{Kind: OpClosePath}) }

// Clip records a Clip call.
func (r *Recorder) Clip() { r.record(Op{Kind: OpClip}) }

// CreatePattern records the call and returns a pattern with img's size.
func (r *Recorder) CreatePattern(img image.Image) (quadwarp.Pattern, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	r.record(Op{Kind: OpCreatePattern})
	return recordedPattern{bounds: image.Rectangle{Max: img.Bounds().Size()}}, nil
}

// SetFillPattern records a SetFillPattern call.
func (r *Recorder) SetFillPattern(quadwarp.Pattern) { r.record(Op{Kind: OpSetFillPattern}) }

// Transform records a Transform call.
func (r *Recorder) Transform(m quadwarp.Matrix) { r.record(Op{Kind: OpTransform, Matrix: m}) }

// Fill records a Fill call and returns FillErr.
func (r *Recorder) Fill() error {
	r.mu.Lock()
	closed := r.closed
	r.mu.Unlock()
	if closed {
		return ErrClosed
	}
	r.record(Op{Kind: OpFill})
	return r.FillErr
}

// Save records a Save call.
func (r *Recorder) Save() { r.record(Op{Kind: OpSave}) }

// Restore records a Restore call.
func (r *Recorder) Restore() { r.record(Op{Kind: OpRestore}) }

// Width returns the reported width.
func (r *Recorder) Width() int { return r.width }

// Height returns the reported height.
func (r *Recorder) Height() int { return r.height }

// Close marks the recorder closed. Further Fill calls fail.
func (r *Recorder) Close() error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	return nil
}

// Ops returns a copy of the recorded calls.
func (r *Recorder) Ops() []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// Count returns how many calls of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, op := range r.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Transforms returns the arguments of every Transform call in order.
func (r *Recorder) Transforms() []quadwarp.Matrix {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []quadwarp.Matrix
	for _, op := range r.ops {
		if op.Kind == OpTransform {
			out = append(out, op.Matrix)
		}
	}
	return out
}

// Depth returns the current Save depth.
func (r *Recorder) Depth() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.depth
}

// Reset discards all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.ops = nil
	r.depth = 0
	r.mu.Unlock()
}

var _ Target = (*Recorder)(nil)
