package field

import "fmt"

// Frame is the evaluated output buffer for one Field
type Frame struct {
	Samples []Sample
}

// NewFrame allocates an output buffer matching n particles
func NewFrame(n int) *Frame {
	return &Frame{Samples: make([]Sample, n)}
}

// Len returns the sample count
func (fr *Frame) Len() int {
	if fr == nil {
		return 0
	}
	return len(fr.Samples)
}

// Evaluator runs the kernel over a whole field
type Evaluator struct {
	Kernel Kernel
}

func NewEvaluator(k Kernel) *Evaluator {
	return &Evaluator{Kernel: k}
}

// Evaluate fills out from f; buffer length mismatch is a configuration error, never clamped
func (e *Evaluator) Evaluate(f *Field, in FrameInputs, out *Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if out.Len() != f.Len() {
		return fmt.Errorf("%w: frame has %d samples, field has %d", ErrBufferMismatch, out.Len(), f.Len())
	}
	for i := 0; i < f.Len(); i++ {
		out.Samples[i] = EvaluateParticle(f.Particle(i), in, e.Kernel)
	}
	return nil
}
