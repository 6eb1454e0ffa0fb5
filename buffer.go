package cvdsim

import (
	"context"
	"fmt"

	"github.com/kovidgoyal/go-parallel"
)

// How many pixels a worker processes between cancellation checks.
const cancelCheckStride = 4096

// SimulateBuffer applies the simulation to every pixel of a flat byte
// buffer of repeating R, G, B, A groups, leaving each alpha byte
// untouched. Pixel groups are independent, so the work is split across a
// worker pool, workers <= 0 uses one worker per CPU.
//
// The buffer is rewritten in place, but only via a single publish after
// every range has completed: workers operate on a scratch copy, so if ctx
// is cancelled mid-run the caller's buffer is left byte-for-byte as it
// was and ctx.Err() is returned. A partially transformed buffer is never
// observable.
func SimulateBuffer(ctx context.Context, pix []uint8, m Matrix, strength float64, workers int) error {
	if len(pix)%4 != 0 {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidBufferLength, len(pix))
	}
	if len(pix) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	scratch := make([]uint8, len(pix))
	copy(scratch, pix)
	convert := simulator8(m, strength)
	f := func(start, limit int) {
		for i := start; i < limit; i++ {
			if (i-start)%cancelCheckStride == 0 && ctx.Err() != nil {
				return
			}
			convert(scratch[4*i : 4*i+3 : 4*i+3])
		}
	}
	if workers < 0 {
		workers = 0
	}
	if err := parallel.Run_in_parallel_over_range(workers, f, 0, len(pix)/4); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	copy(pix, scratch)
	return nil
}
