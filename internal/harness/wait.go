package harness

import "context"

// WaitForValue polls sig once per rising edge of clk until it equals target.
//
// Exactly one edge is consumed per poll, so a match on the n-th poll returns
// after exactly n edges. After maxTicks polls without a match it returns a
// *TimeoutError; it never consumes more than maxTicks edges and never returns
// a value other than target.
func WaitForValue(ctx context.Context, clk Clock, sig Signal, target uint64, maxTicks int) (uint64, error) {
	for i := 0; i < maxTicks; i++ {
		if err := clk.RisingEdge(ctx); err != nil {
			return 0, err
		}
		if v := sig.Value(); v == target {
			return v, nil
		}
	}
	return 0, &TimeoutError{
		Signal:   sig.Name(),
		Target:   target,
		MaxTicks: maxTicks,
		Last:     sig.Value(),
	}
}
