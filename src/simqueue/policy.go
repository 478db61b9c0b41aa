package simqueue

import "math"

// epsilon absorbs floating-point drift in remaining sizes and cutoff checks.
const epsilon = 1e-8

// Job is one customer in the queue.
type Job struct {
	ArrivalTime float64
	Remaining   float64
}

// Policy decides which queued jobs the servers run next.
//
// Assign receives the queue pre-sorted ascending by remaining size and returns
// the indices of the jobs to serve plus the service window. The window is
// expressed in total work across all servers: each served job's remaining size
// decreases by elapsed/numServers while it runs.
type Policy interface {
	Name() string
	Assign(queue []Job, numServers int) (indices []int, window float64)
}

// SRPT serves the jobs with the smallest remaining processing time.
type SRPT struct{}

func (SRPT) Name() string { return "SRPT" }

func (SRPT) Assign(queue []Job, numServers int) ([]int, float64) {
	n := len(queue)
	if n > numServers {
		n = numServers
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	window := math.Inf(1)
	if len(queue) > 0 {
		window = queue[0].Remaining
	}
	return indices, window * float64(numServers)
}

// SRPTExcept is SRPT with one exception, active only when exactly three jobs
// are queued on two servers: if the second job is small enough and the third
// large enough, serve the first and third jobs instead of the first two.
type SRPTExcept struct {
	SmallCut float64
	BigCut   float64
}

func (SRPTExcept) Name() string { return "SRPTExcept" }

func (p SRPTExcept) Assign(queue []Job, numServers int) ([]int, float64) {
	if len(queue) != 3 {
		return SRPT{}.Assign(queue, numServers)
	}
	r1 := queue[0].Remaining
	r2 := queue[1].Remaining
	r3 := queue[2].Remaining
	switch {
	case r2 <= p.SmallCut+epsilon && r3 >= p.BigCut-epsilon:
		// Don't let the third job age down below the big cutoff.
		window := math.Min(r1, r3-p.BigCut+2*epsilon)
		return []int{0, 2}, window * float64(numServers)
	case r2-p.SmallCut < r1 && r3-p.BigCut < r1 && r3 >= p.BigCut+epsilon:
		// Serve the first two only long enough for the exception to arm.
		window := math.Max(r2-p.SmallCut, r3-p.BigCut) + epsilon
		return []int{0, 1}, window * float64(numServers)
	default:
		return []int{0, 1}, r1 * float64(numServers)
	}
}
