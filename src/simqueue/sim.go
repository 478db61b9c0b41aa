package simqueue

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Simulate runs policy on a numServers-server queue fed by Poisson arrivals at
// rate rho with job sizes from dist, until numJobs jobs complete, and returns
// the mean response time. dist must have mean 1 so rho is the offered load.
//
// Job sizes are sampled only at arrival events, so for a fixed seed the
// arrival process is identical across policies and results are directly
// comparable.
func Simulate(policy Policy, numServers int, numJobs uint64, dist Hyperexp, rho float64, seed uint64) (float64, error) {
	if math.Abs(dist.Mean()-1) > epsilon {
		return 0, fmt.Errorf("job-size distribution mean must be 1, got %v", dist.Mean())
	}
	if numServers < 1 {
		return 0, fmt.Errorf("numServers must be positive, got %d", numServers)
	}
	rng := rand.New(rand.NewSource(seed))
	arrivalDist := distuv.Exponential{Rate: rho, Src: rng}

	var queue []Job
	var numCompletions uint64
	totalResponse := 0.0
	time := 0.0
	nextArrivalTime := arrivalDist.Rand()

	for numCompletions < numJobs {
		sort.Slice(queue, func(i, j int) bool { return queue[i].Remaining < queue[j].Remaining })
		serviceIndices, serviceWindow := policy.Assign(queue, numServers)
		nextDuration := math.Min(serviceWindow, nextArrivalTime-time)
		wasArrival := nextDuration < serviceWindow
		time += nextDuration

		var removalIndices []int
		for _, si := range serviceIndices {
			queue[si].Remaining -= nextDuration / float64(numServers)
			if queue[si].Remaining < epsilon {
				removalIndices = append(removalIndices, si)
			}
		}
		// Remove back to front so earlier indices stay valid.
		for i := len(removalIndices) - 1; i >= 0; i-- {
			ri := removalIndices[i]
			job := queue[ri]
			queue = append(queue[:ri], queue[ri+1:]...)
			totalResponse += time - job.ArrivalTime
			numCompletions++
		}

		if wasArrival {
			queue = append(queue, Job{ArrivalTime: time, Remaining: dist.Sample(rng)})
			nextArrivalTime = time + arrivalDist.Rand()
		}
	}
	return totalResponse / float64(numCompletions), nil
}
