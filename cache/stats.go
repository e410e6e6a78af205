package cache

import "time"

// maxLatencySamples bounds the sliding window of recent operation
// latencies used for the average; oldest samples are discarded first.
const maxLatencySamples = 100

// Stats is a snapshot of the store's hit/miss statistics.
type Stats struct {
	Hits          int64   `json:"hits"`
	Misses        int64   `json:"misses"`
	HitRate       float64 `json:"hit_rate"`
	AvgLatencyMs  float64 `json:"avg_latency_ms"`
	TotalRequests int64   `json:"total_requests"`
}

// Health reports the store's operational status.
type Health struct {
	Status  string                 `json:"status"`
	Details map[string]interface{} `json:"details"`
}

// statsTracker accumulates read statistics. Callers must hold the store
// mutex around record and snapshot.
type statsTracker struct {
	hits      int64
	misses    int64
	latencies []time.Duration
}

func (t *statsTracker) record(hit bool, latency time.Duration) {
	if hit {
		t.hits++
	} else {
		t.misses++
	}

	t.latencies = append(t.latencies, latency)
	if len(t.latencies) > maxLatencySamples {
		t.latencies = t.latencies[1:]
	}
}

func (t *statsTracker) snapshot() Stats {
	total := t.hits + t.misses

	var hitRate float64
	if total > 0 {
		hitRate = float64(t.hits) / float64(total)
	}

	var avg float64
	if len(t.latencies) > 0 {
		var sum time.Duration
		for _, l := range t.latencies {
			sum += l
		}
		avg = float64(sum.Microseconds()) / float64(len(t.latencies)) / 1000
	}

	return Stats{
		Hits:          t.hits,
		Misses:        t.misses,
		HitRate:       hitRate,
		AvgLatencyMs:  avg,
		TotalRequests: total,
	}
}
