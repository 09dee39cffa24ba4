package tempsim

import (
	"context"
	"math/rand/v2"
	"time"

	"golang.org/x/time/rate"
)

const (
	tempMin  = -100
	tempSpan = 171 // [-100F, 70F]
)

// Sensor samples an ambient temperature on a fixed cadence and appends each
// reading to the shared log. The cadence is enforced with a rate limiter so
// a slow append never causes samples to bunch up.
type Sensor struct {
	id      int
	log     *Log
	limiter *rate.Limiter
	rng     *rand.Rand
}

// NewSensor returns a sensor writing into log every interval.
func NewSensor(id int, log *Log, interval time.Duration, seed uint64) *Sensor {
	return &Sensor{
		id:      id,
		log:     log,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		rng:     rand.New(rand.NewPCG(seed, uint64(id)+1)),
	}
}

// Run samples until ctx is done. Cancellation is the normal way a sensor
// stops, so it is not reported as an error.
func (s *Sensor) Run(ctx context.Context) error {
	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil
		}
		s.log.Append(Reading{
			Temperature: s.rng.IntN(tempSpan) + tempMin,
			Timestamp:   time.Now(),
		})
	}
}
