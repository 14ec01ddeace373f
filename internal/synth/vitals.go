package synth

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

const (
	heartRateBaseline = 70.0
	systolicBaseline  = 120.0
	spo2Baseline      = 95.0

	// circadianPeriod is the period, in samples, of the sinusoid layered
	// on top of the heart-rate random walk.
	circadianPeriod = 24.0

	spo2Min = 90.0
	spo2Max = 100.0
)

// VitalSigns holds hourly samples for the three monitored signals over a
// fixed window ending at "now".
type VitalSigns struct {
	Timestamps []time.Time
	HeartRate  []float64
	SystolicBP []float64
	SpO2       []float64
}

// Len returns the number of samples per signal
func (v *VitalSigns) Len() int {
	return len(v.Timestamps)
}

// VitalSigns simulates the three signals over the given number of hourly
// samples. Heart rate is a cumulative random walk with a circadian sinusoid,
// systolic blood pressure a damped random walk, and SpO2 independent
// Gaussian noise clamped to a realistic range.
func (s *Synthesizer) VitalSigns(now time.Time, hours int) *VitalSigns {
	v := &VitalSigns{
		Timestamps: make([]time.Time, hours),
		HeartRate:  make([]float64, hours),
		SystolicBP: make([]float64, hours),
		SpO2:       make([]float64, hours),
	}

	// Hourly samples, oldest first, with the last sample at "now".
	for i := 0; i < hours; i++ {
		v.Timestamps[i] = now.Add(-time.Duration(hours-1-i) * time.Hour)
	}

	hrSteps := make([]float64, hours)
	for i := range hrSteps {
		hrSteps[i] = s.rng.NormFloat64()
	}
	hrWalk := floats.CumSum(make([]float64, hours), hrSteps)
	for i := range hrWalk {
		v.HeartRate[i] = heartRateBaseline + hrWalk[i] +
			10*math.Sin(float64(i)*2*math.Pi/circadianPeriod)
	}

	bpSteps := make([]float64, hours)
	for i := range bpSteps {
		bpSteps[i] = s.rng.NormFloat64() * 0.5
	}
	bpWalk := floats.CumSum(make([]float64, hours), bpSteps)
	for i := range bpWalk {
		v.SystolicBP[i] = systolicBaseline + bpWalk[i]
	}

	for i := range v.SpO2 {
		v.SpO2[i] = clamp(spo2Baseline+s.rng.NormFloat64()*2, spo2Min, spo2Max)
	}

	return v
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
