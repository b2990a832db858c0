package engine

// Params is the full tuning surface of a round, resolved by the caller from
// difficulty presets and configuration. Policy constants (starvation
// threshold, miss penalty, credit values) are parameters here rather than
// literals so tests and configs can vary them.
type Params struct {
	// Field bounds in cells. Letters spawn at the top edge and miss when
	// their Y exceeds FieldH.
	FieldW float64
	FieldH float64

	// Spawn loop.
	SpawnInterval  float64 // Seconds between spawn bursts
	MaxBurst       int     // Letters per burst are 1..MaxBurst
	BaseFallSpeed  float64 // Cells per second before jitter
	VelocityJitter float64 // Fractional jitter, e.g. 0.25 for +/-25%
	NoiseLevel     float64 // Probability a spawn is a noise letter

	// Fairness guard.
	StarvationTime float64 // Seconds without a needed spawn before forcing
	PulseTime      float64 // Seconds the fairness pulse stays visible

	// Catch resolution hit area around the input point, in cells.
	HitRadiusX float64
	HitRadiusY float64

	// Round economy.
	StartingCredits int
	MissPenalty     int

	// Pool sizing and cleanup cadence.
	PoolInitial       int
	PoolMax           int
	CleanupEveryTicks int
}

// DefaultParams returns playable tuning for an 80x24 field at normal
// difficulty, used by tests and as a fallback.
func DefaultParams() Params {
	return Params{
		FieldW:            60,
		FieldH:            22,
		SpawnInterval:     0.8,
		MaxBurst:          2,
		BaseFallSpeed:     4.5,
		VelocityJitter:    0.25,
		NoiseLevel:        0.5,
		StarvationTime:    4.0,
		PulseTime:         3.0,
		HitRadiusX:        1.5,
		HitRadiusY:        1.5,
		StartingCredits:   10,
		MissPenalty:       1,
		PoolInitial:       12,
		PoolMax:           48,
		CleanupEveryTicks: 180,
	}
}
