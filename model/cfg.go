package model

// Config is the adjustable round setup. Values are validated when
// adjusted, never inside the simulation.
type Config struct {
	MaxTime  uint16 // seconds, multiple of 10, 60..990
	DropRate uint8  // percent, multiple of 5, 0..100
	MaxBombs uint8  // 1..MaxBombsCap
	MaxRange uint8  // 1..MaxRangeCap
}

const (
	defMaxTime  = 180
	defDropRate = 35
	defMaxBombs = 5
	defMaxRange = 9
)

func DefaultConfig() Config {
	return Config{
		MaxTime:  defMaxTime,
		DropRate: defDropRate,
		MaxBombs: defMaxBombs,
		MaxRange: defMaxRange,
	}
}

// Option selects one adjustable value on the options screen.
type Option int

const (
	OptTime Option = iota
	OptDropRate
	OptBombs
	OptRange
	OptionCount
)

func (o Option) Name() string {
	switch o {
	case OptTime:
		return "TIME"
	case OptDropRate:
		return "DROP RATE"
	case OptBombs:
		return "BOMBS"
	case OptRange:
		return "RANGE"
	default:
		return "N/A"
	}
}

func (c *Config) Increase(o Option) {
	switch o {
	case OptTime:
		if c.MaxTime < 990 {
			c.MaxTime += 10
		}
	case OptDropRate:
		if c.DropRate < 100 {
			c.DropRate += 5
		}
	case OptBombs:
		if c.MaxBombs < MaxBombsCap {
			c.MaxBombs++
		}
	case OptRange:
		if c.MaxRange < MaxRangeCap {
			c.MaxRange++
		}
	}
}

func (c *Config) Decrease(o Option) {
	switch o {
	case OptTime:
		if c.MaxTime > 60 {
			c.MaxTime -= 10
		}
	case OptDropRate:
		if c.DropRate > 0 {
			c.DropRate -= 5
		}
	case OptBombs:
		if c.MaxBombs > 1 {
			c.MaxBombs--
		}
	case OptRange:
		if c.MaxRange > 1 {
			c.MaxRange--
		}
	}
}

func (c *Config) Reset(o Option) {
	switch o {
	case OptTime:
		c.MaxTime = defMaxTime
	case OptDropRate:
		c.DropRate = defDropRate
	case OptBombs:
		c.MaxBombs = defMaxBombs
	case OptRange:
		c.MaxRange = defMaxRange
	}
}
