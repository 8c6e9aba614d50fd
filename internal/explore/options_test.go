package explore

import "testing"

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	if o.MaxIterations != DefaultMaxIterations {
		t.Errorf("MaxIterations = %d, want %d", o.MaxIterations, DefaultMaxIterations)
	}
	if o.MaxSteps != DefaultMaxSteps {
		t.Errorf("MaxSteps = %d, want %d", o.MaxSteps, DefaultMaxSteps)
	}
	if o.Strategy != StrategyDFS {
		t.Errorf("Strategy = %q, want %q", o.Strategy, StrategyDFS)
	}
	if o.Seed != DefaultSeed {
		t.Errorf("Seed = %d, want %d", o.Seed, DefaultSeed)
	}
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv(EnvMaxIterations, "123")
	t.Setenv(EnvMaxSteps, "456")
	t.Setenv(EnvStrategy, StrategyRandom)
	t.Setenv(EnvSeed, "-7")

	o := OptionsFromEnv()
	if o.MaxIterations != 123 || o.MaxSteps != 456 || o.Strategy != StrategyRandom || o.Seed != -7 {
		t.Errorf("OptionsFromEnv() = %+v", o)
	}
}

func TestOptionsFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv(EnvMaxIterations, "not-a-number")
	t.Setenv(EnvMaxSteps, "-5")
	t.Setenv(EnvStrategy, "bogo")
	t.Setenv(EnvSeed, "")

	o := OptionsFromEnv().withDefaults()
	if o.MaxIterations != DefaultMaxIterations {
		t.Errorf("MaxIterations = %d, want default", o.MaxIterations)
	}
	if o.MaxSteps != DefaultMaxSteps {
		t.Errorf("MaxSteps = %d, want default", o.MaxSteps)
	}
	if o.Strategy != StrategyDFS {
		t.Errorf("Strategy = %q, want default", o.Strategy)
	}
	if o.Seed != DefaultSeed {
		t.Errorf("Seed = %d, want default", o.Seed)
	}
}
