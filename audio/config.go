package audio

// Config holds playback settings
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	MusicVolume  float64 // 0.0-1.0, applied on top of master
	SampleRate   int
}

// DefaultConfig returns the settings used when no game config overrides them
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		MusicVolume:  0.6,
		SampleRate:   44100,
	}
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
