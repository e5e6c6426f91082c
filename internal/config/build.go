package config

// DEV is set once at startup from the binary's build flags. In dev mode the
// config file is rewritten on every run and logging defaults to debug.
var DEV bool

func SetDevMode(dev bool) { DEV = dev }

type Mode int

const (
	RELEASE Mode = iota
	DEBUG
)

func (mode Mode) String() string {
	switch mode {
	case RELEASE:
		return "release"
	case DEBUG:
		return "debug"
	}
	return "unknown"
}

func CurrentMode() Mode {
	if DEV {
		return DEBUG
	}
	return RELEASE
}
