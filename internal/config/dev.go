package config

var DEV bool

func SetDevMode(dev bool) {
	DEV = dev
}
