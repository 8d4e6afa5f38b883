package config

type Config struct {
	InputPaths   []string
	OutputDir    string
	BaseID       int // First sequence id of every slide document
	Workers      int
	Watch        bool
	BuildVersion string
}
