package config

// Aocfile represents the structure of the aoc.yaml configuration file.
type Aocfile struct {
	Year         int    `yaml:"year"`
	BaseURL      string `yaml:"base_url"`
	SolutionsDir string `yaml:"solutions_dir"`
	InputDir     string `yaml:"input_dir"`
	Cargo        string `yaml:"cargo"`
	Release      bool   `yaml:"release"`
	RequireDay   bool   `yaml:"require_day"`
	Progress     *bool  `yaml:"progress"`
}
