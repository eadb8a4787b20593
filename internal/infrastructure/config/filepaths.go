package config

// FilepathsConfig locates the recipe book and the generated reports
type FilepathsConfig struct {
	Recipes string        `mapstructure:"recipes" validate:"required"`
	Results ResultsConfig `mapstructure:"results"`
}

// ResultsConfig holds report destinations. An empty path writes to stdout.
type ResultsConfig struct {
	Overview string `mapstructure:"overview"`
	Lookup   string `mapstructure:"lookup"`
}
