package models

// CategoryConfig is one category rule from the categories YAML file.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig is the top-level structure of the categories YAML file.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// Correction is one learned (description, category) pair from the
// corrections store.
type Correction struct {
	Description string `csv:"Description"`
	Category    string `csv:"Category"`
}
