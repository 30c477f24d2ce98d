package configuration

import (
	"fmt"

	"github.com/joho/godotenv"
)

// GodotenvProvider is an implementation wrapping the Godotenv framework.
type GodotenvProvider struct{}

// Read reads Unix-type configuration files into a map (map[key]value). Later
// files do not override keys set by earlier ones.
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	data, err := godotenv.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config-godotenv) %w", err)
	}

	return data, nil
}
