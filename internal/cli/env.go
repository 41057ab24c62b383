package cli

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the dotenv file read at startup when present.
const DefaultEnvFile = ".env"

// LoadEnvFile loads AUTHENC_* settings from a dotenv file into the process
// environment. A missing file is not an error. Variables that are already
// set keep their values.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}
