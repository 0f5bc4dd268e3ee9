package files

import (
	"os"
	"strings"
)

// ReadOutputFile reads the specified output file and returns its text content.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}
