package folder

import "path/filepath"

// Environment layout, relative to the working directory
const ENVIRONMENT = ".venv"
const MANIFEST = "requirements.txt"
const SETTINGS = "launcher.cfg"
const DATA = "data"

// Lock held while the environment is being created
const ENVIRONMENT_LOCK = ".venv.lock"

var DatabasePath = filepath.Join(DATA, "history.sqlite3")

// ActivationMarker is the file whose presence marks a previously
// completed environment creation.
func ActivationMarker(environmentPath string) string {
	return filepath.Join(environmentPath, "bin", "activate")
}

// BinPath holds the environment's interpreter and installed entry points.
func BinPath(environmentPath string) string {
	return filepath.Join(environmentPath, "bin")
}
