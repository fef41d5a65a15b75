package settings

import (
	"bufio"
	"os"
	"path/filepath"

	"accela.dev/launcher/internal/folder"
	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// Sync merges the values this run resolved into the settings file the GUI
// reads at startup. Keys already saved are kept when the launcher has no
// value for them, so hand-edits survive; keys the launcher resolves always
// win. The file is rewritten in full on every run.
func Sync(basePath string, resolved map[string]interface{}) (err error) {
	merged := make(map[string]interface{})
	for settingKey, settingValue := range resolved {
		merged[settingKey] = settingValue
	}

	settingsFilePath := filepath.Join(basePath, folder.SETTINGS)
	if _, err = os.Stat(settingsFilePath); !os.IsNotExist(err) {
		var settingsFileData []byte
		if settingsFileData, err = os.ReadFile(settingsFilePath); err != nil {
			return
		}
		savedSettingsMap := make(map[string]interface{})
		if err = toml.Unmarshal(settingsFileData, &savedSettingsMap); err != nil {
			logrus.Warn("Cannot parse the saved settings, rewriting them")
			logrus.Warnf("%+v", err)
			savedSettingsMap = make(map[string]interface{})
		}
		for settingKey, settingValue := range savedSettingsMap {
			if _, ok := merged[settingKey]; !ok {
				merged[settingKey] = settingValue
			}
		}
	}

	var file *os.File
	if file, err = os.OpenFile(settingsFilePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644); err != nil {
		return
	}
	defer file.Close()
	writer := bufio.NewWriter(file)
	if err = toml.NewEncoder(writer).Encode(merged); err != nil {
		return
	}
	return writer.Flush()
}

// Load reads the settings file back, mainly for the GUI and for tests.
func Load(basePath string) (settings map[string]interface{}, err error) {
	settings = make(map[string]interface{})
	var settingsFileData []byte
	if settingsFileData, err = os.ReadFile(filepath.Join(basePath, folder.SETTINGS)); err != nil {
		return
	}
	err = toml.Unmarshal(settingsFileData, &settings)
	return
}
