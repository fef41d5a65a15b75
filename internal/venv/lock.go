package venv

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"accela.dev/launcher/internal/folder"
	"github.com/sirupsen/logrus"
)

// creationLock serializes environment creation between concurrent launcher
// instances. Acquisition is exclusive: a second instance fails fast with an
// actionable error instead of racing on the environment directory.
type creationLock struct {
	path string
}

func acquireCreationLock(basePath string) (lock *creationLock, err error) {
	lockPath := filepath.Join(basePath, folder.ENVIRONMENT_LOCK)
	var file *os.File
	if file, err = os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644); err != nil {
		if os.IsExist(err) {
			err = fmt.Errorf("environment creation already in progress (%s exists)", lockPath)
		}
		return
	}
	file.WriteString(strconv.Itoa(os.Getpid()))
	file.Close()
	lock = &creationLock{path: lockPath}
	return
}

func (lock *creationLock) release() {
	if err := os.Remove(lock.path); err != nil {
		logrus.Warn("Cannot remove the environment creation lock")
		logrus.Warnf("%+v", err)
	}
}
