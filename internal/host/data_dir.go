package host

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/helios-keeper/internal/config"
)

// heliosSubdir is the light-client directory inside the app directory.
const heliosSubdir = "helios"

type dataDirResolver struct {
	cfg           config.App
	userConfigDir func() (string, error)
}

func newDataDirResolver(cfg config.App) *dataDirResolver {
	return &dataDirResolver{cfg: cfg, userConfigDir: os.UserConfigDir}
}

// AppDir returns App.DataDir, or <user config dir>/<app name> when unset.
func (r *dataDirResolver) AppDir() (string, error) {
	if r.cfg.DataDir != "" {
		return filepath.Abs(r.cfg.DataDir)
	}

	base, err := r.userConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(base, r.cfg.Name), nil
}

// ResolveDataDir returns <app dir>/helios, creating it when missing and
// checking that it is writable.
func (r *dataDirResolver) ResolveDataDir() (string, error) {
	appDir, err := r.AppDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(appDir, heliosSubdir)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return "", fmt.Errorf("%s is not writable: %w", dir, err)
	}
	_ = probe.Close()
	_ = os.Remove(probe.Name())

	return dir, nil
}
