package ioutils

import (
	"encoding/json"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/statekit/actions.go/ierrors"
)

// PathExists returns whether the given file or directory exists.
func PathExists(path string) (exists bool, isDirectory bool, err error) {
	fileInfo, err := os.Stat(path)
	if err == nil {
		return true, fileInfo.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, false, nil
	}

	return false, false, err
}

// CreateDirectory checks if the directory exists,
// otherwise it creates it with given permissions.
func CreateDirectory(dir string, perm os.FileMode) error {
	exists, isDir, err := PathExists(dir)
	if err != nil {
		return err
	}

	if exists {
		if !isDir {
			return ierrors.Errorf("given path is a file instead of a directory %s", dir)
		}

		return nil
	}

	return os.MkdirAll(dir, perm)
}

// ReadJSONFromFile reads JSON data from the file named by filename to data.
// ReadJSONFromFile uses json.Unmarshal to decode data.
func ReadJSONFromFile(filename string, data interface{}) error {
	jsonData, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	return json.Unmarshal(jsonData, data)
}

// WriteJSONToFile writes the JSON representation of data to a file named by filename.
// If the file does not exist, WriteJSONToFile creates it with permissions perm
// (before umask); otherwise WriteJSONToFile truncates it before writing, without changing permissions.
// WriteJSONToFile uses json.MarshalIndent to encode data.
func WriteJSONToFile(filename string, data interface{}, perm os.FileMode) (err error) {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return ierrors.Wrap(err, "unable to marshal data to JSON")
	}

	if _, err := f.Write(jsonData); err != nil {
		return ierrors.Wrapf(err, "unable to write JSON data to %s", filename)
	}

	if err := f.Sync(); err != nil {
		return ierrors.Wrapf(err, "unable to fsync file content to %s", filename)
	}

	return nil
}

// ReadTOMLFromFile reads TOML data from the file named by filename to data.
// ReadTOMLFromFile uses toml.Unmarshal to decode data.
func ReadTOMLFromFile(filename string, data interface{}) error {
	tomlData, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	return toml.Unmarshal(tomlData, data)
}

// WriteTOMLToFile writes the TOML representation of data to a file named by filename.
// If the file does not exist, WriteTOMLToFile creates it with permissions perm
// (before umask); otherwise WriteTOMLToFile truncates it before writing, without changing permissions.
// WriteTOMLToFile uses toml.Marshal to encode data. An additional header can be passed.
func WriteTOMLToFile(filename string, data interface{}, perm os.FileMode, header ...string) (err error) {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	tomlData, err := toml.Marshal(data)
	if err != nil {
		return ierrors.Wrap(err, "unable to marshal data to TOML")
	}

	if len(header) > 0 {
		if _, err := f.WriteString(header[0] + "\n"); err != nil {
			return ierrors.Wrapf(err, "unable to write header to %s", filename)
		}
	}

	if _, err := f.Write(tomlData); err != nil {
		return ierrors.Wrapf(err, "unable to write TOML data to %s", filename)
	}

	if err := f.Sync(); err != nil {
		return ierrors.Wrapf(err, "unable to fsync file content to %s", filename)
	}

	return nil
}
