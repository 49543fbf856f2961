package util

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"os"
	"path/filepath"
)

const runIdName = "run.id"

// RunId identifies a directory of samples and the settings that produced them.
type RunId struct {
	Id     string            `json:"id"`
	Values map[string]string `json:"values,omitempty"`
}

func WriteRunId(id, outPath string, values map[string]string) error {
	data, err := json.MarshalIndent(&RunId{Id: id, Values: values}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outPath, runIdName), data, 0644)
}

func ReadRunId(path string) (*RunId, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	runId := &RunId{}
	if err := json.Unmarshal(data, runId); err != nil {
		return nil, err
	}
	return runId, nil
}

// DiscoverRuns finds every run.id below root, keyed by the directory holding it.
func DiscoverRuns(root string) (map[string]*RunId, error) {
	runs := make(map[string]*RunId)
	err := filepath.Walk(root, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() || fi.Name() != runIdName {
			return nil
		}
		runId, err := ReadRunId(path)
		if err != nil {
			return errors.Wrapf(err, "error reading [%s]", path)
		}
		runs[filepath.Dir(path)] = runId
		return nil
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}
