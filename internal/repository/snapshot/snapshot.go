package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"taskTracker/internal/domain/task/taskmodels"
	"taskTracker/internal/domain/user/usermodels"
)

// Version - текущая версия формата снапшота.
const Version = 1

var (
	ErrNotFound           = errors.New("snapshot not found")
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)

// Snapshot - весь набор пользователей и задач, пишется целиком при каждом коммите.
type Snapshot struct {
	Version int               `json:"version"`
	Users   []usermodels.User `json:"users"`
	Tasks   []taskmodels.Task `json:"tasks"`
}

func Empty() Snapshot {
	return Snapshot{
		Version: Version,
		Users:   []usermodels.User{},
		Tasks:   []taskmodels.Task{},
	}
}

func Encode(snap Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

func Decode(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, err
	}
	if snap.Version != Version {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, snap.Version)
	}
	if snap.Users == nil {
		snap.Users = []usermodels.User{}
	}
	if snap.Tasks == nil {
		snap.Tasks = []taskmodels.Task{}
	}
	return snap, nil
}
