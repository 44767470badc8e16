package app

import (
	"fmt"

	"go.uber.org/zap"
)

// State is the pair of markers every engine operation reads and returns.
type State struct {
	Active   string `json:"active"`
	Previous string `json:"previous,omitempty"`
}

type Listing struct {
	State
	Profiles []string `json:"profiles"`
}

// Engine applies switch, swap, rename and delete to a profile store and the
// previous-profile record.
type Engine struct {
	store   ProfileStore
	records RecordStore
	tracker *PreviousTracker
	log     *zap.Logger
}

func NewEngine(store ProfileStore, records RecordStore, tracker *PreviousTracker, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{store: store, records: records, tracker: tracker, log: log}
}

// Open wires an engine to the store and record locations named by cfg.
func Open(cfg Config, log *zap.Logger) (*Engine, Paths, error) {
	if log == nil {
		log = zap.NewNop()
	}
	paths, err := resolvePaths(cfg)
	if err != nil {
		return nil, Paths{}, WrapExit(ExitIOFailure, err)
	}
	backend, err := storeFor(cfg, paths, log)
	if err != nil {
		return nil, Paths{}, WrapExit(ExitUserError, err)
	}
	log.Debug("engine ready",
		zap.String("configDir", paths.ConfigDir),
		zap.String("previousPath", paths.PreviousPath),
		zap.String("store", fmt.Sprintf("%T", backend)),
	)
	tracker := NewPreviousTracker(paths.PreviousPath, log)
	return NewEngine(backend, backend, tracker, log), paths, nil
}

// switchTransition computes the state after activating target. The second
// result reports whether the previous record has to be written.
func switchTransition(cur State, target string) (State, bool) {
	if cur.Active == "" || cur.Active == target {
		return State{Active: target, Previous: cur.Previous}, false
	}
	return State{Active: target, Previous: cur.Active}, true
}

func (e *Engine) Switch(target string) (State, error) {
	if err := validateProfileName(target); err != nil {
		return State{}, WrapExit(ExitUserError, err)
	}
	state, err := e.switchTo(target)
	if err != nil {
		return State{}, WrapExit(classifyExit(err), err)
	}
	return state, nil
}

// Swap switches back to the recorded previous profile.
func (e *Engine) Swap() (State, error) {
	previous, err := e.tracker.Read()
	if err != nil {
		return State{}, WrapExit(ExitIOFailure, fmt.Errorf("read previous profile: %w", err))
	}
	if previous == "" {
		return State{}, WrapExit(ExitUserError, fmt.Errorf("%w: switch profiles at least once first", ErrNoPreviousContext))
	}
	state, err := e.switchTo(previous)
	if err != nil {
		return State{}, WrapExit(classifyExit(err), err)
	}
	return state, nil
}

func (e *Engine) switchTo(target string) (State, error) {
	active, err := e.store.ActiveProfile()
	if err != nil {
		return State{}, fmt.Errorf("query active profile: %w", err)
	}
	previous, err := e.tracker.Read()
	if err != nil {
		return State{}, fmt.Errorf("read previous profile: %w", err)
	}

	next, record := switchTransition(State{Active: active, Previous: previous}, target)
	e.log.Debug("activating profile", zap.String("from", active), zap.String("to", target))
	if err := e.store.Activate(target); err != nil {
		return State{}, fmt.Errorf("activate %q: %w", target, err)
	}
	if record {
		if err := e.tracker.Save(next.Previous); err != nil {
			return State{}, fmt.Errorf("record previous profile: %w", err)
		}
	}
	return next, nil
}

// Rename moves oldName's record to newName and activates it. With force, an
// existing newName record is deleted first; that deletion cannot be undone.
// The previous record is left as is even if it named oldName.
func (e *Engine) Rename(oldName, newName string, force bool) (State, error) {
	state, err := e.rename(oldName, newName, force)
	if err != nil {
		return State{}, WrapExit(classifyExit(err), err)
	}
	return state, nil
}

func (e *Engine) rename(oldName, newName string, force bool) (State, error) {
	if err := validateProfileName(newName); err != nil {
		return State{}, err
	}
	oldName, err := e.resolve(oldName)
	if err != nil {
		return State{}, err
	}
	previous, err := e.tracker.Read()
	if err != nil {
		return State{}, fmt.Errorf("read previous profile: %w", err)
	}

	if oldName != newName {
		taken, err := e.records.RecordExists(newName)
		if err != nil {
			return State{}, err
		}
		if taken {
			if !force {
				return State{}, &NameCollisionError{Old: oldName, New: newName}
			}
			exists, err := e.records.RecordExists(oldName)
			if err != nil {
				return State{}, err
			}
			if !exists {
				return State{}, fmt.Errorf("%w %q", ErrUnknownProfile, oldName)
			}
			e.log.Warn("overwriting existing profile", zap.String("profile", newName), zap.String("renamedFrom", oldName))
			if err := e.records.RemoveRecord(newName); err != nil {
				return State{}, fmt.Errorf("remove %q: %w", newName, err)
			}
		}
		e.log.Debug("moving profile record", zap.String("from", oldName), zap.String("to", newName))
		if err := e.records.MoveRecord(oldName, newName); err != nil {
			return State{}, fmt.Errorf("rename %q to %q: %w", oldName, newName, err)
		}
	}

	if err := e.store.Activate(newName); err != nil {
		return State{}, fmt.Errorf("activate %q: %w", newName, err)
	}
	return State{Active: newName, Previous: previous}, nil
}

// Delete removes a profile's settings record and returns the resolved name.
func (e *Engine) Delete(name string) (string, error) {
	resolved, err := e.resolve(name)
	if err != nil {
		return "", WrapExit(classifyExit(err), err)
	}
	e.log.Debug("deleting profile", zap.String("profile", resolved))
	if err := e.store.Delete(resolved); err != nil {
		err = fmt.Errorf("delete %q: %w", resolved, err)
		return "", WrapExit(classifyExit(err), err)
	}
	return resolved, nil
}

func (e *Engine) Current() (string, error) {
	active, err := e.store.ActiveProfile()
	if err != nil {
		return "", WrapExit(classifyExit(err), err)
	}
	return active, nil
}

func (e *Engine) List() (Listing, error) {
	profiles, err := e.store.ListProfiles()
	if err != nil {
		return Listing{}, WrapExit(classifyExit(err), fmt.Errorf("list profiles: %w", err))
	}
	previous, err := e.tracker.Read()
	if err != nil {
		return Listing{}, WrapExit(ExitIOFailure, fmt.Errorf("read previous profile: %w", err))
	}
	listing := Listing{State: State{Previous: previous}, Profiles: profiles}
	if listing.Profiles == nil {
		listing.Profiles = []string{}
	}
	if len(profiles) == 0 {
		return listing, nil
	}
	active, err := e.store.ActiveProfile()
	if err != nil {
		return Listing{}, WrapExit(classifyExit(err), fmt.Errorf("query active profile: %w", err))
	}
	listing.Active = active
	return listing, nil
}

// resolve expands the "." sentinel to the active profile.
func (e *Engine) resolve(name string) (string, error) {
	if name != CurrentSentinel {
		return name, validateProfileName(name)
	}
	active, err := e.store.ActiveProfile()
	if err != nil {
		return "", fmt.Errorf("query active profile: %w", err)
	}
	return active, validateProfileName(active)
}
