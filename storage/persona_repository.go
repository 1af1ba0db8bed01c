package storage

import (
	"errors"
	"strings"

	"github.com/echolytics/persona-engine/core"
)

const (
	personaPrefix = "persona:"
	recordPrefix  = "record:"
)

// SavePersona caches a generated persona keyed by username.
func (s *BadgerStore) SavePersona(p *core.Persona) error {
	return s.PutObject(personaPrefix+p.Username, p)
}

// GetPersona returns the cached persona for a username, or core.ErrNotFound.
func (s *BadgerStore) GetPersona(username string) (*core.Persona, error) {
	var p core.Persona
	if err := s.GetObject(personaPrefix+username, &p); err != nil {
		if errors.Is(err, errKeyNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// DeletePersona evicts a cached persona.
func (s *BadgerStore) DeletePersona(username string) error {
	return s.Delete(personaPrefix + username)
}

// ListPersonas returns the usernames of every cached persona.
func (s *BadgerStore) ListPersonas() ([]string, error) {
	entries, err := s.GetByPrefix(personaPrefix)
	if err != nil {
		return nil, err
	}

	usernames := make([]string, 0, len(entries))
	for key := range entries {
		usernames = append(usernames, strings.TrimPrefix(key, personaPrefix))
	}
	return usernames, nil
}

// SaveRecord caches a fetched activity record keyed by username.
func (s *BadgerStore) SaveRecord(rec *core.ActivityRecord) error {
	return s.PutObject(recordPrefix+rec.Username, rec)
}

// GetRecord returns the cached activity record for a username, or core.ErrNotFound.
func (s *BadgerStore) GetRecord(username string) (*core.ActivityRecord, error) {
	var rec core.ActivityRecord
	if err := s.GetObject(recordPrefix+username, &rec); err != nil {
		if errors.Is(err, errKeyNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}
