package models

import (
	"github.com/Rorical/RoriLingo/internal/langs"
	"github.com/Rorical/RoriLingo/internal/share"
)

// Session is the per-run language selection. It is never persisted.
type Session struct {
	SourceLang langs.Code
	TargetLang langs.Code
	Busy       bool
}

func NewSession() Session {
	return Session{SourceLang: langs.DefaultSource, TargetLang: langs.DefaultTarget}
}

// SeedSession applies link parameters over the defaults.
func SeedSession(p share.Params) Session {
	return NewSession().Seed(p)
}

// Seed returns s with any registry language from p applied.
func (s Session) Seed(p share.Params) Session {
	if langs.Valid(p.Source) {
		s.SourceLang = p.Source
	}
	if langs.Valid(p.Target) && p.Target != langs.Auto {
		s.TargetLang = p.Target
	}
	return s
}

// Swap exchanges source and target. An auto source is replaced by detected
// when it is a concrete registry code.
func (s Session) Swap(detected langs.Code) Session {
	src := s.SourceLang
	if src == langs.Auto && detected != langs.Auto && langs.Valid(detected) {
		src = detected
	}
	s.SourceLang, s.TargetLang = s.TargetLang, src
	return s
}
