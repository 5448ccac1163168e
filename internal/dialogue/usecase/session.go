package usecase

import (
	"context"
	"errors"

	"tour-srv/internal/dialogue"
	"tour-srv/internal/dialogue/repository"
	"tour-srv/internal/model"
	"tour-srv/pkg/locale"
)

// loadSession returns the stored state or a fresh default. Storage errors
// degrade to the default so the turn can still produce a reply. A fresh
// default takes its language from the request locale; once stored, the
// session language wins over the header.
func (uc *implUseCase) loadSession(ctx context.Context, userID string) model.Session {
	session, err := uc.repo.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrSessionNotFound) {
			uc.l.Warnf(ctx, "dialogue.usecase.loadSession: storage error, using default state: %v", err)
		}
		session = model.NewSession()
		session.Language = locale.GetLang(ctx)
	}
	return session
}

// mergeSession applies the non-nil fields of the extraction onto the stored
// state and persists it. Set slots are never cleared here: a nil field in
// the extraction leaves the stored value untouched.
func (uc *implUseCase) mergeSession(ctx context.Context, userID string, ex dialogue.ExtractedIntent) model.Session {
	session := uc.loadSession(ctx, userID)

	changed := false
	if ex.Language != nil && locale.IsValidLang(*ex.Language) {
		session.Language = *ex.Language
		changed = true
	}
	if ex.DeparturePoint != nil {
		session.DeparturePoint = ex.DeparturePoint
		changed = true
	}
	if ex.Destination != nil {
		session.Destination = ex.Destination
		changed = true
	}
	if ex.People != nil {
		session.People = ex.People
		changed = true
	}
	if ex.Days != nil {
		session.Days = ex.Days
		changed = true
	}

	if changed {
		if err := uc.repo.Save(ctx, userID, session); err != nil {
			uc.l.Warnf(ctx, "dialogue.usecase.mergeSession: save failed, continuing with in-memory state: %v", err)
		}
	}
	return session
}

// setStage persists a stage transition.
func (uc *implUseCase) setStage(ctx context.Context, userID string, session *model.Session, stage model.Stage) {
	if session.Stage == stage {
		return
	}
	session.Stage = stage
	if err := uc.repo.Save(ctx, userID, *session); err != nil {
		uc.l.Warnf(ctx, "dialogue.usecase.setStage: save failed: %v", err)
	}
}

// appendHistory appends one entry to the stored history (read-modify-write;
// last write wins on concurrent turns).
func (uc *implUseCase) appendHistory(ctx context.Context, userID, role, content string) {
	session := uc.loadSession(ctx, userID)
	session.History = append(session.History, model.Message{Role: role, Content: content})
	if err := uc.repo.Save(ctx, userID, session); err != nil {
		uc.l.Warnf(ctx, "dialogue.usecase.appendHistory: save failed: %v", err)
	}
}
