package usecase

import (
	"context"
	"strings"

	"tour-srv/internal/dialogue"
	"tour-srv/internal/model"
	"tour-srv/internal/tour"
	"tour-srv/pkg/locale"
)

// runChecklist asks for the first missing slot, in fixed order. Once all
// four are known it runs the search and renders the result list.
func (uc *implUseCase) runChecklist(ctx context.Context, session model.Session) string {
	lang := session.Lang()

	if session.Destination == nil {
		return locale.Msg(lang, locale.KeyAskDestination, nil)
	}
	if session.DeparturePoint == nil {
		return locale.Msg(lang, locale.KeyAskDeparture, nil)
	}
	if session.People == nil {
		return locale.Msg(lang, locale.KeyAskPeople, map[string]any{
			"dep":  *session.DeparturePoint,
			"dest": *session.Destination,
		})
	}
	if session.Days == nil {
		return locale.Msg(lang, locale.KeyAskDays, nil)
	}

	return uc.searchReply(ctx, session)
}

// searchReply renders the tour result list, or the no-match message when
// the search comes back empty.
func (uc *implUseCase) searchReply(ctx context.Context, session model.Session) string {
	lang := session.Lang()

	out := uc.tourUC.Search(ctx, tour.SearchInput{
		Departure:   *session.DeparturePoint,
		Destination: *session.Destination,
		People:      *session.People,
		Days:        *session.Days,
	})

	if len(out.Tours) == 0 {
		return locale.Msg(lang, locale.KeyNoTour, map[string]any{
			"dest": *session.Destination,
			"dep":  *session.DeparturePoint,
			"days": *session.Days,
		})
	}

	intro := locale.Msg(lang, locale.KeyFoundTour, map[string]any{
		"count":  out.TotalFound,
		"dest":   *session.Destination,
		"dep":    *session.DeparturePoint,
		"people": *session.People,
		"days":   *session.Days,
	})

	lines := make([]string, 0, len(out.Tours))
	for i, t := range out.Tours {
		lines = append(lines, locale.FormatTourCard(lang, i+1, locale.TourCard{
			Name:      t.Name,
			Departure: t.Departure,
			Days:      t.Days,
			Price:     t.Price,
		}))
	}

	return intro + "\n\n" + strings.Join(lines, "\n") + "\n" + locale.Msg(lang, locale.KeyCallToAction, nil)
}

// bookingReply acknowledges a booking request.
func (uc *implUseCase) bookingReply(lang string) string {
	return locale.Msg(lang, locale.KeyBookRequest, nil)
}

// openChat answers off-flow messages through the LLM. An unreachable
// collaborator yields the fixed fallback reply instead of an error.
func (uc *implUseCase) openChat(ctx context.Context, message, lang string) string {
	callCtx, cancel := context.WithTimeout(ctx, uc.cfg.ChatTimeout)
	defer cancel()

	reply, err := uc.llm.Generate(callCtx, buildChatPrompt(message, lang))
	if err != nil {
		uc.l.Warnf(ctx, "dialogue.usecase.openChat: LLM call failed, returning fallback reply: %v", err)
		return dialogue.ServiceUnavailableReply
	}
	return strings.TrimSpace(reply)
}
