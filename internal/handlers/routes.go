package handlers

import "net/http"

// Routes wires every endpoint onto a mux. Onboarding, identity and logout
// stay open; everything else sits behind the onboarding gate.
func Routes(
	mw *Middleware,
	onboarding *OnboardingHandler,
	flashcards *FlashcardHandler,
	journal *JournalHandler,
	calendar *CalendarHandler,
	activities *ActivityHandler,
	gamesH *GameHandler,
	caregiver *CaregiverHandler,
	notifications *NotificationHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/onboarding/profile", onboarding.CreateProfile)
	mux.HandleFunc("POST /api/onboarding/complete", onboarding.Complete)
	mux.HandleFunc("GET /api/me", onboarding.Me)
	mux.HandleFunc("POST /api/logout", onboarding.Logout)

	mux.HandleFunc("PUT /api/me/settings", mw.RequireOnboarded(onboarding.UpdateSettings))
	mux.HandleFunc("PUT /api/view", mw.RequireOnboarded(onboarding.SetView))

	mux.HandleFunc("GET /api/flashcards", mw.RequireOnboarded(flashcards.List))
	mux.HandleFunc("POST /api/flashcards", mw.RequireOnboarded(flashcards.Create))
	mux.HandleFunc("DELETE /api/flashcards/{id}", mw.RequireOnboarded(flashcards.Delete))

	mux.HandleFunc("GET /api/journal", mw.RequireOnboarded(journal.List))
	mux.HandleFunc("POST /api/journal", mw.RequireOnboarded(journal.Create))
	mux.HandleFunc("DELETE /api/journal/{id}", mw.RequireOnboarded(journal.Delete))

	mux.HandleFunc("GET /api/calendar", mw.RequireOnboarded(calendar.List))
	mux.HandleFunc("POST /api/calendar", mw.RequireOnboarded(calendar.Create))
	mux.HandleFunc("DELETE /api/calendar/{id}", mw.RequireOnboarded(calendar.Delete))

	mux.HandleFunc("GET /api/activities", mw.RequireOnboarded(activities.List))
	mux.HandleFunc("POST /api/activities", mw.RequireOnboarded(activities.Create))
	mux.HandleFunc("PUT /api/activities/{id}/complete", mw.RequireOnboarded(activities.Complete))

	mux.HandleFunc("POST /api/games/{game}/start", mw.RequireOnboarded(gamesH.Start))
	mux.HandleFunc("POST /api/games/pattern/{id}/guess", mw.RequireOnboarded(gamesH.PatternGuess))
	mux.HandleFunc("POST /api/games/number/{id}/answer", mw.RequireOnboarded(gamesH.NumberAnswer))
	mux.HandleFunc("POST /api/games/wordsearch/{id}/check", mw.RequireOnboarded(gamesH.WordSearchCheck))
	mux.HandleFunc("POST /api/games/memory/{id}/flip", mw.RequireOnboarded(gamesH.MemoryFlip))
	mux.HandleFunc("POST /api/games/memory/{id}/resolve", mw.RequireOnboarded(gamesH.MemoryResolve))
	mux.HandleFunc("POST /api/games/connections/{id}/check", mw.RequireOnboarded(gamesH.ConnectionCheck))
	mux.HandleFunc("POST /api/games/focus/{id}/tick", mw.RequireOnboarded(gamesH.FocusTick))
	mux.HandleFunc("POST /api/games/focus/{id}/click", mw.RequireOnboarded(gamesH.FocusClick))
	mux.HandleFunc("POST /api/games/runs/{id}/finish", mw.RequireOnboarded(gamesH.Finish))
	mux.HandleFunc("GET /api/sessions", mw.RequireOnboarded(gamesH.Sessions))
	mux.HandleFunc("GET /api/achievements", mw.RequireOnboarded(gamesH.Achievements))

	mux.HandleFunc("POST /api/connections", mw.RequireOnboarded(caregiver.Connect))
	mux.HandleFunc("GET /api/connections", mw.RequireOnboarded(caregiver.List))
	mux.HandleFunc("GET /api/dashboard", mw.RequireOnboarded(caregiver.Dashboard))

	mux.HandleFunc("GET /api/notifications", mw.RequireOnboarded(notifications.Active))
	mux.HandleFunc("DELETE /api/notifications/{id}", mw.RequireOnboarded(notifications.Dismiss))

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return mux
}
