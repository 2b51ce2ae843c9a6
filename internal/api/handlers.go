package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/joshsymonds/brewmatch/internal/flavor"
	"github.com/joshsymonds/brewmatch/internal/model"
	"github.com/joshsymonds/brewmatch/internal/recommend"
	"github.com/joshsymonds/brewmatch/internal/service"
)

type beanMatchRequest struct {
	MachineType string `json:"machineType"`
	GrinderType string `json:"grinderType"`
	BurrType    string `json:"burrType"`
	MachineID   string `json:"machineId"`
	GrinderID   string `json:"grinderId"`
	Flavor      string `json:"flavor"`
}

type beanMatchResponse struct {
	Flavor  flavor.Category   `json:"flavor,omitempty"`
	Matches []model.BeanMatch `json:"matches"`
}

func (s *Server) matchBeans(w http.ResponseWriter, r *http.Request) {
	var req beanMatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	profile := model.EquipmentProfile{
		MachineID:   req.MachineID,
		MachineType: model.MachineType(req.MachineType),
		GrinderID:   req.GrinderID,
		GrinderKind: model.GrinderKind(req.GrinderType),
		BurrType:    model.BurrType(req.BurrType),
	}
	category := flavor.ParseCategory(req.Flavor)

	matches, err := s.engine.MatchBeansForFlavor(profile, category)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, beanMatchResponse{Flavor: category, Matches: matches})
}

type recommendationRequest struct {
	Budget     string   `json:"budget"`
	Purposes   []string `json:"purposes"`
	Experience string   `json:"experience"`
}

func (s *Server) recommendEquipment(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	rec := s.engine.GetEquipmentRecommendations(
		model.ParseTier(req.Budget),
		recommend.ParsePurposes(req.Purposes),
		recommend.ParseExperience(req.Experience),
	)
	respondJSON(w, http.StatusOK, rec)
}

type equipmentMatchResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

func (s *Server) equipmentMatch(w http.ResponseWriter, r *http.Request) {
	item, err := s.engine.FindItem(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	query := r.URL.Query()
	percentage := s.engine.CalculateMatchPercentage(
		item,
		model.ParseTier(query.Get("budget")),
		recommend.ParsePurposes(query["purpose"]),
	)

	respondJSON(w, http.StatusOK, equipmentMatchResponse{
		ID:         item.ItemID(),
		Name:       item.ItemName(),
		Percentage: percentage,
	})
}

func (s *Server) listEntries(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEntryFilter(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	entries, err := s.store.ListEntries(r.Context(), filter)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func parseEntryFilter(r *http.Request) (service.EntryFilter, error) {
	query := r.URL.Query()
	filter := service.EntryFilter{BrewMethod: query.Get("method")}

	if v := query.Get("since"); v != "" {
		since, err := parseTime(v)
		if err != nil {
			return filter, err
		}
		filter.Since = &since
	}
	if v := query.Get("until"); v != "" {
		until, err := parseTime(v)
		if err != nil {
			return filter, err
		}
		filter.Until = &until
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return filter, fmt.Errorf("%w: invalid limit %q", ErrBadRequest, v)
		}
		filter.Limit = limit
	}
	return filter, nil
}

// parseTime accepts RFC 3339 timestamps or plain dates.
func parseTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid time %q", ErrBadRequest, v)
}

func (s *Server) createEntry(w http.ResponseWriter, r *http.Request) {
	var entry model.BrewLogEntry
	if err := decodeJSON(w, r, &entry); err != nil {
		respondError(w, r, err)
		return
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}

	if err := s.store.SaveEntry(r.Context(), &entry); err != nil {
		respondError(w, r, err)
		return
	}
	s.metrics.entriesSaved.Inc()

	w.Header().Set("Location", "/api/v1/journal/entries/"+entry.ID)
	respondJSON(w, http.StatusCreated, entry)
}

func (s *Server) deleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) analytics(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.ListEntries(r.Context(), service.EntryFilter{})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, s.engine.CalculateAnalytics(entries))
}
