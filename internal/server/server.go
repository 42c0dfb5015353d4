package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"wrestling-hub/internal/domain"
	"wrestling-hub/internal/repository"
	"wrestling-hub/internal/seed"
	"wrestling-hub/internal/service"

	"github.com/rs/zerolog"
)

// BookingServer exposes the booking engine over a JSON API.
type BookingServer struct {
	brands     *repository.BrandRepository
	wrestlers  *repository.WrestlerRepository
	titles     *repository.ChampionshipRepository
	shows      *repository.ShowRepository
	npcs       *repository.NPCRepository
	showSvc    *service.ShowService
	editorSvc  *service.EditorService
	transfer   *service.TransferService
	reconciler *seed.Reconciler
	logger     zerolog.Logger
}

func NewBookingServer(
	brands *repository.BrandRepository,
	wrestlers *repository.WrestlerRepository,
	titles *repository.ChampionshipRepository,
	shows *repository.ShowRepository,
	npcs *repository.NPCRepository,
	showSvc *service.ShowService,
	editorSvc *service.EditorService,
	transfer *service.TransferService,
	reconciler *seed.Reconciler,
	logger zerolog.Logger,
) *BookingServer {
	return &BookingServer{
		brands:     brands,
		wrestlers:  wrestlers,
		titles:     titles,
		shows:      shows,
		npcs:       npcs,
		showSvc:    showSvc,
		editorSvc:  editorSvc,
		transfer:   transfer,
		reconciler: reconciler,
		logger:     logger,
	}
}

// Routes registers all API handlers on the mux.
func (s *BookingServer) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/roster", s.handleRoster)
	mux.HandleFunc("GET /api/wrestlers/{id}", s.handleGetWrestler)
	mux.HandleFunc("PUT /api/wrestlers/{id}", s.handleEditWrestler)
	mux.HandleFunc("GET /api/shows", s.handleListShows)
	mux.HandleFunc("POST /api/shows", s.handleSaveShow)
	mux.HandleFunc("DELETE /api/shows/{id}", s.handleDeleteShow)
	mux.HandleFunc("GET /api/shows/next-slot", s.handleNextSlot)
	mux.HandleFunc("GET /api/partner-suggestion", s.handlePartnerSuggestion)
	mux.HandleFunc("POST /api/reconcile", s.handleReconcile)
	mux.HandleFunc("GET /api/export", s.handleExport)
	mux.HandleFunc("POST /api/import", s.handleImport)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *BookingServer) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

type rosterResponse struct {
	Brands        []domain.Brand        `json:"brands"`
	Wrestlers     []domain.Wrestler     `json:"wrestlers"`
	Championships []domain.Championship `json:"championships"`
	NPCs          []domain.NPC          `json:"npcs"`
}

// handleRoster returns the full booking sheet. The free agent pseudo
// brand is filtered from the brand list but its wrestlers are kept.
func (s *BookingServer) handleRoster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	brands, err := s.brands.List(ctx)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	visible := brands[:0]
	for _, b := range brands {
		if b.Name != domain.BrandFreeAgent {
			visible = append(visible, b)
		}
	}
	wrestlers, err := s.wrestlers.List(ctx)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	titles, err := s.titles.List(ctx)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	npcs, err := s.npcs.List(ctx)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, rosterResponse{
		Brands:        visible,
		Wrestlers:     wrestlers,
		Championships: titles,
		NPCs:          npcs,
	})
}

func (s *BookingServer) handleGetWrestler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	wr, err := s.wrestlers.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if wr == nil {
		s.writeError(w, http.StatusNotFound, service.ErrWrestlerNotFound)
		return
	}
	writeJSON(w, http.StatusOK, wr)
}

type editWrestlerRequest struct {
	BrandID   *int64            `json:"brandId"`
	FreeAgent bool              `json:"freeAgent"`
	Alignment *domain.Alignment `json:"alignment"`
	Rating    *int              `json:"rating"`
	Moral     *int              `json:"moral"`
	Faction   *string           `json:"faction"`
	Contract  *string           `json:"contract"`
	TitleIDs  *[]int64          `json:"titleIds"`
}

func (s *BookingServer) handleEditWrestler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	var req editWrestlerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	wr, err := s.editorSvc.ApplyEdit(r.Context(), id, service.WrestlerEdit{
		BrandID:   req.BrandID,
		FreeAgent: req.FreeAgent,
		Alignment: req.Alignment,
		Rating:    req.Rating,
		Moral:     req.Moral,
		Faction:   req.Faction,
		Contract:  req.Contract,
		TitleIDs:  req.TitleIDs,
	})
	if err != nil {
		if errors.Is(err, service.ErrWrestlerNotFound) {
			s.writeError(w, http.StatusNotFound, err)
			return
		}
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, wr)
}

func (s *BookingServer) handleListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := s.shows.List(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, shows)
}

type saveShowRequest struct {
	BrandID   *int64           `json:"brandId"`
	Type      domain.ShowType  `json:"type"`
	Name      string           `json:"name"`
	Season    int              `json:"season"`
	Week      int              `json:"week"`
	Valuation float64          `json:"valuation"`
	Segments  []domain.Segment `json:"segments"`
}

// handleSaveShow replays a fully booked card into a draft and commits
// it. Slot collisions come back as 409, validation misses as 422.
func (s *BookingServer) handleSaveShow(w http.ResponseWriter, r *http.Request) {
	var req saveShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	brand := domain.Brand{Name: domain.BrandShared}
	if req.BrandID != nil {
		b, err := s.brands.Get(r.Context(), *req.BrandID)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
		if b == nil {
			s.writeError(w, http.StatusBadRequest, errors.New("unknown brand"))
			return
		}
		brand = *b
	}

	draft := service.NewDraft(brand, req.Type)
	if err := draft.Configure(req.Season, req.Week); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	if err := draft.SetName(req.Name); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	for _, seg := range req.Segments {
		if err := draft.AttachSegment(seg); err != nil {
			s.writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
	}
	if err := draft.SetValuation(req.Valuation); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	show, err := s.showSvc.Save(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateShow):
			s.writeError(w, http.StatusConflict, err)
		case errors.Is(err, service.ErrUndecidedMatch),
			errors.Is(err, service.ErrEventNotChosen),
			errors.Is(err, service.ErrUnrated):
			s.writeError(w, http.StatusUnprocessableEntity, err)
		default:
			if show != nil {
				// Show committed, side effects partially failed.
				writeJSON(w, http.StatusOK, show)
				return
			}
			s.writeError(w, http.StatusInternalServerError, err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, show)
}

func (s *BookingServer) handleDeleteShow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.shows.Delete(r.Context(), []int64{id}); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *BookingServer) handleNextSlot(w http.ResponseWriter, r *http.Request) {
	brandID, err := strconv.ParseInt(r.URL.Query().Get("brandId"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	season, week, err := s.showSvc.SuggestNextSlot(r.Context(), brandID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"season": season, "week": week})
}

// handlePartnerSuggestion proposes a tag partner for the picked
// wrestler, excluding wrestlers already selected on the card.
func (s *BookingServer) handlePartnerSuggestion(w http.ResponseWriter, r *http.Request) {
	wrestlerID, err := strconv.ParseInt(r.URL.Query().Get("wrestlerId"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	var selected []int64
	for _, raw := range r.URL.Query()["selected"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		selected = append(selected, id)
	}
	pick, err := s.wrestlers.Get(r.Context(), wrestlerID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if pick == nil {
		s.writeError(w, http.StatusNotFound, service.ErrWrestlerNotFound)
		return
	}
	pool, err := s.wrestlers.List(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	partnerID, ok := domain.SuggestPartner(*pick, selected, pool)
	writeJSON(w, http.StatusOK, map[string]any{"partnerId": partnerID, "found": ok})
}

func (s *BookingServer) handleReconcile(w http.ResponseWriter, r *http.Request) {
	res, err := s.reconciler.Run(r.Context())
	if err != nil {
		if errors.Is(err, seed.ErrReconcileRunning) {
			s.writeError(w, http.StatusConflict, err)
			return
		}
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"summary": res.Summary()})
}

func (s *BookingServer) handleExport(w http.ResponseWriter, r *http.Request) {
	snap, err := s.transfer.Export(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *BookingServer) handleImport(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := s.transfer.Import(r.Context(), raw)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSnapshot) {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
