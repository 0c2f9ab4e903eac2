package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/delilt/football-dashboard/internal/platform/logging"
	"github.com/delilt/football-dashboard/internal/stats"
	"github.com/delilt/football-dashboard/internal/usecase"
)

type Handler struct {
	teamService      *usecase.TeamService
	matchService     *usecase.MatchService
	statsService     *usecase.StatsService
	dashboardService *usecase.DashboardService
	syncService      *usecase.SyncService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	matchService *usecase.MatchService,
	statsService *usecase.StatsService,
	dashboardService *usecase.DashboardService,
	syncService *usecase.SyncService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:      teamService,
		matchService:     matchService,
		statsService:     statsService,
		dashboardService: dashboardService,
		syncService:      syncService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// filterQuery carries the raw filter params; validation happens on the string
// form so a bad value is rejected before any parsing.
type filterQuery struct {
	League   string `validate:"omitempty,max=120"`
	TeamID   string `validate:"omitempty,number"`
	DateFrom string `validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `validate:"omitempty,datetime=2006-01-02"`
	Search   string `validate:"omitempty,max=120"`
}

func (h *Handler) parseFilter(ctx context.Context, r *http.Request) (stats.Filter, error) {
	query := r.URL.Query()
	raw := filterQuery{
		League:   strings.TrimSpace(query.Get("league")),
		TeamID:   strings.TrimSpace(query.Get("team_id")),
		DateFrom: strings.TrimSpace(query.Get("date_from")),
		DateTo:   strings.TrimSpace(query.Get("date_to")),
		Search:   strings.TrimSpace(query.Get("search")),
	}
	if err := h.validateRequest(ctx, raw); err != nil {
		return stats.Filter{}, err
	}

	f := stats.Filter{League: raw.League, Search: raw.Search}
	if raw.TeamID != "" {
		teamID, err := strconv.ParseInt(raw.TeamID, 10, 64)
		if err != nil || teamID < 1 {
			return stats.Filter{}, fmt.Errorf("%w: team_id must be a positive integer", usecase.ErrInvalidInput)
		}
		f.TeamID = teamID
	}
	if raw.DateFrom != "" {
		from, err := time.Parse("2006-01-02", raw.DateFrom)
		if err != nil {
			return stats.Filter{}, fmt.Errorf("%w: date_from must be YYYY-MM-DD", usecase.ErrInvalidInput)
		}
		f.DateFrom = from
	}
	if raw.DateTo != "" {
		to, err := time.Parse("2006-01-02", raw.DateTo)
		if err != nil {
			return stats.Filter{}, fmt.Errorf("%w: date_to must be YYYY-MM-DD", usecase.ErrInvalidInput)
		}
		f.DateTo = to
	}

	return f, nil
}

// maxLimit bounds every top-N view; derived views are cached per limit value,
// so the limit also bounds cache key cardinality.
const maxLimit = 100

func parseLimit(r *http.Request, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return fallback, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, fmt.Errorf("%w: limit must be a positive integer", usecase.ErrInvalidInput)
	}
	if limit > maxLimit {
		return 0, fmt.Errorf("%w: limit must be at most %d", usecase.ErrInvalidInput, maxLimit)
	}

	return limit, nil
}

func parseTeamIDPath(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("teamID"))
	teamID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || teamID < 1 {
		return 0, fmt.Errorf("%w: team id must be a positive integer", usecase.ErrInvalidInput)
	}

	return teamID, nil
}
