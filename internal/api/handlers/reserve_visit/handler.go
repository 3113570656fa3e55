package reserve_visit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FLM-VisitService/internal/api/handlers"
	reserveVisit "github.com/m04kA/FLM-VisitService/internal/usecase/reserve_visit"
)

const (
	msgInvalidFlatID      = "некорректный ID квартиры"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTimeNotAligned     = "время начала должно быть кратно длительности слота (20 минут)"
	msgOutsideHours       = "время начала должно быть между 10:00 и 19:40"
	msgTooSoon            = "визит можно бронировать не позднее чем за 24 часа до начала"
	msgNotInNextWeek      = "визит можно бронировать только на следующую неделю"
	msgAlreadyReserved    = "временной слот уже занят"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase ReserveVisitUseCase
	logger  Logger
}

func NewHandler(useCase ReserveVisitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/flats/{flatId}/visits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	flatID, err := strconv.ParseInt(vars["flatId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /flats/{flatId}/visits - Invalid flat ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFlatID)
		return
	}

	var req ReserveVisitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flats/{flatId}/visits - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(flatID))
	if err != nil {
		switch {
		case errors.Is(err, reserveVisit.ErrTimeNotAligned):
			h.logger.Warn("POST /flats/{flatId}/visits - Time not aligned: flat_id=%d, start_time=%d",
				flatID, req.StartTime)
			handlers.RespondBadRequest(w, msgTimeNotAligned)

		case errors.Is(err, reserveVisit.ErrOutsideVisitingHours):
			h.logger.Warn("POST /flats/{flatId}/visits - Outside visiting hours: flat_id=%d, start_time=%d",
				flatID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, reserveVisit.ErrTooSoonToVisit):
			h.logger.Warn("POST /flats/{flatId}/visits - Too soon: flat_id=%d, start_time=%d",
				flatID, req.StartTime)
			handlers.RespondBadRequest(w, msgTooSoon)

		case errors.Is(err, reserveVisit.ErrNotInNextWeek):
			h.logger.Warn("POST /flats/{flatId}/visits - Not in next week: flat_id=%d, start_time=%d",
				flatID, req.StartTime)
			handlers.RespondBadRequest(w, msgNotInNextWeek)

		case errors.Is(err, reserveVisit.ErrSlotAlreadyReserved):
			h.logger.Warn("POST /flats/{flatId}/visits - Slot already reserved: flat_id=%d, start_time=%d",
				flatID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyReserved)

		case errors.Is(err, reserveVisit.ErrInvalidInput):
			h.logger.Warn("POST /flats/{flatId}/visits - Invalid input: flat_id=%d", flatID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /flats/{flatId}/visits - Failed to reserve visit: flat_id=%d, error=%v",
				flatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flats/{flatId}/visits - Visit reserved successfully: flat_id=%d, visitor_id=%d, start_time=%d",
		flatID, req.VisitorID, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
