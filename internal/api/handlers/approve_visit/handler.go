package approve_visit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FLM-VisitService/internal/api/handlers"
	approveVisit "github.com/m04kA/FLM-VisitService/internal/usecase/approve_visit"
)

const (
	msgInvalidFlatID    = "некорректный ID квартиры"
	msgInvalidStartTime = "некорректное время начала слота"
	msgNotFound         = "бронь не найдена"
	msgAlreadyDecided   = "бронь уже подтверждена, отклонена или отменена"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase ApproveVisitUseCase
	logger  Logger
}

func NewHandler(useCase ApproveVisitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/flats/{flatId}/visits/{startTime}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	flatID, err := strconv.ParseInt(vars["flatId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /flats/{flatId}/visits/{startTime}/approve - Invalid flat ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFlatID)
		return
	}

	startTime, err := strconv.ParseInt(vars["startTime"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /flats/{flatId}/visits/{startTime}/approve - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &approveVisit.Request{
		FlatID:    flatID,
		StartTime: startTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, approveVisit.ErrReservationNotFound):
			h.logger.Warn("PATCH /flats/{flatId}/visits/{startTime}/approve - Not found: flat_id=%d, start_time=%d",
				flatID, startTime)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, approveVisit.ErrAlreadyDecided):
			h.logger.Warn("PATCH /flats/{flatId}/visits/{startTime}/approve - Already decided: flat_id=%d, start_time=%d",
				flatID, startTime)
			handlers.RespondBadRequest(w, msgAlreadyDecided)

		case errors.Is(err, approveVisit.ErrInvalidInput):
			h.logger.Warn("PATCH /flats/{flatId}/visits/{startTime}/approve - Invalid input: flat_id=%d", flatID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /flats/{flatId}/visits/{startTime}/approve - Failed: flat_id=%d, start_time=%d, error=%v",
				flatID, startTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /flats/{flatId}/visits/{startTime}/approve - Visit approved: flat_id=%d, start_time=%d",
		flatID, startTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
