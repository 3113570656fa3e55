package reject_visit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FLM-VisitService/internal/api/handlers"
	rejectVisit "github.com/m04kA/FLM-VisitService/internal/usecase/reject_visit"
)

const (
	msgInvalidFlatID    = "некорректный ID квартиры"
	msgInvalidStartTime = "некорректное время начала слота"
	msgNotFound         = "бронь не найдена"
	msgAlreadyDecided   = "бронь уже подтверждена, отклонена или отменена"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase RejectVisitUseCase
	logger  Logger
}

func NewHandler(useCase RejectVisitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/flats/{flatId}/visits/{startTime}/reject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	flatID, err := strconv.ParseInt(vars["flatId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /flats/{flatId}/visits/{startTime}/reject - Invalid flat ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFlatID)
		return
	}

	startTime, err := strconv.ParseInt(vars["startTime"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /flats/{flatId}/visits/{startTime}/reject - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &rejectVisit.Request{
		FlatID:    flatID,
		StartTime: startTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, rejectVisit.ErrReservationNotFound):
			h.logger.Warn("PATCH /flats/{flatId}/visits/{startTime}/reject - Not found: flat_id=%d, start_time=%d",
				flatID, startTime)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rejectVisit.ErrAlreadyDecided):
			h.logger.Warn("PATCH /flats/{flatId}/visits/{startTime}/reject - Already decided: flat_id=%d, start_time=%d",
				flatID, startTime)
			handlers.RespondBadRequest(w, msgAlreadyDecided)

		case errors.Is(err, rejectVisit.ErrInvalidInput):
			h.logger.Warn("PATCH /flats/{flatId}/visits/{startTime}/reject - Invalid input: flat_id=%d", flatID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /flats/{flatId}/visits/{startTime}/reject - Failed: flat_id=%d, start_time=%d, error=%v",
				flatID, startTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /flats/{flatId}/visits/{startTime}/reject - Visit rejected: flat_id=%d, start_time=%d",
		flatID, startTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
