package cancel_visit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FLM-VisitService/internal/api/handlers"
	cancelVisit "github.com/m04kA/FLM-VisitService/internal/usecase/cancel_visit"
)

const (
	msgInvalidFlatID      = "некорректный ID квартиры"
	msgInvalidStartTime   = "некорректное время начала слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "бронь не найдена"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase CancelVisitUseCase
	logger  Logger
}

func NewHandler(useCase CancelVisitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/flats/{flatId}/visits/{startTime}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	flatID, err := strconv.ParseInt(vars["flatId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /flats/{flatId}/visits/{startTime}/cancel - Invalid flat ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFlatID)
		return
	}

	startTime, err := strconv.ParseInt(vars["startTime"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /flats/{flatId}/visits/{startTime}/cancel - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	var req CancelVisitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /flats/{flatId}/visits/{startTime}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.useCase.Execute(r.Context(), req.ToUseCaseRequest(flatID, startTime))
	if err != nil {
		switch {
		case errors.Is(err, cancelVisit.ErrReservationNotFound):
			// Сюда же попадают "чужая бронь" и "уже отклонена" - наружу
			// отдается один и тот же ответ
			h.logger.Warn("PATCH /flats/{flatId}/visits/{startTime}/cancel - Not found: flat_id=%d, visitor_id=%d, start_time=%d",
				flatID, req.VisitorID, startTime)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelVisit.ErrInvalidInput):
			h.logger.Warn("PATCH /flats/{flatId}/visits/{startTime}/cancel - Invalid input: flat_id=%d", flatID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /flats/{flatId}/visits/{startTime}/cancel - Failed: flat_id=%d, start_time=%d, error=%v",
				flatID, startTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /flats/{flatId}/visits/{startTime}/cancel - Visit canceled: flat_id=%d, visitor_id=%d, start_time=%d",
		flatID, req.VisitorID, startTime)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
