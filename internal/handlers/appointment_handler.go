package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/EspacoLashStudio/studio-agenda/internal/domain/schedule"
	"github.com/EspacoLashStudio/studio-agenda/internal/httperr"
	"github.com/EspacoLashStudio/studio-agenda/internal/httpresp"
	"github.com/EspacoLashStudio/studio-agenda/internal/middleware"
	"github.com/EspacoLashStudio/studio-agenda/internal/timegrid"
	"github.com/EspacoLashStudio/studio-agenda/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *schedule.CreateAppointment
	rescheduleUC   *schedule.RescheduleAppointment
	confirmUC      *schedule.ConfirmAppointment
	cancelUC       *schedule.CancelAppointment
	completeUC     *schedule.CompleteAppointment
	availabilityUC *schedule.GetAvailability
	listByDateUC   *schedule.ListAppointmentsByDate
	listByMonthUC  *schedule.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	createUC *schedule.CreateAppointment,
	rescheduleUC *schedule.RescheduleAppointment,
	confirmUC *schedule.ConfirmAppointment,
	cancelUC *schedule.CancelAppointment,
	completeUC *schedule.CompleteAppointment,
	availabilityUC *schedule.GetAvailability,
	listByDateUC *schedule.ListAppointmentsByDate,
	listByMonthUC *schedule.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		rescheduleUC:   rescheduleUC,
		confirmUC:      confirmUC,
		cancelUC:       cancelUC,
		completeUC:     completeUC,
		availabilityUC: availabilityUC,
		listByDateUC:   listByDateUC,
		listByMonthUC:  listByMonthUC,
	}
}

// traduz os códigos de negócio do núcleo para a borda HTTP
func writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch code {
	case httperr.CodeSlotConflict:
		httperr.Conflict(c, code, "Conflito de horário.")
	case httperr.CodeSlotBlocked:
		httperr.Conflict(c, code, "Horário bloqueado.")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Agendamento não encontrado.")
	case httperr.CodeStorageUnavailable:
		httperr.Internal(c, code, "Erro ao acessar os dados. Tente novamente.")
	case httperr.CodeInvalidTimeFormat, "invalid_date":
		httperr.BadRequest(c, code, "Data ou hora inválida.")
	case httperr.CodeServiceNotFound, httperr.CodeServiceInactive:
		httperr.BadRequest(c, code, "Serviço indisponível.")
	case httperr.CodeOutsideWorkingHours:
		httperr.BadRequest(c, code, "Fora do horário de atendimento.")
	case httperr.CodeInvalidTransition:
		httperr.BadRequest(c, code, "Mudança de status não permitida.")
	default:
		httperr.BadRequest(c, code, "Operação inválida.")
	}
}

// ======================================================
// CREATE
// ======================================================

type CreateAppointmentRequest struct {
	ClientID    uint   `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email"`

	ServiceID uint     `json:"service_id" binding:"required"`
	Date      string   `json:"date" binding:"required"`
	Time      string   `json:"time" binding:"required"`
	Price     *float64 `json:"price"`
	Notes     string   `json:"notes"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.ClientID == 0 && req.ClientName == "" {
		httperr.BadRequest(c, "invalid_request", "Informe a cliente.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), schedule.CreateAppointmentInput{
		UserID:      userID,
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Price:       req.Price,
		Notes:       req.Notes,
		Source:      "staff",
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// AVAILABILITY (BALCÃO)
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	date := c.Query("date")
	serviceIDStr := c.Query("service_id")
	if date == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	result, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		UserID:    userID,
		ServiceID: uint(serviceID),
		Date:      date,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, result)
}

// ======================================================
// LIST / AGENDA
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	list, err := h.listByDateUC.Execute(c.Request.Context(), userID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, list)
}

// Agenda devolve a grade fixa de 6:00 às 23:00 usada pela visão
// dia/semana, junto com os agendamentos do dia.
func (h *AppointmentHandler) Agenda(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	list, err := h.listByDateUC.Execute(c.Request.Context(), userID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":         date,
		"grid":         timegrid.HourlySlots(6, 23),
		"appointments": list,
	})
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	list, err := h.listByMonthUC.Execute(c.Request.Context(), userID, year, month)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, list)
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

type CompleteAppointmentRequest struct {
	FinalPrice    float64 `json:"final_price" binding:"required"`
	PaymentMethod *string `json:"payment_method"`
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req CompleteAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), schedule.CompleteAppointmentInput{
		UserID:        userID,
		AppointmentID: uint(id),
		FinalPrice:    req.FinalPrice,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), schedule.RescheduleAppointmentInput{
		UserID:        userID,
		AppointmentID: uint(id),
		NewDate:       req.Date,
		NewTime:       req.Time,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
