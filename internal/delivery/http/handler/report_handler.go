package handler

import (
	"net/http"

	"github.com/pauloaguiarc/smarthealthsystem/internal/usecase"
	"github.com/pauloaguiarc/smarthealthsystem/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
	}
}

func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.GetSummary(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to generate report")
		return
	}

	response.Success(w, http.StatusOK, "Report generated successfully", report)
}
