package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/landsight/lulc-backend-go/internal/service"
	"github.com/landsight/lulc-backend-go/pkg/response"
)

// DatasetHandler handles HTTP requests for dataset ingestion and retrieval
type DatasetHandler struct {
	datasetService *service.DatasetService
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(datasetService *service.DatasetService) *DatasetHandler {
	return &DatasetHandler{
		datasetService: datasetService,
	}
}

// UploadTransitions handles POST /api/v1/datasets/transitions
// Accepts a multipart "file" field holding a CSV or XLSX table.
func (h *DatasetHandler) UploadTransitions(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing file upload")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, "failed to open upload")
		return
	}
	defer f.Close()

	count, err := h.datasetService.ImportTransitions(f, fileHeader.Filename)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{"imported": count})
}

// UploadTimeSeries handles POST /api/v1/datasets/timeseries
func (h *DatasetHandler) UploadTimeSeries(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing file upload")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, "failed to open upload")
		return
	}
	defer f.Close()

	count, err := h.datasetService.ImportTimeSeries(f, fileHeader.Filename)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{"imported": count})
}

// GetTransitions handles GET /api/v1/datasets/transitions
func (h *DatasetHandler) GetTransitions(c *gin.Context) {
	records, err := h.datasetService.GetTransitions()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, records)
}

// GetTimeSeries handles GET /api/v1/datasets/timeseries
func (h *DatasetHandler) GetTimeSeries(c *gin.Context) {
	points, err := h.datasetService.GetTimeSeries()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, points)
}

// GetDatasetInfo handles GET /api/v1/datasets
func (h *DatasetHandler) GetDatasetInfo(c *gin.Context) {
	infos, err := h.datasetService.GetDatasetInfo()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, infos)
}
