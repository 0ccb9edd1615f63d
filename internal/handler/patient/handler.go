package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hospitalsys/records-api/internal/handler"
	"github.com/hospitalsys/records-api/internal/model"
	documentService "github.com/hospitalsys/records-api/internal/service/document"
	patientService "github.com/hospitalsys/records-api/internal/service/patient"
)

// Handler serves the patient routes and the document routes nested under
// them. Write failures are deliberately not broken down by cause at this
// boundary: a duplicate NSS and any other insert failure both read as
// "Failed to add patient", mirroring the form front end.
type Handler struct {
	patients  *patientService.Service
	documents *documentService.Service
}

func NewHandler(patients *patientService.Service, documents *documentService.Service) *Handler {
	return &Handler{patients: patients, documents: documents}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.GET("", h.ListPatients)
		patients.POST("", h.CreatePatient)
		patients.GET("/:nss", h.GetPatient)

		patients.GET("/:nss/documents", h.ListDocuments)
		patients.POST("/:nss/documents", h.CreateDocument)
		patients.GET("/:nss/documents/:type/:date", h.GetDocument)
	}
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.patients.ListPatients(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("Failed to retrieve patients"))
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *Handler) GetPatient(c *gin.Context) {
	patient, err := h.patients.GetPatient(c.Request.Context(), c.Param("nss"))
	if err != nil {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("Patient not found"))
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("Invalid JSON data"))
		return
	}

	id, err := h.patients.RegisterPatient(c.Request.Context(), req.ToPatient())
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("Failed to add patient"))
		return
	}

	c.JSON(http.StatusCreated, handler.NewCreatedResponse(id))
}

func (h *Handler) ListDocuments(c *gin.Context) {
	docs, err := h.documents.ListDocuments(c.Request.Context(), c.Param("nss"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("Failed to retrieve documents"))
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *Handler) GetDocument(c *gin.Context) {
	doc, err := h.documents.GetDocument(
		c.Request.Context(),
		c.Param("nss"),
		c.Param("type"),
		c.Param("date"),
	)
	if err != nil {
		// Read-path failures all degrade to absence at the repository
		// boundary.
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("Document not found"))
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *Handler) CreateDocument(c *gin.Context) {
	var req model.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("Invalid JSON data"))
		return
	}

	id, err := h.documents.AddDocument(
		c.Request.Context(),
		c.Param("nss"),
		req.Type,
		req.Description,
		req.Date,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("Failed to add document"))
		return
	}

	c.JSON(http.StatusCreated, handler.NewCreatedResponse(id))
}
