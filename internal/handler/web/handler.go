package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/hospitalsys/records-api/internal/middleware"
	"github.com/hospitalsys/records-api/internal/model"
	documentService "github.com/hospitalsys/records-api/internal/service/document"
	patientService "github.com/hospitalsys/records-api/internal/service/patient"
)

//go:embed templates/*.html
var templateFS embed.FS

// viewState is the one value threaded from a form submission to the
// rendered page. Each request reflects at most one action's outcome.
type viewState struct {
	Message   string
	Error     string
	Document  *model.PatientDocumentDetail
	Documents []*model.PatientDocumentDetail
}

type getDocumentForm struct {
	NSS  string `form:"numero_securite_sociale" binding:"required"`
	Type string `form:"type_document" binding:"required"`
	Date string `form:"date_document" binding:"required"`
}

type addPatientForm struct {
	NSS       string `form:"numero_securite_sociale" binding:"required"`
	LastName  string `form:"nom" binding:"required"`
	FirstName string `form:"prenom" binding:"required"`
	BirthDate string `form:"date_naissance" binding:"required"`
	Address   string `form:"adresse"`
	Phone     string `form:"telephone"`
	Email     string `form:"email"`
}

type addDocumentForm struct {
	NSS         string `form:"numero_securite_sociale" binding:"required,min=5"`
	Type        string `form:"type_document" binding:"required"`
	Description string `form:"description"`
	Date        string `form:"date_document" binding:"required"`
}

type Handler struct {
	patients  *patientService.Service
	documents *documentService.Service
}

func NewHandler(patients *patientService.Service, documents *documentService.Service) *Handler {
	return &Handler{patients: patients, documents: documents}
}

// NewEngine builds the single-page form server.
func NewEngine(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(middleware.Logger(), middleware.Recovery())
	engine.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	engine.GET("/", h.Index)
	engine.POST("/", h.Submit)
	return engine
}

func (h *Handler) Index(c *gin.Context) {
	h.render(c, &viewState{})
}

func (h *Handler) Submit(c *gin.Context) {
	state := &viewState{}

	switch c.PostForm("action") {
	case "get_document":
		h.getDocument(c, state)
	case "add_patient":
		h.addPatient(c, state)
	case "add_document":
		h.addDocument(c, state)
	}

	h.render(c, state)
}

func (h *Handler) getDocument(c *gin.Context, state *viewState) {
	var form getDocumentForm
	if err := c.ShouldBind(&form); err != nil {
		state.Error = "Please fill all required fields."
		return
	}

	doc, err := h.documents.GetDocument(c.Request.Context(), form.NSS, form.Type, form.Date)
	if err != nil {
		state.Error = "Document not found for the given criteria."
		return
	}
	state.Document = doc
}

func (h *Handler) addPatient(c *gin.Context, state *viewState) {
	var form addPatientForm
	if err := c.ShouldBind(&form); err != nil {
		state.Error = "Please fill all required fields."
		return
	}

	patient := &model.Patient{
		NSS:       form.NSS,
		LastName:  form.LastName,
		FirstName: form.FirstName,
		BirthDate: form.BirthDate,
		Address:   form.Address,
		Phone:     form.Phone,
		Email:     form.Email,
	}

	if _, err := h.patients.RegisterPatient(c.Request.Context(), patient); err != nil {
		state.Error = "Failed to add patient. The social security number might already exist."
		return
	}
	state.Message = "Patient added successfully."
}

func (h *Handler) addDocument(c *gin.Context, state *viewState) {
	var form addDocumentForm
	if err := c.ShouldBind(&form); err != nil {
		state.Error = addDocumentErrorMessage(err)
		return
	}

	if _, err := h.documents.AddDocument(c.Request.Context(), form.NSS, form.Type, form.Description, form.Date); err != nil {
		state.Error = "Failed to add document. Please check if the patient exists."
		return
	}

	state.Message = "Document added successfully."

	docs, err := h.documents.ListDocuments(c.Request.Context(), form.NSS)
	if err != nil {
		log.Error().Err(err).Str("nss", form.NSS).Msg("failed to list documents after add")
		return
	}
	state.Documents = docs
}

// addDocumentErrorMessage separates the missing-field case from the
// too-short NSS case. Emptiness wins when both apply.
func addDocumentErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		hasMin := false
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return "Please fill all required fields (SSN, Type, and Date)."
			}
			if fe.Tag() == "min" {
				hasMin = true
			}
		}
		if hasMin {
			return "Invalid Social Security Number format."
		}
	}
	return "Please fill all required fields (SSN, Type, and Date)."
}

func (h *Handler) render(c *gin.Context, state *viewState) {
	c.HTML(http.StatusOK, "index.html", state)
}
