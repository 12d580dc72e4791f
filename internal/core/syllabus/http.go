package syllabus

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/ductran/syllabase/internal/platform/request"
	"github.com/ductran/syllabase/internal/platform/respond"
	"github.com/ductran/syllabase/internal/platform/validate"
	"github.com/ductran/syllabase/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{id}", handler.get)
	router.Delete("/{id}", handler.delete)

	router.Route("/{id}/concentrations", func(r chi.Router) {
		r.Get("/", handler.listConcentrations)
		r.Post("/", handler.createConcentration)
	})

	return router
}

type createSyllabusRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	CategoryID  string `json:"category_id"`
}

type createConcentrationRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	syllabuses, meta, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, syllabuses, meta)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	syllabusEntity, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, syllabusEntity)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createSyllabusRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("title", input.Title).
		MaxLen("title", input.Title, 200).
		Required("category_id", input.CategoryID).
		UUID("category_id", input.CategoryID)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	syllabusEntity, err := handler.service.Create(request.Context(), CreateInput{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CategoryID:  input.CategoryID,
		UserID:      userID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, syllabusEntity)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listConcentrations(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	concentrations, err := handler.service.Concentrations(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, concentrations)
}

func (handler *Handler) createConcentration(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input createConcentrationRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("title", input.Title).
		MaxLen("title", input.Title, 200).
		Custom("keywords", len(input.Keywords) > 20, "Maximum 20 keywords")

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	concentration, err := handler.service.AddConcentration(request.Context(), id, ConcentrationInput{
		Title:       input.Title,
		Description: input.Description,
		Keywords:    input.Keywords,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, concentration)
}
