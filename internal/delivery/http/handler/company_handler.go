package handler

import (
	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase/marketplace"

	"github.com/gofiber/fiber/v3"
)

type CompanyHandler struct {
	svc     *marketplace.Service
	uploads *Uploads
}

type companyRequest struct {
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	Description string `json:"description"`
	LinkedIn    string `json:"linkedin"`
	Portfolio   string `json:"portfolio"`
}

func NewCompanyHandler(svc *marketplace.Service, uploads *Uploads) *CompanyHandler {
	return &CompanyHandler{svc: svc, uploads: uploads}
}

func (h *CompanyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/companies/profile", h.List)
	r.Get("/companies/my-profile", h.Mine)
	r.Post("/companies/create", h.Create)
	r.Put("/companies/update", h.Update)
}

func (h *CompanyHandler) List(c fiber.Ctx) error {
	companies, err := h.svc.Companies(c.Context())
	if err != nil {
		return mapMarketplaceError(err)
	}
	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, co := range companies {
		out = append(out, dto.NewCompanyResponse(co, nil))
	}
	return response.OK(c, out)
}

func (h *CompanyHandler) Mine(c fiber.Ctx) error {
	view, err := h.svc.MyCompany(c.Context(), middleware.UserID(c))
	if err != nil {
		return mapMarketplaceError(err)
	}
	return response.OK(c, dto.NewCompanyResponse(view.Company, view.Jobs))
}

func (h *CompanyHandler) Create(c fiber.Ctx) error {
	in, err := h.input(c)
	if err != nil {
		return err
	}
	co, err := h.svc.CreateCompany(c.Context(), middleware.UserID(c), in)
	if err != nil {
		return mapMarketplaceError(err)
	}
	return response.Created(c, dto.NewCompanyResponse(co, nil))
}

func (h *CompanyHandler) Update(c fiber.Ctx) error {
	in, err := h.input(c)
	if err != nil {
		return err
	}
	userID := middleware.UserID(c)
	if _, err := h.svc.UpdateCompany(c.Context(), userID, in); err != nil {
		return mapMarketplaceError(err)
	}
	view, err := h.svc.MyCompany(c.Context(), userID)
	if err != nil {
		return mapMarketplaceError(err)
	}
	return response.OK(c, dto.NewCompanyResponse(view.Company, view.Jobs))
}

func (h *CompanyHandler) input(c fiber.Ctx) (marketplace.CompanyInput, error) {
	if !isMultipart(c) {
		var req companyRequest
		if err := c.Bind().Body(&req); err != nil {
			return marketplace.CompanyInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
		}
		return marketplace.CompanyInput{
			CompanyName: req.CompanyName,
			Email:       req.Email,
			Industry:    req.Industry,
			Location:    req.Location,
			Description: req.Description,
			LinkedIn:    req.LinkedIn,
			Portfolio:   req.Portfolio,
		}, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return marketplace.CompanyInput{}, middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}
	in := marketplace.CompanyInput{
		CompanyName: formValue(form, "company_name"),
		Email:       formValue(form, "email"),
		Industry:    formValue(form, "industry"),
		Location:    formValue(form, "location"),
		Description: formValue(form, "description"),
		LinkedIn:    formValue(form, "linkedin"),
		Portfolio:   formValue(form, "portfolio"),
	}
	in.LogoURL, err = h.uploads.Save(c, form, "logo", "logos", middleware.UserID(c))
	return in, err
}
