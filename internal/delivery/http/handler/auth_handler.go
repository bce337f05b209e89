package handler

import (
	"errors"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/jwt"
	"jobmatch/internal/pkg/response"
	ucauth "jobmatch/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc      ucauth.AuthUsecase
	tokens  jwt.Service
	uploads *Uploads
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Name       string   `json:"name"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
	Location   string   `json:"location"`
	Phone      string   `json:"phone"`
	LinkedIn   string   `json:"linkedin"`
	Portfolio  string   `json:"portfolio"`
}

func NewAuthHandler(uc ucauth.AuthUsecase, tokens jwt.Service, uploads *Uploads) *AuthHandler {
	return &AuthHandler{uc: uc, tokens: tokens, uploads: uploads}
}

func (h *AuthHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/auth/signup", h.Signup)
	r.Post("/auth/login", h.Login)
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/auth/profile", h.Profile)
	r.Put("/auth/update", h.UpdateProfile)
}

func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var req signupRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}
	switch {
	case req.Email == "":
		return middleware.NewFieldError("email", "This field is required.", nil)
	case len(req.Password) < 8:
		return middleware.NewFieldError("password", "Ensure this field has at least 8 characters.", nil)
	}

	acc, err := h.uc.Register(c.Context(), ucauth.RegisterInput{Name: req.Name, Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return h.issue(c, fiber.StatusCreated, acc)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	acc, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return h.issue(c, fiber.StatusOK, acc)
}

func (h *AuthHandler) issue(c fiber.Ctx, status int, acc ucauth.Account) error {
	pair, err := h.tokens.IssuePair(acc.User.ID, acc.User.Email)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return response.Success(c, status, dto.NewAuthResponse(acc, pair.Access, pair.Refresh))
}

func (h *AuthHandler) Profile(c fiber.Ctx) error {
	u, err := h.uc.Profile(c.Context(), middleware.UserID(c))
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.OK(c, dto.NewProfileResponse(u))
}

// UpdateProfile accepts JSON or multipart. Multipart carries skills as
// repeated fields plus optional resume and profile_picture files.
func (h *AuthHandler) UpdateProfile(c fiber.Ctx) error {
	userID := middleware.UserID(c)

	var in ucauth.ProfileUpdate
	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
		}
		in = ucauth.ProfileUpdate{
			Name:       formValue(form, "name"),
			Skills:     form.Value["skills"],
			Experience: formValue(form, "experience"),
			Education:  formValue(form, "education"),
			Location:   formValue(form, "location"),
			Phone:      formValue(form, "phone"),
			LinkedIn:   formValue(form, "linkedin"),
			Portfolio:  formValue(form, "portfolio"),
			FromForm:   true,
		}
		if in.ResumeURL, err = h.uploads.Save(c, form, "resume", "resumes", userID); err != nil {
			return err
		}
		if in.ProfilePictureURL, err = h.uploads.Save(c, form, "profile_picture", "profile_pictures", userID); err != nil {
			return err
		}
	} else {
		var req updateProfileRequest
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
		}
		in = ucauth.ProfileUpdate{
			Name:       req.Name,
			Skills:     req.Skills,
			Experience: req.Experience,
			Education:  req.Education,
			Location:   req.Location,
			Phone:      req.Phone,
			LinkedIn:   req.LinkedIn,
			Portfolio:  req.Portfolio,
		}
	}

	u, err := h.uc.UpdateProfile(c.Context(), userID, in)
	if err != nil {
		if errors.Is(err, ucauth.ErrInvalidInput) {
			return middleware.NewFieldError("name", "This field may not be blank.", err)
		}
		return mapAuthUsecaseError(err)
	}
	return response.OK(c, dto.NewProfileResponse(u))
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewFieldError("email", "user with this email already exists.", err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	case errors.Is(err, ucauth.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
