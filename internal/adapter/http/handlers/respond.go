package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/caronvincent/todo-burbanie/internal/adapter/http/middleware"
	"github.com/caronvincent/todo-burbanie/internal/adapter/http/validation"
	"github.com/caronvincent/todo-burbanie/internal/core/domain"
	"github.com/caronvincent/todo-burbanie/pkg/apierrors"
)

func writeError(c *gin.Context, code int, msgKey string) {
	writeProblem(c, apierrors.New(code, msgKey))
}

func writeProblem(c *gin.Context, problem apierrors.Problem) {
	c.AbortWithStatusJSON(problem.Status, problem.Localize(middleware.GetLang(c), middleware.GetRequestID(c)))
}

// errorMessages names the translation keys an operation reports with.
type errorMessages struct {
	invalid   string
	forbidden string
	fail      string
}

// problemFor maps the domain error taxonomy onto HTTP. ok is false for errors
// it does not recognize.
func problemFor(err error, msgs errorMessages) (problem apierrors.Problem, ok bool) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return apierrors.New(http.StatusBadRequest, msgs.invalid), true
	case errors.Is(err, domain.ErrTaskNotFound):
		return apierrors.New(http.StatusNotFound, apierrors.MsgTaskNotFound), true
	case errors.Is(err, domain.ErrCategoryNotFound):
		return apierrors.New(http.StatusNotFound, apierrors.MsgCategoryNotFound), true
	case errors.Is(err, domain.ErrForbidden):
		return apierrors.New(http.StatusForbidden, msgs.forbidden), true
	}
	return apierrors.Problem{}, false
}

// writeServiceError reports err through problemFor. Anything unrecognized is
// logged and answered with a 500.
func writeServiceError(c *gin.Context, err error, msgs errorMessages) {
	if problem, ok := problemFor(err, msgs); ok {
		writeProblem(c, problem)
		return
	}

	zap.L().Error("request failed",
		zap.String("operation", msgs.fail),
		zap.String("path", c.FullPath()),
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Error(err),
	)
	_ = c.Error(err)
	writeError(c, http.StatusInternalServerError, msgs.fail)
}

// parseID reads the :id path parameter. Ids outside 1..domain.MaxID are
// rejected with 400.
func parseID(c *gin.Context) (uint64, bool) {
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidID)
		return 0, false
	}
	return id, true
}

func currentPrincipal(c *gin.Context) (domain.Principal, bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, apierrors.MsgUnauthorized)
		return domain.Principal{}, false
	}
	return principal, true
}
