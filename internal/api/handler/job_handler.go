package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sewline/jobtrack-api/internal/core/ports"
)

// JobHandler handles HTTP requests for job operations. Authentication and
// role checks happen in middleware before these run.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /api/jobs.
//
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Job
// @Failure      401  {object}  errorResponse
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// Create handles POST /api/jobs. Admin only (enforced by the policy
// middleware); the new job always starts as "In Process".
//
// @Summary      Create a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  domain.Job
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	_, username, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.Create(c.Request().Context(), ports.CreateJobInput{
		JobID:      req.JobID,
		Customer:   req.Customer,
		Quantity:   req.Quantity,
		Date:       req.Date,
		Time:       req.Time,
		Supervisor: req.Supervisor,
		Actor:      username,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, job)
}

// Update handles PUT /api/jobs/:id. Any authenticated user may update any
// job; last-write-wins on concurrent updates.
//
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job id"
// @Param        body  body      updateJobRequest  true  "Fields to change"
// @Success      200   {object}  domain.Job
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	_, username, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateJobInput{
		Status:     req.Status,
		Defect:     req.Defect,
		Supervisor: req.Supervisor,
		Actor:      username,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, job)
}
