package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Wallabies/internal/dto"
	"github.com/lshigami/Wallabies/internal/service"
	"github.com/rs/zerolog/log"
)

type StudentController struct {
	studentService service.StudentService
}

func NewStudentController(studentService service.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// SubmitAssessment godoc
// @Summary Submit a student assessment
// @Description Creates a student from assessment data, or appends results to an existing student when student_id is set in the body.
// @Tags Students
// @Accept json
// @Produce json
// @Param assessment body dto.AssessmentSubmitDTO true "Assessment payload"
// @Success 201 {object} dto.StudentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or score above total"
// @Failure 404 {object} dto.ErrorResponse "Referenced student not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /students [post]
func (c *StudentController) SubmitAssessment(ctx *gin.Context) {
	var req dto.AssessmentSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	student, err := c.studentService.SubmitAssessment(req)
	if err != nil {
		log.Error().Err(err).Msg("SubmitAssessment failed")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, student)
}

// GetAllStudents godoc
// @Summary List all students
// @Description Returns summaries of every student, including their computed risk level.
// @Tags Students
// @Produce json
// @Success 200 {array} dto.StudentSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents()
	if err != nil {
		log.Error().Err(err).Msg("GetAllStudents failed")
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// GetStudent godoc
// @Summary Get one student
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.StudentResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// UpdateStudent godoc
// @Summary Update a student's own fields
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param student body dto.StudentUpdateDTO true "Fields to update"
// @Success 200 {object} dto.StudentResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.StudentUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// DeleteStudent godoc
// @Summary Delete a student
// @Tags Students
// @Param id path string true "Student ID"
// @Success 204 "No content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AppendTestResults godoc
// @Summary Append test results to a student
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param results body dto.TestResultsAppendDTO true "Test results"
// @Success 200 {object} dto.StudentResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/test-results [post]
func (c *StudentController) AppendTestResults(ctx *gin.Context) {
	var req dto.TestResultsAppendDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	student, err := c.studentService.AppendTestResults(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// GetProgressReport godoc
// @Summary Per-subject progress report for a student
// @Description Improvement per subject (newest minus oldest attempt) plus milestone status.
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.ProgressReportDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/progress [get]
func (c *StudentController) GetProgressReport(ctx *gin.Context) {
	report, err := c.studentService.GetProgressReport(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// AddMilestone godoc
// @Summary Add a milestone to a student's progress metrics
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param milestone body dto.MilestoneCreateDTO true "Milestone"
// @Success 201 {object} dto.StudentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Student has no progress metrics"
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/milestones [post]
func (c *StudentController) AddMilestone(ctx *gin.Context) {
	var req dto.MilestoneCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	student, err := c.studentService.AddMilestone(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, student)
}

// AchieveMilestone godoc
// @Summary Mark a milestone as achieved
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Param milestone_id path int true "Milestone ID"
// @Success 200 {object} dto.StudentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Milestone does not belong to the student"
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/milestones/{milestone_id}/achieve [post]
func (c *StudentController) AchieveMilestone(ctx *gin.Context) {
	milestoneID, err := strconv.ParseUint(ctx.Param("milestone_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid milestone ID"})
		return
	}

	student, err := c.studentService.AchieveMilestone(ctx.Param("id"), uint(milestoneID))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// SetLearningStyle godoc
// @Summary Set a student's learning style
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param style body dto.LearningStyleUpdateDTO true "Learning style"
// @Success 200 {object} dto.StudentResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/learning-style [put]
func (c *StudentController) SetLearningStyle(ctx *gin.Context) {
	var req dto.LearningStyleUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	student, err := c.studentService.SetLearningStyle(ctx.Param("id"), req.LearningStyle)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}
