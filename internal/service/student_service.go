package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Wallabies/internal/analytics"
	"github.com/lshigami/Wallabies/internal/dto"
	"github.com/lshigami/Wallabies/internal/model"
	"github.com/lshigami/Wallabies/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// ValidationError marks a request whose payload passed binding but failed a
// cross-field rule, e.g. score above total. Controllers map it to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

type StudentService interface {
	SubmitAssessment(req dto.AssessmentSubmitDTO) (*dto.StudentResponseDTO, error)
	GetAllStudents() ([]dto.StudentSummaryDTO, error)
	GetStudent(id string) (*dto.StudentResponseDTO, error)
	UpdateStudent(id string, req dto.StudentUpdateDTO) (*dto.StudentResponseDTO, error)
	DeleteStudent(id string) error
	AppendTestResults(id string, req dto.TestResultsAppendDTO) (*dto.StudentResponseDTO, error)
	GetProgressReport(id string) (*dto.ProgressReportDTO, error)
	AddMilestone(id string, req dto.MilestoneCreateDTO) (*dto.StudentResponseDTO, error)
	AchieveMilestone(studentID string, milestoneID uint) (*dto.StudentResponseDTO, error)
	SetLearningStyle(id string, style string) (*dto.StudentResponseDTO, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
}

func NewStudentService(studentRepo repository.StudentRepository) StudentService {
	return &studentService{studentRepo: studentRepo}
}

// SubmitAssessment creates a student from an assessment payload, or appends
// the payload's results to an existing student when StudentID is set.
func (s *studentService) SubmitAssessment(req dto.AssessmentSubmitDTO) (*dto.StudentResponseDTO, error) {
	if err := validateTestResults(req.TestResults); err != nil {
		return nil, err
	}

	results, err := toTestResultModels(req.TestResults)
	if err != nil {
		return nil, err
	}

	if req.StudentID != nil {
		return s.appendAssessment(*req.StudentID, req, results)
	}

	student := model.Student{
		Name:          req.Name,
		Grade:         req.Grade,
		Age:           req.Age,
		LearningStyle: req.LearningStyle,
		TestResults:   results,
	}
	if req.BehavioralMetrics != nil {
		var bm model.BehavioralMetrics
		if err := copier.Copy(&bm, req.BehavioralMetrics); err != nil {
			return nil, fmt.Errorf("failed to map behavioral metrics: %w", err)
		}
		student.BehavioralMetrics = &bm
	}
	if req.ProgressMetrics != nil {
		var pm model.ProgressMetrics
		if err := copier.Copy(&pm, req.ProgressMetrics); err != nil {
			return nil, fmt.Errorf("failed to map progress metrics: %w", err)
		}
		student.ProgressMetrics = &pm
	}

	if err := s.studentRepo.Create(&student); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	log.Info().Str("student_id", student.ID).Str("name", student.Name).Int("results", len(results)).Msg("Assessment submitted")

	return s.GetStudent(student.ID)
}

func (s *studentService) appendAssessment(studentID string, req dto.AssessmentSubmitDTO, results []model.TestResult) (*dto.StudentResponseDTO, error) {
	student, err := s.studentRepo.FindByID(studentID)
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.AppendTestResults(student.ID, results); err != nil {
		return nil, fmt.Errorf("failed to append test results: %w", err)
	}

	if req.BehavioralMetrics != nil || req.ProgressMetrics != nil {
		if req.BehavioralMetrics != nil {
			bm := student.BehavioralMetrics
			if bm == nil {
				bm = &model.BehavioralMetrics{StudentID: student.ID}
			}
			if err := copier.Copy(bm, req.BehavioralMetrics); err != nil {
				return nil, fmt.Errorf("failed to map behavioral metrics: %w", err)
			}
			student.BehavioralMetrics = bm
		}
		if req.ProgressMetrics != nil {
			pm := student.ProgressMetrics
			if pm == nil {
				pm = &model.ProgressMetrics{StudentID: student.ID}
			}
			if err := copier.Copy(pm, req.ProgressMetrics); err != nil {
				return nil, fmt.Errorf("failed to map progress metrics: %w", err)
			}
			student.ProgressMetrics = pm
		}
		student.TestResults = nil // results were appended above
		if err := s.studentRepo.Update(student); err != nil {
			return nil, fmt.Errorf("failed to update student metrics: %w", err)
		}
	}

	log.Info().Str("student_id", studentID).Int("results", len(results)).Msg("Assessment appended to existing student")
	return s.GetStudent(studentID)
}

func (s *studentService) GetAllStudents() ([]dto.StudentSummaryDTO, error) {
	students, err := s.studentRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	summaries := make([]dto.StudentSummaryDTO, 0, len(students))
	for _, st := range students {
		summaries = append(summaries, dto.StudentSummaryDTO{
			ID:            st.ID,
			Name:          st.Name,
			Grade:         st.Grade,
			LearningStyle: st.LearningStyle,
			TestCount:     len(st.TestResults),
			RiskLevel:     string(analytics.ClassifyRisk(st)),
			CreatedAt:     st.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *studentService) GetStudent(id string) (*dto.StudentResponseDTO, error) {
	student, err := s.studentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toStudentResponse(student)
}

func (s *studentService) UpdateStudent(id string, req dto.StudentUpdateDTO) (*dto.StudentResponseDTO, error) {
	student, err := s.studentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Grade != nil {
		student.Grade = req.Grade
	}
	if req.Age != nil {
		student.Age = req.Age
	}
	if req.LearningStyle != nil {
		student.LearningStyle = req.LearningStyle
	}

	if err := s.studentRepo.Update(student); err != nil {
		return nil, fmt.Errorf("failed to update student: %w", err)
	}
	return s.GetStudent(id)
}

func (s *studentService) DeleteStudent(id string) error {
	if _, err := s.studentRepo.FindByID(id); err != nil {
		return err
	}
	if err := s.studentRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	log.Info().Str("student_id", id).Msg("Student deleted")
	return nil
}

func (s *studentService) AppendTestResults(id string, req dto.TestResultsAppendDTO) (*dto.StudentResponseDTO, error) {
	if err := validateTestResults(req.TestResults); err != nil {
		return nil, err
	}
	student, err := s.studentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	results, err := toTestResultModels(req.TestResults)
	if err != nil {
		return nil, err
	}
	if err := s.studentRepo.AppendTestResults(student.ID, results); err != nil {
		return nil, fmt.Errorf("failed to append test results: %w", err)
	}
	return s.GetStudent(id)
}

// GetProgressReport derives per-subject improvement from the student's test
// history and reports milestones with their overdue status.
func (s *studentService) GetProgressReport(id string) (*dto.ProgressReportDTO, error) {
	student, err := s.studentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	report := dto.ProgressReportDTO{
		StudentID:           student.ID,
		Name:                student.Name,
		SubjectImprovements: analytics.SubjectImprovements(student.TestResults),
	}
	if pm := student.ProgressMetrics; pm != nil {
		report.ImprovementRate = &pm.ImprovementRate
		report.ConsistencyScore = &pm.ConsistencyScore
		report.Milestones = toMilestoneResponses(pm.Milestones)
	}
	return &report, nil
}

func (s *studentService) AddMilestone(id string, req dto.MilestoneCreateDTO) (*dto.StudentResponseDTO, error) {
	student, err := s.studentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if student.ProgressMetrics == nil {
		return nil, &ValidationError{Msg: "student has no progress metrics; submit progress metrics before adding milestones"}
	}

	milestone := model.Milestone{
		ProgressMetricsID: student.ProgressMetrics.ID,
		Title:             req.Title,
		Description:       req.Description,
		TargetDate:        req.TargetDate,
	}
	if err := s.studentRepo.CreateMilestone(&milestone); err != nil {
		return nil, fmt.Errorf("failed to create milestone: %w", err)
	}
	return s.GetStudent(id)
}

func (s *studentService) AchieveMilestone(studentID string, milestoneID uint) (*dto.StudentResponseDTO, error) {
	student, err := s.studentRepo.FindByID(studentID)
	if err != nil {
		return nil, err
	}

	milestone, err := s.studentRepo.FindMilestone(milestoneID)
	if err != nil {
		return nil, err
	}
	if student.ProgressMetrics == nil || milestone.ProgressMetricsID != student.ProgressMetrics.ID {
		return nil, &ValidationError{Msg: "milestone does not belong to this student"}
	}

	if err := s.studentRepo.AchieveMilestone(milestoneID, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to achieve milestone: %w", err)
	}
	return s.GetStudent(studentID)
}

func (s *studentService) SetLearningStyle(id string, style string) (*dto.StudentResponseDTO, error) {
	return s.UpdateStudent(id, dto.StudentUpdateDTO{LearningStyle: &style})
}

func validateTestResults(results []dto.TestResultDTO) error {
	for _, r := range results {
		if r.Score > r.TotalPossible {
			return &ValidationError{Msg: fmt.Sprintf("score %d exceeds total possible %d for subject %q", r.Score, r.TotalPossible, r.Subject)}
		}
	}
	return nil
}

func toTestResultModels(in []dto.TestResultDTO) ([]model.TestResult, error) {
	out := make([]model.TestResult, 0, len(in))
	for _, r := range in {
		tr := model.TestResult{
			Subject:       r.Subject,
			Score:         r.Score,
			TotalPossible: r.TotalPossible,
			AttemptDate:   r.AttemptDate,
			TimeSpent:     r.TimeSpent,
		}
		if r.MistakePatterns != nil {
			raw, err := json.Marshal(r.MistakePatterns)
			if err != nil {
				return nil, fmt.Errorf("failed to encode mistake patterns: %w", err)
			}
			tr.MistakePatterns = datatypes.JSON(raw)
		}
		if r.TopicBreakdown != nil {
			raw, err := json.Marshal(r.TopicBreakdown)
			if err != nil {
				return nil, fmt.Errorf("failed to encode topic breakdown: %w", err)
			}
			tr.TopicBreakdown = datatypes.JSON(raw)
		}
		out = append(out, tr)
	}
	return out, nil
}

func toStudentResponse(student *model.Student) (*dto.StudentResponseDTO, error) {
	resp := dto.StudentResponseDTO{
		ID:            student.ID,
		Name:          student.Name,
		Grade:         student.Grade,
		Age:           student.Age,
		LearningStyle: student.LearningStyle,
		CreatedAt:     student.CreatedAt,
	}

	for _, tr := range student.TestResults {
		trDTO := dto.TestResultResponseDTO{
			ID:            tr.ID,
			Subject:       tr.Subject,
			Score:         tr.Score,
			TotalPossible: tr.TotalPossible,
			Percentage:    tr.Percentage(),
			AttemptDate:   tr.AttemptDate,
			TimeSpent:     tr.TimeSpent,
		}
		if len(tr.MistakePatterns) > 0 {
			if err := json.Unmarshal(tr.MistakePatterns, &trDTO.MistakePatterns); err != nil {
				return nil, fmt.Errorf("failed to decode mistake patterns: %w", err)
			}
		}
		if len(tr.TopicBreakdown) > 0 {
			if err := json.Unmarshal(tr.TopicBreakdown, &trDTO.TopicBreakdown); err != nil {
				return nil, fmt.Errorf("failed to decode topic breakdown: %w", err)
			}
		}
		resp.TestResults = append(resp.TestResults, trDTO)
	}

	if bm := student.BehavioralMetrics; bm != nil {
		var bmDTO dto.BehavioralMetricsResponseDTO
		if err := copier.Copy(&bmDTO, bm); err != nil {
			return nil, fmt.Errorf("failed to map behavioral metrics: %w", err)
		}
		resp.BehavioralMetrics = &bmDTO
	}

	if pm := student.ProgressMetrics; pm != nil {
		resp.ProgressMetrics = &dto.ProgressMetricsResponseDTO{
			StartDate:        pm.StartDate,
			CurrentDate:      pm.CurrentDate,
			InitialScore:     pm.InitialScore,
			CurrentScore:     pm.CurrentScore,
			ImprovementRate:  pm.ImprovementRate,
			ConsistencyScore: pm.ConsistencyScore,
			Milestones:       toMilestoneResponses(pm.Milestones),
		}
	}
	return &resp, nil
}

func toMilestoneResponses(milestones []model.Milestone) []dto.MilestoneResponseDTO {
	now := time.Now()
	out := make([]dto.MilestoneResponseDTO, 0, len(milestones))
	for _, m := range milestones {
		out = append(out, dto.MilestoneResponseDTO{
			ID:           m.ID,
			Title:        m.Title,
			Description:  m.Description,
			TargetDate:   m.TargetDate,
			AchievedDate: m.AchievedDate,
			IsAchieved:   m.IsAchieved,
			IsOverdue:    m.IsOverdue(now),
		})
	}
	return out
}
