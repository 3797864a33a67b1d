package service

import (
	"fmt"

	"github.com/lshigami/QuizMaster/internal/dto"
	"github.com/lshigami/QuizMaster/internal/model"
	"github.com/lshigami/QuizMaster/internal/repository"
)

type SubjectService interface {
	CreateSubject(form dto.SubjectForm) (*model.Subject, error)
	GetSubject(id uint) (*model.Subject, error)
	ListSubjects() ([]model.Subject, error)
	UpdateSubject(id uint, form dto.SubjectForm) (*model.Subject, error)
	DeleteSubject(id uint) error
}

type subjectService struct {
	subjectRepo repository.SubjectRepository
}

func NewSubjectService(subjectRepo repository.SubjectRepository) SubjectService {
	return &subjectService{subjectRepo: subjectRepo}
}

func (s *subjectService) CreateSubject(form dto.SubjectForm) (*model.Subject, error) {
	subject := form.ToModel()
	if err := s.subjectRepo.Create(&subject); err != nil {
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}
	return &subject, nil
}

func (s *subjectService) GetSubject(id uint) (*model.Subject, error) {
	return s.subjectRepo.FindByID(id)
}

func (s *subjectService) ListSubjects() ([]model.Subject, error) {
	return s.subjectRepo.FindAll()
}

// UpdateSubject replaces the mutable fields of the subject with the form
// values.
func (s *subjectService) UpdateSubject(id uint, form dto.SubjectForm) (*model.Subject, error) {
	subject, err := s.subjectRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	form.ApplyTo(subject)
	if err := s.subjectRepo.Update(subject); err != nil {
		return nil, fmt.Errorf("failed to update subject: %w", err)
	}
	return subject, nil
}

// DeleteSubject removes the subject and all descendant chapters, quizzes,
// questions and scores.
func (s *subjectService) DeleteSubject(id uint) error {
	return s.subjectRepo.DeleteCascade(id)
}
