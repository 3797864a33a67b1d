package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/QuizMaster/internal/dto"
	"github.com/lshigami/QuizMaster/internal/model"
	"github.com/lshigami/QuizMaster/internal/repository"
	"gorm.io/gorm"
)

var ErrSubjectNotFound = errors.New("subject does not exist")

type ChapterService interface {
	CreateChapter(form dto.ChapterForm) (*model.Chapter, error)
	GetChapter(id uint) (*model.Chapter, error)
	ListChapters() ([]model.Chapter, error)
	ListChaptersBySubject(subjectID uint) ([]dto.ChapterOption, error)
	UpdateChapter(id uint, form dto.ChapterForm) (*model.Chapter, error)
	DeleteChapter(id uint) error
}

type chapterService struct {
	chapterRepo repository.ChapterRepository
	subjectRepo repository.SubjectRepository
}

func NewChapterService(chapterRepo repository.ChapterRepository, subjectRepo repository.SubjectRepository) ChapterService {
	return &chapterService{chapterRepo: chapterRepo, subjectRepo: subjectRepo}
}

func (s *chapterService) CreateChapter(form dto.ChapterForm) (*model.Chapter, error) {
	if err := s.checkSubject(form.SubjectID); err != nil {
		return nil, err
	}
	chapter := form.ToModel()
	if err := s.chapterRepo.Create(&chapter); err != nil {
		return nil, fmt.Errorf("failed to create chapter: %w", err)
	}
	return &chapter, nil
}

func (s *chapterService) GetChapter(id uint) (*model.Chapter, error) {
	return s.chapterRepo.FindByID(id)
}

func (s *chapterService) ListChapters() ([]model.Chapter, error) {
	return s.chapterRepo.FindAll()
}

// ListChaptersBySubject backs the dependent-dropdown lookup endpoint.
func (s *chapterService) ListChaptersBySubject(subjectID uint) ([]dto.ChapterOption, error) {
	chapters, err := s.chapterRepo.FindBySubjectID(subjectID)
	if err != nil {
		return nil, err
	}
	options := make([]dto.ChapterOption, 0, len(chapters))
	for _, c := range chapters {
		options = append(options, dto.ChapterOption{ID: c.ID, Name: c.Name})
	}
	return options, nil
}

func (s *chapterService) UpdateChapter(id uint, form dto.ChapterForm) (*model.Chapter, error) {
	chapter, err := s.chapterRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkSubject(form.SubjectID); err != nil {
		return nil, err
	}
	form.ApplyTo(chapter)
	if err := s.chapterRepo.Update(chapter); err != nil {
		return nil, fmt.Errorf("failed to update chapter: %w", err)
	}
	return chapter, nil
}

// DeleteChapter removes the chapter and all descendant quizzes, questions and
// scores.
func (s *chapterService) DeleteChapter(id uint) error {
	return s.chapterRepo.DeleteCascade(id)
}

func (s *chapterService) checkSubject(subjectID uint) error {
	if _, err := s.subjectRepo.FindByID(subjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		return fmt.Errorf("failed to check subject: %w", err)
	}
	return nil
}
