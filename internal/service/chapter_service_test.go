package service

import (
	"testing"

	"github.com/lshigami/QuizMaster/internal/dto"
	"github.com/lshigami/QuizMaster/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateChapter_SubjectMissing(t *testing.T) {
	chapterRepo := new(mockChapterRepository)
	subjectRepo := new(mockSubjectRepository)
	subjectRepo.On("FindByID", uint(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewChapterService(chapterRepo, subjectRepo)
	_, err := svc.CreateChapter(dto.ChapterForm{Name: "Algebra", SubjectID: 404})

	assert.ErrorIs(t, err, ErrSubjectNotFound)
	chapterRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateChapter_Success(t *testing.T) {
	chapterRepo := new(mockChapterRepository)
	subjectRepo := new(mockSubjectRepository)
	subjectRepo.On("FindByID", uint(1)).Return(&model.Subject{ID: 1, Name: "Math"}, nil)
	chapterRepo.On("Create", mock.AnythingOfType("*model.Chapter")).Return(nil)

	svc := NewChapterService(chapterRepo, subjectRepo)
	chapter, err := svc.CreateChapter(dto.ChapterForm{Name: "Algebra", Description: "Linear equations", SubjectID: 1})

	require.NoError(t, err)
	assert.Equal(t, "Algebra", chapter.Name)
	assert.Equal(t, uint(1), chapter.SubjectID)
}

func TestListChaptersBySubject_DropdownOptions(t *testing.T) {
	chapterRepo := new(mockChapterRepository)
	subjectRepo := new(mockSubjectRepository)
	chapterRepo.On("FindBySubjectID", uint(1)).Return([]model.Chapter{
		{ID: 2, Name: "Algebra", SubjectID: 1},
		{ID: 5, Name: "Geometry", SubjectID: 1},
	}, nil)

	svc := NewChapterService(chapterRepo, subjectRepo)
	options, err := svc.ListChaptersBySubject(1)

	require.NoError(t, err)
	assert.Equal(t, []dto.ChapterOption{{ID: 2, Name: "Algebra"}, {ID: 5, Name: "Geometry"}}, options)
}

func TestUpdateChapter_MoveToNewSubject(t *testing.T) {
	existing := &model.Chapter{ID: 2, Name: "Algebra", SubjectID: 1}

	chapterRepo := new(mockChapterRepository)
	subjectRepo := new(mockSubjectRepository)
	chapterRepo.On("FindByID", uint(2)).Return(existing, nil)
	subjectRepo.On("FindByID", uint(9)).Return(&model.Subject{ID: 9}, nil)
	chapterRepo.On("Update", mock.AnythingOfType("*model.Chapter")).Return(nil)

	svc := NewChapterService(chapterRepo, subjectRepo)
	chapter, err := svc.UpdateChapter(2, dto.ChapterForm{Name: "Advanced Algebra", SubjectID: 9})

	require.NoError(t, err)
	assert.Equal(t, "Advanced Algebra", chapter.Name)
	assert.Equal(t, uint(9), chapter.SubjectID)
}
