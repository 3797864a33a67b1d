package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/lshigami/QuizMaster/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Chapter{},
		&model.Quiz{},
		&model.Question{},
		&model.Score{},
	))
	return db
}

type seededTree struct {
	user      model.User
	otherUser model.User
	subject   model.Subject
	chapter   model.Chapter
	quiz      model.Quiz
	question  model.Question
	score     model.Score
}

// seedTree inserts one full subject→chapter→quiz→question branch plus one
// score per user. The suffix keeps unique columns apart between trees.
func seedTree(t *testing.T, db *gorm.DB, suffix string) seededTree {
	t.Helper()
	tree := seededTree{
		user:      model.User{Username: "learner" + suffix, Email: "learner" + suffix + "@example.com", PasswordHash: "x", FullName: "Learner " + suffix, DateOfBirth: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
		otherUser: model.User{Username: "other" + suffix, Email: "other" + suffix + "@example.com", PasswordHash: "x", FullName: "Other " + suffix, DateOfBirth: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, db.Create(&tree.user).Error)
	require.NoError(t, db.Create(&tree.otherUser).Error)

	tree.subject = model.Subject{Name: "Subject " + suffix}
	require.NoError(t, db.Create(&tree.subject).Error)
	tree.chapter = model.Chapter{Name: "Chapter " + suffix, SubjectID: tree.subject.ID}
	require.NoError(t, db.Create(&tree.chapter).Error)
	tree.quiz = model.Quiz{Title: "Quiz " + suffix, ChapterID: tree.chapter.ID, DateOfQuiz: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), TimeDuration: "00:30"}
	require.NoError(t, db.Create(&tree.quiz).Error)
	tree.question = model.Question{QuizID: tree.quiz.ID, QuestionText: "Q " + suffix, Option1: "a", Option2: "b", CorrectOption: 1}
	require.NoError(t, db.Create(&tree.question).Error)
	tree.score = model.Score{UserID: tree.user.ID, QuizID: tree.quiz.ID, Score: 1, TotalQuestions: 1, Percentage: 100}
	require.NoError(t, db.Create(&tree.score).Error)
	otherScore := model.Score{UserID: tree.otherUser.ID, QuizID: tree.quiz.ID, Score: 0, TotalQuestions: 1, Percentage: 0}
	require.NoError(t, db.Create(&otherScore).Error)
	return tree
}

func count(t *testing.T, db *gorm.DB, value interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(value).Where(query, args...).Count(&n).Error)
	return n
}

func TestSubjectDeleteCascade_NoOrphans(t *testing.T) {
	db := openTestDB(t)
	doomed := seedTree(t, db, "a")
	kept := seedTree(t, db, "b")

	require.NoError(t, NewSubjectRepository(db).DeleteCascade(doomed.subject.ID))

	assert.Zero(t, count(t, db, &model.Chapter{}, "subject_id = ?", doomed.subject.ID))
	assert.Zero(t, count(t, db, &model.Quiz{}, "chapter_id = ?", doomed.chapter.ID))
	assert.Zero(t, count(t, db, &model.Question{}, "quiz_id = ?", doomed.quiz.ID))
	assert.Zero(t, count(t, db, &model.Score{}, "quiz_id = ?", doomed.quiz.ID))
	assert.Zero(t, count(t, db, &model.Subject{}, "id = ?", doomed.subject.ID))

	assert.Equal(t, int64(1), count(t, db, &model.Chapter{}, "subject_id = ?", kept.subject.ID))
	assert.Equal(t, int64(1), count(t, db, &model.Quiz{}, "chapter_id = ?", kept.chapter.ID))
	assert.Equal(t, int64(1), count(t, db, &model.Question{}, "quiz_id = ?", kept.quiz.ID))
	assert.Equal(t, int64(2), count(t, db, &model.Score{}, "quiz_id = ?", kept.quiz.ID))
}

func TestSubjectDeleteCascade_MissingSubject(t *testing.T) {
	db := openTestDB(t)
	assert.ErrorIs(t, NewSubjectRepository(db).DeleteCascade(404), gorm.ErrRecordNotFound)
}

func TestChapterDeleteCascade_NoOrphans(t *testing.T) {
	db := openTestDB(t)
	doomed := seedTree(t, db, "a")
	kept := seedTree(t, db, "b")

	require.NoError(t, NewChapterRepository(db).DeleteCascade(doomed.chapter.ID))

	assert.Zero(t, count(t, db, &model.Chapter{}, "id = ?", doomed.chapter.ID))
	assert.Zero(t, count(t, db, &model.Quiz{}, "chapter_id = ?", doomed.chapter.ID))
	assert.Zero(t, count(t, db, &model.Question{}, "quiz_id = ?", doomed.quiz.ID))
	assert.Zero(t, count(t, db, &model.Score{}, "quiz_id = ?", doomed.quiz.ID))

	// The parent subject survives a chapter cascade.
	assert.Equal(t, int64(1), count(t, db, &model.Subject{}, "id = ?", doomed.subject.ID))
	assert.Equal(t, int64(1), count(t, db, &model.Quiz{}, "chapter_id = ?", kept.chapter.ID))
}

func TestQuizDeleteCascade_NoOrphans(t *testing.T) {
	db := openTestDB(t)
	doomed := seedTree(t, db, "a")
	kept := seedTree(t, db, "b")

	require.NoError(t, NewQuizRepository(db).DeleteCascade(doomed.quiz.ID))

	assert.Zero(t, count(t, db, &model.Quiz{}, "id = ?", doomed.quiz.ID))
	assert.Zero(t, count(t, db, &model.Question{}, "quiz_id = ?", doomed.quiz.ID))
	assert.Zero(t, count(t, db, &model.Score{}, "quiz_id = ?", doomed.quiz.ID))

	assert.Equal(t, int64(1), count(t, db, &model.Chapter{}, "id = ?", doomed.chapter.ID))
	assert.Equal(t, int64(1), count(t, db, &model.Question{}, "quiz_id = ?", kept.quiz.ID))
	assert.Equal(t, int64(2), count(t, db, &model.Score{}, "quiz_id = ?", kept.quiz.ID))
}

func TestUserDeleteWithScores_OnlyThatUsersScores(t *testing.T) {
	db := openTestDB(t)
	tree := seedTree(t, db, "a")

	require.NoError(t, NewUserRepository(db).DeleteWithScores(tree.user.ID))

	assert.Zero(t, count(t, db, &model.User{}, "id = ?", tree.user.ID))
	assert.Zero(t, count(t, db, &model.Score{}, "user_id = ?", tree.user.ID))

	assert.Equal(t, int64(1), count(t, db, &model.User{}, "id = ?", tree.otherUser.ID))
	assert.Equal(t, int64(1), count(t, db, &model.Score{}, "user_id = ?", tree.otherUser.ID))
	assert.Equal(t, int64(1), count(t, db, &model.Quiz{}, "id = ?", tree.quiz.ID))
	assert.Equal(t, int64(1), count(t, db, &model.Question{}, "quiz_id = ?", tree.quiz.ID))
}

func TestUserDeleteWithScores_MissingUser(t *testing.T) {
	db := openTestDB(t)
	assert.ErrorIs(t, NewUserRepository(db).DeleteWithScores(404), gorm.ErrRecordNotFound)
}
