package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muthita66/Winai-school-sub002/models"
)

func TestGradeEnter(t *testing.T) {
	db := newTestDB(t)
	fx := seedTerm(t, db)
	svc := NewGradeService(db)
	ctx := context.Background()

	register(t, db, fx.student.ID, fx.section.ID, 2568, 1)

	g, err := svc.Enter(ctx, fx.teacher.ID, fx.section.ID, fx.student.ID, 82)
	require.NoError(t, err)
	assert.Equal(t, "4", g.Letter)

	t.Run("re-entering updates, no second row", func(t *testing.T) {
		g2, err := svc.Enter(ctx, fx.teacher.ID, fx.section.ID, fx.student.ID, 58)
		require.NoError(t, err)
		assert.Equal(t, g.ID, g2.ID)
		assert.Equal(t, "1.5", g2.Letter)

		var n int64
		require.NoError(t, db.Model(&models.Grade{}).Count(&n).Error)
		assert.EqualValues(t, 1, n)
	})

	t.Run("someone else's section is forbidden", func(t *testing.T) {
		outsider := models.Teacher{Code: "T002", FirstName: "x", LastName: "y"}
		require.NoError(t, db.Create(&outsider).Error)
		_, err := svc.Enter(ctx, outsider.ID, fx.section.ID, fx.student.ID, 50)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unregistered student", func(t *testing.T) {
		ghost := newStudent(t, db, "S009", fx.classroom.ID)
		_, err := svc.Enter(ctx, fx.teacher.ID, fx.section.ID, ghost.ID, 50)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListForStudentIsOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	fx := seedTerm(t, db)
	svc := NewGradeService(db)
	ctx := context.Background()

	other := newStudent(t, db, "S002", fx.classroom.ID)
	register(t, db, fx.student.ID, fx.section.ID, 2568, 1)
	register(t, db, other.ID, fx.section.ID, 2568, 1)
	_, err := svc.Enter(ctx, fx.teacher.ID, fx.section.ID, fx.student.ID, 75)
	require.NoError(t, err)
	_, err = svc.Enter(ctx, fx.teacher.ID, fx.section.ID, other.ID, 60)
	require.NoError(t, err)

	list, err := svc.ListForStudent(ctx, fx.student.ID, 2568, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	for _, g := range list {
		assert.Equal(t, fx.student.ID, g.StudentID)
	}
	assert.Equal(t, "3.5", list[0].Letter)
}

func TestGradeSummary(t *testing.T) {
	db := newTestDB(t)
	fx := seedTerm(t, db)
	svc := NewGradeService(db)
	ctx := context.Background()

	// second subject, 2 credits
	sub2 := models.Subject{Code: "TH101", Name: "ภาษาไทย", Credits: 2}
	require.NoError(t, db.Create(&sub2).Error)
	sec2 := models.Section{SubjectID: sub2.ID, TeacherID: fx.teacher.ID, Year: 2568, Semester: 1, Capacity: 40}
	require.NoError(t, db.Create(&sec2).Error)

	register(t, db, fx.student.ID, fx.section.ID, 2568, 1)
	register(t, db, fx.student.ID, sec2.ID, 2568, 1)
	_, err := svc.Enter(ctx, fx.teacher.ID, fx.section.ID, fx.student.ID, 80) // 4.0 x 3cr
	require.NoError(t, err)
	_, err = svc.Enter(ctx, fx.teacher.ID, sec2.ID, fx.student.ID, 62) // 2.0 x 2cr
	require.NoError(t, err)

	sum, err := svc.Summary(ctx, fx.student.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, sum.TotalCredits)
	assert.Equal(t, 2, sum.Graded)
	assert.InDelta(t, 3.2, sum.GPA, 0.001) // (4*3 + 2*2) / 5
}

func TestLetterScale(t *testing.T) {
	cases := map[float64]string{
		100: "4", 80: "4", 79.5: "3.5", 75: "3.5", 70: "3",
		65: "2.5", 60: "2", 55: "1.5", 50: "1", 49.9: "0", 0: "0",
	}
	for score, want := range cases {
		assert.Equal(t, want, letterFor(score), "score %v", score)
	}
}
