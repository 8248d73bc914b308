package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muthita66/Winai-school-sub002/models"
)

func TestAttendanceMark(t *testing.T) {
	db := newTestDB(t)
	fx := seedTerm(t, db)
	svc := NewAttendanceService(db)
	ctx := context.Background()

	att, err := svc.Mark(ctx, fx.teacher.ID, fx.section.ID, fx.student.ID, "2568-06-01", "late", "")
	require.NoError(t, err)
	assert.Equal(t, "late", att.Status)

	t.Run("re-marking same day overwrites", func(t *testing.T) {
		att2, err := svc.Mark(ctx, fx.teacher.ID, fx.section.ID, fx.student.ID, "2568-06-01", "present", "corrected")
		require.NoError(t, err)
		assert.Equal(t, att.ID, att2.ID)
		assert.Equal(t, "present", att2.Status)

		var n int64
		require.NoError(t, db.Model(&models.Attendance{}).Count(&n).Error)
		assert.EqualValues(t, 1, n)
	})

	t.Run("empty date defaults to today", func(t *testing.T) {
		att3, err := svc.Mark(ctx, fx.teacher.ID, fx.section.ID, fx.student.ID, "", "present", "")
		require.NoError(t, err)
		assert.NotEmpty(t, att3.Date)
	})

	t.Run("someone else's section is forbidden", func(t *testing.T) {
		outsider := models.Teacher{Code: "T002", FirstName: "x", LastName: "y"}
		require.NoError(t, db.Create(&outsider).Error)
		_, err := svc.Mark(ctx, outsider.ID, fx.section.ID, fx.student.ID, "2568-06-01", "absent", "")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestAttendanceStudentScope(t *testing.T) {
	db := newTestDB(t)
	fx := seedTerm(t, db)
	svc := NewAttendanceService(db)
	ctx := context.Background()

	other := newStudent(t, db, "S002", fx.classroom.ID)
	_, err := svc.Mark(ctx, fx.teacher.ID, fx.section.ID, fx.student.ID, "2568-06-01", "present", "")
	require.NoError(t, err)
	_, err = svc.Mark(ctx, fx.teacher.ID, fx.section.ID, fx.student.ID, "2568-06-02", "absent", "")
	require.NoError(t, err)
	_, err = svc.Mark(ctx, fx.teacher.ID, fx.section.ID, other.ID, "2568-06-01", "leave", "")
	require.NoError(t, err)

	list, err := svc.ListForStudent(ctx, fx.student.ID, 2568, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, a := range list {
		assert.Equal(t, fx.student.ID, a.StudentID)
	}

	sum, err := svc.SummaryForStudent(ctx, fx.student.ID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Present)
	assert.Equal(t, 1, sum.Absent)
	assert.Equal(t, 0, sum.Leave)
}
