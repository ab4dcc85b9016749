package services

import (
	"context"
	"regexp"
	"testing"

	"dealerhub/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rmaNumberPattern = regexp.MustCompile(`^RMA-\d{8}-[0-9A-F]{8}$`)

func TestRMAFile(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending on filing", func(t *testing.T) {
		f := newFixture(t, nil)
		dealer := f.registerDealer(t, 1)

		rma, err := f.rma.File(ctx, &FileRMAInput{
			CustomerType: "DEALER",
			CustomerID:   dealer.ID,
			ProductName:  "TP-Link X1",
			SerialNumber: "SN-001",
			Reason:       "No power",
		})

		require.NoError(t, err)
		assert.Equal(t, string(domain.RMAPending), rma.Status)
		assert.Regexp(t, rmaNumberPattern, rma.RMANumber)
	})

	t.Run("Filed by a technician", func(t *testing.T) {
		f := newFixture(t, nil)
		dealer := f.registerDealer(t, 1)
		tech, err := f.technicians.Create(ctx, dealer.ID, subAccountInput("tech@example.com"))
		require.NoError(t, err)

		rma, err := f.rma.File(ctx, &FileRMAInput{
			CustomerType: "TECHNICIAN",
			CustomerID:   tech.ID,
			ProductName:  "Deco M4",
			Reason:       "Dead port",
		})

		require.NoError(t, err)
		assert.Equal(t, "TECHNICIAN", rma.CustomerType)
	})

	tests := []struct {
		name  string
		input FileRMAInput
		want  error
	}{
		{"Unknown customer type", FileRMAInput{CustomerType: "RETAIL", CustomerID: 1, ProductName: "X", Reason: "Y"}, domain.ErrInvalidInput},
		{"Missing reason", FileRMAInput{CustomerType: "DEALER", CustomerID: 1, ProductName: "X"}, domain.ErrInvalidInput},
		{"Unknown dealer", FileRMAInput{CustomerType: "DEALER", CustomerID: 9, ProductName: "X", Reason: "Y"}, domain.ErrDealerNotFound},
		{"Unknown technician", FileRMAInput{CustomerType: "TECHNICIAN", CustomerID: 9, ProductName: "X", Reason: "Y"}, domain.ErrTechnicianNotFound},
		{"Unknown back-office user", FileRMAInput{CustomerType: "BACKOFFICE", CustomerID: 9, ProductName: "X", Reason: "Y"}, domain.ErrBackOfficeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			input := tt.input

			_, err := f.rma.File(ctx, &input)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRMATransitions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	dealer := f.registerDealer(t, 1)

	file := func() uint {
		rma, err := f.rma.File(ctx, &FileRMAInput{
			CustomerType: "DEALER",
			CustomerID:   dealer.ID,
			ProductName:  "TP-Link X1",
			Reason:       "No power",
		})
		require.NoError(t, err)
		return rma.ID
	}

	t.Run("Resolve straight from pending", func(t *testing.T) {
		id := file()

		rma, err := f.rma.Resolve(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, string(domain.RMAResolved), rma.Status)
	})

	t.Run("Reject after accept", func(t *testing.T) {
		id := file()

		_, err := f.rma.Accept(ctx, id)
		require.NoError(t, err)
		rma, err := f.rma.Reject(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, string(domain.RMARejected), rma.Status)

		stored, err := f.rma.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, string(domain.RMARejected), stored.Status)
	})

	t.Run("Unknown request", func(t *testing.T) {
		_, err := f.rma.Accept(ctx, 999)

		assert.ErrorIs(t, err, domain.ErrRMANotFound)
	})

	t.Run("List by status", func(t *testing.T) {
		file()

		pending, total, err := f.rma.List(ctx, &ListRMAInput{Status: "pending"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Len(t, pending, 1)

		_, total, err = f.rma.List(ctx, &ListRMAInput{})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)

		_, _, err = f.rma.List(ctx, &ListRMAInput{Status: "LOST"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Delete any status", func(t *testing.T) {
		id := file()
		_, err := f.rma.Resolve(ctx, id)
		require.NoError(t, err)

		require.NoError(t, f.rma.Delete(ctx, id))
		assert.ErrorIs(t, f.rma.Delete(ctx, id), domain.ErrRMANotFound)
	})
}

func TestCourses(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	course, err := f.courses.Create(ctx, &CourseInput{
		Title:   "Router basics",
		Content: `<h1>Setup</h1><p onclick="steal()">Plug it in</p><script>alert(1)</script>`,
	})
	require.NoError(t, err)

	t.Run("Content is sanitised", func(t *testing.T) {
		assert.Contains(t, course.Content, "<h1>Setup</h1>")
		assert.NotContains(t, course.Content, "script")
		assert.NotContains(t, course.Content, "onclick")
	})

	t.Run("Draft hidden until published", func(t *testing.T) {
		_, err := f.courses.Get(ctx, course.ID, true)
		assert.ErrorIs(t, err, domain.ErrCourseNotFound)

		published, err := f.courses.List(ctx, true)
		require.NoError(t, err)
		assert.Empty(t, published)

		_, err = f.courses.Publish(ctx, course.ID)
		require.NoError(t, err)

		got, err := f.courses.Get(ctx, course.ID, true)
		require.NoError(t, err)
		assert.True(t, got.IsPublished)

		_, err = f.courses.Unpublish(ctx, course.ID)
		require.NoError(t, err)
		_, err = f.courses.Get(ctx, course.ID, true)
		assert.ErrorIs(t, err, domain.ErrCourseNotFound)
	})

	t.Run("Update", func(t *testing.T) {
		title := "Router basics, part 1"

		updated, err := f.courses.Update(ctx, course.ID, &UpdateCourseInput{Title: &title})

		require.NoError(t, err)
		assert.Equal(t, title, updated.Title)
		assert.Equal(t, course.Content, updated.Content)
	})

	t.Run("Script only content rejected", func(t *testing.T) {
		_, err := f.courses.Create(ctx, &CourseInput{Title: "Empty", Content: "<script>alert(1)</script>"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		content := "  <script>alert(1)</script> "
		_, err = f.courses.Update(ctx, course.ID, &UpdateCourseInput{Content: &content})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		blank := ""
		_, err = f.courses.Update(ctx, course.ID, &UpdateCourseInput{Content: &blank})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		got, err := f.courses.Get(ctx, course.ID, false)
		require.NoError(t, err)
		assert.Equal(t, course.Content, got.Content)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, f.courses.Delete(ctx, course.ID))
		assert.ErrorIs(t, f.courses.Delete(ctx, course.ID), domain.ErrCourseNotFound)
	})
}
