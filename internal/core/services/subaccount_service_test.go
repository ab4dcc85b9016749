package services

import (
	"context"
	"testing"

	"dealerhub/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTechnicians(t *testing.T) {
	ctx := context.Background()

	t.Run("Created unapproved under dealer", func(t *testing.T) {
		f := newFixture(t, nil)
		dealer := f.registerDealer(t, 1)

		tech, err := f.technicians.Create(ctx, dealer.ID, subAccountInput("Tech@Example.com"))

		require.NoError(t, err)
		assert.Equal(t, dealer.ID, tech.DealerID)
		assert.Equal(t, "tech@example.com", tech.Email)
		assert.False(t, tech.IsApproved)
		assert.False(t, tech.IsPassed)
	})

	t.Run("Blank first name", func(t *testing.T) {
		f := newFixture(t, nil)
		dealer := f.registerDealer(t, 1)
		input := subAccountInput(" tech@example.com ")
		input.FirstName = "  "

		_, err := f.technicians.Create(ctx, dealer.ID, input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = f.backOffice.Create(ctx, dealer.ID, input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Unknown dealer", func(t *testing.T) {
		f := newFixture(t, nil)

		_, err := f.technicians.Create(ctx, 12, subAccountInput("tech@example.com"))

		assert.ErrorIs(t, err, domain.ErrDealerNotFound)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		f := newFixture(t, nil)
		dealer := f.registerDealer(t, 1)
		_, err := f.technicians.Create(ctx, dealer.ID, subAccountInput("tech@example.com"))
		require.NoError(t, err)

		_, err = f.technicians.Create(ctx, dealer.ID, subAccountInput("tech@example.com"))

		assert.ErrorIs(t, err, domain.ErrTechnicianExists)
	})

	t.Run("Flags are scoped to the owning dealer", func(t *testing.T) {
		f := newFixture(t, nil)
		owner := f.registerDealer(t, 1)
		stranger := f.registerDealer(t, 2)
		tech, err := f.technicians.Create(ctx, owner.ID, subAccountInput("tech@example.com"))
		require.NoError(t, err)

		_, err = f.technicians.Approve(ctx, stranger.ID, tech.ID)
		assert.ErrorIs(t, err, domain.ErrTechnicianNotFound)

		stored, err := f.technicians.Get(ctx, tech.ID)
		require.NoError(t, err)
		assert.False(t, stored.IsApproved)

		approved, err := f.technicians.Approve(ctx, owner.ID, tech.ID)
		require.NoError(t, err)
		assert.True(t, approved.IsApproved)

		passed, err := f.technicians.MarkPassed(ctx, owner.ID, tech.ID)
		require.NoError(t, err)
		assert.True(t, passed.IsPassed)

		failed, err := f.technicians.MarkFailed(ctx, owner.ID, tech.ID)
		require.NoError(t, err)
		assert.False(t, failed.IsPassed)

		stored, err = f.technicians.Get(ctx, tech.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsApproved)
		assert.False(t, stored.IsPassed)

		disapproved, err := f.technicians.Disapprove(ctx, owner.ID, tech.ID)
		require.NoError(t, err)
		assert.False(t, disapproved.IsApproved)
	})

	t.Run("List by dealer", func(t *testing.T) {
		f := newFixture(t, nil)
		first := f.registerDealer(t, 1)
		second := f.registerDealer(t, 2)
		_, err := f.technicians.Create(ctx, first.ID, subAccountInput("a@example.com"))
		require.NoError(t, err)
		_, err = f.technicians.Create(ctx, first.ID, subAccountInput("b@example.com"))
		require.NoError(t, err)
		_, err = f.technicians.Create(ctx, second.ID, subAccountInput("c@example.com"))
		require.NoError(t, err)

		_, total, err := f.technicians.List(ctx, &ListSubAccountsInput{})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)

		mine, total, err := f.technicians.List(ctx, &ListSubAccountsInput{DealerID: &first.ID})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, mine, 2)

		missing := uint(99)
		_, _, err = f.technicians.List(ctx, &ListSubAccountsInput{DealerID: &missing})
		assert.ErrorIs(t, err, domain.ErrDealerNotFound)
	})

	t.Run("Update and delete", func(t *testing.T) {
		f := newFixture(t, nil)
		dealer := f.registerDealer(t, 1)
		tech, err := f.technicians.Create(ctx, dealer.ID, subAccountInput("tech@example.com"))
		require.NoError(t, err)

		name, passed := "Ravindra", true
		updated, err := f.technicians.Update(ctx, tech.ID, &UpdateSubAccountInput{FirstName: &name, IsPassed: &passed})
		require.NoError(t, err)
		assert.Equal(t, "Ravindra", updated.FirstName)
		assert.True(t, updated.IsPassed)
		assert.Equal(t, "Kumar", updated.LastName)

		require.NoError(t, f.technicians.Delete(ctx, tech.ID))
		assert.ErrorIs(t, f.technicians.Delete(ctx, tech.ID), domain.ErrTechnicianNotFound)
	})
}

func TestBackOffice(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner mismatch is not found", func(t *testing.T) {
		f := newFixture(t, nil)
		owner := f.registerDealer(t, 1)
		stranger := f.registerDealer(t, 2)
		account, err := f.backOffice.Create(ctx, owner.ID, subAccountInput("office@example.com"))
		require.NoError(t, err)

		_, err = f.backOffice.Approve(ctx, stranger.ID, account.ID)
		assert.ErrorIs(t, err, domain.ErrBackOfficeNotFound)

		approved, err := f.backOffice.Approve(ctx, owner.ID, account.ID)
		require.NoError(t, err)
		assert.True(t, approved.IsApproved)

		disapproved, err := f.backOffice.Disapprove(ctx, owner.ID, account.ID)
		require.NoError(t, err)
		assert.False(t, disapproved.IsApproved)
	})

	t.Run("Pass flag rejected", func(t *testing.T) {
		f := newFixture(t, nil)
		dealer := f.registerDealer(t, 1)
		account, err := f.backOffice.Create(ctx, dealer.ID, subAccountInput("office@example.com"))
		require.NoError(t, err)

		passed := true
		_, err = f.backOffice.Update(ctx, account.ID, &UpdateSubAccountInput{IsPassed: &passed})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Same email allowed across account kinds", func(t *testing.T) {
		f := newFixture(t, nil)
		dealer := f.registerDealer(t, 1)
		_, err := f.technicians.Create(ctx, dealer.ID, subAccountInput("shared@example.com"))
		require.NoError(t, err)

		_, err = f.backOffice.Create(ctx, dealer.ID, subAccountInput("shared@example.com"))

		assert.NoError(t, err)
	})

	t.Run("Delete missing", func(t *testing.T) {
		f := newFixture(t, nil)

		assert.ErrorIs(t, f.backOffice.Delete(ctx, 5), domain.ErrBackOfficeNotFound)
	})
}
