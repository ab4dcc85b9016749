package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email   string `json:"email" validate:"required,email"`
	GSTIN   string `json:"gstin" validate:"required,gstin"`
	Pincode string `json:"pincode" validate:"omitempty,pincode"`
	Phone   string `json:"phone" validate:"required,phone"`
	Kind    string `json:"kind" validate:"omitempty,oneof=PERCENTAGE AMOUNT"`
}

func TestStruct(t *testing.T) {
	valid := sample{
		Email: "dealer@example.com",
		GSTIN: "27AAPFU0939F1ZV",
		Phone: "9876543210",
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, Struct(valid))
	})

	tests := []struct {
		name    string
		mutate  func(s *sample)
		message string
	}{
		{"Missing email", func(s *sample) { s.Email = "" }, "email is required"},
		{"Bad email", func(s *sample) { s.Email = "not-an-email" }, "email must be a valid email address"},
		{"Bad gstin", func(s *sample) { s.GSTIN = "1234" }, "gstin must be a valid 15 character GSTIN"},
		{"Bad pincode", func(s *sample) { s.Pincode = "01234" }, "pincode must be a 6 digit pincode"},
		{"Bad phone", func(s *sample) { s.Phone = "12ab" }, "phone must be a valid phone number"},
		{"Bad kind", func(s *sample) { s.Kind = "FREE" }, "kind must be one of [PERCENTAGE AMOUNT]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)

			err := Struct(s)

			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestIsPincode(t *testing.T) {
	assert.True(t, IsPincode("110001"))
	assert.False(t, IsPincode("11000"))
	assert.False(t, IsPincode("011000"))
	assert.False(t, IsPincode("11000a"))
}

type patch struct {
	Name     *string  `json:"name" validate:"omitnil,notblank,max=10"`
	Secret   string   `json:"secret" normalize:"-"`
	Tags     []string `json:"tags"`
	Address  *address `json:"address"`
	internal string
}

type address struct {
	City string `json:"city"`
}

func TestNormalize(t *testing.T) {
	name := "  Asha  "
	p := &patch{
		Name:     &name,
		Secret:   " keep ",
		Tags:     []string{" wifi", "router "},
		Address:  &address{City: "\tBengaluru\n"},
		internal: " raw ",
	}

	Normalize(p)

	assert.Equal(t, "Asha", *p.Name)
	assert.Equal(t, " keep ", p.Secret)
	assert.Equal(t, []string{"wifi", "router"}, p.Tags)
	assert.Equal(t, "Bengaluru", p.Address.City)
	assert.Equal(t, " raw ", p.internal)
}

func TestNotBlankPatch(t *testing.T) {
	assert.NoError(t, Struct(patch{}))

	blank := "   "
	assert.EqualError(t, Struct(patch{Name: &blank}), "name must not be blank")

	empty := ""
	assert.EqualError(t, Struct(patch{Name: &empty}), "name must not be blank")
}
