package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, Category("Cupboard").Valid())
	assert.False(t, Category("").Valid())
}

func TestCategoryLabelTotal(t *testing.T) {
	// Every valid category maps to a non-empty display label.
	for _, c := range Categories() {
		assert.NotEmpty(t, c.Label(), string(c))
	}
	assert.Equal(t, "Fruit & Veg", CategoryFruitVeg.Label())
}

func TestUnitValid(t *testing.T) {
	for _, u := range Units() {
		assert.True(t, u.Valid(), string(u))
	}
	assert.False(t, Unit("bottles").Valid())
	assert.False(t, Unit("").Valid())
}
