package qcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromoteSum(t *testing.T) {
	a := Descriptor{IntBits: 10, FracBits: 20, Signed: true}
	r, expandable := PromoteSum(a, a)
	assert.True(t, expandable)
	assert.Equal(t, 11, r.IntBits)
	assert.Equal(t, 20, r.FracBits)
	assert.True(t, r.Signed)
}

func TestPromoteProductClosedWhenTooWide(t *testing.T) {
	a := Descriptor{IntBits: 8, FracBits: 24, Signed: true}
	r, expandable := PromoteProduct(a, a)
	assert.False(t, expandable)
	assert.Equal(t, a, r)
}

func TestPromoteProductExpandable(t *testing.T) {
	a := Descriptor{IntBits: 5, FracBits: 10, Signed: true}
	r, expandable := PromoteProduct(a, a)
	assert.True(t, expandable)
	assert.Equal(t, 10, r.IntBits)
	assert.Equal(t, 20, r.FracBits)
}

func TestPromoteQuotient(t *testing.T) {
	a := Descriptor{IntBits: 5, FracBits: 10, Signed: true}
	r, expandable := PromoteQuotient(a, a)
	assert.True(t, expandable)
	assert.Equal(t, 10, r.IntBits)
	assert.Equal(t, 5, r.FracBits)
}

func TestPromoteExpForcesUnsigned(t *testing.T) {
	a := Descriptor{IntBits: 10, FracBits: 20, Signed: true}
	r := PromoteExp(a)
	assert.False(t, r.Signed)
	assert.Equal(t, 20, r.FracBits)
}

func TestPromoteSqrt(t *testing.T) {
	a := Descriptor{IntBits: 10, FracBits: 20, Signed: true}
	r := PromoteSqrt(a)
	assert.Equal(t, 6, r.IntBits)
	assert.Equal(t, 20, r.FracBits)
}

func TestPromoteSameFormat(t *testing.T) {
	a := Descriptor{IntBits: 5, FracBits: 10, Signed: true}
	assert.Equal(t, a, PromoteSameFormat(a))
}
