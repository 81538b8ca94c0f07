package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductKeyService_DeriveAndVerify(t *testing.T) {
	svc := NewProductKeyService("topsecret")

	key, err := svc.Derive("realtor@example.com", "REALTOR")
	assert.NoError(t, err)
	assert.NotEmpty(t, key)

	assert.True(t, svc.Verify("realtor@example.com", "REALTOR", key))
}

func TestProductKeyService_SaltedDigestsDiffer(t *testing.T) {
	svc := NewProductKeyService("topsecret")

	first, err := svc.Derive("realtor@example.com", "REALTOR")
	assert.NoError(t, err)
	second, err := svc.Derive("realtor@example.com", "REALTOR")
	assert.NoError(t, err)

	// Salted, so identical inputs yield different digests; both verify
	// against the inputs they were issued for.
	assert.NotEqual(t, first, second)
	assert.True(t, svc.Verify("realtor@example.com", "REALTOR", first))
	assert.True(t, svc.Verify("realtor@example.com", "REALTOR", second))
}

func TestProductKeyService_VerifyRejectsMismatches(t *testing.T) {
	svc := NewProductKeyService("topsecret")

	key, _ := svc.Derive("realtor@example.com", "REALTOR")

	assert.False(t, svc.Verify("other@example.com", "REALTOR", key))
	assert.False(t, svc.Verify("realtor@example.com", "ADMIN", key))
	assert.False(t, svc.Verify("realtor@example.com", "REALTOR", "notakey"))
}

func TestProductKeyService_SecretBoundToProcess(t *testing.T) {
	issued := NewProductKeyService("secret-a")
	other := NewProductKeyService("secret-b")

	key, _ := issued.Derive("realtor@example.com", "REALTOR")

	assert.True(t, issued.Verify("realtor@example.com", "REALTOR", key))
	assert.False(t, other.Verify("realtor@example.com", "REALTOR", key))
}
