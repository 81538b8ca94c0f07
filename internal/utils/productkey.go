package utils

import "fmt"

// ProductKeyService derives and verifies the invitation keys that authorize
// self-registration with an elevated role (REALTOR or ADMIN). A key is a
// bcrypt digest of "email-role-secret"; the digest is handed out of band to
// the prospective user and presented back at signup.
type ProductKeyService struct {
	secret string
}

// NewProductKeyService creates a ProductKeyService around the process-wide
// product key secret.
func NewProductKeyService(secret string) *ProductKeyService {
	return &ProductKeyService{secret: secret}
}

// Derive issues a product key for the given email and role. The digest is
// salted, so deriving twice with the same inputs yields different keys.
func (p *ProductKeyService) Derive(email, role string) (string, error) {
	key, err := HashPassword(p.plaintext(email, role))
	if err != nil {
		return "", fmt.Errorf("failed to derive product key: %w", err)
	}
	return key, nil
}

// Verify checks a presented key against the email and role it was issued
// for. Because keys are salted digests, verification recomputes the
// plaintext and bcrypt-compares it with the originally issued key; string
// comparison of freshly derived keys would never match.
func (p *ProductKeyService) Verify(email, role, key string) bool {
	return CheckPasswordHash(p.plaintext(email, role), key)
}

func (p *ProductKeyService) plaintext(email, role string) string {
	return fmt.Sprintf("%s-%s-%s", email, role, p.secret)
}
