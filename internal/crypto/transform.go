package crypto

// IdentityTransform is the default [Transform]. It returns its input
// unchanged and never fails.
type IdentityTransform struct{}

// Conceal implements [Transform].
func (IdentityTransform) Conceal(plain []byte) ([]byte, error) {
	return plain, nil
}

// Reveal implements [Transform].
func (IdentityTransform) Reveal(decoded []byte) ([]byte, error) {
	return decoded, nil
}
