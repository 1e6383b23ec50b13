package use_cases

import (
	"crypto/subtle"

	apperrors "github.com/mirola777/songboard/internal/domain/errors"
)

// adminGuard checks the single shared admin secret. An unset secret locks
// every admin operation.
type adminGuard struct {
	secret string
}

func (g adminGuard) authorize(provided string) error {
	if g.secret == "" || subtle.ConstantTimeCompare([]byte(g.secret), []byte(provided)) != 1 {
		return apperrors.ErrAdminForbidden()
	}
	return nil
}
