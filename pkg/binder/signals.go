package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals binds the DataStar signal payload into v. For GET requests the
// signals travel in the "datastar" query parameter, otherwise in the JSON
// body. Requests without the Datastar-Request header are not applicable.
//
//	type LoginSignals struct {
//		Email    string          `json:"email"`
//		Password string          `json:"password"`
//		Touched  map[string]bool `json:"touched"`
//	}
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !isDataStar(r) {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseSignals, err)
		}
		return nil
	}
}
