package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindPredicates(t *testing.T) {
	valErr := Validationf("slug is required")
	nfErr := NotFoundf("post %q not found", "x")
	storeErr := Store("upsert post", errors.New("connection refused"))

	tests := []struct {
		name                           string
		err                            error
		validation, notFound, storeErr bool
	}{
		{"validation", valErr, true, false, false},
		{"not found", nfErr, false, true, false},
		{"store", storeErr, false, false, true},
		{"plain error", errors.New("boom"), false, false, false},
		{"nil", nil, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidation(tt.err); got != tt.validation {
				t.Errorf("IsValidation: got %v, want %v", got, tt.validation)
			}
			if got := IsNotFound(tt.err); got != tt.notFound {
				t.Errorf("IsNotFound: got %v, want %v", got, tt.notFound)
			}
			if got := IsStore(tt.err); got != tt.storeErr {
				t.Errorf("IsStore: got %v, want %v", got, tt.storeErr)
			}
		})
	}
}

func TestClassificationSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFoundf("post not found"))
	if !IsNotFound(err) {
		t.Error("expected wrapped not-found error to stay classified")
	}
}

func TestUnwrapReachesCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Store("list posts", cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the underlying cause")
	}
	if err.Error() != "list posts: dial tcp: refused" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
