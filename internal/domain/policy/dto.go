package policy

import (
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/validator"
)

type CreatePolicyRequest struct {
	Name        string `json:"PolicyName"`
	Description string `json:"PolicyDescription"`
	URL         string `json:"PolicyURL"`
}

func (r *CreatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "PolicyName",
			Message: "PolicyName is required",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "PolicyDescription",
			Message: "PolicyDescription is required",
		})
	}

	if !validator.IsValidURL(r.URL) {
		errs = append(errs, validator.ValidationError{
			Field:   "PolicyURL",
			Message: "PolicyURL must be a valid http(s) URL",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PolicyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"PolicyName"`
	Description string `json:"PolicyDescription"`
	URL         string `json:"PolicyURL"`
}

type ListPolicyResponse struct {
	Policies []PolicyResponse `json:"policies"`
}
