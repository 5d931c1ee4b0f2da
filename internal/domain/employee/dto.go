package employee

import (
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/geo"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmpID            string  `json:"emp_id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Mobile           string  `json:"mobile"`
	Role             string  `json:"role"`
	ReportingManager *string `json:"reporting_manager"`
	Shift            string  `json:"shift"`
	OfficeName       string  `json:"office_name"`
	OfficeLatLong    string  `json:"office_lat_long"`
	IsGeofence       bool    `json:"is_geofence"`
	GeofenceRadiusM  int     `json:"geofence_radius_m"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{
			Field:   "emp_id",
			Message: "emp_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if !validator.IsEmpty(r.Mobile) && !validator.IsValidMobile(r.Mobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile",
			Message: "invalid mobile number",
		})
	}

	if !validator.IsInSlice(r.Role, []string{"HR", "Employee"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be HR or Employee",
		})
	}

	if r.IsGeofence && !geo.IsValidLatLong(r.OfficeLatLong) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_lat_long",
			Message: "a geofenced office needs valid \"lat,long\" coordinates",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	EmpID            string  `json:"-"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Mobile           string  `json:"mobile"`
	Role             string  `json:"role"`
	ReportingManager *string `json:"reporting_manager"`
	Shift            string  `json:"shift"`
	OfficeName       string  `json:"office_name"`
	OfficeLatLong    string  `json:"office_lat_long"`
	IsGeofence       bool    `json:"is_geofence"`
	GeofenceRadiusM  int     `json:"geofence_radius_m"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest{
		EmpID:         r.EmpID,
		Name:          r.Name,
		Email:         r.Email,
		Mobile:        r.Mobile,
		Role:          r.Role,
		OfficeLatLong: r.OfficeLatLong,
		IsGeofence:    r.IsGeofence,
	}
	return create.Validate()
}

type ListFilter struct {
	Search   string
	IsActive *bool
	Page     int
	Limit    int
}

type EmployeeResponse struct {
	EmpID            string  `json:"EmpId"`
	Name             string  `json:"Name"`
	Email            string  `json:"EmailId"`
	Mobile           string  `json:"Mobile"`
	Role             string  `json:"Role"`
	ReportingManager *string `json:"RM,omitempty"`
	Shift            string  `json:"Shift,omitempty"`
	OfficeName       string  `json:"OfficeName,omitempty"`
	OfficeLatLong    string  `json:"LatLong,omitempty"`
	IsGeofence       bool    `json:"IsGeofence"`
	IsActive         bool    `json:"IsActive"`
}

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
}
