package dto

import "time"

// LoginRequest binds the login form.
type LoginRequest struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// RegisterRequest binds the registration form. ConfirmPassword must equal
// Password; DateOfBirth is an ISO date string parsed by Parse.
type RegisterRequest struct {
	Username        string `form:"username" binding:"required,min=3,max=20"`
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
	FullName        string `form:"full_name" binding:"required"`
	Qualification   string `form:"qualification" binding:"required"`
	DateOfBirth     string `form:"dob" binding:"required"`
}

// ParseDateOfBirth validates and parses the submitted date of birth.
func (r *RegisterRequest) ParseDateOfBirth() (time.Time, error) {
	return time.Parse("2006-01-02", r.DateOfBirth)
}
