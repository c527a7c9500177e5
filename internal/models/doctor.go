package models

// Doctor is one-to-one with a User of role Doctor.
type Doctor struct {
	ID             uint64 `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"size:100;not null" json:"name"`
	Specialization string `gorm:"size:100" json:"specialization"`
	Phone          string `gorm:"size:20" json:"phone"`
	Email          string `gorm:"size:100" json:"email"`
	UserID         uint64 `gorm:"uniqueIndex;not null" json:"-"`
}

// CreateDoctorInput is the body of POST /doctors. Email and password become
// the doctor's login.
type CreateDoctorInput struct {
	Name           string `json:"name" binding:"required,max=100"`
	Specialization string `json:"specialization" binding:"required,max=100"`
	Phone          string `json:"phone" binding:"max=20"`
	Email          string `json:"email" binding:"required,email,max=100"`
	Password       string `json:"password" binding:"required,min=6,max=72"`
}

type DoctorView struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
}

func (d *Doctor) View() DoctorView {
	return DoctorView{
		ID:             d.ID,
		Name:           d.Name,
		Specialization: d.Specialization,
		Phone:          d.Phone,
		Email:          d.Email,
	}
}
