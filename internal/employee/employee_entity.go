package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee rows are written once and never updated.
type Employee struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmpID         string    `gorm:"column:emp_id;type:varchar(10);not null;uniqueIndex:uq_employees_emp_id"`
	EmpName       string    `gorm:"column:emp_name;not null"`
	Email         string    `gorm:"column:email;not null;uniqueIndex:uq_employees_email"`
	Phone         string    `gorm:"column:phone;type:varchar(10);not null"`
	Department    string    `gorm:"column:department;not null"`
	DateOfJoining string    `gorm:"column:date_of_joining;type:varchar(10);not null"`
	EmpRole       string    `gorm:"column:emp_role;not null"`
	CreatedAt     time.Time `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
