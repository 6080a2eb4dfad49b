package employee

// AddEmployeeRequest is the POST /add-employee body. Binding rules catch
// structural problems; the form rules run afterwards in the service.
type AddEmployeeRequest struct {
	EmpID         string `json:"empId" binding:"required,max=10"`
	EmpName       string `json:"empName" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Department    string `json:"department" binding:"required,oneof=HR Engineering Marketing"`
	DateOfJoining string `json:"dateOfJoining" binding:"required"`
	EmpRole       string `json:"empRole" binding:"required"`
}

type EmployeeResponse struct {
	EmpID         string `json:"empId"`
	EmpName       string `json:"empName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Department    string `json:"department"`
	DateOfJoining string `json:"dateOfJoining"`
	EmpRole       string `json:"empRole"`
}
