package controllers

import (
	"strconv"

	"github.com/hariprabhu571/npc-backend/config"
	"github.com/hariprabhu571/npc-backend/models"
	"github.com/hariprabhu571/npc-backend/utils"
	"github.com/gin-gonic/gin"
)

// AdminListEmployees returns all staff members.
//
// GET /admin/employees
func AdminListEmployees(c *gin.Context) {
	utils.LogInfo("AdminListEmployees called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Employee{})
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ? OR email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count employees: %v", err)
		utils.InternalServerError(c, "Failed to fetch employees", nil)
		return
	}
	pagination.SetTotal(total)

	var employees []models.Employee
	if err := query.Order("id asc").Offset(pagination.Offset).Limit(pagination.Limit).Find(&employees).Error; err != nil {
		utils.LogError("Failed to fetch employees: %v", err)
		utils.InternalServerError(c, "Failed to fetch employees", nil)
		return
	}

	utils.Success(c, "Employees retrieved successfully", gin.H{
		"employees": employees,
		"pagination": gin.H{
			"page":      pagination.Page,
			"limit":     pagination.Limit,
			"total":     pagination.Total,
			"last_page": pagination.LastPage,
		},
	})
}

// CreateEmployee adds a staff member.
//
// POST /admin/employees
func CreateEmployee(c *gin.Context) {
	utils.LogInfo("CreateEmployee called")

	var req struct {
		Name        string `json:"name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Phone       string `json:"phone"`
		Role        string `json:"role"`
		ServiceArea string `json:"service_area"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if req.Phone != "" && !utils.IsValidPhone(req.Phone) {
		utils.BadRequest(c, "Invalid phone number", nil)
		return
	}

	var existing models.Employee
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.BadRequest(c, "An employee with this email already exists", nil)
		return
	}

	employee := models.Employee{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Role:        req.Role,
		ServiceArea: req.ServiceArea,
		IsActive:    true,
	}
	if err := config.DB.Create(&employee).Error; err != nil {
		utils.LogError("Failed to create employee: %v", err)
		utils.InternalServerError(c, "Failed to create employee", nil)
		return
	}

	utils.LogInfo("Employee ID: %d created", employee.ID)
	utils.Success(c, "Employee created successfully", gin.H{"employee": employee})
}

// UpdateEmployee edits a staff member's details or toggles availability.
//
// PUT /admin/employees/:id
func UpdateEmployee(c *gin.Context) {
	utils.LogInfo("UpdateEmployee called")

	employeeID, err := strconv.Atoi(c.Param("id"))
	if err != nil || employeeID < 1 {
		utils.BadRequest(c, "Invalid employee ID", nil)
		return
	}

	var req struct {
		Name        string `json:"name"`
		Phone       string `json:"phone"`
		Role        string `json:"role"`
		ServiceArea string `json:"service_area"`
		IsActive    *bool  `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var employee models.Employee
	if err := config.DB.First(&employee, employeeID).Error; err != nil {
		utils.NotFound(c, "Employee not found")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Phone != "" {
		if !utils.IsValidPhone(req.Phone) {
			utils.BadRequest(c, "Invalid phone number", nil)
			return
		}
		updates["phone"] = req.Phone
	}
	if req.Role != "" {
		updates["role"] = req.Role
	}
	if req.ServiceArea != "" {
		updates["service_area"] = req.ServiceArea
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		utils.BadRequest(c, "Nothing to update", nil)
		return
	}

	if err := config.DB.Model(&employee).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update employee ID: %d: %v", employee.ID, err)
		utils.InternalServerError(c, "Failed to update employee", nil)
		return
	}

	utils.LogInfo("Employee ID: %d updated", employee.ID)
	utils.Success(c, "Employee updated successfully", gin.H{"employee": employee})
}

// DeleteEmployee soft-deletes a staff member. Bookings keep their assignment
// history.
//
// DELETE /admin/employees/:id
func DeleteEmployee(c *gin.Context) {
	utils.LogInfo("DeleteEmployee called")

	employeeID, err := strconv.Atoi(c.Param("id"))
	if err != nil || employeeID < 1 {
		utils.BadRequest(c, "Invalid employee ID", nil)
		return
	}

	result := config.DB.Delete(&models.Employee{}, employeeID)
	if result.Error != nil {
		utils.LogError("Failed to delete employee ID: %d: %v", employeeID, result.Error)
		utils.InternalServerError(c, "Failed to delete employee", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Employee not found")
		return
	}

	utils.LogInfo("Employee ID: %d deleted", employeeID)
	utils.Success(c, "Employee deleted successfully", nil)
}
