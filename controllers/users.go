package controllers

import (
	"net/http"
	"strconv"

	"sufra/model"
	"sufra/view"

	"github.com/gin-gonic/gin"
	passwordvalidator "github.com/wagslane/go-password-validator"
)

const minPasswordEntropy = 60

// GetUserList serves the admin console's user table.
func GetUserList(c *gin.Context) {
	users, err := api.Users(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   true,
		"userlist": users,
	})
}

// BlockUser and UnblockUser flip the flag upstream, the api decides
// whether the caller may.
func BlockUser(c *gin.Context) {
	setUserBlocked(c, true, "تم حظر المستخدم")
}

func UnblockUser(c *gin.Context) {
	setUserBlocked(c, false, "تم إلغاء حظر المستخدم")
}

func setUserBlocked(c *gin.Context, blocked bool, message string) {
	id, err := strconv.Atoi(c.Param("userid"))
	if err != nil {
		badRequest(c, "رقم المستخدم غير صالح")
		return
	}

	if err := api.SetUserBlocked(c.Request.Context(), id, blocked); err != nil {
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": message,
	})
}

// CreateUser checks password strength locally before handing the new
// account to the api, which owns storage and hashing.
func CreateUser(c *gin.Context) {
	var request model.CreateUserRequest
	if err := c.BindJSON(&request); err != nil {
		badRequest(c, "failed to bind the json")
		return
	}
	if !validate(&request, c) {
		return
	}

	if err := passwordvalidator.Validate(request.Password, minPasswordEntropy); err != nil {
		badRequest(c, "كلمة المرور ضعيفة، اختر كلمة أقوى")
		return
	}

	switch request.Role {
	case model.AdminRole, model.ManagerRole, model.CashierRole:
	default:
		badRequest(c, "دور المستخدم غير معروف")
		return
	}

	user, err := api.CreateUser(c.Request.Context(), request)
	if err != nil {
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "تم إنشاء المستخدم",
		"data":    user,
	})
}

// GetMenu returns the sidebar entries for the caller's role.
func GetMenu(c *gin.Context) {
	role := c.GetString("role")
	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"data":   view.MenuForRoles(role),
	})
}
