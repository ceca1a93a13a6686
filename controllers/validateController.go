package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func validate(value interface{}, c *gin.Context) bool {
	var translator = map[string]string{
		"StartDate_required":  "يرجى تحديد تاريخ البداية",
		"EndDate_required":    "يرجى تحديد تاريخ النهاية",
		"Name_required":       "يرجى إدخال الاسم",
		"Email_email":         "يرجى إدخال بريد إلكتروني صالح",
		"Password_required":   "يرجى إدخال كلمة المرور",
		"Password_min":        "كلمة المرور قصيرة جداً",
		"ProductID_required":  "يرجى اختيار المنتج",
		"BranchID_required":   "يرجى اختيار الفرع",
		"Percentage_required": "يرجى إدخال نسبة الخصم",
		"Percentage_lte":      "نسبة الخصم لا تتجاوز ١٠٠",
		"Quantity_gt":         "الكمية يجب أن تكون أكبر من صفر",
	}
	// validate the struct body
	validate := validator.New()
	err := validate.Struct(value)
	if err != nil {
		var errs []string
		for _, e := range err.(validator.ValidationErrors) {
			translationKey := e.Field() + "_" + e.Tag()
			errMsg := translator[translationKey]
			if errMsg == "" {
				errMsg = e.Error()
			}
			errs = append(errs, errMsg)
		}

		c.JSON(http.StatusBadRequest, gin.H{
			"error": errs,
			"ok":    false,
		})
		return false
	}
	return true
}
