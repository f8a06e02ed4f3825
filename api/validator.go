package api

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// 结算月份格式 YYYY-MM
var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// validMonth 校验结算月份参数
var validMonth validator.Func = func(fieldLevel validator.FieldLevel) bool {
	if value, ok := fieldLevel.Field().Interface().(string); ok {
		return monthPattern.MatchString(value)
	}
	return false
}

// validVehicleTier 校验车辆价位档
var validVehicleTier validator.Func = func(fieldLevel validator.FieldLevel) bool {
	if value, ok := fieldLevel.Field().Interface().(string); ok {
		switch value {
		case "low", "mid", "high":
			return true
		}
	}
	return false
}

func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("month", validMonth)
		v.RegisterValidation("vehicle_tier", validVehicleTier)
	}
}
