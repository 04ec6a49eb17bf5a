package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 使用 struct tag 校验 DTO
func ValidateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			firstError := vErrs[0]
			return fmt.Errorf("字段 [%s] 校验失败，规则 [%s]",
				firstError.Field(),
				firstError.Tag())
		}
	}
	return nil
}

// Check 校验链中的单个独立检查，返回 nil 表示放行
type Check func() error

// RunChecks 依序执行校验链，遇到第一个错误即终止
func RunChecks(checks ...Check) error {
	for _, c := range checks {
		if err := c(); err != nil {
			return err
		}
	}
	return nil
}
