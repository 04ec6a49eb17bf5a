package service

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}

// performAction 先跑校验链再落库，唯一键冲突统一转为业务冲突错误
func performAction(checkFunc func() error, repoFunc func() error, conflictErr error) error {
	if err := checkFunc(); err != nil {
		return err
	}
	if err := repoFunc(); err != nil {
		if isDuplicateError(err) {
			return conflictErr
		}
		return err
	}
	return nil
}

// revokeAction 先跑校验链再撤销，关系不存在由校验链负责识别
func revokeAction(checkFunc func() error, repoFunc func() error) error {
	if err := checkFunc(); err != nil {
		return err
	}
	return repoFunc()
}
