package util

import (
	"strconv"
	"time"
)

// FormatTime 统一的对外时间戳格式
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// StrSliceToUInt64Slice 字符串切片转 uint64 切片
func StrSliceToUInt64Slice(strs []string) ([]uint64, error) {
	res := make([]uint64, 0, len(strs))
	for _, s := range strs {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}
