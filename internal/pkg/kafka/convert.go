package kafka

import "strconv"

// Canal 行数据的字段值统一是字符串，逐个转换

func StrToUint64(v interface{}) uint64 {
	s, ok := v.(string)
	if !ok {
		return 0
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func StrToString(v interface{}) string {
	s, _ := v.(string)
	return s
}
