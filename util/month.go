package util

import (
	"fmt"
	"time"
)

// FormatMonth 把时间格式化为结算月份 "YYYY-MM"
func FormatMonth(t time.Time) string {
	return t.Format("2006-01")
}

// ParseMonth 解析 "YYYY-MM" 为该月第一天零点（本地时区）
func ParseMonth(month string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	return t, nil
}

// MonthRange 返回结算月份的 [start, end) 区间
func MonthRange(month string) (time.Time, time.Time, error) {
	start, err := ParseMonth(month)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 1, 0), nil
}

// PreviousMonth 返回给定时间所在月的上一个月份字符串
func PreviousMonth(t time.Time) string {
	return FormatMonth(t.AddDate(0, -1, 0))
}

// AddMonths 在 "YYYY-MM" 上加 n 个月
func AddMonths(month string, n int) (string, error) {
	t, err := ParseMonth(month)
	if err != nil {
		return "", err
	}
	return FormatMonth(t.AddDate(0, n, 0)), nil
}
