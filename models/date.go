package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout 日期格式，JSON 和数据库统一使用
const DateLayout = "2006-01-02"

// Date 只含日期部分的时间类型
// 消费日期是自然日，不需要时分秒
type Date struct {
	time.Time
}

// NewDate 构造指定日期
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// ParseDate 解析 2006-01-02 格式的日期字符串
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("日期格式错误，应为: %s", DateLayout)
	}
	return Date{t}, nil
}

// String 返回 2006-01-02 格式
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON 序列化为 "2006-01-02"
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON 从 "2006-01-02" 反序列化
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value 实现 driver.Valuer，写库时只保留日期部分
func (d Date) Value() (driver.Value, error) {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local), nil
}

// Scan 实现 sql.Scanner，兼容 DATE 列的几种驱动返回形式
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Date{v}
		return nil
	case []byte:
		parsed, err := ParseDate(string(v[:min(len(v), len(DateLayout))]))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v[:min(len(v), len(DateLayout))])
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("无法将 %T 转换为 Date", value)
	}
}

// GormDataType 声明列类型为 DATE
func (Date) GormDataType() string {
	return "date"
}
